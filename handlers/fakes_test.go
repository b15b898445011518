package handlers

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"tarapurtransport/middleware"
	"tarapurtransport/models"
	"tarapurtransport/renderer"
	"tarapurtransport/repository"
)

// testAuth stands in for the JWT middleware: the user id comes from a header.
func testAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-Test-User")
		if userID == "" {
			userID = "user-1"
		}
		next.ServeHTTP(w, r.WithContext(middleware.WithUserID(r.Context(), userID)))
	})
}

type fakeRenderer struct {
	mu       sync.Mutex
	lastHTML string
	calls    int
	err      error
}

func (f *fakeRenderer) Render(_ context.Context, html string, _ renderer.Options) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastHTML = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake\n" + html), nil
}

type fakeLRRepo struct {
	mu    sync.Mutex
	items map[string]*models.LorryReceipt
}

func newFakeLRRepo() *fakeLRRepo {
	return &fakeLRRepo{items: map[string]*models.LorryReceipt{}}
}

func (r *fakeLRRepo) Create(_ context.Context, lr *models.LorryReceipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.CreatedBy == lr.CreatedBy && existing.LorryReceiptNumber == lr.LorryReceiptNumber {
			return &repository.DuplicateKeyError{Field: "lorryReceiptNumber"}
		}
	}
	if lr.ID == "" {
		lr.ID = repository.NewID()
	}
	cp := *lr
	r.items[lr.ID] = &cp
	return nil
}

func (r *fakeLRRepo) List(_ context.Context, userID string, f repository.LorryReceiptFilter, p repository.Page) ([]*models.LorryReceipt, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.LorryReceipt
	for _, lr := range r.items {
		if lr.CreatedBy != userID {
			continue
		}
		if f.Number != "" && !strings.Contains(strings.ToLower(lr.LorryReceiptNumber), strings.ToLower(f.Number)) {
			continue
		}
		if f.Status != "" && lr.Status != f.Status {
			continue
		}
		cp := *lr
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeLRRepo) GetByID(_ context.Context, userID, id string) (*models.LorryReceipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lr, ok := r.items[id]
	if !ok || lr.CreatedBy != userID {
		return nil, repository.ErrNotFound
	}
	cp := *lr
	return &cp, nil
}

func (r *fakeLRRepo) Update(_ context.Context, userID string, lr *models.LorryReceipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[lr.ID]
	if !ok || existing.CreatedBy != userID {
		return repository.ErrNotFound
	}
	cp := *lr
	r.items[lr.ID] = &cp
	return nil
}

func (r *fakeLRRepo) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lr, ok := r.items[id]
	if !ok || lr.CreatedBy != userID {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeDSRepo struct {
	mu    sync.Mutex
	items map[string]*models.DeliverySlip
}

func newFakeDSRepo() *fakeDSRepo {
	return &fakeDSRepo{items: map[string]*models.DeliverySlip{}}
}

func (r *fakeDSRepo) Create(_ context.Context, ds *models.DeliverySlip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ds.ID == "" {
		ds.ID = repository.NewID()
	}
	cp := *ds
	r.items[ds.ID] = &cp
	return nil
}

func (r *fakeDSRepo) List(_ context.Context, userID string, f repository.DeliverySlipFilter, p repository.Page) ([]*models.DeliverySlip, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.DeliverySlip
	for _, ds := range r.items {
		if ds.CreatedBy != userID {
			continue
		}
		if f.Status != "" && ds.Status != f.Status {
			continue
		}
		cp := *ds
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeDSRepo) GetByID(_ context.Context, userID, id string) (*models.DeliverySlip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ds, ok := r.items[id]
	if !ok || ds.CreatedBy != userID {
		return nil, repository.ErrNotFound
	}
	cp := *ds
	return &cp, nil
}

func (r *fakeDSRepo) Update(_ context.Context, userID string, ds *models.DeliverySlip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[ds.ID]
	if !ok || existing.CreatedBy != userID {
		return repository.ErrNotFound
	}
	cp := *ds
	r.items[ds.ID] = &cp
	return nil
}

func (r *fakeDSRepo) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ds, ok := r.items[id]
	if !ok || ds.CreatedBy != userID {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeQuotationRepo struct {
	mu    sync.Mutex
	items map[string]*models.Quotation
}

func newFakeQuotationRepo() *fakeQuotationRepo {
	return &fakeQuotationRepo{items: map[string]*models.Quotation{}}
}

func (r *fakeQuotationRepo) Create(_ context.Context, q *models.Quotation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.CreatedBy == q.CreatedBy && existing.QuotationNumber == q.QuotationNumber {
			return &repository.DuplicateKeyError{Field: "quotationNumber"}
		}
	}
	if q.ID == "" {
		q.ID = repository.NewID()
	}
	cp := *q
	r.items[q.ID] = &cp
	return nil
}

func (r *fakeQuotationRepo) List(_ context.Context, userID string, f repository.QuotationFilter, p repository.Page) ([]*models.Quotation, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Quotation
	for _, q := range r.items {
		if q.CreatedBy != userID {
			continue
		}
		if f.Number != "" && !strings.Contains(strings.ToLower(q.QuotationNumber), strings.ToLower(f.Number)) {
			continue
		}
		if f.CompanyName != "" && !strings.Contains(strings.ToLower(q.QuoteToCompany.CompanyName), strings.ToLower(f.CompanyName)) {
			continue
		}
		cp := *q
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeQuotationRepo) GetByID(_ context.Context, userID, id string) (*models.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.items[id]
	if !ok || q.CreatedBy != userID {
		return nil, repository.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (r *fakeQuotationRepo) Update(_ context.Context, userID string, q *models.Quotation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[q.ID]
	if !ok || existing.CreatedBy != userID {
		return repository.ErrNotFound
	}
	cp := *q
	r.items[q.ID] = &cp
	return nil
}

func (r *fakeQuotationRepo) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.items[id]
	if !ok || q.CreatedBy != userID {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeLoadingSlipRepo struct {
	mu    sync.Mutex
	items map[string]*models.LoadingSlip
}

func newFakeLoadingSlipRepo() *fakeLoadingSlipRepo {
	return &fakeLoadingSlipRepo{items: map[string]*models.LoadingSlip{}}
}

func (r *fakeLoadingSlipRepo) Create(_ context.Context, ls *models.LoadingSlip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.CreatedBy == ls.CreatedBy && existing.SlipNumber == ls.SlipNumber {
			return &repository.DuplicateKeyError{Field: "slipNumber"}
		}
	}
	if ls.ID == "" {
		ls.ID = repository.NewID()
	}
	cp := *ls
	r.items[ls.ID] = &cp
	return nil
}

func (r *fakeLoadingSlipRepo) List(_ context.Context, userID string, f repository.LoadingSlipFilter, p repository.Page) ([]*models.LoadingSlip, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.LoadingSlip
	for _, ls := range r.items {
		if ls.CreatedBy != userID {
			continue
		}
		if f.SlipNumber != "" && !strings.Contains(strings.ToLower(ls.SlipNumber), strings.ToLower(f.SlipNumber)) {
			continue
		}
		if f.CompanyName != "" && !strings.Contains(strings.ToLower(ls.CompanyDetails.CompanyName), strings.ToLower(f.CompanyName)) {
			continue
		}
		cp := *ls
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeLoadingSlipRepo) GetByID(_ context.Context, userID, id string) (*models.LoadingSlip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ls, ok := r.items[id]
	if !ok || ls.CreatedBy != userID {
		return nil, repository.ErrNotFound
	}
	cp := *ls
	return &cp, nil
}

func (r *fakeLoadingSlipRepo) Update(_ context.Context, userID string, ls *models.LoadingSlip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[ls.ID]
	if !ok || existing.CreatedBy != userID {
		return repository.ErrNotFound
	}
	cp := *ls
	r.items[ls.ID] = &cp
	return nil
}

func (r *fakeLoadingSlipRepo) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ls, ok := r.items[id]
	if !ok || ls.CreatedBy != userID {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeCompanyRepo struct {
	mu    sync.Mutex
	items []*models.Company
}

func (r *fakeCompanyRepo) Upsert(_ context.Context, c *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Name == c.Name && existing.GSTIN == c.GSTIN {
			return nil
		}
	}
	cp := *c
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeCompanyRepo) List(_ context.Context, nameFilter string, p repository.Page) ([]*models.Company, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Company
	for _, c := range r.items {
		if nameFilter != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(nameFilter)) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.AppUser
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.AppUser{}}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.AppUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return &repository.DuplicateKeyError{Field: "email"}
	}
	if user.ID == "" {
		user.ID = repository.NewID()
	}
	cp := *user
	r.users[user.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.AppUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}
