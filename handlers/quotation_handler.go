package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"tarapurtransport/middleware"
	"tarapurtransport/models"
	"tarapurtransport/renderer"
	"tarapurtransport/repository"
	"tarapurtransport/templates"
	"tarapurtransport/views"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type QuotationHandler struct {
	Repo       repository.QuotationRepository
	Companies  repository.CompanyRepository
	Renderer   PDFRenderer
	Letterhead views.Letterhead
	Logger     *zap.Logger
}

func (h *QuotationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var q models.Quotation
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}
	if q.QuotationNumber == "" {
		badRequest(w, "quotationNumber is required")
		return
	}
	if q.QuoteToCompany.CompanyName == "" {
		badRequest(w, "quoteToCompany.companyName is required")
		return
	}

	q.ID = ""
	q.CreatedBy = middleware.UserID(r.Context())
	if q.Date.IsZero() {
		q.Date = time.Now().UTC()
	}
	q.ComputeTotals(time.Now().UTC())

	if err := h.Repo.Create(r.Context(), &q); err != nil {
		writeRepoError(w, err, "create quotation")
		return
	}
	h.upsertParty(r, &q)

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Quotation created successfully",
		Data:    q,
	})
}

func (h *QuotationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	p := repository.NormalizePage(page, limit)

	filter := repository.QuotationFilter{
		Number:      q.Get("quotationNumber"),
		CompanyName: q.Get("companyName"),
	}

	items, total, err := h.Repo.List(r.Context(), middleware.UserID(r.Context()), filter, p)
	if err != nil {
		writeRepoError(w, err, "list quotations")
		return
	}
	if items == nil {
		items = []*models.Quotation{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data: ListData{
			Items:       items,
			Total:       total,
			TotalPages:  totalPages(total, p.Limit),
			CurrentPage: p.Number,
		},
	})
}

func (h *QuotationHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.Repo.GetByID(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, err, "fetch quotation")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: q})
}

func (h *QuotationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.QuotationPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}

	userID := middleware.UserID(r.Context())
	q, err := h.Repo.GetByID(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, err, "fetch quotation")
		return
	}

	patch.Apply(q)
	q.ComputeTotals(time.Now().UTC())

	if err := h.Repo.Update(r.Context(), userID, q); err != nil {
		writeRepoError(w, err, "update quotation")
		return
	}
	h.upsertParty(r, q)

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Quotation updated successfully",
		Data:    q,
	})
}

func (h *QuotationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	q, err := h.Repo.GetByID(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, err, "delete quotation")
		return
	}
	if err := h.Repo.Delete(r.Context(), userID, q.ID); err != nil {
		writeRepoError(w, err, "delete quotation")
		return
	}
	removeArchivedPDF(h.Logger, "Quotation", q.QuotationNumber)
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Quotation deleted successfully",
	})
}

func (h *QuotationHandler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	q, err := h.Repo.GetByID(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, err, "fetch quotation")
		return
	}

	view := views.MapQuotationView(q, h.Letterhead)
	html, err := templates.RenderQuotation(view)
	if err != nil {
		writeRenderError(w, err)
		return
	}
	pdf, err := h.Renderer.Render(r.Context(), html, renderer.A4())
	if err != nil {
		writeRenderError(w, err)
		return
	}

	archivePDF(h.Logger, "Quotation", q.QuotationNumber, pdf)
	servePDF(w, "Quotation", q.QuotationNumber, pdf)
}

func (h *QuotationHandler) upsertParty(r *http.Request, q *models.Quotation) {
	if h.Companies == nil {
		return
	}
	c := models.Company{
		Name:          q.QuoteToCompany.CompanyName,
		GSTIN:         q.QuoteToCompany.GSTIN,
		ContactNumber: q.QuoteToCompany.ContactNumber,
		Address:       q.QuoteToCompany.Address,
		City:          q.QuoteToCompany.City,
		State:         q.QuoteToCompany.State,
		Country:       q.QuoteToCompany.Country,
		PinCode:       q.QuoteToCompany.PinCode,
	}
	if err := h.Companies.Upsert(r.Context(), &c); err != nil {
		h.Logger.Warn("company upsert failed", zap.String("name", c.Name), zap.Error(err))
	}
}
