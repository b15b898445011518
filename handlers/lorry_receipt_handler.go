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

type LorryReceiptHandler struct {
	Repo       repository.LorryReceiptRepository
	Companies  repository.CompanyRepository
	Renderer   PDFRenderer
	Letterhead views.Letterhead
	Logger     *zap.Logger
}

func (h *LorryReceiptHandler) Create(w http.ResponseWriter, r *http.Request) {
	var lr models.LorryReceipt
	if err := json.NewDecoder(r.Body).Decode(&lr); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}
	if lr.LorryReceiptNumber == "" {
		badRequest(w, "lorryReceiptNumber is required")
		return
	}
	if lr.Consignor.ConsignorName == "" || lr.Consignee.ConsigneeName == "" {
		badRequest(w, "consignor and consignee names are required")
		return
	}
	if len(lr.MaterialDetails) == 0 {
		badRequest(w, "materialDetails is required")
		return
	}
	if lr.TruckDetails.TruckNumber == "" {
		badRequest(w, "truckDetails.truckNumber is required")
		return
	}

	lr.ID = ""
	lr.CreatedBy = middleware.UserID(r.Context())
	if lr.Status == "" {
		lr.Status = models.LRStatusCreated
	}
	if lr.Date.IsZero() {
		lr.Date = time.Now().UTC()
	}
	lr.ComputeTotals()

	if err := h.Repo.Create(r.Context(), &lr); err != nil {
		writeRepoError(w, err, "create lorry receipt")
		return
	}
	h.upsertParties(r, &lr)

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Lorry receipt created successfully",
		Data:    lr,
	})
}

func (h *LorryReceiptHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	p := repository.NormalizePage(page, limit)

	filter := repository.LorryReceiptFilter{
		Number:        q.Get("lorryReceiptNumber"),
		ConsignorName: q.Get("consignorName"),
		ConsigneeName: q.Get("consigneeName"),
		TruckNumber:   q.Get("truckNumber"),
		Status:        q.Get("status"),
	}

	items, total, err := h.Repo.List(r.Context(), middleware.UserID(r.Context()), filter, p)
	if err != nil {
		writeRepoError(w, err, "list lorry receipts")
		return
	}
	if items == nil {
		items = []*models.LorryReceipt{}
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

func (h *LorryReceiptHandler) Get(w http.ResponseWriter, r *http.Request) {
	lr, err := h.Repo.GetByID(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, err, "fetch lorry receipt")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: lr})
}

// Update applies an allow-listed patch and recomputes the derived totals
// before persisting, so stored money fields never reflect stale client math.
func (h *LorryReceiptHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.LorryReceiptPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}

	userID := middleware.UserID(r.Context())
	lr, err := h.Repo.GetByID(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, err, "fetch lorry receipt")
		return
	}

	patch.Apply(lr)
	lr.ComputeTotals()

	if err := h.Repo.Update(r.Context(), userID, lr); err != nil {
		writeRepoError(w, err, "update lorry receipt")
		return
	}
	h.upsertParties(r, lr)

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Lorry receipt updated successfully",
		Data:    lr,
	})
}

func (h *LorryReceiptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	lr, err := h.Repo.GetByID(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, err, "delete lorry receipt")
		return
	}
	if err := h.Repo.Delete(r.Context(), userID, lr.ID); err != nil {
		writeRepoError(w, err, "delete lorry receipt")
		return
	}
	removeArchivedPDF(h.Logger, "LorryReceipt", lr.LorryReceiptNumber)
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Lorry receipt deleted successfully",
	})
}

func (h *LorryReceiptHandler) PDF(w http.ResponseWriter, r *http.Request) {
	lr, err := h.Repo.GetByID(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, err, "fetch lorry receipt")
		return
	}

	view := views.MapLorryReceiptView(lr, h.Letterhead)
	html, err := templates.RenderLorryReceipt(view)
	if err != nil {
		writeRenderError(w, err)
		return
	}
	pdf, err := h.Renderer.Render(r.Context(), html, renderer.A4())
	if err != nil {
		writeRenderError(w, err)
		return
	}

	archivePDF(h.Logger, "LorryReceipt", lr.LorryReceiptNumber, pdf)
	servePDF(w, "LorryReceipt", lr.LorryReceiptNumber, pdf)
}

// upsertParties records consignor and consignee in the company directory.
// Failures are logged, never surfaced: the document save already succeeded.
func (h *LorryReceiptHandler) upsertParties(r *http.Request, lr *models.LorryReceipt) {
	if h.Companies == nil {
		return
	}
	for _, c := range []models.Company{
		{
			Name:          lr.Consignor.ConsignorName,
			GSTIN:         lr.Consignor.GSTIN,
			ContactNumber: lr.Consignor.ContactNumber,
			Address:       lr.Consignor.Address,
			City:          lr.Consignor.City,
			State:         lr.Consignor.State,
			Country:       lr.Consignor.Country,
			PinCode:       lr.Consignor.PinCode,
		},
		{
			Name:          lr.Consignee.ConsigneeName,
			GSTIN:         lr.Consignee.GSTIN,
			ContactNumber: lr.Consignee.ContactNumber,
			Address:       lr.Consignee.Address,
			City:          lr.Consignee.City,
			State:         lr.Consignee.State,
			Country:       lr.Consignee.Country,
			PinCode:       lr.Consignee.PinCode,
		},
	} {
		c := c
		if err := h.Companies.Upsert(r.Context(), &c); err != nil {
			h.Logger.Warn("company upsert failed", zap.String("name", c.Name), zap.Error(err))
		}
	}
}
