package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"tarapurtransport/middleware"
	"tarapurtransport/models"
	"tarapurtransport/repository"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// LoadingSlipHandler covers the loading slip CRUD surface. Loading slips are
// internal documents and have no PDF endpoint.
type LoadingSlipHandler struct {
	Repo      repository.LoadingSlipRepository
	Companies repository.CompanyRepository
	Logger    *zap.Logger
}

func (h *LoadingSlipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var ls models.LoadingSlip
	if err := json.NewDecoder(r.Body).Decode(&ls); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}
	if ls.SlipNumber == "" {
		badRequest(w, "slipNumber is required")
		return
	}

	ls.ID = ""
	ls.CreatedBy = middleware.UserID(r.Context())
	if ls.Date.IsZero() {
		ls.Date = time.Now().UTC()
	}
	ls.ComputeTotals()

	if err := h.Repo.Create(r.Context(), &ls); err != nil {
		writeRepoError(w, err, "create loading slip")
		return
	}
	h.upsertParty(r, &ls)

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Loading slip created successfully",
		Data:    ls,
	})
}

func (h *LoadingSlipHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	p := repository.NormalizePage(page, limit)

	filter := repository.LoadingSlipFilter{
		SlipNumber:  q.Get("slipNumber"),
		TruckNumber: q.Get("truckNumber"),
		CompanyName: q.Get("companyName"),
	}

	items, total, err := h.Repo.List(r.Context(), middleware.UserID(r.Context()), filter, p)
	if err != nil {
		writeRepoError(w, err, "list loading slips")
		return
	}
	if items == nil {
		items = []*models.LoadingSlip{}
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

func (h *LoadingSlipHandler) Get(w http.ResponseWriter, r *http.Request) {
	ls, err := h.Repo.GetByID(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, err, "fetch loading slip")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: ls})
}

func (h *LoadingSlipHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.LoadingSlipPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}

	userID := middleware.UserID(r.Context())
	ls, err := h.Repo.GetByID(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, err, "fetch loading slip")
		return
	}

	patch.Apply(ls)
	ls.ComputeTotals()

	if err := h.Repo.Update(r.Context(), userID, ls); err != nil {
		writeRepoError(w, err, "update loading slip")
		return
	}
	h.upsertParty(r, ls)

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Loading slip updated successfully",
		Data:    ls,
	})
}

func (h *LoadingSlipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Repo.Delete(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, err, "delete loading slip")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Loading slip deleted successfully",
	})
}

func (h *LoadingSlipHandler) upsertParty(r *http.Request, ls *models.LoadingSlip) {
	if h.Companies == nil || ls.CompanyDetails.CompanyName == "" {
		return
	}
	c := models.Company{
		Name:          ls.CompanyDetails.CompanyName,
		GSTIN:         ls.CompanyDetails.GSTIN,
		ContactNumber: ls.CompanyDetails.ContactNumber,
		Address:       ls.CompanyDetails.Address,
		City:          ls.CompanyDetails.City,
		State:         ls.CompanyDetails.State,
		PinCode:       ls.CompanyDetails.PinCode,
	}
	if err := h.Companies.Upsert(r.Context(), &c); err != nil {
		h.Logger.Warn("company upsert failed", zap.String("name", c.Name), zap.Error(err))
	}
}
