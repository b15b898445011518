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

type DeliverySlipHandler struct {
	Repo      repository.DeliverySlipRepository
	Companies repository.CompanyRepository
	Logger    *zap.Logger
}

func (h *DeliverySlipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var ds models.DeliverySlip
	if err := json.NewDecoder(r.Body).Decode(&ds); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}
	if ds.SlipNumber == "" {
		badRequest(w, "slipNumber is required")
		return
	}
	if ds.Status != "" && !models.IsValidDeliverySlipStatus(ds.Status) {
		badRequest(w, "invalid status: "+ds.Status)
		return
	}

	ds.ID = ""
	ds.CreatedBy = middleware.UserID(r.Context())
	if ds.Date.IsZero() {
		ds.Date = time.Now().UTC()
	}
	if ds.Status == "" {
		ds.Status = models.DSStatusCreated
	}
	ds.DeliveredAt = nil
	if ds.Status == models.DSStatusDelivered {
		now := time.Now().UTC()
		ds.DeliveredAt = &now
	}
	ds.ComputeTotals()

	if err := h.Repo.Create(r.Context(), &ds); err != nil {
		writeRepoError(w, err, "create delivery slip")
		return
	}
	h.upsertParties(r, &ds)

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Delivery slip created successfully",
		Data:    ds,
	})
}

func (h *DeliverySlipHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	p := repository.NormalizePage(page, limit)

	filter := repository.DeliverySlipFilter{
		SlipNumber:         q.Get("slipNumber"),
		LorryReceiptNumber: q.Get("lorryReceiptNumber"),
		Status:             q.Get("status"),
	}

	items, total, err := h.Repo.List(r.Context(), middleware.UserID(r.Context()), filter, p)
	if err != nil {
		writeRepoError(w, err, "list delivery slips")
		return
	}
	if items == nil {
		items = []*models.DeliverySlip{}
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

func (h *DeliverySlipHandler) Get(w http.ResponseWriter, r *http.Request) {
	ds, err := h.Repo.GetByID(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, err, "fetch delivery slip")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: ds})
}

func (h *DeliverySlipHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.DeliverySlipPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}
	if patch.Status != nil && !models.IsValidDeliverySlipStatus(*patch.Status) {
		badRequest(w, "invalid status: "+*patch.Status)
		return
	}

	userID := middleware.UserID(r.Context())
	ds, err := h.Repo.GetByID(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, err, "fetch delivery slip")
		return
	}

	patch.Apply(ds, time.Now().UTC())
	ds.ComputeTotals()

	if err := h.Repo.Update(r.Context(), userID, ds); err != nil {
		writeRepoError(w, err, "update delivery slip")
		return
	}
	h.upsertParties(r, ds)

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Delivery slip updated successfully",
		Data:    ds,
	})
}

// UpdateStatus is the PUT /:id/status sub-endpoint: a status-only transition
// that stamps deliveredAt on the first entry into Delivered.
func (h *DeliverySlipHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}
	if !models.IsValidDeliverySlipStatus(body.Status) {
		badRequest(w, "invalid status: "+body.Status)
		return
	}

	userID := middleware.UserID(r.Context())
	ds, err := h.Repo.GetByID(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, err, "fetch delivery slip")
		return
	}

	ds.TransitionStatus(body.Status, time.Now().UTC())

	if err := h.Repo.Update(r.Context(), userID, ds); err != nil {
		writeRepoError(w, err, "update delivery slip")
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Delivery slip status updated",
		Data:    ds,
	})
}

// upsertParties records the sender and receiver in the company directory.
// Failures are logged, never surfaced: the document save already succeeded.
func (h *DeliverySlipHandler) upsertParties(r *http.Request, ds *models.DeliverySlip) {
	if h.Companies == nil {
		return
	}
	for _, p := range []models.DeliveryParty{ds.PartyDetails.Sender, ds.PartyDetails.Receiver} {
		if p.Name == "" {
			continue
		}
		c := models.Company{
			Name:          p.Name,
			ContactNumber: p.ContactNumber,
			Address:       p.Address,
			City:          p.City,
			State:         p.State,
			PinCode:       p.PinCode,
		}
		if err := h.Companies.Upsert(r.Context(), &c); err != nil {
			h.Logger.Warn("company upsert failed", zap.String("name", c.Name), zap.Error(err))
		}
	}
}

func (h *DeliverySlipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Repo.Delete(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, err, "delete delivery slip")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Delivery slip deleted successfully",
	})
}
