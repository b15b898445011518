package handlers

import (
	"net/http"
	"strconv"

	"tarapurtransport/models"
	"tarapurtransport/repository"
)

// CompanyHandler exposes the party directory built up from document saves.
type CompanyHandler struct {
	Repo repository.CompanyRepository
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	p := repository.NormalizePage(page, limit)

	items, total, err := h.Repo.List(r.Context(), q.Get("name"), p)
	if err != nil {
		writeRepoError(w, err, "list companies")
		return
	}
	if items == nil {
		items = []*models.Company{}
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
