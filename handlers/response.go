package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tarapurtransport/repository"
)

// ApiResponse is the JSON envelope every endpoint returns.
type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListData wraps a paginated listing.
type ListData struct {
	Items       interface{} `json:"items"`
	Total       int64       `json:"total"`
	TotalPages  int64       `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
}

func totalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return pages
}

func writeJSON(w http.ResponseWriter, status int, resp ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: message})
}

// writeRepoError maps repository errors onto HTTP statuses: missing records
// (including cross-user lookups) become 404, duplicate document numbers 409,
// anything else 500.
func writeRepoError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Record not found",
		})
	case repository.IsDuplicate(err):
		var dup *repository.DuplicateKeyError
		errors.As(err, &dup)
		writeJSON(w, http.StatusConflict, ApiResponse{
			Success: false,
			Message: "Duplicate value for " + dup.Field,
		})
	default:
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to " + action,
			Error:   err.Error(),
		})
	}
}
