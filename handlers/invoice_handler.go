package handlers

import (
	"net/http"

	"tarapurtransport/middleware"
	"tarapurtransport/renderer"
	"tarapurtransport/repository"
	"tarapurtransport/templates"
	"tarapurtransport/views"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// InvoiceHandler serves invoices derived on the fly from lorry receipts.
// There is no stored invoice record: no create, update or delete.
type InvoiceHandler struct {
	Receipts   repository.LorryReceiptRepository
	Renderer   PDFRenderer
	Letterhead views.Letterhead
	Logger     *zap.Logger
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	lr, err := h.Receipts.GetByID(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["lorryReceiptId"])
	if err != nil {
		writeRepoError(w, err, "fetch lorry receipt")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data:    views.MapInvoiceView(lr, h.Letterhead),
	})
}

func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	lr, err := h.Receipts.GetByID(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["lorryReceiptId"])
	if err != nil {
		writeRepoError(w, err, "fetch lorry receipt")
		return
	}

	view := views.MapInvoiceView(lr, h.Letterhead)
	html, err := templates.RenderInvoice(view)
	if err != nil {
		writeRenderError(w, err)
		return
	}
	pdf, err := h.Renderer.Render(r.Context(), html, renderer.A4())
	if err != nil {
		writeRenderError(w, err)
		return
	}

	archivePDF(h.Logger, "Invoice", lr.LorryReceiptNumber, pdf)
	servePDF(w, "Invoice", lr.LorryReceiptNumber, pdf)
}
