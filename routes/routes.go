package routes

import (
	"net/http"

	"tarapurtransport/auth"
	"tarapurtransport/handlers"
	"tarapurtransport/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Handlers groups everything the router wires up.
type Handlers struct {
	LorryReceipts *handlers.LorryReceiptHandler
	Quotations    *handlers.QuotationHandler
	LoadingSlips  *handlers.LoadingSlipHandler
	DeliverySlips *handlers.DeliverySlipHandler
	Invoices      *handlers.InvoiceHandler
	Companies     *handlers.CompanyHandler
	Users         *handlers.UserHandler
}

// New builds the HTTP handler tree: public auth endpoints, token-guarded API
// routes, plus the metrics and health probes.
func New(h Handlers, jwt *auth.JWTManager, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/user/signup", h.Users.Signup).Methods(http.MethodPost)
	r.HandleFunc("/api/user/login", h.Users.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(jwt))

	api.HandleFunc("/lorry-receipt/create-lorry-receipt", h.LorryReceipts.Create).Methods(http.MethodPost)
	api.HandleFunc("/lorry-receipt", h.LorryReceipts.List).Methods(http.MethodGet)
	api.HandleFunc("/lorry-receipt/{id}", h.LorryReceipts.Get).Methods(http.MethodGet)
	api.HandleFunc("/lorry-receipt/{id}", h.LorryReceipts.Update).Methods(http.MethodPut)
	api.HandleFunc("/lorry-receipt/{id}", h.LorryReceipts.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/lorry-receipt/{id}/pdf", h.LorryReceipts.PDF).Methods(http.MethodGet)

	api.HandleFunc("/quotation/create-quotation", h.Quotations.Create).Methods(http.MethodPost)
	api.HandleFunc("/quotation", h.Quotations.List).Methods(http.MethodGet)
	api.HandleFunc("/quotation/{id}", h.Quotations.Get).Methods(http.MethodGet)
	api.HandleFunc("/quotation/{id}", h.Quotations.Update).Methods(http.MethodPut)
	api.HandleFunc("/quotation/{id}", h.Quotations.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/quotation/{id}/generate-pdf", h.Quotations.GeneratePDF).Methods(http.MethodGet)

	api.HandleFunc("/loading-slip/create-loading-slip", h.LoadingSlips.Create).Methods(http.MethodPost)
	api.HandleFunc("/loading-slip", h.LoadingSlips.List).Methods(http.MethodGet)
	api.HandleFunc("/loading-slip/{id}", h.LoadingSlips.Get).Methods(http.MethodGet)
	api.HandleFunc("/loading-slip/{id}", h.LoadingSlips.Update).Methods(http.MethodPut)
	api.HandleFunc("/loading-slip/{id}", h.LoadingSlips.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/delivery-slip/create-delivery-slip", h.DeliverySlips.Create).Methods(http.MethodPost)
	api.HandleFunc("/delivery-slip", h.DeliverySlips.List).Methods(http.MethodGet)
	api.HandleFunc("/delivery-slip/{id}", h.DeliverySlips.Get).Methods(http.MethodGet)
	api.HandleFunc("/delivery-slip/{id}", h.DeliverySlips.Update).Methods(http.MethodPut)
	api.HandleFunc("/delivery-slip/{id}/status", h.DeliverySlips.UpdateStatus).Methods(http.MethodPut)
	api.HandleFunc("/delivery-slip/{id}", h.DeliverySlips.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/invoice/{lorryReceiptId}", h.Invoices.Get).Methods(http.MethodGet)
	api.HandleFunc("/invoice/{lorryReceiptId}/pdf", h.Invoices.PDF).Methods(http.MethodGet)

	api.HandleFunc("/company", h.Companies.List).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	return middleware.Recovery(logger)(middleware.RequestLog(logger)(c.Handler(r)))
}
