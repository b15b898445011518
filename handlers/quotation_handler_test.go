package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"tarapurtransport/repository"
	"tarapurtransport/views"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const quoteJSON = `{
	"quotationNumber": "QT-2024-07",
	"quoteToCompany": {"companyName": "B Corp", "gstin": "27AABCU9603R1ZN", "city": "Mumbai"},
	"materialDetails": [{"materialName": "Steel Coils", "weight": {"value": 10, "unit": "MT"}}],
	"tripDetails": {"from": "Tarapur", "to": "Mumbai", "distanceKm": 120},
	"vehicleDetails": [{"vehicleType": "Open Body", "numberOfVehicles": 2, "loadType": "Full Load"}],
	"freightBreakup": {
		"rate": {"value": 20000, "unit": "Per Trip"},
		"extraCharges": {"tollCharge": 800, "loadingCharge": 200},
		"applicableGST": "12.0%"
	},
	"paymentTerms": "50% advance",
	"quotationValidity": {"validUpTo": {"type": "Days", "value": "30"}}
}`

func newQuotationRouter(repo *fakeQuotationRepo, companies *fakeCompanyRepo, rend *fakeRenderer) http.Handler {
	h := &QuotationHandler{
		Repo:       repo,
		Companies:  companies,
		Renderer:   rend,
		Letterhead: views.Letterhead{Name: "Tarapur Transport"},
		Logger:     zap.NewNop(),
	}
	r := mux.NewRouter()
	r.HandleFunc("/api/quotation/create-quotation", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/quotation", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/quotation/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/quotation/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/quotation/{id}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/api/quotation/{id}/generate-pdf", h.GeneratePDF).Methods(http.MethodGet)
	return testAuth(r)
}

func TestQuotationCreateComputesTotals(t *testing.T) {
	router := newQuotationRouter(newFakeQuotationRepo(), &fakeCompanyRepo{}, &fakeRenderer{})

	rec := doJSON(t, router, http.MethodPost, "/api/quotation/create-quotation", quoteJSON, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	_, data := createdID(t, rec)
	fb := data["freightBreakup"].(map[string]interface{})
	extras := fb["extraCharges"].(map[string]interface{})
	assert.Equal(t, 1000.0, extras["totalExtraCharges"])
	// 12% of 21000
	assert.Equal(t, 2520.0, fb["gstAmount"])
	assert.Equal(t, 23520.0, fb["totalFreightWithGst"])

	validity := data["quotationValidity"].(map[string]interface{})
	assert.NotEmpty(t, validity["expiryDate"], "30-day validity derives an expiry date")
}

func TestQuotationCreateUpsertsCompany(t *testing.T) {
	companies := &fakeCompanyRepo{}
	router := newQuotationRouter(newFakeQuotationRepo(), companies, &fakeRenderer{})

	rec := doJSON(t, router, http.MethodPost, "/api/quotation/create-quotation", quoteJSON, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	list, total, err := companies.List(context.Background(), "b corp", repository.NormalizePage(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, "27AABCU9603R1ZN", list[0].GSTIN)
}

func TestQuotationGeneratePDF(t *testing.T) {
	rend := &fakeRenderer{}
	router := newQuotationRouter(newFakeQuotationRepo(), &fakeCompanyRepo{}, rend)

	rec := doJSON(t, router, http.MethodPost, "/api/quotation/create-quotation", quoteJSON, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	id, _ := createdID(t, rec)

	rec = doJSON(t, router, http.MethodGet, "/api/quotation/"+id+"/generate-pdf", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=Quotation-QT-2024-07.pdf`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	assert.Contains(t, rend.lastHTML, "QT-2024-07")
	assert.Contains(t, rend.lastHTML, "B Corp")
}

func TestQuotationUpdateRecomputes(t *testing.T) {
	router := newQuotationRouter(newFakeQuotationRepo(), &fakeCompanyRepo{}, &fakeRenderer{})

	rec := doJSON(t, router, http.MethodPost, "/api/quotation/create-quotation", quoteJSON, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	id, _ := createdID(t, rec)

	patch := `{"freightBreakup": {
		"rate": {"value": 25000, "unit": "Per Trip"},
		"extraCharges": {},
		"applicableGST": "NIL (On reverse charge)",
		"gstAmount": 0
	}}`
	rec = doJSON(t, router, http.MethodPut, "/api/quotation/"+id, patch, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	_, data := createdID(t, rec)
	fb := data["freightBreakup"].(map[string]interface{})
	assert.Equal(t, 0.0, fb["gstAmount"])
	assert.Equal(t, 25000.0, fb["totalFreightWithGst"])
}

func TestQuotationValidation(t *testing.T) {
	router := newQuotationRouter(newFakeQuotationRepo(), &fakeCompanyRepo{}, &fakeRenderer{})

	rec := doJSON(t, router, http.MethodPost, "/api/quotation/create-quotation", `{"quoteToCompany":{"companyName":"B Corp"}}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/quotation/create-quotation", `{"quotationNumber":"QT-1","quoteToCompany":{}}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
