package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tarapurtransport/models"
	"tarapurtransport/renderer"
	"tarapurtransport/views"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const tpr100JSON = `{
	"lorryReceiptNumber": "TPR-100",
	"date": "2024-02-05T00:00:00Z",
	"consignor": {"consignorName": "A Traders", "contactNumber": "9999999999", "address": "Plot 1", "city": "Tarapur", "state": "MH", "country": "India", "pinCode": "401506"},
	"consignee": {"consigneeName": "B Corp", "contactNumber": "8888888888", "address": "Plot 2", "city": "Mumbai", "state": "MH", "country": "India", "pinCode": "400001"},
	"materialDetails": [{"materialName": "Steel Coils", "packagingType": "Coil", "quantity": 1, "numberOfArticles": 1, "actualWeight": {"value": 10, "unit": "MT"}, "chargedWeight": {"value": 10, "unit": "MT"}, "freightRate": {"value": 5000, "unit": "Per MT"}}],
	"truckDetails": {"truckNumber": "MH-04-AB-1234", "vehicleType": "Open Body", "from": "Tarapur", "weightGuarantee": {"value": 10, "unit": "MT"}, "driverName": "Ramesh", "driverMobile": "7777777777", "licenseNumber": "MH1234", "loadType": "Full Load"},
	"freightDetails": {
		"freightType": "Paid",
		"totalBasicFreight": 5000,
		"charges": {},
		"gstDetails": {"applicableGST": "NIL (On reverse charge)", "gstAmount": 0},
		"roundOff": 0,
		"tdsDetails": {"tdsAmount": 0},
		"advanceDetails": {"advanceReceived": 2000},
		"freightPayBy": "Consignor"
	}
}`

func newLRRouter(repo *fakeLRRepo, rend *fakeRenderer) http.Handler {
	h := &LorryReceiptHandler{
		Repo:       repo,
		Companies:  &fakeCompanyRepo{},
		Renderer:   rend,
		Letterhead: views.Letterhead{Name: "Tarapur Transport"},
		Logger:     zap.NewNop(),
	}
	r := mux.NewRouter()
	r.HandleFunc("/api/lorry-receipt/create-lorry-receipt", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/lorry-receipt", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/lorry-receipt/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/lorry-receipt/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/lorry-receipt/{id}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/api/lorry-receipt/{id}/pdf", h.PDF).Methods(http.MethodGet)
	return testAuth(r)
}

func doJSON(t *testing.T, handler http.Handler, method, path, body, user string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func createdID(t *testing.T, rec *httptest.ResponseRecorder) (string, map[string]interface{}) {
	t.Helper()
	var resp struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	id, _ := resp.Data["id"].(string)
	require.NotEmpty(t, id)
	return id, resp.Data
}

func TestLorryReceiptCreateComputesTotals(t *testing.T) {
	router := newLRRouter(newFakeLRRepo(), &fakeRenderer{})

	rec := doJSON(t, router, http.MethodPost, "/api/lorry-receipt/create-lorry-receipt", tpr100JSON, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	_, data := createdID(t, rec)
	fd := data["freightDetails"].(map[string]interface{})
	assert.Equal(t, 5000.0, fd["subTotal"])
	assert.Equal(t, 5000.0, fd["totalFreight"])
	advance := fd["advanceDetails"].(map[string]interface{})
	assert.Equal(t, 3000.0, advance["remainingFreight"])
	assert.Equal(t, models.LRStatusCreated, data["status"])
}

func TestLorryReceiptPDFEndToEnd(t *testing.T) {
	rend := &fakeRenderer{}
	router := newLRRouter(newFakeLRRepo(), rend)

	rec := doJSON(t, router, http.MethodPost, "/api/lorry-receipt/create-lorry-receipt", tpr100JSON, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	id, _ := createdID(t, rec)

	rec = doJSON(t, router, http.MethodGet, "/api/lorry-receipt/"+id+"/pdf", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=LorryReceipt-TPR-100.pdf`, rec.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, rec.Header().Get("Content-Length"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	assert.Contains(t, rend.lastHTML, "TPR-100")
	assert.Contains(t, rend.lastHTML, "A Traders")
	assert.Contains(t, rend.lastHTML, "Consignor Copy")
}

func TestLorryReceiptCreateValidation(t *testing.T) {
	router := newLRRouter(newFakeLRRepo(), &fakeRenderer{})

	rec := doJSON(t, router, http.MethodPost, "/api/lorry-receipt/create-lorry-receipt", `{"consignor":{"consignorName":"A"},"consignee":{"consigneeName":"B"}}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Number and parties alone are not enough: the consignment needs
	// materials and a truck.
	noMaterials := `{
		"lorryReceiptNumber": "TPR-101",
		"consignor": {"consignorName": "A Traders"},
		"consignee": {"consigneeName": "B Corp"},
		"truckDetails": {"truckNumber": "MH-04-AB-1234"}
	}`
	rec = doJSON(t, router, http.MethodPost, "/api/lorry-receipt/create-lorry-receipt", noMaterials, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "materialDetails")

	noTruck := `{
		"lorryReceiptNumber": "TPR-102",
		"consignor": {"consignorName": "A Traders"},
		"consignee": {"consigneeName": "B Corp"},
		"materialDetails": [{"materialName": "Steel Coils", "chargedWeight": {"value": 10, "unit": "MT"}}]
	}`
	rec = doJSON(t, router, http.MethodPost, "/api/lorry-receipt/create-lorry-receipt", noTruck, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "truckDetails")

	rec = doJSON(t, router, http.MethodPost, "/api/lorry-receipt/create-lorry-receipt", `not json`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLorryReceiptDuplicateNumber(t *testing.T) {
	router := newLRRouter(newFakeLRRepo(), &fakeRenderer{})

	rec := doJSON(t, router, http.MethodPost, "/api/lorry-receipt/create-lorry-receipt", tpr100JSON, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/lorry-receipt/create-lorry-receipt", tpr100JSON, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "lorryReceiptNumber")
}

func TestLorryReceiptOwnerScoping(t *testing.T) {
	router := newLRRouter(newFakeLRRepo(), &fakeRenderer{})

	rec := doJSON(t, router, http.MethodPost, "/api/lorry-receipt/create-lorry-receipt", tpr100JSON, "user-1")
	require.Equal(t, http.StatusCreated, rec.Code)
	id, _ := createdID(t, rec)

	// Another user's lookup of the same id reads as missing.
	rec = doJSON(t, router, http.MethodGet, "/api/lorry-receipt/"+id, "", "user-2")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/lorry-receipt/"+id, "", "user-1")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLorryReceiptUpdateRecomputesTotals(t *testing.T) {
	router := newLRRouter(newFakeLRRepo(), &fakeRenderer{})

	rec := doJSON(t, router, http.MethodPost, "/api/lorry-receipt/create-lorry-receipt", tpr100JSON, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	id, _ := createdID(t, rec)

	// Bump basic freight; stale client totals in the patch section get
	// overwritten by the server-side recompute.
	patch := `{"freightDetails": {
		"freightType": "Paid",
		"totalBasicFreight": 8000,
		"charges": {"loadingCharge": 500},
		"gstDetails": {"applicableGST": "NIL (On reverse charge)", "gstAmount": 0},
		"tdsDetails": {"tdsAmount": 0},
		"advanceDetails": {"advanceReceived": 2000},
		"totalFreight": 1
	}}`
	rec = doJSON(t, router, http.MethodPut, "/api/lorry-receipt/"+id, patch, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	_, data := createdID(t, rec)
	fd := data["freightDetails"].(map[string]interface{})
	assert.Equal(t, 8500.0, fd["subTotal"])
	assert.Equal(t, 8500.0, fd["totalFreight"])
	advance := fd["advanceDetails"].(map[string]interface{})
	assert.Equal(t, 6500.0, advance["remainingFreight"])
}

func TestLorryReceiptDelete(t *testing.T) {
	router := newLRRouter(newFakeLRRepo(), &fakeRenderer{})

	rec := doJSON(t, router, http.MethodPost, "/api/lorry-receipt/create-lorry-receipt", tpr100JSON, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	id, _ := createdID(t, rec)

	rec = doJSON(t, router, http.MethodDelete, "/api/lorry-receipt/"+id, "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/lorry-receipt/"+id, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLorryReceiptPDFFailureReturnsJSON(t *testing.T) {
	rend := &fakeRenderer{err: renderer.NewRenderError(renderer.ErrCodeRenderTimeout, "render timed out", errors.New("deadline"))}
	router := newLRRouter(newFakeLRRepo(), rend)

	rec := doJSON(t, router, http.MethodPost, "/api/lorry-receipt/create-lorry-receipt", tpr100JSON, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	id, _ := createdID(t, rec)

	rec = doJSON(t, router, http.MethodGet, "/api/lorry-receipt/"+id+"/pdf", "", "")
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestLorryReceiptList(t *testing.T) {
	router := newLRRouter(newFakeLRRepo(), &fakeRenderer{})

	rec := doJSON(t, router, http.MethodPost, "/api/lorry-receipt/create-lorry-receipt", tpr100JSON, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/lorry-receipt?page=1&limit=10", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Items       []json.RawMessage `json:"items"`
			Total       int64             `json:"total"`
			TotalPages  int64             `json:"totalPages"`
			CurrentPage int               `json:"currentPage"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Items, 1)
	assert.Equal(t, int64(1), resp.Data.Total)
	assert.Equal(t, int64(1), resp.Data.TotalPages)
	assert.Equal(t, 1, resp.Data.CurrentPage)

	// Empty result stays an array, not null.
	rec = doJSON(t, router, http.MethodGet, "/api/lorry-receipt?status=Cancelled", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}
