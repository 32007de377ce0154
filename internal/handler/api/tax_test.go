package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nikhilbhatia/upahaar/internal/handler/api"
	"github.com/nikhilbhatia/upahaar/internal/tax"
	"github.com/nikhilbhatia/upahaar/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Prometheus collectors register globally, so the test binary shares one
// set across all tests in this package.
var testMetrics = telemetry.NewBusinessMetrics("test")

func newTaxServer(t *testing.T) http.Handler {
	t.Helper()

	handler := api.NewTaxHandler(tax.NewCalculator(), testMetrics)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/tax/quote", handler.Quote)
	mux.HandleFunc("POST /api/tax/reverse", handler.Reverse)
	mux.HandleFunc("GET /api/tax/rates", handler.Rates)
	mux.HandleFunc("GET /api/tax/states/{name}", handler.State)
	return mux
}

func Test_TaxHandler_Quote(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantContain []string
		explanation string
	}{
		{
			name: "intrastate order splits tax into CGST and SGST",
			body: `{
				"items": [{"amount": 1000, "category": "gifts"}],
				"billing_address": {"state": "Maharashtra", "country": "India"}
			}`,
			wantStatus:  http.StatusOK,
			wantContain: []string{`"cgst":90`, `"sgst":90`, `"igst":0`, `"grand_total":1180`},
			explanation: "home-state billing must produce the CGST+SGST split",
		},
		{
			name: "interstate order charges IGST",
			body: `{
				"items": [{"amount": 1000, "category": "gifts"}],
				"billing_address": {"state": "Delhi", "country": "India"}
			}`,
			wantStatus:  http.StatusOK,
			wantContain: []string{`"cgst":0`, `"sgst":0`, `"igst":180`, `"grand_total":1180`},
			explanation: "any other state must produce the full-rate IGST",
		},
		{
			name: "small order is flagged exempt but still taxed",
			body: `{
				"items": [{"amount": 400, "category": "gifts"}],
				"billing_address": {"state": "Maharashtra", "country": "India"}
			}`,
			wantStatus:  http.StatusOK,
			wantContain: []string{`"exempt":true`, `"reason":"Small order exemption"`, `"tax_total":72`},
			explanation: "the exemption is advisory and never zeroes the calculation",
		},
		{
			name:        "empty items rejected",
			body:        `{"items": [], "billing_address": {"state": "Delhi"}}`,
			wantStatus:  http.StatusBadRequest,
			wantContain: []string{"no items"},
			explanation: "a quote for nothing is a client error",
		},
		{
			name:        "missing billing state rejected",
			body:        `{"items": [{"amount": 100}], "billing_address": {"country": "India"}}`,
			wantStatus:  http.StatusBadRequest,
			wantContain: []string{"Billing state"},
			explanation: "the interstate decision needs a state",
		},
		{
			name:        "negative amount rejected",
			body:        `{"items": [{"amount": -5}], "billing_address": {"state": "Delhi"}}`,
			wantStatus:  http.StatusBadRequest,
			explanation: "the calculator does not defend against bad amounts, so the handler must",
		},
		{
			name:        "malformed JSON rejected",
			body:        `{"items": [`,
			wantStatus:  http.StatusBadRequest,
			explanation: "decode failures map to 400, not 500",
		},
	}

	srv := newTaxServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/tax/quote", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			srv.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, tt.explanation)
			for _, want := range tt.wantContain {
				assert.Contains(t, rec.Body.String(), want, tt.explanation)
			}
		})
	}
}

func Test_TaxHandler_Reverse(t *testing.T) {
	srv := newTaxServer(t)

	body := `{"amount_including_tax": 1180, "billing_address": {"state": "Delhi"}, "category": "gifts"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tax/reverse", strings.NewReader(body))
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"amount_before_tax":1000`)
	assert.Contains(t, rec.Body.String(), `"tax_amount":180`)
}

func Test_TaxHandler_Rates(t *testing.T) {
	srv := newTaxServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tax/rates", nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"default_category":"gifts"`)
	assert.Contains(t, rec.Body.String(), `"books":0`)
	assert.Contains(t, rec.Body.String(), `"luxury":28`)
}

func Test_TaxHandler_State(t *testing.T) {
	srv := newTaxServer(t)

	t.Run("known state resolves to its code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tax/states/Maharashtra", nil)
		rec := httptest.NewRecorder()

		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"MH"`)
	})

	t.Run("unknown state returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tax/states/Atlantis", nil)
		rec := httptest.NewRecorder()

		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tax/states/maharashtra", nil)
		rec := httptest.NewRecorder()

		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
