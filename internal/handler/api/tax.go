package api

import (
	"fmt"
	"math"
	"net/http"

	"github.com/nikhilbhatia/upahaar/internal/domain"
	"github.com/nikhilbhatia/upahaar/internal/tax"
	"github.com/nikhilbhatia/upahaar/internal/telemetry"
)

// TaxHandler serves tax quotes and the static rate and state tables. It
// wraps the pure calculator; all validation happens here because the
// calculator itself never rejects input.
type TaxHandler struct {
	calc    *tax.Calculator
	metrics *telemetry.BusinessMetrics
}

// NewTaxHandler creates a TaxHandler.
func NewTaxHandler(calc *tax.Calculator, metrics *telemetry.BusinessMetrics) *TaxHandler {
	return &TaxHandler{calc: calc, metrics: metrics}
}

type quoteRequest struct {
	Items          []tax.LineItem `json:"items"`
	BillingAddress tax.Address    `json:"billing_address"`
}

type quoteResponse struct {
	Calculation tax.Calculation `json:"calculation"`
	Exemption   tax.Exemption   `json:"exemption"`
}

// Quote handles POST /api/tax/quote. It prices a basket without creating
// an order: the same per-item calculation and advisory exemption check
// that order creation runs, minus persistence.
func (h *TaxHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if len(req.Items) == 0 {
		writeError(w, r, domain.ErrEmptyOrder)
		return
	}
	if req.BillingAddress.State == "" {
		writeError(w, r, domain.ErrMissingBillingState)
		return
	}
	// Same rule as order creation: the calculator does not defend against
	// bad amounts, so quotes reject them here. NaN/Inf cannot survive JSON
	// decoding today, but the checks stay aligned with the order path.
	for i, item := range req.Items {
		if item.Amount < 0 || math.IsNaN(item.Amount) || math.IsInf(item.Amount, 0) {
			writeError(w, r, domain.WrapError(domain.ErrInvalidItemAmount, domain.EINVALID, "tax.quote",
				fmt.Sprintf("Item %d: amount must be a non-negative finite number", i)))
			return
		}
	}

	calc := h.calc.CalculateForItems(req.Items, req.BillingAddress)
	exemption := tax.CheckExemption(calc.Subtotal, uniformItemCategory(req.Items))

	h.metrics.TaxQuotes.WithLabelValues(transactionType(h.calc, req.BillingAddress)).Inc()
	if exemption.Exempt {
		h.metrics.TaxExemptions.WithLabelValues(exemption.Reason).Inc()
	}

	writeJSON(w, http.StatusOK, quoteResponse{Calculation: calc, Exemption: exemption})
}

type reverseRequest struct {
	AmountIncludingTax float64     `json:"amount_including_tax"`
	BillingAddress     tax.Address `json:"billing_address"`
	Category           string      `json:"category"`
}

// Reverse handles POST /api/tax/reverse. It extracts the pre-tax base
// from a tax-inclusive amount for the given category.
func (h *TaxHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	var req reverseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.AmountIncludingTax < 0 {
		writeError(w, r, domain.Errorf(domain.EINVALID, "tax.reverse",
			"amount must be a non-negative finite number"))
		return
	}

	h.metrics.ReverseLookups.Inc()
	writeJSON(w, http.StatusOK, h.calc.ReverseGST(req.AmountIncludingTax, req.BillingAddress, req.Category))
}

type ratesResponse struct {
	DefaultCategory string             `json:"default_category"`
	Rates           map[string]float64 `json:"rates"`
}

// Rates handles GET /api/tax/rates, returning the category rate table.
func (h *TaxHandler) Rates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ratesResponse{
		DefaultCategory: tax.DefaultCategory,
		Rates:           tax.AvailableRates(),
	})
}

type stateResponse struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// State handles GET /api/tax/states/{name}, resolving a state name to its
// two-letter GST code. Lookups are exact-match and case-sensitive.
func (h *TaxHandler) State(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	code, ok := tax.StateCode(name)
	if !ok {
		writeError(w, r, domain.Errorf(domain.ENOTFOUND, "tax.state", "Unknown state %q", name))
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{Name: name, Code: code})
}

// uniformItemCategory returns the single category shared by every line, or
// "" when mixed. Mirrors the rule applied at order creation.
func uniformItemCategory(items []tax.LineItem) string {
	category := items[0].Category
	for _, item := range items[1:] {
		if item.Category != category {
			return ""
		}
	}
	return category
}

// transactionType labels a billing address for metrics the same way the
// calculator decides the split.
func transactionType(calc *tax.Calculator, billing tax.Address) string {
	if billing.State == calc.HomeState() {
		return "INTRASTATE"
	}
	return "INTERSTATE"
}
