// Package tax computes India GST breakdowns for order amounts. All
// operations are pure computations over static tables: no I/O, no shared
// mutable state, and nothing here ever returns an error. Malformed input
// (unknown category, unknown state) degrades to documented fallback
// behavior instead of failing, because order creation must never abort a
// checkout over a tax-category typo.
package tax

// Address is a customer's billing location. Only State participates in the
// interstate decision; Country is carried for display and invoicing.
type Address struct {
	State   string `json:"state"`
	Country string `json:"country"`
}

// Breakdown splits a tax total across the GST components. Exactly one of
// {CGST+SGST} or {IGST} is non-zero for any single calculation: intrastate
// transactions populate CGST and SGST in equal halves, interstate
// transactions populate IGST in full. Total equals CGST+SGST+IGST after
// rounding.
type Breakdown struct {
	CGST  float64 `json:"cgst"`
	SGST  float64 `json:"sgst"`
	IGST  float64 `json:"igst"`
	Total float64 `json:"total"`
}

// Calculation is the result of a forward GST computation.
// GrandTotal == Subtotal + TaxTotal to two decimal places.
//
// TaxRate is the nominal percentage applied. On multi-item results it is 0
// as a sentinel meaning "mixed rates": callers must inspect TaxTotal, not
// TaxRate, to decide whether tax was charged.
type Calculation struct {
	Subtotal   float64   `json:"subtotal"`
	Breakdown  Breakdown `json:"tax_breakdown"`
	TaxTotal   float64   `json:"tax_total"`
	GrandTotal float64   `json:"grand_total"`
	TaxRate    float64   `json:"tax_rate"`
}

// LineItem is a single order line for per-item tax calculation. An empty
// Category selects the default gift classification.
type LineItem struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category,omitempty"`
}

// Reverse is the result of extracting the pre-tax base from a
// tax-inclusive total.
type Reverse struct {
	AmountBeforeTax float64 `json:"amount_before_tax"`
	TaxAmount       float64 `json:"tax_amount"`
}

// Exemption is the advisory result of the exemption policy check.
type Exemption struct {
	Exempt bool   `json:"exempt"`
	Reason string `json:"reason,omitempty"`
}

// Calculator computes GST breakdowns relative to the seller's registered
// home state. It is stateless after construction and safe for concurrent
// use from any number of request handlers.
type Calculator struct {
	homeState string
}

// NewCalculator creates a Calculator registered in the home state.
func NewCalculator() *Calculator {
	return &Calculator{homeState: HomeState}
}

// HomeState returns the seller's registered state.
func (c *Calculator) HomeState() string {
	return c.homeState
}
