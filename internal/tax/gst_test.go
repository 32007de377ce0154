package tax_test

import (
	"testing"

	"github.com/nikhilbhatia/upahaar/internal/tax"
	"github.com/stretchr/testify/assert"
)

// Test_Calculator_IntrastateSplit validates the canonical home-state order:
// 1000 at the 18% gift rate splits into equal 9% CGST and SGST halves.
func Test_Calculator_IntrastateSplit(t *testing.T) {
	calc := tax.NewCalculator()

	result := calc.CalculateGST(1000, tax.Address{State: "Maharashtra", Country: "India"}, "gifts")

	assert.Equal(t, 90.0, result.Breakdown.CGST, "1000 * 9% = 90")
	assert.Equal(t, 90.0, result.Breakdown.SGST, "CGST and SGST are equal halves")
	assert.Equal(t, 0.0, result.Breakdown.IGST, "no IGST on intrastate orders")
	assert.Equal(t, 180.0, result.Breakdown.Total)
	assert.Equal(t, 180.0, result.TaxTotal)
	assert.Equal(t, 1180.0, result.GrandTotal)
	assert.Equal(t, 18.0, result.TaxRate)
}

// Test_Calculator_InterstateIGST validates that a different billing state
// charges the full rate as IGST with zero CGST/SGST.
func Test_Calculator_InterstateIGST(t *testing.T) {
	calc := tax.NewCalculator()

	result := calc.CalculateGST(1000, tax.Address{State: "Delhi", Country: "India"}, "gifts")

	assert.Equal(t, 0.0, result.Breakdown.CGST)
	assert.Equal(t, 0.0, result.Breakdown.SGST)
	assert.Equal(t, 180.0, result.Breakdown.IGST, "1000 * 18% = 180")
	assert.Equal(t, 180.0, result.TaxTotal)
	assert.Equal(t, 1180.0, result.GrandTotal)
	assert.Equal(t, 18.0, result.TaxRate)
}

// Test_Calculator_CategoryRates validates per-category rates and the silent
// fallback to the default rate for unknown categories.
func Test_Calculator_CategoryRates(t *testing.T) {
	tests := []struct {
		name         string
		category     string
		expectedRate float64
		expectedIGST float64
		explanation  string
	}{
		{
			name:         "gifts at standard rate",
			category:     "gifts",
			expectedRate: 18,
			expectedIGST: 180,
			explanation:  "1000 * 18% = 180",
		},
		{
			name:         "books zero rated",
			category:     "books",
			expectedRate: 0,
			expectedIGST: 0,
			explanation:  "books carry a 0% rate",
		},
		{
			name:         "essential at reduced rate",
			category:     "essential",
			expectedRate: 5,
			expectedIGST: 50,
			explanation:  "1000 * 5% = 50",
		},
		{
			name:         "luxury at top rate",
			category:     "luxury",
			expectedRate: 28,
			expectedIGST: 280,
			explanation:  "1000 * 28% = 280",
		},
		{
			name:         "clothing at mid rate",
			category:     "clothing",
			expectedRate: 12,
			expectedIGST: 120,
			explanation:  "1000 * 12% = 120",
		},
		{
			name:         "unknown category falls back to default",
			category:     "jewellery",
			expectedRate: 18,
			expectedIGST: 180,
			explanation:  "unrecognized category uses the 18% default, never errors",
		},
		{
			name:         "empty category defaults to gifts",
			category:     "",
			expectedRate: 18,
			expectedIGST: 180,
			explanation:  "empty category selects the gift classification",
		},
	}

	calc := tax.NewCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.CalculateGST(1000, tax.Address{State: "Delhi"}, tt.category)

			assert.Equal(t, tt.expectedRate, result.TaxRate, tt.explanation)
			assert.Equal(t, tt.expectedIGST, result.Breakdown.IGST, tt.explanation)
			assert.Equal(t, 1000+tt.expectedIGST, result.GrandTotal)
		})
	}
}

// Test_Calculator_ZeroRatedIntrastate validates that a zero-rated category
// in the home state produces an all-zero breakdown.
func Test_Calculator_ZeroRatedIntrastate(t *testing.T) {
	calc := tax.NewCalculator()

	result := calc.CalculateGST(1000, tax.Address{State: "Maharashtra"}, "books")

	assert.Equal(t, 0.0, result.TaxRate)
	assert.Equal(t, 0.0, result.Breakdown.CGST)
	assert.Equal(t, 0.0, result.Breakdown.SGST)
	assert.Equal(t, 0.0, result.Breakdown.IGST)
	assert.Equal(t, 0.0, result.TaxTotal)
	assert.Equal(t, 1000.0, result.GrandTotal)
}

// Test_Calculator_UnknownStateIsInterstate validates that a state missing
// from the table is treated as "not the home state", never an error.
func Test_Calculator_UnknownStateIsInterstate(t *testing.T) {
	calc := tax.NewCalculator()

	result := calc.CalculateGST(1000, tax.Address{State: "Atlantis"}, "gifts")

	assert.Equal(t, 180.0, result.Breakdown.IGST, "unknown state taxes as interstate")
	assert.Equal(t, 0.0, result.Breakdown.CGST)
	assert.Equal(t, 0.0, result.Breakdown.SGST)
}

// Test_Calculator_CaseSensitiveStateMatch validates that the home-state
// comparison is an exact string match with no case folding.
func Test_Calculator_CaseSensitiveStateMatch(t *testing.T) {
	calc := tax.NewCalculator()

	result := calc.CalculateGST(1000, tax.Address{State: "maharashtra"}, "gifts")

	assert.Equal(t, 180.0, result.Breakdown.IGST, "lowercase state name does not match the home state")
	assert.Equal(t, 0.0, result.Breakdown.CGST)
}

// Test_Calculator_ComponentRounding validates that each component is
// rounded independently before totals are summed. At 100.25 the half-rate
// rounds down per component while the full rate rounds up, so the same
// order costs a paisa less intrastate than interstate.
func Test_Calculator_ComponentRounding(t *testing.T) {
	calc := tax.NewCalculator()

	intra := calc.CalculateGST(100.25, tax.Address{State: "Maharashtra"}, "gifts")
	assert.Equal(t, 9.02, intra.Breakdown.CGST, "100.25 * 9% = 9.0225, rounds to 9.02")
	assert.Equal(t, 9.02, intra.Breakdown.SGST)
	assert.Equal(t, 18.04, intra.TaxTotal, "sum of rounded halves, not a rounding of 18.045")
	assert.Equal(t, 118.29, intra.GrandTotal)

	inter := calc.CalculateGST(100.25, tax.Address{State: "Delhi"}, "gifts")
	assert.Equal(t, 18.05, inter.Breakdown.IGST, "100.25 * 18% = 18.045, rounds half-up to 18.05")
	assert.Equal(t, 118.30, inter.GrandTotal)
}

// Test_Calculator_HalfUpRounding validates half-up behavior on an exact
// half-paisa boundary.
func Test_Calculator_HalfUpRounding(t *testing.T) {
	calc := tax.NewCalculator()

	result := calc.CalculateGST(102.5, tax.Address{State: "Delhi"}, "essential")

	assert.Equal(t, 5.13, result.Breakdown.IGST, "102.5 * 5% = 5.125, half rounds up to 5.13")
	assert.Equal(t, 107.63, result.GrandTotal)
}

// Test_Calculator_ZeroSubtotal validates that a zero subtotal yields an
// all-zero calculation rather than an error.
func Test_Calculator_ZeroSubtotal(t *testing.T) {
	calc := tax.NewCalculator()

	for _, state := range []string{"Maharashtra", "Delhi"} {
		result := calc.CalculateGST(0, tax.Address{State: state}, "gifts")
		assert.Equal(t, 0.0, result.Subtotal)
		assert.Equal(t, 0.0, result.TaxTotal)
		assert.Equal(t, 0.0, result.GrandTotal)
		assert.Equal(t, 18.0, result.TaxRate, "rate is reported even when nothing is taxed")
	}
}

// Test_Calculator_MutualExclusivity validates the breakdown invariant
// across every category and a spread of states: exactly one of {CGST+SGST}
// or {IGST} is populated, totals reconcile, and grand total equals
// subtotal plus tax.
func Test_Calculator_MutualExclusivity(t *testing.T) {
	calc := tax.NewCalculator()
	subtotals := []float64{1, 49.99, 500, 999.95, 123456.78}
	states := []string{"Maharashtra", "Delhi", "Karnataka", "Tamil Nadu", "Nowhere"}

	for category := range tax.AvailableRates() {
		for _, state := range states {
			for _, subtotal := range subtotals {
				result := calc.CalculateGST(subtotal, tax.Address{State: state}, category)

				if state == "Maharashtra" {
					assert.Equal(t, result.Breakdown.CGST, result.Breakdown.SGST,
						"intrastate halves must be equal (%s, %v)", category, subtotal)
					assert.Zero(t, result.Breakdown.IGST)
				} else {
					assert.Zero(t, result.Breakdown.CGST)
					assert.Zero(t, result.Breakdown.SGST)
				}

				sum := result.Breakdown.CGST + result.Breakdown.SGST + result.Breakdown.IGST
				assert.InDelta(t, sum, result.Breakdown.Total, 0.005,
					"total is the sum of rounded components (%s, %s, %v)", category, state, subtotal)
				assert.InDelta(t, result.Subtotal+result.TaxTotal, result.GrandTotal, 0.005,
					"grand total reconciles (%s, %s, %v)", category, state, subtotal)
			}
		}
	}
}

// Test_Calculator_Idempotency validates that identical inputs produce
// bit-identical outputs.
func Test_Calculator_Idempotency(t *testing.T) {
	calc := tax.NewCalculator()
	billing := tax.Address{State: "Karnataka", Country: "India"}

	first := calc.CalculateGST(4723.87, billing, "electronics")
	second := calc.CalculateGST(4723.87, billing, "electronics")

	assert.Equal(t, first, second)
}

// Test_Calculator_ForItems validates the multi-item aggregation: per-item
// rates, summed components re-rounded, and the TaxRate=0 mixed-rate
// sentinel.
func Test_Calculator_ForItems(t *testing.T) {
	calc := tax.NewCalculator()
	items := []tax.LineItem{
		{Amount: 1000, Category: "gifts"},    // 18%
		{Amount: 500, Category: "books"},     // 0%
		{Amount: 200, Category: "essential"}, // 5%
	}

	t.Run("intrastate", func(t *testing.T) {
		result := calc.CalculateForItems(items, tax.Address{State: "Maharashtra"})

		assert.Equal(t, 1700.0, result.Subtotal)
		assert.Equal(t, 95.0, result.Breakdown.CGST, "90 + 0 + 5")
		assert.Equal(t, 95.0, result.Breakdown.SGST)
		assert.Equal(t, 0.0, result.Breakdown.IGST)
		assert.Equal(t, 190.0, result.TaxTotal)
		assert.Equal(t, 1890.0, result.GrandTotal)
		assert.Equal(t, 0.0, result.TaxRate, "mixed-rate sentinel, not zero tax")
	})

	t.Run("interstate", func(t *testing.T) {
		result := calc.CalculateForItems(items, tax.Address{State: "Delhi"})

		assert.Equal(t, 1700.0, result.Subtotal)
		assert.Equal(t, 190.0, result.Breakdown.IGST, "180 + 0 + 10")
		assert.Equal(t, 0.0, result.Breakdown.CGST)
		assert.Equal(t, 190.0, result.TaxTotal)
		assert.Equal(t, 1890.0, result.GrandTotal)
		assert.Equal(t, 0.0, result.TaxRate)
	})
}

// Test_Calculator_ForItems_Empty validates that an empty order yields the
// all-zero calculation.
func Test_Calculator_ForItems_Empty(t *testing.T) {
	calc := tax.NewCalculator()

	result := calc.CalculateForItems(nil, tax.Address{State: "Maharashtra"})

	assert.Equal(t, 0.0, result.Subtotal)
	assert.Equal(t, 0.0, result.TaxTotal)
	assert.Equal(t, 0.0, result.GrandTotal)
	assert.Equal(t, 0.0, result.TaxRate)
}

// Test_Calculator_ForItems_SingleUniformCategory validates that even a
// single-item aggregate reports the sentinel rate, matching the documented
// contract rather than echoing the item's rate.
func Test_Calculator_ForItems_SingleUniformCategory(t *testing.T) {
	calc := tax.NewCalculator()

	result := calc.CalculateForItems([]tax.LineItem{{Amount: 1000, Category: "gifts"}}, tax.Address{State: "Delhi"})

	assert.Equal(t, 180.0, result.TaxTotal)
	assert.Equal(t, 0.0, result.TaxRate, "aggregate results always use the sentinel")
}
