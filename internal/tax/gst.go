package tax

import "math"

// roundMoney rounds a monetary value to two decimal places, half up, via
// multiply-by-100/round/divide-by-100. Every monetary figure is rounded
// independently; totals are sums of rounded components, never a rounding
// of the raw sum. This ordering is load-bearing for penny-level
// reproducibility between quote, order, and invoice.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateGST computes the GST breakdown for a subtotal.
//
// The billing state is compared verbatim against the home state: no case
// folding, no state-code normalization. An unrecognized state is simply
// "not the home state" and taxed as interstate. Intrastate transactions
// split the rate into equal CGST and SGST halves; interstate transactions
// charge the full rate as IGST.
//
// An empty category selects DefaultCategory. Inputs are not defended
// against negative or non-finite subtotals; callers validate amounts
// before ordering.
func (c *Calculator) CalculateGST(subtotal float64, billing Address, category string) Calculation {
	rate := RateForCategory(category)

	var cgst, sgst, igst float64
	if billing.State == c.homeState {
		half := roundMoney(subtotal * (rate / 2) / 100)
		cgst, sgst = half, half
	} else {
		igst = roundMoney(subtotal * rate / 100)
	}

	taxTotal := roundMoney(cgst + sgst + igst)
	return Calculation{
		Subtotal:   roundMoney(subtotal),
		Breakdown:  Breakdown{CGST: cgst, SGST: sgst, IGST: igst, Total: taxTotal},
		TaxTotal:   taxTotal,
		GrandTotal: roundMoney(subtotal + taxTotal),
		TaxRate:    rate,
	}
}

// CalculateForItems computes GST per item (each item may carry its own
// category and rate), then sums the subtotal and each tax component across
// items, re-rounding every summed figure.
//
// The aggregate TaxRate is always 0: a sentinel for "mixed rates, no single
// uniform percentage". Callers must not read TaxRate=0 on a multi-item
// result as "zero tax"; TaxTotal carries the answer. An empty item slice
// yields the all-zero Calculation.
func (c *Calculator) CalculateForItems(items []LineItem, billing Address) Calculation {
	var subtotal, cgst, sgst, igst float64
	for _, item := range items {
		calc := c.CalculateGST(item.Amount, billing, item.Category)
		subtotal += calc.Subtotal
		cgst += calc.Breakdown.CGST
		sgst += calc.Breakdown.SGST
		igst += calc.Breakdown.IGST
	}

	subtotal = roundMoney(subtotal)
	cgst = roundMoney(cgst)
	sgst = roundMoney(sgst)
	igst = roundMoney(igst)

	taxTotal := roundMoney(cgst + sgst + igst)
	return Calculation{
		Subtotal:   subtotal,
		Breakdown:  Breakdown{CGST: cgst, SGST: sgst, IGST: igst, Total: taxTotal},
		TaxTotal:   taxTotal,
		GrandTotal: roundMoney(subtotal + taxTotal),
		TaxRate:    0,
	}
}

// ReverseGST recovers the pre-tax base from a tax-inclusive amount:
// base = inclusive / (1 + rate/100), tax = inclusive - base, both rounded.
//
// The billing address is accepted but does not participate: reversing a
// composite rate needs only the category's flat percentage, not its
// CGST/SGST-versus-IGST decomposition. The parameter is kept so the
// signature mirrors CalculateGST.
func (c *Calculator) ReverseGST(amountIncludingTax float64, billing Address, category string) Reverse {
	rate := RateForCategory(category)
	before := roundMoney(amountIncludingTax / (1 + rate/100))
	return Reverse{
		AmountBeforeTax: before,
		TaxAmount:       roundMoney(amountIncludingTax - before),
	}
}
