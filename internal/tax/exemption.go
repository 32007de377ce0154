package tax

// smallOrderThreshold is the order value below which tax exemption applies.
const smallOrderThreshold = 500

// CheckExemption applies the exemption policy, first match wins:
//
//  1. orders under the small-order threshold
//  2. the books category (educational material)
//
// The check is advisory. CalculateGST never consults it, and the books rule
// stands apart from the rate table's zero-rating of books: one is a
// compliance flag, the other a rate, and a future rate change must not
// silently drop the exemption.
func CheckExemption(orderAmount float64, category string) Exemption {
	if orderAmount < smallOrderThreshold {
		return Exemption{Exempt: true, Reason: "Small order exemption"}
	}
	if category == "books" {
		return Exemption{Exempt: true, Reason: "Educational material exemption"}
	}
	return Exemption{}
}
