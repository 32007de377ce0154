package tax

// DefaultCategory is the classification used when a caller supplies no
// category. The platform sells gift items, so that is the default.
const DefaultCategory = "gifts"

// categoryRates maps product category to its GST percentage.
// Process-wide static configuration; never mutated at runtime.
var categoryRates = map[string]float64{
	"default":     18,
	"essential":   5,
	"luxury":      28,
	"books":       0,
	"food":        5,
	"electronics": 18,
	"clothing":    12,
	"gifts":       18,
}

// RateForCategory returns the GST percentage for a category. An empty
// category selects DefaultCategory; an unrecognized category silently falls
// back to the "default" rate.
func RateForCategory(category string) float64 {
	if category == "" {
		category = DefaultCategory
	}
	if rate, ok := categoryRates[category]; ok {
		return rate
	}
	return categoryRates["default"]
}

// AvailableRates returns a copy of the category rate table. Mutating the
// returned map does not affect the table.
func AvailableRates() map[string]float64 {
	rates := make(map[string]float64, len(categoryRates))
	for category, rate := range categoryRates {
		rates[category] = rate
	}
	return rates
}
