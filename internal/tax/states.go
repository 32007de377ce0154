package tax

// HomeState is the seller's registered place of business. A billing state
// equal to HomeState makes a transaction intrastate (CGST+SGST); anything
// else, including unrecognized names, is treated as interstate (IGST).
//
// Compile-time constant for now; the business is registered in one state.
const HomeState = "Maharashtra"

// stateCodes maps Indian state and union territory names to their
// two-letter GST state codes. Lookups are exact-match and case-sensitive:
// callers must supply the canonical name, e.g. "Maharashtra".
var stateCodes = map[string]string{
	"Andhra Pradesh":    "AP",
	"Arunachal Pradesh": "AR",
	"Assam":             "AS",
	"Bihar":             "BR",
	"Chhattisgarh":      "CG",
	"Goa":               "GA",
	"Gujarat":           "GJ",
	"Haryana":           "HR",
	"Himachal Pradesh":  "HP",
	"Jharkhand":         "JH",
	"Karnataka":         "KA",
	"Kerala":            "KL",
	"Madhya Pradesh":    "MP",
	"Maharashtra":       "MH",
	"Manipur":           "MN",
	"Meghalaya":         "ML",
	"Mizoram":           "MZ",
	"Nagaland":          "NL",
	"Odisha":            "OD",
	"Punjab":            "PB",
	"Rajasthan":         "RJ",
	"Sikkim":            "SK",
	"Tamil Nadu":        "TN",
	"Telangana":         "TS",
	"Tripura":           "TR",
	"Uttar Pradesh":     "UP",
	"Uttarakhand":       "UK",
	"West Bengal":       "WB",

	"Andaman and Nicobar Islands":              "AN",
	"Chandigarh":                               "CH",
	"Dadra and Nagar Haveli and Daman and Diu": "DN",
	"Delhi":                                    "DL",
	"Jammu and Kashmir":                        "JK",
	"Ladakh":                                   "LA",
	"Lakshadweep":                              "LD",
	"Puducherry":                               "PY",
}

// IsValidIndianState reports whether name exactly matches a state or union
// territory in the table. No case folding or normalization is applied.
func IsValidIndianState(name string) bool {
	_, ok := stateCodes[name]
	return ok
}

// StateCode returns the two-letter GST code for a state name.
// ok is false for unrecognized names.
func StateCode(name string) (code string, ok bool) {
	code, ok = stateCodes[name]
	return code, ok
}
