package tax

import "os"

// giftHSNCode is the HSN classification printed on every invoice line.
// 9505 covers festive and gift articles, which is what the platform sells.
const giftHSNCode = "9505"

// Fallback registration details used when the environment does not provide
// real ones, so invoice generation works in development.
const (
	fallbackGSTIN   = "DUMMY1234567890Z"
	fallbackAddress = "Business Address"
)

// Seller identifies the registered business on a tax invoice.
type Seller struct {
	GSTIN   string `json:"gstin"`
	Address string `json:"address"`
}

// SellerFromEnv reads COMPANY_GSTIN and COMPANY_ADDRESS at call time,
// substituting placeholder registration details when unset.
func SellerFromEnv() Seller {
	gstin := os.Getenv("COMPANY_GSTIN")
	if gstin == "" {
		gstin = fallbackGSTIN
	}
	address := os.Getenv("COMPANY_ADDRESS")
	if address == "" {
		address = fallbackAddress
	}
	return Seller{GSTIN: gstin, Address: address}
}

// OrderDetails carries the order metadata an invoice needs.
// BillingAddress.State is required; it becomes the place of supply.
type OrderDetails struct {
	OrderNumber    string
	BillingAddress Address
}

// InvoiceData is the structured GST invoice payload assembled from a prior
// Calculation plus order metadata.
//
// ExemptionReason is always nil and IsReverseCharge always false: this is a
// data-assembly step, not a second exemption check. Exemption policy lives
// in CheckExemption.
type InvoiceData struct {
	OrderNumber     string      `json:"order_number"`
	TransactionType string      `json:"transaction_type"` // "INTERSTATE" or "INTRASTATE"
	GSTType         string      `json:"gst_type"`         // "IGST" or "CGST+SGST"
	Calculation     Calculation `json:"calculation"`
	HSNCode         string      `json:"hsn_code"`
	PlaceOfSupply   string      `json:"place_of_supply"`
	Seller          Seller      `json:"seller"`
	ExemptionReason *string     `json:"exemption_reason"`
	IsReverseCharge bool        `json:"is_reverse_charge"`
}

// InvoiceData assembles the invoice payload for a completed calculation.
// Seller registration details are read from the environment at generation
// time via SellerFromEnv.
func (c *Calculator) InvoiceData(calc Calculation, order OrderDetails) InvoiceData {
	transactionType, gstType := "INTRASTATE", "CGST+SGST"
	if order.BillingAddress.State != c.homeState {
		transactionType, gstType = "INTERSTATE", "IGST"
	}

	return InvoiceData{
		OrderNumber:     order.OrderNumber,
		TransactionType: transactionType,
		GSTType:         gstType,
		Calculation:     calc,
		HSNCode:         giftHSNCode,
		PlaceOfSupply:   order.BillingAddress.State,
		Seller:          SellerFromEnv(),
		ExemptionReason: nil,
		IsReverseCharge: false,
	}
}
