package api

import (
	"net/http"

	"github.com/nikhilbhatia/upahaar/internal/domain"
	"github.com/nikhilbhatia/upahaar/internal/repository"
	"github.com/nikhilbhatia/upahaar/internal/tax"
	"github.com/nikhilbhatia/upahaar/internal/telemetry"
)

// OrderHandler serves order creation, retrieval, and invoice generation.
type OrderHandler struct {
	orders   domain.OrderService
	invoices domain.InvoiceService
	metrics  *telemetry.BusinessMetrics
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(orders domain.OrderService, invoices domain.InvoiceService, metrics *telemetry.BusinessMetrics) *OrderHandler {
	return &OrderHandler{orders: orders, invoices: invoices, metrics: metrics}
}

type createOrderRequest struct {
	CustomerEmail  string             `json:"customer_email"`
	BillingAddress tax.Address        `json:"billing_address"`
	Items          []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category,omitempty"`
}

type orderResponse struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"order_number"`
	CustomerEmail   string              `json:"customer_email"`
	BillingAddress  tax.Address         `json:"billing_address"`
	Items           []orderItemResponse `json:"items"`
	Tax             tax.Calculation     `json:"tax"`
	TaxExempt       bool                `json:"tax_exempt"`
	ExemptionReason string              `json:"exemption_reason,omitempty"`
}

type orderItemResponse struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category,omitempty"`
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	params := domain.CreateOrderParams{
		CustomerEmail:  req.CustomerEmail,
		BillingAddress: req.BillingAddress,
	}
	for _, item := range req.Items {
		params.Items = append(params.Items, domain.OrderItemParams{
			Name:     item.Name,
			Amount:   item.Amount,
			Category: item.Category,
		})
	}

	detail, err := h.orders.CreateOrder(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.metrics.OrdersCreated.WithLabelValues(labelForBreakdown(detail.Tax.Breakdown)).Inc()
	h.metrics.OrderValue.Observe(detail.Tax.GrandTotal)

	writeJSON(w, http.StatusCreated, orderResponseFrom(detail))
}

// Get handles GET /api/orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.orders.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orderResponseFrom(detail))
}

// Invoice handles GET /api/orders/{id}/invoice.
func (h *OrderHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.invoices.GenerateInvoice(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.metrics.InvoicesGenerated.WithLabelValues(invoice.GSTType).Inc()
	writeJSON(w, http.StatusOK, invoice)
}

func orderResponseFrom(detail *domain.OrderDetail) orderResponse {
	resp := orderResponse{
		ID:            uuidString(detail.Order),
		OrderNumber:   detail.Order.OrderNumber,
		CustomerEmail: detail.Order.CustomerEmail,
		BillingAddress: tax.Address{
			State:   detail.Order.BillingState,
			Country: detail.Order.BillingCountry,
		},
		Tax:             detail.Tax,
		TaxExempt:       detail.Order.TaxExempt,
		ExemptionReason: detail.Order.ExemptionReason.String,
	}
	for _, item := range detail.Items {
		resp.Items = append(resp.Items, orderItemResponse{
			Name:     item.Name,
			Amount:   item.Amount,
			Category: item.Category,
		})
	}
	return resp
}

func uuidString(order repository.Order) string {
	v, err := order.ID.Value()
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// labelForBreakdown classifies a stored breakdown for metrics. IGST set
// means interstate; everything else, including an all-zero breakdown,
// counts as intrastate.
func labelForBreakdown(b tax.Breakdown) string {
	if b.IGST > 0 {
		return "INTERSTATE"
	}
	return "INTRASTATE"
}
