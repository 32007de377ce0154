package domain

import (
	"context"

	"github.com/nikhilbhatia/upahaar/internal/repository"
	"github.com/nikhilbhatia/upahaar/internal/tax"
)

// Order-related domain errors.
var (
	ErrOrderNotFound       = &Error{Code: ENOTFOUND, Message: "Order not found"}
	ErrEmptyOrder          = &Error{Code: EINVALID, Message: "Order has no items"}
	ErrMissingBillingState = &Error{Code: EINVALID, Message: "Billing state is required"}
	ErrInvalidItemAmount   = &Error{Code: EINVALID, Message: "Item amount must be a non-negative finite number"}
)

// OrderService provides business logic for order operations. The tax
// engine itself never validates amounts, so implementations must reject
// negative and non-finite item amounts before calculating.
type OrderService interface {
	// CreateOrder calculates GST for the items, persists the order with
	// its tax breakdown, and returns the order detail.
	CreateOrder(ctx context.Context, params CreateOrderParams) (*OrderDetail, error)

	// GetOrder retrieves a single order by ID.
	GetOrder(ctx context.Context, orderID string) (*OrderDetail, error)

	// GetOrderByNumber retrieves a single order by order number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*OrderDetail, error)
}

// InvoiceService assembles GST invoice payloads for stored orders.
type InvoiceService interface {
	// GenerateInvoice builds the tax invoice payload for an order.
	GenerateInvoice(ctx context.Context, orderID string) (*tax.InvoiceData, error)
}

// CreateOrderParams contains parameters for creating an order.
type CreateOrderParams struct {
	CustomerEmail  string
	BillingAddress tax.Address
	Items          []OrderItemParams
}

// OrderItemParams is a single line of a new order. An empty Category
// selects the default gift classification.
type OrderItemParams struct {
	Name     string
	Amount   float64
	Category string
}

// OrderDetail aggregates an order with its items and the tax calculation
// reconstructed from the stored breakdown.
type OrderDetail struct {
	Order repository.Order
	Items []repository.OrderItem
	Tax   tax.Calculation
}
