package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/nikhilbhatia/upahaar/internal/domain"
	"github.com/nikhilbhatia/upahaar/internal/repository"
	"github.com/nikhilbhatia/upahaar/internal/tax"
)

type orderService struct {
	repo repository.Querier
	calc *tax.Calculator
}

// NewOrderService creates an OrderService backed by repo and the GST
// calculator.
func NewOrderService(repo repository.Querier, calc *tax.Calculator) domain.OrderService {
	return &orderService{repo: repo, calc: calc}
}

// CreateOrder validates the items, runs the per-item GST calculation, and
// persists the order with its rounded tax breakdown. The exemption check
// is advisory: its result is stored on the order but never alters the
// calculated tax.
func (s *orderService) CreateOrder(ctx context.Context, params domain.CreateOrderParams) (*domain.OrderDetail, error) {
	if len(params.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if params.BillingAddress.State == "" {
		return nil, domain.ErrMissingBillingState
	}

	// The tax engine propagates bad amounts silently, so amounts are
	// rejected here, at the order boundary.
	lines := make([]tax.LineItem, 0, len(params.Items))
	itemRows := make([]repository.CreateOrderItemParams, 0, len(params.Items))
	for i, item := range params.Items {
		if item.Amount < 0 || math.IsNaN(item.Amount) || math.IsInf(item.Amount, 0) {
			return nil, domain.WrapError(domain.ErrInvalidItemAmount, domain.EINVALID, "order.create",
				fmt.Sprintf("Item %d: amount must be a non-negative finite number", i))
		}
		lines = append(lines, tax.LineItem{Amount: item.Amount, Category: item.Category})
		itemRows = append(itemRows, repository.CreateOrderItemParams{
			Name:     item.Name,
			Category: item.Category,
			Amount:   item.Amount,
		})
	}

	calc := s.calc.CalculateForItems(lines, params.BillingAddress)
	exemption := tax.CheckExemption(calc.Subtotal, uniformCategory(params.Items))

	var exemptionReason pgtype.Text
	if exemption.Reason != "" {
		exemptionReason = pgtype.Text{String: exemption.Reason, Valid: true}
	}

	// Order and items commit atomically; a failed item insert rolls the
	// order row back too.
	order, items, err := s.repo.CreateOrderWithItems(ctx, repository.CreateOrderParams{
		OrderNumber:     newOrderNumber(),
		CustomerEmail:   params.CustomerEmail,
		BillingState:    params.BillingAddress.State,
		BillingCountry:  params.BillingAddress.Country,
		Subtotal:        calc.Subtotal,
		Cgst:            calc.Breakdown.CGST,
		Sgst:            calc.Breakdown.SGST,
		Igst:            calc.Breakdown.IGST,
		TaxTotal:        calc.TaxTotal,
		GrandTotal:      calc.GrandTotal,
		TaxRate:         calc.TaxRate,
		TaxExempt:       exemption.Exempt,
		ExemptionReason: exemptionReason,
	}, itemRows)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, "order.create", "Failed to create order")
	}

	return &domain.OrderDetail{Order: order, Items: items, Tax: calc}, nil
}

// GetOrder retrieves a single order by ID.
func (s *orderService) GetOrder(ctx context.Context, orderID string) (*domain.OrderDetail, error) {
	var id pgtype.UUID
	if err := id.Scan(orderID); err != nil {
		return nil, domain.Errorf(domain.EINVALID, "order.get", "invalid order ID")
	}

	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, "order.get", "Failed to load order")
	}
	return s.detail(ctx, order)
}

// GetOrderByNumber retrieves a single order by order number.
func (s *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*domain.OrderDetail, error) {
	order, err := s.repo.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, "order.get", "Failed to load order")
	}
	return s.detail(ctx, order)
}

func (s *orderService) detail(ctx context.Context, order repository.Order) (*domain.OrderDetail, error) {
	items, err := s.repo.GetOrderItems(ctx, order.ID)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, "order.get", "Failed to load order items")
	}
	return &domain.OrderDetail{
		Order: order,
		Items: items,
		Tax:   calculationFromOrder(order),
	}, nil
}

// calculationFromOrder rebuilds the tax calculation from the stored
// breakdown. Columns hold the already-rounded figures, so no recalculation
// happens on read.
func calculationFromOrder(o repository.Order) tax.Calculation {
	return tax.Calculation{
		Subtotal: o.Subtotal,
		Breakdown: tax.Breakdown{
			CGST:  o.Cgst,
			SGST:  o.Sgst,
			IGST:  o.Igst,
			Total: o.TaxTotal,
		},
		TaxTotal:   o.TaxTotal,
		GrandTotal: o.GrandTotal,
		TaxRate:    o.TaxRate,
	}
}

// uniformCategory returns the single category shared by every item, or ""
// when items are mixed. The exemption policy takes one category per order;
// a mixed order cannot claim a category-based exemption.
func uniformCategory(items []domain.OrderItemParams) string {
	category := items[0].Category
	for _, item := range items[1:] {
		if item.Category != category {
			return ""
		}
	}
	return category
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}
