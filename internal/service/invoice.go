package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/nikhilbhatia/upahaar/internal/domain"
	"github.com/nikhilbhatia/upahaar/internal/repository"
	"github.com/nikhilbhatia/upahaar/internal/tax"
)

type invoiceService struct {
	repo repository.Querier
	calc *tax.Calculator
}

// NewInvoiceService creates an InvoiceService backed by repo and the GST
// calculator.
func NewInvoiceService(repo repository.Querier, calc *tax.Calculator) domain.InvoiceService {
	return &invoiceService{repo: repo, calc: calc}
}

// GenerateInvoice assembles the GST invoice payload for a stored order
// from its persisted tax breakdown.
func (s *invoiceService) GenerateInvoice(ctx context.Context, orderID string) (*tax.InvoiceData, error) {
	var id pgtype.UUID
	if err := id.Scan(orderID); err != nil {
		return nil, domain.Errorf(domain.EINVALID, "invoice.generate", "invalid order ID")
	}

	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, "invoice.generate", "Failed to load order")
	}

	invoice := s.calc.InvoiceData(calculationFromOrder(order), tax.OrderDetails{
		OrderNumber: order.OrderNumber,
		BillingAddress: tax.Address{
			State:   order.BillingState,
			Country: order.BillingCountry,
		},
	})
	return &invoice, nil
}
