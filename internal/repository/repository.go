package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the subset of pgx connection behavior the queries need.
// Satisfied by *pgxpool.Pool and pgx.Tx (a nested Begin opens a savepoint).
type DBTX interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Querier is the query interface implemented by Queries.
// Services depend on this so tests can substitute mocks.
type Querier interface {
	CreateOrderWithItems(ctx context.Context, arg CreateOrderParams, items []CreateOrderItemParams) (Order, []OrderItem, error)
	GetOrder(ctx context.Context, id pgtype.UUID) (Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (Order, error)
	GetOrderItems(ctx context.Context, orderID pgtype.UUID) ([]OrderItem, error)
}

// Queries runs SQL against a DBTX.
type Queries struct {
	db DBTX
}

// New creates a Queries instance bound to db.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx creates a Queries instance scoped to an open transaction.
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

// Order is a persisted order with its rounded tax breakdown. Monetary
// columns are stored exactly as calculated so invoice regeneration is
// reproducible to the paisa.
type Order struct {
	ID              pgtype.UUID
	OrderNumber     string
	CustomerEmail   string
	BillingState    string
	BillingCountry  string
	Subtotal        float64
	Cgst            float64
	Sgst            float64
	Igst            float64
	TaxTotal        float64
	GrandTotal      float64
	TaxRate         float64
	TaxExempt       bool
	ExemptionReason pgtype.Text
	CreatedAt       pgtype.Timestamptz
}

// OrderItem is a persisted order line.
type OrderItem struct {
	ID       int64
	OrderID  pgtype.UUID
	Name     string
	Category string
	Amount   float64
}
