package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createOrder = `
INSERT INTO orders (
	order_number, customer_email, billing_state, billing_country,
	subtotal, cgst, sgst, igst, tax_total, grand_total, tax_rate,
	tax_exempt, exemption_reason
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id, order_number, customer_email, billing_state, billing_country,
	subtotal, cgst, sgst, igst, tax_total, grand_total, tax_rate,
	tax_exempt, exemption_reason, created_at
`

// CreateOrderParams contains the columns for a new order row.
type CreateOrderParams struct {
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
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, createOrder,
		arg.OrderNumber,
		arg.CustomerEmail,
		arg.BillingState,
		arg.BillingCountry,
		arg.Subtotal,
		arg.Cgst,
		arg.Sgst,
		arg.Igst,
		arg.TaxTotal,
		arg.GrandTotal,
		arg.TaxRate,
		arg.TaxExempt,
		arg.ExemptionReason,
	)
	var o Order
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CustomerEmail,
		&o.BillingState,
		&o.BillingCountry,
		&o.Subtotal,
		&o.Cgst,
		&o.Sgst,
		&o.Igst,
		&o.TaxTotal,
		&o.GrandTotal,
		&o.TaxRate,
		&o.TaxExempt,
		&o.ExemptionReason,
		&o.CreatedAt,
	)
	return o, err
}

const createOrderItem = `
INSERT INTO order_items (order_id, name, category, amount)
VALUES ($1, $2, $3, $4)
RETURNING id, order_id, name, category, amount
`

// CreateOrderItemParams contains the columns for a new order line.
type CreateOrderItemParams struct {
	OrderID  pgtype.UUID
	Name     string
	Category string
	Amount   float64
}

func (q *Queries) CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error) {
	row := q.db.QueryRow(ctx, createOrderItem,
		arg.OrderID,
		arg.Name,
		arg.Category,
		arg.Amount,
	)
	var i OrderItem
	err := row.Scan(&i.ID, &i.OrderID, &i.Name, &i.Category, &i.Amount)
	return i, err
}

// CreateOrderWithItems inserts an order and all of its lines in a single
// transaction, so a failed item insert never leaves a committed order row
// behind. The OrderID on each item param is set from the inserted order.
func (q *Queries) CreateOrderWithItems(ctx context.Context, arg CreateOrderParams, items []CreateOrderItemParams) (Order, []OrderItem, error) {
	tx, err := q.db.Begin(ctx)
	if err != nil {
		return Order{}, nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx) // no-op after a successful commit
	}()

	qtx := q.WithTx(tx)

	order, err := qtx.CreateOrder(ctx, arg)
	if err != nil {
		return Order{}, nil, err
	}

	created := make([]OrderItem, 0, len(items))
	for _, item := range items {
		item.OrderID = order.ID
		row, err := qtx.CreateOrderItem(ctx, item)
		if err != nil {
			return Order{}, nil, err
		}
		created = append(created, row)
	}

	if err := tx.Commit(ctx); err != nil {
		return Order{}, nil, err
	}
	return order, created, nil
}

const getOrder = `
SELECT id, order_number, customer_email, billing_state, billing_country,
	subtotal, cgst, sgst, igst, tax_total, grand_total, tax_rate,
	tax_exempt, exemption_reason, created_at
FROM orders
WHERE id = $1
`

func (q *Queries) GetOrder(ctx context.Context, id pgtype.UUID) (Order, error) {
	return q.scanOrder(q.db.QueryRow(ctx, getOrder, id))
}

const getOrderByNumber = `
SELECT id, order_number, customer_email, billing_state, billing_country,
	subtotal, cgst, sgst, igst, tax_total, grand_total, tax_rate,
	tax_exempt, exemption_reason, created_at
FROM orders
WHERE order_number = $1
`

func (q *Queries) GetOrderByNumber(ctx context.Context, orderNumber string) (Order, error) {
	return q.scanOrder(q.db.QueryRow(ctx, getOrderByNumber, orderNumber))
}

const getOrderItems = `
SELECT id, order_id, name, category, amount
FROM order_items
WHERE order_id = $1
ORDER BY id
`

func (q *Queries) GetOrderItems(ctx context.Context, orderID pgtype.UUID) ([]OrderItem, error) {
	rows, err := q.db.Query(ctx, getOrderItems, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var i OrderItem
		if err := rows.Scan(&i.ID, &i.OrderID, &i.Name, &i.Category, &i.Amount); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func (q *Queries) scanOrder(row scannable) (Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CustomerEmail,
		&o.BillingState,
		&o.BillingCountry,
		&o.Subtotal,
		&o.Cgst,
		&o.Sgst,
		&o.Igst,
		&o.TaxTotal,
		&o.GrandTotal,
		&o.TaxRate,
		&o.TaxExempt,
		&o.ExemptionReason,
		&o.CreatedAt,
	)
	return o, err
}
