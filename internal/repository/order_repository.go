package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawtopia/petshop-api/internal/domain"
)

// OrderRepository defines persistence access for orders and their lines.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]domain.Order, error)
	TotalIncome(ctx context.Context) (float64, error)
	SetPaymentLink(ctx context.Context, orderID int64, linkID string) error
	SetPaymentStatus(ctx context.Context, orderID int64, status string) error
	HasApprovedOrderWithProduct(ctx context.Context, customerID, productID int64) (bool, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

const orderColumns = `order_id, reference, customer_id, order_date, payment_method,
        payment_status, order_status, total_price, description, remarks, payment_link_id,
        created_at, updated_at`

// Create inserts the order and its items in one transaction.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insertOrder = `
        INSERT INTO orders (reference, customer_id, order_date, payment_method, payment_status,
            order_status, total_price, description, remarks)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING order_id, created_at, updated_at`

	if err := tx.QueryRow(ctx, insertOrder,
		order.Reference,
		order.CustomerID,
		order.OrderDate,
		order.PaymentMethod,
		order.PaymentStatus,
		order.OrderStatus,
		order.TotalPrice,
		order.Description,
		order.Remarks,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	const insertItem = `
        INSERT INTO order_items (order_id, product_id, name, image, price, quantity, rated)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING order_item_id`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRow(ctx, insertItem,
			item.OrderID, item.ProductID, item.Name, item.Image, item.Price, item.Quantity, item.Rated,
		).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	const query = `
        UPDATE orders
        SET order_date=$1, payment_method=$2, payment_status=$3, order_status=$4,
            total_price=$5, description=$6, remarks=$7, updated_at=NOW()
        WHERE order_id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		order.OrderDate,
		order.PaymentMethod,
		order.PaymentStatus,
		order.OrderStatus,
		order.TotalPrice,
		order.Description,
		order.Remarks,
		order.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE order_id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	if err := r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_id=$1`, id).Scan(
		&order.ID, &order.Reference, &order.CustomerID, &order.OrderDate, &order.PaymentMethod,
		&order.PaymentStatus, &order.OrderStatus, &order.TotalPrice, &order.Description,
		&order.Remarks, &order.PaymentLinkID, &order.CreatedAt, &order.UpdatedAt,
	); err != nil {
		return nil, err
	}

	items, err := r.itemsByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY order_id`)
}

func (r *orderRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]domain.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE customer_id=$1 ORDER BY order_id`, customerID)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.Reference, &order.CustomerID, &order.OrderDate, &order.PaymentMethod,
			&order.PaymentStatus, &order.OrderStatus, &order.TotalPrice, &order.Description,
			&order.Remarks, &order.PaymentLinkID, &order.CreatedAt, &order.UpdatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.itemsByOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *orderRepository) itemsByOrder(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT order_item_id, order_id, product_id, name, image, price, quantity, rated
        FROM order_items WHERE order_id=$1 ORDER BY order_item_id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Name,
			&item.Image, &item.Price, &item.Quantity, &item.Rated,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *orderRepository) TotalIncome(ctx context.Context) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(total_price), 0) FROM orders`).Scan(&total)
	return total, err
}

func (r *orderRepository) SetPaymentLink(ctx context.Context, orderID int64, linkID string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE orders SET payment_link_id=$1, updated_at=NOW() WHERE order_id=$2`, linkID, orderID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) SetPaymentStatus(ctx context.Context, orderID int64, status string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE orders SET payment_status=$1, updated_at=NOW() WHERE order_id=$2`, status, orderID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) HasApprovedOrderWithProduct(ctx context.Context, customerID, productID int64) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1
            FROM orders o
            JOIN order_items i ON i.order_id = o.order_id
            WHERE o.customer_id=$1 AND i.product_id=$2 AND o.order_status=$3
        )`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, customerID, productID, domain.OrderStatusApproved).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
