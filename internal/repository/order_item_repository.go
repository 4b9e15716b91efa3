package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawtopia/petshop-api/internal/domain"
)

// OrderItemRepository exposes the standalone order-line endpoints.
type OrderItemRepository interface {
	Create(ctx context.Context, item *domain.OrderItem) error
	Update(ctx context.Context, item *domain.OrderItem) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.OrderItem, error)
	List(ctx context.Context) ([]domain.OrderItem, error)
}

type orderItemRepository struct {
	pool *pgxpool.Pool
}

// NewOrderItemRepository returns a Postgres-backed implementation.
func NewOrderItemRepository(pool *pgxpool.Pool) OrderItemRepository {
	return &orderItemRepository{pool: pool}
}

func (r *orderItemRepository) Create(ctx context.Context, item *domain.OrderItem) error {
	const query = `
        INSERT INTO order_items (order_id, product_id, name, image, price, quantity, rated)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING order_item_id`

	return r.pool.QueryRow(ctx, query,
		item.OrderID, item.ProductID, item.Name, item.Image, item.Price, item.Quantity, item.Rated,
	).Scan(&item.ID)
}

func (r *orderItemRepository) Update(ctx context.Context, item *domain.OrderItem) error {
	const query = `
        UPDATE order_items
        SET name=$1, image=$2, price=$3, quantity=$4, rated=$5
        WHERE order_item_id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		item.Name, item.Image, item.Price, item.Quantity, item.Rated, item.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderItemRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM order_items WHERE order_item_id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderItemRepository) GetByID(ctx context.Context, id int64) (*domain.OrderItem, error) {
	var item domain.OrderItem
	if err := r.pool.QueryRow(ctx, `
        SELECT order_item_id, order_id, product_id, name, image, price, quantity, rated
        FROM order_items WHERE order_item_id=$1`, id).Scan(
		&item.ID, &item.OrderID, &item.ProductID, &item.Name,
		&item.Image, &item.Price, &item.Quantity, &item.Rated,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepository) List(ctx context.Context) ([]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT order_item_id, order_id, product_id, name, image, price, quantity, rated
        FROM order_items ORDER BY order_item_id`)
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
