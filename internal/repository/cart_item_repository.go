package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawtopia/petshop-api/internal/domain"
)

// CartItemRepository defines persistence access for cart lines.
type CartItemRepository interface {
	Create(ctx context.Context, item *domain.CartItem) error
	GetByID(ctx context.Context, id int64) (*domain.CartItem, error)
	List(ctx context.Context) ([]domain.CartItem, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int, touch bool) (*domain.CartItem, error)
	Delete(ctx context.Context, id int64) error
}

type cartItemRepository struct {
	pool *pgxpool.Pool
}

// NewCartItemRepository returns a Postgres-backed implementation.
func NewCartItemRepository(pool *pgxpool.Pool) CartItemRepository {
	return &cartItemRepository{pool: pool}
}

func (r *cartItemRepository) Create(ctx context.Context, item *domain.CartItem) error {
	const query = `
        INSERT INTO cart_items (cart_id, product_id, quantity)
        VALUES ($1, $2, $3)
        RETURNING cart_item_id, last_updated`

	return r.pool.QueryRow(ctx, query,
		item.CartID,
		item.ProductID,
		item.Quantity,
	).Scan(&item.ID, &item.LastUpdated)
}

func (r *cartItemRepository) GetByID(ctx context.Context, id int64) (*domain.CartItem, error) {
	var item domain.CartItem
	if err := r.pool.QueryRow(ctx, `
        SELECT cart_item_id, cart_id, product_id, quantity, last_updated
        FROM cart_items WHERE cart_item_id=$1`, id).Scan(
		&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.LastUpdated,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) List(ctx context.Context) ([]domain.CartItem, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT cart_item_id, cart_id, product_id, quantity, last_updated
        FROM cart_items ORDER BY cart_item_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.LastUpdated); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateQuantity sets a new quantity. touch controls whether last_updated is
// refreshed; the system-update path deliberately leaves it alone.
func (r *cartItemRepository) UpdateQuantity(ctx context.Context, id int64, quantity int, touch bool) (*domain.CartItem, error) {
	query := `UPDATE cart_items SET quantity=$1 WHERE cart_item_id=$2`
	if touch {
		query = `UPDATE cart_items SET quantity=$1, last_updated=NOW() WHERE cart_item_id=$2`
	}

	cmd, err := r.pool.Exec(ctx, query, quantity, id)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}
	return r.GetByID(ctx, id)
}

func (r *cartItemRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE cart_item_id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
