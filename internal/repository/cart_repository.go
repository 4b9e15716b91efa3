package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawtopia/petshop-api/internal/domain"
)

// CartRepository defines persistence access for carts. A cart's id equals the
// owning customer's id.
type CartRepository interface {
	Create(ctx context.Context, customerID int64) error
	GetByID(ctx context.Context, cartID int64) (*domain.Cart, error)
	List(ctx context.Context) ([]domain.Cart, error)
	Delete(ctx context.Context, cartID int64) error
}

type cartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository returns a Postgres-backed implementation.
func NewCartRepository(pool *pgxpool.Pool) CartRepository {
	return &cartRepository{pool: pool}
}

func (r *cartRepository) Create(ctx context.Context, customerID int64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO carts (cart_id) VALUES ($1) ON CONFLICT (cart_id) DO NOTHING`, customerID)
	return err
}

func (r *cartRepository) GetByID(ctx context.Context, cartID int64) (*domain.Cart, error) {
	var cart domain.Cart
	if err := r.pool.QueryRow(ctx,
		`SELECT cart_id, created_at FROM carts WHERE cart_id=$1`, cartID).
		Scan(&cart.ID, &cart.CreatedAt); err != nil {
		return nil, err
	}

	items, err := r.itemsByCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	cart.Items = items
	return &cart, nil
}

func (r *cartRepository) List(ctx context.Context) ([]domain.Cart, error) {
	rows, err := r.pool.Query(ctx, `SELECT cart_id, created_at FROM carts ORDER BY cart_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var carts []domain.Cart
	for rows.Next() {
		var cart domain.Cart
		if err := rows.Scan(&cart.ID, &cart.CreatedAt); err != nil {
			return nil, err
		}
		carts = append(carts, cart)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range carts {
		items, err := r.itemsByCart(ctx, carts[i].ID)
		if err != nil {
			return nil, err
		}
		carts[i].Items = items
	}
	return carts, nil
}

func (r *cartRepository) Delete(ctx context.Context, cartID int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE cart_id=$1`, cartID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *cartRepository) itemsByCart(ctx context.Context, cartID int64) ([]domain.CartItem, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT cart_item_id, cart_id, product_id, quantity, last_updated
        FROM cart_items WHERE cart_id=$1 ORDER BY cart_item_id`, cartID)
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
