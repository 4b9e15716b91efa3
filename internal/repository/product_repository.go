package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawtopia/petshop-api/internal/domain"
)

// ProductRepository defines persistence access for catalog items.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	TotalQuantitySold(ctx context.Context) (int, error)
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository returns a Postgres-backed implementation.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

const productColumns = `product_id, name, description, type, price, quantity, quantity_sold, image, created_at, updated_at`

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (name, description, type, price, quantity, quantity_sold, image)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING product_id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Type,
		product.Price,
		product.Quantity,
		product.QuantitySold,
		product.Image,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `
        UPDATE products
        SET name=$1, description=$2, type=$3, price=$4, quantity=$5, quantity_sold=$6, image=$7, updated_at=NOW()
        WHERE product_id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		product.Name,
		product.Description,
		product.Type,
		product.Price,
		product.Quantity,
		product.QuantitySold,
		product.Image,
		product.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE product_id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	if err := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE product_id=$1`, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Type, &p.Price,
		&p.Quantity, &p.QuantitySold, &p.Image, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY product_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Type, &p.Price,
			&p.Quantity, &p.QuantitySold, &p.Image, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productRepository) TotalQuantitySold(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(quantity_sold), 0) FROM products`).Scan(&total)
	return total, err
}
