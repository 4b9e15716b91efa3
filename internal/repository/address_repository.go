package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawtopia/petshop-api/internal/domain"
)

// AddressRepository defines persistence access for customer addresses.
type AddressRepository interface {
	Upsert(ctx context.Context, address *domain.Address) error
	GetByCustomerID(ctx context.Context, customerID int64) (*domain.Address, error)
	DeleteByCustomerID(ctx context.Context, customerID int64) error
	List(ctx context.Context) ([]domain.Address, error)
}

type addressRepository struct {
	pool *pgxpool.Pool
}

// NewAddressRepository returns a Postgres-backed implementation.
func NewAddressRepository(pool *pgxpool.Pool) AddressRepository {
	return &addressRepository{pool: pool}
}

const addressColumns = `address_id, customer_id, region, province, city, barangay,
        postal_code, street, created_at, updated_at`

// Upsert creates or replaces the customer's single address.
func (r *addressRepository) Upsert(ctx context.Context, address *domain.Address) error {
	const query = `
        INSERT INTO addresses (customer_id, region, province, city, barangay, postal_code, street)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (customer_id) DO UPDATE
        SET region=EXCLUDED.region, province=EXCLUDED.province, city=EXCLUDED.city,
            barangay=EXCLUDED.barangay, postal_code=EXCLUDED.postal_code,
            street=EXCLUDED.street, updated_at=NOW()
        RETURNING address_id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		address.CustomerID,
		address.Region,
		address.Province,
		address.City,
		address.Barangay,
		address.PostalCode,
		address.Street,
	).Scan(&address.ID, &address.CreatedAt, &address.UpdatedAt)
}

func (r *addressRepository) GetByCustomerID(ctx context.Context, customerID int64) (*domain.Address, error) {
	var a domain.Address
	if err := r.pool.QueryRow(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE customer_id=$1`, customerID).Scan(
		&a.ID, &a.CustomerID, &a.Region, &a.Province, &a.City, &a.Barangay,
		&a.PostalCode, &a.Street, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *addressRepository) DeleteByCustomerID(ctx context.Context, customerID int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE customer_id=$1`, customerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *addressRepository) List(ctx context.Context) ([]domain.Address, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+addressColumns+` FROM addresses ORDER BY address_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(
			&a.ID, &a.CustomerID, &a.Region, &a.Province, &a.City, &a.Barangay,
			&a.PostalCode, &a.Street, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}
