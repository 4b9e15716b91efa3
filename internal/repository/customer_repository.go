package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawtopia/petshop-api/internal/domain"
)

// CustomerRepository defines persistence access for customer accounts.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByUsername(ctx context.Context, username string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository returns a Postgres-backed implementation.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

const customerColumns = `customer_id, username, password_hash, first_name, last_name,
        email, role, google_id, auth_provider, created_at, updated_at`

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `
        INSERT INTO customers (username, password_hash, first_name, last_name, email, role, google_id, auth_provider)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING customer_id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		customer.Username,
		customer.PasswordHash,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.Role,
		customer.GoogleID,
		customer.AuthProvider,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	const query = `
        UPDATE customers
        SET username=$1, password_hash=$2, first_name=$3, last_name=$4, email=$5,
            role=$6, google_id=$7, auth_provider=$8, updated_at=NOW()
        WHERE customer_id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		customer.Username,
		customer.PasswordHash,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.Role,
		customer.GoogleID,
		customer.AuthProvider,
		customer.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE customer_id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return r.getBy(ctx, `SELECT `+customerColumns+` FROM customers WHERE customer_id=$1`, id)
}

func (r *customerRepository) GetByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	return r.getBy(ctx, `SELECT `+customerColumns+` FROM customers WHERE username=$1`, username)
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.getBy(ctx, `SELECT `+customerColumns+` FROM customers WHERE email=$1`, email)
}

func (r *customerRepository) getBy(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&customer.ID,
		&customer.Username,
		&customer.PasswordHash,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.Role,
		&customer.GoogleID,
		&customer.AuthProvider,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM customers WHERE username=$1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY customer_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(
			&c.ID, &c.Username, &c.PasswordHash, &c.FirstName, &c.LastName,
			&c.Email, &c.Role, &c.GoogleID, &c.AuthProvider, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
