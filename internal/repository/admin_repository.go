package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawtopia/petshop-api/internal/domain"
)

// AdminRepository defines persistence access for admin accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	Update(ctx context.Context, admin *domain.Admin) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]domain.Admin, error)
}

type adminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &adminRepository{pool: pool}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	const query = `
        INSERT INTO admins (username, password_hash, role)
        VALUES ($1, $2, $3)
        RETURNING admin_id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		admin.Username,
		admin.PasswordHash,
		admin.Role,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
}

func (r *adminRepository) Update(ctx context.Context, admin *domain.Admin) error {
	const query = `
        UPDATE admins
        SET username=$2, password_hash=$3, role=$4, updated_at=NOW()
        WHERE admin_id=$1
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		admin.ID,
		admin.Username,
		admin.PasswordHash,
		admin.Role,
	).Scan(&admin.UpdatedAt)
}

func (r *adminRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM admins WHERE admin_id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	const query = `
        SELECT admin_id, username, password_hash, role, created_at, updated_at
        FROM admins WHERE admin_id=$1`

	var admin domain.Admin
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.Role,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	const query = `
        SELECT admin_id, username, password_hash, role, created_at, updated_at
        FROM admins WHERE username=$1`

	var admin domain.Admin
	if err := r.pool.QueryRow(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.Role,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM admins WHERE username=$1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *adminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	const query = `
        SELECT admin_id, username, password_hash, role, created_at, updated_at
        FROM admins ORDER BY admin_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []domain.Admin
	for rows.Next() {
		var a domain.Admin
		if err := rows.Scan(
			&a.ID, &a.Username, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}
