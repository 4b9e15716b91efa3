package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawtopia/petshop-api/internal/domain"
)

// AppointmentRepository defines persistence access for grooming bookings.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	Update(ctx context.Context, appointment *domain.Appointment) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context) ([]domain.Appointment, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Appointment, error)
}

type appointmentRepository struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepository returns a Postgres-backed implementation.
func NewAppointmentRepository(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepository{pool: pool}
}

const appointmentColumns = `app_id, email, contact_no, date, time, groom_service, price,
        confirmed, canceled, created_at, updated_at`

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	const query = `
        INSERT INTO appointments (email, contact_no, date, time, groom_service, price, confirmed, canceled)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING app_id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		appointment.Email,
		appointment.ContactNo,
		appointment.Date,
		appointment.Time,
		appointment.GroomService,
		appointment.Price,
		appointment.Confirmed,
		appointment.Canceled,
	).Scan(&appointment.ID, &appointment.CreatedAt, &appointment.UpdatedAt)
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *domain.Appointment) error {
	const query = `
        UPDATE appointments
        SET email=$1, contact_no=$2, date=$3, time=$4, groom_service=$5, price=$6,
            confirmed=$7, canceled=$8, updated_at=NOW()
        WHERE app_id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		appointment.Email,
		appointment.ContactNo,
		appointment.Date,
		appointment.Time,
		appointment.GroomService,
		appointment.Price,
		appointment.Confirmed,
		appointment.Canceled,
		appointment.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE app_id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var a domain.Appointment
	if err := r.pool.QueryRow(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE app_id=$1`, id).Scan(
		&a.ID, &a.Email, &a.ContactNo, &a.Date, &a.Time, &a.GroomService,
		&a.Price, &a.Confirmed, &a.Canceled, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]domain.Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentColumns+` FROM appointments ORDER BY app_id`)
}

func (r *appointmentRepository) ListByEmail(ctx context.Context, email string) ([]domain.Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE email=$1 ORDER BY app_id`, email)
}

func (r *appointmentRepository) list(ctx context.Context, query string, args ...any) ([]domain.Appointment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(
			&a.ID, &a.Email, &a.ContactNo, &a.Date, &a.Time, &a.GroomService,
			&a.Price, &a.Confirmed, &a.Canceled, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}
