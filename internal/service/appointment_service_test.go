package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pawtopia/petshop-api/internal/domain"
	"github.com/pawtopia/petshop-api/internal/events"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	nextID       int64
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[int64]*domain.Appointment)}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) error {
	f.nextID++
	appointment.ID = f.nextID
	clone := *appointment
	f.appointments[appointment.ID] = &clone
	return nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, appointment *domain.Appointment) error {
	if _, ok := f.appointments[appointment.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *appointment
	f.appointments[appointment.ID] = &clone
	return nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.appointments[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appointment, ok := f.appointments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *appointment
	return &clone, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context) ([]domain.Appointment, error) {
	out := make([]domain.Appointment, 0, len(f.appointments))
	for _, appointment := range f.appointments {
		out = append(out, *appointment)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByEmail(_ context.Context, email string) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, appointment := range f.appointments {
		if appointment.Email == email {
			out = append(out, *appointment)
		}
	}
	return out, nil
}

func newTestAppointmentService(t *testing.T) (*AppointmentService, *fakeAppointmentRepo, events.Dispatcher) {
	t.Helper()
	repo := newFakeAppointmentRepo()
	dispatcher := events.NewInMemoryDispatcher()
	return NewAppointmentService(repo, dispatcher, zap.NewNop()), repo, dispatcher
}

func TestBookStartsUnconfirmed(t *testing.T) {
	svc, _, dispatcher := newTestAppointmentService(t)

	var got []events.Event
	dispatcher.Subscribe(events.EventAppointmentBooked, func(_ context.Context, e events.Event) error {
		got = append(got, e)
		return nil
	})

	appointment, err := svc.Book(context.Background(), &domain.Appointment{
		Email:        "jess@example.com",
		GroomService: "Full Groom",
		Date:         "2026-09-15",
		Time:         "10:00",
		Confirmed:    true, // caller-supplied flags are ignored
		Canceled:     true,
	})
	require.NoError(t, err)

	assert.False(t, appointment.Confirmed)
	assert.False(t, appointment.Canceled)
	require.Len(t, got, 1)
	payload, ok := got[0].Payload.(events.AppointmentPayload)
	require.True(t, ok)
	assert.Equal(t, "jess@example.com", payload.Email)
	assert.Equal(t, "Full Groom", payload.GroomService)
}

func TestBookValidatesRequiredFields(t *testing.T) {
	svc, _, _ := newTestAppointmentService(t)

	_, err := svc.Book(context.Background(), &domain.Appointment{GroomService: "Bath"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, err = svc.Book(context.Background(), &domain.Appointment{Email: "a@b.c"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestConfirmAndCancelFlipIndependentFlags(t *testing.T) {
	svc, repo, _ := newTestAppointmentService(t)
	ctx := context.Background()

	booked, err := svc.Book(ctx, &domain.Appointment{Email: "a@b.c", GroomService: "Bath"})
	require.NoError(t, err)

	confirmed, err := svc.Confirm(ctx, booked.ID)
	require.NoError(t, err)
	assert.True(t, confirmed.Confirmed)
	assert.False(t, confirmed.Canceled)

	// Canceling afterwards leaves the confirmed flag untouched.
	canceled, err := svc.Cancel(ctx, booked.ID)
	require.NoError(t, err)
	assert.True(t, canceled.Confirmed)
	assert.True(t, canceled.Canceled)

	stored, err := repo.GetByID(ctx, booked.ID)
	require.NoError(t, err)
	assert.True(t, stored.Confirmed)
	assert.True(t, stored.Canceled)
}

func TestListByEmailFiltersBookings(t *testing.T) {
	svc, _, _ := newTestAppointmentService(t)
	ctx := context.Background()

	_, err := svc.Book(ctx, &domain.Appointment{Email: "a@b.c", GroomService: "Bath"})
	require.NoError(t, err)
	_, err = svc.Book(ctx, &domain.Appointment{Email: "a@b.c", GroomService: "Trim"})
	require.NoError(t, err)
	_, err = svc.Book(ctx, &domain.Appointment{Email: "x@y.z", GroomService: "Bath"})
	require.NoError(t, err)

	mine, err := svc.ListByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
