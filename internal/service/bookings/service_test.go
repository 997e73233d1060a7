package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtEase-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/CourtEase-BookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/CourtEase-BookingService/internal/infra/storage/court"
	"github.com/m04kA/CourtEase-BookingService/internal/service/bookings/models"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings    map[int64]*domain.Booking
	intervals   []domain.Interval
	cancelErr   error
	cancelled   []int64
	staleCount  int64
	staleErr    error
	lastStaleAt time.Time
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (r *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) ListActiveIntervals(_ context.Context, _ int64, _ time.Time) ([]domain.Interval, error) {
	return r.intervals, nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	if r.cancelErr != nil {
		return r.cancelErr
	}
	r.cancelled = append(r.cancelled, id)
	return nil
}

func (r *fakeBookingRepo) CancelStalePending(_ context.Context, now time.Time) (int64, error) {
	r.lastStaleAt = now
	return r.staleCount, r.staleErr
}

type fakeCourtRepo struct {
	court *domain.Court
	err   error
}

func (r *fakeCourtRepo) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.court, nil
}

var testNow = time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)

func newTestService(repo *fakeBookingRepo, courts *fakeCourtRepo) *Service {
	svc := NewService(repo, courts, nopLogger{})
	svc.timeProvider = fixedTime{now: testNow}
	return svc
}

func pendingBooking(id, userID int64) *domain.Booking {
	return &domain.Booking{
		ID:               id,
		CourtID:          3,
		UserID:           userID,
		StartTime:        time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		EndTime:          time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
		Status:           domain.StatusPending,
		PaymentStatus:    domain.PaymentPending,
		PriceTotal:       400000,
		PaymentReference: "BOOK-1756713600000-abc",
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		42: pendingBooking(42, 7),
	}}
	svc := newTestService(repo, &fakeCourtRepo{})

	t.Run("owner gets the booking", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 42, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("other user is denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 42, 8)
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 99, 7)
		require.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_GetUserBookings(t *testing.T) {
	confirmed := pendingBooking(2, 7)
	confirmed.Status = domain.StatusConfirmed

	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: pendingBooking(1, 7),
		2: confirmed,
		3: pendingBooking(3, 8),
	}}
	svc := newTestService(repo, &fakeCourtRepo{})

	t.Run("all bookings of the user", func(t *testing.T) {
		resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 7})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 2)
	})

	t.Run("filtered by status", func(t *testing.T) {
		status := "confirmed"
		resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 7, Status: &status})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, int64(2), resp.Bookings[0].ID)
	})

	t.Run("invalid status", func(t *testing.T) {
		status := "teleported"
		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 7, Status: &status})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetCourtAvailability(t *testing.T) {
	repo := &fakeBookingRepo{
		intervals: []domain.Interval{
			{
				Start: time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
			},
		},
	}
	courts := &fakeCourtRepo{court: &domain.Court{ID: 3, Name: "Court A", PricePerHour: 150000, IsActive: true}}
	svc := newTestService(repo, courts)

	resp, err := svc.GetCourtAvailability(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.CourtID)
	assert.Equal(t, "Court A", resp.CourtName)
	require.Len(t, resp.Booked, 1)
	assert.Equal(t, "2026-09-15T10:00:00Z", resp.Booked[0].StartTime)

	// Горизонт: сегодня + 3 месяца
	assert.Equal(t, "2026-12-10T23:59:59Z", resp.HorizonEnd)
}

func TestService_GetCourtAvailability_CourtNotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeCourtRepo{err: courtRepo.ErrCourtNotFound})

	_, err := svc.GetCourtAvailability(context.Background(), 3)
	require.ErrorIs(t, err, ErrCourtNotFound)
}

func TestService_Cancel(t *testing.T) {
	t.Run("owner cancels pending booking", func(t *testing.T) {
		repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
			42: pendingBooking(42, 7),
		}}
		svc := newTestService(repo, &fakeCourtRepo{})

		err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 7})
		require.NoError(t, err)
		assert.Equal(t, []int64{42}, repo.cancelled)
	})

	t.Run("other user is denied", func(t *testing.T) {
		repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
			42: pendingBooking(42, 7),
		}}
		svc := newTestService(repo, &fakeCourtRepo{})

		err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 8})
		require.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, repo.cancelled)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		completed := pendingBooking(42, 7)
		completed.Status = domain.StatusCompleted

		repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: completed}}
		svc := newTestService(repo, &fakeCourtRepo{})

		err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 7})
		require.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("already cancelled booking cannot be cancelled again", func(t *testing.T) {
		cancelled := pendingBooking(42, 7)
		cancelled.Status = domain.StatusCancelled

		repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: cancelled}}
		svc := newTestService(repo, &fakeCourtRepo{})

		err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 7})
		require.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestService_ExpireStalePending(t *testing.T) {
	repo := &fakeBookingRepo{staleCount: 3}
	svc := newTestService(repo, &fakeCourtRepo{})

	expired, err := svc.ExpireStalePending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), expired)
	assert.Equal(t, testNow, repo.lastStaleAt)
}

func TestService_ExpireStalePending_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{staleErr: errors.New("db down")}
	svc := newTestService(repo, &fakeCourtRepo{})

	_, err := svc.ExpireStalePending(context.Background())
	require.ErrorIs(t, err, ErrInternal)
}
