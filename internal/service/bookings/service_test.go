package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servicebox-app/booking-service/internal/domain"
	bookingRepo "github.com/servicebox-app/booking-service/internal/infra/storage/booking"
	"github.com/servicebox-app/booking-service/internal/service/bookings/models"
)

const (
	testShopID    = "10000000-0000-0000-0000-000000000001"
	testBookingID = "50000000-0000-0000-0000-000000000001"
)

type fakeBookingRepo struct {
	getByIDFn        func(ctx context.Context, shopID, id string) (*domain.Booking, error)
	listWithFilterFn func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	updateStatusFn   func(ctx context.Context, shopID, id string, from, to domain.BookingStatus) error
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, shopID, id string) (*domain.Booking, error) {
	if f.getByIDFn == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.getByIDFn(ctx, shopID, id)
}

func (f *fakeBookingRepo) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.listWithFilterFn == nil {
		return nil, nil
	}
	return f.listWithFilterFn(ctx, filter)
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, shopID, id string, from, to domain.BookingStatus) error {
	if f.updateStatusFn == nil {
		return nil
	}
	return f.updateStatusFn(ctx, shopID, id, from, to)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func bookingFixture(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            testBookingID,
		ShopID:        testShopID,
		Status:        status,
		StartTime:     time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC),
		CustomerName:  "Ivan",
		CustomerPhone: "+79990001122",
	}
}

func TestUpdateStatus_AllowedTransition(t *testing.T) {
	var persistedFrom, persistedTo domain.BookingStatus
	repo := &fakeBookingRepo{
		getByIDFn: func(_ context.Context, _, _ string) (*domain.Booking, error) {
			return bookingFixture(domain.StatusPending), nil
		},
		updateStatusFn: func(_ context.Context, _, _ string, from, to domain.BookingStatus) error {
			persistedFrom = from
			persistedTo = to
			return nil
		},
	}

	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), testBookingID, &models.UpdateStatusRequest{
		ShopID: testShopID,
		Status: "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	// Переход выполняется из прочитанного статуса: UPDATE условный
	assert.Equal(t, domain.StatusPending, persistedFrom)
	assert.Equal(t, domain.StatusConfirmed, persistedTo)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	repo := &fakeBookingRepo{
		getByIDFn: func(_ context.Context, _, _ string) (*domain.Booking, error) {
			return bookingFixture(domain.StatusPending), nil
		},
		updateStatusFn: func(_ context.Context, _, _ string, _, _ domain.BookingStatus) error {
			t.Fatal("repository must not be called for a rejected transition")
			return nil
		},
	}

	svc := NewService(repo, nopLogger{})

	// pending -> completed пропускает подтверждение
	_, err := svc.UpdateStatus(context.Background(), testBookingID, &models.UpdateStatusRequest{
		ShopID: testShopID,
		Status: "completed",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_TerminalStatusRejectsAll(t *testing.T) {
	for _, terminal := range []domain.BookingStatus{
		domain.StatusCompleted, domain.StatusCancelled, domain.StatusNoShow,
	} {
		repo := &fakeBookingRepo{
			getByIDFn: func(_ context.Context, _, _ string) (*domain.Booking, error) {
				return bookingFixture(terminal), nil
			},
		}
		svc := NewService(repo, nopLogger{})

		for _, target := range []string{"pending", "confirmed", "completed", "cancelled", "no_show"} {
			_, err := svc.UpdateStatus(context.Background(), testBookingID, &models.UpdateStatusRequest{
				ShopID: testShopID,
				Status: target,
			})
			assert.ErrorIs(t, err, ErrInvalidTransition,
				"transition %s -> %s must be rejected", terminal, target)
		}
	}
}

func TestUpdateStatus_ConcurrentChangeRejected(t *testing.T) {
	// Между чтением и записью статус меняет параллельный запрос:
	// условный UPDATE не находит строку в прочитанном статусе
	repo := &fakeBookingRepo{
		getByIDFn: func(_ context.Context, _, _ string) (*domain.Booking, error) {
			return bookingFixture(domain.StatusPending), nil
		},
		updateStatusFn: func(_ context.Context, _, _ string, _, _ domain.BookingStatus) error {
			return bookingRepo.ErrStatusConflict
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), testBookingID, &models.UpdateStatusRequest{
		ShopID: testShopID,
		Status: "confirmed",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := &fakeBookingRepo{
		getByIDFn: func(_ context.Context, _, _ string) (*domain.Booking, error) {
			t.Fatal("repository must not be called for a malformed status")
			return nil, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), testBookingID, &models.UpdateStatusRequest{
		ShopID: testShopID,
		Status: "finished",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), testBookingID, &models.UpdateStatusRequest{
		ShopID: testShopID,
		Status: "confirmed",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_FilterValidation(t *testing.T) {
	var gotFilter domain.BookingsFilter
	repo := &fakeBookingRepo{
		listWithFilterFn: func(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			gotFilter = filter
			return []*domain.Booking{bookingFixture(domain.StatusPending)}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	status := "pending"
	date := "2026-09-15"
	resp, err := svc.List(context.Background(), &models.GetBookingsRequest{
		ShopID: testShopID,
		Status: &status,
		Date:   &date,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)

	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, domain.StatusPending, *gotFilter.Status)
	require.NotNil(t, gotFilter.Date)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), *gotFilter.Date)

	// Неизвестный статус отклоняется до обращения к хранилищу
	bad := "finished"
	_, err = svc.List(context.Background(), &models.GetBookingsRequest{
		ShopID: testShopID,
		Status: &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID(t *testing.T) {
	repo := &fakeBookingRepo{
		getByIDFn: func(_ context.Context, shopID, id string) (*domain.Booking, error) {
			assert.Equal(t, testShopID, shopID)
			assert.Equal(t, testBookingID, id)
			return bookingFixture(domain.StatusConfirmed), nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), testShopID, testBookingID)
	require.NoError(t, err)
	assert.Equal(t, testBookingID, resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
}
