package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servicebox-app/booking-service/internal/domain"
	catalogRepo "github.com/servicebox-app/booking-service/internal/infra/storage/catalog"
	"github.com/servicebox-app/booking-service/pkg/ptr"
	"github.com/servicebox-app/booking-service/pkg/types"
)

const (
	testShopID    = "10000000-0000-0000-0000-000000000001"
	testServiceID = "20000000-0000-0000-0000-000000000001"
	testMasterA   = "30000000-0000-0000-0000-000000000001"
	testMasterB   = "30000000-0000-0000-0000-000000000002"
)

type fakeBookingRepo struct {
	listForSchedulingFn func(ctx context.Context, shopID string, from, to time.Time) ([]*domain.Booking, error)
}

func (f *fakeBookingRepo) ListForScheduling(ctx context.Context, shopID string, from, to time.Time) ([]*domain.Booking, error) {
	if f.listForSchedulingFn == nil {
		return nil, nil
	}
	return f.listForSchedulingFn(ctx, shopID, from, to)
}

type fakeMasterRepo struct {
	getByIDFn    func(ctx context.Context, shopID, id string) (*domain.Master, error)
	listActiveFn func(ctx context.Context, shopID string) ([]*domain.Master, error)
}

func (f *fakeMasterRepo) GetByID(ctx context.Context, shopID, id string) (*domain.Master, error) {
	if f.getByIDFn == nil {
		return nil, nil
	}
	return f.getByIDFn(ctx, shopID, id)
}

func (f *fakeMasterRepo) ListActive(ctx context.Context, shopID string) ([]*domain.Master, error) {
	if f.listActiveFn == nil {
		return nil, nil
	}
	return f.listActiveFn(ctx, shopID)
}

type fakeCatalogRepo struct {
	getServiceFn func(ctx context.Context, shopID, productID string) (*domain.CatalogService, error)
}

func (f *fakeCatalogRepo) GetService(ctx context.Context, shopID, productID string) (*domain.CatalogService, error) {
	if f.getServiceFn == nil {
		return nil, nil
	}
	return f.getServiceFn(ctx, shopID, productID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testSchedule(t *testing.T) domain.ScheduleConfig {
	t.Helper()
	start, err := types.NewTimeStringFromString("09:00")
	require.NoError(t, err)
	end, err := types.NewTimeStringFromString("20:00")
	require.NoError(t, err)
	return domain.ScheduleConfig{
		WorkStart:   start,
		WorkEnd:     end,
		StepMinutes: 30,
		Location:    time.UTC,
	}
}

func serviceFixture(durationMinutes int) *domain.CatalogService {
	return &domain.CatalogService{
		ID:              testServiceID,
		ShopID:          testShopID,
		Name:            "Haircut",
		Kind:            domain.KindService,
		DurationMinutes: durationMinutes,
		MaxConcurrent:   1,
		RequiresBooking: true,
		IsActive:        true,
	}
}

func masterFixture(id, name string) *domain.Master {
	return &domain.Master{ID: id, Name: name, ShopID: testShopID, IsActive: true}
}

func slotTimes(slots []Slot) []string {
	times := make([]string, len(slots))
	for i, s := range slots {
		times[i] = s.Time
	}
	return times
}

func TestExecute_BusyIntervalExcluded(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&fakeBookingRepo{
			listForSchedulingFn: func(_ context.Context, _ string, _, _ time.Time) ([]*domain.Booking, error) {
				// Одно активное бронирование 10:00-11:00
				return []*domain.Booking{{
					MasterID:  ptr.Ptr(testMasterA),
					StartTime: time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
					EndTime:   time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC),
					Status:    domain.StatusConfirmed,
				}}, nil
			},
		},
		&fakeMasterRepo{
			listActiveFn: func(_ context.Context, _ string) ([]*domain.Master, error) {
				return []*domain.Master{masterFixture(testMasterA, "Anna")}, nil
			},
		},
		&fakeCatalogRepo{
			getServiceFn: func(_ context.Context, _, _ string) (*domain.CatalogService, error) {
				return serviceFixture(60), nil
			},
		},
		testSchedule(t),
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ShopID:    testShopID,
		ServiceID: testServiceID,
		Date:      date,
	})
	require.NoError(t, err)

	times := slotTimes(resp.Slots)

	// Кандидаты, пересекающие бронирование 10:00-11:00 услугой на 60 минут
	assert.NotContains(t, times, "09:30")
	assert.NotContains(t, times, "10:00")
	assert.NotContains(t, times, "10:30")

	// Касание границ не конфликтует
	assert.Contains(t, times, "09:00")
	assert.Contains(t, times, "11:00")

	// Хвостовой кандидат 19:30 не обрезается, хотя 19:30+60мин выходит
	// за конец окна 20:00
	assert.Contains(t, times, "19:30")
	assert.NotContains(t, times, "20:00")

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
		require.Len(t, slot.Masters, 1)
		assert.Equal(t, testMasterA, slot.Masters[0].ID)
	}
}

func TestExecute_SlotListedWhileAnyMasterFree(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&fakeBookingRepo{
			listForSchedulingFn: func(_ context.Context, _ string, _, _ time.Time) ([]*domain.Booking, error) {
				// Мастер A занят 10:00-11:00, мастер B свободен весь день
				return []*domain.Booking{{
					MasterID:  ptr.Ptr(testMasterA),
					StartTime: time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
					EndTime:   time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC),
					Status:    domain.StatusPending,
				}}, nil
			},
		},
		&fakeMasterRepo{
			listActiveFn: func(_ context.Context, _ string) ([]*domain.Master, error) {
				return []*domain.Master{
					masterFixture(testMasterA, "Anna"),
					masterFixture(testMasterB, "Boris"),
				}, nil
			},
		},
		&fakeCatalogRepo{
			getServiceFn: func(_ context.Context, _, _ string) (*domain.CatalogService, error) {
				return serviceFixture(60), nil
			},
		},
		testSchedule(t),
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ShopID:    testShopID,
		ServiceID: testServiceID,
		Date:      date,
	})
	require.NoError(t, err)

	bySlot := make(map[string][]domain.MasterRef)
	for _, slot := range resp.Slots {
		bySlot[slot.Time] = slot.Masters
	}

	// Слот 10:00 остается в выдаче: свободен мастер B
	require.Contains(t, bySlot, "10:00")
	require.Len(t, bySlot["10:00"], 1)
	assert.Equal(t, testMasterB, bySlot["10:00"][0].ID)

	// В свободное время доступны оба мастера
	require.Contains(t, bySlot, "09:00")
	assert.Len(t, bySlot["09:00"], 2)
}

func TestExecute_NoActiveMasters(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeMasterRepo{
			listActiveFn: func(_ context.Context, _ string) ([]*domain.Master, error) {
				return []*domain.Master{}, nil
			},
		},
		&fakeCatalogRepo{
			getServiceFn: func(_ context.Context, _, _ string) (*domain.CatalogService, error) {
				return serviceFixture(60), nil
			},
		},
		testSchedule(t),
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ShopID:    testShopID,
		ServiceID: testServiceID,
		Date:      date,
	})
	require.NoError(t, err)

	// Пустой список с пояснением, не ошибка
	assert.Empty(t, resp.Slots)
	assert.Equal(t, msgNoActiveMasters, resp.Message)
}

func TestExecute_InactiveRequestedMaster(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeMasterRepo{
			getByIDFn: func(_ context.Context, _, id string) (*domain.Master, error) {
				m := masterFixture(id, "Anna")
				m.IsActive = false
				return m, nil
			},
		},
		&fakeCatalogRepo{
			getServiceFn: func(_ context.Context, _, _ string) (*domain.CatalogService, error) {
				return serviceFixture(60), nil
			},
		},
		testSchedule(t),
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ShopID:    testShopID,
		ServiceID: testServiceID,
		Date:      date,
		MasterID:  ptr.Ptr(testMasterA),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, msgNoActiveMasters, resp.Message)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeMasterRepo{},
		&fakeCatalogRepo{
			getServiceFn: func(_ context.Context, _, _ string) (*domain.CatalogService, error) {
				return nil, catalogRepo.ErrServiceNotFound
			},
		},
		testSchedule(t),
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ShopID:    testShopID,
		ServiceID: testServiceID,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_NotAService(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeMasterRepo{},
		&fakeCatalogRepo{
			getServiceFn: func(_ context.Context, _, _ string) (*domain.CatalogService, error) {
				svc := serviceFixture(60)
				svc.Kind = domain.KindPhysical
				return svc, nil
			},
		},
		testSchedule(t),
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ShopID:    testShopID,
		ServiceID: testServiceID,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidServiceType)
}

func TestGenerateSlots_StepAndCount(t *testing.T) {
	schedule := testSchedule(t)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	windowStart, windowEnd, err := schedule.WindowOnDate(date)
	require.NoError(t, err)

	masters := []*domain.Master{masterFixture(testMasterA, "Anna")}

	slots := generateSlots(schedule, 60, windowStart, windowEnd, masters, nil)

	// Окно 09:00-20:00 с шагом 30 минут: 22 кандидата, все свободны
	require.Len(t, slots, 22)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "19:30", slots[21].Time)
	assert.Equal(t, windowStart, slots[0].Datetime)
}
