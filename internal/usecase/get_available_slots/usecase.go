package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/servicebox-app/booking-service/internal/domain"
	catalogRepo "github.com/servicebox-app/booking-service/internal/infra/storage/catalog"
	masterRepo "github.com/servicebox-app/booking-service/internal/infra/storage/master"
)

const msgNoActiveMasters = "no active masters available"

// UseCase use case для получения доступных слотов для бронирования
// Слоты пересчитываются на каждый запрос по текущему состоянию календаря,
// без кэширования. Результат - прогноз, а не резерв: слот может быть занят
// конкурирующим запросом до того, как клиент отправит бронирование
type UseCase struct {
	bookingRepo BookingRepository
	masterRepo  MasterRepository
	catalogRepo CatalogRepository
	schedule    domain.ScheduleConfig
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	masterRepo MasterRepository,
	catalogRepo CatalogRepository,
	schedule domain.ScheduleConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		masterRepo:  masterRepo,
		catalogRepo: catalogRepo,
		schedule:    schedule,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: shop=%s, service=%s, date=%s",
		req.ShopID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога
	service, err := uc.catalogRepo.GetService(ctx, req.ShopID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsService() {
		uc.logger.Warn("GetAvailableSlots: product id=%s has kind=%s, not a service",
			req.ServiceID, service.Kind)
		return nil, ErrInvalidServiceType
	}

	if service.DurationMinutes <= 0 {
		uc.logger.Error("GetAvailableSlots: service id=%s has non-positive duration %d",
			service.ID, service.DurationMinutes)
		return nil, fmt.Errorf("%w: service has non-positive duration", ErrInternal)
	}

	// 3. Определяем мастеров в области поиска
	masters, err := uc.resolveMasters(ctx, req)
	if err != nil {
		return nil, err
	}

	// Нет активных мастеров - пустой список с пояснением, не ошибка
	if len(masters) == 0 {
		uc.logger.Info("GetAvailableSlots: no active masters for shop=%s", req.ShopID)
		return &Response{
			Date:            req.Date,
			ServiceID:       service.ID,
			ServiceName:     service.Name,
			DurationMinutes: service.DurationMinutes,
			Slots:           []Slot{},
			Message:         msgNoActiveMasters,
		}, nil
	}

	// 4. Рабочее окно магазина на запрошенную дату
	windowStart, windowEnd, err := uc.schedule.WindowOnDate(req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute working window: %v", err)
		return nil, fmt.Errorf("%w: failed to compute working window: %v", ErrInternal, err)
	}

	// 5. Один запрос за всеми активными бронированиями, пересекающими окно.
	// Хвостовые кандидаты не обрезаются, поэтому верхняя граница выборки -
	// конец окна плюс длительность услуги
	duration := time.Duration(service.DurationMinutes) * time.Minute
	bookings, err := uc.bookingRepo.ListForScheduling(ctx, req.ShopID, windowStart, windowEnd.Add(duration))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты
	slots := generateSlots(uc.schedule, service.DurationMinutes, windowStart, windowEnd, masters, bookings)

	uc.logger.Info("GetAvailableSlots: generated %d slots for shop=%s, service=%s, date=%s",
		len(slots), req.ShopID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}

// resolveMasters возвращает мастеров в области поиска: всех активных или
// только запрошенного. Неактивный запрошенный мастер дает пустую область -
// как и в списке всех активных, он не предлагается
func (uc *UseCase) resolveMasters(ctx context.Context, req *Request) ([]*domain.Master, error) {
	if req.MasterID == nil {
		masters, err := uc.masterRepo.ListActive(ctx, req.ShopID)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to list active masters: %v", err)
			return nil, fmt.Errorf("%w: failed to list masters: %v", ErrInternal, err)
		}
		return masters, nil
	}

	master, err := uc.masterRepo.GetByID(ctx, req.ShopID, *req.MasterID)
	if err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			uc.logger.Warn("GetAvailableSlots: master id=%s not found", *req.MasterID)
			return nil, ErrMasterNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get master id=%s: %v", *req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
	}

	if !master.IsActive {
		return []*domain.Master{}, nil
	}

	return []*domain.Master{master}, nil
}
