package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/servicebox-app/booking-service/internal/domain"
	catalogRepo "github.com/servicebox-app/booking-service/internal/infra/storage/catalog"
	masterRepo "github.com/servicebox-app/booking-service/internal/infra/storage/master"
	"github.com/servicebox-app/booking-service/internal/integrations/notifier"
	"github.com/servicebox-app/booking-service/pkg/simpletxmanager"
	"github.com/servicebox-app/booking-service/pkg/txmanager"
)

// UseCase use case для создания бронирования
// Подбирает мастера и атомарно фиксирует интервал: проверка доступности и
// вставка выполняются в одной сериализуемой транзакции под блокировкой
// строки мастера, поэтому два конкурирующих запроса на пересекающиеся
// интервалы одного мастера не могут пройти оба
type UseCase struct {
	bookingRepo  BookingRepository
	masterRepo   MasterRepository
	customerRepo CustomerRepository
	catalogRepo  CatalogRepository
	notifier     NotifierClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	masterRepo MasterRepository,
	customerRepo CustomerRepository,
	catalogRepo CatalogRepository,
	notifierClient NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		masterRepo:   masterRepo,
		customerRepo: customerRepo,
		catalogRepo:  catalogRepo,
		notifier:     notifierClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: shop=%s, service=%s, start=%s",
		req.ShopID, req.ServiceID, req.StartTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Время начала должно быть в будущем - проверяется до любых
	// обращений к хранилищу
	now := uc.timeProvider.Now()
	if !req.StartTime.After(now) {
		uc.logger.Warn("CreateBooking: start time %s is not in the future",
			req.StartTime.Format(time.RFC3339))
		return nil, fmt.Errorf("%w: start time must be in the future", ErrInvalidTimeWindow)
	}

	// 3. Получаем услугу из каталога
	service, err := uc.resolveService(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Время окончания вычисляется один раз и сохраняется в бронировании;
	// последующие изменения длительности услуги не меняют существующие записи
	startTime := req.StartTime
	endTime := startTime.Add(time.Duration(service.DurationMinutes) * time.Minute)

	var result *domain.Booking
	var chosenMaster *domain.Master

	// 5. Проверка доступности и вставка - одна сериализуемая транзакция
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		master, err := uc.resolveMaster(txCtx, req, startTime, endTime)
		if err != nil {
			return err
		}
		chosenMaster = master

		// Находим или создаем клиента по телефону
		customer, err := uc.customerRepo.UpsertByPhone(
			txCtx, req.ShopID, req.Customer.Phone, req.Customer.Name, req.Customer.Email)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to upsert customer: %v", err)
			return fmt.Errorf("%w: failed to upsert customer: %v", ErrInternal, err)
		}

		booking := &domain.Booking{
			ShopID:     req.ShopID,
			ServiceID:  service.ID,
			CustomerID: &customer.ID,
			MasterID:   &master.ID,
			StartTime:  startTime,
			EndTime:    endTime,
			Status:     domain.StatusPending,
			// Снимок данных клиента на момент создания
			CustomerName:  req.Customer.Name,
			CustomerPhone: req.Customer.Phone,
			CustomerEmail: req.Customer.Email,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт сериализации после повтора: конкурирующий запрос успел
		// занять интервал - для вызывающей стороны мастер занят
		if isSerializationConflict(err) {
			uc.logger.Warn("CreateBooking: serialization conflict for shop=%s, start=%s: %v",
				req.ShopID, startTime.Format(time.RFC3339), err)
			if req.MasterID != nil {
				return nil, ErrMasterUnavailable
			}
			return nil, ErrNoAvailableMaster
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, master=%s, interval=[%s, %s)",
		result.ID, chosenMaster.ID, startTime.Format(time.RFC3339), endTime.Format(time.RFC3339))

	// 6. Уведомление отправляется best-effort после фиксации транзакции:
	// ошибка доставки логируется и не откатывает бронирование
	uc.sendNotification(result, service, chosenMaster)

	return &Response{
		ID:            result.ID,
		ShopID:        result.ShopID,
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		MasterID:      chosenMaster.ID,
		MasterName:    chosenMaster.Name,
		CustomerID:    derefString(result.CustomerID),
		CustomerName:  result.CustomerName,
		CustomerPhone: result.CustomerPhone,
		CustomerEmail: result.CustomerEmail,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Status:        string(result.Status),
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// resolveService получает услугу и проверяет, что её можно бронировать
func (uc *UseCase) resolveService(ctx context.Context, req *Request) (*domain.CatalogService, error) {
	service, err := uc.catalogRepo.GetService(ctx, req.ShopID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsService() {
		uc.logger.Warn("CreateBooking: product id=%s has kind=%s, not a service",
			req.ServiceID, service.Kind)
		return nil, ErrInvalidServiceType
	}

	// Нулевая или отрицательная длительность - ошибка конфигурации каталога,
	// она не обрабатывается планировщиком
	if service.DurationMinutes <= 0 {
		uc.logger.Error("CreateBooking: service id=%s has non-positive duration %d",
			service.ID, service.DurationMinutes)
		return nil, fmt.Errorf("%w: service has non-positive duration", ErrInternal)
	}

	return service, nil
}

// resolveMaster выбирает мастера для бронирования внутри транзакции.
// Указанный мастер блокируется и проверяется; без указания мастера активные
// мастера перебираются в детерминированном порядке (sort_order, name, id),
// выбирается первый свободный
func (uc *UseCase) resolveMaster(txCtx context.Context, req *Request, startTime, endTime time.Time) (*domain.Master, error) {
	if req.MasterID != nil {
		master, err := uc.masterRepo.GetByID(txCtx, req.ShopID, *req.MasterID)
		if err != nil {
			if errors.Is(err, masterRepo.ErrMasterNotFound) {
				uc.logger.Warn("CreateBooking: master id=%s not found", *req.MasterID)
				return nil, ErrMasterNotFound
			}
			uc.logger.Error("CreateBooking: failed to get master id=%s: %v", *req.MasterID, err)
			return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
		}

		if err := uc.lockAndCheck(txCtx, req.ShopID, master.ID, startTime, endTime); err != nil {
			return nil, err
		}
		return master, nil
	}

	masters, err := uc.masterRepo.ListActive(txCtx, req.ShopID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list active masters: %v", err)
		return nil, fmt.Errorf("%w: failed to list masters: %v", ErrInternal, err)
	}

	for _, master := range masters {
		err := uc.lockAndCheck(txCtx, req.ShopID, master.ID, startTime, endTime)
		if err == nil {
			return master, nil
		}
		if !errors.Is(err, ErrMasterUnavailable) {
			return nil, err
		}
	}

	uc.logger.Warn("CreateBooking: no available master for shop=%s, interval=[%s, %s)",
		req.ShopID, startTime.Format(time.RFC3339), endTime.Format(time.RFC3339))
	return nil, ErrNoAvailableMaster
}

// lockAndCheck блокирует строку мастера и перепроверяет его занятость
// по зафиксированному состоянию календаря
func (uc *UseCase) lockAndCheck(txCtx context.Context, shopID, masterID string, startTime, endTime time.Time) error {
	if err := uc.masterRepo.LockByID(txCtx, shopID, masterID); err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			return ErrMasterNotFound
		}
		uc.logger.Error("CreateBooking: failed to lock master id=%s: %v", masterID, err)
		return fmt.Errorf("%w: failed to lock master: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.ListForScheduling(txCtx, shopID, startTime, endTime)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
		return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	if !domain.MasterAvailable(bookings, masterID, startTime, endTime) {
		return ErrMasterUnavailable
	}

	return nil
}

// sendNotification отправляет событие о созданном бронировании (fire-and-forget)
func (uc *UseCase) sendNotification(booking *domain.Booking, service *domain.CatalogService, master *domain.Master) {
	event := notifier.BookingCreatedEvent{
		ShopID:        booking.ShopID,
		BookingID:     booking.ID,
		ServiceName:   service.Name,
		MasterName:    master.Name,
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		StartTime:     booking.StartTime.Format(time.RFC3339),
		Notes:         booking.Notes,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := uc.notifier.BookingCreated(ctx, event); err != nil {
			uc.logger.Warn("CreateBooking: failed to send notification for booking id=%s: %v",
				booking.ID, err)
		}
	}()
}

// isSerializationConflict распознает конфликт сериализации от любого
// из transaction manager'ов
func isSerializationConflict(err error) bool {
	return errors.Is(err, txmanager.ErrSerializationConflict) ||
		errors.Is(err, simpletxmanager.ErrSerializationConflict)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
