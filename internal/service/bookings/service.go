package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/servicebox-app/booking-service/internal/domain"
	bookingRepo "github.com/servicebox-app/booking-service/internal/infra/storage/booking"
	"github.com/servicebox-app/booking-service/internal/service/bookings/models"
)

// Service сервис для чтения бронирований и управления их жизненным циклом
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование магазина по ID
func (s *Service) GetByID(ctx context.Context, shopID, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for shop=%s", id, shopID)

	booking, err := s.bookingRepo.GetByID(ctx, shopID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования магазина с фильтрацией по статусу, мастеру и дате
func (s *Service) List(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for shop=%s", req.ShopID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for shop=%s: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for shop=%s: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings for shop=%s", len(bookings), req.ShopID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус по таблице переходов
// жизненного цикла: pending -> confirmed/cancelled/no_show,
// confirmed -> completed/cancelled/no_show; терминальные статусы
// (completed, cancelled, no_show) не допускают переходов.
//
// Доступность календаря при смене статуса не перепроверяется: отмененное
// бронирование просто перестает учитываться в проверке пересечений,
// и его интервал снова становится свободным
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", bookingID, req.Status)

	// Валидируем значение статуса
	newStatus, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: unknown status=%s for booking id=%s", req.Status, bookingID)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.ShopID, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%s",
			booking.Status, newStatus, bookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	// Условный UPDATE ... WHERE status = <прочитанный статус>: если между
	// чтением и записью статус изменил параллельный запрос, проверка
	// CanTransitionTo устарела и перевод отклоняется как конфликтующий
	if err := s.bookingRepo.UpdateStatus(ctx, req.ShopID, bookingID, booking.Status, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			s.logger.Warn("UpdateStatus: concurrent status change for booking id=%s", bookingID)
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(booking), nil
}
