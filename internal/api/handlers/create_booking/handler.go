package create_booking

import (
	"errors"
	"net/http"

	"github.com/servicebox-app/booking-service/internal/api/handlers"
	"github.com/servicebox-app/booking-service/internal/api/middleware"
	createBooking "github.com/servicebox-app/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректный формат времени начала, ожидается RFC3339"
	msgServiceNotFound    = "услуга не найдена"
	msgMasterNotFound     = "мастер не найден"
	msgNotAService        = "выбранный товар не является услугой"
	msgMasterUnavailable  = "мастер занят в выбранное время"
	msgNoAvailableMaster  = "нет свободных мастеров на выбранное время"
	msgInvalidTimeWindow  = "некорректное время начала бронирования"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID, _ := middleware.ShopIDFromContext(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени начала)
	useCaseReq, err := req.ToUseCaseRequest(shopID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: shop_id=%s, service_id=%s", shopID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrMasterNotFound):
			h.logger.Warn("POST /bookings - Master not found: shop_id=%s", shopID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, createBooking.ErrInvalidServiceType):
			h.logger.Warn("POST /bookings - Product is not a service: shop_id=%s, service_id=%s", shopID, req.ServiceID)
			handlers.RespondBadRequest(w, msgNotAService)

		case errors.Is(err, createBooking.ErrMasterUnavailable):
			h.logger.Warn("POST /bookings - Master unavailable: shop_id=%s, service_id=%s", shopID, req.ServiceID)
			handlers.RespondBadRequest(w, msgMasterUnavailable)

		case errors.Is(err, createBooking.ErrNoAvailableMaster):
			h.logger.Warn("POST /bookings - No available masters: shop_id=%s, service_id=%s", shopID, req.ServiceID)
			handlers.RespondBadRequest(w, msgNoAvailableMaster)

		case errors.Is(err, createBooking.ErrInvalidTimeWindow):
			h.logger.Warn("POST /bookings - Invalid time window: shop_id=%s, start_time=%s", shopID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeWindow)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: shop_id=%s, error=%v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: shop_id=%s, service_id=%s, error=%v",
				shopID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, shop_id=%s, master_id=%s",
		result.ID, shopID, result.MasterID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
