package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/servicebox-app/booking-service/internal/api/handlers"
	"github.com/servicebox-app/booking-service/internal/api/middleware"
	getAvailableSlots "github.com/servicebox-app/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingServiceID = "ID услуги обязателен"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound  = "услуга не найдена"
	msgMasterNotFound   = "мастер не найден"
	msgNotAService      = "выбранный товар не является услугой"
	msgInvalidInput     = "некорректные данные запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD), masterId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID, _ := middleware.ShopIDFromContext(r.Context())

	query := r.URL.Query()

	serviceID := query.Get("serviceId")
	if serviceID == "" {
		h.logger.Warn("GET /bookings/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /bookings/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	var masterID *string
	if id := query.Get("masterId"); id != "" {
		masterID = &id
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(shopID, serviceID, dateStr, masterID)
	if err != nil {
		h.logger.Warn("GET /bookings/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /bookings/available-slots - Service not found: shop_id=%s, service_id=%s",
				shopID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrMasterNotFound):
			h.logger.Warn("GET /bookings/available-slots - Master not found: shop_id=%s", shopID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidServiceType):
			h.logger.Warn("GET /bookings/available-slots - Product is not a service: shop_id=%s, service_id=%s",
				shopID, serviceID)
			handlers.RespondBadRequest(w, msgNotAService)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /bookings/available-slots - Invalid input: shop_id=%s, error=%v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /bookings/available-slots - Failed to get slots: shop_id=%s, service_id=%s, error=%v",
				shopID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /bookings/available-slots - Slots retrieved successfully: shop_id=%s, service_id=%s, slots_count=%d",
		shopID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
