package get_bookings

import (
	"errors"
	"net/http"

	"github.com/servicebox-app/booking-service/internal/api/handlers"
	"github.com/servicebox-app/booking-service/internal/api/middleware"
	"github.com/servicebox-app/booking-service/internal/service/bookings"
	"github.com/servicebox-app/booking-service/internal/service/bookings/models"
)

const msgInvalidFilter = "некорректные параметры фильтрации"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: status, masterId, date (YYYY-MM-DD) - все опциональные
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID, _ := middleware.ShopIDFromContext(r.Context())

	req := &models.GetBookingsRequest{ShopID: shopID}

	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if masterID := query.Get("masterId"); masterID != "" {
		req.MasterID = &masterID
	}
	if date := query.Get("date"); date != "" {
		req.Date = &date
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: shop_id=%s, error=%v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: shop_id=%s, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: shop_id=%s, count=%d", shopID, result.Count)
	handlers.RespondJSON(w, http.StatusOK, FromServiceList(result))
}
