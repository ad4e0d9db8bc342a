package get_bookings

import (
	"time"

	"github.com/servicebox-app/booking-service/internal/service/bookings/models"
)

// BookingResponse HTTP модель бронирования в списке
type BookingResponse struct {
	ID            string  `json:"id"`
	ShopID        string  `json:"shopId"`
	ServiceID     string  `json:"serviceId"`
	ServiceName   string  `json:"serviceName"`
	CustomerID    *string `json:"customerId,omitempty"`
	MasterID      *string `json:"masterId,omitempty"`
	MasterName    *string `json:"masterName,omitempty"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Status        string  `json:"status"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// BookingListResponse HTTP модель списка бронирований
type BookingListResponse struct {
	Data  []*BookingResponse `json:"data"`
	Count int                `json:"count"`
}

// FromServiceBooking конвертирует ответ сервиса в HTTP модель
func FromServiceBooking(b *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		ShopID:        b.ShopID,
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		CustomerID:    b.CustomerID,
		MasterID:      b.MasterID,
		MasterName:    b.MasterName,
		StartTime:     b.StartTime.Format(time.RFC3339),
		EndTime:       b.EndTime.Format(time.RFC3339),
		Status:        b.Status,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromServiceList конвертирует список сервиса в HTTP модель
func FromServiceList(list *models.BookingListResponse) *BookingListResponse {
	data := make([]*BookingResponse, len(list.Data))
	for i, b := range list.Data {
		data[i] = FromServiceBooking(b)
	}
	return &BookingListResponse{
		Data:  data,
		Count: list.Count,
	}
}
