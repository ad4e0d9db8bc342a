package models

import (
	"fmt"
	"time"

	"github.com/servicebox-app/booking-service/internal/domain"
)

// GetBookingsRequest запрос списка бронирований магазина
type GetBookingsRequest struct {
	ShopID   string
	Status   *string // Фильтр по статусу (опционально)
	MasterID *string // Фильтр по мастеру (опционально)
	Date     *string // Фильтр по дате начала, YYYY-MM-DD (опционально)
}

// UpdateStatusRequest запрос смены статуса бронирования
type UpdateStatusRequest struct {
	ShopID string
	Status string
}

// BookingResponse модель бронирования для ответа сервиса
type BookingResponse struct {
	ID            string
	ShopID        string
	ServiceID     string
	ServiceName   string
	CustomerID    *string
	MasterID      *string
	MasterName    *string
	StartTime     time.Time
	EndTime       time.Time
	Status        string
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BookingListResponse список бронирований с количеством
type BookingListResponse struct {
	Data  []*BookingResponse
	Count int
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *GetBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		ShopID:   r.ShopID,
		MasterID: r.MasterID,
	}

	if r.Status != nil {
		status, ok := domain.ParseBookingStatus(*r.Status)
		if !ok {
			return domain.BookingsFilter{}, fmt.Errorf("unknown status %q", *r.Status)
		}
		filter.Status = &status
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return domain.BookingsFilter{}, fmt.Errorf("invalid date %q: %v", *r.Date, err)
		}
		filter.Date = &date
	}

	return filter, nil
}

// FromDomainBooking конвертирует доменное бронирование в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		ShopID:        b.ShopID,
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		CustomerID:    b.CustomerID,
		MasterID:      b.MasterID,
		MasterName:    b.MasterName,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        string(b.Status),
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	data := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		data[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Data:  data,
		Count: len(data),
	}
}
