package create_booking

import (
	"time"

	createBooking "github.com/servicebox-app/booking-service/internal/usecase/create_booking"
)

// CustomerRequest данные клиента в HTTP запросе
type CustomerRequest struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email *string `json:"email,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID string          `json:"serviceId"`
	StartTime string          `json:"startTime"` // RFC3339, например "2026-09-15T10:00:00+03:00"
	MasterID  *string         `json:"masterId,omitempty"`
	Customer  CustomerRequest `json:"customer"`
	Notes     *string         `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string  `json:"id"`
	ShopID        string  `json:"shopId"`
	ServiceID     string  `json:"serviceId"`
	ServiceName   string  `json:"serviceName"`
	MasterID      string  `json:"masterId"`
	MasterName    string  `json:"masterName"`
	CustomerID    string  `json:"customerId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(shopID string) (*createBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ShopID:    shopID,
		ServiceID: r.ServiceID,
		StartTime: startTime,
		MasterID:  r.MasterID,
		Customer: createBooking.CustomerInfo{
			Name:  r.Customer.Name,
			Phone: r.Customer.Phone,
			Email: r.Customer.Email,
		},
		Notes: r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		ShopID:        resp.ShopID,
		ServiceID:     resp.ServiceID,
		ServiceName:   resp.ServiceName,
		MasterID:      resp.MasterID,
		MasterName:    resp.MasterName,
		CustomerID:    resp.CustomerID,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		CustomerEmail: resp.CustomerEmail,
		StartTime:     resp.StartTime.Format(time.RFC3339),
		EndTime:       resp.EndTime.Format(time.RFC3339),
		Status:        resp.Status,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
