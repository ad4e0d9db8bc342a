package get_available_slots

import (
	"time"

	"github.com/servicebox-app/booking-service/internal/domain"
	getAvailableSlots "github.com/servicebox-app/booking-service/internal/usecase/get_available_slots"
)

// MasterResponse HTTP модель мастера, свободного в слоте
type MasterResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	Time      string           `json:"time"`
	Datetime  string           `json:"datetime"`
	Available bool             `json:"available"`
	Masters   []MasterResponse `json:"masters"`
}

// AvailableSlotsResponse HTTP модель ответа со списком слотов
type AvailableSlotsResponse struct {
	Date            string         `json:"date"`
	ServiceID       string         `json:"serviceId"`
	ServiceName     string         `json:"serviceName"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
	Message         string         `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP параметры в модель use case
func ToUseCaseRequest(shopID, serviceID, dateStr string, masterID *string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ShopID:    shopID,
		ServiceID: serviceID,
		Date:      date,
		MasterID:  masterID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		masters := make([]MasterResponse, len(slot.Masters))
		for j, m := range slot.Masters {
			masters[j] = MasterResponse{ID: m.ID, Name: m.Name}
		}
		slots[i] = SlotResponse{
			Time:      slot.Time,
			Datetime:  slot.Datetime.Format(time.RFC3339),
			Available: slot.Available,
			Masters:   masters,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
		Message:         resp.Message,
	}
}
