package notifier

// BookingCreatedEvent событие о созданном бронировании
// Сервис уведомлений сам решает, куда его доставить (Telegram магазина)
type BookingCreatedEvent struct {
	Type          string  `json:"type"`
	ShopID        string  `json:"shop_id"`
	BookingID     string  `json:"booking_id"`
	ServiceName   string  `json:"service_name"`
	MasterName    string  `json:"master_name"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	StartTime     string  `json:"start_time"` // RFC3339
	Notes         *string `json:"notes,omitempty"`
}

// eventTypeBookingCreated тип события создания бронирования
const eventTypeBookingCreated = "booking_created"
