package create_booking

import "time"

// CustomerInfo данные клиента, снимок которых сохраняется в бронировании
type CustomerInfo struct {
	Name  string
	Phone string
	Email *string
}

// Request модель запроса на создание бронирования
type Request struct {
	ShopID    string       // ID магазина (tenant)
	ServiceID string       // ID услуги (товар типа "service")
	StartTime time.Time    // Запрошенное время начала
	MasterID  *string      // Конкретный мастер (опционально, иначе автоподбор)
	Customer  CustomerInfo // Данные клиента
	Notes     *string      // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string
	ShopID        string
	ServiceID     string
	ServiceName   string
	MasterID      string
	MasterName    string
	CustomerID    string
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	StartTime     time.Time
	EndTime       time.Time
	Status        string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
