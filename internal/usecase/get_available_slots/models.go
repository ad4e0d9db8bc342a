package get_available_slots

import (
	"time"

	"github.com/servicebox-app/booking-service/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ShopID    string    // ID магазина (tenant)
	ServiceID string    // ID услуги
	Date      time.Time // Дата для получения слотов (без времени)
	MasterID  *string   // Конкретный мастер (опционально)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time
	ServiceID       string
	ServiceName     string
	DurationMinutes int
	Slots           []Slot
	Message         string // Пояснение при пустом списке ("нет активных мастеров")
}

// Slot модель временного слота
// Слот попадает в ответ, только если свободен хотя бы один мастер;
// Masters перечисляет всех свободных на это время
type Slot struct {
	Time      string    // "HH:MM" в часовом поясе магазина
	Datetime  time.Time // Абсолютное время начала
	Available bool
	Masters   []domain.MasterRef
}
