package create_booking

import (
	"context"
	"time"

	"github.com/servicebox-app/booking-service/internal/domain"
	"github.com/servicebox-app/booking-service/internal/integrations/notifier"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListForScheduling(ctx context.Context, shopID string, from, to time.Time) ([]*domain.Booking, error)
}

// MasterRepository интерфейс репозитория мастеров
type MasterRepository interface {
	GetByID(ctx context.Context, shopID, id string) (*domain.Master, error)
	ListActive(ctx context.Context, shopID string) ([]*domain.Master, error)
	LockByID(ctx context.Context, shopID, id string) error
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	UpsertByPhone(ctx context.Context, shopID, phone, name string, email *string) (*domain.Customer, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetService(ctx context.Context, shopID, productID string) (*domain.CatalogService, error)
}

// NotifierClient интерфейс клиента сервиса уведомлений
type NotifierClient interface {
	BookingCreated(ctx context.Context, event notifier.BookingCreatedEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
