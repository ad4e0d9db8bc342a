package get_available_slots

import (
	"context"
	"time"

	"github.com/servicebox-app/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListForScheduling получает активные бронирования магазина,
	// пересекающие интервал [from, to)
	ListForScheduling(ctx context.Context, shopID string, from, to time.Time) ([]*domain.Booking, error)
}

// MasterRepository интерфейс репозитория мастеров
type MasterRepository interface {
	GetByID(ctx context.Context, shopID, id string) (*domain.Master, error)
	ListActive(ctx context.Context, shopID string) ([]*domain.Master, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetService(ctx context.Context, shopID, productID string) (*domain.CatalogService, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
