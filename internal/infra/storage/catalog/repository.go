package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/servicebox-app/booking-service/internal/domain"
	"github.com/servicebox-app/booking-service/pkg/dbmetrics"
	"github.com/servicebox-app/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий каталога товаров (только чтение)
// Бронированию нужны товары типа "service" вместе с их деталями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetService получает товар магазина с деталями услуги.
// Товар любого типа возвращается как есть - проверка kind="service"
// выполняется на уровне usecase (ошибка InvalidServiceType)
func (r *Repository) GetService(ctx context.Context, shopID, productID string) (*domain.CatalogService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"p.id",
		"p.shop_id",
		"p.name",
		"p.type",
		"p.is_active",
		"COALESCE(s.duration_minutes, 0)",
		"COALESCE(s.max_concurrent, 1)",
		"COALESCE(s.requires_booking, FALSE)",
	).
		From("products p").
		LeftJoin("products_service s ON s.product_id = p.id").
		Where(squirrel.Eq{"p.id": productID, "p.shop_id": shopID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.CatalogService
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.ShopID,
		&service.Name,
		&service.Kind,
		&service.IsActive,
		&service.DurationMinutes,
		&service.MaxConcurrent,
		&service.RequiresBooking,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %w", ErrScanRow, err)
	}

	return &service, nil
}
