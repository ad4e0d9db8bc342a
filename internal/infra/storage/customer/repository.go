package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/servicebox-app/booking-service/internal/domain"
	"github.com/servicebox-app/booking-service/pkg/dbmetrics"
	"github.com/servicebox-app/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с клиентами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertByPhone находит клиента магазина по телефону или создает нового.
// Телефон - уникальный ключ клиента в рамках магазина. При совпадении имя
// перезаписывается последним переданным значением, email перезаписывается
// только если передан (поведение findOrCreateByPhone)
func (r *Repository) UpsertByPhone(ctx context.Context, shopID, phone, name string, email *string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("shop_id", "phone", "name", "email").
		Values(shopID, phone, name, email).
		Suffix(`ON CONFLICT (shop_id, phone) DO UPDATE SET
			name = EXCLUDED.name,
			email = COALESCE(EXCLUDED.email, customers.email)
		RETURNING id, created_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByPhone - build upsert query: %v", ErrBuildQuery, err)
	}

	customer := &domain.Customer{
		ShopID: shopID,
		Phone:  phone,
		Name:   name,
		Email:  email,
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&customer.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByPhone - execute upsert: %w", ErrExecQuery, err)
	}

	customer.CreatedAt = createdAt.Time

	return customer, nil
}
