package master

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/servicebox-app/booking-service/internal/domain"
	"github.com/servicebox-app/booking-service/pkg/dbmetrics"
	"github.com/servicebox-app/booking-service/pkg/psqlbuilder"
)

var masterColumns = []string{
	"id",
	"shop_id",
	"name",
	"is_active",
	"sort_order",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с мастерами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает мастера магазина по ID
func (r *Repository) GetByID(ctx context.Context, shopID, id string) (*domain.Master, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(masterColumns...).
		From("masters").
		Where(squirrel.Eq{"id": id, "shop_id": shopID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	master, err := scanMaster(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrMasterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan master: %w", ErrScanRow, err)
	}

	return master, nil
}

// ListActive получает активных мастеров магазина в детерминированном порядке
// (sort_order, name, id) - аллокатор перебирает их именно в этом порядке,
// поэтому "первый свободный мастер" всегда один и тот же
func (r *Repository) ListActive(ctx context.Context, shopID string) ([]*domain.Master, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(masterColumns...).
		From("masters").
		Where(squirrel.Eq{"shop_id": shopID, "is_active": true}).
		OrderBy("sort_order ASC", "name ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	masters := make([]*domain.Master, 0)
	for rows.Next() {
		master, err := scanMaster(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %w", ErrScanRow, err)
		}
		masters = append(masters, master)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %w", ErrScanRow, err)
	}

	return masters, nil
}

// LockByID блокирует строку мастера (SELECT ... FOR UPDATE) до конца
// текущей транзакции. Сериализует проверку доступности и вставку
// бронирования по одному мастеру: второй конкурирующий запрос ждет
// освобождения блокировки и перечитывает уже зафиксированное состояние.
//
// Вызывать только внутри транзакции
func (r *Repository) LockByID(ctx context.Context, shopID, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("masters").
		Where(squirrel.Eq{"id": id, "shop_id": shopID}).
		Suffix("FOR UPDATE").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: LockByID - build select query: %v", ErrBuildQuery, err)
	}

	var lockedID string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&lockedID)
	if err == sql.ErrNoRows {
		return ErrMasterNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: LockByID - execute query: %w", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMaster(row rowScanner) (*domain.Master, error) {
	var master domain.Master
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&master.ID,
		&master.ShopID,
		&master.Name,
		&master.IsActive,
		&master.SortOrder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	master.CreatedAt = createdAt.Time
	master.UpdatedAt = updatedAt.Time

	return &master, nil
}
