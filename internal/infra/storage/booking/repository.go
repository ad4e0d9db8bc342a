package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/servicebox-app/booking-service/internal/domain"
	"github.com/servicebox-app/booking-service/pkg/dbmetrics"
	"github.com/servicebox-app/booking-service/pkg/psqlbuilder"
)

// Колонки bookings с денормализованными именами услуги и мастера
var bookingColumns = []string{
	"b.id",
	"b.shop_id",
	"b.service_id",
	"b.customer_id",
	"b.master_id",
	"b.start_time",
	"b.end_time",
	"b.status",
	"b.customer_name",
	"b.customer_phone",
	"b.customer_email",
	"b.notes",
	"p.name AS service_name",
	"m.name AS master_name",
	"b.created_at",
	"b.updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её - при создании
// с проверкой доступности мастера вставка обязана выполняться в той же
// транзакции, что и проверка (иначе возможна гонка двух запросов)
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"shop_id",
			"service_id",
			"customer_id",
			"master_id",
			"start_time",
			"end_time",
			"status",
			"customer_name",
			"customer_phone",
			"customer_email",
			"notes",
		).
		Values(
			booking.ShopID,
			booking.ServiceID,
			booking.CustomerID,
			booking.MasterID,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.CustomerEmail,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование магазина по ID
func (r *Repository) GetByID(ctx context.Context, shopID, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("products p ON p.id = b.service_id").
		LeftJoin("masters m ON m.id = b.master_id").
		Where(squirrel.Eq{"b.id": id, "b.shop_id": shopID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// ListWithFilter получает бронирования магазина с фильтрацией
// по статусу, мастеру и дате начала; сортировка по времени начала
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("products p ON p.id = b.service_id").
		LeftJoin("masters m ON m.id = b.master_id").
		Where(squirrel.Eq{"b.shop_id": filter.ShopID}).
		OrderBy("b.start_time ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	}
	if filter.MasterID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.master_id": *filter.MasterID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("b.start_time::date = ?::date", *filter.Date))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListForScheduling получает активные бронирования магазина, пересекающие
// интервал [from, to) - источник данных для проверки доступности мастеров.
// Интервалы полуоткрытые: бронирование, заканчивающееся ровно в from,
// не попадает в выборку.
//
// Внутри транзакции добавляет FOR UPDATE OF b: аллокатор блокирует строки,
// по которым принимает решение о доступности, до фиксации вставки
func (r *Repository) ListForScheduling(ctx context.Context, shopID string, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"b.id",
		"b.shop_id",
		"b.service_id",
		"b.master_id",
		"b.start_time",
		"b.end_time",
		"b.status",
	).
		From("bookings b").
		Where(squirrel.Eq{"b.shop_id": shopID}).
		Where(squirrel.NotEq{"b.status": statusStrings(domain.InactiveStatuses)}).
		Where(squirrel.Lt{"b.start_time": to}).
		Where(squirrel.Gt{"b.end_time": from}).
		OrderBy("b.start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForScheduling - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForScheduling - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var booking domain.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.ShopID,
			&booking.ServiceID,
			&booking.MasterID,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListForScheduling - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForScheduling - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateStatus переводит бронирование магазина из статуса from в статус to.
// Условие status = from в WHERE делает перевод атомарным compare-and-set:
// два параллельных перехода из одного исходного статуса не перетирают
// друг друга - проигравший получает ErrStatusConflict
func (r *Repository) UpdateStatus(ctx context.Context, shopID, id string, from, to domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "shop_id": shopID, "status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var serviceName sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ShopID,
		&booking.ServiceID,
		&booking.CustomerID,
		&booking.MasterID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.CustomerEmail,
		&booking.Notes,
		&serviceName,
		&booking.MasterName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.ServiceName = serviceName.String
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
