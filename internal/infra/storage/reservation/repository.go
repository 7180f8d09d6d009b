package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/psqlbuilder"
)

// Repository read-only доступ к бронированиям
// Таблицей reservations владеет сервис бронирований, здесь только чтение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListOccupying возвращает бронирования арендатора, занимающие столы и гостевые места,
// с началом в полуинтервале [from, to)
//
// Учитываются только статусы из domain.OccupyingStatuses (pending, confirmed).
// Сортировка по времени начала (ASC).
func (r *Repository) ListOccupying(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*domain.Reservation, error) {
	statuses := make([]string, len(domain.OccupyingStatuses))
	for i, s := range domain.OccupyingStatuses {
		statuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"start_time",
		"end_time",
		"party_size",
		"status",
	).
		From("reservations").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		Where("status = ANY(?)", pq.Array(statuses)).
		OrderBy("start_time ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupying - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupying - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var reservation domain.Reservation

		err := rows.Scan(
			&reservation.ID,
			&reservation.TenantID,
			&reservation.StartTime,
			&reservation.EndTime,
			&reservation.PartySize,
			&reservation.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
