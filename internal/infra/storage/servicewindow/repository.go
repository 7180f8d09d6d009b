package servicewindow

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/psqlbuilder"
)

// Repository реестр окон обслуживания (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон обслуживания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveByWeekday возвращает активные окна арендатора на день недели (0=понедельник)
// Сортировка по времени открытия, при равенстве по id
func (r *Repository) ListActiveByWeekday(ctx context.Context, tenantID uuid.UUID, weekday int) ([]*domain.ServiceWindow, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"name",
		"day_of_week",
		"open_time",
		"close_time",
		"last_booking_time",
		"turn_time_minutes",
		"max_covers",
		"active",
	).
		From("service_windows").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Eq{"day_of_week": weekday}).
		Where(squirrel.Eq{"active": true}).
		OrderBy("open_time ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// ListActiveWeekdays возвращает дни недели (0=понедельник), в которые есть хотя бы одно активное
// корректное окно. Условия совпадают с domain.ServiceWindow.Validate: окно, которое расчет слотов
// отбросит, не делает день доступным
func (r *Repository) ListActiveWeekdays(ctx context.Context, tenantID uuid.UUID) ([]int, error) {
	query, args, err := psqlbuilder.Select("DISTINCT day_of_week").
		From("service_windows").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.GtOrEq{"day_of_week": 0}).
		Where(squirrel.LtOrEq{"day_of_week": 6}).
		Where("open_time <= last_booking_time").
		Where("last_booking_time <= close_time").
		Where(squirrel.GtOrEq{"turn_time_minutes": domain.MinTurnTimeMinutes}).
		Where(squirrel.GtOrEq{"max_covers": 1}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveWeekdays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveWeekdays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	weekdays := make([]int, 0, 7)
	for rows.Next() {
		var weekday int
		if err := rows.Scan(&weekday); err != nil {
			return nil, fmt.Errorf("%w: ListActiveWeekdays - scan day_of_week: %v", ErrScanRow, err)
		}
		weekdays = append(weekdays, weekday)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveWeekdays - rows error: %v", ErrScanRow, err)
	}

	return weekdays, nil
}

// scanWindows сканирует результаты запроса в слайс окон
func (r *Repository) scanWindows(rows *sql.Rows) ([]*domain.ServiceWindow, error) {
	windows := make([]*domain.ServiceWindow, 0)

	for rows.Next() {
		var window domain.ServiceWindow

		err := rows.Scan(
			&window.ID,
			&window.TenantID,
			&window.Name,
			&window.DayOfWeek,
			&window.OpenTime,
			&window.CloseTime,
			&window.LastBookingTime,
			&window.TurnTimeMinutes,
			&window.MaxCovers,
			&window.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}

		windows = append(windows, &window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
