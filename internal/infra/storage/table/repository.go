package table

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/psqlbuilder"
)

// Repository каталог столов (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListQualifying возвращает активные столы арендатора, вмещающие minCapacity гостей (max_seats >= minCapacity)
// Сортировка как в админке: sort_order, name
func (r *Repository) ListQualifying(ctx context.Context, tenantID uuid.UUID, minCapacity int) ([]*domain.Table, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"name",
		"min_seats",
		"max_seats",
		"combinable",
		"combine_with_id",
		"zone",
		"active",
		"sort_order",
	).
		From("restaurant_tables").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.GtOrEq{"max_seats": minCapacity}).
		OrderBy("sort_order ASC", "name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListQualifying - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListQualifying - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTables(rows)
}

// scanTables сканирует результаты запроса в слайс столов
func (r *Repository) scanTables(rows *sql.Rows) ([]*domain.Table, error) {
	tables := make([]*domain.Table, 0)

	for rows.Next() {
		var table domain.Table
		var combineWith sql.NullInt64

		err := rows.Scan(
			&table.ID,
			&table.TenantID,
			&table.Name,
			&table.MinSeats,
			&table.MaxSeats,
			&table.Combinable,
			&combineWith,
			&table.Zone,
			&table.Active,
			&table.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTables - scan row: %v", ErrScanRow, err)
		}

		if combineWith.Valid {
			id := combineWith.Int64
			table.CombineWithID = &id
		}

		tables = append(tables, &table)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTables - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}
