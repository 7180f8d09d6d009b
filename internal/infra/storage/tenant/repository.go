package tenant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableAvailability/pkg/psqlbuilder"
)

// Repository справочник арендаторов, используется для определения арендатора запроса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория арендаторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetIDBySlug возвращает id активного арендатора по slug
func (r *Repository) GetIDBySlug(ctx context.Context, slug string) (uuid.UUID, error) {
	query, args, err := psqlbuilder.Select("id").
		From("tenants").
		Where(squirrel.Eq{"slug": slug}).
		Where(squirrel.Eq{"active": true}).
		ToSql()

	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: GetIDBySlug - build select query: %v", ErrBuildQuery, err)
	}

	var id uuid.UUID
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, ErrTenantNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: GetIDBySlug - scan tenant: %v", ErrScanRow, err)
	}

	return id, nil
}

// EnsureActive проверяет, что арендатор с таким id существует и активен
func (r *Repository) EnsureActive(ctx context.Context, id uuid.UUID) error {
	query, args, err := psqlbuilder.Select("id").
		From("tenants").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"active": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: EnsureActive - build select query: %v", ErrBuildQuery, err)
	}

	var found uuid.UUID
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTenantNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: EnsureActive - scan tenant: %v", ErrScanRow, err)
	}

	return nil
}
