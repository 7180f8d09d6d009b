package tenant

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIDBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT id FROM tenants WHERE slug = \$1 AND active = \$2`).
		WithArgs("trattoria", true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	got, err := repo.GetIDBySlug(context.Background(), "trattoria")

	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetIDBySlug_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM tenants`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = NewRepository(db).GetIDBySlug(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestGetIDBySlug_StoreFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM tenants`).WillReturnError(errors.New("connection reset"))

	_, err = NewRepository(db).GetIDBySlug(context.Background(), "trattoria")

	assert.ErrorIs(t, err, ErrScanRow)
	assert.NotErrorIs(t, err, ErrTenantNotFound)
}

func TestEnsureActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(`SELECT id FROM tenants WHERE id = \$1 AND active = \$2`).
		WithArgs(id, true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	assert.NoError(t, NewRepository(db).EnsureActive(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureActive_UnknownOrDisabled(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM tenants WHERE id = \$1 AND active = \$2`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err = NewRepository(db).EnsureActive(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestEnsureActive_StoreFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM tenants`).WillReturnError(errors.New("connection reset"))

	err = NewRepository(db).EnsureActive(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrScanRow)
	assert.NotErrorIs(t, err, ErrTenantNotFound)
}
