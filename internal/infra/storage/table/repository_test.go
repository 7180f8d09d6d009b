package table

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tableColumns = []string{
	"id", "tenant_id", "name", "min_seats", "max_seats", "combinable",
	"combine_with_id", "zone", "active", "sort_order",
}

func TestListQualifying(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	tenantID := uuid.New()

	mock.ExpectQuery(`SELECT id, tenant_id, name, min_seats, max_seats, combinable, combine_with_id, zone, active, sort_order ` +
		`FROM restaurant_tables WHERE tenant_id = \$1 AND active = \$2 AND max_seats >= \$3 ORDER BY sort_order ASC, name ASC`).
		WithArgs(tenantID, true, 4).
		WillReturnRows(sqlmock.NewRows(tableColumns).
			AddRow(int64(1), tenantID.String(), "Table 1", int64(2), int64(4), true, int64(2), "Main", true, int64(0)).
			AddRow(int64(2), tenantID.String(), "Booth", int64(4), int64(6), false, nil, "Terrace", true, int64(1)))

	got, err := repo.ListQualifying(context.Background(), tenantID, 4)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Table 1", got[0].Name)
	require.NotNil(t, got[0].CombineWithID)
	assert.Equal(t, int64(2), *got[0].CombineWithID)
	assert.Nil(t, got[1].CombineWithID)
	assert.Equal(t, 6, got[1].MaxSeats)
	assert.Equal(t, "Terrace", got[1].Zone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListQualifying_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM restaurant_tables`).WillReturnError(errors.New("boom"))

	_, err = NewRepository(db).ListQualifying(context.Background(), uuid.New(), 2)

	assert.ErrorIs(t, err, ErrExecQuery)
}
