package dbmetrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableAvailability/pkg/metrics"
)

func TestOperationName(t *testing.T) {
	assert.Equal(t, "select_service_windows", operationName("SELECT id, name FROM service_windows WHERE tenant_id = $1"))
	assert.Equal(t, "select_reservations", operationName(`select * from "reservations"`))
	assert.Equal(t, "select", operationName("SELECT 1"))
	assert.Equal(t, "unknown", operationName("   "))
}

func TestDB_QueryContext_RecordsErrors(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	stop := make(chan struct{})
	defer close(stop)

	db := Wrap(sqlDB, m, "availability", time.Hour, stop)

	mock.ExpectQuery("SELECT id FROM restaurant_tables").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("SELECT id FROM restaurant_tables").
		WillReturnError(errors.New("connection reset"))

	rows, err := db.QueryContext(context.Background(), "SELECT id FROM restaurant_tables")
	require.NoError(t, err)
	require.NoError(t, rows.Close())

	_, err = db.QueryContext(context.Background(), "SELECT id FROM restaurant_tables")
	assert.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("select_restaurant_tables")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
