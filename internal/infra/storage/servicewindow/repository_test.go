package servicewindow

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var windowColumns = []string{
	"id", "tenant_id", "name", "day_of_week", "open_time", "close_time",
	"last_booking_time", "turn_time_minutes", "max_covers", "active",
}

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestListActiveByWeekday(t *testing.T) {
	repo, mock := newMock(t)
	tenantID := uuid.New()

	mock.ExpectQuery(`SELECT id, tenant_id, name, day_of_week, open_time, close_time, last_booking_time, turn_time_minutes, max_covers, active ` +
		`FROM service_windows WHERE tenant_id = \$1 AND day_of_week = \$2 AND active = \$3 ORDER BY open_time ASC, id ASC`).
		WithArgs(tenantID, 0, true).
		WillReturnRows(sqlmock.NewRows(windowColumns).
			AddRow(int64(1), tenantID.String(), "Lunch", int64(0), "12:00:00", "14:30:00", "14:00:00", int64(90), int64(20), true).
			AddRow(int64(2), tenantID.String(), "Dinner", int64(0), "18:00:00", "22:00:00", "21:00:00", int64(120), int64(50), true))

	got, err := repo.ListActiveByWeekday(context.Background(), tenantID, 0)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Lunch", got[0].Name)
	assert.Equal(t, "12:00", got[0].OpenTime.String())
	assert.Equal(t, "14:30", got[0].CloseTime.String())
	assert.Equal(t, "14:00", got[0].LastBookingTime.String())
	assert.Equal(t, 90, got[0].TurnTimeMinutes)
	assert.Equal(t, 20, got[0].MaxCovers)
	assert.Equal(t, "Dinner", got[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveByWeekday_BadTime(t *testing.T) {
	repo, mock := newMock(t)
	tenantID := uuid.New()

	mock.ExpectQuery(`FROM service_windows`).
		WillReturnRows(sqlmock.NewRows(windowColumns).
			AddRow(int64(1), tenantID.String(), "Lunch", int64(0), "noon", "14:30:00", "14:00:00", int64(90), int64(20), true))

	_, err := repo.ListActiveByWeekday(context.Background(), tenantID, 0)

	assert.ErrorIs(t, err, ErrScanRow)
}

func TestListActiveWeekdays(t *testing.T) {
	repo, mock := newMock(t)
	tenantID := uuid.New()

	mock.ExpectQuery(`SELECT DISTINCT day_of_week FROM service_windows WHERE tenant_id = \$1 AND active = \$2 ` +
		`AND day_of_week >= \$3 AND day_of_week <= \$4 AND open_time <= last_booking_time AND last_booking_time <= close_time ` +
		`AND turn_time_minutes >= \$5 AND max_covers >= \$6 ORDER BY day_of_week ASC`).
		WithArgs(tenantID, true, 0, 6, 15, 1).
		WillReturnRows(sqlmock.NewRows([]string{"day_of_week"}).AddRow(int64(0)).AddRow(int64(1)))

	got, err := repo.ListActiveWeekdays(context.Background(), tenantID)

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveWeekdays_QueryError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`FROM service_windows`).WillReturnError(errors.New("timeout"))

	_, err := repo.ListActiveWeekdays(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrExecQuery)
}
