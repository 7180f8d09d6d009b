package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

type RepositoryTestSuite struct {
	suite.Suite
	mock     sqlmock.Sqlmock
	repo     *Repository
	tenantID uuid.UUID
	from     time.Time
	to       time.Time
}

func (s *RepositoryTestSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	require.NoError(s.T(), err)

	s.mock = mock
	s.repo = NewRepository(db)
	s.tenantID = uuid.New()
	s.from = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	s.to = s.from.AddDate(0, 0, 1)
}

func (s *RepositoryTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) TestListOccupying_Success() {
	start := s.from.Add(12*time.Hour + 30*time.Minute)

	s.mock.ExpectQuery(`SELECT id, tenant_id, start_time, end_time, party_size, status FROM reservations ` +
		`WHERE tenant_id = \$1 AND start_time >= \$2 AND start_time < \$3 AND status = ANY\(\$4\) ` +
		`ORDER BY start_time ASC, id ASC`).
		WithArgs(s.tenantID, s.from, s.to, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "start_time", "end_time", "party_size", "status"}).
			AddRow(int64(7), s.tenantID.String(), start, start.Add(90*time.Minute), int64(4), "confirmed").
			AddRow(int64(8), s.tenantID.String(), start.Add(time.Hour), start.Add(2*time.Hour), int64(2), "pending"))

	got, err := s.repo.ListOccupying(context.Background(), s.tenantID, s.from, s.to)

	require.NoError(s.T(), err)
	require.Len(s.T(), got, 2)
	assert.Equal(s.T(), int64(7), got[0].ID)
	assert.Equal(s.T(), s.tenantID, got[0].TenantID)
	assert.Equal(s.T(), start, got[0].StartTime)
	assert.Equal(s.T(), 4, got[0].PartySize)
	assert.Equal(s.T(), domain.StatusConfirmed, got[0].Status)
	assert.Equal(s.T(), domain.StatusPending, got[1].Status)
}

func (s *RepositoryTestSuite) TestListOccupying_Empty() {
	s.mock.ExpectQuery(`FROM reservations`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "start_time", "end_time", "party_size", "status"}))

	got, err := s.repo.ListOccupying(context.Background(), s.tenantID, s.from, s.to)

	require.NoError(s.T(), err)
	assert.NotNil(s.T(), got)
	assert.Empty(s.T(), got)
}

func (s *RepositoryTestSuite) TestListOccupying_QueryError() {
	s.mock.ExpectQuery(`FROM reservations`).WillReturnError(errors.New("connection refused"))

	_, err := s.repo.ListOccupying(context.Background(), s.tenantID, s.from, s.to)

	assert.ErrorIs(s.T(), err, ErrExecQuery)
}

func (s *RepositoryTestSuite) TestListOccupying_ScanError() {
	s.mock.ExpectQuery(`FROM reservations`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "start_time", "end_time", "party_size", "status"}).
			AddRow(int64(1), "not-a-uuid", s.from, s.to, int64(2), "confirmed"))

	_, err := s.repo.ListOccupying(context.Background(), s.tenantID, s.from, s.to)

	assert.ErrorIs(s.T(), err, ErrScanRow)
}
