package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort-admin/internal/data/repository"
	"resort-admin/internal/dto/request"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBlockedDateServiceWithMock(t *testing.T) (*blockedDateService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &blockedDateService{
		repo: repository.NewRepository(mock, zap.NewNop()),
		db:   mock,
		log:  zap.NewNop(),
		now:  func() time.Time { return fixedNow },
	}, mock
}

func TestBlockedDateService_BlockDatesReportsDuplicates(t *testing.T) {
	svc, mock := newBlockedDateServiceWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO blocked_dates`).
		WithArgs(pgxmock.AnyArg(), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO blocked_dates`).
		WithArgs(pgxmock.AnyArg(), time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectCommit()

	resp, err := svc.BlockDates(context.Background(), &request.BlockDatesRequest{
		Dates: []string{"2024-02-01", "2024-02-02", "2024-02-01"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02-01"}, resp.Inserted)
	assert.Equal(t, []string{"2024-02-02"}, resp.Duplicates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlockedDateService_BlockDatesRollsBack(t *testing.T) {
	svc, mock := newBlockedDateServiceWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO blocked_dates`).
		WithArgs(anyArgs(4)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO blocked_dates`).
		WithArgs(anyArgs(4)...).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := svc.BlockDates(context.Background(), &request.BlockDatesRequest{
		Dates: []string{"2024-02-01", "2024-02-02"},
	})
	assert.ErrorIs(t, err, ErrTransaction)
	assert.NotContains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlockedDateService_BlockDatesValidatesFirst(t *testing.T) {
	svc, mock := newBlockedDateServiceWithMock(t)

	_, err := svc.BlockDates(context.Background(), &request.BlockDatesRequest{Dates: []string{"01/02/2024"}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.BlockDates(context.Background(), &request.BlockDatesRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlockedDateService_UnblockMissingDate(t *testing.T) {
	svc, mock := newBlockedDateServiceWithMock(t)

	mock.ExpectExec(`DELETE FROM blocked_dates WHERE blocked_date = \$1`).
		WithArgs(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := svc.UnblockDate(context.Background(), "2024-03-09")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.UnblockDate(context.Background(), "March 9"), ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}
