package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort-admin/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testStay(t *testing.T, in, out string) entity.Stay {
	t.Helper()
	checkIn, err := time.Parse(time.DateOnly, in)
	require.NoError(t, err)
	checkOut, err := time.Parse(time.DateOnly, out)
	require.NoError(t, err)
	stay, err := entity.NewStay(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

// anyArgs matches n arguments of any value.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestBookingRoomRepository_CountOverlapping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBookingRoomRepository(mock, zap.NewNop())
	accID := uuid.New()
	stay := testStay(t, "2024-01-12", "2024-01-20")

	mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM booking_rooms br`).
		WithArgs(accID, stay.CheckIn, stay.CheckOut, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	booked, err := repo.CountOverlapping(context.Background(), accID, stay)
	require.NoError(t, err)
	assert.Equal(t, 3, booked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRoomRepository_CountOverlappingTxExcludesBooking(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBookingRoomRepository(mock, zap.NewNop())
	accID := uuid.New()
	bookingID := uuid.New()
	stay := testStay(t, "2024-01-10", "2024-01-15")

	mock.ExpectBegin()
	mock.ExpectQuery(`br.booking_id <> \$4::uuid`).
		WithArgs(accID, stay.CheckIn, stay.CheckOut, &bookingID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	booked, err := repo.CountOverlappingTx(context.Background(), tx, accID, stay, &bookingID)
	require.NoError(t, err)
	assert.Equal(t, 0, booked)

	require.NoError(t, tx.Rollback(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRoomRepository_CountOverlappingError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBookingRoomRepository(mock, zap.NewNop())
	boom := errors.New("connection reset")

	mock.ExpectQuery(`FROM booking_rooms`).
		WithArgs(anyArgs(4)...).
		WillReturnError(boom)

	_, err = repo.CountOverlapping(context.Background(), uuid.New(), testStay(t, "2024-01-01", "2024-01-02"))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestBookingRoomRepository_CreateManyTxInsertsOneRowPerRoom(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBookingRoomRepository(mock, zap.NewNop())
	bookingID, accID := uuid.New(), uuid.New()
	rooms := entity.NewRoomAssignments(bookingID, accID, testStay(t, "2024-01-10", "2024-01-15"), 2, time.Now())

	mock.ExpectBegin()
	for _, room := range rooms {
		mock.ExpectExec(`INSERT INTO booking_rooms`).
			WithArgs(room.ID, bookingID, accID, room.CheckIn, room.CheckOut, room.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	mock.ExpectCommit()

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.CreateManyTx(context.Background(), tx, rooms))
	require.NoError(t, tx.Commit(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
