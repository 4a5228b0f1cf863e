package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/internal/data/repository"
	"resort-admin/internal/dto/request"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)

func newBookingServiceWithMock(t *testing.T) (*bookingService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &bookingService{
		repo: repository.NewRepository(mock, zap.NewNop()),
		db:   mock,
		log:  zap.NewNop(),
		now:  func() time.Time { return fixedNow },
	}, mock
}

// anyArgs matches n arguments of any value.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func expectAccommodation(mock pgxmock.PgxPoolIface, id uuid.UUID, rooms int, available bool) {
	mock.ExpectQuery(`FROM accommodations WHERE id = \$1$`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "title", "description", "price", "available_rooms", "amenities",
			"image_url", "available", "created_at", "updated_at",
		}).AddRow(
			id, "Garden Villa", "Villa with a private garden", 4500.0, rooms,
			[]byte(`{"type":"villa","capacity":4}`), nil, available, fixedNow, fixedNow,
		))
}

func expectCapacityCheck(mock pgxmock.PgxPoolIface, id uuid.UUID, inventory, booked int) {
	mock.ExpectQuery(`SELECT available_rooms FROM accommodations WHERE id = \$1 FOR UPDATE`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"available_rooms"}).AddRow(inventory))
	mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM booking_rooms br`).
		WithArgs(anyArgs(4)...).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(booked))
}

func newCreateRequest(accID uuid.UUID, rooms int) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		GuestName:       "Asha Menon",
		GuestEmail:      "asha@example.com",
		AccommodationID: accID.String(),
		CheckIn:         "2024-01-10",
		CheckOut:        "2024-01-15",
		Adults:          2,
		Rooms:           rooms,
		TotalAmount:     1000,
	}
}

func TestBookingService_CreateBookingCommitsAllRows(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	accID := uuid.New()

	req := newCreateRequest(accID, 2)
	req.Payment = &request.InitialPaymentRequest{Amount: 1000, PaymentMethod: "card"}

	expectAccommodation(mock, accID, 3, true)
	mock.ExpectBegin()
	expectCapacityCheck(mock, accID, 3, 1)
	mock.ExpectExec(`INSERT INTO bookings`).WithArgs(anyArgs(19)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO booking_rooms`).WithArgs(anyArgs(6)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO booking_rooms`).WithArgs(anyArgs(6)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO payments`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), 1000.0, "card", pgxmock.AnyArg(),
			entity.PaymentStatusSuccess, pgxmock.AnyArg(), fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`UPDATE bookings SET payment_status`).WithArgs(anyArgs(3)...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	resp, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	assert.Equal(t, entity.PaymentPaid, resp.PaymentStatus)
	assert.Equal(t, entity.PaymentStatusSuccess, resp.StoredPaymentStatus)
	assert.Equal(t, 5, resp.Nights)
	assert.Equal(t, 2, resp.Rooms)
	require.NotNil(t, resp.AccommodationName)
	assert.Equal(t, "Garden Villa", *resp.AccommodationName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_CreateBookingPartialInitialPaymentStaysPending(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	accID := uuid.New()

	req := newCreateRequest(accID, 1)
	req.Payment = &request.InitialPaymentRequest{Amount: 400, PaymentMethod: "upi"}

	expectAccommodation(mock, accID, 5, true)
	mock.ExpectBegin()
	expectCapacityCheck(mock, accID, 5, 0)
	mock.ExpectExec(`INSERT INTO bookings`).WithArgs(anyArgs(19)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO booking_rooms`).WithArgs(anyArgs(6)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO payments`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), 400.0, "upi", pgxmock.AnyArg(),
			entity.PaymentStatusPending, pgxmock.AnyArg(), fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`UPDATE bookings SET payment_status`).WithArgs(anyArgs(3)...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	resp, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentUnpaid, resp.PaymentStatus)
	assert.Equal(t, entity.PaymentStatusPending, resp.StoredPaymentStatus)
	assert.Zero(t, resp.PaidAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_CreateBookingRollsBackWhenRoomInsertFails(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	accID := uuid.New()

	expectAccommodation(mock, accID, 3, true)
	mock.ExpectBegin()
	expectCapacityCheck(mock, accID, 3, 0)
	mock.ExpectExec(`INSERT INTO bookings`).WithArgs(anyArgs(19)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO booking_rooms`).WithArgs(anyArgs(6)...).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	resp, err := svc.CreateBooking(context.Background(), newCreateRequest(accID, 1))
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrTransaction)
	assert.NotContains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_CreateBookingRejectsWhenFullyBooked(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	accID := uuid.New()

	// three one-room bookings already hold the whole inventory
	expectAccommodation(mock, accID, 3, true)
	mock.ExpectBegin()
	expectCapacityCheck(mock, accID, 3, 3)
	mock.ExpectRollback()

	_, err := svc.CreateBooking(context.Background(), newCreateRequest(accID, 1))
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "only 0 room(s) available for the selected dates", Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_CreateBookingRejectsUnavailableAccommodation(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	accID := uuid.New()

	expectAccommodation(mock, accID, 3, false)

	_, err := svc.CreateBooking(context.Background(), newCreateRequest(accID, 1))
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_CreateBookingValidatesBeforeTouchingTheDatabase(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	accID := uuid.New()

	tests := []struct {
		name   string
		mutate func(r *request.CreateBookingRequest)
	}{
		{"check-out before check-in", func(r *request.CreateBookingRequest) { r.CheckOut = "2024-01-09" }},
		{"same day stay", func(r *request.CreateBookingRequest) { r.CheckOut = r.CheckIn }},
		{"missing guest name", func(r *request.CreateBookingRequest) { r.GuestName = "" }},
		{"bad email", func(r *request.CreateBookingRequest) { r.GuestEmail = "not-an-email" }},
		{"no adults", func(r *request.CreateBookingRequest) { r.Adults = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newCreateRequest(accID, 1)
			tt.mutate(req)

			_, err := svc.CreateBooking(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_CreateBookingUnknownAccommodation(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	accID := uuid.New()

	mock.ExpectQuery(`FROM accommodations WHERE id = \$1$`).
		WithArgs(accID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	_, err := svc.CreateBooking(context.Background(), newCreateRequest(accID, 1))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_CheckAvailability(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	accID := uuid.New()

	expectAccommodation(mock, accID, 4, true)
	mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM booking_rooms br`).
		WithArgs(anyArgs(4)...).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	resp, err := svc.CheckAvailability(context.Background(), &request.CheckAvailabilityRequest{
		AccommodationID: accID.String(),
		CheckIn:         "2024-01-10",
		CheckOut:        "2024-01-15",
		Rooms:           2,
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, 1, resp.AvailableRooms)
	assert.Equal(t, 3, resp.BookedRooms)
	assert.Equal(t, 4, resp.TotalRooms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func bookingRow(id, accID uuid.UUID, total float64) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "reference", "guest_name", "guest_email", "guest_phone", "accommodation_id",
		"meal_plan_id", "check_in_date", "check_out_date", "adults", "children", "rooms",
		"total_amount", "coupon_code", "special_requests", "status", "payment_status",
		"created_at", "updated_at",
	}).AddRow(
		id, "BK-20240105-AB12", "Asha Menon", "asha@example.com", nil, &accID,
		nil, fixedNow.AddDate(0, 0, 5), fixedNow.AddDate(0, 0, 10), 2, 0, 1,
		total, nil, nil, "confirmed", "pending",
		fixedNow, fixedNow,
	)
}

func TestBookingService_AddPaymentDerivesStatus(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	bookingID := uuid.New()
	accID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM bookings b WHERE b.id = \$1 FOR UPDATE`).
		WithArgs(bookingID).
		WillReturnRows(bookingRow(bookingID, accID, 1000))
	mock.ExpectExec(`INSERT INTO payments`).WithArgs(anyArgs(8)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(`COALESCE\(SUM\(amount\), 0\)`).
		WithArgs(bookingID).
		WillReturnRows(pgxmock.NewRows([]string{"paid"}).AddRow(400.0))
	mock.ExpectExec(`UPDATE bookings SET payment_status`).
		WithArgs(bookingID, entity.PaymentStatusPending, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	resp, err := svc.AddPayment(context.Background(), bookingID.String(), &request.AddPaymentRequest{
		Amount:        400,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentPartial, resp.PaymentStatus)
	assert.Equal(t, 400.0, resp.PaidAmount)
	assert.Equal(t, 1000.0, resp.TotalAmount)
	assert.Equal(t, entity.PaymentStatusSuccess, resp.Payment.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_DeleteBookingRemovesDependentsFirst(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	bookingID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(bookingID).
		WillReturnRows(bookingRow(bookingID, uuid.New(), 1000))
	mock.ExpectExec(`DELETE FROM payments`).WithArgs(bookingID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM booking_rooms`).WithArgs(bookingID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM booking_activities`).WithArgs(bookingID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(`DELETE FROM bookings`).WithArgs(bookingID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	require.NoError(t, svc.DeleteBooking(context.Background(), bookingID.String()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_DeleteMissingBooking(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	bookingID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(bookingID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := svc.DeleteBooking(context.Background(), bookingID.String())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.ErrorIs(t, svc.DeleteBooking(context.Background(), "not-a-uuid"), ErrValidation)
}

func bookingSummaryRow(id, accID uuid.UUID, rooms int, total, paid float64) *pgxmock.Rows {
	title := "Garden Villa"
	return pgxmock.NewRows([]string{
		"id", "reference", "guest_name", "guest_email", "guest_phone", "accommodation_id",
		"meal_plan_id", "check_in_date", "check_out_date", "adults", "children", "rooms",
		"total_amount", "coupon_code", "special_requests", "status", "payment_status",
		"created_at", "updated_at", "accommodation_title", "meal_plan_title", "paid",
	}).AddRow(
		id, "BK-20240105-AB12", "Asha Menon", "asha@example.com", nil, &accID,
		nil, fixedNow.AddDate(0, 0, 5), fixedNow.AddDate(0, 0, 7), 2, 0, rooms,
		total, nil, nil, "confirmed", "pending",
		fixedNow, fixedNow, &title, nil, paid,
	)
}

func expectLockedBooking(mock pgxmock.PgxPoolIface, bookingID, accID uuid.UUID, total float64) {
	mock.ExpectQuery(`FROM bookings b WHERE b.id = \$1 FOR UPDATE`).
		WithArgs(bookingID).
		WillReturnRows(bookingRow(bookingID, accID, total))
}

func TestBookingService_UpdateBookingRewritesRoomsAtomically(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	bookingID, accID := uuid.New(), uuid.New()
	checkIn := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	expectLockedBooking(mock, bookingID, accID, 1000)
	mock.ExpectQuery(`SELECT available_rooms FROM accommodations WHERE id = \$1 FOR UPDATE`).
		WithArgs(accID).
		WillReturnRows(pgxmock.NewRows([]string{"available_rooms"}).AddRow(3))
	// the booking's own rows are excluded from the overlap count
	mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM booking_rooms br`).
		WithArgs(accID, checkIn, checkOut, &bookingID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(`UPDATE bookings\s+SET guest_name`).WithArgs(anyArgs(15)...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`DELETE FROM booking_rooms`).WithArgs(bookingID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`INSERT INTO booking_rooms`).
		WithArgs(pgxmock.AnyArg(), bookingID, accID, checkIn, checkOut, fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO booking_rooms`).
		WithArgs(pgxmock.AnyArg(), bookingID, accID, checkIn, checkOut, fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`LEFT JOIN accommodations`).
		WithArgs(bookingID).
		WillReturnRows(bookingSummaryRow(bookingID, accID, 2, 1000, 0))

	checkOutRaw, rooms := "2024-01-12", 2
	resp, err := svc.UpdateBooking(context.Background(), bookingID.String(), &request.UpdateBookingRequest{
		CheckOut: &checkOutRaw,
		Rooms:    &rooms,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Rooms)
	assert.Equal(t, 2, resp.Nights)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_UpdateBookingConflictsWithFullInventory(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	bookingID, accID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectLockedBooking(mock, bookingID, accID, 1000)
	expectCapacityCheck(mock, accID, 2, 2)
	mock.ExpectRollback()

	checkIn := "2024-01-08"
	_, err := svc.UpdateBooking(context.Background(), bookingID.String(), &request.UpdateBookingRequest{CheckIn: &checkIn})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "only 0 room(s) available for the selected dates", Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_UpdateBookingRollsBackWhenRoomInsertFails(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	bookingID, accID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectLockedBooking(mock, bookingID, accID, 1000)
	expectCapacityCheck(mock, accID, 3, 0)
	mock.ExpectExec(`UPDATE bookings\s+SET guest_name`).WithArgs(anyArgs(15)...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`DELETE FROM booking_rooms`).WithArgs(bookingID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`INSERT INTO booking_rooms`).WithArgs(anyArgs(6)...).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	name := "Asha M."
	_, err := svc.UpdateBooking(context.Background(), bookingID.String(), &request.UpdateBookingRequest{GuestName: &name})
	assert.ErrorIs(t, err, ErrTransaction)
	assert.NotContains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_UpdateBookingRejectsInvertedInterval(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	bookingID, accID := uuid.New(), uuid.New()

	// stored check-in is 2024-01-10
	mock.ExpectBegin()
	expectLockedBooking(mock, bookingID, accID, 1000)
	mock.ExpectRollback()

	checkOut := "2024-01-08"
	_, err := svc.UpdateBooking(context.Background(), bookingID.String(), &request.UpdateBookingRequest{CheckOut: &checkOut})
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_UpdateBookingBoundsRoomsOfReleasedBooking(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	bookingID, accID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectLockedBooking(mock, bookingID, accID, 1000)
	mock.ExpectQuery(`SELECT available_rooms FROM accommodations WHERE id = \$1 FOR UPDATE`).
		WithArgs(accID).
		WillReturnRows(pgxmock.NewRows([]string{"available_rooms"}).AddRow(3))
	mock.ExpectRollback()

	cancelled, rooms := "cancelled", 50
	_, err := svc.UpdateBooking(context.Background(), bookingID.String(), &request.UpdateBookingRequest{
		Status: &cancelled,
		Rooms:  &rooms,
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "accommodation has only 3 room(s)", Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())

	huge := 2_000_000_000
	_, err = svc.UpdateBooking(context.Background(), bookingID.String(), &request.UpdateBookingRequest{
		Status: &cancelled,
		Rooms:  &huge,
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "rooms")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_UpdateBookingRefreshesPaymentStatus(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)
	bookingID, accID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectLockedBooking(mock, bookingID, accID, 1000)
	expectCapacityCheck(mock, accID, 3, 0)
	mock.ExpectExec(`UPDATE bookings\s+SET guest_name`).WithArgs(anyArgs(15)...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(`COALESCE\(SUM\(amount\), 0\)`).
		WithArgs(bookingID).
		WillReturnRows(pgxmock.NewRows([]string{"paid"}).AddRow(400.0))
	mock.ExpectExec(`UPDATE bookings SET payment_status`).
		WithArgs(bookingID, entity.PaymentStatusSuccess, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`DELETE FROM booking_rooms`).WithArgs(bookingID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`INSERT INTO booking_rooms`).WithArgs(anyArgs(6)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`LEFT JOIN accommodations`).
		WithArgs(bookingID).
		WillReturnRows(bookingSummaryRow(bookingID, accID, 1, 400, 400))

	total := 400.0
	resp, err := svc.UpdateBooking(context.Background(), bookingID.String(), &request.UpdateBookingRequest{TotalAmount: &total})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentPaid, resp.PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_UpdateBookingRejectsEmptyPatch(t *testing.T) {
	svc, mock := newBookingServiceWithMock(t)

	_, err := svc.UpdateBooking(context.Background(), uuid.NewString(), &request.UpdateBookingRequest{})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "no fields to update", Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingFilterFrom(t *testing.T) {
	status := "confirmed"
	paid := "Partial"
	start := "2024-01-01"

	filter, err := bookingFilterFrom(nil, &status, &paid, &start, nil)
	require.NoError(t, err)
	require.NotNil(t, filter.Status)
	assert.Equal(t, entity.BookingStatusConfirmed, *filter.Status)
	assert.Equal(t, entity.PaymentPartial, *filter.PaymentStatus)
	assert.Equal(t, "2024-01-01", filter.StartDate.Format(time.DateOnly))
	assert.Nil(t, filter.EndDate)

	bad := "archived"
	_, err = bookingFilterFrom(nil, &bad, nil, nil, nil)
	assert.ErrorIs(t, err, ErrValidation)
}
