package repository

import (
	"context"
	"fmt"

	"resort-admin/internal/data/entity"
	"resort-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingRoomRepository manages room assignments and answers the
// overlap-counting question behind availability.
type BookingRoomRepository interface {
	CountOverlapping(ctx context.Context, accommodationID uuid.UUID, stay entity.Stay) (int, error)
	CountOverlappingTx(ctx context.Context, tx pgx.Tx, accommodationID uuid.UUID, stay entity.Stay, excludeBookingID *uuid.UUID) (int, error)
	CreateManyTx(ctx context.Context, tx pgx.Tx, rooms []*entity.RoomAssignment) error
	DeleteByBookingTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) error
}

type bookingRoomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRoomRepository(db database.PgxIface, log *zap.Logger) BookingRoomRepository {
	return &bookingRoomRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_room")),
	}
}

// Half-open overlap: existing.check_in < requested.check_out AND
// existing.check_out > requested.check_in. Cancelled and completed bookings
// release their rooms.
const overlapCountQuery = `
	SELECT COUNT(*)
	FROM booking_rooms br
	JOIN bookings b ON b.id = br.booking_id
	WHERE br.accommodation_id = $1
	  AND br.check_in_date < $3
	  AND br.check_out_date > $2
	  AND b.status NOT IN ('cancelled', 'completed')
	  AND ($4::uuid IS NULL OR br.booking_id <> $4::uuid)
`

func (r *bookingRoomRepository) countOverlapping(ctx context.Context, q database.Querier, accommodationID uuid.UUID, stay entity.Stay, exclude *uuid.UUID) (int, error) {
	var booked int
	err := q.QueryRow(ctx, overlapCountQuery, accommodationID, stay.CheckIn, stay.CheckOut, exclude).Scan(&booked)
	if err != nil {
		r.log.Error("Failed to count overlapping rooms",
			zap.Error(err),
			zap.String("accommodation_id", accommodationID.String()),
			zap.Time("check_in", stay.CheckIn),
			zap.Time("check_out", stay.CheckOut),
		)
		return 0, fmt.Errorf("count overlapping rooms for accommodation %s: %w", accommodationID, err)
	}
	return booked, nil
}

func (r *bookingRoomRepository) CountOverlapping(ctx context.Context, accommodationID uuid.UUID, stay entity.Stay) (int, error) {
	return r.countOverlapping(ctx, r.db, accommodationID, stay, nil)
}

func (r *bookingRoomRepository) CountOverlappingTx(ctx context.Context, tx pgx.Tx, accommodationID uuid.UUID, stay entity.Stay, excludeBookingID *uuid.UUID) (int, error) {
	return r.countOverlapping(ctx, tx, accommodationID, stay, excludeBookingID)
}

func (r *bookingRoomRepository) CreateManyTx(ctx context.Context, tx pgx.Tx, rooms []*entity.RoomAssignment) error {
	query := `
		INSERT INTO booking_rooms (id, booking_id, accommodation_id, check_in_date, check_out_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, room := range rooms {
		_, err := tx.Exec(ctx, query,
			room.ID,
			room.BookingID,
			room.AccommodationID,
			room.CheckIn,
			room.CheckOut,
			room.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create room assignment",
				zap.Error(err),
				zap.String("booking_id", room.BookingID.String()),
			)
			return fmt.Errorf("create room assignment for booking %s: %w", room.BookingID, err)
		}
	}

	return nil
}

func (r *bookingRoomRepository) DeleteByBookingTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM booking_rooms WHERE booking_id = $1`, bookingID); err != nil {
		r.log.Error("Failed to delete room assignments", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return fmt.Errorf("delete room assignments of booking %s: %w", bookingID, err)
	}
	return nil
}
