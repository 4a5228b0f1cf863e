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

type BookingActivityRepository interface {
	FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*entity.Activity, error)
	CreateManyTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID, activityIDs []uuid.UUID) error
	DeleteByBookingTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) error
}

type bookingActivityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingActivityRepository(db database.PgxIface, log *zap.Logger) BookingActivityRepository {
	return &bookingActivityRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_activity")),
	}
}

func (r *bookingActivityRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*entity.Activity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.title, a.description, a.price::float8, a.available
		FROM booking_activities ba
		JOIN activities a ON a.id = ba.activity_id
		WHERE ba.booking_id = $1
		ORDER BY a.title
	`, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking activities", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("find activities of booking %s: %w", bookingID, err)
	}
	defer rows.Close()

	list := []*entity.Activity{}
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Price, &a.Available); err != nil {
			return nil, fmt.Errorf("scan booking activity row: %w", err)
		}
		list = append(list, &a)
	}

	return list, rows.Err()
}

func (r *bookingActivityRepository) CreateManyTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID, activityIDs []uuid.UUID) error {
	for _, activityID := range activityIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO booking_activities (booking_id, activity_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			bookingID, activityID,
		)
		if err != nil {
			r.log.Error("Failed to attach activity to booking",
				zap.Error(err),
				zap.String("booking_id", bookingID.String()),
				zap.String("activity_id", activityID.String()),
			)
			return fmt.Errorf("attach activity %s to booking %s: %w", activityID, bookingID, err)
		}
	}
	return nil
}

func (r *bookingActivityRepository) DeleteByBookingTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM booking_activities WHERE booking_id = $1`, bookingID); err != nil {
		r.log.Error("Failed to delete booking activities", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return fmt.Errorf("delete activities of booking %s: %w", bookingID, err)
	}
	return nil
}
