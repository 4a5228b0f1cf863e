package repository

import (
	"context"
	"fmt"
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BlockedDateRepository interface {
	FindAll(ctx context.Context) ([]*entity.BlockedDate, error)
	// CreateTx inserts the date unless it is already blocked; the bool reports
	// whether a row was written.
	CreateTx(ctx context.Context, tx pgx.Tx, blocked *entity.BlockedDate) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByDate(ctx context.Context, date time.Time) error
	UpdateReason(ctx context.Context, id uuid.UUID, reason *string) error
}

type blockedDateRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlockedDateRepository(db database.PgxIface, log *zap.Logger) BlockedDateRepository {
	return &blockedDateRepository{
		db:  db,
		log: log.With(zap.String("repository", "blocked_date")),
	}
}

func (r *blockedDateRepository) FindAll(ctx context.Context) ([]*entity.BlockedDate, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, blocked_date, reason, created_at
		FROM blocked_dates
		ORDER BY blocked_date ASC
	`)
	if err != nil {
		r.log.Error("Failed to find blocked dates", zap.Error(err))
		return nil, fmt.Errorf("find blocked dates: %w", err)
	}
	defer rows.Close()

	dates := []*entity.BlockedDate{}
	for rows.Next() {
		var d entity.BlockedDate
		if err := rows.Scan(&d.ID, &d.Date, &d.Reason, &d.CreatedAt); err != nil {
			r.log.Error("Failed to scan blocked date row", zap.Error(err))
			return nil, fmt.Errorf("scan blocked date row: %w", err)
		}
		dates = append(dates, &d)
	}

	return dates, rows.Err()
}

func (r *blockedDateRepository) CreateTx(ctx context.Context, tx pgx.Tx, d *entity.BlockedDate) (bool, error) {
	result, err := tx.Exec(ctx, `
		INSERT INTO blocked_dates (id, blocked_date, reason, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (blocked_date) DO NOTHING
	`, d.ID, d.Date, d.Reason, d.CreatedAt)
	if err != nil {
		r.log.Error("Failed to block date",
			zap.Error(err),
			zap.Time("date", d.Date),
		)
		return false, fmt.Errorf("block date %s: %w", d.Date.Format(time.DateOnly), err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *blockedDateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM blocked_dates WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete blocked date", zap.Error(err), zap.String("blocked_date_id", id.String()))
		return fmt.Errorf("delete blocked date %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blocked date %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *blockedDateRepository) DeleteByDate(ctx context.Context, date time.Time) error {
	result, err := r.db.Exec(ctx, `DELETE FROM blocked_dates WHERE blocked_date = $1`, date)
	if err != nil {
		r.log.Error("Failed to unblock date", zap.Error(err), zap.Time("date", date))
		return fmt.Errorf("delete blocked date %s: %w", date.Format(time.DateOnly), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blocked date %s: %w", date.Format(time.DateOnly), ErrNotFound)
	}

	return nil
}

func (r *blockedDateRepository) UpdateReason(ctx context.Context, id uuid.UUID, reason *string) error {
	result, err := r.db.Exec(ctx, `UPDATE blocked_dates SET reason = $2 WHERE id = $1`, id, reason)
	if err != nil {
		r.log.Error("Failed to update blocked date", zap.Error(err), zap.String("blocked_date_id", id.String()))
		return fmt.Errorf("update blocked date %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blocked date %s: %w", id, ErrNotFound)
	}

	return nil
}
