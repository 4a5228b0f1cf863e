package repository

import (
	"context"
	"fmt"
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/pkg/database"

	"go.uber.org/zap"
)

// DashboardRepository runs the read-only rollups behind the admin dashboard.
type DashboardRepository interface {
	Counts(ctx context.Context, now time.Time) (*entity.DashboardCounts, error)
	QuickStats(ctx context.Context, today time.Time) (*entity.QuickStats, error)
	RevenueByDay(ctx context.Context, from time.Time) ([]entity.DailyRevenue, error)
}

type dashboardRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDashboardRepository(db database.PgxIface, log *zap.Logger) DashboardRepository {
	return &dashboardRepository{
		db:  db,
		log: log.With(zap.String("repository", "dashboard")),
	}
}

// Counts compares the month ending at now with the month before it.
func (r *dashboardRepository) Counts(ctx context.Context, now time.Time) (*entity.DashboardCounts, error) {
	oneMonthAgo := now.AddDate(0, -1, 0)
	twoMonthsAgo := now.AddDate(0, -2, 0)
	today := entity.DateOnly(now)

	var c entity.DashboardCounts
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE created_at >= $1),
		       COUNT(*) FILTER (WHERE created_at >= $2 AND created_at < $1),
		       COALESCE(SUM(total_amount) FILTER (WHERE status IN ('confirmed', 'completed')), 0)::float8,
		       COALESCE(SUM(total_amount) FILTER (WHERE status IN ('confirmed', 'completed') AND created_at >= $1), 0)::float8,
		       COALESCE(SUM(total_amount) FILTER (WHERE status IN ('confirmed', 'completed') AND created_at >= $2 AND created_at < $1), 0)::float8,
		       COALESCE(SUM(rooms) FILTER (WHERE status = 'confirmed' AND check_in_date <= $3 AND check_out_date > $3), 0)::bigint
		FROM bookings
	`, oneMonthAgo, twoMonthsAgo, today).Scan(
		&c.TotalBookings,
		&c.CurrentBookings,
		&c.PreviousBookings,
		&c.TotalRevenue,
		&c.CurrentRevenue,
		&c.PreviousRevenue,
		&c.OccupiedRooms,
	)
	if err != nil {
		r.log.Error("Failed to compute booking counts", zap.Error(err))
		return nil, fmt.Errorf("dashboard booking counts: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(available_rooms), 0)::bigint
		FROM accommodations
		WHERE available = TRUE
	`).Scan(&c.TotalRooms)
	if err != nil {
		r.log.Error("Failed to compute room inventory", zap.Error(err))
		return nil, fmt.Errorf("dashboard room inventory: %w", err)
	}

	return &c, nil
}

func (r *dashboardRepository) QuickStats(ctx context.Context, today time.Time) (*entity.QuickStats, error) {
	day := entity.DateOnly(today)

	var s entity.QuickStats
	err := r.db.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM accommodations WHERE available = TRUE),
		       (SELECT COUNT(*) FROM gallery_images WHERE active = TRUE),
		       (SELECT COUNT(*) FROM services WHERE available = TRUE),
		       (SELECT COUNT(*) FROM bookings WHERE created_at >= $1 AND created_at < $2)
	`, day, day.AddDate(0, 0, 1)).Scan(&s.Accommodations, &s.Gallery, &s.Services, &s.TodayBookings)
	if err != nil {
		r.log.Error("Failed to compute quick stats", zap.Error(err))
		return nil, fmt.Errorf("dashboard quick stats: %w", err)
	}

	return &s, nil
}

// RevenueByDay returns only days that had revenue; gaps are filled by the caller.
func (r *dashboardRepository) RevenueByDay(ctx context.Context, from time.Time) ([]entity.DailyRevenue, error) {
	rows, err := r.db.Query(ctx, `
		SELECT created_at::date AS day, COALESCE(SUM(total_amount), 0)::float8
		FROM bookings
		WHERE created_at >= $1 AND status IN ('confirmed', 'completed')
		GROUP BY day
		ORDER BY day
	`, entity.DateOnly(from))
	if err != nil {
		r.log.Error("Failed to compute revenue trend", zap.Error(err))
		return nil, fmt.Errorf("dashboard revenue trend: %w", err)
	}
	defer rows.Close()

	var out []entity.DailyRevenue
	for rows.Next() {
		var d entity.DailyRevenue
		if err := rows.Scan(&d.Date, &d.Revenue); err != nil {
			return nil, fmt.Errorf("scan revenue row: %w", err)
		}
		out = append(out, d)
	}

	return out, rows.Err()
}
