package repository

import (
	"context"
	"errors"
	"fmt"

	"resort-admin/internal/data/entity"
	"resort-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AccommodationRepository interface {
	Create(ctx context.Context, acc *entity.Accommodation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Accommodation, error)
	FindAll(ctx context.Context, filter entity.AccommodationFilter, limit, offset int) ([]*entity.Accommodation, error)
	CountAll(ctx context.Context, filter entity.AccommodationFilter) (int64, error)
	Update(ctx context.Context, acc *entity.Accommodation) error
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	Stats(ctx context.Context) (*entity.AccommodationStats, error)

	// LockInventoryTx locks the accommodation row for the rest of tx and
	// returns its room inventory.
	LockInventoryTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (int, error)
	DeleteTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

type accommodationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAccommodationRepository(db database.PgxIface, log *zap.Logger) AccommodationRepository {
	return &accommodationRepository{
		db:  db,
		log: log.With(zap.String("repository", "accommodation")),
	}
}

const accommodationColumns = `id, title, description, price::float8, available_rooms, amenities, image_url, available, created_at, updated_at`

func scanAccommodation(row pgx.Row) (*entity.Accommodation, error) {
	var acc entity.Accommodation
	var amenities []byte
	err := row.Scan(
		&acc.ID,
		&acc.Title,
		&acc.Description,
		&acc.Price,
		&acc.AvailableRooms,
		&amenities,
		&acc.ImageURL,
		&acc.Available,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	acc.Amenities = entity.ParseAmenities(amenities)
	return &acc, nil
}

func (r *accommodationRepository) Create(ctx context.Context, acc *entity.Accommodation) error {
	query := `
		INSERT INTO accommodations (id, title, description, price, available_rooms, amenities,
		                            image_url, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		acc.ID,
		acc.Title,
		acc.Description,
		acc.Price,
		acc.AvailableRooms,
		acc.Amenities,
		acc.ImageURL,
		acc.Available,
		acc.CreatedAt,
		acc.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create accommodation",
			zap.Error(err),
			zap.String("title", acc.Title),
		)
		return fmt.Errorf("create accommodation %s: %w", acc.Title, err)
	}

	return nil
}

func (r *accommodationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Accommodation, error) {
	query := `SELECT ` + accommodationColumns + ` FROM accommodations WHERE id = $1`

	acc, err := scanAccommodation(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find accommodation by ID",
			zap.Error(err),
			zap.String("accommodation_id", id.String()),
		)
		return nil, fmt.Errorf("find accommodation by ID %s: %w", id, err)
	}

	return acc, nil
}

func (r *accommodationRepository) where(filter entity.AccommodationFilter) *whereBuilder {
	w := &whereBuilder{}
	w.addSearch(filter.Search, "title", "description")
	if filter.Type != nil && *filter.Type != "" {
		w.add("amenities->>'type' = ?", *filter.Type)
	}
	if filter.Available != nil {
		w.add("available = ?", *filter.Available)
	}
	return w
}

func (r *accommodationRepository) FindAll(ctx context.Context, filter entity.AccommodationFilter, limit, offset int) ([]*entity.Accommodation, error) {
	w := r.where(filter)
	suffix, args := w.page(limit, offset)
	query := `SELECT ` + accommodationColumns + ` FROM accommodations` + w.sql() + ` ORDER BY created_at DESC` + suffix

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all accommodations",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all accommodations limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var list []*entity.Accommodation
	for rows.Next() {
		acc, err := scanAccommodation(rows)
		if err != nil {
			r.log.Error("Failed to scan accommodation row", zap.Error(err))
			return nil, fmt.Errorf("scan accommodation row: %w", err)
		}
		list = append(list, acc)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate accommodation rows: %w", err)
	}

	return list, nil
}

func (r *accommodationRepository) CountAll(ctx context.Context, filter entity.AccommodationFilter) (int64, error) {
	w := r.where(filter)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM accommodations`+w.sql(), w.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count accommodations", zap.Error(err))
		return 0, fmt.Errorf("count accommodations: %w", err)
	}

	return total, nil
}

func (r *accommodationRepository) Update(ctx context.Context, acc *entity.Accommodation) error {
	query := `
		UPDATE accommodations
		SET title = $2, description = $3, price = $4, available_rooms = $5,
		    amenities = $6, image_url = $7, available = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		acc.ID,
		acc.Title,
		acc.Description,
		acc.Price,
		acc.AvailableRooms,
		acc.Amenities,
		acc.ImageURL,
		acc.Available,
		acc.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update accommodation",
			zap.Error(err),
			zap.String("accommodation_id", acc.ID.String()),
		)
		return fmt.Errorf("update accommodation %s: %w", acc.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("accommodation %s: %w", acc.ID, ErrNotFound)
	}

	return nil
}

func (r *accommodationRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	query := `UPDATE accommodations SET available = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, available)
	if err != nil {
		r.log.Error("Failed to set accommodation availability",
			zap.Error(err),
			zap.String("accommodation_id", id.String()),
			zap.Bool("available", available),
		)
		return fmt.Errorf("set availability of accommodation %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("accommodation %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *accommodationRepository) DeleteTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	result, err := tx.Exec(ctx, `DELETE FROM accommodations WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete accommodation",
			zap.Error(err),
			zap.String("accommodation_id", id.String()),
		)
		return fmt.Errorf("delete accommodation %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("accommodation %s: %w", id, ErrNotFound)
	}

	r.log.Info("Accommodation deleted", zap.String("accommodation_id", id.String()))
	return nil
}

func (r *accommodationRepository) LockInventoryTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (int, error) {
	var rooms int
	err := tx.QueryRow(ctx, `SELECT available_rooms FROM accommodations WHERE id = $1 FOR UPDATE`, id).Scan(&rooms)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("accommodation %s: %w", id, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to lock accommodation inventory",
			zap.Error(err),
			zap.String("accommodation_id", id.String()),
		)
		return 0, fmt.Errorf("lock accommodation %s: %w", id, err)
	}

	return rooms, nil
}

func (r *accommodationRepository) Stats(ctx context.Context) (*entity.AccommodationStats, error) {
	var stats entity.AccommodationStats

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE available)
		FROM accommodations
	`).Scan(&stats.Total, &stats.Available)
	if err != nil {
		r.log.Error("Failed to count accommodations for stats", zap.Error(err))
		return nil, fmt.Errorf("accommodation stats totals: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT accommodation_id)
		FROM bookings
		WHERE status = 'confirmed'
		  AND check_in_date <= CURRENT_DATE
		  AND check_out_date > CURRENT_DATE
	`).Scan(&stats.Occupied)
	if err != nil {
		r.log.Error("Failed to count occupied accommodations", zap.Error(err))
		return nil, fmt.Errorf("accommodation stats occupied: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_amount), 0)::float8
		FROM bookings
		WHERE status IN ('confirmed', 'completed')
		  AND date_trunc('month', created_at) = date_trunc('month', NOW())
	`).Scan(&stats.MonthlyRevenue)
	if err != nil {
		r.log.Error("Failed to sum monthly revenue", zap.Error(err))
		return nil, fmt.Errorf("accommodation stats revenue: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT amenities->>'type' AS type, COUNT(*)
		FROM accommodations
		WHERE COALESCE(amenities->>'type', '') <> ''
		GROUP BY amenities->>'type'
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		r.log.Error("Failed to group accommodation types", zap.Error(err))
		return nil, fmt.Errorf("accommodation stats types: %w", err)
	}
	defer rows.Close()

	stats.PopularTypes = []entity.TypeCount{}
	for rows.Next() {
		var tc entity.TypeCount
		if err := rows.Scan(&tc.Type, &tc.Count); err != nil {
			return nil, fmt.Errorf("scan accommodation type row: %w", err)
		}
		stats.PopularTypes = append(stats.PopularTypes, tc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accommodation type rows: %w", err)
	}

	return &stats, nil
}
