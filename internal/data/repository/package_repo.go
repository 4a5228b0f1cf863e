package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resort-admin/internal/data/entity"
	"resort-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)
	FindAll(ctx context.Context, filter entity.PackageFilter) ([]*entity.Package, error)
	Update(ctx context.Context, pkg *entity.Package) error
	Delete(ctx context.Context, id uuid.UUID) error
	Toggle(ctx context.Context, id uuid.UUID) (bool, error)
	Stats(ctx context.Context) (*entity.PackageStats, error)
}

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

const packageColumns = `id, name, description, price::float8, duration, max_guests, image_url, includes, active, created_at, updated_at`

func scanPackage(row pgx.Row) (*entity.Package, error) {
	var pkg entity.Package
	var includes []byte
	err := row.Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Description,
		&pkg.Price,
		&pkg.Duration,
		&pkg.MaxGuests,
		&pkg.ImageURL,
		&includes,
		&pkg.Active,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	pkg.Includes = []string{}
	if len(includes) > 0 {
		// a malformed list is served as empty rather than failing the read
		_ = json.Unmarshal(includes, &pkg.Includes)
	}
	return &pkg, nil
}

func includesJSON(includes []string) []byte {
	if includes == nil {
		includes = []string{}
	}
	b, _ := json.Marshal(includes)
	return b
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	query := `
		INSERT INTO packages (id, name, description, price, duration, max_guests, image_url,
		                      includes, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.Description,
		pkg.Price,
		pkg.Duration,
		pkg.MaxGuests,
		pkg.ImageURL,
		includesJSON(pkg.Includes),
		pkg.Active,
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create package", zap.Error(err), zap.String("name", pkg.Name))
		return fmt.Errorf("create package %s: %w", pkg.Name, err)
	}

	return nil
}

func (r *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	pkg, err := scanPackage(r.db.QueryRow(ctx, `SELECT `+packageColumns+` FROM packages WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID", zap.Error(err), zap.String("package_id", id.String()))
		return nil, fmt.Errorf("find package by ID %s: %w", id, err)
	}

	return pkg, nil
}

func (r *packageRepository) FindAll(ctx context.Context, filter entity.PackageFilter) ([]*entity.Package, error) {
	w := &whereBuilder{}
	w.addSearch(filter.Search, "name", "description")
	w.addBucket(packagePriceBuckets, filter.PriceRange)
	w.addBucket(packageDurationBuckets, filter.Duration)
	w.addBucket(packageGuestBuckets, filter.Guests)
	if filter.Active != nil {
		w.add("active = ?", *filter.Active)
	}

	query := `SELECT ` + packageColumns + ` FROM packages` + w.sql() + ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		r.log.Error("Failed to find packages", zap.Error(err))
		return nil, fmt.Errorf("find packages: %w", err)
	}
	defer rows.Close()

	var list []*entity.Package
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			r.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		list = append(list, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate package rows: %w", err)
	}

	return list, nil
}

func (r *packageRepository) Update(ctx context.Context, pkg *entity.Package) error {
	query := `
		UPDATE packages
		SET name = $2, description = $3, price = $4, duration = $5, max_guests = $6,
		    image_url = $7, includes = $8, active = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.Description,
		pkg.Price,
		pkg.Duration,
		pkg.MaxGuests,
		pkg.ImageURL,
		includesJSON(pkg.Includes),
		pkg.Active,
		pkg.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update package", zap.Error(err), zap.String("package_id", pkg.ID.String()))
		return fmt.Errorf("update package %s: %w", pkg.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("package %s: %w", pkg.ID, ErrNotFound)
	}

	return nil
}

func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete package", zap.Error(err), zap.String("package_id", id.String()))
		return fmt.Errorf("delete package %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("package %s: %w", id, ErrNotFound)
	}

	r.log.Info("Package deleted", zap.String("package_id", id.String()))
	return nil
}

// Toggle flips the active flag and returns the new value.
func (r *packageRepository) Toggle(ctx context.Context, id uuid.UUID) (bool, error) {
	var active bool
	err := r.db.QueryRow(ctx,
		`UPDATE packages SET active = NOT active, updated_at = NOW() WHERE id = $1 RETURNING active`, id,
	).Scan(&active)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("package %s: %w", id, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to toggle package", zap.Error(err), zap.String("package_id", id.String()))
		return false, fmt.Errorf("toggle package %s: %w", id, err)
	}

	return active, nil
}

func (r *packageRepository) Stats(ctx context.Context) (*entity.PackageStats, error) {
	var s entity.PackageStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE active),
		       COUNT(*) FILTER (WHERE NOT active),
		       COALESCE(AVG(price), 0)::float8,
		       COALESCE(MIN(price), 0)::float8,
		       COALESCE(MAX(price), 0)::float8
		FROM packages
	`).Scan(&s.Total, &s.Active, &s.Inactive, &s.AvgPrice, &s.MinPrice, &s.MaxPrice)
	if err != nil {
		r.log.Error("Failed to compute package stats", zap.Error(err))
		return nil, fmt.Errorf("package stats: %w", err)
	}

	return &s, nil
}
