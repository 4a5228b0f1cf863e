package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resort-admin/internal/data/entity"
	"resort-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ServiceRepository interface {
	Create(ctx context.Context, svc *entity.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	FindAll(ctx context.Context, filter entity.ServiceFilter) ([]*entity.Service, error)
	Update(ctx context.Context, svc *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

const serviceColumns = `id, name, description, image, price::float8, duration, available, created_at, updated_at`

var serviceSortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"duration":   "duration",
	"created_at": "created_at",
}

// serviceOrderBy whitelists the sort column and direction.
func serviceOrderBy(sortBy, sortOrder string) string {
	col, ok := serviceSortColumns[sortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return " ORDER BY " + col + " " + dir
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var svc entity.Service
	err := row.Scan(
		&svc.ID,
		&svc.Name,
		&svc.Description,
		&svc.Image,
		&svc.Price,
		&svc.Duration,
		&svc.Available,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepository) Create(ctx context.Context, svc *entity.Service) error {
	query := `
		INSERT INTO services (id, name, description, image, price, duration, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		svc.ID,
		svc.Name,
		svc.Description,
		svc.Image,
		svc.Price,
		svc.Duration,
		svc.Available,
		svc.CreatedAt,
		svc.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create service", zap.Error(err), zap.String("name", svc.Name))
		return fmt.Errorf("create service %s: %w", svc.Name, err)
	}

	return nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, err := scanService(r.db.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by ID", zap.Error(err), zap.String("service_id", id.String()))
		return nil, fmt.Errorf("find service by ID %s: %w", id, err)
	}

	return svc, nil
}

func (r *serviceRepository) FindAll(ctx context.Context, filter entity.ServiceFilter) ([]*entity.Service, error) {
	w := &whereBuilder{}
	w.addSearch(filter.Search, "name", "description")
	w.addBucket(servicePriceBuckets, filter.PriceRange)
	if filter.Available != nil {
		w.add("available = ?", *filter.Available)
	}

	query := `SELECT ` + serviceColumns + ` FROM services` + w.sql() + serviceOrderBy(filter.SortBy, filter.SortOrder)

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		r.log.Error("Failed to find services", zap.Error(err))
		return nil, fmt.Errorf("find services: %w", err)
	}
	defer rows.Close()

	var list []*entity.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		list = append(list, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service rows: %w", err)
	}

	return list, nil
}

func (r *serviceRepository) Update(ctx context.Context, svc *entity.Service) error {
	query := `
		UPDATE services
		SET name = $2, description = $3, image = $4, price = $5, duration = $6,
		    available = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		svc.ID,
		svc.Name,
		svc.Description,
		svc.Image,
		svc.Price,
		svc.Duration,
		svc.Available,
		svc.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update service", zap.Error(err), zap.String("service_id", svc.ID.String()))
		return fmt.Errorf("update service %s: %w", svc.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("service %s: %w", svc.ID, ErrNotFound)
	}

	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete service", zap.Error(err), zap.String("service_id", id.String()))
		return fmt.Errorf("delete service %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("service %s: %w", id, ErrNotFound)
	}

	r.log.Info("Service deleted", zap.String("service_id", id.String()))
	return nil
}
