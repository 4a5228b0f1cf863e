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

type GalleryRepository interface {
	Create(ctx context.Context, image *entity.GalleryImage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GalleryImage, error)
	FindAll(ctx context.Context, filter entity.GalleryFilter, limit, offset int) ([]*entity.GalleryImage, error)
	CountAll(ctx context.Context, filter entity.GalleryFilter) (int64, error)
	Update(ctx context.Context, image *entity.GalleryImage) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCategory(ctx context.Context) ([]entity.CategoryCount, error)
}

type galleryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGalleryRepository(db database.PgxIface, log *zap.Logger) GalleryRepository {
	return &galleryRepository{
		db:  db,
		log: log.With(zap.String("repository", "gallery")),
	}
}

const galleryColumns = `id, title, category, image_url, alt_text, description, sort_order, active, created_at, updated_at`

func scanGalleryImage(row pgx.Row) (*entity.GalleryImage, error) {
	var g entity.GalleryImage
	err := row.Scan(
		&g.ID,
		&g.Title,
		&g.Category,
		&g.ImageURL,
		&g.AltText,
		&g.Description,
		&g.SortOrder,
		&g.Active,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// galleryWhere only ever exposes active images.
func galleryWhere(filter entity.GalleryFilter) *whereBuilder {
	w := &whereBuilder{}
	w.add("active = TRUE")
	if filter.Category != nil && *filter.Category != "" && *filter.Category != entity.CategoryAll {
		w.add("category = ?", *filter.Category)
	}
	w.addSearch(filter.Search, "title", "description", "alt_text")
	return w
}

func (r *galleryRepository) Create(ctx context.Context, g *entity.GalleryImage) error {
	query := `
		INSERT INTO gallery_images (id, title, category, image_url, alt_text, description,
		                            sort_order, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		g.ID,
		g.Title,
		g.Category,
		g.ImageURL,
		g.AltText,
		g.Description,
		g.SortOrder,
		g.Active,
		g.CreatedAt,
		g.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create gallery image",
			zap.Error(err),
			zap.String("category", g.Category),
			zap.String("image_url", g.ImageURL),
		)
		return fmt.Errorf("create gallery image %s: %w", g.Title, err)
	}

	return nil
}

func (r *galleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GalleryImage, error) {
	g, err := scanGalleryImage(r.db.QueryRow(ctx, `SELECT `+galleryColumns+` FROM gallery_images WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find gallery image", zap.Error(err), zap.String("image_id", id.String()))
		return nil, fmt.Errorf("find gallery image %s: %w", id, err)
	}

	return g, nil
}

func (r *galleryRepository) FindAll(ctx context.Context, filter entity.GalleryFilter, limit, offset int) ([]*entity.GalleryImage, error) {
	w := galleryWhere(filter)
	suffix, args := w.page(limit, offset)

	query := `SELECT ` + galleryColumns + ` FROM gallery_images` + w.sql() +
		` ORDER BY sort_order ASC, created_at DESC` + suffix

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find gallery images", zap.Error(err))
		return nil, fmt.Errorf("find gallery images: %w", err)
	}
	defer rows.Close()

	images := []*entity.GalleryImage{}
	for rows.Next() {
		g, err := scanGalleryImage(rows)
		if err != nil {
			r.log.Error("Failed to scan gallery row", zap.Error(err))
			return nil, fmt.Errorf("scan gallery row: %w", err)
		}
		images = append(images, g)
	}

	return images, rows.Err()
}

func (r *galleryRepository) CountAll(ctx context.Context, filter entity.GalleryFilter) (int64, error) {
	w := galleryWhere(filter)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM gallery_images`+w.sql(), w.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count gallery images", zap.Error(err))
		return 0, fmt.Errorf("count gallery images: %w", err)
	}

	return total, nil
}

func (r *galleryRepository) Update(ctx context.Context, g *entity.GalleryImage) error {
	query := `
		UPDATE gallery_images
		SET title = $2, category = $3, alt_text = $4, description = $5,
		    sort_order = $6, active = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		g.ID,
		g.Title,
		g.Category,
		g.AltText,
		g.Description,
		g.SortOrder,
		g.Active,
		g.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update gallery image", zap.Error(err), zap.String("image_id", g.ID.String()))
		return fmt.Errorf("update gallery image %s: %w", g.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("gallery image %s: %w", g.ID, ErrNotFound)
	}

	return nil
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete gallery image", zap.Error(err), zap.String("image_id", id.String()))
		return fmt.Errorf("delete gallery image %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("gallery image %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *galleryRepository) CountByCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT category, COUNT(*)
		FROM gallery_images
		WHERE active = TRUE
		GROUP BY category
		ORDER BY category
	`)
	if err != nil {
		r.log.Error("Failed to count gallery categories", zap.Error(err))
		return nil, fmt.Errorf("count gallery categories: %w", err)
	}
	defer rows.Close()

	counts := []entity.CategoryCount{}
	for rows.Next() {
		var c entity.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scan gallery category row: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}
