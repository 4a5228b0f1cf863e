package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AdminRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	// FindByLogin matches either the username or the email.
	FindByLogin(ctx context.Context, login string) (*entity.Admin, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type adminRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminRepository(db database.PgxIface, log *zap.Logger) AdminRepository {
	return &adminRepository{
		db:  db,
		log: log.With(zap.String("repository", "admin")),
	}
}

const adminColumns = `id, username, email, password_hash, full_name, is_active, last_login_at, created_at, updated_at`

func scanAdmin(row pgx.Row) (*entity.Admin, error) {
	var a entity.Admin
	err := row.Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.FullName,
		&a.IsActive,
		&a.LastLoginAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	a, err := scanAdmin(r.db.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin by ID", zap.Error(err), zap.String("admin_id", id.String()))
		return nil, fmt.Errorf("find admin by ID %s: %w", id, err)
	}

	return a, nil
}

func (r *adminRepository) FindByLogin(ctx context.Context, login string) (*entity.Admin, error) {
	a, err := scanAdmin(r.db.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE username = $1 OR LOWER(email) = LOWER($1)`, login,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin by login", zap.Error(err), zap.String("login", login))
		return nil, fmt.Errorf("find admin by login %s: %w", login, err)
	}

	return a, nil
}

func (r *adminRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if _, err := r.db.Exec(ctx, `UPDATE admins SET last_login_at = $2 WHERE id = $1`, id, at); err != nil {
		r.log.Error("Failed to record admin login", zap.Error(err), zap.String("admin_id", id.String()))
		return fmt.Errorf("record login for admin %s: %w", id, err)
	}
	return nil
}
