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

type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)
	FindRedeemableByCode(ctx context.Context, code string, today time.Time) (*entity.Coupon, error)
	FindAll(ctx context.Context) ([]*entity.Coupon, error)
	Update(ctx context.Context, coupon *entity.Coupon) error
	Toggle(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Redeem increments used_count only while the coupon is active, unexpired
	// and under its usage limit. It reports false when no row qualified.
	Redeem(ctx context.Context, code string, today time.Time) (bool, error)
	RedeemTx(ctx context.Context, tx pgx.Tx, code string, today time.Time) (bool, error)
}

type couponRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCouponRepository(db database.PgxIface, log *zap.Logger) CouponRepository {
	return &couponRepository{
		db:  db,
		log: log.With(zap.String("repository", "coupon")),
	}
}

const couponColumns = `id, code, discount_value::float8, discount_type, min_amount::float8,
	max_discount::float8, usage_limit, used_count, active, expiry_date, created_at, updated_at`

func scanCoupon(row pgx.Row) (*entity.Coupon, error) {
	var c entity.Coupon
	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.DiscountValue,
		&c.DiscountType,
		&c.MinAmount,
		&c.MaxDiscount,
		&c.UsageLimit,
		&c.UsedCount,
		&c.Active,
		&c.ExpiryDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *couponRepository) Create(ctx context.Context, c *entity.Coupon) error {
	query := `
		INSERT INTO coupons (id, code, discount_value, discount_type, min_amount, max_discount,
		                     usage_limit, used_count, active, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		c.ID,
		c.Code,
		c.DiscountValue,
		c.DiscountType,
		c.MinAmount,
		c.MaxDiscount,
		c.UsageLimit,
		c.UsedCount,
		c.Active,
		c.ExpiryDate,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("coupon code %s: %w", c.Code, ErrDuplicate)
		}
		r.log.Error("Failed to create coupon", zap.Error(err), zap.String("code", c.Code))
		return fmt.Errorf("create coupon %s: %w", c.Code, err)
	}

	return nil
}

func (r *couponRepository) findOne(ctx context.Context, what string, query string, args ...any) (*entity.Coupon, error) {
	c, err := scanCoupon(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find coupon", zap.Error(err), zap.String("lookup", what))
		return nil, fmt.Errorf("find coupon by %s: %w", what, err)
	}
	return c, nil
}

func (r *couponRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	return r.findOne(ctx, "id", `SELECT `+couponColumns+` FROM coupons WHERE id = $1`, id)
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	return r.findOne(ctx, "code", `SELECT `+couponColumns+` FROM coupons WHERE code = $1`, code)
}

func (r *couponRepository) FindRedeemableByCode(ctx context.Context, code string, today time.Time) (*entity.Coupon, error) {
	return r.findOne(ctx, "code",
		`SELECT `+couponColumns+` FROM coupons WHERE code = $1 AND active AND expiry_date >= $2`,
		code, today,
	)
}

func (r *couponRepository) FindAll(ctx context.Context) ([]*entity.Coupon, error) {
	rows, err := r.db.Query(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC`)
	if err != nil {
		r.log.Error("Failed to find coupons", zap.Error(err))
		return nil, fmt.Errorf("find coupons: %w", err)
	}
	defer rows.Close()

	coupons := []*entity.Coupon{}
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			r.log.Error("Failed to scan coupon row", zap.Error(err))
			return nil, fmt.Errorf("scan coupon row: %w", err)
		}
		coupons = append(coupons, c)
	}

	return coupons, rows.Err()
}

func (r *couponRepository) Update(ctx context.Context, c *entity.Coupon) error {
	query := `
		UPDATE coupons
		SET code = $2, discount_value = $3, discount_type = $4, min_amount = $5,
		    max_discount = $6, usage_limit = $7, active = $8, expiry_date = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		c.ID,
		c.Code,
		c.DiscountValue,
		c.DiscountType,
		c.MinAmount,
		c.MaxDiscount,
		c.UsageLimit,
		c.Active,
		c.ExpiryDate,
		c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("coupon code %s: %w", c.Code, ErrDuplicate)
		}
		r.log.Error("Failed to update coupon", zap.Error(err), zap.String("coupon_id", c.ID.String()))
		return fmt.Errorf("update coupon %s: %w", c.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("coupon %s: %w", c.ID, ErrNotFound)
	}

	return nil
}

func (r *couponRepository) Toggle(ctx context.Context, id uuid.UUID) (bool, error) {
	var active bool
	err := r.db.QueryRow(ctx,
		`UPDATE coupons SET active = NOT active, updated_at = NOW() WHERE id = $1 RETURNING active`, id,
	).Scan(&active)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("coupon %s: %w", id, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to toggle coupon", zap.Error(err), zap.String("coupon_id", id.String()))
		return false, fmt.Errorf("toggle coupon %s: %w", id, err)
	}

	return active, nil
}

func (r *couponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete coupon", zap.Error(err), zap.String("coupon_id", id.String()))
		return fmt.Errorf("delete coupon %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("coupon %s: %w", id, ErrNotFound)
	}

	r.log.Info("Coupon deleted", zap.String("coupon_id", id.String()))
	return nil
}

const redeemQuery = `
	UPDATE coupons
	SET used_count = used_count + 1, updated_at = NOW()
	WHERE code = $1
	  AND active
	  AND expiry_date >= $2
	  AND (usage_limit IS NULL OR used_count < usage_limit)
`

func (r *couponRepository) redeem(ctx context.Context, q database.Querier, code string, today time.Time) (bool, error) {
	result, err := q.Exec(ctx, redeemQuery, code, today)
	if err != nil {
		r.log.Error("Failed to redeem coupon", zap.Error(err), zap.String("code", code))
		return false, fmt.Errorf("redeem coupon %s: %w", code, err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *couponRepository) Redeem(ctx context.Context, code string, today time.Time) (bool, error) {
	return r.redeem(ctx, r.db, code, today)
}

func (r *couponRepository) RedeemTx(ctx context.Context, tx pgx.Tx, code string, today time.Time) (bool, error) {
	return r.redeem(ctx, tx, code, today)
}
