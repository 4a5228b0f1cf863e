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

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindSummaryByID(ctx context.Context, id uuid.UUID) (*entity.BookingSummary, error)
	FindAll(ctx context.Context, filter entity.BookingFilter, limit, offset int) ([]*entity.BookingSummary, error)
	CountAll(ctx context.Context, filter entity.BookingFilter) (int64, error)
	FindByAccommodation(ctx context.Context, accommodationID uuid.UUID, filter entity.BookingFilter) ([]*entity.BookingSummary, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.BookingSummary, error)
	CountActiveForAccommodationTx(ctx context.Context, tx pgx.Tx, accommodationID uuid.UUID) (int64, error)

	// Transactional writes used by the booking workflow
	CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error
	FindForUpdateTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.Booking, error)
	UpdateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error
	UpdatePaymentStatusTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status entity.PaymentStatus) error
	DeleteTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `b.id, b.reference, b.guest_name, b.guest_email, b.guest_phone, b.accommodation_id,
	b.meal_plan_id, b.check_in_date, b.check_out_date, b.adults, b.children, b.rooms,
	b.total_amount::float8, b.coupon_code, b.special_requests, b.status, b.payment_status,
	b.created_at, b.updated_at`

// bookingSummaryFrom joins display names and the sum of successful payments.
const bookingSummaryFrom = `
	FROM bookings b
	LEFT JOIN accommodations a ON a.id = b.accommodation_id
	LEFT JOIN meal_plans mp ON mp.id = b.meal_plan_id
	LEFT JOIN (
		SELECT booking_id, SUM(amount) AS paid
		FROM payments
		WHERE status = 'success'
		GROUP BY booking_id
	) p ON p.booking_id = b.id`

const bookingSummarySelect = `SELECT ` + bookingColumns + `, a.title, mp.title, COALESCE(p.paid, 0)::float8` + bookingSummaryFrom

func bookingScanTargets(b *entity.Booking) []any {
	return []any{
		&b.ID,
		&b.Reference,
		&b.GuestName,
		&b.GuestEmail,
		&b.GuestPhone,
		&b.AccommodationID,
		&b.MealPlanID,
		&b.CheckIn,
		&b.CheckOut,
		&b.Adults,
		&b.Children,
		&b.Rooms,
		&b.TotalAmount,
		&b.CouponCode,
		&b.SpecialRequests,
		&b.Status,
		&b.PaymentStatus,
		&b.CreatedAt,
		&b.UpdatedAt,
	}
}

func scanBookingSummary(row pgx.Row) (*entity.BookingSummary, error) {
	var s entity.BookingSummary
	targets := append(bookingScanTargets(&s.Booking), &s.AccommodationTitle, &s.MealPlanTitle, &s.PaidAmount)
	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *bookingRepository) collectSummaries(rows pgx.Rows) ([]*entity.BookingSummary, error) {
	defer rows.Close()

	var list []*entity.BookingSummary
	for rows.Next() {
		s, err := scanBookingSummary(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		list = append(list, s)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return list, nil
}

const paidExpr = `COALESCE(p.paid, 0)`

func bookingWhere(filter entity.BookingFilter) *whereBuilder {
	w := &whereBuilder{}
	w.addSearch(filter.Search, "b.guest_name", "b.guest_email", "a.title")
	if filter.Status != nil {
		w.add("b.status = ?", string(*filter.Status))
	}
	if filter.PaymentStatus != nil {
		switch *filter.PaymentStatus {
		case entity.PaymentUnpaid:
			w.add(paidExpr + " <= 0")
		case entity.PaymentPartial:
			w.add(paidExpr + " > 0 AND " + paidExpr + " < b.total_amount")
		case entity.PaymentPaid:
			w.add(paidExpr + " > 0 AND " + paidExpr + " >= b.total_amount")
		}
	}
	if filter.StartDate != nil {
		w.add("b.check_in_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		w.add("b.check_out_date <= ?", *filter.EndDate)
	}
	return w
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var b entity.Booking
	err := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings b WHERE b.id = $1`, id).Scan(bookingScanTargets(&b)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return &b, nil
}

func (r *bookingRepository) FindSummaryByID(ctx context.Context, id uuid.UUID) (*entity.BookingSummary, error) {
	s, err := scanBookingSummary(r.db.QueryRow(ctx, bookingSummarySelect+` WHERE b.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking summary", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("find booking summary %s: %w", id, err)
	}

	return s, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, filter entity.BookingFilter, limit, offset int) ([]*entity.BookingSummary, error) {
	w := bookingWhere(filter)
	suffix, args := w.page(limit, offset)

	rows, err := r.db.Query(ctx, bookingSummarySelect+w.sql()+` ORDER BY b.created_at DESC`+suffix, args...)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings limit %d offset %d: %w", limit, offset, err)
	}

	return r.collectSummaries(rows)
}

func (r *bookingRepository) CountAll(ctx context.Context, filter entity.BookingFilter) (int64, error) {
	w := bookingWhere(filter)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+bookingSummaryFrom+w.sql(), w.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return total, nil
}

func (r *bookingRepository) FindByAccommodation(ctx context.Context, accommodationID uuid.UUID, filter entity.BookingFilter) ([]*entity.BookingSummary, error) {
	w := bookingWhere(filter)
	w.add("b.accommodation_id = ?", accommodationID)

	rows, err := r.db.Query(ctx, bookingSummarySelect+w.sql()+` ORDER BY b.check_in_date DESC`, w.args...)
	if err != nil {
		r.log.Error("Failed to find bookings for accommodation",
			zap.Error(err),
			zap.String("accommodation_id", accommodationID.String()),
		)
		return nil, fmt.Errorf("find bookings for accommodation %s: %w", accommodationID, err)
	}

	return r.collectSummaries(rows)
}

func (r *bookingRepository) FindRecent(ctx context.Context, limit int) ([]*entity.BookingSummary, error) {
	rows, err := r.db.Query(ctx, bookingSummarySelect+` ORDER BY b.created_at DESC LIMIT $1`, limit)
	if err != nil {
		r.log.Error("Failed to find recent bookings", zap.Error(err))
		return nil, fmt.Errorf("find recent bookings: %w", err)
	}

	return r.collectSummaries(rows)
}

func (r *bookingRepository) CountActiveForAccommodationTx(ctx context.Context, tx pgx.Tx, accommodationID uuid.UUID) (int64, error) {
	var count int64
	err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE accommodation_id = $1 AND status IN ('pending', 'confirmed')
	`, accommodationID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count active bookings",
			zap.Error(err),
			zap.String("accommodation_id", accommodationID.String()),
		)
		return 0, fmt.Errorf("count active bookings for accommodation %s: %w", accommodationID, err)
	}

	return count, nil
}

func (r *bookingRepository) CreateTx(ctx context.Context, tx pgx.Tx, b *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, reference, guest_name, guest_email, guest_phone, accommodation_id,
		                      meal_plan_id, check_in_date, check_out_date, adults, children, rooms,
		                      total_amount, coupon_code, special_requests, status, payment_status,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := tx.Exec(ctx, query,
		b.ID,
		b.Reference,
		b.GuestName,
		b.GuestEmail,
		b.GuestPhone,
		b.AccommodationID,
		b.MealPlanID,
		b.CheckIn,
		b.CheckOut,
		b.Adults,
		b.Children,
		b.Rooms,
		b.TotalAmount,
		b.CouponCode,
		b.SpecialRequests,
		b.Status,
		b.PaymentStatus,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference", b.Reference),
			zap.String("guest_email", b.GuestEmail),
		)
		return fmt.Errorf("create booking %s: %w", b.Reference, err)
	}

	return nil
}

func (r *bookingRepository) FindForUpdateTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.Booking, error) {
	var b entity.Booking
	err := tx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings b WHERE b.id = $1 FOR UPDATE`, id).Scan(bookingScanTargets(&b)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock booking", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("lock booking %s: %w", id, err)
	}

	return &b, nil
}

func (r *bookingRepository) UpdateTx(ctx context.Context, tx pgx.Tx, b *entity.Booking) error {
	query := `
		UPDATE bookings
		SET guest_name = $2, guest_email = $3, guest_phone = $4, accommodation_id = $5,
		    meal_plan_id = $6, check_in_date = $7, check_out_date = $8, adults = $9,
		    children = $10, rooms = $11, total_amount = $12, special_requests = $13,
		    status = $14, updated_at = $15
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query,
		b.ID,
		b.GuestName,
		b.GuestEmail,
		b.GuestPhone,
		b.AccommodationID,
		b.MealPlanID,
		b.CheckIn,
		b.CheckOut,
		b.Adults,
		b.Children,
		b.Rooms,
		b.TotalAmount,
		b.SpecialRequests,
		b.Status,
		b.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update booking", zap.Error(err), zap.String("booking_id", b.ID.String()))
		return fmt.Errorf("update booking %s: %w", b.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", b.ID, ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) UpdatePaymentStatusTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status entity.PaymentStatus) error {
	result, err := tx.Exec(ctx,
		`UPDATE bookings SET payment_status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now(),
	)
	if err != nil {
		r.log.Error("Failed to update booking payment status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("payment_status", string(status)),
		)
		return fmt.Errorf("update booking %s payment status to %s: %w", id, status, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) DeleteTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	result, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking", zap.Error(err), zap.String("booking_id", id.String()))
		return fmt.Errorf("delete booking %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}
