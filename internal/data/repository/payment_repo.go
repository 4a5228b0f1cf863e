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

type PaymentRepository interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error)
	CreateTx(ctx context.Context, tx pgx.Tx, payment *entity.Payment) error
	SumSuccessfulTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) (float64, error)
	DeleteByBookingTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) error
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, booking_id, amount::float8, payment_method, transaction_id, status, notes, created_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at DESC
	`, bookingID)
	if err != nil {
		r.log.Error("Failed to find payments by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payments by booking ID %s: %w", bookingID, err)
	}
	defer rows.Close()

	payments := []*entity.Payment{}
	for rows.Next() {
		var p entity.Payment
		err := rows.Scan(
			&p.ID,
			&p.BookingID,
			&p.Amount,
			&p.PaymentMethod,
			&p.TransactionID,
			&p.Status,
			&p.Notes,
			&p.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &p)
	}

	return payments, rows.Err()
}

func (r *paymentRepository) CreateTx(ctx context.Context, tx pgx.Tx, p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, amount, payment_method, transaction_id, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := tx.Exec(ctx, query,
		p.ID,
		p.BookingID,
		p.Amount,
		p.PaymentMethod,
		p.TransactionID,
		p.Status,
		p.Notes,
		p.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", p.BookingID.String()),
			zap.Float64("amount", p.Amount),
		)
		return fmt.Errorf("create payment for booking %s: %w", p.BookingID, err)
	}

	return nil
}

func (r *paymentRepository) SumSuccessfulTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) (float64, error) {
	var paid float64
	err := tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)::float8
		FROM payments
		WHERE booking_id = $1 AND status = 'success'
	`, bookingID).Scan(&paid)
	if err != nil {
		r.log.Error("Failed to sum payments", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return 0, fmt.Errorf("sum payments of booking %s: %w", bookingID, err)
	}

	return paid, nil
}

func (r *paymentRepository) DeleteByBookingTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE booking_id = $1`, bookingID); err != nil {
		r.log.Error("Failed to delete payments", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return fmt.Errorf("delete payments of booking %s: %w", bookingID, err)
	}
	return nil
}
