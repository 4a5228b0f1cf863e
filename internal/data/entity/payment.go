package entity

import (
	"github.com/google/uuid"
)

// PaymentStatus is what gets stored on payments and bookings.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
)

// DerivedPaymentStatus is computed from successful payments against the total.
type DerivedPaymentStatus string

const (
	PaymentUnpaid  DerivedPaymentStatus = "Unpaid"
	PaymentPartial DerivedPaymentStatus = "Partial"
	PaymentPaid    DerivedPaymentStatus = "Paid"
)

func (s DerivedPaymentStatus) Valid() bool {
	return s == PaymentUnpaid || s == PaymentPartial || s == PaymentPaid
}

func DerivePaymentStatus(total, paid float64) DerivedPaymentStatus {
	switch {
	case paid <= 0:
		return PaymentUnpaid
	case paid >= total:
		return PaymentPaid
	default:
		return PaymentPartial
	}
}

// InitialPaymentStatus is success only when the first payment covers the total.
func InitialPaymentStatus(amount, total float64) PaymentStatus {
	if amount >= total {
		return PaymentStatusSuccess
	}
	return PaymentStatusPending
}

// StoredPaymentStatus maps the derived status onto the stored booking column.
func StoredPaymentStatus(total, paid float64) PaymentStatus {
	if DerivePaymentStatus(total, paid) == PaymentPaid {
		return PaymentStatusSuccess
	}
	return PaymentStatusPending
}

type Payment struct {
	BaseSimple
	BookingID     uuid.UUID     `db:"booking_id"`
	Amount        float64       `db:"amount"`
	PaymentMethod string        `db:"payment_method"`
	TransactionID *string       `db:"transaction_id"`
	Status        PaymentStatus `db:"status"`
	Notes         *string       `db:"notes"`
}
