package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// HoldsInventory reports whether a booking in this status still occupies rooms.
func (s BookingStatus) HoldsInventory() bool {
	return s != BookingStatusCancelled && s != BookingStatusCompleted
}

var ErrInvalidStay = errors.New("check-out date must be after check-in date")

// Stay is the half-open interval [CheckIn, CheckOut) of calendar dates.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	s := Stay{CheckIn: DateOnly(checkIn), CheckOut: DateOnly(checkOut)}
	if !s.CheckIn.Before(s.CheckOut) {
		return Stay{}, ErrInvalidStay
	}
	return s, nil
}

// Overlaps uses half-open semantics: a check-out on day D frees the room for a
// check-in on day D.
func (s Stay) Overlaps(other Stay) bool {
	return s.CheckIn.Before(other.CheckOut) && s.CheckOut.After(other.CheckIn)
}

func (s Stay) Nights() int {
	return int(s.CheckOut.Sub(s.CheckIn).Hours() / 24)
}

// RemainingRooms is inventory minus rooms already held, never below zero.
func RemainingRooms(inventory, booked int) int {
	if booked >= inventory {
		return 0
	}
	return inventory - booked
}

type Booking struct {
	Base
	Reference       string        `db:"reference"`
	GuestName       string        `db:"guest_name"`
	GuestEmail      string        `db:"guest_email"`
	GuestPhone      *string       `db:"guest_phone"`
	AccommodationID *uuid.UUID    `db:"accommodation_id"`
	MealPlanID      *uuid.UUID    `db:"meal_plan_id"`
	CheckIn         time.Time     `db:"check_in_date"`
	CheckOut        time.Time     `db:"check_out_date"`
	Adults          int           `db:"adults"`
	Children        int           `db:"children"`
	Rooms           int           `db:"rooms"`
	TotalAmount     float64       `db:"total_amount"`
	CouponCode      *string       `db:"coupon_code"`
	SpecialRequests *string       `db:"special_requests"`
	Status          BookingStatus `db:"status"`
	PaymentStatus   PaymentStatus `db:"payment_status"`
}

func (b *Booking) Stay() Stay {
	return Stay{CheckIn: DateOnly(b.CheckIn), CheckOut: DateOnly(b.CheckOut)}
}

// BookingSummary is a booking joined with display names and its paid total.
type BookingSummary struct {
	Booking
	AccommodationTitle *string
	MealPlanTitle      *string
	PaidAmount         float64
}

func (b *BookingSummary) DerivedPaymentStatus() DerivedPaymentStatus {
	return DerivePaymentStatus(b.TotalAmount, b.PaidAmount)
}

// RoomAssignment is one reserved room of a booking.
type RoomAssignment struct {
	BaseSimple
	BookingID       uuid.UUID `db:"booking_id"`
	AccommodationID uuid.UUID `db:"accommodation_id"`
	CheckIn         time.Time `db:"check_in_date"`
	CheckOut        time.Time `db:"check_out_date"`
}

// NewRoomAssignments produces one row per reserved room, copying the stay.
func NewRoomAssignments(bookingID, accommodationID uuid.UUID, stay Stay, rooms int, now time.Time) []*RoomAssignment {
	out := make([]*RoomAssignment, 0, rooms)
	for i := 0; i < rooms; i++ {
		out = append(out, &RoomAssignment{
			BaseSimple:      BaseSimple{ID: uuid.New(), CreatedAt: now},
			BookingID:       bookingID,
			AccommodationID: accommodationID,
			CheckIn:         stay.CheckIn,
			CheckOut:        stay.CheckOut,
		})
	}
	return out
}

type BookingFilter struct {
	Search        *string
	Status        *BookingStatus
	PaymentStatus *DerivedPaymentStatus
	StartDate     *time.Time
	EndDate       *time.Time
}

// Availability is the capacity picture of one accommodation over a stay.
type Availability struct {
	AccommodationID uuid.UUID
	TotalRooms      int
	BookedRooms     int
	RequestedRooms  int
}

func (a Availability) RemainingRooms() int {
	return RemainingRooms(a.TotalRooms, a.BookedRooms)
}

func (a Availability) Available() bool {
	return a.RemainingRooms() >= a.RequestedRooms
}
