package request

type InitialPaymentRequest struct {
	Amount        float64 `json:"amount" validate:"gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,max=50"`
	TransactionID *string `json:"transaction_id,omitempty" validate:"omitempty,max=100"`
}

type CreateBookingRequest struct {
	GuestName       string                 `json:"guest_name" validate:"required,max=100"`
	GuestEmail      string                 `json:"guest_email" validate:"required,email"`
	GuestPhone      *string                `json:"guest_phone,omitempty" validate:"omitempty,max=20"`
	AccommodationID string                 `json:"accommodation_id" validate:"required,uuid"`
	CheckIn         string                 `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut        string                 `json:"check_out" validate:"required,datetime=2006-01-02"`
	Adults          int                    `json:"adults" validate:"required,min=1"`
	Children        int                    `json:"children" validate:"min=0"`
	Rooms           int                    `json:"rooms" validate:"omitempty,min=1,max=100"`
	MealPlanID      *string                `json:"meal_plan_id,omitempty" validate:"omitempty,uuid"`
	CouponCode      *string                `json:"coupon_code,omitempty" validate:"omitempty,max=50"`
	ActivityIDs     []string               `json:"activities,omitempty" validate:"omitempty,dive,uuid"`
	TotalAmount     float64                `json:"total_amount" validate:"gte=0"`
	SpecialRequests *string                `json:"special_requests,omitempty"`
	Payment         *InitialPaymentRequest `json:"payment,omitempty"`
}

// RoomCount applies the single-room default.
func (r *CreateBookingRequest) RoomCount() int {
	if r.Rooms < 1 {
		return 1
	}
	return r.Rooms
}

type UpdateBookingRequest struct {
	GuestName       *string  `json:"guest_name,omitempty" validate:"omitempty,min=1,max=100"`
	GuestEmail      *string  `json:"guest_email,omitempty" validate:"omitempty,email"`
	GuestPhone      *string  `json:"guest_phone,omitempty" validate:"omitempty,max=20"`
	AccommodationID *string  `json:"accommodation_id,omitempty" validate:"omitempty,uuid"`
	CheckIn         *string  `json:"check_in,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CheckOut        *string  `json:"check_out,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Adults          *int     `json:"adults,omitempty" validate:"omitempty,min=1"`
	Children        *int     `json:"children,omitempty" validate:"omitempty,min=0"`
	Rooms           *int     `json:"rooms,omitempty" validate:"omitempty,min=1,max=100"`
	MealPlanID      *string  `json:"meal_plan_id,omitempty" validate:"omitempty,uuid"`
	TotalAmount     *float64 `json:"total_amount,omitempty" validate:"omitempty,gte=0"`
	Status          *string  `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	SpecialRequests *string  `json:"special_requests,omitempty"`
}

type AddPaymentRequest struct {
	Amount        float64 `json:"amount" validate:"gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,max=50"`
	TransactionID *string `json:"transaction_id,omitempty" validate:"omitempty,max=100"`
	Notes         *string `json:"notes,omitempty"`
}

type CheckAvailabilityRequest struct {
	AccommodationID string `json:"accommodation_id" validate:"required,uuid"`
	CheckIn         string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut        string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Rooms           int    `json:"rooms" validate:"omitempty,min=1,max=100"`
}

func (r *CheckAvailabilityRequest) RoomCount() int {
	if r.Rooms < 1 {
		return 1
	}
	return r.Rooms
}

// BookingListRequest carries the query-string filters of the booking list.
type BookingListRequest struct {
	PaginatedRequest
	Search        *string
	Status        *string `validate:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentStatus *string `validate:"omitempty,oneof=Unpaid Partial Paid"`
	StartDate     *string `validate:"omitempty,datetime=2006-01-02"`
	EndDate       *string `validate:"omitempty,datetime=2006-01-02"`
}

type AccommodationBookingsRequest struct {
	Status    *string `validate:"omitempty,oneof=pending confirmed cancelled completed"`
	StartDate *string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `validate:"omitempty,datetime=2006-01-02"`
}
