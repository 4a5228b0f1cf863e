package response

import (
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/pkg/utils"
)

type BookingResponse struct {
	ID                  string                      `json:"id"`
	Reference           string                      `json:"reference"`
	GuestName           string                      `json:"guest_name"`
	GuestEmail          string                      `json:"guest_email"`
	GuestPhone          *string                     `json:"guest_phone,omitempty"`
	AccommodationID     *string                     `json:"accommodation_id,omitempty"`
	AccommodationName   *string                     `json:"accommodation_name,omitempty"`
	MealPlanID          *string                     `json:"meal_plan_id,omitempty"`
	MealPlanName        *string                     `json:"meal_plan_name,omitempty"`
	CheckIn             string                      `json:"check_in"`
	CheckOut            string                      `json:"check_out"`
	Nights              int                         `json:"nights"`
	Adults              int                         `json:"adults"`
	Children            int                         `json:"children"`
	Rooms               int                         `json:"rooms"`
	TotalAmount         float64                     `json:"total_amount"`
	PaidAmount          float64                     `json:"paid_amount"`
	PaymentStatus       entity.DerivedPaymentStatus `json:"payment_status"`
	StoredPaymentStatus entity.PaymentStatus        `json:"stored_payment_status"`
	CouponCode          *string                     `json:"coupon_code,omitempty"`
	SpecialRequests     *string                     `json:"special_requests,omitempty"`
	Status              entity.BookingStatus        `json:"status"`
	CreatedAt           time.Time                   `json:"created_at"`
	UpdatedAt           time.Time                   `json:"updated_at"`
}

type BookingDetailResponse struct {
	BookingResponse
	Activities []ActivityResponse `json:"activities"`
	Payments   []PaymentResponse  `json:"payments"`
}

type PaymentResponse struct {
	ID            string               `json:"id"`
	BookingID     string               `json:"booking_id"`
	Amount        float64              `json:"amount"`
	PaymentMethod string               `json:"payment_method"`
	TransactionID *string              `json:"transaction_id,omitempty"`
	Status        entity.PaymentStatus `json:"status"`
	Notes         *string              `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

type AddPaymentResponse struct {
	Payment       PaymentResponse             `json:"payment"`
	TotalAmount   float64                     `json:"total_amount"`
	PaidAmount    float64                     `json:"paid_amount"`
	PaymentStatus entity.DerivedPaymentStatus `json:"payment_status"`
}

type AvailabilityResponse struct {
	AccommodationID string `json:"accommodation_id"`
	Available       bool   `json:"available"`
	AvailableRooms  int    `json:"available_rooms"`
	RequestedRooms  int    `json:"requested_rooms"`
	TotalRooms      int    `json:"total_rooms"`
	BookedRooms     int    `json:"booked_rooms"`
}

type MealPlanResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

type ActivityResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// Helper converters
func BookingToResponse(b *entity.Booking, paid float64) BookingResponse {
	resp := BookingResponse{
		ID:                  b.ID.String(),
		Reference:           b.Reference,
		GuestName:           b.GuestName,
		GuestEmail:          b.GuestEmail,
		GuestPhone:          b.GuestPhone,
		CheckIn:             b.CheckIn.Format(utils.DateLayout),
		CheckOut:            b.CheckOut.Format(utils.DateLayout),
		Nights:              b.Stay().Nights(),
		Adults:              b.Adults,
		Children:            b.Children,
		Rooms:               b.Rooms,
		TotalAmount:         b.TotalAmount,
		PaidAmount:          paid,
		PaymentStatus:       entity.DerivePaymentStatus(b.TotalAmount, paid),
		StoredPaymentStatus: b.PaymentStatus,
		CouponCode:          b.CouponCode,
		SpecialRequests:     b.SpecialRequests,
		Status:              b.Status,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}

	if b.AccommodationID != nil {
		id := b.AccommodationID.String()
		resp.AccommodationID = &id
	}
	if b.MealPlanID != nil {
		id := b.MealPlanID.String()
		resp.MealPlanID = &id
	}

	return resp
}

func BookingSummaryToResponse(s *entity.BookingSummary) BookingResponse {
	resp := BookingToResponse(&s.Booking, s.PaidAmount)
	resp.AccommodationName = s.AccommodationTitle
	resp.MealPlanName = s.MealPlanTitle
	return resp
}

func BookingSummariesToResponse(list []*entity.BookingSummary) []BookingResponse {
	out := make([]BookingResponse, 0, len(list))
	for _, s := range list {
		out = append(out, BookingSummaryToResponse(s))
	}
	return out
}

func PaymentToResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID.String(),
		BookingID:     p.BookingID.String(),
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
		Status:        p.Status,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
}

func AvailabilityToResponse(a entity.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		AccommodationID: a.AccommodationID.String(),
		Available:       a.Available(),
		AvailableRooms:  a.RemainingRooms(),
		RequestedRooms:  a.RequestedRooms,
		TotalRooms:      a.TotalRooms,
		BookedRooms:     a.BookedRooms,
	}
}

func MealPlanToResponse(mp *entity.MealPlan) MealPlanResponse {
	return MealPlanResponse{
		ID:          mp.ID.String(),
		Title:       mp.Title,
		Description: mp.Description,
		Price:       mp.Price,
	}
}

func ActivityToResponse(a *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          a.ID.String(),
		Title:       a.Title,
		Description: a.Description,
		Price:       a.Price,
	}
}
