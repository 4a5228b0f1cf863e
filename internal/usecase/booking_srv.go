package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/internal/data/repository"
	"resort-admin/internal/dto/request"
	"resort-admin/internal/dto/response"
	"resort-admin/pkg/database"
	"resort-admin/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID string) error
	GetBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error)
	ListBookings(ctx context.Context, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	CheckAvailability(ctx context.Context, req *request.CheckAvailabilityRequest) (*response.AvailabilityResponse, error)
	AddPayment(ctx context.Context, bookingID string, req *request.AddPaymentRequest) (*response.AddPaymentResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	db   database.TxBeginner
	log  *zap.Logger
	now  func() time.Time
}

func NewBookingService(repo *repository.Repository, db database.TxBeginner, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		db:   db,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalid("invalid %s ID format", what)
	}
	return id, nil
}

func parseStay(checkIn, checkOut string) (entity.Stay, error) {
	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return entity.Stay{}, invalid("invalid check-in date")
	}
	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return entity.Stay{}, invalid("invalid check-out date")
	}
	stay, err := entity.NewStay(in, out)
	if err != nil {
		return entity.Stay{}, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return stay, nil
}

// txError keeps business sentinels visible to handlers and hides everything
// else behind ErrTransaction.
func (s *bookingService) txError(op string, err error) error {
	if errors.Is(err, ErrConflict) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) {
		return err
	}
	s.log.Error("Booking transaction failed", zap.String("operation", op), zap.Error(err))
	return fmt.Errorf("%w: %s", ErrTransaction, op)
}

// ensureCapacity must run inside tx after the inventory row is locked.
func (s *bookingService) ensureCapacity(ctx context.Context, tx pgx.Tx, accommodationID uuid.UUID, stay entity.Stay, rooms int, exclude *uuid.UUID) error {
	inventory, err := s.repo.Accommodation.LockInventoryTx(ctx, tx, accommodationID)
	if err != nil {
		return err
	}

	booked, err := s.repo.BookingRoom.CountOverlappingTx(ctx, tx, accommodationID, stay, exclude)
	if err != nil {
		return err
	}

	if remaining := entity.RemainingRooms(inventory, booked); remaining < rooms {
		s.log.Warn("Insufficient rooms",
			zap.String("accommodation_id", accommodationID.String()),
			zap.Int("remaining", remaining),
			zap.Int("requested", rooms),
		)
		return conflict("only %d room(s) available for the selected dates", remaining)
	}

	return nil
}

// ensureInventory bounds the room rows of a booking that no longer holds
// inventory by the accommodation's total rooms.
func (s *bookingService) ensureInventory(ctx context.Context, tx pgx.Tx, accommodationID uuid.UUID, rooms int) error {
	inventory, err := s.repo.Accommodation.LockInventoryTx(ctx, tx, accommodationID)
	if err != nil {
		return err
	}
	if rooms > inventory {
		return invalid("accommodation has only %d room(s)", inventory)
	}
	return nil
}

func (s *bookingService) checkMealPlan(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := parseID(*raw, "meal plan")
	if err != nil {
		return nil, err
	}
	mp, err := s.repo.Lookup.FindMealPlanByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check meal plan: %w", err)
	}
	if mp == nil {
		return nil, notFound("meal plan")
	}
	return &id, nil
}

func (s *bookingService) checkActivities(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(raw))
	seen := make(map[uuid.UUID]struct{}, len(raw))
	for _, r := range raw {
		id, err := parseID(r, "activity")
		if err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	found, err := s.repo.Lookup.FindActivitiesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("check activities: %w", err)
	}
	if len(found) != len(ids) {
		return nil, notFound("activity")
	}
	return ids, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err))
		return nil, err
	}

	accommodationID, err := parseID(req.AccommodationID, "accommodation")
	if err != nil {
		return nil, err
	}

	stay, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	acc, err := s.repo.Accommodation.FindByID(ctx, accommodationID)
	if err != nil {
		return nil, fmt.Errorf("find accommodation: %w", err)
	}
	if acc == nil {
		return nil, notFound("accommodation")
	}
	if !acc.Available {
		return nil, conflict("accommodation is not available for booking")
	}

	mealPlanID, err := s.checkMealPlan(ctx, req.MealPlanID)
	if err != nil {
		return nil, err
	}

	activityIDs, err := s.checkActivities(ctx, req.ActivityIDs)
	if err != nil {
		return nil, err
	}

	now := s.now()

	var couponCode *string
	if req.CouponCode != nil && *req.CouponCode != "" {
		code := entity.NormalizeCouponCode(*req.CouponCode)
		coupon, err := s.repo.Coupon.FindRedeemableByCode(ctx, code, entity.DateOnly(now))
		if err != nil {
			return nil, fmt.Errorf("find coupon: %w", err)
		}
		if coupon == nil {
			return nil, notFound("coupon")
		}
		if err := coupon.CheckRedeemable(now, nil); err != nil {
			return nil, conflict("%s", err.Error())
		}
		couponCode = &code
	}

	rooms := req.RoomCount()
	booking := &entity.Booking{
		Base:            entity.NewBase(now),
		Reference:       utils.GenerateBookingReference(now),
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		AccommodationID: &accommodationID,
		MealPlanID:      mealPlanID,
		CheckIn:         stay.CheckIn,
		CheckOut:        stay.CheckOut,
		Adults:          req.Adults,
		Children:        req.Children,
		Rooms:           rooms,
		TotalAmount:     req.TotalAmount,
		CouponCode:      couponCode,
		SpecialRequests: req.SpecialRequests,
		Status:          entity.BookingStatusConfirmed,
		PaymentStatus:   entity.PaymentStatusPending,
	}

	var paid float64
	err = database.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		if err := s.ensureCapacity(ctx, tx, accommodationID, stay, rooms, nil); err != nil {
			return err
		}

		if err := s.repo.Booking.CreateTx(ctx, tx, booking); err != nil {
			return err
		}

		assignments := entity.NewRoomAssignments(booking.ID, accommodationID, stay, rooms, now)
		if err := s.repo.BookingRoom.CreateManyTx(ctx, tx, assignments); err != nil {
			return err
		}

		if len(activityIDs) > 0 {
			if err := s.repo.BookingActivity.CreateManyTx(ctx, tx, booking.ID, activityIDs); err != nil {
				return err
			}
		}

		if couponCode != nil {
			redeemed, err := s.repo.Coupon.RedeemTx(ctx, tx, *couponCode, entity.DateOnly(now))
			if err != nil {
				return err
			}
			if !redeemed {
				return conflict("coupon %s can no longer be redeemed", *couponCode)
			}
		}

		if req.Payment != nil {
			status := entity.InitialPaymentStatus(req.Payment.Amount, booking.TotalAmount)
			payment := &entity.Payment{
				BaseSimple:    entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
				BookingID:     booking.ID,
				Amount:        req.Payment.Amount,
				PaymentMethod: req.Payment.PaymentMethod,
				TransactionID: req.Payment.TransactionID,
				Status:        status,
			}
			if err := s.repo.Payment.CreateTx(ctx, tx, payment); err != nil {
				return err
			}
			if err := s.repo.Booking.UpdatePaymentStatusTx(ctx, tx, booking.ID, status); err != nil {
				return err
			}
			booking.PaymentStatus = status
			if status == entity.PaymentStatusSuccess {
				paid = payment.Amount
			}
		}

		return nil
	})
	if err != nil {
		return nil, s.txError("create booking", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("accommodation_id", accommodationID.String()),
		zap.Int("rooms", rooms),
	)

	resp := response.BookingToResponse(booking, paid)
	resp.AccommodationName = &acc.Title
	return &resp, nil
}

// bookingPatch is an UpdateBookingRequest with its ids and dates parsed.
type bookingPatch struct {
	req             *request.UpdateBookingRequest
	accommodationID *uuid.UUID
	mealPlanID      *uuid.UUID
	checkIn         *time.Time
	checkOut        *time.Time
}

func (p bookingPatch) empty() bool {
	r := p.req
	return r.GuestName == nil && r.GuestEmail == nil && r.GuestPhone == nil && r.AccommodationID == nil &&
		r.CheckIn == nil && r.CheckOut == nil && r.Adults == nil && r.Children == nil && r.Rooms == nil &&
		r.MealPlanID == nil && r.TotalAmount == nil && r.Status == nil && r.SpecialRequests == nil
}

func (p bookingPatch) apply(b *entity.Booking, now time.Time) error {
	r := p.req
	if r.GuestName != nil {
		b.GuestName = *r.GuestName
	}
	if r.GuestEmail != nil {
		b.GuestEmail = *r.GuestEmail
	}
	if r.GuestPhone != nil {
		b.GuestPhone = r.GuestPhone
	}
	if p.accommodationID != nil {
		b.AccommodationID = p.accommodationID
	}
	if p.checkIn != nil {
		b.CheckIn = *p.checkIn
	}
	if p.checkOut != nil {
		b.CheckOut = *p.checkOut
	}
	if r.Adults != nil {
		b.Adults = *r.Adults
	}
	if r.Children != nil {
		b.Children = *r.Children
	}
	if r.Rooms != nil {
		b.Rooms = *r.Rooms
	}
	if p.mealPlanID != nil {
		b.MealPlanID = p.mealPlanID
	}
	if r.TotalAmount != nil {
		b.TotalAmount = *r.TotalAmount
	}
	if r.Status != nil {
		b.Status = entity.BookingStatus(*r.Status)
	}
	if r.SpecialRequests != nil {
		b.SpecialRequests = r.SpecialRequests
	}

	if _, err := entity.NewStay(b.CheckIn, b.CheckOut); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	b.UpdatedAt = now
	return nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update booking validation failed", zap.Error(err))
		return nil, err
	}

	id, err := parseID(bookingID, "booking")
	if err != nil {
		return nil, err
	}

	patch := bookingPatch{req: req}
	if patch.empty() {
		return nil, invalid("no fields to update")
	}

	if req.AccommodationID != nil {
		accID, err := parseID(*req.AccommodationID, "accommodation")
		if err != nil {
			return nil, err
		}
		acc, err := s.repo.Accommodation.FindByID(ctx, accID)
		if err != nil {
			return nil, fmt.Errorf("find accommodation: %w", err)
		}
		if acc == nil {
			return nil, notFound("accommodation")
		}
		patch.accommodationID = &accID
	}

	if patch.mealPlanID, err = s.checkMealPlan(ctx, req.MealPlanID); err != nil {
		return nil, err
	}

	if req.CheckIn != nil {
		t, err := utils.ParseDate(*req.CheckIn)
		if err != nil {
			return nil, invalid("invalid check-in date")
		}
		patch.checkIn = &t
	}
	if req.CheckOut != nil {
		t, err := utils.ParseDate(*req.CheckOut)
		if err != nil {
			return nil, invalid("invalid check-out date")
		}
		patch.checkOut = &t
	}

	now := s.now()
	err = database.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		booking, err := s.repo.Booking.FindForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if booking == nil {
			return notFound("booking")
		}

		if err := patch.apply(booking, now); err != nil {
			return err
		}

		stay := booking.Stay()
		if booking.AccommodationID != nil {
			if booking.Status.HoldsInventory() {
				if err := s.ensureCapacity(ctx, tx, *booking.AccommodationID, stay, booking.Rooms, &booking.ID); err != nil {
					return err
				}
			} else if err := s.ensureInventory(ctx, tx, *booking.AccommodationID, booking.Rooms); err != nil {
				return err
			}
		}

		if err := s.repo.Booking.UpdateTx(ctx, tx, booking); err != nil {
			return err
		}

		if req.TotalAmount != nil {
			paid, err := s.repo.Payment.SumSuccessfulTx(ctx, tx, booking.ID)
			if err != nil {
				return err
			}
			booking.PaymentStatus = entity.StoredPaymentStatus(booking.TotalAmount, paid)
			if err := s.repo.Booking.UpdatePaymentStatusTx(ctx, tx, booking.ID, booking.PaymentStatus); err != nil {
				return err
			}
		}

		if err := s.repo.BookingRoom.DeleteByBookingTx(ctx, tx, booking.ID); err != nil {
			return err
		}
		if booking.AccommodationID != nil {
			assignments := entity.NewRoomAssignments(booking.ID, *booking.AccommodationID, stay, booking.Rooms, now)
			if err := s.repo.BookingRoom.CreateManyTx(ctx, tx, assignments); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, s.txError("update booking", err)
	}

	s.log.Info("Booking updated", zap.String("booking_id", id.String()))

	summary, err := s.repo.Booking.FindSummaryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload booking: %w", err)
	}
	if summary == nil {
		return nil, notFound("booking")
	}

	resp := response.BookingSummaryToResponse(summary)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	id, err := parseID(bookingID, "booking")
	if err != nil {
		return err
	}

	err = database.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		booking, err := s.repo.Booking.FindForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if booking == nil {
			return notFound("booking")
		}

		if err := s.repo.Payment.DeleteByBookingTx(ctx, tx, id); err != nil {
			return err
		}
		if err := s.repo.BookingRoom.DeleteByBookingTx(ctx, tx, id); err != nil {
			return err
		}
		if err := s.repo.BookingActivity.DeleteByBookingTx(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.Booking.DeleteTx(ctx, tx, id)
	})
	if err != nil {
		return s.txError("delete booking", err)
	}

	s.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	id, err := parseID(bookingID, "booking")
	if err != nil {
		return nil, err
	}

	summary, err := s.repo.Booking.FindSummaryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if summary == nil {
		return nil, notFound("booking")
	}

	activities, err := s.repo.BookingActivity.FindByBooking(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking activities: %w", err)
	}

	payments, err := s.repo.Payment.FindByBookingID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking payments: %w", err)
	}

	detail := &response.BookingDetailResponse{
		BookingResponse: response.BookingSummaryToResponse(summary),
		Activities:      make([]response.ActivityResponse, 0, len(activities)),
		Payments:        make([]response.PaymentResponse, 0, len(payments)),
	}
	for _, a := range activities {
		detail.Activities = append(detail.Activities, response.ActivityToResponse(a))
	}
	for _, p := range payments {
		detail.Payments = append(detail.Payments, response.PaymentToResponse(p))
	}

	return detail, nil
}

func bookingFilterFrom(search, status, paymentStatus, startDate, endDate *string) (entity.BookingFilter, error) {
	filter := entity.BookingFilter{Search: search}

	if status != nil {
		st := entity.BookingStatus(*status)
		if !st.Valid() {
			return filter, invalid("invalid booking status %q", *status)
		}
		filter.Status = &st
	}

	if paymentStatus != nil {
		ps := entity.DerivedPaymentStatus(*paymentStatus)
		if !ps.Valid() {
			return filter, invalid("invalid payment status %q", *paymentStatus)
		}
		filter.PaymentStatus = &ps
	}

	var err error
	if startDate != nil {
		if filter.StartDate, err = utils.ParseDatePtr(*startDate); err != nil {
			return filter, invalid("invalid start_date")
		}
	}
	if endDate != nil {
		if filter.EndDate, err = utils.ParseDatePtr(*endDate); err != nil {
			return filter, invalid("invalid end_date")
		}
	}

	return filter, nil
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	filter, err := bookingFilterFrom(req.Search, req.Status, req.PaymentStatus, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(response.BookingSummariesToResponse(bookings), req.Page, req.Limit(), total), nil
}

func (s *bookingService) CheckAvailability(ctx context.Context, req *request.CheckAvailabilityRequest) (*response.AvailabilityResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	accommodationID, err := parseID(req.AccommodationID, "accommodation")
	if err != nil {
		return nil, err
	}

	stay, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	acc, err := s.repo.Accommodation.FindByID(ctx, accommodationID)
	if err != nil {
		return nil, fmt.Errorf("find accommodation: %w", err)
	}
	if acc == nil {
		return nil, notFound("accommodation")
	}

	booked, err := s.repo.BookingRoom.CountOverlapping(ctx, accommodationID, stay)
	if err != nil {
		return nil, fmt.Errorf("count booked rooms: %w", err)
	}

	resp := response.AvailabilityToResponse(entity.Availability{
		AccommodationID: accommodationID,
		TotalRooms:      acc.AvailableRooms,
		BookedRooms:     booked,
		RequestedRooms:  req.RoomCount(),
	})
	return &resp, nil
}

func (s *bookingService) AddPayment(ctx context.Context, bookingID string, req *request.AddPaymentRequest) (*response.AddPaymentResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	id, err := parseID(bookingID, "booking")
	if err != nil {
		return nil, err
	}

	now := s.now()
	payment := &entity.Payment{
		BaseSimple:    entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		BookingID:     id,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		Status:        entity.PaymentStatusSuccess,
		Notes:         req.Notes,
	}

	var total, paid float64
	err = database.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		booking, err := s.repo.Booking.FindForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if booking == nil {
			return notFound("booking")
		}
		total = booking.TotalAmount

		if err := s.repo.Payment.CreateTx(ctx, tx, payment); err != nil {
			return err
		}

		if paid, err = s.repo.Payment.SumSuccessfulTx(ctx, tx, id); err != nil {
			return err
		}

		return s.repo.Booking.UpdatePaymentStatusTx(ctx, tx, id, entity.StoredPaymentStatus(total, paid))
	})
	if err != nil {
		return nil, s.txError("add payment", err)
	}

	s.log.Info("Payment added",
		zap.String("booking_id", id.String()),
		zap.Float64("amount", req.Amount),
		zap.Float64("paid", paid),
	)

	return &response.AddPaymentResponse{
		Payment:       response.PaymentToResponse(payment),
		TotalAmount:   total,
		PaidAmount:    paid,
		PaymentStatus: entity.DerivePaymentStatus(total, paid),
	}, nil
}
