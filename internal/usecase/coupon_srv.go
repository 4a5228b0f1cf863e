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
	"resort-admin/pkg/utils"

	"go.uber.org/zap"
)

type CouponService interface {
	GetCoupons(ctx context.Context) ([]response.CouponResponse, error)
	GetCouponByID(ctx context.Context, couponID string) (*response.CouponResponse, error)

	CreateCoupon(ctx context.Context, req *request.CreateCouponRequest) (*response.CouponResponse, error)
	UpdateCoupon(ctx context.Context, couponID string, req *request.UpdateCouponRequest) (*response.CouponResponse, error)
	ToggleCoupon(ctx context.Context, couponID string) (*response.ToggleResponse, error)
	DeleteCoupon(ctx context.Context, couponID string) error

	// ValidateCoupon checks a code without consuming it.
	ValidateCoupon(ctx context.Context, code string, amount *float64) (*response.CouponValidationResponse, error)
	RedeemCoupon(ctx context.Context, code string) error
}

type couponService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewCouponService(repo *repository.Repository, log *zap.Logger) CouponService {
	return &couponService{
		repo: repo,
		log:  log.With(zap.String("service", "coupon")),
		now:  time.Now,
	}
}

func (s *couponService) GetCoupons(ctx context.Context) ([]response.CouponResponse, error) {
	coupons, err := s.repo.Coupon.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get coupons", zap.Error(err))
		return nil, fmt.Errorf("get coupons: %w", err)
	}

	today := s.now()
	data := make([]response.CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		data = append(data, response.CouponToResponse(c, today))
	}
	return data, nil
}

func (s *couponService) find(ctx context.Context, couponID string) (*entity.Coupon, error) {
	id, err := parseID(couponID, "coupon")
	if err != nil {
		return nil, err
	}

	coupon, err := s.repo.Coupon.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find coupon: %w", err)
	}
	if coupon == nil {
		return nil, notFound("coupon")
	}
	return coupon, nil
}

func (s *couponService) GetCouponByID(ctx context.Context, couponID string) (*response.CouponResponse, error) {
	coupon, err := s.find(ctx, couponID)
	if err != nil {
		return nil, err
	}

	resp := response.CouponToResponse(coupon, s.now())
	return &resp, nil
}

func couponWriteError(op string, err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return conflict("coupon code already exists")
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *couponService) CreateCoupon(ctx context.Context, req *request.CreateCouponRequest) (*response.CouponResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create coupon validation failed", zap.Error(err))
		return nil, err
	}

	expiry, err := utils.ParseDate(req.ExpiryDate)
	if err != nil {
		return nil, invalid("invalid expiry_date")
	}

	discountType := entity.DiscountPercentage
	if req.DiscountType != "" {
		discountType = entity.DiscountType(req.DiscountType)
	}
	if discountType == entity.DiscountPercentage && req.DiscountValue > 100 {
		return nil, invalid("percentage discount cannot exceed 100")
	}

	coupon := &entity.Coupon{
		Base:          entity.NewBase(s.now()),
		Code:          entity.NormalizeCouponCode(req.Code),
		DiscountValue: req.DiscountValue,
		DiscountType:  discountType,
		MaxDiscount:   req.MaxDiscount,
		UsageLimit:    req.UsageLimit,
		Active:        true,
		ExpiryDate:    expiry,
	}
	if req.MinAmount != nil {
		coupon.MinAmount = *req.MinAmount
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}
	if coupon.Code == "" {
		return nil, invalid("code is required")
	}

	if err := s.repo.Coupon.Create(ctx, coupon); err != nil {
		return nil, couponWriteError("create coupon", err)
	}

	s.log.Info("Coupon created", zap.String("coupon_id", coupon.ID.String()), zap.String("code", coupon.Code))

	resp := response.CouponToResponse(coupon, s.now())
	return &resp, nil
}

func (s *couponService) UpdateCoupon(ctx context.Context, couponID string, req *request.UpdateCouponRequest) (*response.CouponResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update coupon validation failed", zap.Error(err))
		return nil, err
	}

	if req.Code == nil && req.DiscountValue == nil && req.DiscountType == nil && req.MinAmount == nil &&
		req.MaxDiscount == nil && req.UsageLimit == nil && req.Active == nil && req.ExpiryDate == nil {
		return nil, invalid("no fields to update")
	}

	coupon, err := s.find(ctx, couponID)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		coupon.Code = entity.NormalizeCouponCode(*req.Code)
	}
	if req.DiscountValue != nil {
		coupon.DiscountValue = *req.DiscountValue
	}
	if req.DiscountType != nil {
		coupon.DiscountType = entity.DiscountType(*req.DiscountType)
	}
	if req.MinAmount != nil {
		coupon.MinAmount = *req.MinAmount
	}
	if req.MaxDiscount != nil {
		coupon.MaxDiscount = req.MaxDiscount
	}
	if req.UsageLimit != nil {
		coupon.UsageLimit = req.UsageLimit
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}
	if req.ExpiryDate != nil {
		expiry, err := utils.ParseDate(*req.ExpiryDate)
		if err != nil {
			return nil, invalid("invalid expiry_date")
		}
		coupon.ExpiryDate = expiry
	}
	if coupon.DiscountType == entity.DiscountPercentage && coupon.DiscountValue > 100 {
		return nil, invalid("percentage discount cannot exceed 100")
	}
	coupon.UpdatedAt = s.now()

	if err := s.repo.Coupon.Update(ctx, coupon); err != nil {
		return nil, couponWriteError("update coupon", err)
	}

	s.log.Info("Coupon updated", zap.String("coupon_id", coupon.ID.String()))

	resp := response.CouponToResponse(coupon, s.now())
	return &resp, nil
}

func (s *couponService) ToggleCoupon(ctx context.Context, couponID string) (*response.ToggleResponse, error) {
	id, err := parseID(couponID, "coupon")
	if err != nil {
		return nil, err
	}

	active, err := s.repo.Coupon.Toggle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle coupon: %w", err)
	}

	s.log.Info("Coupon toggled", zap.String("coupon_id", id.String()), zap.Bool("active", active))
	return &response.ToggleResponse{ID: id.String(), Active: active}, nil
}

func (s *couponService) DeleteCoupon(ctx context.Context, couponID string) error {
	coupon, err := s.find(ctx, couponID)
	if err != nil {
		return err
	}

	if coupon.UsedCount > 0 {
		return conflict("cannot delete coupon %s: it has been used %d time(s)", coupon.Code, coupon.UsedCount)
	}

	if err := s.repo.Coupon.Delete(ctx, coupon.ID); err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}

	s.log.Info("Coupon deleted", zap.String("coupon_id", coupon.ID.String()), zap.String("code", coupon.Code))
	return nil
}

func (s *couponService) ValidateCoupon(ctx context.Context, code string, amount *float64) (*response.CouponValidationResponse, error) {
	code = entity.NormalizeCouponCode(code)
	if code == "" {
		return nil, invalid("coupon code is required")
	}
	if amount != nil && *amount < 0 {
		return nil, invalid("amount must not be negative")
	}

	now := s.now()
	coupon, err := s.repo.Coupon.FindRedeemableByCode(ctx, code, entity.DateOnly(now))
	if err != nil {
		return nil, fmt.Errorf("find coupon: %w", err)
	}
	if coupon == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, "Invalid or expired coupon code")
	}

	if err := coupon.CheckRedeemable(now, amount); err != nil {
		switch {
		case errors.Is(err, entity.ErrCouponLimitExceeded):
			return nil, conflict("Coupon usage limit exceeded")
		case errors.Is(err, entity.ErrCouponMinAmount):
			return nil, invalid("Minimum order amount of ₹%s required", formatMoney(coupon.MinAmount))
		default:
			return nil, fmt.Errorf("%w: %s", ErrNotFound, "Invalid or expired coupon code")
		}
	}

	resp := response.CouponToValidationResponse(coupon, amount)
	return &resp, nil
}

func (s *couponService) RedeemCoupon(ctx context.Context, code string) error {
	code = entity.NormalizeCouponCode(code)
	if code == "" {
		return invalid("coupon code is required")
	}

	redeemed, err := s.repo.Coupon.Redeem(ctx, code, entity.DateOnly(s.now()))
	if err != nil {
		return fmt.Errorf("redeem coupon: %w", err)
	}
	if !redeemed {
		return conflict("coupon %s cannot be redeemed", code)
	}

	s.log.Info("Coupon redeemed", zap.String("code", code))
	return nil
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%g", v)
}
