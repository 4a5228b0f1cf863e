package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resort-admin/internal/dto/request"
	"resort-admin/internal/dto/response"
	"resort-admin/internal/usecase"
	"resort-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "field validation",
			err:         &usecase.ValidationError{Fields: map[string]string{"images": "At least one image is required"}},
			wantCode:    http.StatusBadRequest,
			wantMessage: "Validation failed",
		},
		{
			name:        "plain validation",
			err:         fmt.Errorf("%w: check-out must be after check-in", usecase.ErrValidation),
			wantCode:    http.StatusBadRequest,
			wantMessage: "check-out must be after check-in",
		},
		{
			name:        "not found",
			err:         fmt.Errorf("%w: booking not found", usecase.ErrNotFound),
			wantCode:    http.StatusNotFound,
			wantMessage: "booking not found",
		},
		{
			name:        "conflict",
			err:         fmt.Errorf("%w: Coupon usage limit exceeded", usecase.ErrConflict),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Coupon usage limit exceeded",
		},
		{
			name:        "unauthorized",
			err:         fmt.Errorf("%w: invalid credentials", usecase.ErrUnauthorized),
			wantCode:    http.StatusUnauthorized,
			wantMessage: "invalid credentials",
		},
		{
			name:        "unexpected",
			err:         errors.New("pq: connection reset by peer"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tt.err, "test operation")

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decodeBody(t, rec)
			assert.False(t, body.Status)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestHandleServiceError_FieldErrorsInBody(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(rec, zap.NewNop(),
		&usecase.ValidationError{Fields: map[string]string{"images": "At least one image is required"}},
		"create accommodation")

	body := decodeBody(t, rec)
	fields, ok := body.Errors.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "At least one image is required", fields["images"])
}

func TestPaginationFrom(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3&limit=25", nil)
	p := paginationFrom(req.URL.Query())
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.PerPage)

	req = httptest.NewRequest(http.MethodGet, "/?per_page=5&limit=25&page=zero", nil)
	p = paginationFrom(req.URL.Query())
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 5, p.PerPage)

	p = paginationFrom(httptest.NewRequest(http.MethodGet, "/", nil).URL.Query())
	assert.Equal(t, request.PaginatedRequest{Page: 1, PerPage: 10}, p)
}

type fakeCouponService struct {
	usecase.CouponService

	gotCode   string
	gotAmount *float64
	err       error
}

func (f *fakeCouponService) ValidateCoupon(_ context.Context, code string, amount *float64) (*response.CouponValidationResponse, error) {
	f.gotCode, f.gotAmount = code, amount
	if f.err != nil {
		return nil, f.err
	}
	return &response.CouponValidationResponse{Code: code, DisplayName: "10% OFF"}, nil
}

func couponRouter(svc usecase.CouponService) http.Handler {
	h := NewCouponHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/coupons/validate", h.ValidateCoupon)
	return r
}

func TestCouponHandler_ValidateCoupon(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		svc := &fakeCouponService{}
		rec := httptest.NewRecorder()
		couponRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/coupons/validate", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decodeBody(t, rec).Message)
		assert.Empty(t, svc.gotCode)
	})

	t.Run("missing code", func(t *testing.T) {
		svc := &fakeCouponService{}
		rec := httptest.NewRecorder()
		couponRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/coupons/validate", strings.NewReader(`{"amount": 100}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Validation failed", body.Message)
		fields, ok := body.Errors.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "This field is required", fields["code"])
	})

	t.Run("valid code", func(t *testing.T) {
		svc := &fakeCouponService{}
		rec := httptest.NewRecorder()
		couponRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/coupons/validate", strings.NewReader(`{"code":"save10","amount":1000}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "save10", svc.gotCode)
		require.NotNil(t, svc.gotAmount)
		assert.Equal(t, 1000.0, *svc.gotAmount)

		body := decodeBody(t, rec)
		assert.True(t, body.Status)
		data, ok := body.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "10% OFF", data["display_name"])
	})

	t.Run("limit reached", func(t *testing.T) {
		svc := &fakeCouponService{err: fmt.Errorf("%w: Coupon usage limit exceeded", usecase.ErrConflict)}
		rec := httptest.NewRecorder()
		couponRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/coupons/validate", strings.NewReader(`{"code":"SAVE10"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Coupon usage limit exceeded", decodeBody(t, rec).Message)
		assert.Nil(t, svc.gotAmount)
	})
}

type fakeBookingService struct {
	usecase.BookingService

	got *request.BookingListRequest
}

func (f *fakeBookingService) ListBookings(_ context.Context, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	f.got = req
	return &response.PaginatedResponse[response.BookingResponse]{}, nil
}

func (f *fakeBookingService) GetBooking(_ context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	return nil, fmt.Errorf("%w: booking not found", usecase.ErrNotFound)
}

func TestBookingHandler_GetBookingsQuery(t *testing.T) {
	svc := &fakeBookingService{}
	h := NewBookingHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/bookings", h.GetBookings)
	r.Get("/bookings/{id}", h.GetBookingByID)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/bookings?page=2&limit=5&status=confirmed&payment_status=Partial&start_date=2024-01-01", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, 2, svc.got.Page)
	assert.Equal(t, 5, svc.got.PerPage)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "confirmed", *svc.got.Status)
	require.NotNil(t, svc.got.PaymentStatus)
	assert.Equal(t, "Partial", *svc.got.PaymentStatus)
	require.NotNil(t, svc.got.StartDate)
	assert.Nil(t, svc.got.EndDate)
	assert.Nil(t, svc.got.Search)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/"+"0b7d5c1e-4f0a-4a55-9a38-1c2b8f3e9d10", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "booking not found", decodeBody(t, rec).Message)
}

type stubHealthService struct {
	status string
}

func (s stubHealthService) Check(context.Context) *response.HealthResponse {
	return &response.HealthResponse{Status: s.status, Service: "resort-admin", Timestamp: time.Now()}
}

func TestHealthHandler(t *testing.T) {
	ok := NewHealthHandler(stubHealthService{status: "ok"}, zap.NewNop())
	degraded := NewHealthHandler(stubHealthService{status: "degraded"}, zap.NewNop())

	rec := httptest.NewRecorder()
	ok.Live(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	ok.Check(rec, httptest.NewRequest(http.MethodGet, "/admin/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	degraded.Check(rec, httptest.NewRequest(http.MethodGet, "/admin/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Service degraded", decodeBody(t, rec).Message)
}
