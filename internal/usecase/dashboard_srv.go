package usecase

import (
	"context"
	"fmt"
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/internal/data/repository"
	"resort-admin/internal/dto/response"
	"resort-admin/pkg/utils"

	"go.uber.org/zap"
)

const (
	recentBookingsLimit = 5
	revenueTrendDays    = 7
)

type DashboardService interface {
	GetStats(ctx context.Context) (*response.DashboardStatsResponse, error)
	GetQuickStats(ctx context.Context) (*response.QuickStatsResponse, error)
	GetRecentBookings(ctx context.Context) ([]response.BookingResponse, error)
	GetRevenueTrend(ctx context.Context) ([]response.RevenuePointResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
		now:  time.Now,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*response.DashboardStatsResponse, error) {
	c, err := s.repo.Dashboard.Counts(ctx, s.now())
	if err != nil {
		s.log.Error("Failed to get dashboard counts", zap.Error(err))
		return nil, fmt.Errorf("get dashboard stats: %w", err)
	}

	return &response.DashboardStatsResponse{
		TotalBookings: c.TotalBookings,
		BookingChange: entity.PercentChange(float64(c.CurrentBookings), float64(c.PreviousBookings)),
		OccupancyRate: entity.OccupancyRate(c.OccupiedRooms, c.TotalRooms),
		OccupiedRooms: c.OccupiedRooms,
		TotalRooms:    c.TotalRooms,
		TotalRevenue:  c.TotalRevenue,
		RevenueChange: entity.PercentChange(c.CurrentRevenue, c.PreviousRevenue),
	}, nil
}

func (s *dashboardService) GetQuickStats(ctx context.Context) (*response.QuickStatsResponse, error) {
	q, err := s.repo.Dashboard.QuickStats(ctx, entity.DateOnly(s.now()))
	if err != nil {
		s.log.Error("Failed to get quick stats", zap.Error(err))
		return nil, fmt.Errorf("get quick stats: %w", err)
	}

	return &response.QuickStatsResponse{
		Accommodations: q.Accommodations,
		GalleryImages:  q.Gallery,
		Services:       q.Services,
		TodayBookings:  q.TodayBookings,
	}, nil
}

func (s *dashboardService) GetRecentBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindRecent(ctx, recentBookingsLimit)
	if err != nil {
		s.log.Error("Failed to get recent bookings", zap.Error(err))
		return nil, fmt.Errorf("get recent bookings: %w", err)
	}

	return response.BookingSummariesToResponse(bookings), nil
}

func (s *dashboardService) GetRevenueTrend(ctx context.Context) ([]response.RevenuePointResponse, error) {
	today := entity.DateOnly(s.now())
	from := today.AddDate(0, 0, -(revenueTrendDays - 1))

	rows, err := s.repo.Dashboard.RevenueByDay(ctx, from)
	if err != nil {
		s.log.Error("Failed to get revenue trend", zap.Error(err))
		return nil, fmt.Errorf("get revenue trend: %w", err)
	}

	trend := entity.FillRevenueTrend(rows, today, revenueTrendDays)
	points := make([]response.RevenuePointResponse, 0, len(trend))
	for _, d := range trend {
		points = append(points, response.RevenuePointResponse{
			Date:    d.Date.Format(utils.DateLayout),
			Revenue: d.Revenue,
		})
	}
	return points, nil
}
