package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/internal/data/repository"
	"resort-admin/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDashboardRepo struct {
	counts    *entity.DashboardCounts
	quick     *entity.QuickStats
	revenue   []entity.DailyRevenue
	trendFrom time.Time
}

func (f *fakeDashboardRepo) Counts(context.Context, time.Time) (*entity.DashboardCounts, error) {
	return f.counts, nil
}

func (f *fakeDashboardRepo) QuickStats(context.Context, time.Time) (*entity.QuickStats, error) {
	return f.quick, nil
}

func (f *fakeDashboardRepo) RevenueByDay(_ context.Context, from time.Time) ([]entity.DailyRevenue, error) {
	f.trendFrom = from
	return f.revenue, nil
}

func newTestDashboardService(repo *fakeDashboardRepo) *dashboardService {
	return &dashboardService{
		repo: &repository.Repository{Dashboard: repo},
		log:  zap.NewNop(),
		now:  func() time.Time { return fixedNow },
	}
}

func TestDashboardService_GetStats(t *testing.T) {
	svc := newTestDashboardService(&fakeDashboardRepo{counts: &entity.DashboardCounts{
		TotalBookings:    42,
		CurrentBookings:  12,
		PreviousBookings: 8,
		TotalRooms:       40,
		OccupiedRooms:    13,
		TotalRevenue:     250000,
		CurrentRevenue:   60000,
		PreviousRevenue:  0,
	}})

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &response.DashboardStatsResponse{
		TotalBookings: 42,
		BookingChange: 50,
		OccupancyRate: 33,
		OccupiedRooms: 13,
		TotalRooms:    40,
		TotalRevenue:  250000,
		RevenueChange: 100,
	}, stats)
}

func TestDashboardService_GetRevenueTrendFillsGaps(t *testing.T) {
	repo := &fakeDashboardRepo{revenue: []entity.DailyRevenue{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Revenue: 1200},
		{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Revenue: 300.5},
	}}
	svc := newTestDashboardService(repo)

	points, err := svc.GetRevenueTrend(context.Background())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC), repo.trendFrom)
	require.Len(t, points, 7)
	assert.Equal(t, response.RevenuePointResponse{Date: "2023-12-30", Revenue: 0}, points[0])
	assert.Equal(t, response.RevenuePointResponse{Date: "2024-01-01", Revenue: 1200}, points[2])
	assert.Equal(t, response.RevenuePointResponse{Date: "2024-01-05", Revenue: 300.5}, points[6])
}

type failingDashboardRepo struct{ fakeDashboardRepo }

func (failingDashboardRepo) QuickStats(context.Context, time.Time) (*entity.QuickStats, error) {
	return nil, errors.New("timeout")
}

func TestDashboardService_GetQuickStats(t *testing.T) {
	svc := newTestDashboardService(&fakeDashboardRepo{quick: &entity.QuickStats{
		Accommodations: 6, Gallery: 18, Services: 4, TodayBookings: 2,
	}})

	quick, err := svc.GetQuickStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(18), quick.GalleryImages)
	assert.Equal(t, int64(2), quick.TodayBookings)

	failing := &dashboardService{
		repo: &repository.Repository{Dashboard: &failingDashboardRepo{}},
		log:  zap.NewNop(),
		now:  func() time.Time { return fixedNow },
	}
	_, err = failing.GetQuickStats(context.Background())
	assert.Error(t, err)
}
