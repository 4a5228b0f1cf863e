package entity

import (
	"math"
	"time"
)

type DashboardCounts struct {
	TotalBookings    int64
	CurrentBookings  int64
	PreviousBookings int64
	TotalRooms       int64
	OccupiedRooms    int64
	TotalRevenue     float64
	CurrentRevenue   float64
	PreviousRevenue  float64
}

type QuickStats struct {
	Accommodations int64
	Gallery        int64
	Services       int64
	TodayBookings  int64
}

type AccommodationStats struct {
	Total          int64
	Available      int64
	Occupied       int64
	MonthlyRevenue float64
	PopularTypes   []TypeCount
}

type TypeCount struct {
	Type  string
	Count int64
}

type DailyRevenue struct {
	Date    time.Time
	Revenue float64
}

// PercentChange is a whole-number percentage. A zero baseline reports 100 when
// current is positive and 0 otherwise.
func PercentChange(current, previous float64) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round((current - previous) / previous * 100))
}

// OccupancyRate is occupied / total as a rounded percentage.
func OccupancyRate(occupied, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(total) * 100))
}

// FillRevenueTrend returns one entry per day for the `days` days ending on
// today, using 0 where rows has no data.
func FillRevenueTrend(rows []DailyRevenue, today time.Time, days int) []DailyRevenue {
	byDay := make(map[time.Time]float64, len(rows))
	for _, r := range rows {
		byDay[DateOnly(r.Date)] += r.Revenue
	}

	end := DateOnly(today)
	out := make([]DailyRevenue, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		out = append(out, DailyRevenue{Date: day, Revenue: byDay[day]})
	}
	return out
}
