package response

import "time"

type DashboardStatsResponse struct {
	TotalBookings int64   `json:"total_bookings"`
	BookingChange int     `json:"booking_change"`
	OccupancyRate int     `json:"occupancy_rate"`
	OccupiedRooms int64   `json:"occupied_rooms"`
	TotalRooms    int64   `json:"total_rooms"`
	TotalRevenue  float64 `json:"total_revenue"`
	RevenueChange int     `json:"revenue_change"`
}

type QuickStatsResponse struct {
	Accommodations int64 `json:"accommodations"`
	GalleryImages  int64 `json:"gallery_images"`
	Services       int64 `json:"services"`
	TodayBookings  int64 `json:"today_bookings"`
}

type RevenuePointResponse struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}
