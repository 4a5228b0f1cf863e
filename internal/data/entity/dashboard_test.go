package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillRevenueTrend_FillsMissingDays(t *testing.T) {
	today := day("2024-05-10").Add(13 * time.Hour)
	rows := []DailyRevenue{
		{Date: day("2024-05-05"), Revenue: 1200},
		{Date: day("2024-05-10"), Revenue: 300},
		{Date: day("2024-04-01"), Revenue: 9999},
	}

	trend := FillRevenueTrend(rows, today, 7)

	require.Len(t, trend, 7)
	assert.Equal(t, day("2024-05-04"), trend[0].Date)
	assert.Equal(t, day("2024-05-10"), trend[6].Date)
	assert.Equal(t, 0.0, trend[0].Revenue)
	assert.Equal(t, 1200.0, trend[1].Revenue)
	assert.Equal(t, 300.0, trend[6].Revenue)
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 50, PercentChange(150, 100))
	assert.Equal(t, -25, PercentChange(75, 100))
	assert.Equal(t, 100, PercentChange(10, 0))
	assert.Equal(t, 0, PercentChange(0, 0))
}

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, 0, OccupancyRate(5, 0))
	assert.Equal(t, 33, OccupancyRate(1, 3))
	assert.Equal(t, 100, OccupancyRate(4, 4))
}

func TestSanitizeCategory(t *testing.T) {
	assert.Equal(t, "beach-view_2", SanitizeCategory("beach-view_2"))
	assert.Equal(t, "etcpasswd", SanitizeCategory("../etc/passwd"))
	assert.Equal(t, CategoryGeneral, SanitizeCategory("../"))
}
