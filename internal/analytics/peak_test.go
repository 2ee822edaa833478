package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/dineforge/restalytics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeakDiningHourlyPatternsCoverAllHours(t *testing.T) {
	records := []models.OrderRecord{
		rec(withPlacedAt(time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC))), // Monday
	}

	result := PeakDining{}.Analyze(records)
	require.False(t, result.IsError())

	hourly := result["hourlyPatterns"].(map[int]int)
	assert.Len(t, hourly, 24, "every hour appears, zero or not")
	assert.Equal(t, 1, hourly[12])
	assert.Equal(t, 0, hourly[3])

	daily := result["dailyPatterns"].(map[string]int)
	assert.Len(t, daily, 7)
	assert.Equal(t, 1, daily["Monday"])
}

func TestPeakDiningPeaks(t *testing.T) {
	var records []models.OrderRecord
	add := func(n, hour, day int) {
		for i := 0; i < n; i++ {
			records = append(records, rec(
				withOrder(fmt.Sprintf("order-%d-%d-%d", hour, day, i)),
				withPlacedAt(time.Date(2025, 1, day, hour, 0, 0, 0, time.UTC)),
			))
		}
	}
	add(5, 19, 6) // Monday dinner rush
	add(2, 12, 6)
	add(1, 9, 7) // Tuesday

	result := PeakDining{}.Analyze(records)
	assert.Equal(t, 19, result["peakHour"])
	assert.Equal(t, "Monday", result["peakDay"])
	assert.Equal(t, 8, result["totalOrders"])

	// mean over nonzero hours is (5+2+1)/3; only 19 exceeds it
	assert.Equal(t, []int{19}, result["busyHours"])
	assert.Equal(t, []int{9, 12}, result["slowHours"])
}

func TestPeakDiningTimestamplessOnly(t *testing.T) {
	records := []models.OrderRecord{rec(withNoTimestamp())}
	result := PeakDining{}.Analyze(records)
	assert.True(t, result.IsError())
}

func TestPeakDiningHeatmapAndBranchSummaries(t *testing.T) {
	records := []models.OrderRecord{
		rec(withOrder("o1"), withOutlet("a", "Alpha"), withTotal(100),
			withPlacedAt(time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC))),
		rec(withOrder("o2"), withOutlet("a", "Alpha"), withTotal(50), withCustomer("cust-2"),
			withPlacedAt(time.Date(2025, 1, 6, 12, 30, 0, 0, time.UTC))),
		rec(withOrder("o3"), withOutlet("b", "Beta"), withTotal(75),
			withPlacedAt(time.Date(2025, 1, 6, 19, 0, 0, 0, time.UTC))),
	}

	result := PeakDining{}.Analyze(records)

	heatmap := result["hourlyHeatmap"].(models.Result)
	assert.Equal(t, map[int]int{12: 2}, heatmap["Alpha"])
	assert.Equal(t, map[int]int{19: 1}, heatmap["Beta"])

	summaries := result["branchSummaries"].(models.Result)
	alpha := summaries["Alpha"].(models.Result)
	assert.Equal(t, 2, alpha["totalOrders"])
	assert.Equal(t, 150.0, alpha["totalRevenue"])
	assert.Equal(t, 2, alpha["uniqueCustomers"])
	assert.Equal(t, 75.0, alpha["avgOrderValue"])
	assert.Equal(t, 12, alpha["peakHour"])
}

func TestPeakHourTableRanksAndFormats(t *testing.T) {
	hourly := NewCounter[int]()
	for h := 0; h < 24; h++ {
		hourly.Add(h, 0)
	}
	hourly.Add(19, 7)
	hourly.Add(12, 3)

	table := peakHourTable(hourly)
	require.Len(t, table, 2, "zero-count hours never make the table")
	assert.Equal(t, 19, table[0]["hour"])
	assert.Equal(t, "19:00 - 20:00", table[0]["timeRange"])
	assert.Equal(t, 7, table[0]["orderCount"])
	assert.Equal(t, 12, table[1]["hour"])
}

func TestPeakDiningNoData(t *testing.T) {
	assert.True(t, PeakDining{}.Analyze(nil).IsError())
}
