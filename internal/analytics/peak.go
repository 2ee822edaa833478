package analytics

import (
	"fmt"

	"github.com/dineforge/restalytics/internal/models"
)

var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// PeakDining analyzes when the chain is busy: hourly and daily order
// patterns, peak buckets, busy/slow hours, a per-outlet hourly heatmap and
// per-branch summaries.
type PeakDining struct{}

func (PeakDining) Type() string { return TypePeakDining }

func (PeakDining) Analyze(records []models.OrderRecord) models.Result {
	if len(records) == 0 {
		return noDataResult()
	}

	hourly := NewCounter[int]()
	for h := 0; h < 24; h++ {
		hourly.Add(h, 0)
	}
	daily := NewCounter[string]()
	for _, d := range weekdayNames {
		daily.Add(d, 0)
	}

	timed := 0
	for i := range records {
		r := &records[i]
		if !r.TimeValid {
			continue
		}
		timed++
		hourly.Add(r.Hour, 1)
		daily.Add(r.DayOfWeek, 1)
	}
	if timed == 0 {
		return models.ErrorResult("order timestamps unavailable for selected filters")
	}

	peakHour, _ := hourly.Max()
	peakDay, _ := daily.Max()
	busy, slow := splitBusySlowHours(hourly)

	return models.Result{
		"hourlyPatterns": counterToIntMap(hourly),
		"dailyPatterns":  counterToStrMap(daily),
		"peakHour":       peakHour,
		"peakDay":        peakDay,
		"busyHours":      busy,
		"slowHours":      slow,
		"hourlyHeatmap":  hourlyHeatmap(records),
		"peakHourTables": models.Result{
			"overallPeakHours": peakHourTable(hourly),
		},
		"branchSummaries": branchSummaries(records),
		"totalOrders":     len(records),
	}
}

// splitBusySlowHours classifies hours against the mean count across hours
// with nonzero traffic: strictly above the mean is busy, nonzero strictly
// below is slow.
func splitBusySlowHours(hourly *Counter[int]) (busy, slow []int) {
	var sum float64
	nonzero := 0
	for h := 0; h < 24; h++ {
		if v := hourly.Get(h); v > 0 {
			sum += v
			nonzero++
		}
	}
	mean := Ratio(sum, float64(nonzero))
	busy = []int{}
	slow = []int{}
	for h := 0; h < 24; h++ {
		v := hourly.Get(h)
		switch {
		case v > mean:
			busy = append(busy, h)
		case v > 0 && v < mean:
			slow = append(slow, h)
		}
	}
	return busy, slow
}

// hourlyHeatmap counts orders per hour for each outlet, outlets in
// first-seen order. Only hours with traffic appear.
func hourlyHeatmap(records []models.OrderRecord) models.Result {
	heatmap := models.Result{}
	for _, outlet := range outletNames(records) {
		counts := map[int]int{}
		for i := range records {
			r := &records[i]
			if r.OutletName == outlet && r.TimeValid {
				counts[r.Hour]++
			}
		}
		heatmap[outlet] = counts
	}
	return heatmap
}

// peakHourTable ranks the ten busiest hours with display time ranges.
func peakHourTable(hourly *Counter[int]) []models.Result {
	rows := []models.Result{}
	for _, e := range hourly.TopN(0) {
		if e.Value == 0 || len(rows) == 10 {
			break
		}
		rows = append(rows, models.Result{
			"hour":       e.Key,
			"orderCount": int(e.Value),
			"timeRange":  fmt.Sprintf("%02d:00 - %02d:00", e.Key, e.Key+1),
		})
	}
	return rows
}

// branchSummaries computes per-outlet order, revenue, customer and peak
// hour figures, each over that outlet's subset alone.
func branchSummaries(records []models.OrderRecord) models.Result {
	summaries := models.Result{}
	for _, outlet := range outletNames(records) {
		var subset []models.OrderRecord
		for i := range records {
			if records[i].OutletName == outlet {
				subset = append(subset, records[i])
			}
		}

		var revenue float64
		hourly := NewCounter[int]()
		for i := range subset {
			revenue += subset[i].TotalPrice
			if subset[i].TimeValid {
				hourly.Add(subset[i].Hour, 1)
			}
		}
		peakHour, _ := hourly.Max()

		summaries[outlet] = models.Result{
			"totalOrders":     len(subset),
			"totalRevenue":    revenue,
			"uniqueCustomers": DistinctCount(subset, func(r *models.OrderRecord) string { return r.CustomerID }),
			"avgOrderValue":   Ratio(revenue, float64(len(subset))),
			"peakHour":        peakHour,
		}
	}
	return summaries
}

func outletNames(records []models.OrderRecord) []string {
	seen := make(map[string]bool)
	var names []string
	for i := range records {
		if name := records[i].OutletName; !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func counterToIntMap(c *Counter[int]) map[int]int {
	out := make(map[int]int, c.Len())
	for _, k := range c.Keys() {
		out[k] = int(c.Get(k))
	}
	return out
}

func counterToStrMap(c *Counter[string]) map[string]int {
	out := make(map[string]int, c.Len())
	for _, k := range c.Keys() {
		out[k] = int(c.Get(k))
	}
	return out
}
