package analytics

import (
	"sort"

	"github.com/dineforge/restalytics/internal/models"
)

const growthRateNA = "N/A"

// Revenue summarizes revenue: totals, average order value, daily and
// monthly series, half-split growth rate, payment methods and a per-outlet
// comparison.
type Revenue struct{}

func (Revenue) Type() string { return TypeRevenue }

func (Revenue) Analyze(records []models.OrderRecord) models.Result {
	if len(records) == 0 {
		return noDataResult()
	}

	var totalRevenue float64
	for i := range records {
		totalRevenue += records[i].TotalPrice
	}
	totalOrders := DistinctCount(records, func(r *models.OrderRecord) string { return r.OrderID })

	daily := GroupSum(records, dateKey, totalPrice)
	monthly := GroupSum(records, yearMonthKey, totalPrice)

	return models.Result{
		"revenueSummary": models.Result{
			"totalRevenue":      totalRevenue,
			"totalOrders":       totalOrders,
			"averageOrderValue": Ratio(totalRevenue, float64(totalOrders)),
			"revenueGrowthRate": growthRate(chronologicalValues(daily)),
		},
		"dailyRevenue":   counterToFloatMap(daily),
		"monthlyRevenue": counterToFloatMap(monthly),
		"paymentMethods": counterToFloatMap(GroupSum(records, paymentKey, totalPrice)),
		"outletRevenue":  outletRevenue(records),
	}
}

// growthRate compares the first and second half of a chronologically
// ordered revenue series: (second - first) / first * 100, rounded to two
// decimals. Fewer than two periods, or a zero first half, reports the
// explicit "N/A" sentinel to distinguish missing trend data from a flat
// trend.
func growthRate(series []float64) any {
	if len(series) < 2 {
		return growthRateNA
	}
	mid := len(series) / 2
	var first, second float64
	for _, v := range series[:mid] {
		first += v
	}
	for _, v := range series[mid:] {
		second += v
	}
	if first == 0 {
		return growthRateNA
	}
	return Round2((second - first) / first * 100)
}

// outletRevenue compares outlets by revenue, distinct orders and average
// order value, in first-seen outlet order.
func outletRevenue(records []models.OrderRecord) []models.Result {
	revenue := GroupSum(records, outletKey, totalPrice)
	orders := GroupDistinctCount(records, outletKey, func(r *models.OrderRecord) string { return r.OrderID })

	rows := []models.Result{}
	for _, outlet := range revenue.Keys() {
		rev := revenue.Get(outlet)
		count := orders.Get(outlet)
		rows = append(rows, models.Result{
			"outletName":    outlet,
			"revenue":       rev,
			"orderCount":    int(count),
			"avgOrderValue": Ratio(rev, count),
		})
	}
	return rows
}

func totalPrice(r *models.OrderRecord) float64 { return r.TotalPrice }

func dateKey(r *models.OrderRecord) (string, bool) {
	return r.Date, r.TimeValid
}

func yearMonthKey(r *models.OrderRecord) (string, bool) {
	if !r.TimeValid {
		return "", false
	}
	return r.OrderPlacedAt.Format("2006-01"), true
}

func monthKey(r *models.OrderRecord) (int, bool) {
	return r.Month, r.TimeValid
}

func paymentKey(r *models.OrderRecord) (string, bool) {
	return r.PaymentMethod, true
}

func outletKey(r *models.OrderRecord) (string, bool) {
	return r.OutletName, true
}

// chronologicalValues returns a counter's values ordered by ascending key.
func chronologicalValues(c *Counter[string]) []float64 {
	keys := append([]string(nil), c.Keys()...)
	sort.Strings(keys)
	values := make([]float64, len(keys))
	for i, k := range keys {
		values[i] = c.Get(k)
	}
	return values
}

func counterToFloatMap(c *Counter[string]) map[string]float64 {
	out := make(map[string]float64, c.Len())
	for _, k := range c.Keys() {
		out[k] = c.Get(k)
	}
	return out
}
