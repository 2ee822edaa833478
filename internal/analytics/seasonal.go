package analytics

import (
	"time"

	"github.com/dineforge/restalytics/internal/models"
)

// Seasonal analyzes within-year ordering behavior: month-by-month and
// season-by-season order counts and revenue, plus a retention proxy from
// distinct customers per loyalty group inside the filtered window.
type Seasonal struct{}

func (Seasonal) Type() string { return TypeSeasonal }

func (Seasonal) Analyze(records []models.OrderRecord) models.Result {
	if len(records) == 0 {
		return noDataResult()
	}

	monthlyOrders := GroupCount(records, monthKey)
	monthlyRevenue := GroupSum(records, monthKey, totalPrice)
	seasonalOrders := GroupCount(records, seasonKey)
	seasonalRevenue := GroupSum(records, seasonKey, totalPrice)

	retention := GroupDistinctCount(records,
		func(r *models.OrderRecord) (string, bool) { return r.LoyaltyGroup, true },
		func(r *models.OrderRecord) string { return r.CustomerID },
	)

	var totalRevenue float64
	for i := range records {
		totalRevenue += records[i].TotalPrice
	}

	return models.Result{
		"monthlyOrders":     monthNamed(monthlyOrders, func(v float64) any { return int(v) }),
		"monthlyRevenue":    monthNamed(monthlyRevenue, func(v float64) any { return v }),
		"seasonalOrders":    counterToStrMap(seasonalOrders),
		"seasonalRevenue":   counterToFloatMap(seasonalRevenue),
		"seasonalRetention": counterToStrMap(retention),
		"totalOrders":       len(records),
		"totalRevenue":      totalRevenue,
	}
}

func seasonKey(r *models.OrderRecord) (string, bool) {
	if !r.TimeValid {
		return "", false
	}
	return models.SeasonOf(r.Month).Label(), true
}

// monthNamed relabels month-number keys with month names for display.
func monthNamed(c *Counter[int], convert func(float64) any) models.Result {
	out := models.Result{}
	for _, m := range c.Keys() {
		out[time.Month(m).String()] = convert(c.Get(m))
	}
	return out
}
