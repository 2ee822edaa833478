package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/dineforge/restalytics/internal/models"
)

const (
	forecastPeriods     = 6
	defaultGrowthRate   = 0.05
	msgNoForecastData   = "No data available for forecasting"
	msgNoForecastMonths = "no monthly revenue history for forecasting"
)

// ForecastRevenue projects the next six months of revenue by compounding
// the last observed month with the mean month-over-month growth rate. This
// is a deterministic trend extrapolation, not a statistical model.
func ForecastRevenue(records []models.OrderRecord) models.Result {
	if len(records) == 0 {
		return models.ErrorResult(msgNoForecastData)
	}

	monthly := GroupSum(records, yearMonthKey, totalPrice)
	if monthly.Len() == 0 {
		return models.ErrorResult(msgNoForecastMonths)
	}

	months := append([]string(nil), monthly.Keys()...)
	sort.Strings(months)
	series := make([]float64, len(months))
	for i, m := range months {
		series[i] = monthly.Get(m)
	}

	growth := meanGrowthRate(series)
	base := series[len(series)-1]

	forecast := make([]models.Result, 0, forecastPeriods)
	for i := 1; i <= forecastPeriods; i++ {
		forecast = append(forecast, models.Result{
			"month":             fmt.Sprintf("Month +%d", i),
			"forecastedRevenue": Round2(base * math.Pow(1+growth, float64(i))),
			"confidence":        math.Max(0.6, 0.9-0.05*float64(i)),
		})
	}

	return models.Result{
		"forecast":    forecast,
		"growthRate":  growth,
		"baseRevenue": base,
	}
}

// meanGrowthRate averages the period-over-period percentage change across
// consecutive months. Under two months of history, or no usable pair, a
// fixed 5% default applies. Pairs starting from a zero month are skipped
// so the rate stays finite.
func meanGrowthRate(series []float64) float64 {
	if len(series) < 2 {
		return defaultGrowthRate
	}
	var sum float64
	pairs := 0
	for i := 1; i < len(series); i++ {
		if series[i-1] == 0 {
			continue
		}
		sum += (series[i] - series[i-1]) / series[i-1]
		pairs++
	}
	if pairs == 0 {
		return defaultGrowthRate
	}
	return sum / float64(pairs)
}
