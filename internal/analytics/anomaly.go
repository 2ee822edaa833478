package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/dineforge/restalytics/internal/models"
)

const (
	SeverityHigh   = "HIGH"
	SeverityMedium = "MEDIUM"
)

// AnomalyDetector flags dates whose order volume falls outside two sample
// standard deviations of the per-date mean. Volume is counted in line-item
// rows, not distinct orders; that matches the historical definition and is
// deliberately left unchanged.
type AnomalyDetector struct{}

func (AnomalyDetector) Type() string { return TypeAnomaly }

func (AnomalyDetector) Analyze(records []models.OrderRecord) models.Result {
	if len(records) == 0 {
		return noDataResult()
	}

	daily := GroupCount(records, dateKey)

	dates := append([]string(nil), daily.Keys()...)
	sort.Strings(dates)

	alerts := []models.Result{}
	if len(dates) >= 2 {
		mean, std := meanStd(daily, dates)
		for _, date := range dates {
			count := int(daily.Get(date))
			switch {
			case float64(count) > mean+2*std:
				alerts = append(alerts, models.Result{
					"type":     "High Order Volume",
					"message":  fmt.Sprintf("Unusually high order volume on %s: %d orders", date, count),
					"severity": SeverityHigh,
					"date":     date,
				})
			case float64(count) < mean-2*std:
				alerts = append(alerts, models.Result{
					"type":     "Low Order Volume",
					"message":  fmt.Sprintf("Unusually low order volume on %s: %d orders", date, count),
					"severity": SeverityMedium,
					"date":     date,
				})
			}
		}
	}

	// Bounded output: only the ten most recent alerts in date order.
	if len(alerts) > 10 {
		alerts = alerts[len(alerts)-10:]
	}

	return models.Result{"alertLogs": alerts}
}

// meanStd computes the mean and sample standard deviation of the per-date
// counts. With identical counts everywhere the deviation is zero and no
// alert can fire, by construction.
func meanStd(daily *Counter[string], dates []string) (mean, std float64) {
	n := float64(len(dates))
	for _, d := range dates {
		mean += daily.Get(d)
	}
	mean /= n

	var sq float64
	for _, d := range dates {
		diff := daily.Get(d) - mean
		sq += diff * diff
	}
	std = math.Sqrt(sq / (n - 1))
	return mean, std
}
