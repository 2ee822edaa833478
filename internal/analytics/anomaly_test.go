package analytics

import (
	"testing"

	"github.com/dineforge/restalytics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnomalyFlagsHighVolumeDate(t *testing.T) {
	records := dailyOrders([]int{9, 9, 9, 9, 9, 50})

	result := AnomalyDetector{}.Analyze(records)
	require.False(t, result.IsError())

	alerts := result["alertLogs"].([]models.Result)
	require.Len(t, alerts, 1)
	assert.Equal(t, "High Order Volume", alerts[0]["type"])
	assert.Equal(t, SeverityHigh, alerts[0]["severity"])
	assert.Equal(t, "2025-03-06", alerts[0]["date"])
	assert.Equal(t, "Unusually high order volume on 2025-03-06: 50 orders", alerts[0]["message"])
}

func TestAnomalyFlagsLowVolumeDate(t *testing.T) {
	records := dailyOrders([]int{50, 50, 50, 50, 50, 50, 50, 50, 50, 1})

	alerts := AnomalyDetector{}.Analyze(records)["alertLogs"].([]models.Result)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Low Order Volume", alerts[0]["type"])
	assert.Equal(t, SeverityMedium, alerts[0]["severity"])
}

func TestAnomalyZeroDeviationNeverAlerts(t *testing.T) {
	records := dailyOrders([]int{5, 5, 5, 5})

	alerts := AnomalyDetector{}.Analyze(records)["alertLogs"].([]models.Result)
	assert.Empty(t, alerts, "identical daily counts have zero deviation")
}

func TestAnomalySingleDateNeverAlerts(t *testing.T) {
	records := dailyOrders([]int{42})

	alerts := AnomalyDetector{}.Analyze(records)["alertLogs"].([]models.Result)
	assert.Empty(t, alerts, "one date gives no baseline to deviate from")
}

func TestAnomalyNoData(t *testing.T) {
	result := AnomalyDetector{}.Analyze(nil)
	assert.True(t, result.IsError())
}

func TestMeanStdUsesSampleDeviation(t *testing.T) {
	daily := NewCounter[string]()
	daily.Add("2025-03-01", 2)
	daily.Add("2025-03-02", 4)
	daily.Add("2025-03-03", 6)

	mean, std := meanStd(daily, []string{"2025-03-01", "2025-03-02", "2025-03-03"})
	assert.Equal(t, 4.0, mean)
	assert.Equal(t, 2.0, std, "sample deviation divides by n-1")
}
