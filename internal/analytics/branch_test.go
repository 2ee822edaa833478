package analytics

import (
	"testing"

	"github.com/dineforge/restalytics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchRankingsOrderedByRevenue(t *testing.T) {
	records := []models.OrderRecord{
		rec(withOrder("o1"), withOutlet("a", "Alpha"), withTotal(100)),
		rec(withOrder("o2"), withOutlet("b", "Beta"), withTotal(300)),
		rec(withOrder("o3"), withOutlet("a", "Alpha"), withTotal(50), withCustomer("cust-2")),
	}

	result := BranchPerformance{}.Analyze(records)
	require.False(t, result.IsError())

	rankings := result["branchRankings"].([]models.Result)
	require.Len(t, rankings, 2)

	assert.Equal(t, "Beta", rankings[0]["branchName"])
	assert.Equal(t, 300.0, rankings[0]["revenue"])

	alpha := rankings[1]
	assert.Equal(t, "Alpha", alpha["branchName"])
	assert.Equal(t, 150.0, alpha["revenue"])
	assert.Equal(t, 2, alpha["orderCount"])
	assert.Equal(t, 2, alpha["customerCount"])
	assert.Equal(t, 75.0, alpha["averageOrderValue"])
}

func TestBranchRankingsTieBrokenByOutletID(t *testing.T) {
	records := []models.OrderRecord{
		rec(withOrder("o1"), withOutlet("z-last", "Zulu"), withTotal(100)),
		rec(withOrder("o2"), withOutlet("a-first", "Anchor"), withTotal(100)),
	}

	rankings := BranchPerformance{}.Analyze(records)["branchRankings"].([]models.Result)
	require.Len(t, rankings, 2)
	assert.Equal(t, "Anchor", rankings[0]["branchName"], "equal revenue sorts by outlet id ascending")
	assert.Equal(t, "Zulu", rankings[1]["branchName"])
}

func TestBranchOrderCountIsDistinct(t *testing.T) {
	records := []models.OrderRecord{
		rec(withOrder("o1"), withTotal(30)),
		rec(withOrder("o1"), withTotal(30), withItem("Garlic Bread", "starters", 4.25, 1)),
	}

	rankings := BranchPerformance{}.Analyze(records)["branchRankings"].([]models.Result)
	require.Len(t, rankings, 1)
	assert.Equal(t, 1, rankings[0]["orderCount"])
	assert.Equal(t, 60.0, rankings[0]["averageOrderValue"], "revenue over distinct orders")
}

func TestBranchNoData(t *testing.T) {
	assert.True(t, BranchPerformance{}.Analyze(nil).IsError())
}
