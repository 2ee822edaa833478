package analytics

import (
	"sort"

	"github.com/dineforge/restalytics/internal/models"
)

// BranchPerformance ranks outlets by revenue, with distinct order and
// customer counts and average order value per branch.
type BranchPerformance struct{}

func (BranchPerformance) Type() string { return TypeBranch }

func (BranchPerformance) Analyze(records []models.OrderRecord) models.Result {
	if len(records) == 0 {
		return noDataResult()
	}

	revenue := GroupSum(records, outletKey, totalPrice)
	orders := GroupDistinctCount(records, outletKey, func(r *models.OrderRecord) string { return r.OrderID })
	customers := GroupDistinctCount(records, outletKey, func(r *models.OrderRecord) string { return r.CustomerID })

	outletIDs := make(map[string]string)
	for i := range records {
		if _, ok := outletIDs[records[i].OutletName]; !ok {
			outletIDs[records[i].OutletName] = records[i].OutletID
		}
	}

	rankings := []models.Result{}
	for _, name := range revenue.Keys() {
		rev := revenue.Get(name)
		rankings = append(rankings, models.Result{
			"branchName":        name,
			"revenue":           rev,
			"orderCount":        int(orders.Get(name)),
			"customerCount":     int(customers.Get(name)),
			"averageOrderValue": Ratio(rev, orders.Get(name)),
		})
	}

	// Revenue descending; outlet id ascending keeps equal-revenue branches
	// in a deterministic order.
	sort.SliceStable(rankings, func(i, j int) bool {
		ri := rankings[i]["revenue"].(float64)
		rj := rankings[j]["revenue"].(float64)
		if ri != rj {
			return ri > rj
		}
		return outletIDs[rankings[i]["branchName"].(string)] < outletIDs[rankings[j]["branchName"].(string)]
	})

	return models.Result{"branchRankings": rankings}
}
