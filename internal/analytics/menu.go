package analytics

import (
	"strconv"

	"github.com/dineforge/restalytics/internal/models"
)

// Menu analyzes item performance: the ten most-ordered items, category
// totals, spice and vegetarian preferences, and the most frequent item
// pairings within single orders.
type Menu struct{}

func (Menu) Type() string { return TypeMenu }

func (Menu) Analyze(records []models.OrderRecord) models.Result {
	if len(records) == 0 {
		return noDataResult()
	}

	return models.Result{
		"popularItems":       popularItems(records),
		"categoryAnalysis":   categoryAnalysis(records),
		"spicePreferences":   counterToStrMap(GroupCount(records, spiceKey)),
		"vegetarianAnalysis": counterToStrMap(GroupCount(records, vegetarianKey)),
		"itemCombinations":   itemCombinations(records),
	}
}

// popularItems ranks items by distinct order count, top ten retained, ties
// broken by first appearance in the record set.
func popularItems(records []models.OrderRecord) []models.Result {
	quantity := GroupSum(records, itemKey, func(r *models.OrderRecord) float64 { return float64(r.ItemQuantity) })
	orders := GroupDistinctCount(records, itemKey, func(r *models.OrderRecord) string { return r.OrderID })
	revenue := GroupSum(records, itemKey, func(r *models.OrderRecord) float64 { return r.ItemPrice })
	rows := GroupCount(records, itemKey)

	category := make(map[string]string)
	for i := range records {
		if _, ok := category[records[i].ItemName]; !ok {
			category[records[i].ItemName] = records[i].ItemCategory
		}
	}

	items := []models.Result{}
	for _, e := range orders.TopN(10) {
		name := e.Key
		items = append(items, models.Result{
			"itemName":      name,
			"totalQuantity": int(quantity.Get(name)),
			"orderCount":    int(e.Value),
			"price":         Ratio(revenue.Get(name), rows.Get(name)),
			"totalRevenue":  revenue.Get(name),
			"category":      category[name],
		})
	}
	return items
}

// categoryAnalysis totals quantity, revenue and distinct orders per menu
// category, in first-seen order.
func categoryAnalysis(records []models.OrderRecord) []models.Result {
	quantity := GroupSum(records, categoryKey, func(r *models.OrderRecord) float64 { return float64(r.ItemQuantity) })
	revenue := GroupSum(records, categoryKey, func(r *models.OrderRecord) float64 { return r.ItemPrice })
	orders := GroupDistinctCount(records, categoryKey, func(r *models.OrderRecord) string { return r.OrderID })

	rows := []models.Result{}
	for _, cat := range quantity.Keys() {
		rows = append(rows, models.Result{
			"category":      cat,
			"totalQuantity": int(quantity.Get(cat)),
			"totalRevenue":  revenue.Get(cat),
			"orderCount":    int(orders.Get(cat)),
		})
	}
	return rows
}

// itemCombinations counts, for every order containing at least two
// distinct item names, each unordered pair of names occurring together.
// Pairs are canonicalized by sorting the two names so (A,B) and (B,A)
// merge; the five most frequent pairs are reported.
func itemCombinations(records []models.OrderRecord) []models.Result {
	orderItems := NewCounter[string]() // tracks order ids in first-seen order
	itemsByOrder := make(map[string][]string)
	for i := range records {
		r := &records[i]
		names := itemsByOrder[r.OrderID]
		if !contains(names, r.ItemName) {
			itemsByOrder[r.OrderID] = append(names, r.ItemName)
		}
		orderItems.Add(r.OrderID, 1)
	}

	type pairKey struct{ a, b string }
	pairs := NewCounter[pairKey]()
	for _, orderID := range orderItems.Keys() {
		names := itemsByOrder[orderID]
		if len(names) < 2 {
			continue
		}
		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				a, b := names[i], names[j]
				if a > b {
					a, b = b, a
				}
				pairs.Add(pairKey{a, b}, 1)
			}
		}
	}

	combos := []models.Result{}
	for _, e := range pairs.TopN(5) {
		combos = append(combos, models.Result{
			"item1":     e.Key.a,
			"item2":     e.Key.b,
			"frequency": int(e.Value),
		})
	}
	return combos
}

func itemKey(r *models.OrderRecord) (string, bool) {
	return r.ItemName, true
}

func categoryKey(r *models.OrderRecord) (string, bool) {
	return r.ItemCategory, true
}

func spiceKey(r *models.OrderRecord) (string, bool) {
	return r.SpiceLevel, true
}

func vegetarianKey(r *models.OrderRecord) (string, bool) {
	return strconv.FormatBool(r.IsVegetarian), true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
