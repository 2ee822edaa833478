package analytics

import (
	"fmt"
	"time"

	"github.com/dineforge/restalytics/internal/models"
)

// rec builds a fully populated record for tests, derived-time fields
// included. Options mutate the base record before derivation.
func rec(opts ...func(*models.OrderRecord)) models.OrderRecord {
	r := models.OrderRecord{
		OrderID:             "order-1",
		CustomerID:          "cust-1",
		OutletID:            "outlet-a",
		OutletName:          "Camden Kitchen",
		Borough:             "Camden",
		Capacity:            40,
		OrderPlacedAt:       time.Date(2025, 1, 15, 12, 30, 0, 0, time.UTC),
		TotalPrice:          25.0,
		PaymentMethod:       "card",
		ItemName:            "Margherita Pizza",
		ItemCategory:        "mains",
		ItemPrice:           11.5,
		ItemQuantity:        1,
		IsVegetarian:        true,
		SpiceLevel:          "mild",
		Age:                 30,
		AgeKnown:            true,
		Gender:              "female",
		LoyaltyGroup:        "gold",
		EstimatedTotalSpent: 320.0,
	}
	for _, opt := range opts {
		opt(&r)
	}
	r.DeriveTime()
	return r
}

func withOrder(id string) func(*models.OrderRecord) {
	return func(r *models.OrderRecord) { r.OrderID = id }
}

func withCustomer(id string) func(*models.OrderRecord) {
	return func(r *models.OrderRecord) { r.CustomerID = id }
}

func withOutlet(id, name string) func(*models.OrderRecord) {
	return func(r *models.OrderRecord) {
		r.OutletID = id
		r.OutletName = name
	}
}

func withPlacedAt(t time.Time) func(*models.OrderRecord) {
	return func(r *models.OrderRecord) { r.OrderPlacedAt = t }
}

func withNoTimestamp() func(*models.OrderRecord) {
	return func(r *models.OrderRecord) { r.OrderPlacedAt = time.Time{} }
}

func withTotal(v float64) func(*models.OrderRecord) {
	return func(r *models.OrderRecord) { r.TotalPrice = v }
}

func withItem(name, category string, price float64, qty int) func(*models.OrderRecord) {
	return func(r *models.OrderRecord) {
		r.ItemName = name
		r.ItemCategory = category
		r.ItemPrice = price
		r.ItemQuantity = qty
	}
}

func withAge(age int) func(*models.OrderRecord) {
	return func(r *models.OrderRecord) {
		r.Age = age
		r.AgeKnown = true
	}
}

func withUnknownAge() func(*models.OrderRecord) {
	return func(r *models.OrderRecord) {
		r.Age = 0
		r.AgeKnown = false
	}
}

func withGender(g string) func(*models.OrderRecord) {
	return func(r *models.OrderRecord) { r.Gender = g }
}

func withLoyalty(group string) func(*models.OrderRecord) {
	return func(r *models.OrderRecord) { r.LoyaltyGroup = group }
}

// dailyOrders builds one single-row order per count entry, count orders on
// consecutive dates starting 2025-03-01. Order ids stay globally unique.
func dailyOrders(counts []int) []models.OrderRecord {
	var records []models.OrderRecord
	next := 0
	for day, count := range counts {
		date := time.Date(2025, 3, 1+day, 18, 0, 0, 0, time.UTC)
		for i := 0; i < count; i++ {
			next++
			records = append(records, rec(
				withOrder(fmt.Sprintf("order-%d", next)),
				withPlacedAt(date),
			))
		}
	}
	return records
}
