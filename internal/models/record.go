package models

import "time"

// OrderRecord is one line-item row of an order. An order with three items
// yields three records sharing the same OrderID.
type OrderRecord struct {
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id"`
	OutletID   string `json:"outlet_id"`
	OutletName string `json:"outlet_name"`
	Borough    string `json:"borough"`
	Capacity   int    `json:"capacity"`

	OrderPlacedAt time.Time `json:"order_placed_at"`

	// Derived from OrderPlacedAt at load time. Either all of them are set
	// or none: records with an unparsable timestamp keep zero values here
	// with TimeValid false, and are skipped by time-bucketed aggregations
	// while still counting towards revenue and row totals.
	TimeValid bool   `json:"-"`
	Hour      int    `json:"-"`
	DayOfWeek string `json:"-"`
	Month     int    `json:"-"`
	Date      string `json:"-"` // calendar date, "2006-01-02"

	TotalPrice    float64 `json:"total_price"`
	PaymentMethod string  `json:"payment_method"`

	ItemName     string  `json:"item_name"`
	ItemCategory string  `json:"item_category"`
	ItemPrice    float64 `json:"item_price"`
	ItemQuantity int     `json:"item_quantity"`
	IsVegetarian bool    `json:"is_vegetarian"`
	SpiceLevel   string  `json:"spice_level"`

	Age                 int     `json:"age"`
	AgeKnown            bool    `json:"-"`
	Gender              string  `json:"gender"`
	LoyaltyGroup        string  `json:"loyalty_group"`
	EstimatedTotalSpent float64 `json:"estimated_total_spent"`
}

// DeriveTime recomputes the derived time fields from OrderPlacedAt so they
// can never diverge from it. A zero timestamp marks the record as having no
// usable time dimension.
func (r *OrderRecord) DeriveTime() {
	if r.OrderPlacedAt.IsZero() {
		r.TimeValid = false
		r.Hour = 0
		r.DayOfWeek = ""
		r.Month = 0
		r.Date = ""
		return
	}
	r.TimeValid = true
	r.Hour = r.OrderPlacedAt.Hour()
	r.DayOfWeek = r.OrderPlacedAt.Weekday().String()
	r.Month = int(r.OrderPlacedAt.Month())
	r.Date = r.OrderPlacedAt.Format("2006-01-02")
}
