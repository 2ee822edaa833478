package factories

import (
	"math/rand"
	"time"

	"github.com/dineforge/restalytics/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

var boroughs = []string{
	"Camden", "Hackney", "Islington", "Southwark", "Westminster",
	"Greenwich", "Lambeth", "Tower Hamlets",
}

var paymentMethods = []string{"card", "cash", "wallet", "online"}

var loyaltyGroups = []string{"bronze", "silver", "gold", "platinum"}

var spiceLevels = []string{"mild", "medium", "hot", "extra hot"}

type menuEntry struct {
	name       string
	category   string
	basePrice  float64
	vegetarian bool
	spice      string
}

var menu = []menuEntry{
	{"Margherita Pizza", "mains", 11.50, true, "mild"},
	{"Pepperoni Pizza", "mains", 13.00, false, "medium"},
	{"Chicken Tikka Masala", "mains", 12.75, false, "medium"},
	{"Lamb Rogan Josh", "mains", 14.25, false, "hot"},
	{"Paneer Butter Masala", "mains", 11.25, true, "medium"},
	{"Vegetable Biryani", "mains", 10.50, true, "medium"},
	{"Thai Green Curry", "mains", 12.00, false, "hot"},
	{"Pad Thai", "mains", 11.00, false, "mild"},
	{"Fish and Chips", "mains", 10.75, false, "mild"},
	{"Beef Burger", "mains", 9.50, false, "mild"},
	{"Halloumi Burger", "mains", 9.25, true, "mild"},
	{"Caesar Salad", "starters", 7.50, false, "mild"},
	{"Garlic Bread", "starters", 4.25, true, "mild"},
	{"Onion Bhaji", "starters", 4.75, true, "medium"},
	{"Spring Rolls", "starters", 5.00, true, "mild"},
	{"Chicken Wings", "starters", 6.50, false, "hot"},
	{"Chocolate Brownie", "desserts", 5.25, true, "mild"},
	{"Mango Lassi", "drinks", 3.50, true, "mild"},
	{"Fresh Lemonade", "drinks", 2.75, true, "mild"},
	{"Masala Chai", "drinks", 2.50, true, "mild"},
}

type outletSeed struct {
	id       string
	name     string
	borough  string
	capacity int
}

type customerSeed struct {
	id           string
	age          int
	gender       string
	loyaltyGroup string
	totalSpent   float64
}

// OrderFactory generates plausible multi-line order records for a fixed
// pool of outlets and customers, so repeated orders from the same customer
// carry consistent demographics.
type OrderFactory struct {
	rng       *rand.Rand
	outlets   []outletSeed
	customers []customerSeed
	start     time.Time
	end       time.Time
}

func NewOrderFactory(cfg *models.Config) *OrderFactory {
	rng := rand.New(rand.NewSource(cfg.Seed))

	start, end := cfg.StartDate, cfg.EndDate
	if start.IsZero() {
		start = time.Now().AddDate(-1, 0, 0)
	}
	if end.IsZero() || !end.After(start) {
		end = start.AddDate(1, 0, 0)
	}

	of := &OrderFactory{rng: rng, start: start, end: end}

	for i := 0; i < cfg.GenerateOutlets; i++ {
		of.outlets = append(of.outlets, outletSeed{
			id:       cuid.New(),
			name:     fake.Company().Name(),
			borough:  boroughs[rng.Intn(len(boroughs))],
			capacity: 20 + rng.Intn(80),
		})
	}

	for i := 0; i < cfg.GenerateCustomers; i++ {
		of.customers = append(of.customers, customerSeed{
			id:           cuid.New(),
			age:          18 + rng.Intn(52),
			gender:       pick(rng, []string{"male", "female", "other"}),
			loyaltyGroup: pick(rng, loyaltyGroups),
			totalSpent:   50 + rng.Float64()*950,
		})
	}

	return of
}

// CreateOrder returns the line-item rows of one order: 1 to 3 items that
// share an order id, customer, outlet and timestamp.
func (of *OrderFactory) CreateOrder() []models.OrderRecord {
	orderID := cuid.New()
	outlet := of.outlets[of.rng.Intn(len(of.outlets))]
	customer := of.customers[of.rng.Intn(len(of.customers))]
	placed := of.orderTime()

	itemCount := 1 + of.rng.Intn(3)
	records := make([]models.OrderRecord, 0, itemCount)
	total := 0.0
	for i := 0; i < itemCount; i++ {
		entry := menu[of.rng.Intn(len(menu))]
		qty := 1 + of.rng.Intn(2)
		total += entry.basePrice * float64(qty)
		records = append(records, models.OrderRecord{
			OrderID:             orderID,
			CustomerID:          customer.id,
			OutletID:            outlet.id,
			OutletName:          outlet.name,
			Borough:             outlet.borough,
			Capacity:            outlet.capacity,
			OrderPlacedAt:       placed,
			PaymentMethod:       pick(of.rng, paymentMethods),
			ItemName:            entry.name,
			ItemCategory:        entry.category,
			ItemPrice:           entry.basePrice,
			ItemQuantity:        qty,
			IsVegetarian:        entry.vegetarian,
			SpiceLevel:          entry.spice,
			Age:                 customer.age,
			AgeKnown:            true,
			Gender:              customer.gender,
			LoyaltyGroup:        customer.loyaltyGroup,
			EstimatedTotalSpent: customer.totalSpent,
		})
	}

	for i := range records {
		records[i].TotalPrice = total
		records[i].DeriveTime()
	}
	return records
}

// orderTime picks a timestamp in the configured window, biased towards
// lunch and dinner hours.
func (of *OrderFactory) orderTime() time.Time {
	window := of.end.Sub(of.start)
	t := of.start.Add(time.Duration(of.rng.Int63n(int64(window))))

	hour := 12 + of.rng.Intn(2)
	if of.rng.Float64() < 0.55 {
		hour = 18 + of.rng.Intn(4)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), hour, of.rng.Intn(60), of.rng.Intn(60), 0, time.UTC)
}

func pick(rng *rand.Rand, items []string) string {
	return items[rng.Intn(len(items))]
}
