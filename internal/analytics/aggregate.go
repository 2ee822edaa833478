package analytics

import (
	"math"
	"sort"

	"github.com/dineforge/restalytics/internal/models"
)

// Counter accumulates a float total per key while remembering first-seen
// key order, so argmax and top-N tie-breaks are reproducible across runs.
type Counter[K comparable] struct {
	order []K
	vals  map[K]float64
}

func NewCounter[K comparable]() *Counter[K] {
	return &Counter[K]{vals: make(map[K]float64)}
}

func (c *Counter[K]) Add(k K, v float64) {
	if _, ok := c.vals[k]; !ok {
		c.order = append(c.order, k)
	}
	c.vals[k] += v
}

func (c *Counter[K]) Get(k K) float64 { return c.vals[k] }
func (c *Counter[K]) Len() int        { return len(c.order) }

// Keys returns the keys in first-seen order.
func (c *Counter[K]) Keys() []K { return c.order }

// Sum totals all values.
func (c *Counter[K]) Sum() float64 {
	var total float64
	for _, v := range c.vals {
		total += v
	}
	return total
}

// Entry is one ranked key/value pair.
type Entry[K comparable] struct {
	Key   K
	Value float64
}

// TopN returns the n highest-valued entries, ties broken by first-seen key
// order. n <= 0 returns every entry ranked.
func (c *Counter[K]) TopN(n int) []Entry[K] {
	entries := make([]Entry[K], 0, len(c.order))
	for _, k := range c.order {
		entries = append(entries, Entry[K]{Key: k, Value: c.vals[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Max returns the highest-valued key, first seen wins ties. ok is false
// for an empty counter.
func (c *Counter[K]) Max() (key K, ok bool) {
	var best float64
	for i, k := range c.order {
		if i == 0 || c.vals[k] > best {
			key, best, ok = k, c.vals[k], true
		}
	}
	return key, ok
}

// keyFunc extracts a grouping key from a record; ok false skips the record
// (used to keep time-invalid rows out of time-bucketed aggregations).
type keyFunc[K comparable] func(r *models.OrderRecord) (K, bool)

// GroupSum sums value per key over records.
func GroupSum[K comparable](records []models.OrderRecord, key keyFunc[K], value func(r *models.OrderRecord) float64) *Counter[K] {
	c := NewCounter[K]()
	for i := range records {
		if k, ok := key(&records[i]); ok {
			c.Add(k, value(&records[i]))
		}
	}
	return c
}

// GroupCount counts records per key.
func GroupCount[K comparable](records []models.OrderRecord, key keyFunc[K]) *Counter[K] {
	return GroupSum(records, key, func(*models.OrderRecord) float64 { return 1 })
}

// GroupDistinctCount counts unique distinct-values per key.
func GroupDistinctCount[K comparable](records []models.OrderRecord, key keyFunc[K], distinct func(r *models.OrderRecord) string) *Counter[K] {
	type pair struct {
		k K
		v string
	}
	seen := make(map[pair]bool)
	c := NewCounter[K]()
	for i := range records {
		k, ok := key(&records[i])
		if !ok {
			continue
		}
		p := pair{k, distinct(&records[i])}
		if seen[p] {
			continue
		}
		seen[p] = true
		c.Add(k, 1)
	}
	return c
}

// Ratio divides num by den, yielding 0 when den is not positive. Division
// by zero is a defined fallback everywhere in the engine, never a panic.
func Ratio(num, den float64) float64 {
	if den > 0 {
		return num / den
	}
	return 0
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DistinctCount counts unique values of f over records.
func DistinctCount(records []models.OrderRecord, f func(r *models.OrderRecord) string) int {
	seen := make(map[string]bool)
	for i := range records {
		seen[f(&records[i])] = true
	}
	return len(seen)
}
