package store

import "github.com/dineforge/restalytics/internal/models"

// Filter returns the records matching criteria. Pure: the snapshot is
// never mutated and the result is a fresh slice (or the input itself when
// no criterion is active). Criteria compose with AND.
func Filter(records []models.OrderRecord, c models.Criteria) []models.OrderRecord {
	if c.Empty() {
		return records
	}
	out := make([]models.OrderRecord, 0, len(records))
	for i := range records {
		if c.Matches(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}
