package models

import "time"

// Season groups calendar months for filtering and seasonal aggregation.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// SeasonMonths maps each season to its fixed calendar month set.
var SeasonMonths = map[Season][]int{
	SeasonSpring: {3, 4, 5},
	SeasonSummer: {6, 7, 8},
	SeasonAutumn: {9, 10, 11},
	SeasonWinter: {12, 1, 2},
}

func (s Season) Valid() bool {
	_, ok := SeasonMonths[s]
	return ok
}

// Contains reports whether month belongs to the season.
func (s Season) Contains(month int) bool {
	for _, m := range SeasonMonths[s] {
		if m == month {
			return true
		}
	}
	return false
}

// Label returns the display name used in result mappings.
func (s Season) Label() string {
	switch s {
	case SeasonSpring:
		return "Spring"
	case SeasonSummer:
		return "Summer"
	case SeasonAutumn:
		return "Autumn"
	case SeasonWinter:
		return "Winter"
	}
	return string(s)
}

// SeasonOf returns the season a calendar month falls in.
func SeasonOf(month int) Season {
	switch month {
	case 3, 4, 5:
		return SeasonSpring
	case 6, 7, 8:
		return SeasonSummer
	case 9, 10, 11:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}

// Criteria is an immutable set of record filters. The zero value matches
// every record; the With methods accumulate restrictions builder-style,
// each returning a copy. Restrictions compose with logical AND.
type Criteria struct {
	outletID string
	season   Season
	from, to time.Time
}

func (c Criteria) WithOutlet(id string) Criteria {
	c.outletID = id
	return c
}

func (c Criteria) WithSeason(s Season) Criteria {
	c.season = s
	return c
}

func (c Criteria) WithDateRange(from, to time.Time) Criteria {
	c.from = from
	c.to = to
	return c
}

func (c Criteria) OutletID() string { return c.outletID }
func (c Criteria) Season() Season   { return c.season }

func (c Criteria) Empty() bool {
	return c.outletID == "" && c.season == "" && c.from.IsZero() && c.to.IsZero()
}

// Matches reports whether a record passes every active restriction.
// Records without a usable timestamp never match a season or date-range
// restriction.
func (c Criteria) Matches(r *OrderRecord) bool {
	if c.outletID != "" && r.OutletID != c.outletID {
		return false
	}
	if c.season != "" {
		if !r.TimeValid || !c.season.Contains(r.Month) {
			return false
		}
	}
	if !c.from.IsZero() || !c.to.IsZero() {
		if !r.TimeValid {
			return false
		}
		if !c.from.IsZero() && r.OrderPlacedAt.Before(c.from) {
			return false
		}
		if !c.to.IsZero() && r.OrderPlacedAt.After(c.to) {
			return false
		}
	}
	return true
}
