package models

// Outlet is reference data for one branch of the chain, derived once per
// snapshot from the record set and never mutated by analyses.
type Outlet struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Borough  string `json:"borough"`
	Capacity int    `json:"capacity"`
}
