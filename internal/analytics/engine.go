package analytics

import (
	"errors"
	"fmt"

	"github.com/dineforge/restalytics/internal/models"
	"github.com/dineforge/restalytics/internal/store"
)

// Supported analysis type identifiers.
const (
	TypePeakDining   = "peak-dining"
	TypeRevenue      = "revenue-analysis"
	TypeDemographics = "customer-demographics"
	TypeSeasonal     = "seasonal-behavior"
	TypeMenu         = "menu-analysis"
	TypeBranch       = "branch-performance"
	TypeAnomaly      = "anomaly-detection"
)

// ErrUnknownAnalysisType is returned for analysis identifiers outside the
// registry. Unlike the insufficient-data sentinel, this is a structurally
// invalid request and surfaces as an error at the boundary.
var ErrUnknownAnalysisType = errors.New("unknown analysis type")

const msgNoData = "No data available for selected filters"

func noDataResult() models.Result {
	return models.ErrorResult(msgNoData)
}

// Strategy is one named, self-contained analysis over a filtered record
// set. Strategies are pure: they never mutate the records they are given.
type Strategy interface {
	Type() string
	Analyze(records []models.OrderRecord) models.Result
}

// Engine dispatches analysis requests against the current store snapshot.
type Engine struct {
	store      *store.Store
	strategies map[string]Strategy
	order      []string
}

func NewEngine(st *store.Store) *Engine {
	e := &Engine{
		store:      st,
		strategies: make(map[string]Strategy),
	}
	for _, s := range []Strategy{
		PeakDining{},
		Revenue{},
		Demographics{},
		Seasonal{},
		Menu{},
		BranchPerformance{},
		AnomalyDetector{},
	} {
		e.Register(s)
	}
	return e
}

// Register adds or replaces a strategy. The built-in set is closed; this
// is the extension point for embedding applications.
func (e *Engine) Register(s Strategy) {
	if _, ok := e.strategies[s.Type()]; !ok {
		e.order = append(e.order, s.Type())
	}
	e.strategies[s.Type()] = s
}

// Types lists the registered analysis identifiers in registration order.
func (e *Engine) Types() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Analyze runs the named analysis against the records passing criteria.
func (e *Engine) Analyze(analysisType string, criteria models.Criteria) (models.Result, error) {
	s, ok := e.strategies[analysisType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnalysisType, analysisType)
	}
	snap := e.store.Snapshot()
	return s.Analyze(store.Filter(snap.Records, criteria)), nil
}

// Forecast projects revenue for the next six months, optionally restricted
// to one outlet.
func (e *Engine) Forecast(outletID string) models.Result {
	criteria := models.Criteria{}
	if outletID != "" {
		criteria = criteria.WithOutlet(outletID)
	}
	snap := e.store.Snapshot()
	return ForecastRevenue(store.Filter(snap.Records, criteria))
}

// Outlets returns the outlet reference list for the current snapshot.
func (e *Engine) Outlets() []models.Outlet {
	return e.store.Snapshot().Outlets
}
