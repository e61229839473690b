package explore

import (
	"context"
	"slices"
	"sync"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// Fetcher loads one result page.
type Fetcher interface {
	Fetch(ctx context.Context, criteria domain.FilterCriteria) (*domain.ResultPage, error)
}

// Status is the accumulator's load state.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusFailed:
		return "error"
	default:
		return "unknown"
	}
}

// Mode says what a load does with the current list.
type Mode int

const (
	// ModeReset replaces the list with page 1.
	ModeReset Mode = iota
	// ModeAppend adds the next page to the list.
	ModeAppend
)

// Filters are the facet selections applied by SetFilters.
type Filters struct {
	Category     string
	Subcategory  string
	MinPrice     *float64
	MaxPrice     *float64
	Condition    domain.Condition
	Brand        string
	EcoRatingMin *int
	Clearance    bool
}

// View is a copy of the accumulator state.
type View struct {
	Status   Status
	Mode     Mode
	Criteria domain.FilterCriteria
	Items    []domain.Product
	Facets   domain.Facets
	Page     int
	Total    int
	HasMore  bool
	Err      error
}

type request struct {
	mode     Mode
	criteria domain.FilterCriteria
}

// Accumulator keeps an append-only list of results across pages.
//
// Every load gets a sequence number. Starting a load cancels the one in
// flight, and a completion is applied only if it belongs to the latest load,
// so a slow stale response can never overwrite a newer one. A failed load
// keeps the list on display and can be retried.
type Accumulator struct {
	fetcher Fetcher
	parent  context.Context

	mu       sync.Mutex
	criteria domain.FilterCriteria
	items    []domain.Product
	facets   domain.Facets
	page     int
	total    int
	status   Status
	mode     Mode
	err      error
	failed   *request
	seq      uint64
	cancel   context.CancelFunc

	inflight sync.WaitGroup
}

// NewAccumulator creates an idle Accumulator. Loads run under ctx;
// cancelling it abandons any load in flight.
func NewAccumulator(ctx context.Context, fetcher Fetcher, criteria domain.FilterCriteria) *Accumulator {
	if criteria.Limit <= 0 {
		criteria.Limit = domain.DefaultLimit
	}
	criteria.Page = domain.DefaultPage

	return &Accumulator{
		fetcher:  fetcher,
		parent:   ctx,
		criteria: criteria,
	}
}

// Load starts a reset load with the current criteria.
func (a *Accumulator) Load() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reset()
}

// SetQuery changes the search text and reloads from page 1.
func (a *Accumulator) SetQuery(q string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.criteria.Query = q
	a.reset()
}

// SetFilters replaces the facet selections and reloads from page 1.
func (a *Accumulator) SetFilters(f Filters) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.criteria.Category = f.Category
	a.criteria.Subcategory = f.Subcategory
	a.criteria.MinPrice = f.MinPrice
	a.criteria.MaxPrice = f.MaxPrice
	a.criteria.Condition = f.Condition
	a.criteria.Brand = f.Brand
	a.criteria.EcoRatingMin = f.EcoRatingMin
	a.criteria.Clearance = f.Clearance
	a.reset()
}

// SetSort changes the ordering and reloads from page 1.
func (a *Accumulator) SetSort(s domain.SortStrategy) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.criteria.Sort = s
	a.reset()
}

// LoadMore requests the next page. It reports false and does nothing when
// there are no more results, a load is already in flight, or the list on
// display was produced by criteria whose reset failed. In that last case only
// Retry or another reset can move forward.
func (a *Accumulator) LoadMore() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status == StatusLoading || a.resetFailed() || !a.hasMore() {
		return false
	}
	a.dispatch(request{mode: ModeAppend, criteria: a.criteria.WithPage(a.page + 1)})
	return true
}

// Retry re-issues the last failed load. It reports false when the
// accumulator is not in the error state.
func (a *Accumulator) Retry() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status != StatusFailed || a.failed == nil {
		return false
	}
	a.dispatch(*a.failed)
	return true
}

// State returns a snapshot of the accumulator.
func (a *Accumulator) State() View {
	a.mu.Lock()
	defer a.mu.Unlock()

	return View{
		Status:   a.status,
		Mode:     a.mode,
		Criteria: a.criteria,
		Items:    slices.Clone(a.items),
		Facets:   a.facets,
		Page:     a.page,
		Total:    a.total,
		HasMore:  !a.resetFailed() && a.hasMore(),
		Err:      a.err,
	}
}

// Wait blocks until no load is in flight.
func (a *Accumulator) Wait() {
	a.inflight.Wait()
}

// Close cancels the load in flight, if any.
func (a *Accumulator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.seq++
	if a.status == StatusLoading {
		a.status = StatusIdle
	}
}

func (a *Accumulator) resetFailed() bool {
	return a.status == StatusFailed && a.failed != nil && a.failed.mode == ModeReset
}

func (a *Accumulator) hasMore() bool {
	return len(a.items) < a.total
}

// reset must be called with mu held.
func (a *Accumulator) reset() {
	a.dispatch(request{mode: ModeReset, criteria: a.criteria.WithPage(domain.DefaultPage)})
}

// dispatch must be called with mu held.
func (a *Accumulator) dispatch(req request) {
	if a.cancel != nil {
		a.cancel()
	}

	a.seq++
	seq := a.seq
	ctx, cancel := context.WithCancel(a.parent)
	a.cancel = cancel
	a.status = StatusLoading
	a.mode = req.mode

	a.inflight.Add(1)
	go func() {
		defer a.inflight.Done()
		defer cancel()

		page, err := a.fetcher.Fetch(ctx, req.criteria)
		a.complete(seq, req, page, err)
	}()
}

func (a *Accumulator) complete(seq uint64, req request, page *domain.ResultPage, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if seq != a.seq {
		return
	}
	a.cancel = nil

	if err != nil {
		a.status = StatusFailed
		a.err = err
		a.failed = &req
		return
	}

	switch req.mode {
	case ModeReset:
		a.items = slices.Clone(page.Results)
		a.page = domain.DefaultPage
	case ModeAppend:
		a.items = append(a.items, page.Results...)
		a.page = req.criteria.Page
	}
	a.total = page.Total
	a.facets = page.Facets
	a.status = StatusIdle
	a.err = nil
	a.failed = nil
}
