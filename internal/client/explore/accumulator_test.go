package explore

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/testutil"
)

// pendingFetch is one Fetch call waiting for the test to answer it.
type pendingFetch struct {
	criteria domain.FilterCriteria
	ctx      context.Context
	reply    chan fetchResult
}

type fetchResult struct {
	page *domain.ResultPage
	err  error
}

func (p *pendingFetch) respond(page *domain.ResultPage) { p.reply <- fetchResult{page: page} }
func (p *pendingFetch) fail(err error)                 { p.reply <- fetchResult{err: err} }

// manualFetcher hands every call to the test and ignores cancellation, so
// tests decide the order in which responses arrive.
type manualFetcher struct {
	calls chan *pendingFetch
}

func newManualFetcher() *manualFetcher {
	return &manualFetcher{calls: make(chan *pendingFetch, 16)}
}

func (f *manualFetcher) Fetch(ctx context.Context, criteria domain.FilterCriteria) (*domain.ResultPage, error) {
	call := &pendingFetch{criteria: criteria, ctx: ctx, reply: make(chan fetchResult, 1)}
	f.calls <- call
	r := <-call.reply
	return r.page, r.err
}

func (f *manualFetcher) next(t *testing.T) *pendingFetch {
	t.Helper()
	select {
	case call := <-f.calls:
		return call
	case <-time.After(2 * time.Second):
		t.Fatal("expected a fetch")
		return nil
	}
}

func (f *manualFetcher) assertIdle(t *testing.T) {
	t.Helper()
	select {
	case call := <-f.calls:
		t.Fatalf("unexpected fetch for %+v", call.criteria)
	default:
	}
}

func pageOf(ids []string, page, total int) *domain.ResultPage {
	results := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		results = append(results, testutil.NewProductBuilder(id).Build())
	}
	return &domain.ResultPage{Results: results, Total: total, Page: page, Limit: 2}
}

func ids(prefix string, from, to int) []string {
	out := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, fmt.Sprintf("%s-%d", prefix, i))
	}
	return out
}

func newAccumulator(f Fetcher) *Accumulator {
	c := domain.DefaultCriteria()
	c.Limit = 2
	return NewAccumulator(context.Background(), f, c)
}

func TestAccumulator_ResetThenAppend(t *testing.T) {
	f := newManualFetcher()
	a := newAccumulator(f)

	a.Load()
	call := f.next(t)
	assert.Equal(t, 1, call.criteria.Page)
	assert.Equal(t, StatusLoading, a.State().Status)
	call.respond(pageOf(ids("p", 1, 2), 1, 5))
	a.Wait()

	v := a.State()
	assert.Equal(t, StatusIdle, v.Status)
	assert.Equal(t, ids("p", 1, 2), testutil.IDs(v.Items))
	assert.Equal(t, 1, v.Page)
	assert.True(t, v.HasMore)

	require.True(t, a.LoadMore())
	call = f.next(t)
	assert.Equal(t, 2, call.criteria.Page)
	assert.Equal(t, ModeAppend, a.State().Mode)
	call.respond(pageOf(ids("p", 3, 4), 2, 5))
	a.Wait()

	require.True(t, a.LoadMore())
	f.next(t).respond(pageOf(ids("p", 5, 5), 3, 5))
	a.Wait()

	v = a.State()
	assert.Equal(t, ids("p", 1, 5), testutil.IDs(v.Items))
	assert.Equal(t, 3, v.Page)
	assert.Equal(t, 5, v.Total)
	assert.False(t, v.HasMore)

	assert.False(t, a.LoadMore(), "no more pages")
	f.assertIdle(t)
}

func TestAccumulator_LoadMoreWhileInFlightIsNoop(t *testing.T) {
	f := newManualFetcher()
	a := newAccumulator(f)

	a.Load()
	f.next(t).respond(pageOf(ids("p", 1, 2), 1, 10))
	a.Wait()

	require.True(t, a.LoadMore())
	call := f.next(t)
	assert.False(t, a.LoadMore())
	f.assertIdle(t)

	call.respond(pageOf(ids("p", 3, 4), 2, 10))
	a.Wait()
	assert.Equal(t, ids("p", 1, 4), testutil.IDs(a.State().Items))
}

func TestAccumulator_StaleResponseIsDiscarded(t *testing.T) {
	f := newManualFetcher()
	a := newAccumulator(f)

	a.SetQuery("oak")
	first := f.next(t)
	a.SetQuery("oak table")
	second := f.next(t)

	assert.Equal(t, "oak", first.criteria.Query)
	assert.Equal(t, "oak table", second.criteria.Query)
	assert.ErrorIs(t, first.ctx.Err(), context.Canceled)

	// The newer response lands first; the older one must not overwrite it.
	second.respond(pageOf(ids("table", 1, 1), 1, 1))
	first.respond(pageOf(ids("oak", 1, 2), 1, 9))
	a.Wait()

	v := a.State()
	assert.Equal(t, StatusIdle, v.Status)
	assert.Equal(t, ids("table", 1, 1), testutil.IDs(v.Items))
	assert.Equal(t, 1, v.Total)
	assert.Equal(t, "oak table", v.Criteria.Query)
}

func TestAccumulator_ResetSupersedesAppend(t *testing.T) {
	f := newManualFetcher()
	a := newAccumulator(f)

	a.Load()
	f.next(t).respond(pageOf(ids("p", 1, 2), 1, 10))
	a.Wait()

	require.True(t, a.LoadMore())
	appendCall := f.next(t)

	a.SetSort(domain.SortPriceAsc)
	resetCall := f.next(t)
	assert.Equal(t, domain.SortPriceAsc, resetCall.criteria.Sort)
	assert.Equal(t, 1, resetCall.criteria.Page)

	appendCall.respond(pageOf(ids("p", 3, 4), 2, 10))
	resetCall.respond(pageOf(ids("cheap", 1, 2), 1, 10))
	a.Wait()

	v := a.State()
	assert.Equal(t, ids("cheap", 1, 2), testutil.IDs(v.Items))
	assert.Equal(t, 1, v.Page)
}

func TestAccumulator_ErrorKeepsListAndRetries(t *testing.T) {
	f := newManualFetcher()
	a := newAccumulator(f)

	a.Load()
	f.next(t).respond(pageOf(ids("p", 1, 2), 1, 6))
	a.Wait()

	assert.False(t, a.Retry(), "nothing to retry")

	require.True(t, a.LoadMore())
	boom := errors.New("upstream unavailable")
	f.next(t).fail(boom)
	a.Wait()

	v := a.State()
	assert.Equal(t, StatusFailed, v.Status)
	assert.ErrorIs(t, v.Err, boom)
	assert.Equal(t, ids("p", 1, 2), testutil.IDs(v.Items), "list stays on display")
	assert.Equal(t, 1, v.Page)

	require.True(t, a.Retry())
	call := f.next(t)
	assert.Equal(t, 2, call.criteria.Page)
	call.respond(pageOf(ids("p", 3, 4), 2, 6))
	a.Wait()

	v = a.State()
	assert.Equal(t, StatusIdle, v.Status)
	assert.NoError(t, v.Err)
	assert.Equal(t, ids("p", 1, 4), testutil.IDs(v.Items))
	assert.Equal(t, 2, v.Page)
}

func TestAccumulator_FailedResetBlocksLoadMore(t *testing.T) {
	f := newManualFetcher()
	a := newAccumulator(f)

	a.Load()
	f.next(t).respond(pageOf(ids("old", 1, 2), 1, 6))
	a.Wait()

	a.SetQuery("lamp")
	f.next(t).fail(errors.New("upstream unavailable"))
	a.Wait()

	v := a.State()
	require.Equal(t, StatusFailed, v.Status)
	assert.Equal(t, ids("old", 1, 2), testutil.IDs(v.Items))
	assert.False(t, v.HasMore)

	assert.False(t, a.LoadMore(), "old list must not be extended with another query's pages")
	f.assertIdle(t)

	require.True(t, a.Retry())
	call := f.next(t)
	assert.Equal(t, "lamp", call.criteria.Query)
	assert.Equal(t, 1, call.criteria.Page)
	call.respond(pageOf(ids("lamp", 1, 2), 1, 4))
	a.Wait()

	v = a.State()
	assert.Equal(t, ids("lamp", 1, 2), testutil.IDs(v.Items))
	assert.True(t, v.HasMore)

	require.True(t, a.LoadMore())
	call = f.next(t)
	assert.Equal(t, "lamp", call.criteria.Query)
	assert.Equal(t, 2, call.criteria.Page)
	call.respond(pageOf(ids("lamp", 3, 4), 2, 4))
	a.Wait()
	assert.Equal(t, ids("lamp", 1, 4), testutil.IDs(a.State().Items))
}

func TestAccumulator_SetFilters(t *testing.T) {
	f := newManualFetcher()
	a := newAccumulator(f)
	a.SetQuery("lamp")
	f.next(t).respond(pageOf(nil, 1, 0))
	a.Wait()

	a.SetFilters(Filters{Category: "home", MaxPrice: testutil.Float(50), Clearance: true})
	call := f.next(t)
	assert.Equal(t, "lamp", call.criteria.Query, "query survives a filter change")
	assert.Equal(t, "home", call.criteria.Category)
	assert.Equal(t, 50.0, *call.criteria.MaxPrice)
	assert.True(t, call.criteria.Clearance)
	assert.Equal(t, 2, call.criteria.Limit)

	call.respond(pageOf(ids("lamp", 1, 1), 1, 1))
	a.Wait()
	v := a.State()
	assert.Equal(t, ids("lamp", 1, 1), testutil.IDs(v.Items))
	assert.False(t, v.HasMore)
}

func TestAccumulator_StateIsACopy(t *testing.T) {
	f := newManualFetcher()
	a := newAccumulator(f)
	a.Load()
	f.next(t).respond(pageOf(ids("p", 1, 2), 1, 2))
	a.Wait()

	v := a.State()
	v.Items[0].ID = "mutated"
	assert.Equal(t, "p-1", a.State().Items[0].ID)
}

func TestAccumulator_Close(t *testing.T) {
	f := newManualFetcher()
	a := newAccumulator(f)

	a.Load()
	call := f.next(t)
	a.Close()
	assert.ErrorIs(t, call.ctx.Err(), context.Canceled)

	call.respond(pageOf(ids("p", 1, 2), 1, 2))
	a.Wait()
	v := a.State()
	assert.Equal(t, StatusIdle, v.Status)
	assert.Empty(t, v.Items)
}
