package repo

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/pkg/clock"
	"github.com/light-bringer/ecofinds-storefront/internal/testutil"
)

type stubSource struct {
	mu    sync.Mutex
	snap  *domain.Snapshot
	err   error
	calls int
}

func (s *stubSource) Load(context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	cp := *s.snap
	return &cp, nil
}

func (s *stubSource) set(snap *domain.Snapshot, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap, s.err = snap, err
}

func snapshotOf(products ...domain.Product) *domain.Snapshot {
	return &domain.Snapshot{
		Products: products,
		Categories: []domain.Category{
			{ID: "home", Name: "Home", Slug: "home-living"},
		},
		Landing: domain.Landing{SiteStats: domain.SiteStats{ItemsSold: 42}},
	}
}

func newTestStore(source *stubSource) (*Store, *observer.ObservedLogs, *clock.MockClock) {
	core, logs := observer.New(zapcore.DebugLevel)
	clk := clock.NewMockClock(testutil.BaseTime)
	return NewStore(source, zap.New(core), clk), logs, clk
}

func TestStore_BeforeLoad(t *testing.T) {
	store, _, _ := newTestStore(&stubSource{})

	assert.False(t, store.Loaded())

	_, err := store.Products()
	assert.ErrorIs(t, err, domain.ErrCatalogNotLoaded)
	assert.ErrorIs(t, err, domain.ErrDataSource)

	_, err = store.ProductByID("p-1")
	assert.ErrorIs(t, err, domain.ErrDataSource)
	_, err = store.CategoryBySlug("home-living")
	assert.ErrorIs(t, err, domain.ErrDataSource)
	_, err = store.Landing()
	assert.ErrorIs(t, err, domain.ErrDataSource)
	_, err = store.Categories()
	assert.ErrorIs(t, err, domain.ErrDataSource)
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()
	source := &stubSource{snap: snapshotOf(testutil.Products(3)...)}
	store, logs, _ := newTestStore(source)

	require.NoError(t, store.Load(ctx))
	assert.True(t, store.Loaded())

	products, err := store.Products()
	require.NoError(t, err)
	assert.Equal(t, []string{"p-00", "p-01", "p-02"}, testutil.IDs(products))

	snap, err := store.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, testutil.BaseTime, snap.LoadedAt)

	t.Run("lookups", func(t *testing.T) {
		p, err := store.ProductByID("p-01")
		require.NoError(t, err)
		assert.Equal(t, "p-01", p.ID)

		_, err = store.ProductByID("missing")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		cat, err := store.CategoryBySlug("home-living")
		require.NoError(t, err)
		assert.Equal(t, "home", cat.ID)

		_, err = store.CategoryBySlug("home")
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})

	t.Run("landing", func(t *testing.T) {
		landing, err := store.Landing()
		require.NoError(t, err)
		assert.Equal(t, 42, landing.SiteStats.ItemsSold)
	})

	assert.Equal(t, 1, logs.FilterMessage("catalog load complete").Len())
}

func TestStore_LogsRejections(t *testing.T) {
	snap := snapshotOf(testutil.Products(1)...)
	snap.Rejected = []domain.Rejection{
		{Kind: domain.KindProduct, Index: 4, ID: "bad", Err: domain.ErrNegativePrice},
	}
	store, logs, _ := newTestStore(&stubSource{snap: snap})

	require.NoError(t, store.Load(context.Background()))

	warnings := logs.FilterMessage("catalog record rejected").All()
	require.Len(t, warnings, 1)
	fields := warnings[0].ContextMap()
	assert.Equal(t, "bad", fields["id"])
	assert.Equal(t, int64(4), fields["index"])
	assert.Equal(t, zapcore.WarnLevel, warnings[0].Level)
}

func TestStore_Reload(t *testing.T) {
	ctx := context.Background()
	source := &stubSource{snap: snapshotOf(testutil.Products(2)...)}
	store, logs, clk := newTestStore(source)
	require.NoError(t, store.Load(ctx))

	t.Run("success swaps the snapshot", func(t *testing.T) {
		source.set(snapshotOf(testutil.Products(5)...), nil)
		clk.Advance(time.Hour)

		require.NoError(t, store.Reload(ctx))

		products, err := store.Products()
		require.NoError(t, err)
		assert.Len(t, products, 5)

		snap, err := store.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, testutil.BaseTime.Add(time.Hour), snap.LoadedAt)
	})

	t.Run("failure keeps the previous snapshot", func(t *testing.T) {
		source.set(nil, errors.New("connection refused"))

		err := store.Reload(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDataSource)

		var dsErr *domain.DataSourceError
		require.ErrorAs(t, err, &dsErr)
		assert.Equal(t, "catalog", dsErr.Source)

		products, err := store.Products()
		require.NoError(t, err)
		assert.Len(t, products, 5)

		failures := logs.FilterMessage("catalog reload failed").All()
		require.Len(t, failures, 1)
		assert.Equal(t, true, failures[0].ContextMap()["serving_previous"])
	})

	t.Run("data source errors are returned as is", func(t *testing.T) {
		cause := domain.NewDataSourceError("data/explore-seed.json", errors.New("unexpected EOF"))
		source.set(nil, cause)

		err := store.Reload(ctx)
		assert.Same(t, cause, err)
	})
}

func TestStore_ConcurrentReadsDuringReload(t *testing.T) {
	ctx := context.Background()
	small, large := testutil.Products(2), testutil.Products(50)
	source := &stubSource{snap: snapshotOf(small...)}
	store, _, _ := newTestStore(source)
	require.NoError(t, store.Load(ctx))

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				products, err := store.Products()
				if !assert.NoError(t, err) {
					return
				}
				// A reader sees one whole snapshot or the other.
				assert.Contains(t, []int{len(small), len(large)}, len(products))
			}
		}()
	}

	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			source.set(snapshotOf(large...), nil)
		} else {
			source.set(snapshotOf(small...), nil)
		}
		require.NoError(t, store.Reload(ctx))
	}
	close(stop)
	wg.Wait()
}
