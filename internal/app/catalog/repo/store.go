package repo

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/contracts"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/pkg/clock"
)

// Store holds the current catalog snapshot and implements contracts.Catalog.
//
// Readers never block: each accessor works on whichever snapshot was current
// when it was called. Load and Reload replace the snapshot atomically and are
// serialised with each other.
type Store struct {
	source contracts.Source
	logger *zap.Logger
	clock  clock.Clock

	reloadMu sync.Mutex
	current  atomic.Pointer[indexedSnapshot]
}

var _ contracts.Catalog = (*Store)(nil)

type indexedSnapshot struct {
	*domain.Snapshot
	productsByID   map[string]int
	categoryBySlug map[string]int
}

// NewStore creates a Store. The store is empty until Load succeeds.
func NewStore(source contracts.Source, logger *zap.Logger, clk clock.Clock) *Store {
	return &Store{
		source: source,
		logger: logger.Named("catalog"),
		clock:  clk,
	}
}

// Load performs the initial read of the catalog.
func (s *Store) Load(ctx context.Context) error {
	return s.refresh(ctx, "load")
}

// Reload re-reads the catalog. On failure the previous snapshot stays current.
func (s *Store) Reload(ctx context.Context) error {
	return s.refresh(ctx, "reload")
}

// Loaded reports whether a snapshot is available.
func (s *Store) Loaded() bool {
	return s.current.Load() != nil
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() (*domain.Snapshot, error) {
	idx, err := s.index()
	if err != nil {
		return nil, err
	}
	return idx.Snapshot, nil
}

// Products implements contracts.Catalog.
func (s *Store) Products() ([]domain.Product, error) {
	idx, err := s.index()
	if err != nil {
		return nil, err
	}
	return idx.Products, nil
}

// Categories implements contracts.Catalog.
func (s *Store) Categories() ([]domain.Category, error) {
	idx, err := s.index()
	if err != nil {
		return nil, err
	}
	return idx.Categories, nil
}

// Landing implements contracts.Catalog.
func (s *Store) Landing() (domain.Landing, error) {
	idx, err := s.index()
	if err != nil {
		return domain.Landing{}, err
	}
	return idx.Landing, nil
}

// ProductByID implements contracts.Catalog.
func (s *Store) ProductByID(id string) (domain.Product, error) {
	idx, err := s.index()
	if err != nil {
		return domain.Product{}, err
	}
	i, ok := idx.productsByID[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return idx.Products[i], nil
}

// CategoryBySlug implements contracts.Catalog.
func (s *Store) CategoryBySlug(slug string) (domain.Category, error) {
	idx, err := s.index()
	if err != nil {
		return domain.Category{}, err
	}
	i, ok := idx.categoryBySlug[slug]
	if !ok {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	return idx.Categories[i], nil
}

func (s *Store) index() (*indexedSnapshot, error) {
	idx := s.current.Load()
	if idx == nil {
		return nil, domain.ErrCatalogNotLoaded
	}
	return idx, nil
}

func (s *Store) refresh(ctx context.Context, op string) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	snap, err := s.source.Load(ctx)
	if err != nil {
		var dsErr *domain.DataSourceError
		if !errors.As(err, &dsErr) {
			err = domain.NewDataSourceError("catalog", err)
		}
		s.logger.Error("catalog "+op+" failed",
			zap.Bool("serving_previous", s.Loaded()),
			zap.Error(err),
		)
		return err
	}

	for _, r := range snap.Rejected {
		s.logger.Warn("catalog record rejected",
			zap.String("kind", r.Kind),
			zap.Int("index", r.Index),
			zap.String("id", r.ID),
			zap.Error(r.Err),
		)
	}

	snap.LoadedAt = s.clock.Now()
	s.current.Store(newIndexedSnapshot(snap))

	s.logger.Info("catalog "+op+" complete",
		zap.Int("products", len(snap.Products)),
		zap.Int("categories", len(snap.Categories)),
		zap.Int("rejected", len(snap.Rejected)),
		zap.Time("loaded_at", snap.LoadedAt),
	)
	return nil
}

func newIndexedSnapshot(snap *domain.Snapshot) *indexedSnapshot {
	idx := &indexedSnapshot{
		Snapshot:       snap,
		productsByID:   make(map[string]int, len(snap.Products)),
		categoryBySlug: make(map[string]int, len(snap.Categories)),
	}
	for i, p := range snap.Products {
		idx.productsByID[p.ID] = i
	}
	for i, c := range snap.Categories {
		idx.categoryBySlug[c.Slug] = i
	}
	return idx
}
