package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/contracts"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/models/m_category"
	"github.com/light-bringer/ecofinds-storefront/internal/models/m_product"
	"github.com/light-bringer/ecofinds-storefront/internal/pkg/query"
)

const spannerPageSize = 1000

// SpannerSource reads products and categories from Cloud Spanner.
// All queries of one Load run in a single read-only transaction, so the
// snapshot reflects one point in time. Landing projections are not stored
// in Spanner; they come from the optional landing source.
type SpannerSource struct {
	client  *spanner.Client
	landing contracts.Source
}

var _ contracts.Source = (*SpannerSource)(nil)

// NewSpannerSource creates a SpannerSource. landing may be nil.
func NewSpannerSource(client *spanner.Client, landing contracts.Source) *SpannerSource {
	return &SpannerSource{
		client:  client,
		landing: landing,
	}
}

// Load implements contracts.Source.
func (s *SpannerSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	txn := s.client.ReadOnlyTransaction()
	defer txn.Close()

	products := query.From(m_product.TableName).Select(m_product.Columns()...)
	total, err := count(ctx, txn, products)
	if err != nil {
		return nil, domain.NewDataSourceError("spanner", fmt.Errorf("failed to count products: %w", err))
	}

	c := newCollector(int(total), 0)

	if err := s.loadProducts(ctx, txn, products, c); err != nil {
		return nil, domain.NewDataSourceError("spanner", err)
	}
	if err := s.loadCategories(ctx, txn, c); err != nil {
		return nil, domain.NewDataSourceError("spanner", err)
	}

	if s.landing != nil {
		snap, err := s.landing.Load(ctx)
		if err != nil {
			return nil, err
		}
		c.landing(snap.Landing)
	}

	return c.result(), nil
}

func (s *SpannerSource) loadProducts(ctx context.Context, txn *spanner.ReadOnlyTransaction, base *query.Builder, c *collector) error {
	ordered := base.OrderBy(m_product.Position, query.Asc).OrderBy(m_product.ProductID, query.Asc)

	index := 0
	for offset := int64(0); ; offset += spannerPageSize {
		stmt := ordered.Limit(spannerPageSize).Offset(offset).Build()

		n, err := each(txn.Query(ctx, stmt), func(row *spanner.Row) {
			var data m_product.Data
			if err := row.ToStruct(&data); err != nil {
				c.reject(domain.KindProduct, index, "", fmt.Errorf("decode: %w", err))
			} else {
				c.product(index, dataToProduct(&data))
			}
			index++
		})
		if err != nil {
			return fmt.Errorf("failed to iterate products: %w", err)
		}
		if n < spannerPageSize {
			return nil
		}
	}
}

func (s *SpannerSource) loadCategories(ctx context.Context, txn *spanner.ReadOnlyTransaction, c *collector) error {
	base := query.From(m_category.TableName).Select(m_category.Columns()...)

	var (
		parents     []domain.Category
		positions   []int
		parentIndex = make(map[string]int)
		row         int
	)

	topLevel := base.Where(query.IsNull(m_category.ParentID)).OrderBy(m_category.Position, query.Asc).Build()
	_, err := each(txn.Query(ctx, topLevel), func(r *spanner.Row) {
		defer func() { row++ }()

		var data m_category.Data
		if err := r.ToStruct(&data); err != nil {
			c.reject(domain.KindCategory, row, "", fmt.Errorf("decode: %w", err))
			return
		}
		parentIndex[data.CategoryID] = len(parents)
		positions = append(positions, row)
		parents = append(parents, dataToCategory(&data))
	})
	if err != nil {
		return fmt.Errorf("failed to iterate categories: %w", err)
	}

	children := base.Where(query.IsNotNull(m_category.ParentID)).
		OrderBy(m_category.ParentID, query.Asc).
		OrderBy(m_category.Position, query.Asc).
		Build()
	index := 0
	_, err = each(txn.Query(ctx, children), func(r *spanner.Row) {
		defer func() { index++ }()

		var data m_category.Data
		if err := r.ToStruct(&data); err != nil {
			c.reject(domain.KindSubcategory, index, "", fmt.Errorf("decode: %w", err))
			return
		}
		i, ok := parentIndex[data.ParentID.StringVal]
		if !ok {
			c.reject(domain.KindSubcategory, index, data.CategoryID,
				fmt.Errorf("parent %q: %w", data.ParentID.StringVal, domain.ErrCategoryNotFound))
			return
		}
		parents[i].Subcategories = append(parents[i].Subcategories, dataToSubcategory(&data))
	})
	if err != nil {
		return fmt.Errorf("failed to iterate subcategories: %w", err)
	}

	for i, cat := range parents {
		c.category(positions[i], cat)
	}
	return nil
}

func count(ctx context.Context, txn *spanner.ReadOnlyTransaction, b *query.Builder) (int64, error) {
	iter := txn.Query(ctx, b.Count().Build())
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := row.Columns(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// each calls fn for every row and returns the number of rows seen.
func each(iter *spanner.RowIterator, fn func(*spanner.Row)) (int64, error) {
	defer iter.Stop()

	var n int64
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		fn(row)
		n++
	}
}
