package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// Run executes the full pipeline over a catalog snapshot.
//
// Facets are computed from the filtered set, the same set whose size is
// reported as Total, so for each dimension the facet counts sum to Total.
// Facet aggregation runs concurrently with sorting and pagination; both read
// the filtered slice and neither writes to it.
func Run(ctx context.Context, products []domain.Product, c domain.FilterCriteria) (domain.ResultPage, error) {
	if err := ctx.Err(); err != nil {
		return domain.ResultPage{}, err
	}

	filtered := Filter(products, c)

	var (
		facets domain.Facets
		page   Page
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		facets = Aggregate(filtered)
		return gctx.Err()
	})
	g.Go(func() error {
		sorted := Sort(filtered, c.Sort)
		var err error
		page, err = Paginate(sorted, c.Page, c.Limit)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ResultPage{}, err
	}

	return domain.ResultPage{
		Results:    page.Items,
		Facets:     facets,
		Total:      page.Total,
		Page:       c.Page,
		Limit:      c.Limit,
		TotalPages: page.TotalPages,
	}, nil
}
