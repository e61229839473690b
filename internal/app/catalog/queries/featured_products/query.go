package featured_products

import (
	"cmp"
	"context"
	"slices"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/contracts"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// DefaultLimit is the number of landing cards returned when no limit is given.
const DefaultLimit = 8

// Sort orders for featured products.
const (
	SortRatingDesc = "rating_desc"
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
)

// Request selects and orders landing products.
// An empty Sort means rating_desc; an unknown one keeps curated order.
type Request struct {
	Sort  string
	Limit int
}

// Query handles the featured products use case.
type Query struct {
	catalog contracts.Catalog
}

// NewQuery creates a new featured products query.
func NewQuery(catalog contracts.Catalog) *Query {
	return &Query{
		catalog: catalog,
	}
}

// Execute returns at most Limit featured products in the requested order.
func (q *Query) Execute(ctx context.Context, req *Request) ([]domain.FeaturedProduct, error) {
	limit := req.Limit
	switch {
	case limit < 0:
		return nil, domain.NewValidationError("limit", "", "must not be negative")
	case limit == 0:
		limit = DefaultLimit
	case limit > domain.MaxLimit:
		limit = domain.MaxLimit
	}

	landing, err := q.catalog.Landing()
	if err != nil {
		return nil, err
	}

	products := slices.Clone(landing.FeaturedProducts)
	sortKey := req.Sort
	if sortKey == "" {
		sortKey = SortRatingDesc
	}
	switch sortKey {
	case SortRatingDesc:
		slices.SortStableFunc(products, func(a, b domain.FeaturedProduct) int { return cmp.Compare(b.Rating, a.Rating) })
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b domain.FeaturedProduct) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b domain.FeaturedProduct) int { return cmp.Compare(b.Price, a.Price) })
	}

	if len(products) > limit {
		products = products[:limit]
	}
	if products == nil {
		products = []domain.FeaturedProduct{}
	}
	return products, nil
}
