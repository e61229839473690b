package list_products

import (
	"context"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/contracts"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/pipeline"
)

// Request contains validated filter, sort and pagination criteria.
type Request struct {
	Criteria domain.FilterCriteria
}

// Query handles the list products query use case.
type Query struct {
	catalog contracts.Catalog
}

// NewQuery creates a new list products query.
func NewQuery(catalog contracts.Catalog) *Query {
	return &Query{
		catalog: catalog,
	}
}

// Execute runs the catalog pipeline over the current snapshot.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.ResultPage, error) {
	products, err := q.catalog.Products()
	if err != nil {
		return nil, err
	}

	page, err := pipeline.Run(ctx, products, req.Criteria)
	if err != nil {
		return nil, err
	}
	return &page, nil
}
