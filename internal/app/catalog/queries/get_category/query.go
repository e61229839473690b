package get_category

import (
	"context"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/contracts"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/pipeline"
)

// Request identifies a category and the criteria for its product listing.
// The Category field of Criteria is overwritten with the resolved category.
type Request struct {
	Slug     string
	Criteria domain.FilterCriteria
}

// Response is a category together with one page of its products.
type Response struct {
	Category domain.Category    `json:"category"`
	Products *domain.ResultPage `json:"products"`
}

// Query handles the category page use case.
type Query struct {
	catalog contracts.Catalog
}

// NewQuery creates a new get category query.
func NewQuery(catalog contracts.Catalog) *Query {
	return &Query{
		catalog: catalog,
	}
}

// Execute resolves the category by slug and lists its products.
func (q *Query) Execute(ctx context.Context, req *Request) (*Response, error) {
	category, err := q.catalog.CategoryBySlug(req.Slug)
	if err != nil {
		return nil, err
	}

	products, err := q.catalog.Products()
	if err != nil {
		return nil, err
	}

	criteria := req.Criteria
	criteria.Category = category.ID

	page, err := pipeline.Run(ctx, products, criteria)
	if err != nil {
		return nil, err
	}

	return &Response{
		Category: category,
		Products: &page,
	}, nil
}
