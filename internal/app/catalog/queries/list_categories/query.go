package list_categories

import (
	"context"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/contracts"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// Query handles the list categories query use case.
type Query struct {
	catalog contracts.Catalog
}

// NewQuery creates a new list categories query.
func NewQuery(catalog contracts.Catalog) *Query {
	return &Query{
		catalog: catalog,
	}
}

// Execute returns the full category tree in catalog order.
func (q *Query) Execute(ctx context.Context) ([]domain.Category, error) {
	categories, err := q.catalog.Categories()
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}
