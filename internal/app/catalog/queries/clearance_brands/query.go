package clearance_brands

import (
	"context"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/contracts"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// Query handles the clearance carousel use case.
type Query struct {
	catalog contracts.Catalog
}

// NewQuery creates a new clearance brands query.
func NewQuery(catalog contracts.Catalog) *Query {
	return &Query{
		catalog: catalog,
	}
}

// Execute returns the promoted clearance brands.
func (q *Query) Execute(ctx context.Context) ([]domain.ClearanceBrand, error) {
	landing, err := q.catalog.Landing()
	if err != nil {
		return nil, err
	}
	if landing.ClearanceBrands == nil {
		return []domain.ClearanceBrand{}, nil
	}
	return landing.ClearanceBrands, nil
}
