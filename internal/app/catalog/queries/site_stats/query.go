package site_stats

import (
	"context"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/contracts"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// Query handles the site statistics use case.
type Query struct {
	catalog contracts.Catalog
}

// NewQuery creates a new site stats query.
func NewQuery(catalog contracts.Catalog) *Query {
	return &Query{
		catalog: catalog,
	}
}

// Execute returns the marketplace headline numbers.
func (q *Query) Execute(ctx context.Context) (*domain.SiteStats, error) {
	landing, err := q.catalog.Landing()
	if err != nil {
		return nil, err
	}
	return &landing.SiteStats, nil
}
