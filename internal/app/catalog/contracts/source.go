package contracts

import (
	"context"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// Source performs a full read of the catalog.
// Implementations return only records that passed domain validation.
type Source interface {
	// Load reads every product, category and landing projection.
	// Failures are reported as *domain.DataSourceError.
	Load(ctx context.Context) (*domain.Snapshot, error)
}
