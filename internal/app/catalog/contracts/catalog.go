package contracts

import (
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// Catalog is the read-only view the query layer works against.
// Slices returned by a Catalog must be treated as immutable.
type Catalog interface {
	// Products returns every product in catalog order.
	Products() ([]domain.Product, error)

	// Categories returns the category tree.
	Categories() ([]domain.Category, error)

	// Landing returns the landing page projections.
	Landing() (domain.Landing, error)

	// ProductByID returns domain.ErrProductNotFound if id is unknown.
	ProductByID(id string) (domain.Product, error)

	// CategoryBySlug returns domain.ErrCategoryNotFound if slug is unknown.
	CategoryBySlug(slug string) (domain.Category, error)
}
