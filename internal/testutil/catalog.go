package testutil

import (
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/contracts"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// FakeCatalog is an in-memory contracts.Catalog.
// Setting Err makes every accessor fail with it.
type FakeCatalog struct {
	ProductList  []domain.Product
	CategoryList []domain.Category
	LandingData  domain.Landing
	Err          error
}

var _ contracts.Catalog = (*FakeCatalog)(nil)

// NewFakeCatalog creates a FakeCatalog holding products.
func NewFakeCatalog(products ...domain.Product) *FakeCatalog {
	return &FakeCatalog{ProductList: products}
}

// Products implements contracts.Catalog.
func (c *FakeCatalog) Products() ([]domain.Product, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.ProductList, nil
}

// Categories implements contracts.Catalog.
func (c *FakeCatalog) Categories() ([]domain.Category, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.CategoryList, nil
}

// Landing implements contracts.Catalog.
func (c *FakeCatalog) Landing() (domain.Landing, error) {
	if c.Err != nil {
		return domain.Landing{}, c.Err
	}
	return c.LandingData, nil
}

// ProductByID implements contracts.Catalog.
func (c *FakeCatalog) ProductByID(id string) (domain.Product, error) {
	if c.Err != nil {
		return domain.Product{}, c.Err
	}
	for _, p := range c.ProductList {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

// CategoryBySlug implements contracts.Catalog.
func (c *FakeCatalog) CategoryBySlug(slug string) (domain.Category, error) {
	if c.Err != nil {
		return domain.Category{}, c.Err
	}
	for _, cat := range c.CategoryList {
		if cat.Slug == slug {
			return cat, nil
		}
	}
	return domain.Category{}, domain.ErrCategoryNotFound
}
