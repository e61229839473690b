package repo

import (
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// collector accumulates decoded rows into a snapshot, validating each one.
// Rejected rows are recorded and skipped. Product IDs and category IDs and
// slugs must be unique; the first occurrence wins.
type collector struct {
	snapshot      domain.Snapshot
	productIDs    map[string]struct{}
	categoryIDs   map[string]struct{}
	categorySlugs map[string]struct{}
}

func newCollector(products, categories int) *collector {
	return &collector{
		snapshot: domain.Snapshot{
			Products:   make([]domain.Product, 0, products),
			Categories: make([]domain.Category, 0, categories),
		},
		productIDs:    make(map[string]struct{}, products),
		categoryIDs:   make(map[string]struct{}, categories),
		categorySlugs: make(map[string]struct{}, categories),
	}
}

func (c *collector) reject(kind string, index int, id string, err error) {
	c.snapshot.Rejected = append(c.snapshot.Rejected, domain.Rejection{
		Kind:  kind,
		Index: index,
		ID:    id,
		Err:   err,
	})
}

func (c *collector) product(index int, p domain.Product) {
	err := p.Validate()
	if err == nil {
		if _, dup := c.productIDs[p.ID]; dup {
			err = domain.ErrDuplicateID
		}
	}
	if err != nil {
		c.reject(domain.KindProduct, index, p.ID, err)
		return
	}
	c.productIDs[p.ID] = struct{}{}
	c.snapshot.Products = append(c.snapshot.Products, p)
}

func (c *collector) category(index int, cat domain.Category) {
	err := cat.Validate()
	if err == nil {
		_, dupID := c.categoryIDs[cat.ID]
		_, dupSlug := c.categorySlugs[cat.Slug]
		if dupID || dupSlug {
			err = domain.ErrDuplicateID
		}
	}
	if err != nil {
		c.reject(domain.KindCategory, index, cat.ID, err)
		return
	}

	subs := make([]domain.Subcategory, 0, len(cat.Subcategories))
	for i, sub := range cat.Subcategories {
		if err := sub.Validate(); err != nil {
			c.reject(domain.KindSubcategory, i, sub.ID, err)
			continue
		}
		subs = append(subs, sub)
	}
	cat.Subcategories = subs

	c.categoryIDs[cat.ID] = struct{}{}
	c.categorySlugs[cat.Slug] = struct{}{}
	c.snapshot.Categories = append(c.snapshot.Categories, cat)
}

func (c *collector) landing(l domain.Landing) {
	c.snapshot.Landing = l
}

func (c *collector) result() *domain.Snapshot {
	snap := c.snapshot
	if snap.Landing.FeaturedProducts == nil {
		snap.Landing.FeaturedProducts = []domain.FeaturedProduct{}
	}
	if snap.Landing.ClearanceBrands == nil {
		snap.Landing.ClearanceBrands = []domain.ClearanceBrand{}
	}
	return &snap
}
