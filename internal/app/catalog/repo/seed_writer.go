package repo

import (
	"context"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/models/m_category"
	"github.com/light-bringer/ecofinds-storefront/internal/models/m_product"
	"github.com/light-bringer/ecofinds-storefront/internal/pkg/committer"
)

// SeedWriter imports a snapshot into the Spanner catalog tables.
// An import replaces the previous table contents.
type SeedWriter struct {
	committer  *committer.Committer
	products   *m_product.Model
	categories *m_category.Model
	batchSize  int
}

// NewSeedWriter creates a SeedWriter.
func NewSeedWriter(c *committer.Committer) *SeedWriter {
	return &SeedWriter{
		committer:  c,
		products:   m_product.NewModel(),
		categories: m_category.NewModel(),
		batchSize:  committer.DefaultBatchSize,
	}
}

// Plan builds the mutations for snap without applying them.
// Catalog order is stored in the position column.
func (w *SeedWriter) Plan(snap *domain.Snapshot) *committer.CommitPlan {
	plan := committer.NewPlan()
	plan.Add(w.products.DeleteAllMut())
	plan.Add(w.categories.DeleteAllMut())

	for i := range snap.Categories {
		cat := &snap.Categories[i]
		plan.Add(w.categories.UpsertMut(categoryToData(cat, i)))
		for j := range cat.Subcategories {
			plan.Add(w.categories.UpsertMut(subcategoryToData(cat.ID, &cat.Subcategories[j], j)))
		}
	}
	for i := range snap.Products {
		plan.Add(w.products.UpsertMut(productToData(&snap.Products[i], i)))
	}
	return plan
}

// Write applies the import plan for snap.
func (w *SeedWriter) Write(ctx context.Context, snap *domain.Snapshot) (int, error) {
	plan := w.Plan(snap)
	if err := w.committer.ApplyInBatches(ctx, plan, w.batchSize); err != nil {
		return 0, domain.NewDataSourceError("spanner", err)
	}
	return plan.Count(), nil
}
