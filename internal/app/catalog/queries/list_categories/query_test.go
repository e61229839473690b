package list_categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/testutil"
)

func TestQuery_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns categories in order", func(t *testing.T) {
		catalog := testutil.NewFakeCatalog()
		catalog.CategoryList = []domain.Category{
			{ID: "fashion", Slug: "fashion"},
			{ID: "home", Slug: "home"},
		}

		categories, err := NewQuery(catalog).Execute(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "fashion", categories[0].ID)
	})

	t.Run("empty catalog yields empty list", func(t *testing.T) {
		categories, err := NewQuery(testutil.NewFakeCatalog()).Execute(ctx)
		require.NoError(t, err)
		assert.NotNil(t, categories)
		assert.Empty(t, categories)
	})
}
