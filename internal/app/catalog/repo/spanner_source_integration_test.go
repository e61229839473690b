//go:build integration

package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/pkg/committer"
	"github.com/light-bringer/ecofinds-storefront/internal/testutil"
)

func TestSpannerSource_RoundTrip(t *testing.T) {
	client := testutil.SetupSpannerTest(t)
	ctx := context.Background()

	// Reverse build order so that position, not created_at or id, decides catalog order.
	products := testutil.Products(5)
	for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
		products[i], products[j] = products[j], products[i]
	}
	products[2] = testutil.NewProductBuilder(products[2].ID).
		WithOldPrice(99).
		WithBadges(domain.BadgeClearance).
		WithCreatedAt(products[2].CreatedAt).
		Build()

	seed := &domain.Snapshot{
		Products: products,
		Categories: []domain.Category{
			{ID: "fashion", Name: "Fashion", Slug: "fashion", Description: "Clothing", Subcategories: []domain.Subcategory{
				{ID: "tops", Name: "Tops", Slug: "tops"},
				{ID: "shoes", Name: "Shoes", Slug: "shoes"},
			}},
			{ID: "home", Name: "Home", Slug: "home", Subcategories: []domain.Subcategory{}},
		},
	}

	n, err := NewSeedWriter(committer.NewCommitter(client)).Write(ctx, seed)
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	testutil.AssertRowCount(t, client, "products", 5)
	testutil.AssertRowCount(t, client, "categories", 4)

	snap, err := NewSpannerSource(client, nil).Load(ctx)
	require.NoError(t, err)

	assert.Empty(t, snap.Rejected)
	assert.Equal(t, testutil.IDs(products), testutil.IDs(snap.Products))
	require.NotNil(t, snap.Products[2].OldPrice)
	assert.Equal(t, 99.0, *snap.Products[2].OldPrice)
	assert.True(t, snap.Products[2].IsClearance())

	require.Len(t, snap.Categories, 2)
	assert.Equal(t, "fashion", snap.Categories[0].ID)
	assert.Equal(t, []string{"tops", "shoes"}, []string{
		snap.Categories[0].Subcategories[0].ID,
		snap.Categories[0].Subcategories[1].ID,
	})
	assert.Empty(t, snap.Categories[1].Subcategories)

	t.Run("re-import replaces rows", func(t *testing.T) {
		_, err := NewSeedWriter(committer.NewCommitter(client)).Write(ctx, &domain.Snapshot{Products: products[:1]})
		require.NoError(t, err)
		testutil.AssertRowCount(t, client, "products", 1)
		testutil.AssertRowCount(t, client, "categories", 0)
	})
}
