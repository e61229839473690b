package featured_products

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/testutil"
)

func featured(n int) []domain.FeaturedProduct {
	out := make([]domain.FeaturedProduct, n)
	for i := range out {
		out[i] = domain.FeaturedProduct{
			ID:     fmt.Sprintf("f-%02d", i),
			Price:  float64(10 + (i*7)%30),
			Rating: 3 + float64(i%5)/2,
		}
	}
	return out
}

func ids(products []domain.FeaturedProduct) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestQuery_Execute(t *testing.T) {
	ctx := context.Background()
	catalog := testutil.NewFakeCatalog()
	catalog.LandingData.FeaturedProducts = featured(12)
	q := NewQuery(catalog)

	t.Run("defaults to eight by rating", func(t *testing.T) {
		got, err := q.Execute(ctx, &Request{})
		require.NoError(t, err)
		require.Len(t, got, DefaultLimit)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
		}
	})

	t.Run("price ascending", func(t *testing.T) {
		got, err := q.Execute(ctx, &Request{Sort: SortPriceAsc, Limit: 12})
		require.NoError(t, err)
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].Price, got[i].Price)
		}
	})

	t.Run("price descending", func(t *testing.T) {
		got, err := q.Execute(ctx, &Request{Sort: SortPriceDesc, Limit: 3})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.GreaterOrEqual(t, got[0].Price, got[1].Price)
	})

	t.Run("unknown sort keeps curated order", func(t *testing.T) {
		got, err := q.Execute(ctx, &Request{Sort: "random", Limit: 4})
		require.NoError(t, err)
		assert.Equal(t, []string{"f-00", "f-01", "f-02", "f-03"}, ids(got))
	})

	t.Run("does not reorder the catalog", func(t *testing.T) {
		_, err := q.Execute(ctx, &Request{Sort: SortPriceAsc})
		require.NoError(t, err)
		assert.Equal(t, "f-00", catalog.LandingData.FeaturedProducts[0].ID)
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := q.Execute(ctx, &Request{Limit: -1})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("empty landing", func(t *testing.T) {
		got, err := NewQuery(testutil.NewFakeCatalog()).Execute(ctx, &Request{})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
