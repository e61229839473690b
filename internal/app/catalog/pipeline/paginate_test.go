package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/testutil"
)

func TestPaginate(t *testing.T) {
	products := testutil.Products(25)

	t.Run("first page", func(t *testing.T) {
		page, err := Paginate(products, 1, 20)
		require.NoError(t, err)
		assert.Len(t, page.Items, 20)
		assert.Equal(t, 25, page.Total)
		assert.Equal(t, 2, page.TotalPages)
		assert.Equal(t, "p-00", page.Items[0].ID)
	})

	t.Run("last partial page", func(t *testing.T) {
		page, err := Paginate(products, 2, 20)
		require.NoError(t, err)
		assert.Equal(t, []string{"p-20", "p-21", "p-22", "p-23", "p-24"}, testutil.IDs(page.Items))
	})

	t.Run("page beyond the end is empty", func(t *testing.T) {
		page, err := Paginate(products, 3, 20)
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Equal(t, 25, page.Total)
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("huge page number does not overflow", func(t *testing.T) {
		page, err := Paginate(products, int(^uint(0)>>1), 20)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})

	t.Run("empty input", func(t *testing.T) {
		page, err := Paginate(nil, 1, 20)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.Total)
		assert.Equal(t, 0, page.TotalPages)
	})

	t.Run("page below one", func(t *testing.T) {
		_, err := Paginate(products, 0, 20)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("non-positive limit", func(t *testing.T) {
		_, err := Paginate(products, 1, 0)
		assert.ErrorIs(t, err, domain.ErrValidation)
		_, err = Paginate(products, 1, -5)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("appending to a page does not touch the source", func(t *testing.T) {
		page, err := Paginate(products, 1, 2)
		require.NoError(t, err)
		_ = append(page.Items, testutil.NewProductBuilder("extra").Build())
		assert.Equal(t, "p-02", products[2].ID)
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestSortThenPaginate_ReconstructsFullSet(t *testing.T) {
	catalog := append(testutil.Products(23), mixedCatalog()...)

	for _, strategy := range domain.SortStrategies() {
		for _, limit := range []int{1, 4, 7, 20, 100} {
			sorted := Sort(catalog, strategy)

			var collected []string
			seen := make(map[string]bool)
			for page := 1; ; page++ {
				p, err := Paginate(sorted, page, limit)
				require.NoError(t, err)
				for _, item := range p.Items {
					require.False(t, seen[item.ID], "duplicate %s", item.ID)
					seen[item.ID] = true
					collected = append(collected, item.ID)
				}
				if page*limit >= p.Total {
					break
				}
			}

			assert.Equal(t, testutil.IDs(sorted), collected, "strategy=%s limit=%d", strategy, limit)
		}
	}
}
