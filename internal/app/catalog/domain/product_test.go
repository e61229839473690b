package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() Product {
	return Product{
		ID:        "p-1",
		Title:     "Linen shirt",
		Category:  "fashion",
		Price:     25,
		Condition: ConditionGood,
		Brand:     "Patagonia",
		EcoRating: 4,
		Stock:     1,
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestProduct_Validate(t *testing.T) {
	t.Run("valid product", func(t *testing.T) {
		p := validProduct()
		require.NoError(t, p.Validate())
	})

	cases := []struct {
		name   string
		mutate func(p *Product)
		want   error
	}{
		{"empty id", func(p *Product) { p.ID = "" }, ErrEmptyID},
		{"empty title", func(p *Product) { p.Title = "" }, ErrEmptyTitle},
		{"empty category", func(p *Product) { p.Category = "" }, ErrInvalidCategory},
		{"empty brand", func(p *Product) { p.Brand = "" }, ErrEmptyBrand},
		{"negative price", func(p *Product) { p.Price = -1 }, ErrNegativePrice},
		{"unknown condition", func(p *Product) { p.Condition = "mint" }, ErrInvalidCondition},
		{"eco rating too low", func(p *Product) { p.EcoRating = 0 }, ErrInvalidEcoRating},
		{"eco rating too high", func(p *Product) { p.EcoRating = 6 }, ErrInvalidEcoRating},
		{"negative stock", func(p *Product) { p.Stock = -2 }, ErrNegativeStock},
		{"missing created_at", func(p *Product) { p.CreatedAt = time.Time{} }, ErrMissingCreatedAt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProduct()
			tc.mutate(&p)
			assert.ErrorIs(t, p.Validate(), tc.want)
		})
	}

	t.Run("zero price is allowed", func(t *testing.T) {
		p := validProduct()
		p.Price = 0
		assert.NoError(t, p.Validate())
	})
}

func TestProduct_Badges(t *testing.T) {
	p := validProduct()
	p.Badges = []string{BadgeClearance}

	assert.True(t, p.IsClearance())
	assert.False(t, p.IsMostLoved())
	assert.False(t, p.HasBadge("clearance"), "badge match is case-sensitive")
}

func TestProduct_Discounted(t *testing.T) {
	p := validProduct()
	assert.False(t, p.Discounted())

	higher := 40.0
	p.OldPrice = &higher
	assert.True(t, p.Discounted())

	lower := 10.0
	p.OldPrice = &lower
	assert.False(t, p.Discounted())
}

func TestCondition_Label(t *testing.T) {
	assert.Equal(t, "Like New", ConditionLikeNew.Label())
	assert.Equal(t, "mint", Condition("mint").Label())
	assert.Len(t, Conditions(), 4)
}

func TestParseSortStrategy(t *testing.T) {
	for _, s := range SortStrategies() {
		assert.Equal(t, s, ParseSortStrategy(string(s)))
	}
	assert.Equal(t, SortNewest, ParseSortStrategy("bogus"))
	assert.Equal(t, SortNewest, ParseSortStrategy(""))
	assert.Equal(t, SortNewest, ParseSortStrategy("PRICE_ASC"))
}

func TestErrors(t *testing.T) {
	t.Run("validation error matches sentinel", func(t *testing.T) {
		err := NewValidationError("min_price", "abc", "must be a number")
		assert.True(t, errors.Is(err, ErrValidation))
		assert.Equal(t, `invalid min_price "abc": must be a number`, err.Error())
	})

	t.Run("data source error unwraps cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewDataSourceError("spanner", cause)
		assert.ErrorIs(t, err, ErrDataSource)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("not found family", func(t *testing.T) {
		assert.ErrorIs(t, ErrProductNotFound, ErrNotFound)
		assert.ErrorIs(t, ErrCategoryNotFound, ErrNotFound)
		assert.ErrorIs(t, ErrCatalogNotLoaded, ErrDataSource)
	})
}

func TestResultPage_HasMore(t *testing.T) {
	r := ResultPage{Total: 25, Page: 1, Limit: 20}
	assert.True(t, r.HasMore())
	r.Page = 2
	assert.False(t, r.HasMore())
}
