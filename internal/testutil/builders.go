package testutil

import (
	"fmt"
	"time"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// BaseTime is the created_at of the first product built by NewProductBuilder.
var BaseTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// ProductBuilder helps create products for tests with a fluent interface
type ProductBuilder struct {
	p domain.Product
}

// NewProductBuilder creates a new builder with default values
func NewProductBuilder(id string) *ProductBuilder {
	return &ProductBuilder{p: domain.Product{
		ID:          id,
		Title:       "Test Product " + id,
		Description: "Default Description",
		Category:    "fashion",
		Subcategory: "tops",
		Price:       10,
		Condition:   domain.ConditionGood,
		Brand:       "Acme",
		EcoRating:   3,
		Rating:      4,
		Badges:      []string{},
		Seller:      domain.Seller{ID: "s-1", Name: "Test Seller", Rating: 4.5},
		Stock:       1,
		Tags:        []string{},
		CreatedAt:   BaseTime,
	}}
}

// WithTitle sets the product title
func (b *ProductBuilder) WithTitle(title string) *ProductBuilder {
	b.p.Title = title
	return b
}

// WithDescription sets the product description
func (b *ProductBuilder) WithDescription(description string) *ProductBuilder {
	b.p.Description = description
	return b
}

// WithCategory sets the category and subcategory
func (b *ProductBuilder) WithCategory(category, subcategory string) *ProductBuilder {
	b.p.Category = category
	b.p.Subcategory = subcategory
	return b
}

// WithPrice sets the product price
func (b *ProductBuilder) WithPrice(price float64) *ProductBuilder {
	b.p.Price = price
	return b
}

// WithOldPrice sets the pre-discount price
func (b *ProductBuilder) WithOldPrice(price float64) *ProductBuilder {
	b.p.OldPrice = &price
	return b
}

// WithCondition sets the product condition
func (b *ProductBuilder) WithCondition(c domain.Condition) *ProductBuilder {
	b.p.Condition = c
	return b
}

// WithBrand sets the product brand
func (b *ProductBuilder) WithBrand(brand string) *ProductBuilder {
	b.p.Brand = brand
	return b
}

// WithEcoRating sets the eco rating
func (b *ProductBuilder) WithEcoRating(rating int) *ProductBuilder {
	b.p.EcoRating = rating
	return b
}

// WithRating sets the customer rating
func (b *ProductBuilder) WithRating(rating float64) *ProductBuilder {
	b.p.Rating = rating
	return b
}

// WithBadges sets the badges
func (b *ProductBuilder) WithBadges(badges ...string) *ProductBuilder {
	b.p.Badges = badges
	return b
}

// WithTags sets the search tags
func (b *ProductBuilder) WithTags(tags ...string) *ProductBuilder {
	b.p.Tags = tags
	return b
}

// WithStock sets the stock level
func (b *ProductBuilder) WithStock(stock int) *ProductBuilder {
	b.p.Stock = stock
	return b
}

// WithCreatedAt sets the creation timestamp
func (b *ProductBuilder) WithCreatedAt(t time.Time) *ProductBuilder {
	b.p.CreatedAt = t
	return b
}

// Build returns the product
func (b *ProductBuilder) Build() domain.Product {
	return b.p
}

// Products builds n default products. Product i is created i hours after BaseTime,
// so newest-first order is the reverse of build order.
func Products(n int) []domain.Product {
	out := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewProductBuilder(fmt.Sprintf("p-%02d", i)).
			WithCreatedAt(BaseTime.Add(time.Duration(i)*time.Hour)).
			Build())
	}
	return out
}

// Prices builds one product per price, in the given order.
func Prices(prices ...float64) []domain.Product {
	out := make([]domain.Product, 0, len(prices))
	for i, price := range prices {
		out = append(out, NewProductBuilder(fmt.Sprintf("p-%02d", i)).
			WithPrice(price).
			WithCreatedAt(BaseTime.Add(time.Duration(i)*time.Hour)).
			Build())
	}
	return out
}

// IDs returns the product IDs in order.
func IDs(products []domain.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

// Float returns a pointer to f.
func Float(f float64) *float64 {
	return &f
}

// Int returns a pointer to i.
func Int(i int) *int {
	return &i
}
