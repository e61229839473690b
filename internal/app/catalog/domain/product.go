package domain

import (
	"slices"
	"time"
)

// Badge labels with filtering or sorting semantics.
const (
	BadgeClearance = "Clearance"
	BadgeMostLoved = "Most Loved"
)

// Eco rating bounds.
const (
	MinEcoRating = 1
	MaxEcoRating = 5
)

// Seller is the embedded, read-only seller projection of a product.
type Seller struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Rating float64 `json:"rating" yaml:"rating"`
}

// Product is an immutable catalog record.
// Records are validated once when a snapshot is loaded; everything
// downstream of the catalog may assume a well-typed Product.
type Product struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Category    string    `json:"category" yaml:"category"`
	Subcategory string    `json:"subcategory,omitempty" yaml:"subcategory"`
	Image       string    `json:"image,omitempty" yaml:"image"`
	Price       float64   `json:"price" yaml:"price"`
	OldPrice    *float64  `json:"old_price,omitempty" yaml:"old_price"`
	Condition   Condition `json:"condition" yaml:"condition"`
	Brand       string    `json:"brand" yaml:"brand"`
	EcoRating   int       `json:"eco_rating" yaml:"eco_rating"`
	Rating      float64   `json:"rating" yaml:"rating"`
	Badges      []string  `json:"badges" yaml:"badges"`
	Seller      Seller    `json:"seller" yaml:"seller"`
	Stock       int       `json:"stock" yaml:"stock"`
	Tags        []string  `json:"tags" yaml:"tags"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// Validate checks that every filterable and sortable field is present and well-typed.
func (p *Product) Validate() error {
	if p.ID == "" {
		return ErrEmptyID
	}
	if p.Title == "" {
		return ErrEmptyTitle
	}
	if p.Category == "" {
		return ErrInvalidCategory
	}
	if p.Brand == "" {
		return ErrEmptyBrand
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if !p.Condition.Valid() {
		return ErrInvalidCondition
	}
	if p.EcoRating < MinEcoRating || p.EcoRating > MaxEcoRating {
		return ErrInvalidEcoRating
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	if p.CreatedAt.IsZero() {
		return ErrMissingCreatedAt
	}
	return nil
}

// HasBadge reports whether the product carries the given badge label.
func (p *Product) HasBadge(badge string) bool {
	return slices.Contains(p.Badges, badge)
}

// IsClearance reports whether the product is clearance inventory.
func (p *Product) IsClearance() bool {
	return p.HasBadge(BadgeClearance)
}

// IsMostLoved reports whether the product carries the "Most Loved" badge.
func (p *Product) IsMostLoved() bool {
	return p.HasBadge(BadgeMostLoved)
}

// Discounted reports whether a pre-discount price above the current price is recorded.
// OldPrice is not validated against Price; a lower OldPrice is simply not a discount.
func (p *Product) Discounted() bool {
	return p.OldPrice != nil && *p.OldPrice > p.Price
}

// InStock reports whether the product can be purchased.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
