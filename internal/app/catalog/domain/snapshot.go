package domain

import (
	"fmt"
	"time"
)

// FeaturedProduct is a landing page product card.
type FeaturedProduct struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Price    float64  `json:"price" yaml:"price"`
	OldPrice *float64 `json:"old_price,omitempty" yaml:"old_price"`
	ImageURL string   `json:"image_url" yaml:"image_url"`
	Badges   []string `json:"badges" yaml:"badges"`
	Rating   float64  `json:"rating" yaml:"rating"`
	Seller   Seller   `json:"seller" yaml:"seller"`
}

// ClearanceBrand is a brand promoted in the clearance carousel.
type ClearanceBrand struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	LogoURL         string `json:"logo_url" yaml:"logo_url"`
	SampleProductID string `json:"sample_product_id" yaml:"sample_product_id"`
}

// SiteStats are the marketplace headline numbers.
type SiteStats struct {
	ItemsSold     int     `json:"items_sold" yaml:"items_sold"`
	AvgRating     float64 `json:"avg_rating" yaml:"avg_rating"`
	ActiveSellers int     `json:"active_sellers" yaml:"active_sellers"`
}

// Landing holds the marketing projections shown on the landing page.
type Landing struct {
	FeaturedProducts []FeaturedProduct `json:"featured_products" yaml:"featured_products"`
	ClearanceBrands  []ClearanceBrand  `json:"clearance_brands" yaml:"clearance_brands"`
	SiteStats        SiteStats         `json:"site_stats" yaml:"site_stats"`
}

// Record kinds named in a Rejection.
const (
	KindProduct     = "product"
	KindCategory    = "category"
	KindSubcategory = "subcategory"
)

// Rejection records a catalog row excluded at load time.
// Index is the row's position in its source collection.
type Rejection struct {
	Kind  string
	Index int
	ID    string
	Err   error
}

func (r Rejection) String() string {
	if r.ID == "" {
		return fmt.Sprintf("%s #%d: %v", r.Kind, r.Index, r.Err)
	}
	return fmt.Sprintf("%s #%d (%s): %v", r.Kind, r.Index, r.ID, r.Err)
}

// Snapshot is a consistent, read-only view of the catalog.
type Snapshot struct {
	Products   []Product
	Categories []Category
	Landing    Landing
	Rejected   []Rejection
	LoadedAt   time.Time
}
