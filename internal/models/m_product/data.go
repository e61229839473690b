package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID    string              `spanner:"product_id"`
	Position     int64               `spanner:"position"`
	Title        string              `spanner:"title"`
	Description  string              `spanner:"description"`
	Category     string              `spanner:"category"`
	Subcategory  spanner.NullString  `spanner:"subcategory"`
	Image        spanner.NullString  `spanner:"image"`
	Price        float64             `spanner:"price"`
	OldPrice     spanner.NullFloat64 `spanner:"old_price"`
	Condition    string              `spanner:"item_condition"`
	Brand        string              `spanner:"brand"`
	EcoRating    int64               `spanner:"eco_rating"`
	Rating       float64             `spanner:"rating"`
	Badges       []string            `spanner:"badges"`
	SellerID     string              `spanner:"seller_id"`
	SellerName   string              `spanner:"seller_name"`
	SellerRating float64             `spanner:"seller_rating"`
	Stock        int64               `spanner:"stock"`
	Tags         []string            `spanner:"tags"`
	CreatedAt    time.Time           `spanner:"created_at"`
}
