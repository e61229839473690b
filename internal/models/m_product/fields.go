package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID    = "product_id"
	Position     = "position"
	Title        = "title"
	Description  = "description"
	Category     = "category"
	Subcategory  = "subcategory"
	Image        = "image"
	Price        = "price"
	OldPrice     = "old_price"
	Condition    = "item_condition"
	Brand        = "brand"
	EcoRating    = "eco_rating"
	Rating       = "rating"
	Badges       = "badges"
	SellerID     = "seller_id"
	SellerName   = "seller_name"
	SellerRating = "seller_rating"
	Stock        = "stock"
	Tags         = "tags"
	CreatedAt    = "created_at"
)

// Columns returns every column in table order.
func Columns() []string {
	return []string{
		ProductID,
		Position,
		Title,
		Description,
		Category,
		Subcategory,
		Image,
		Price,
		OldPrice,
		Condition,
		Brand,
		EcoRating,
		Rating,
		Badges,
		SellerID,
		SellerName,
		SellerRating,
		Stock,
		Tags,
		CreatedAt,
	}
}
