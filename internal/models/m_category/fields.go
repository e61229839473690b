package m_category

// Field name constants for the categories table.
// Subcategories share the table and carry a parent_id.
const (
	TableName = "categories"

	CategoryID  = "category_id"
	ParentID    = "parent_id"
	Position    = "position"
	Name        = "name"
	Slug        = "slug"
	Description = "description"
	HeroImage   = "hero_image"
)

// Columns returns every column in table order.
func Columns() []string {
	return []string{CategoryID, ParentID, Position, Name, Slug, Description, HeroImage}
}
