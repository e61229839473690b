package m_category

import "cloud.google.com/go/spanner"

// Data represents the database model for the categories table.
type Data struct {
	CategoryID  string             `spanner:"category_id"`
	ParentID    spanner.NullString `spanner:"parent_id"`
	Position    int64              `spanner:"position"`
	Name        string             `spanner:"name"`
	Slug        string             `spanner:"slug"`
	Description spanner.NullString `spanner:"description"`
	HeroImage   spanner.NullString `spanner:"hero_image"`
}
