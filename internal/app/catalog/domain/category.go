package domain

// Subcategory is a child of a Category.
type Subcategory struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`
}

// Category is a top-level browse category.
type Category struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	Slug          string        `json:"slug" yaml:"slug"`
	Description   string        `json:"description" yaml:"description"`
	HeroImage     string        `json:"hero_image" yaml:"hero_image"`
	Subcategories []Subcategory `json:"subcategories" yaml:"subcategories"`
}

// Validate checks the fields used for routing and product lookup.
func (c *Category) Validate() error {
	if c.ID == "" {
		return ErrEmptyCategoryID
	}
	if c.Slug == "" {
		return ErrEmptySlug
	}
	return nil
}

// Validate checks the fields used for routing.
func (s *Subcategory) Validate() error {
	if s.ID == "" {
		return ErrEmptyCategoryID
	}
	if s.Slug == "" {
		return ErrEmptySlug
	}
	return nil
}
