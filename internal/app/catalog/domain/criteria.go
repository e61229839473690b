package domain

// Pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// SortStrategy names an ordering of a result set.
type SortStrategy string

const (
	SortNewest    SortStrategy = "newest"
	SortPriceAsc  SortStrategy = "price_asc"
	SortPriceDesc SortStrategy = "price_desc"
	SortRating    SortStrategy = "rating"
	SortMostLoved SortStrategy = "most_loved"
)

// SortStrategies returns every supported strategy.
func SortStrategies() []SortStrategy {
	return []SortStrategy{SortNewest, SortPriceAsc, SortPriceDesc, SortRating, SortMostLoved}
}

// ParseSortStrategy maps a raw value onto a strategy.
// Unrecognised values fall back to SortNewest so that old shared URLs keep working.
func ParseSortStrategy(raw string) SortStrategy {
	s := SortStrategy(raw)
	if s.Valid() {
		return s
	}
	return SortNewest
}

// Valid reports whether s is a supported strategy.
func (s SortStrategy) Valid() bool {
	switch s {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortRating, SortMostLoved:
		return true
	}
	return false
}

// FilterCriteria holds the request-scoped filter, sort and pagination input.
// Empty strings and nil pointers mean "no restriction".
type FilterCriteria struct {
	Category     string
	Subcategory  string
	Query        string
	MinPrice     *float64
	MaxPrice     *float64
	Condition    Condition
	Brand        string
	EcoRatingMin *int
	Clearance    bool

	Sort  SortStrategy
	Page  int
	Limit int
}

// DefaultCriteria returns unfiltered criteria for the first page.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Sort:  SortNewest,
		Page:  DefaultPage,
		Limit: DefaultLimit,
	}
}

// WithPage returns a copy of the criteria targeting another page.
func (c FilterCriteria) WithPage(page int) FilterCriteria {
	c.Page = page
	return c
}

// HasFilters reports whether any filter predicate is active.
func (c FilterCriteria) HasFilters() bool {
	return c.Category != "" ||
		c.Subcategory != "" ||
		c.Query != "" ||
		c.MinPrice != nil ||
		c.MaxPrice != nil ||
		c.Condition != "" ||
		c.Brand != "" ||
		c.EcoRatingMin != nil ||
		c.Clearance
}
