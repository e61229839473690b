package domain

// BrandFacet is a brand with its number of matching products.
type BrandFacet struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ConditionFacet is a condition with its number of matching products.
type ConditionFacet struct {
	Value Condition `json:"value"`
	Label string    `json:"label"`
	Count int       `json:"count"`
}

// EcoRatingFacet is an eco rating bucket with its number of matching products.
type EcoRatingFacet struct {
	Value int    `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Facets are the count-annotated values of each facet dimension.
type Facets struct {
	Brands     []BrandFacet     `json:"brands"`
	Conditions []ConditionFacet `json:"conditions"`
	EcoRatings []EcoRatingFacet `json:"eco_ratings"`
}

// ResultPage is one page of a filtered, sorted product listing.
type ResultPage struct {
	Results    []Product `json:"results"`
	Facets     Facets    `json:"facets"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"totalPages"`
}

// HasMore reports whether pages after this one hold more results.
func (r *ResultPage) HasMore() bool {
	return r.Page*r.Limit < r.Total
}
