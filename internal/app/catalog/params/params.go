// Package params converts between raw query-string parameters and typed
// domain.FilterCriteria. It is the only place where catalog query input is
// validated; the pipeline assumes well-typed criteria.
package params

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// Query parameter names.
const (
	Category     = "category"
	Subcategory  = "subcategory"
	Query        = "q"
	MinPrice     = "min_price"
	MaxPrice     = "max_price"
	Condition    = "condition"
	Brand        = "brand"
	EcoRatingMin = "eco_rating_min"
	Clearance    = "clearance"
	Sort         = "sort"
	Page         = "page"
	Limit        = "limit"
)

// Parse builds FilterCriteria from query parameters.
//
// Numeric parameters are parsed strictly and a malformed value is a
// *domain.ValidationError. clearance is true only for the literal "true".
// An unrecognised sort falls back to newest. limit is clamped to domain.MaxLimit.
func Parse(values url.Values) (domain.FilterCriteria, error) {
	c := domain.DefaultCriteria()

	c.Category = values.Get(Category)
	c.Subcategory = values.Get(Subcategory)
	c.Query = strings.TrimSpace(values.Get(Query))
	c.Condition = domain.Condition(values.Get(Condition))
	c.Brand = values.Get(Brand)
	c.Clearance = values.Get(Clearance) == "true"
	c.Sort = domain.ParseSortStrategy(values.Get(Sort))

	var err error
	if c.MinPrice, err = optionalPrice(values, MinPrice); err != nil {
		return domain.FilterCriteria{}, err
	}
	if c.MaxPrice, err = optionalPrice(values, MaxPrice); err != nil {
		return domain.FilterCriteria{}, err
	}
	if c.MinPrice != nil && c.MaxPrice != nil && *c.MinPrice > *c.MaxPrice {
		return domain.FilterCriteria{}, domain.NewValidationError(MinPrice, values.Get(MinPrice), "must not exceed max_price")
	}

	if raw := values.Get(EcoRatingMin); raw != "" {
		rating, err := strictInt(EcoRatingMin, raw)
		if err != nil {
			return domain.FilterCriteria{}, err
		}
		c.EcoRatingMin = &rating
	}

	if raw := values.Get(Page); raw != "" {
		if c.Page, err = strictInt(Page, raw); err != nil {
			return domain.FilterCriteria{}, err
		}
		if c.Page < 1 {
			return domain.FilterCriteria{}, domain.NewValidationError(Page, raw, "must be at least 1")
		}
	}

	if raw := values.Get(Limit); raw != "" {
		if c.Limit, err = strictInt(Limit, raw); err != nil {
			return domain.FilterCriteria{}, err
		}
		if c.Limit <= 0 {
			return domain.FilterCriteria{}, domain.NewValidationError(Limit, raw, "must be greater than 0")
		}
		c.Limit = min(c.Limit, domain.MaxLimit)
	}

	return c, nil
}

// Encode is the inverse of Parse. Absent criteria are omitted and q is
// trimmed the same way Parse trims it. Parse(Encode(c)) == c holds only for
// Limit <= domain.MaxLimit, since Parse clamps larger limits.
func Encode(c domain.FilterCriteria) url.Values {
	values := url.Values{}

	setIf := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}
	setIf(Category, c.Category)
	setIf(Subcategory, c.Subcategory)
	setIf(Query, strings.TrimSpace(c.Query))
	setIf(Condition, string(c.Condition))
	setIf(Brand, c.Brand)

	if c.MinPrice != nil {
		values.Set(MinPrice, formatFloat(*c.MinPrice))
	}
	if c.MaxPrice != nil {
		values.Set(MaxPrice, formatFloat(*c.MaxPrice))
	}
	if c.EcoRatingMin != nil {
		values.Set(EcoRatingMin, strconv.Itoa(*c.EcoRatingMin))
	}
	if c.Clearance {
		values.Set(Clearance, "true")
	}

	sort := c.Sort
	if sort == "" {
		sort = domain.SortNewest
	}
	values.Set(Sort, string(sort))

	page, limit := c.Page, c.Limit
	if page == 0 {
		page = domain.DefaultPage
	}
	if limit == 0 {
		limit = domain.DefaultLimit
	}
	values.Set(Page, strconv.Itoa(page))
	values.Set(Limit, strconv.Itoa(limit))

	return values
}

func optionalPrice(values url.Values, key string) (*float64, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}
	f, err := strictFloat(key, raw)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// strictFloat rejects anything that is not a finite decimal number.
// strconv.ParseFloat alone accepts "NaN", "Inf" and hex floats.
func strictFloat(key, raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || strings.ContainsAny(raw, "xXpP_") {
		return 0, domain.NewValidationError(key, raw, "must be a number")
	}
	return f, nil
}

func strictInt(key, raw string) (int, error) {
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(key, raw, "must be an integer")
	}
	return i, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
