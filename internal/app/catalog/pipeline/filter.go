// Package pipeline implements the request-scoped product query pipeline:
// filter, facet aggregation, sort and pagination over a catalog snapshot.
//
// Every stage is a pure function of its input. Stages never mutate the
// slices they receive, so a snapshot can be shared by concurrent requests
// without locking.
package pipeline

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// predicate reports whether a product satisfies one criterion.
type predicate func(p *domain.Product) bool

// Filter returns the products matching every active criterion.
// Criteria without a value are skipped. The result is a new slice in catalog order.
func Filter(products []domain.Product, c domain.FilterCriteria) []domain.Product {
	preds := predicates(c)

	out := make([]domain.Product, 0, len(products))
	for i := range products {
		if matchesAll(&products[i], preds) {
			out = append(out, products[i])
		}
	}
	return out
}

func matchesAll(p *domain.Product, preds []predicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}

func predicates(c domain.FilterCriteria) []predicate {
	preds := make([]predicate, 0, 9)

	// Identifier filters are exact and case-sensitive.
	if c.Category != "" {
		preds = append(preds, func(p *domain.Product) bool { return p.Category == c.Category })
	}
	if c.Subcategory != "" {
		preds = append(preds, func(p *domain.Product) bool { return p.Subcategory == c.Subcategory })
	}
	if c.Condition != "" {
		preds = append(preds, func(p *domain.Product) bool { return p.Condition == c.Condition })
	}
	if c.Brand != "" {
		preds = append(preds, func(p *domain.Product) bool { return p.Brand == c.Brand })
	}

	if c.Query != "" {
		preds = append(preds, textMatcher(c.Query))
	}

	if c.MinPrice != nil {
		minPrice := *c.MinPrice
		preds = append(preds, func(p *domain.Product) bool { return p.Price >= minPrice })
	}
	if c.MaxPrice != nil {
		maxPrice := *c.MaxPrice
		preds = append(preds, func(p *domain.Product) bool { return p.Price <= maxPrice })
	}
	if c.EcoRatingMin != nil {
		minRating := *c.EcoRatingMin
		preds = append(preds, func(p *domain.Product) bool { return p.EcoRating >= minRating })
	}
	if c.Clearance {
		preds = append(preds, func(p *domain.Product) bool { return p.IsClearance() })
	}

	return preds
}

// textMatcher matches a case-folded substring against title, description and tags.
func textMatcher(query string) predicate {
	folder := cases.Fold()
	needle := folder.String(query)

	contains := func(s string) bool {
		return strings.Contains(folder.String(s), needle)
	}

	return func(p *domain.Product) bool {
		if contains(p.Title) || contains(p.Description) {
			return true
		}
		for _, tag := range p.Tags {
			if contains(tag) {
				return true
			}
		}
		return false
	}
}
