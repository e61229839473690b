package pipeline

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// Aggregate computes every facet dimension from one product set in a single pass.
// Entries are ordered by descending count, then ascending label. Values with
// no matching products are omitted, as are records whose facet field is not
// well-typed for that dimension.
func Aggregate(products []domain.Product) domain.Facets {
	brands := make(map[string]int)
	conditions := make(map[domain.Condition]int)
	ecoRatings := make(map[int]int)

	for i := range products {
		p := &products[i]
		if p.Brand != "" {
			brands[p.Brand]++
		}
		if p.Condition.Valid() {
			conditions[p.Condition]++
		}
		if p.EcoRating >= domain.MinEcoRating && p.EcoRating <= domain.MaxEcoRating {
			ecoRatings[p.EcoRating]++
		}
	}

	facets := domain.Facets{
		Brands:     make([]domain.BrandFacet, 0, len(brands)),
		Conditions: make([]domain.ConditionFacet, 0, len(conditions)),
		EcoRatings: make([]domain.EcoRatingFacet, 0, len(ecoRatings)),
	}

	for name, count := range brands {
		facets.Brands = append(facets.Brands, domain.BrandFacet{Name: name, Count: count})
	}
	slices.SortFunc(facets.Brands, func(a, b domain.BrandFacet) int {
		return byCountThenLabel(a.Count, b.Count, a.Name, b.Name)
	})

	for value, count := range conditions {
		facets.Conditions = append(facets.Conditions, domain.ConditionFacet{
			Value: value,
			Label: value.Label(),
			Count: count,
		})
	}
	slices.SortFunc(facets.Conditions, func(a, b domain.ConditionFacet) int {
		return byCountThenLabel(a.Count, b.Count, a.Label, b.Label)
	})

	for value, count := range ecoRatings {
		facets.EcoRatings = append(facets.EcoRatings, domain.EcoRatingFacet{
			Value: value,
			Label: EcoRatingLabel(value),
			Count: count,
		})
	}
	slices.SortFunc(facets.EcoRatings, func(a, b domain.EcoRatingFacet) int {
		return byCountThenLabel(a.Count, b.Count, a.Label, b.Label)
	})

	return facets
}

// EcoRatingLabel returns the display label of an eco rating bucket.
func EcoRatingLabel(rating int) string {
	if rating == 1 {
		return "1 leaf"
	}
	return fmt.Sprintf("%d leaves", rating)
}

func byCountThenLabel(countA, countB int, labelA, labelB string) int {
	if c := cmp.Compare(countB, countA); c != 0 {
		return c
	}
	return cmp.Compare(labelA, labelB)
}
