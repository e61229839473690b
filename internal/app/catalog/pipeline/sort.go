package pipeline

import (
	"cmp"
	"slices"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// Sort returns a sorted copy of products.
// Sorting is stable: products with equal keys keep their input order.
// Unknown strategies sort as domain.SortNewest.
func Sort(products []domain.Product, strategy domain.SortStrategy) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)

	slices.SortStableFunc(out, comparator(strategy))
	return out
}

func comparator(strategy domain.SortStrategy) func(a, b domain.Product) int {
	switch strategy {
	case domain.SortPriceAsc:
		return func(a, b domain.Product) int { return cmp.Compare(a.Price, b.Price) }
	case domain.SortPriceDesc:
		return func(a, b domain.Product) int { return cmp.Compare(b.Price, a.Price) }
	case domain.SortRating:
		return func(a, b domain.Product) int { return cmp.Compare(b.Rating, a.Rating) }
	case domain.SortMostLoved:
		return func(a, b domain.Product) int { return cmp.Compare(lovedKey(&b), lovedKey(&a)) }
	default:
		return func(a, b domain.Product) int { return b.CreatedAt.Compare(a.CreatedAt) }
	}
}

func lovedKey(p *domain.Product) int {
	if p.IsMostLoved() {
		return 1
	}
	return 0
}
