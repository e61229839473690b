package pipeline

import (
	"strconv"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// Page is a window over a sorted result set.
type Page struct {
	Items      []domain.Product
	Total      int
	TotalPages int
}

// Paginate slices sorted into fixed-size pages and returns the requested one.
// A page past the end is an empty page, not an error.
func Paginate(sorted []domain.Product, page, limit int) (Page, error) {
	if page < 1 {
		return Page{}, domain.NewValidationError("page", strconv.Itoa(page), "must be at least 1")
	}
	if limit <= 0 {
		return Page{}, domain.NewValidationError("limit", strconv.Itoa(limit), "must be greater than 0")
	}

	total := len(sorted)
	result := Page{
		Items:      []domain.Product{},
		Total:      total,
		TotalPages: TotalPages(total, limit),
	}

	// Guard the multiplication: a huge page number must not overflow into a valid offset.
	if page-1 > total/limit {
		return result, nil
	}
	start := (page - 1) * limit
	if start >= total {
		return result, nil
	}
	end := min(start+limit, total)

	result.Items = sorted[start:end:end]
	return result, nil
}

// TotalPages returns ceil(total/limit).
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
