package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/models/m_category"
	"github.com/light-bringer/ecofinds-storefront/internal/models/m_product"
)

func productToData(p *domain.Product, position int) *m_product.Data {
	data := &m_product.Data{
		ProductID:    p.ID,
		Position:     int64(position),
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		Subcategory:  nullString(p.Subcategory),
		Image:        nullString(p.Image),
		Price:        p.Price,
		Condition:    string(p.Condition),
		Brand:        p.Brand,
		EcoRating:    int64(p.EcoRating),
		Rating:       p.Rating,
		Badges:       p.Badges,
		SellerID:     p.Seller.ID,
		SellerName:   p.Seller.Name,
		SellerRating: p.Seller.Rating,
		Stock:        int64(p.Stock),
		Tags:         p.Tags,
		CreatedAt:    p.CreatedAt,
	}
	if p.OldPrice != nil {
		data.OldPrice = spanner.NullFloat64{Float64: *p.OldPrice, Valid: true}
	}
	return data
}

func dataToProduct(data *m_product.Data) domain.Product {
	p := domain.Product{
		ID:          data.ProductID,
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Subcategory: data.Subcategory.StringVal,
		Image:       data.Image.StringVal,
		Price:       data.Price,
		Condition:   domain.Condition(data.Condition),
		Brand:       data.Brand,
		EcoRating:   int(data.EcoRating),
		Rating:      data.Rating,
		Badges:      nonNil(data.Badges),
		Seller: domain.Seller{
			ID:     data.SellerID,
			Name:   data.SellerName,
			Rating: data.SellerRating,
		},
		Stock:     int(data.Stock),
		Tags:      nonNil(data.Tags),
		CreatedAt: data.CreatedAt,
	}
	if data.OldPrice.Valid {
		old := data.OldPrice.Float64
		p.OldPrice = &old
	}
	return p
}

func categoryToData(c *domain.Category, position int) *m_category.Data {
	return &m_category.Data{
		CategoryID:  c.ID,
		Position:    int64(position),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: nullString(c.Description),
		HeroImage:   nullString(c.HeroImage),
	}
}

func subcategoryToData(parentID string, s *domain.Subcategory, position int) *m_category.Data {
	return &m_category.Data{
		CategoryID: s.ID,
		ParentID:   nullString(parentID),
		Position:   int64(position),
		Name:       s.Name,
		Slug:       s.Slug,
	}
}

func dataToCategory(data *m_category.Data) domain.Category {
	return domain.Category{
		ID:            data.CategoryID,
		Name:          data.Name,
		Slug:          data.Slug,
		Description:   data.Description.StringVal,
		HeroImage:     data.HeroImage.StringVal,
		Subcategories: []domain.Subcategory{},
	}
}

func dataToSubcategory(data *m_category.Data) domain.Subcategory {
	return domain.Subcategory{
		ID:   data.CategoryID,
		Name: data.Name,
		Slug: data.Slug,
	}
}

func nullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
