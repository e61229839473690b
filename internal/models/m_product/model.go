package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut creates a Spanner mutation that inserts or replaces a product row.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns(),
		[]interface{}{
			data.ProductID,
			data.Position,
			data.Title,
			data.Description,
			data.Category,
			data.Subcategory,
			data.Image,
			data.Price,
			data.OldPrice,
			data.Condition,
			data.Brand,
			data.EcoRating,
			data.Rating,
			data.Badges,
			data.SellerID,
			data.SellerName,
			data.SellerRating,
			data.Stock,
			data.Tags,
			data.CreatedAt,
		},
	)
}

// DeleteAllMut creates a Spanner mutation that removes every product row.
func (m *Model) DeleteAllMut() *spanner.Mutation {
	return spanner.Delete(TableName, spanner.AllKeys())
}
