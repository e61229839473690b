package m_category

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the categories table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut creates a Spanner mutation that inserts or replaces a category row.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns(),
		[]interface{}{
			data.CategoryID,
			data.ParentID,
			data.Position,
			data.Name,
			data.Slug,
			data.Description,
			data.HeroImage,
		},
	)
}

// DeleteAllMut creates a Spanner mutation that removes every category row.
func (m *Model) DeleteAllMut() *spanner.Mutation {
	return spanner.Delete(TableName, spanner.AllKeys())
}
