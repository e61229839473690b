package query

import "fmt"

// Condition represents a WHERE clause condition.
type Condition interface {
	// SQL returns the fragment and its parameters. Parameters are named
	// @p<N> starting at paramIndex so that conditions never collide.
	SQL(paramIndex int) (string, map[string]interface{})
}

type eqCondition struct {
	field string
	value interface{}
}

// Eq matches rows where field equals value.
func Eq(field string, value interface{}) Condition {
	return eqCondition{field: field, value: value}
}

func (c eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s = @%s", c.field, name), map[string]interface{}{name: c.value}
}

type nullCondition struct {
	field string
	not   bool
}

// IsNull matches rows where field is NULL.
// Top-level categories are selected with IsNull(parent_id).
func IsNull(field string) Condition {
	return nullCondition{field: field}
}

// IsNotNull matches rows where field is not NULL.
func IsNotNull(field string) Condition {
	return nullCondition{field: field, not: true}
}

func (c nullCondition) SQL(int) (string, map[string]interface{}) {
	if c.not {
		return c.field + " IS NOT NULL", nil
	}
	return c.field + " IS NULL", nil
}
