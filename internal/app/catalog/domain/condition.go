package domain

// Condition is the wear grade of a pre-loved item.
type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "like-new"
	ConditionGood    Condition = "good"
	ConditionFair    Condition = "fair"
)

var conditionLabels = map[Condition]string{
	ConditionNew:     "New",
	ConditionLikeNew: "Like New",
	ConditionGood:    "Good",
	ConditionFair:    "Fair",
}

// Conditions returns every known condition, best first.
func Conditions() []Condition {
	return []Condition{ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair}
}

// Valid reports whether c is one of the known conditions.
func (c Condition) Valid() bool {
	_, ok := conditionLabels[c]
	return ok
}

// Label returns the display label, or the raw value for unknown conditions.
func (c Condition) Label() string {
	if label, ok := conditionLabels[c]; ok {
		return label
	}
	return string(c)
}
