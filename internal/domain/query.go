package domain

// Order names a column and a direction for a list call.
type Order struct {
	Field string
	Desc  bool
}

// ListQuery mirrors the collection-read contract: equality where-clauses,
// optional ordering, optional limit. Owner scoping is a separate, mandatory
// argument on every repository call and never part of Where.
type ListQuery struct {
	Where   map[string]any
	OrderBy *Order
	Limit   int
	Offset  int
}

// Badge is the presentation attribute a status maps to. The mapping is an
// exhaustive table per enum so an unmapped value cannot ship.
type Badge struct {
	Tone string `json:"tone"` // green / yellow / blue / purple / emerald / red / gray
}
