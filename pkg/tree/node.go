// Package tree loads a bounded neighborhood of the relationship graph and
// shapes it into a couple-and-children tree for display.
package tree

// Node is one person in the display tree. Children is nil, not empty, when
// no child subtree survived the build. Relationship is the label of the edge
// used to reach this node from its parent; the root carries a generic label.
type Node struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Photo        string  `json:"photo"`
	BirthDate    string  `json:"birth_date,omitempty"`
	DeathDate    string  `json:"death_date,omitempty"`
	Relationship string  `json:"relationship,omitempty"`
	Spouse       *Spouse `json:"spouse,omitempty"`
	Children     []*Node `json:"children,omitempty"`
}

// Spouse is the lightweight descriptor for a paired partner. A spouse never
// becomes a tree node of its own; children hang under the original person.
type Spouse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Photo     string `json:"photo"`
	BirthDate string `json:"birth_date,omitempty"`
	DeathDate string `json:"death_date,omitempty"`
}
