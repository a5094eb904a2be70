package tree

import (
	"strings"

	"github.com/everkept/memoria/backend/pkg/common"
)

const (
	// MaxTreeDepth is the hard recursion ceiling for a single tree build.
	MaxTreeDepth = 10

	// RootRelationship labels the root node when no edge led to it.
	RootRelationship = "Family Member"

	placeholderPhoto = "/images/portrait-placeholder.svg"
)

var childLabels = map[string]bool{
	"son":      true,
	"daughter": true,
	"child":    true,
}

// Build shapes the loaded records into a display tree rooted at root. A
// single placed-set is shared across the whole build, so no person appears
// twice anywhere in the returned tree and cyclic edges terminate. Returns
// nil when root is nil.
func Build(root *common.Memorial, records map[string]*common.Memorial) *Node {
	placed := make(map[string]bool)
	return buildNode(root, records, placed, 0, RootRelationship)
}

func buildNode(
	person *common.Memorial,
	records map[string]*common.Memorial,
	placed map[string]bool,
	depth int,
	relationship string,
) *Node {
	if person == nil || placed[person.ID] || depth >= MaxTreeDepth {
		return nil
	}
	placed[person.ID] = true

	node := &Node{
		ID:           person.ID,
		Name:         displayName(person),
		Photo:        photoOrPlaceholder(person),
		BirthDate:    person.BirthDate,
		DeathDate:    person.DeathDate,
		Relationship: relationship,
	}

	// First loaded edge labeled exactly "Spouse" wins; the spouse is
	// described inline and never recursed into.
	for _, rel := range person.Relatives {
		if !rel.Linked() || rel.Relationship != "Spouse" {
			continue
		}
		if sp := records[rel.TargetID]; sp != nil {
			node.Spouse = &Spouse{
				ID:        sp.ID,
				Name:      displayName(sp),
				Photo:     photoOrPlaceholder(sp),
				BirthDate: sp.BirthDate,
				DeathDate: sp.DeathDate,
			}
			break
		}
	}

	var children []*Node
	for _, rel := range person.Relatives {
		if !rel.Linked() || !childLabels[strings.ToLower(strings.TrimSpace(rel.Relationship))] {
			continue
		}
		child := buildNode(records[rel.TargetID], records, placed, depth+1, rel.Relationship)
		if child != nil {
			children = append(children, child)
		}
	}
	if len(children) > 0 {
		node.Children = children
	}

	return node
}

func displayName(m *common.Memorial) string {
	if strings.TrimSpace(m.Name) == "" {
		return "Unknown"
	}
	return m.Name
}

func photoOrPlaceholder(m *common.Memorial) string {
	if m.PhotoURL == "" {
		return placeholderPhoto
	}
	return m.PhotoURL
}
