package tree

import (
	"strings"

	"github.com/everkept/memoria/backend/pkg/common"
)

var parentLabels = map[string]bool{
	"parent": true,
	"father": true,
	"mother": true,
}

// FindRoot walks parent-type edges upward from startID and returns the
// topmost ancestor present in the loaded records. The walk stops at the
// first person with no loaded, unvisited parent, so the result is the root
// of the loaded subset, not necessarily of the whole graph. Returns nil when
// the start record itself is not loaded.
func FindRoot(startID string, records map[string]*common.Memorial) *common.Memorial {
	current := records[startID]
	if current == nil {
		return nil
	}

	visited := map[string]bool{current.ID: true}
	for {
		var parent *common.Memorial
		for _, rel := range current.Relatives {
			if !rel.Linked() || visited[rel.TargetID] {
				continue
			}
			if !parentLabels[strings.ToLower(strings.TrimSpace(rel.Relationship))] {
				continue
			}
			if p := records[rel.TargetID]; p != nil {
				parent = p
				break
			}
		}
		if parent == nil {
			return current
		}
		visited[parent.ID] = true
		current = parent
	}
}
