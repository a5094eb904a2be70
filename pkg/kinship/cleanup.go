package kinship

import (
	"strings"

	"github.com/everkept/memoria/backend/pkg/common"
)

// CleanupRelatives rewrites every edge label to its canonical form and drops
// duplicate edges. Linked edges are deduplicated by target identifier;
// name-only edges by case-insensitive name. The first occurrence wins and
// keeps its position; later duplicates may still contribute a label or life
// dates the first occurrence lacks.
func (r *Resolver) CleanupRelatives(relatives []common.Relative) []common.Relative {
	if len(relatives) == 0 {
		return relatives
	}

	out := make([]common.Relative, 0, len(relatives))
	byID := make(map[string]int)
	byName := make(map[string]int)

	for _, rel := range relatives {
		rel.Relationship = r.Canonical(rel.Relationship)

		var key string
		var seen map[string]int
		if rel.Linked() {
			key = rel.TargetID
			seen = byID
		} else {
			key = strings.ToLower(strings.TrimSpace(rel.Name))
			seen = byName
			if key == "" {
				// Nothing to match a duplicate against.
				out = append(out, rel)
				continue
			}
		}

		if idx, ok := seen[key]; ok {
			kept := &out[idx]
			if kept.LifeDates == "" && rel.LifeDates != "" {
				kept.LifeDates = rel.LifeDates
			}
			if kept.Name == "" && rel.Name != "" {
				kept.Name = rel.Name
			}
			continue
		}

		seen[key] = len(out)
		out = append(out, rel)
	}

	return out
}
