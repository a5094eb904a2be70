package kinship

import (
	"github.com/everkept/memoria/backend/pkg/common"
)

// Outcome reports which repair branch fired.
type Outcome string

const (
	// OutcomeUnchanged means the correct reverse edge was already present.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeUpdated means an existing edge to the source had its label corrected.
	OutcomeUpdated Outcome = "updated"
	// OutcomeCreated means a new reverse edge was appended.
	OutcomeCreated Outcome = "created"
)

// RepairResult is the outcome of a single edge repair plus the label that
// ended up on the edge, for idempotent retries and user-facing messaging.
type RepairResult struct {
	Outcome      Outcome `json:"outcome"`
	Relationship string  `json:"relationship"`
}

// RepairReverseEdge ensures the target memorial's relatives contain the
// correct edge back to the source, given that the source asserts the
// relationship label toward the target. The expected reverse label is
// resolved against the target's own display name, since the gendered
// reciprocal describes the target's role.
//
// Exactly one branch fires: an already-correct edge is left untouched, an
// edge to the source with a different label is corrected in place (position
// preserved, denormalized name refreshed), or a new edge is appended. The
// target's edge list never gains a second edge to the same source.
func (r *Resolver) RepairReverseEdge(target *common.Memorial, sourceID, sourceName, label string) RepairResult {
	want := r.Resolve(label, target.Name)

	for i := range target.Relatives {
		rel := &target.Relatives[i]
		if rel.TargetID != sourceID {
			continue
		}
		if rel.Relationship == want {
			return RepairResult{Outcome: OutcomeUnchanged, Relationship: want}
		}
		rel.Relationship = want
		rel.Name = sourceName
		return RepairResult{Outcome: OutcomeUpdated, Relationship: want}
	}

	target.Relatives = append(target.Relatives, common.Relative{
		TargetID:     sourceID,
		Name:         sourceName,
		Relationship: want,
	})
	return RepairResult{Outcome: OutcomeCreated, Relationship: want}
}

// EnsureForwardEdge records the asserted source->target edge as given. The
// asserted direction is authoritative, so no reciprocal computation happens:
// a missing edge is appended and an existing edge has its label and
// denormalized name aligned with the assertion.
func (r *Resolver) EnsureForwardEdge(source *common.Memorial, targetID, targetName, label string) RepairResult {
	want := r.Canonical(label)

	for i := range source.Relatives {
		rel := &source.Relatives[i]
		if rel.TargetID != targetID {
			continue
		}
		if rel.Relationship == want && rel.Name == targetName {
			return RepairResult{Outcome: OutcomeUnchanged, Relationship: want}
		}
		rel.Relationship = want
		rel.Name = targetName
		return RepairResult{Outcome: OutcomeUpdated, Relationship: want}
	}

	source.Relatives = append(source.Relatives, common.Relative{
		TargetID:     targetID,
		Name:         targetName,
		Relationship: want,
	})
	return RepairResult{Outcome: OutcomeCreated, Relationship: want}
}
