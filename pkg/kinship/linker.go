package kinship

import (
	"context"
	"errors"
	"fmt"

	"github.com/everkept/memoria/backend/internal/util"
	"github.com/everkept/memoria/backend/pkg/logger"
	"github.com/everkept/memoria/backend/pkg/store"

	"golang.org/x/sync/errgroup"
)

// Connection is one asserted relationship triple: the source says the
// relationship label describes its edge toward the target.
type Connection struct {
	SourceID     string `json:"source_id"`
	TargetID     string `json:"target_id"`
	Relationship string `json:"relationship"`
}

// ConnectionResult is the per-triple outcome of a batch link.
type ConnectionResult struct {
	SourceID     string  `json:"source_id"`
	TargetID     string  `json:"target_id"`
	Relationship string  `json:"relationship,omitempty"`
	Reciprocal   string  `json:"reciprocal,omitempty"`
	Outcome      Outcome `json:"outcome,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// Linker applies relationship assertions to the store: the forward edge as
// given, the repaired reverse edge, and the mirrored rows in the derived
// connections table. Relatives writes are version-guarded and retried on
// conflict.
type Linker struct {
	store       store.MemorialStore
	resolver    *Resolver
	maxParallel int
	maxRetries  int
}

// NewLinker creates a linker over the given store and resolver.
func NewLinker(s store.MemorialStore, r *Resolver) *Linker {
	return &Linker{
		store:       s,
		resolver:    r,
		maxParallel: int(util.GetEnvNumeric("CONNECT_MAX_PARALLEL", 4)),
		maxRetries:  int(util.GetEnvNumeric("CONNECT_MAX_RETRIES", 3)),
	}
}

// Link asserts one source->target relationship and repairs the reverse edge.
// The returned result describes the reverse edge on the target.
func (l *Linker) Link(ctx context.Context, sourceID, targetID, label string) (RepairResult, error) {
	if sourceID == "" || targetID == "" || label == "" {
		return RepairResult{}, errors.New("source id, target id and relationship are required")
	}
	if sourceID == targetID {
		return RepairResult{}, errors.New("cannot connect a memorial to itself")
	}

	var result RepairResult
	err := retryOnConflict(ctx, l.maxRetries, func(ctx context.Context) error {
		source, err := l.store.GetMemorial(ctx, sourceID)
		if err != nil {
			return fmt.Errorf("source %s: %w", sourceID, err)
		}
		target, err := l.store.GetMemorial(ctx, targetID)
		if err != nil {
			return fmt.Errorf("target %s: %w", targetID, err)
		}

		forward := l.resolver.EnsureForwardEdge(source, target.ID, target.Name, label)
		result = l.resolver.RepairReverseEdge(target, source.ID, source.Name, label)

		if forward.Outcome != OutcomeUnchanged {
			if err := l.store.UpdateRelatives(ctx, source.ID, source.Relatives, source.Version); err != nil {
				return fmt.Errorf("source %s: %w", sourceID, err)
			}
		}
		if result.Outcome != OutcomeUnchanged {
			if err := l.store.UpdateRelatives(ctx, target.ID, target.Relatives, target.Version); err != nil {
				return fmt.Errorf("target %s: %w", targetID, err)
			}
		}

		if err := l.store.UpsertConnection(ctx, source.ID, target.ID, forward.Relationship, result.Relationship); err != nil {
			return err
		}
		return l.store.UpsertConnection(ctx, target.ID, source.ID, result.Relationship, forward.Relationship)
	})
	if err != nil {
		return RepairResult{}, err
	}
	return result, nil
}

// LinkBatch applies each connection triple independently: a failing triple
// is reported in its slot and never aborts its siblings.
func (l *Linker) LinkBatch(ctx context.Context, connections []Connection) []ConnectionResult {
	results := make([]ConnectionResult, len(connections))

	eg := errgroup.Group{}
	eg.SetLimit(l.maxParallel)

	for i, conn := range connections {
		eg.Go(func() error {
			res := ConnectionResult{
				SourceID:     conn.SourceID,
				TargetID:     conn.TargetID,
				Relationship: conn.Relationship,
			}

			repair, err := l.Link(ctx, conn.SourceID, conn.TargetID, conn.Relationship)
			if err != nil {
				logger.Warn("[Linker] Connection failed",
					"source_id", conn.SourceID, "target_id", conn.TargetID, "err", err)
				res.Error = err.Error()
			} else {
				res.Reciprocal = repair.Relationship
				res.Outcome = repair.Outcome
			}

			results[i] = res
			return nil
		})
	}

	_ = eg.Wait()
	return results
}

// retryOnConflict re-runs fn while it loses the optimistic-concurrency race
// on a relatives update. Every other error is terminal.
func retryOnConflict(ctx context.Context, maxTries int, fn func(context.Context) error) error {
	if maxTries <= 0 {
		maxTries = 1
	}
	var lastErr error
	for i := 0; i < maxTries; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		lastErr = fn(ctx)
		if lastErr == nil || !errors.Is(lastErr, store.ErrVersionConflict) {
			return lastErr
		}
	}
	return lastErr
}
