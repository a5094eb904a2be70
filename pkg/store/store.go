package store

import (
	"context"
	"errors"

	"github.com/everkept/memoria/backend/pkg/common"
)

var (
	// ErrNotFound is returned when a requested memorial does not exist.
	ErrNotFound = errors.New("memorial not found")

	// ErrVersionConflict is returned when a relatives update loses an
	// optimistic-concurrency race. Callers are expected to re-read and retry.
	ErrVersionConflict = errors.New("memorial version conflict")
)

// MaxBatchSize is the largest key-set a single GetMemorials call may carry.
const MaxBatchSize = 30

// MemorialStore is the persistence boundary for memorial records and the
// denormalized connection table.
//
// UpdateRelatives overwrites only the relatives list and is conditioned on
// the record's version being unchanged since the caller read it; a stale
// version yields ErrVersionConflict. The connection table is a derived
// adjacency view maintained through UpsertConnection; the relatives list on
// the record stays the single source of truth.
type MemorialStore interface {
	CreateMemorial(ctx context.Context, m *common.Memorial) error
	GetMemorial(ctx context.Context, id string) (*common.Memorial, error)
	GetMemorials(ctx context.Context, ids []string) ([]*common.Memorial, error)
	UpdateRelatives(ctx context.Context, id string, relatives []common.Relative, expectedVersion int64) error
	UpsertConnection(ctx context.Context, ownerID, connectedID, relationship, reciprocal string) error
	ListMemorialIDs(ctx context.Context, afterID string, limit int) ([]string, error)
}

// ChunkRange invokes fn over [start, end) slices of a total length in chunks
// of chunkSize, stopping at the first error.
func ChunkRange(total, chunkSize int, fn func(start, end int) error) error {
	if total <= 0 {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = total
	}
	for start := 0; start < total; start += chunkSize {
		end := min(start+chunkSize, total)
		if err := fn(start, end); err != nil {
			return err
		}
	}
	return nil
}

// DedupeStrings removes empty and repeated values, preserving first-seen order.
func DedupeStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
