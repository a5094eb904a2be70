package tree

import (
	"context"
	"strings"
	"time"

	"github.com/everkept/memoria/backend/internal/util"
	"github.com/everkept/memoria/backend/pkg/common"
	"github.com/everkept/memoria/backend/pkg/logger"
	"github.com/everkept/memoria/backend/pkg/store"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const (
	// DefaultMaxDepth bounds the breadth-first traversal when the caller
	// passes no explicit depth.
	DefaultMaxDepth = 5

	// defaultMaxFetches is a hard ceiling on batched store fetches per
	// load. The depth bound alone does not bound work on densely
	// connected graphs.
	defaultMaxFetches = 50

	cacheSize = 128
	cacheTTL  = 24 * time.Hour
)

// Loader materializes a bounded neighborhood of memorial records reachable
// through relationship edges. Fetches are rate-limited and run through a
// circuit breaker; a failed batch degrades the result to a partial
// neighborhood instead of aborting the load.
type Loader struct {
	store      store.MemorialStore
	cache      *neighborhoodCache
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	maxFetches int
}

// NewLoader creates a loader over the given store.
func NewLoader(s store.MemorialStore) *Loader {
	fetchRate := util.GetEnvNumeric("TREE_FETCH_RATE", 20)
	fetchBurst := int(util.GetEnvNumeric("TREE_FETCH_BURST", 5))
	return &Loader{
		store:      s,
		cache:      newNeighborhoodCache(cacheSize, cacheTTL),
		limiter:    rate.NewLimiter(rate.Limit(fetchRate), fetchBurst),
		maxFetches: int(util.GetEnvNumeric("TREE_MAX_FETCHES", defaultMaxFetches)),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "memorial-store",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

type frontierItem struct {
	id    string
	depth int
}

// Load walks the relationship graph breadth-first from startID up to
// maxDepth, fetching records in batches and returning them keyed by
// identifier. Edge targets are marked visited at enqueue time so concurrent
// edges to the same record never enqueue it twice. After the walk, missing
// reciprocal edges between loaded records are synthesized in memory only.
//
// Results are cached per (startID, maxDepth) with a freshness window; a hit
// skips the store entirely. store.ErrNotFound is returned when the start
// record itself could not be loaded.
func (l *Loader) Load(ctx context.Context, startID string, maxDepth int) (map[string]*common.Memorial, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	if cached, ok := l.cache.Get(startID, maxDepth); ok {
		logger.Debug("[Tree] Neighborhood cache hit", "start_id", startID, "depth", maxDepth)
		return cached, nil
	}

	loaded := make(map[string]*common.Memorial)
	visited := map[string]bool{startID: true}
	depthOf := map[string]int{startID: 0}
	frontier := []frontierItem{{id: startID, depth: 0}}

	fetches := 0
	for len(frontier) > 0 {
		batch := frontier
		if len(batch) > store.MaxBatchSize {
			batch = batch[:store.MaxBatchSize]
		}
		frontier = frontier[len(batch):]

		if fetches >= l.maxFetches {
			logger.Warn("[Tree] Fetch ceiling reached, truncating neighborhood",
				"start_id", startID, "loaded", len(loaded))
			break
		}
		fetches++

		ids := make([]string, len(batch))
		for i, item := range batch {
			ids[i] = item.id
		}

		records, err := l.fetchBatch(ctx, ids)
		if err != nil {
			logger.Error("[Tree] Batch fetch failed, continuing with partial neighborhood",
				"start_id", startID, "batch_size", len(ids), "err", err)
			continue
		}

		for _, rec := range records {
			loaded[rec.ID] = rec
			depth := depthOf[rec.ID]
			if depth >= maxDepth {
				continue
			}
			for _, rel := range rec.Relatives {
				if !rel.Linked() || visited[rel.TargetID] {
					continue
				}
				visited[rel.TargetID] = true
				depthOf[rel.TargetID] = depth + 1
				frontier = append(frontier, frontierItem{id: rel.TargetID, depth: depth + 1})
			}
		}
	}

	if loaded[startID] == nil {
		return nil, store.ErrNotFound
	}

	synthesizeReciprocals(loaded)
	l.cache.Add(startID, maxDepth, loaded)
	return loaded, nil
}

func (l *Loader) fetchBatch(ctx context.Context, ids []string) ([]*common.Memorial, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	out, err := l.breaker.Execute(func() (any, error) {
		return l.store.GetMemorials(ctx, ids)
	})
	if err != nil {
		return nil, err
	}
	return out.([]*common.Memorial), nil
}

// synthReciprocal is the minimal label mapping used when synthesizing a
// missing reverse edge between two loaded records. Display-layer only; the
// persisted reciprocal guarantee lives in the kinship package.
var synthReciprocal = map[string]string{
	"son":      "Parent",
	"daughter": "Parent",
	"child":    "Parent",
	"father":   "Child",
	"mother":   "Child",
	"parent":   "Child",
	"spouse":   "Spouse",
	"husband":  "Spouse",
	"wife":     "Spouse",
}

// synthesizeReciprocals appends, in memory only, a reverse edge for every
// one-directional link between two loaded records, so the hierarchy builder
// never sees an asymmetric couple or parent/child pair.
func synthesizeReciprocals(records map[string]*common.Memorial) {
	for _, rec := range records {
		for _, rel := range rec.Relatives {
			if !rel.Linked() {
				continue
			}
			target := records[rel.TargetID]
			if target == nil || hasEdgeTo(target, rec.ID) {
				continue
			}
			label, ok := synthReciprocal[strings.ToLower(strings.TrimSpace(rel.Relationship))]
			if !ok {
				continue
			}
			target.Relatives = append(target.Relatives, common.Relative{
				TargetID:     rec.ID,
				Name:         rec.Name,
				Relationship: label,
			})
		}
	}
}

func hasEdgeTo(m *common.Memorial, targetID string) bool {
	for _, rel := range m.Relatives {
		if rel.TargetID == targetID {
			return true
		}
	}
	return false
}
