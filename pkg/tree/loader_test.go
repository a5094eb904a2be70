package tree

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/everkept/memoria/backend/pkg/common"
	"github.com/everkept/memoria/backend/pkg/store"
)

// mapStore serves memorials from a map and records every requested id.
type mapStore struct {
	mu        sync.Mutex
	records   map[string]*common.Memorial
	requested []string
	failAfter int // fail batches once this many have been served; 0 disables
	batches   int
}

func newMapStore(memorials ...*common.Memorial) *mapStore {
	ms := &mapStore{records: make(map[string]*common.Memorial)}
	for _, m := range memorials {
		ms.records[m.ID] = m
	}
	return ms
}

func (ms *mapStore) GetMemorials(_ context.Context, ids []string) ([]*common.Memorial, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.batches++
	if ms.failAfter > 0 && ms.batches > ms.failAfter {
		return nil, errors.New("store unavailable")
	}
	out := make([]*common.Memorial, 0, len(ids))
	for _, id := range ids {
		ms.requested = append(ms.requested, id)
		if m, ok := ms.records[id]; ok {
			c := *m
			c.Relatives = append([]common.Relative(nil), m.Relatives...)
			out = append(out, &c)
		}
	}
	return out, nil
}

func (ms *mapStore) GetMemorial(ctx context.Context, id string) (*common.Memorial, error) {
	out, err := ms.GetMemorials(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, store.ErrNotFound
	}
	return out[0], nil
}

func (ms *mapStore) CreateMemorial(context.Context, *common.Memorial) error {
	return errors.New("not supported")
}

func (ms *mapStore) UpdateRelatives(context.Context, string, []common.Relative, int64) error {
	return errors.New("not supported")
}

func (ms *mapStore) UpsertConnection(context.Context, string, string, string, string) error {
	return errors.New("not supported")
}

func (ms *mapStore) ListMemorialIDs(context.Context, string, int) ([]string, error) {
	return nil, errors.New("not supported")
}

func linked(id, name, relationship string) common.Relative {
	return common.Relative{TargetID: id, Name: name, Relationship: relationship}
}

func TestLoad_Neighborhood(t *testing.T) {
	// Start person with a spouse and two children, everything mutual
	// except the spouse's missing reverse edge.
	ms := newMapStore(
		&common.Memorial{ID: "dad", Name: "Fred", Relatives: []common.Relative{
			linked("mom", "Dorothy", "Spouse"),
			linked("c1", "James", "Son"),
			linked("c2", "Mary", "Daughter"),
		}},
		&common.Memorial{ID: "mom", Name: "Dorothy"},
		&common.Memorial{ID: "c1", Name: "James", Relatives: []common.Relative{
			linked("dad", "Fred", "Father"),
		}},
		&common.Memorial{ID: "c2", Name: "Mary", Relatives: []common.Relative{
			linked("dad", "Fred", "Father"),
		}},
	)

	loaded, err := NewLoader(ms).Load(context.Background(), "dad", 5)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 4 {
		t.Fatalf("loaded %d records, want 4", len(loaded))
	}

	// The spouse's reverse edge was synthesized for display.
	mom := loaded["mom"]
	if mom == nil {
		t.Fatal("spouse not loaded")
	}
	if !hasEdgeTo(mom, "dad") {
		t.Fatal("missing synthesized reverse edge on spouse")
	}
	if mom.Relatives[0].Relationship != "Spouse" {
		t.Fatalf("synthesized label = %q, want Spouse", mom.Relatives[0].Relationship)
	}

	// Synthesis never touches the store copy.
	if len(ms.records["mom"].Relatives) != 0 {
		t.Fatal("synthesis leaked into the stored record")
	}
}

func TestLoad_StartNotFound(t *testing.T) {
	ms := newMapStore()
	if _, err := NewLoader(ms).Load(context.Background(), "ghost", 5); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoad_DepthBound(t *testing.T) {
	// A strict parent chain 20 levels deep. With maxDepth=5 only the
	// first six records (depth 0 through 5) may ever be requested.
	memorials := make([]*common.Memorial, 0, 20)
	for i := 0; i < 20; i++ {
		m := &common.Memorial{ID: fmt.Sprintf("p%d", i), Name: "Person"}
		if i < 19 {
			m.Relatives = []common.Relative{linked(fmt.Sprintf("p%d", i+1), "Person", "Father")}
		}
		memorials = append(memorials, m)
	}
	ms := newMapStore(memorials...)

	loaded, err := NewLoader(ms).Load(context.Background(), "p0", 5)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 6 {
		t.Fatalf("loaded %d records, want 6", len(loaded))
	}
	for _, id := range ms.requested {
		var n int
		fmt.Sscanf(id, "p%d", &n)
		if n > 5 {
			t.Fatalf("record %s beyond the depth bound was fetched", id)
		}
	}
}

func TestLoad_FetchCeiling(t *testing.T) {
	// A hub with far more neighbors than the fetch ceiling allows. Depth
	// alone does not bound the work here; the fetch counter must.
	hub := &common.Memorial{ID: "hub", Name: "Hub"}
	memorials := []*common.Memorial{hub}
	for i := 0; i < 200; i++ {
		id := fmt.Sprintf("n%03d", i)
		hub.Relatives = append(hub.Relatives, linked(id, "Neighbor", "Son"))
		memorials = append(memorials, &common.Memorial{ID: id, Name: "Neighbor"})
	}
	ms := newMapStore(memorials...)

	l := NewLoader(ms)
	l.maxFetches = 3

	loaded, err := l.Load(context.Background(), "hub", 5)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ms.batches > 3 {
		t.Fatalf("%d store batches issued, ceiling is 3", ms.batches)
	}
	// One fetch for the hub, two frontier batches of store.MaxBatchSize.
	want := 1 + 2*store.MaxBatchSize
	if len(loaded) != want {
		t.Fatalf("loaded %d records, want truncated neighborhood of %d", len(loaded), want)
	}
	if loaded["hub"] == nil {
		t.Fatal("start record missing from truncated neighborhood")
	}
}

func TestLoad_PartialOnBatchFailure(t *testing.T) {
	ms := newMapStore(
		&common.Memorial{ID: "a", Name: "Anna", Relatives: []common.Relative{
			linked("b", "Ben", "Son"),
		}},
		&common.Memorial{ID: "b", Name: "Ben"},
	)
	ms.failAfter = 1

	loaded, err := NewLoader(ms).Load(context.Background(), "a", 5)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("loaded %d records, want 1 (partial neighborhood)", len(loaded))
	}
	if loaded["a"] == nil {
		t.Fatal("start record missing from partial neighborhood")
	}
}

func TestLoad_CachedNeighborhood(t *testing.T) {
	ms := newMapStore(&common.Memorial{ID: "a", Name: "Anna"})
	l := NewLoader(ms)

	if _, err := l.Load(context.Background(), "a", 5); err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	batches := ms.batches

	if _, err := l.Load(context.Background(), "a", 5); err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if ms.batches != batches {
		t.Fatal("cache hit still touched the store")
	}

	// A different depth is a different cache key.
	if _, err := l.Load(context.Background(), "a", 3); err != nil {
		t.Fatalf("third load failed: %v", err)
	}
	if ms.batches == batches {
		t.Fatal("different depth unexpectedly served from cache")
	}
}
