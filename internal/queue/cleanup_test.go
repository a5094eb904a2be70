package queue

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/everkept/memoria/backend/pkg/common"
	"github.com/everkept/memoria/backend/pkg/kinship"
	"github.com/everkept/memoria/backend/pkg/store"
)

// sweepStore is an in-memory MemorialStore for cleanup-sweep tests: sorted
// keyset listing, version checks, and per-id write-failure injection.
type sweepStore struct {
	records      map[string]*common.Memorial
	failWrites   map[string]error
	conflictOnce map[string]bool
	listCalls    int
	updates      int
}

func newSweepStore(memorials ...*common.Memorial) *sweepStore {
	ss := &sweepStore{
		records:      make(map[string]*common.Memorial),
		failWrites:   make(map[string]error),
		conflictOnce: make(map[string]bool),
	}
	for _, m := range memorials {
		if m.Version == 0 {
			m.Version = 1
		}
		ss.records[m.ID] = m
	}
	return ss
}

func (ss *sweepStore) CreateMemorial(context.Context, *common.Memorial) error {
	return errors.New("not supported")
}

func (ss *sweepStore) GetMemorial(_ context.Context, id string) (*common.Memorial, error) {
	m, ok := ss.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	c := *m
	c.Relatives = append([]common.Relative(nil), m.Relatives...)
	return &c, nil
}

func (ss *sweepStore) GetMemorials(context.Context, []string) ([]*common.Memorial, error) {
	return nil, errors.New("not supported")
}

func (ss *sweepStore) UpdateRelatives(_ context.Context, id string, relatives []common.Relative, expectedVersion int64) error {
	if err, ok := ss.failWrites[id]; ok {
		return err
	}
	m, ok := ss.records[id]
	if !ok {
		return store.ErrNotFound
	}
	if ss.conflictOnce[id] {
		// Simulate a concurrent edit landing between read and write.
		delete(ss.conflictOnce, id)
		m.Version++
		return store.ErrVersionConflict
	}
	if m.Version != expectedVersion {
		return store.ErrVersionConflict
	}
	m.Relatives = append([]common.Relative(nil), relatives...)
	m.Version++
	ss.updates++
	return nil
}

func (ss *sweepStore) UpsertConnection(context.Context, string, string, string, string) error {
	return errors.New("not supported")
}

func (ss *sweepStore) ListMemorialIDs(_ context.Context, afterID string, limit int) ([]string, error) {
	ss.listCalls++
	ids := make([]string, 0, len(ss.records))
	for id := range ss.records {
		if id > afterID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func messy(id int) *common.Memorial {
	return &common.Memorial{
		ID:   fmt.Sprintf("m%03d", id),
		Name: "Person",
		Relatives: []common.Relative{
			{Name: "Joe", Relationship: "uncle"},
		},
	}
}

func TestRunCleanup_PagesThroughWholeStore(t *testing.T) {
	// More records than one listing page so the sweep must paginate.
	memorials := make([]*common.Memorial, 0, cleanupPageSize+20)
	for i := 0; i < cleanupPageSize+20; i++ {
		memorials = append(memorials, messy(i))
	}
	ss := newSweepStore(memorials...)

	if err := runCleanup(context.Background(), ss, kinship.NewResolver(nil, nil), ""); err != nil {
		t.Fatalf("runCleanup failed: %v", err)
	}

	// Full page, short page, empty page.
	if ss.listCalls != 3 {
		t.Fatalf("list calls = %d, want 3", ss.listCalls)
	}
	for id, m := range ss.records {
		if m.Relatives[0].Relationship != "Uncle" {
			t.Fatalf("record %s not canonicalized: %+v", id, m.Relatives[0])
		}
	}
}

func TestRunCleanup_SkipsAlreadyCleanRecords(t *testing.T) {
	clean := &common.Memorial{ID: "m000", Name: "Person", Relatives: []common.Relative{
		{Name: "Joe", Relationship: "Uncle"},
	}}
	ss := newSweepStore(clean, messy(1))

	if err := runCleanup(context.Background(), ss, kinship.NewResolver(nil, nil), ""); err != nil {
		t.Fatalf("runCleanup failed: %v", err)
	}
	if ss.updates != 1 {
		t.Fatalf("updates = %d, want 1 (clean record rewritten)", ss.updates)
	}
}

func TestRunCleanup_BadRecordDoesNotStopSweep(t *testing.T) {
	ss := newSweepStore(messy(0), messy(1), messy(2))
	ss.failWrites["m001"] = errors.New("disk on fire")

	if err := runCleanup(context.Background(), ss, kinship.NewResolver(nil, nil), ""); err != nil {
		t.Fatalf("runCleanup failed: %v", err)
	}

	if ss.records["m001"].Relatives[0].Relationship != "uncle" {
		t.Fatal("failing record was unexpectedly rewritten")
	}
	for _, id := range []string{"m000", "m002"} {
		if ss.records[id].Relatives[0].Relationship != "Uncle" {
			t.Fatalf("record %s after the failing one was not swept", id)
		}
	}
}

func TestRunCleanup_RetriesVersionConflict(t *testing.T) {
	ss := newSweepStore(messy(0))
	ss.conflictOnce["m000"] = true

	if err := runCleanup(context.Background(), ss, kinship.NewResolver(nil, nil), ""); err != nil {
		t.Fatalf("runCleanup failed: %v", err)
	}
	if ss.records["m000"].Relatives[0].Relationship != "Uncle" {
		t.Fatal("conflicted record was not rewritten on retry")
	}
}

func TestRunCleanup_ResumesAfterID(t *testing.T) {
	ss := newSweepStore(messy(0), messy(1), messy(2), messy(3))

	if err := runCleanup(context.Background(), ss, kinship.NewResolver(nil, nil), "m001"); err != nil {
		t.Fatalf("runCleanup failed: %v", err)
	}

	for _, id := range []string{"m000", "m001"} {
		if ss.records[id].Relatives[0].Relationship != "uncle" {
			t.Fatalf("record %s before the resume point was touched", id)
		}
	}
	for _, id := range []string{"m002", "m003"} {
		if ss.records[id].Relatives[0].Relationship != "Uncle" {
			t.Fatalf("record %s after the resume point was not swept", id)
		}
	}
}

func TestProcessCleanupMessage_BadPayload(t *testing.T) {
	if err := ProcessCleanupMessage(context.Background(), nil, nil, nil, "{not json"); err == nil {
		t.Fatal("expected decode error")
	}
}
