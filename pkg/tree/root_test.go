package tree

import (
	"testing"

	"github.com/everkept/memoria/backend/pkg/common"
)

func TestFindRoot(t *testing.T) {
	records := map[string]*common.Memorial{
		"gc": {ID: "gc", Name: "Grandchild", Relatives: []common.Relative{
			linked("c", "Child", "Mother"),
		}},
		"c": {ID: "c", Name: "Child", Relatives: []common.Relative{
			linked("gc", "Grandchild", "Son"),
			linked("g", "Grandparent", "Father"),
		}},
		"g": {ID: "g", Name: "Grandparent", Relatives: []common.Relative{
			linked("c", "Child", "Daughter"),
		}},
	}

	root := FindRoot("gc", records)
	if root == nil || root.ID != "g" {
		t.Fatalf("root = %+v, want g", root)
	}
}

func TestFindRoot_StartIsRoot(t *testing.T) {
	records := map[string]*common.Memorial{
		"a": {ID: "a", Name: "Anna", Relatives: []common.Relative{
			linked("b", "Ben", "Son"),
		}},
		"b": {ID: "b", Name: "Ben"},
	}

	root := FindRoot("a", records)
	if root == nil || root.ID != "a" {
		t.Fatalf("root = %+v, want a", root)
	}
}

func TestFindRoot_ParentCycleTerminates(t *testing.T) {
	// Two records each claiming the other as parent.
	records := map[string]*common.Memorial{
		"a": {ID: "a", Relatives: []common.Relative{linked("b", "", "Father")}},
		"b": {ID: "b", Relatives: []common.Relative{linked("a", "", "Father")}},
	}

	root := FindRoot("a", records)
	if root == nil || root.ID != "b" {
		t.Fatalf("root = %+v, want b", root)
	}
}

func TestFindRoot_UnloadedParentIgnored(t *testing.T) {
	records := map[string]*common.Memorial{
		"a": {ID: "a", Relatives: []common.Relative{linked("missing", "", "Mother")}},
	}

	root := FindRoot("a", records)
	if root == nil || root.ID != "a" {
		t.Fatalf("root = %+v, want a", root)
	}
}

func TestFindRoot_StartNotLoaded(t *testing.T) {
	if root := FindRoot("ghost", map[string]*common.Memorial{}); root != nil {
		t.Fatalf("root = %+v, want nil", root)
	}
}
