package schema

import "testing"

func TestByNameAndByIDAgree(t *testing.T) {
	cases := []string{"Segment", "Cluster", "SimpleBlock", "TrackEntry", "CueClusterPosition"}
	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			byName, ok := ByName(name)
			if !ok {
				t.Fatalf("ByName(%q) not found", name)
			}
			byID, ok := ByID(byName.ID)
			if !ok {
				t.Fatalf("ByID(%x) not found", byName.ID)
			}
			if byID.Name != name {
				t.Fatalf("ByID(%x).Name = %q, want %q", byName.ID, byID.Name, name)
			}
		})
	}
}

func TestSegmentAndClusterAreFlat(t *testing.T) {
	for _, name := range []string{"Segment", "Cluster"} {
		d, ok := ByName(name)
		if !ok {
			t.Fatalf("%s not defined", name)
		}
		if !d.Flat {
			t.Errorf("%s.Flat = false, want true", name)
		}
	}
}

func TestUnknownIDIsNotFound(t *testing.T) {
	if _, ok := ByID(0xFFFFFFFF); ok {
		t.Fatal("expected ByID to report not-found for an unassigned id")
	}
}

func TestKindStringCoversAllKinds(t *testing.T) {
	kinds := []Kind{KindUnknown, KindMaster, KindUint, KindInt, KindFloat, KindString, KindUTF8, KindDate, KindBinary}
	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		if s == "" {
			t.Errorf("Kind(%d).String() is empty", k)
		}
		if seen[s] {
			t.Errorf("duplicate Kind string %q", s)
		}
		seen[s] = true
	}
}
