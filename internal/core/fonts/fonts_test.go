package fonts

import (
	"slices"
	"testing"
)

func TestFor(t *testing.T) {
	if got := For("Deva"); len(got) == 0 || got[0] != "Noto Sans Devanagari" {
		t.Fatalf("For(Deva) = %v", got)
	}
	if got := For("Zyyy"); got != nil {
		t.Fatalf("For(Zyyy) = %v, want nil", got)
	}

	got := For("Taml")
	got[0] = "mutated"
	if For("Taml")[0] == "mutated" {
		t.Fatal("For leaked the backing slice")
	}
}

func TestKnown(t *testing.T) {
	k := Known()
	if !slices.IsSorted(k) {
		t.Fatalf("Known not sorted: %v", k)
	}
	for _, tag := range []string{"Deva", "Syre", "Burmese", "Latn"} {
		if !slices.Contains(k, tag) {
			t.Fatalf("Known missing %s", tag)
		}
	}
}
