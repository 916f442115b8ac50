package sampler

import (
	"math"
	"math/rand/v2"
	"sync"
	"testing"
)

func seeded() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func TestSample_SingleItemBucket(t *testing.T) {
	got, err := Sample(seeded(), []string{"अ"}, nil, DefaultSize)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != DefaultSize {
		t.Fatalf("len = %d, want %d", len(got), DefaultSize)
	}
	for i, w := range got {
		if w != "अ" {
			t.Fatalf("item %d = %q", i, w)
		}
	}
}

func TestSample_EdgeCases(t *testing.T) {
	cases := []struct {
		name    string
		items   []int
		weights []int
		k       int
		wantLen int
		wantErr bool
	}{
		{"empty items", nil, nil, 10, 0, false},
		{"zero draws", []int{1, 2}, nil, 0, 0, false},
		{"negative draws", []int{1}, nil, -1, 0, true},
		{"weights mismatch", []int{1, 2}, []int{1}, 3, 0, true},
		{"non positive weight", []int{1, 2}, []int{1, 0}, 3, 0, true},
		{"weighted", []int{1, 2}, []int{3, 4}, 7, 7, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Sample(seeded(), tc.items, tc.weights, tc.k)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if len(got) != tc.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tc.wantLen)
			}
		})
	}
}

func TestSample_WeightedSkew(t *testing.T) {
	items := []string{"rare", "common"}
	got, err := Sample(seeded(), items, []int{1, 99}, 2000)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for _, w := range got {
		if w == "common" {
			n++
		}
	}
	if n < 1900 {
		t.Fatalf("common drawn %d/2000 times, expected heavy skew", n)
	}
}

func TestSample_UniformCoversAll(t *testing.T) {
	items := []int{0, 1, 2, 3}
	got, _ := Sample(seeded(), items, nil, 400)
	seen := map[int]int{}
	for _, v := range got {
		seen[v]++
	}
	for _, v := range items {
		if seen[v] == 0 {
			t.Fatalf("item %d never drawn: %v", v, seen)
		}
	}
}

func TestSample_Deterministic(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	a, _ := Sample(seeded(), items, []int{1, 2, 3, 4, 5}, 50)
	b, _ := Sample(seeded(), items, []int{1, 2, 3, 4, 5}, 50)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d", i)
		}
	}
}

func TestWeights(t *testing.T) {
	w, err := NewWeights([]int{2, 3, 5})
	if err != nil {
		t.Fatal(err)
	}
	if w.Len() != 3 || w.Total() != 10 {
		t.Fatalf("Len=%d Total=%d", w.Len(), w.Total())
	}
	var zero Weights
	if zero.Len() != 0 || zero.Total() != 0 {
		t.Fatal("zero Weights should be uniform")
	}
	if _, err := Draw(seeded(), []int{1, 2}, w, 1); err == nil {
		t.Fatal("Draw should reject mismatched weights")
	}
}

func TestWeights_ClampedAndOverflow(t *testing.T) {
	w, err := NewWeights([]int{math.MaxInt, math.MaxInt, 1})
	if err != nil {
		t.Fatal(err)
	}
	if w.Total() != 2*MaxWeight+1 {
		t.Fatalf("Total = %d", w.Total())
	}
	if _, err := Draw(seeded(), []string{"a", "b", "c"}, w, 100); err != nil {
		t.Fatal(err)
	}
	if _, err := NewWeights([]int{0}); err == nil {
		t.Fatal("zero weight accepted")
	}
}

type fixed struct{ v int64 }

func (f fixed) IntN(n int) int       { return int(f.v) % n }
func (f fixed) Int64N(n int64) int64 { return f.v % n }

func TestWeights_PickBoundaries(t *testing.T) {
	w, _ := NewWeights([]int{2, 3, 5})
	cases := []struct {
		x    int64
		want int
	}{{0, 0}, {1, 0}, {2, 1}, {4, 1}, {5, 2}, {9, 2}}
	for _, tc := range cases {
		if got := w.pick(fixed{tc.x}); got != tc.want {
			t.Fatalf("pick(%d) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestLocked_Concurrent(t *testing.T) {
	src := NewLocked(7, 9)
	items := []int{1, 2, 3}
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Sample(src, items, nil, 100)
			if err != nil || len(got) != 100 {
				t.Errorf("concurrent sample: len=%d err=%v", len(got), err)
			}
		}()
	}
	wg.Wait()
}
