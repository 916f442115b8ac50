// Package sampler draws display samples from word buckets, with replacement,
// either uniformly or proportionally to per-item weights
package sampler

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"sync"
)

// DefaultSize is the number of draws per word-list request
const DefaultSize = 500

// Source is the randomness a draw needs. *rand.Rand satisfies it
type Source interface {
	IntN(n int) int
	Int64N(n int64) int64
}

// MaxWeight caps a single item's weight so cumulative sums stay far from int64 overflow
const MaxWeight = 1<<31 - 1

// Weights holds cumulative sums over per-item weights so each draw is one binary search.
// The zero value means uniform
type Weights struct {
	cum []int64
}

// NewWeights validates ws (every weight > 0) and precomputes the cumulative sums.
// Weights above MaxWeight count as MaxWeight
func NewWeights(ws []int) (Weights, error) {
	if len(ws) == 0 {
		return Weights{}, nil
	}
	cum := make([]int64, len(ws))
	var total int64
	for i, w := range ws {
		if w <= 0 {
			return Weights{}, fmt.Errorf("sampler: weight %d at index %d must be positive", w, i)
		}
		w = min(w, MaxWeight)
		if total > math.MaxInt64-int64(w) {
			return Weights{}, fmt.Errorf("sampler: weights overflow at index %d", i)
		}
		total += int64(w)
		cum[i] = total
	}
	return Weights{cum: cum}, nil
}

// Len is the number of items the weights cover, 0 for uniform
func (w Weights) Len() int { return len(w.cum) }

// Total is the sum of all weights
func (w Weights) Total() int64 {
	if len(w.cum) == 0 {
		return 0
	}
	return w.cum[len(w.cum)-1]
}

// pick returns an index proportional to weight
func (w Weights) pick(src Source) int {
	x := src.Int64N(w.Total())
	return sort.Search(len(w.cum), func(i int) bool { return w.cum[i] > x })
}

// Draw takes k independent samples from items with replacement.
// Uniform when w is the zero value, weighted otherwise
func Draw[T any](src Source, items []T, w Weights, k int) ([]T, error) {
	if k < 0 {
		return nil, fmt.Errorf("sampler: negative sample size %d", k)
	}
	if len(items) == 0 {
		return nil, nil
	}
	if w.Len() != 0 && w.Len() != len(items) {
		return nil, fmt.Errorf("sampler: %d weights for %d items", w.Len(), len(items))
	}

	out := make([]T, k)
	for i := range out {
		if w.Len() == 0 {
			out[i] = items[src.IntN(len(items))]
			continue
		}
		out[i] = items[w.pick(src)]
	}
	return out, nil
}

// Sample is Draw with raw weights; nil weights means uniform
func Sample[T any](src Source, items []T, weights []int, k int) ([]T, error) {
	if weights != nil && len(weights) != len(items) {
		return nil, fmt.Errorf("sampler: %d weights for %d items", len(weights), len(items))
	}
	w, err := NewWeights(weights)
	if err != nil {
		return nil, err
	}
	return Draw(src, items, w, k)
}

// Locked is a Source safe for concurrent use, seeded once at startup
type Locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLocked returns a Locked source over a PCG generator
func NewLocked(seed1, seed2 uint64) *Locked {
	return &Locked{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// IntN implements Source
func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// Int64N implements Source
func (l *Locked) Int64N(n int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Int64N(n)
}
