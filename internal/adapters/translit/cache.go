package translit

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes a Factory per Pair. Entries are never evicted.
// Concurrent misses on one key share a single build; failed builds are not stored
type Cache struct {
	build  Factory
	m      sync.Map // Pair -> Converter
	sf     singleflight.Group
	size   atomic.Int64
	builds atomic.Int64
}

// NewCache wraps build
func NewCache(build Factory) *Cache {
	return &Cache{build: build}
}

// Get returns the cached converter for p, building it on first use
func (c *Cache) Get(ctx context.Context, p Pair) (Converter, error) {
	if v, ok := c.m.Load(p); ok {
		return v.(Converter), nil
	}
	v, err, _ := c.sf.Do(p.String(), func() (any, error) {
		if v, ok := c.m.Load(p); ok {
			return v, nil
		}
		c.builds.Add(1)
		conv, err := c.build(ctx, p)
		if err != nil {
			return nil, err
		}
		if _, loaded := c.m.LoadOrStore(p, conv); !loaded {
			c.size.Add(1)
		}
		return conv, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Converter), nil
}

// Len is the number of cached converters
func (c *Cache) Len() int { return int(c.size.Load()) }

// Builds counts factory invocations, failed ones included
func (c *Cache) Builds() int64 { return c.builds.Load() }
