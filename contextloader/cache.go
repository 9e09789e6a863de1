package contextloader

import (
	"context"
	"sync"
)

// CachingLoader memoizes a wrapped loader's results in memory. Context
// documents are immutable by convention, so refetching the same IRI on
// every traversal is wasted I/O; concurrent Load calls for the same
// uncached IRI each proceed independently and race harmlessly to fill
// the cache, the last write winning.
type CachingLoader struct {
	Loader Loader

	mu    sync.RWMutex
	cache map[string]interface{}
}

func NewCachingLoader(wrapped Loader) *CachingLoader {
	return &CachingLoader{Loader: wrapped, cache: make(map[string]interface{})}
}

func (c *CachingLoader) Load(ctx context.Context, iri string) (interface{}, error) {
	c.mu.RLock()
	doc, ok := c.cache[iri]
	c.mu.RUnlock()
	if ok {
		return doc, nil
	}

	doc, err := c.Loader.Load(ctx, iri)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[iri] = doc
	c.mu.Unlock()
	return doc, nil
}
