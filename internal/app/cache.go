package service

import (
	"container/list"
	"context"
	"sync"
)

// Cache stores encoded images keyed by job digest. Implementations must be
// safe for concurrent use.
type Cache interface {
	// Get returns the cached image for key, if present.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Put stores an image under key, evicting old entries when full.
	Put(ctx context.Context, key string, img []byte)

	Size() int
}

// CacheOption applies a configuration option to the in-memory cache.
type CacheOption func(*inMemoryCache)

// WithMaxEntries bounds the cache. Zero or negative disables caching.
func WithMaxEntries(n int) CacheOption {
	return func(c *inMemoryCache) {
		c.maxEntries = n
	}
}

// inMemoryCache is a bounded FIFO cache: the oldest render is evicted when
// a new one does not fit. Rendering is deterministic so recency tracking
// buys nothing over insertion order.
type inMemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]*list.Element
	order      *list.List // front = oldest
	maxEntries int
}

type cacheEntry struct {
	key string
	img []byte
}

// NewInMemoryCache creates a render cache with configuration options.
func NewInMemoryCache(opts ...CacheOption) Cache {
	c := &inMemoryCache{
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		maxEntries: 256,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *inMemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	if key == "" || c.maxEntries <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return el.Value.(*cacheEntry).img, true
}

func (c *inMemoryCache) Put(_ context.Context, key string, img []byte) {
	if key == "" || c.maxEntries <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; ok {
		return
	}
	for c.order.Len() >= c.maxEntries {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
	c.entries[key] = c.order.PushBack(&cacheEntry{key: key, img: img})
}

func (c *inMemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.order.Len()
}
