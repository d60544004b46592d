// Package metacache keeps decoded catalog metadata per language.
//
// Entries never expire on their own; the catalog publishes a modification
// date and callers invalidate when they know it changed.
package metacache

import (
	"context"
	"log/slog"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/sirosfoundation/go-rit/pkg/metadata"
)

// Loader fetches and indexes the metadata for one language
type Loader func(ctx context.Context, language string) (*metadata.Index, error)

// Cache is a per-language metadata cache
type Cache struct {
	store  *gocache.Cache
	load   Loader
	logger *slog.Logger

	// serializes loads and invalidation so concurrent misses fetch once
	// and an in-flight load cannot restore an invalidated entry
	mu sync.Mutex
}

// New creates a cache that fills itself with load
func New(load Loader, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		store:  gocache.New(gocache.NoExpiration, 0),
		load:   load,
		logger: logger,
	}
}

// Index returns the cached index for language, loading it on a miss
func (c *Cache) Index(ctx context.Context, language string) (*metadata.Index, error) {
	if idx, ok := c.get(language); ok {
		return idx, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if idx, ok := c.get(language); ok {
		return idx, nil
	}

	idx, err := c.load(ctx, language)
	if err != nil {
		return nil, err
	}
	c.store.Set(language, idx, gocache.NoExpiration)
	c.logger.Debug("metadata cached", "language", language, "last_modified", idx.LastModificationDate())
	return idx, nil
}

func (c *Cache) get(language string) (*metadata.Index, bool) {
	v, ok := c.store.Get(language)
	if !ok {
		return nil, false
	}
	idx, ok := v.(*metadata.Index)
	return idx, ok
}

// Invalidate drops the entry for language
func (c *Cache) Invalidate(language string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Delete(language)
}

// InvalidateAll drops every entry
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Flush()
}

// Len returns the number of cached languages
func (c *Cache) Len() int {
	return c.store.ItemCount()
}
