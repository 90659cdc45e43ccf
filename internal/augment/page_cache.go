package augment

import (
	"sync"
	"time"

	"navsync/nav"
)

type cacheEntry struct {
	body    []byte
	created time.Time
}

// pageCache keeps augmented pages for a bounded time so repeated selections
// of the same tab on the same page skip the upstream fetch.
type pageCache struct {
	mu   sync.RWMutex
	now  func() time.Time
	ttl  time.Duration
	data map[string]cacheEntry
}

func newPageCache(now func() time.Time, ttl time.Duration) *pageCache {
	if now == nil {
		now = time.Now
	}
	return &pageCache{
		now:  now,
		ttl:  ttl,
		data: make(map[string]cacheEntry),
	}
}

func cacheKey(target, tab string, opts nav.Options) string {
	return target + "|tab=" + tab +
		"|c=" + opts.ContainerSelector +
		"|m=" + opts.MarkerName +
		"|s=" + opts.SelectedClass
}

func (c *pageCache) Store(target, tab string, opts nav.Options, body []byte) {
	if len(body) == 0 || c.ttl <= 0 {
		return
	}
	entry := cacheEntry{
		body:    append([]byte(nil), body...),
		created: c.now(),
	}
	key := cacheKey(target, tab, opts)
	c.mu.Lock()
	c.data[key] = entry
	c.mu.Unlock()
}

func (c *pageCache) Get(target, tab string, opts nav.Options) ([]byte, bool) {
	key := cacheKey(target, tab, opts)
	c.mu.RLock()
	entry, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.created) > c.ttl {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return nil, false
	}
	return append([]byte(nil), entry.body...), true
}
