package extglob

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoises compiled patterns by pattern text and options. Caching only
// saves work: a cached Pattern behaves identically to a freshly compiled one.
// A Cache is safe for concurrent use.
type Cache struct {
	size  int
	store atomic.Pointer[cacheGeneration]
}

type cacheKey struct {
	pattern string
	flags   byte
}

// cacheStore is implemented by the unbounded and the LRU stores.
type cacheStore interface {
	get(k cacheKey, fp uint64) (*Pattern, bool)
	// add stores p unless a Pattern is already stored for k, and returns
	// whichever is stored.
	add(k cacheKey, fp uint64, p *Pattern) *Pattern
	len() int
}

// cacheGeneration is swapped out wholesale by Clear.
type cacheGeneration struct{ cacheStore }

var defaultCache = NewCache(0)

// ClearCache discards every pattern in the default cache.
func ClearCache() { defaultCache.Clear() }

// NewCache returns an empty cache. If size is positive, the cache holds at
// most size patterns, evicting the least recently used. Otherwise it is
// unbounded.
func NewCache(size int) *Cache {
	c := &Cache{size: size}
	c.Clear()
	return c
}

// Parse returns the compiled form of the pattern, compiling it on a miss.
func (c *Cache) Parse(pattern string, opts ...Option) *Pattern {
	cfg := resolveOptions(opts)
	k := cacheKey{pattern: pattern, flags: cfg.flags()}
	fp := cfg.fingerprint(pattern)

	st := c.store.Load()
	if p, ok := st.get(k, fp); ok {
		return p
	}
	return st.add(k, fp, compilePattern(pattern, cfg))
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int { return c.store.Load().len() }

// Clear discards every cached pattern. Concurrent lookups see either the old
// or the new contents.
func (c *Cache) Clear() {
	if c.size > 0 {
		l, err := lru.New[cacheKey, *Pattern](c.size)
		if err != nil {
			// Only returned for a non-positive size.
			panic(err)
		}
		c.store.Store(&cacheGeneration{lruStore{l}})
		return
	}
	c.store.Store(&cacheGeneration{new(mapStore)})
}

const mapShards = 16

// mapStore is an unbounded store, sharded by fingerprint to spread lock
// contention.
type mapStore struct {
	shards [mapShards]mapShard
}

type mapShard struct {
	mu sync.RWMutex
	m  map[cacheKey]*Pattern
}

func (s *mapStore) shard(fp uint64) *mapShard { return &s.shards[fp%mapShards] }

func (s *mapStore) get(k cacheKey, fp uint64) (*Pattern, bool) {
	sh := s.shard(fp)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	p, ok := sh.m[k]
	return p, ok
}

func (s *mapStore) add(k cacheKey, fp uint64, p *Pattern) *Pattern {
	sh := s.shard(fp)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if old, ok := sh.m[k]; ok {
		return old
	}
	if sh.m == nil {
		sh.m = make(map[cacheKey]*Pattern)
	}
	sh.m[k] = p
	return p
}

func (s *mapStore) len() int {
	n := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.RLock()
		n += len(sh.m)
		sh.mu.RUnlock()
	}
	return n
}

// lruStore is a bounded store.
type lruStore struct {
	l *lru.Cache[cacheKey, *Pattern]
}

func (s lruStore) get(k cacheKey, _ uint64) (*Pattern, bool) { return s.l.Get(k) }

func (s lruStore) add(k cacheKey, _ uint64, p *Pattern) *Pattern {
	if old, ok, _ := s.l.PeekOrAdd(k, p); ok {
		return old
	}
	return p
}

func (s lruStore) len() int { return s.l.Len() }
