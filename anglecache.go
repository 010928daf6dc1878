package stitch

import (
	"container/list"
	"encoding/binary"
	"hash/fnv"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gostitch/stitch/geom"
)

// DefaultAngleCacheEntries is the default capacity of an AngleCache.
const DefaultAngleCacheEntries = 1024

// AngleCache memoizes derived fill angles keyed by a fingerprint of
// their inputs (the clone's net angle transform and the element's
// local angle). Because the key is a content hash, a change to any
// input simply misses instead of returning a stale value; no explicit
// invalidation is needed.
//
// The cache is bounded, evicts least recently used entries, and is
// safe for concurrent use.
type AngleCache struct {
	mu      sync.Mutex
	entries map[uint64]*angleEntry
	lru     *list.List // front = most recently used
	max     int

	hits   atomic.Uint64
	misses atomic.Uint64
}

type angleEntry struct {
	key   uint64
	angle float64
	elem  *list.Element
}

// AngleCacheStats is a snapshot of cache effectiveness counters.
type AngleCacheStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// NewAngleCache creates a cache holding at most max entries.
// Non-positive max selects DefaultAngleCacheEntries.
func NewAngleCache(max int) *AngleCache {
	if max <= 0 {
		max = DefaultAngleCacheEntries
	}
	return &AngleCache{
		entries: make(map[uint64]*angleEntry),
		lru:     list.New(),
		max:     max,
	}
}

func (c *AngleCache) lookup(key uint64) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		return 0, false
	}
	c.lru.MoveToFront(e.elem)
	c.hits.Add(1)
	return e.angle, true
}

func (c *AngleCache) store(key uint64, angle float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.angle = angle
		c.lru.MoveToFront(e.elem)
		return
	}
	e := &angleEntry{key: key, angle: angle}
	e.elem = c.lru.PushFront(e)
	c.entries[key] = e
	for len(c.entries) > c.max {
		back := c.lru.Back()
		if back == nil {
			break
		}
		evicted := c.lru.Remove(back).(*angleEntry)
		delete(c.entries, evicted.key)
	}
}

// Stats returns a snapshot of the cache counters.
func (c *AngleCache) Stats() AngleCacheStats {
	c.mu.Lock()
	n := len(c.entries)
	c.mu.Unlock()
	return AngleCacheStats{
		Entries: n,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}

// angleFingerprint hashes the inputs of a derived angle: the net angle
// transform's linear block and the element's local angle.
func angleFingerprint(at geom.Matrix, localAngle float64) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range [...]float64{at.A, at.B, at.C, at.D, localAngle} {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	return h.Sum64()
}
