package ttl

import (
	"TTLCache/internal"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"time"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/samber/mo"
)

// Cache is a lazily expiring key/value store. An entry is reported by Get
// only while less than ttl has passed since its last Insert. Expired
// entries stay stored until they are overwritten, removed or cleared.
//
// Keys that Go can compare with == are matched by ==. Other keys (slices,
// maps, structs holding them) are bucketed by their hashstructure hash and
// matched with reflect.DeepEqual.
//
// Cache is not safe for concurrent use.
type Cache[K, V any] struct {
	ttl time.Duration

	items     map[any]*internal.Entry[K, V]
	hashed    map[uint64][]*internal.Entry[K, V]
	hashedLen int

	now    func() time.Time
	logger *slog.Logger
}

func NewCache[K, V any](ttl time.Duration, opts ...CacheOption) *Cache[K, V] {
	cfg := newConfig(opts)

	return &Cache[K, V]{
		ttl:    ttl,
		items:  make(map[any]*internal.Entry[K, V]),
		hashed: make(map[uint64][]*internal.Entry[K, V]),
		now:    cfg.now,
		logger: cfg.logger,
	}
}

func (c *Cache[K, V]) Get(key K) (val V, ok bool) {
	ent := c.find(key)
	if ent == nil || !ent.Alive(c.now(), c.ttl) {
		// stale entries are left in place, Remove still returns them
		return val, false
	}

	return ent.Value, true
}

func (c *Cache[K, V]) Insert(key K, value V) {
	now := c.now()

	if comparableKey(key) {
		c.items[key] = internal.NewEntry(key, value, now)
		return
	}

	hash, ok := c.hash(key)
	if !ok {
		return
	}

	bucket := c.hashed[hash]
	for i, ent := range bucket {
		if reflect.DeepEqual(ent.Key, key) {
			bucket[i] = internal.NewEntry(key, value, now)
			return
		}
	}

	c.hashed[hash] = append(bucket, internal.NewEntry(key, value, now))
	c.hashedLen++
}

// Remove deletes the entry for key whether or not it has expired.
func (c *Cache[K, V]) Remove(key K) (val V, ok bool) {
	if comparableKey(key) {
		ent, ok := c.items[key]
		if !ok {
			return val, false
		}
		delete(c.items, key)

		return ent.Value, true
	}

	hash, ok := c.hash(key)
	if !ok {
		return val, false
	}

	bucket := c.hashed[hash]
	for i, ent := range bucket {
		if !reflect.DeepEqual(ent.Key, key) {
			continue
		}

		if bucket = slices.Delete(bucket, i, i+1); len(bucket) == 0 {
			delete(c.hashed, hash)
		} else {
			c.hashed[hash] = bucket
		}
		c.hashedLen--

		return ent.Value, true
	}

	return val, false
}

func (c *Cache[K, V]) Clear() {
	clear(c.items)
	clear(c.hashed)
	c.hashedLen = 0
}

func (c *Cache[K, V]) Lookup(key K) mo.Option[V] {
	return mo.TupleToOption(c.Get(key))
}

func (c *Cache[K, V]) Take(key K) mo.Option[V] {
	return mo.TupleToOption(c.Remove(key))
}

// Len counts stored entries, expired ones included.
func (c *Cache[K, V]) Len() int {
	return len(c.items) + c.hashedLen
}

func (c *Cache[K, V]) TTL() time.Duration {
	return c.ttl
}

func (c *Cache[K, V]) find(key K) *internal.Entry[K, V] {
	if comparableKey(key) {
		return c.items[key]
	}

	hash, ok := c.hash(key)
	if !ok {
		return nil
	}

	for _, ent := range c.hashed[hash] {
		if reflect.DeepEqual(ent.Key, key) {
			return ent
		}
	}

	return nil
}

func (c *Cache[K, V]) hash(key K) (uint64, bool) {
	hash, err := hashstructure.Hash(key, hashstructure.FormatV2, nil)
	if err != nil {
		c.logger.Warn("ttl cache: unhashable key",
			"key_type", fmt.Sprintf("%T", key),
			"error", err)
		return 0, false
	}

	return hash, true
}

// comparableKey reports whether key can be used as a Go map key without
// panicking. Interface keys are checked against their dynamic value.
func comparableKey[K any](key K) bool {
	return reflect.ValueOf(&key).Elem().Comparable()
}
