package ttl

import (
	"time"

	"github.com/samber/mo"
)

type ICache[K, V any] interface {
	TTL() time.Duration
	Len() int
	Clear()
	Insert(key K, value V)
	Get(key K) (value V, ok bool)
	Remove(key K) (value V, ok bool)
	Lookup(key K) mo.Option[V]
	Take(key K) mo.Option[V]
}

var _ ICache[string, any] = (*Cache[string, any])(nil)
