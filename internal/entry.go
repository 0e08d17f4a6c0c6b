package internal

import "time"

type Entry[K, V any] struct {
	Key       K
	Value     V
	UpdatedAt time.Time
}

func NewEntry[K, V any](k K, v V, updatedAt time.Time) *Entry[K, V] {
	return &Entry[K, V]{Key: k, Value: v, UpdatedAt: updatedAt}
}

// Alive reports whether less than ttl has passed since the last write.
func (e *Entry[K, V]) Alive(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.UpdatedAt) < ttl
}
