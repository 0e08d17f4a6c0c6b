package internal

import (
	"testing"
	"time"
)

func TestEntry_Alive(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ent := NewEntry("a", 1, start)

	if !ent.Alive(start, time.Second) {
		t.Error("expected entry to be alive right after write")
	}
	if !ent.Alive(start.Add(999*time.Millisecond), time.Second) {
		t.Error("expected entry to be alive before ttl elapsed")
	}
	if ent.Alive(start.Add(time.Second), time.Second) {
		t.Error("expected entry to be expired when elapsed equals ttl")
	}
	if ent.Alive(start.Add(2*time.Second), time.Second) {
		t.Error("expected entry to be expired after ttl")
	}
}

func TestEntry_AliveZeroTTL(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ent := NewEntry("a", 1, start)

	if ent.Alive(start, 0) {
		t.Error("expected zero ttl entry to be expired immediately")
	}
}

func TestEntry_AliveNegativeTTL(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ent := NewEntry("a", 1, start)

	if ent.Alive(start, -time.Second) {
		t.Error("expected negative ttl entry to be expired")
	}
}
