package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GeneratesV4(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()
	if id == uuid.Nil {
		t.Fatal("expected non-nil UUID")
	}
	if id.Version() != 4 {
		t.Errorf("expected version 4 UUID, got version %d", id.Version())
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()

	seen := make(map[uuid.UUID]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := g.Generate()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate UUID generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}
