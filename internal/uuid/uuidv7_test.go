package uuid

import (
	"testing"

	googleuuid "github.com/google/uuid"
)

func TestNew_IsVersion7(t *testing.T) {
	id, err := googleuuid.Parse(New())
	if err != nil {
		t.Fatalf("New() produced unparsable id: %v", err)
	}
	if id.Version() != 7 {
		t.Errorf("expected version 7, got %d", id.Version())
	}
}

func TestNew_IsTimeOrdered(t *testing.T) {
	a := New()
	b := New()
	if a[:13] > b[:13] {
		t.Errorf("expected %s to sort before %s", a, b)
	}
}

func TestNewRequestID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewRequestID()
		if seen[id] {
			t.Fatalf("duplicate request id %s", id)
		}
		seen[id] = true
	}
}
