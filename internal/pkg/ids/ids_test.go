package ids

import (
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestNewRequestID_SortableAndUnique(t *testing.T) {
	prev := ""
	seen := map[string]struct{}{}
	for i := 0; i < 1000; i++ {
		id := NewRequestID()
		if _, err := ulid.Parse(id); err != nil {
			t.Fatalf("invalid ulid %q: %v", id, err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		if prev != "" && id <= prev {
			t.Fatalf("ids must increase: %q after %q", id, prev)
		}
		seen[id] = struct{}{}
		prev = id
	}
}
