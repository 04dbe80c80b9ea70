package naming

import "testing"

func TestNewCompactID(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := NewCompactID()
		if err != nil {
			t.Fatalf("NewCompactID failed: %v", err)
		}
		if len(id) != 12 {
			t.Fatalf("expected ID length 12, got %d for ID: %s", len(id), id)
		}
		if ids[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		ids[id] = true

		for _, char := range id {
			if !((char >= '0' && char <= '9') || (char >= 'a' && char <= 'z')) {
				t.Fatalf("invalid character in ID %s: %c", id, char)
			}
		}
	}
}
