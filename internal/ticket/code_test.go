package ticket

import (
	"regexp"
	"testing"
)

func TestNewCodeShape(t *testing.T) {
	valid := regexp.MustCompile(`^[A-Z0-9]{8}$`)
	for i := 0; i < 1000; i++ {
		code, err := NewCode()
		if err != nil {
			t.Fatalf("NewCode: %v", err)
		}
		if !valid.MatchString(code) {
			t.Fatalf("code %q is not 8 chars of [A-Z0-9]", code)
		}
	}
}

func TestNewCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := NewCode()
		if err != nil {
			t.Fatalf("NewCode: %v", err)
		}
		seen[code] = true
	}
	// 100 draws from 36^8 values colliding down to a handful would mean a
	// broken generator, not bad luck.
	if len(seen) < 90 {
		t.Fatalf("only %d distinct codes out of 100", len(seen))
	}
}
