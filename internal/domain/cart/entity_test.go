package cart

import (
	"errors"
	"testing"
	"time"
)

func TestNewLine_KeyAndDefaults(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	l, err := NewLine(" u1 ", "p1", " M ", 0, 10, "Tee", "a.jpg", "StoreA", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.ID != "u1-p1-M" {
		t.Fatalf("id = %q, want u1-p1-M", l.ID)
	}
	if l.Quantity != 1 {
		t.Fatalf("quantity = %d, want default 1", l.Quantity)
	}
}

func TestNewLine_Invalid(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		fn   func() error
	}{
		{"missing size", func() error { _, err := NewLine("u", "p", "", 1, 1, "n", "", "", now); return err }},
		{"missing user", func() error { _, err := NewLine("", "p", "M", 1, 1, "n", "", "", now); return err }},
		{"negative qty", func() error { _, err := NewLine("u", "p", "M", -2, 1, "n", "", "", now); return err }},
		{"negative price", func() error { _, err := NewLine("u", "p", "M", 1, -1, "n", "", "", now); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, ErrInvalidLine) {
				t.Fatalf("expected ErrInvalidLine, got %v", err)
			}
		})
	}
}

func TestLines_Total(t *testing.T) {
	ls := Lines{
		{Price: 10, Quantity: 2},
		{Price: 5, Quantity: 1},
	}
	if got := ls.Total().String(); got != "25" {
		t.Fatalf("total = %s, want 25", got)
	}
}
