package review

import (
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	r, err := New("c1", "c1@example.com", "p1", 4.5, "  nice fit ", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID != "c1-p1" || r.Comment != "nice fit" {
		t.Fatalf("review = %+v", r)
	}

	for _, bad := range []float64{0, 0.3, 5.5, 3.25} {
		if _, err := New("c1", "", "p1", bad, "", time.Now()); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("rating %v: expected ErrInvalidRating, got %v", bad, err)
		}
	}
}

func TestAverage(t *testing.T) {
	if got := Average(nil); got != 0 {
		t.Fatalf("empty average = %v", got)
	}
	got := Average([]Review{{Rating: 5}, {Rating: 4}, {Rating: 4}})
	if got != 4.33 {
		t.Fatalf("average = %v, want 4.33", got)
	}
}
