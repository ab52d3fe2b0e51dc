package availability

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewRange_EndBeforeStart(t *testing.T) {
	_, err := NewRange(date(2025, 6, 10), date(2025, 6, 9))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestNewRange_DoesNotSwapBounds(t *testing.T) {
	// Reversed bounds must be rejected, not silently fixed.
	if _, err := NewRange(date(2025, 6, 10), date(2025, 6, 1)); err == nil {
		t.Fatalf("expected error for reversed bounds")
	}
}

func TestNewRange_SingleDay(t *testing.T) {
	r, err := NewRange(date(2025, 6, 10), date(2025, 6, 10))
	if err != nil {
		t.Fatalf("single-day range must be valid: %v", err)
	}
	if r.Days() != 1 {
		t.Fatalf("expected 1 day, got %d", r.Days())
	}
}

func TestRange_DaysInclusive(t *testing.T) {
	r, err := NewRange(date(2025, 6, 10), date(2025, 6, 12))
	if err != nil {
		t.Fatalf("new range: %v", err)
	}
	if r.Days() != 3 {
		t.Fatalf("expected 3 days, got %d", r.Days())
	}
}

func TestRange_Dates(t *testing.T) {
	r, err := NewRange(date(2025, 6, 28), date(2025, 7, 2))
	if err != nil {
		t.Fatalf("new range: %v", err)
	}

	dates := r.Dates()
	if len(dates) != 5 {
		t.Fatalf("expected 5 dates, got %d", len(dates))
	}
	if !dates[0].Equal(date(2025, 6, 28)) || !dates[4].Equal(date(2025, 7, 2)) {
		t.Fatalf("wrong expansion: %v", dates)
	}
	// Month boundary crossed correctly.
	if !dates[3].Equal(date(2025, 7, 1)) {
		t.Fatalf("expected 2025-07-01 at index 3, got %v", dates[3])
	}
}

func TestNewRange_NormalizesTimeOfDay(t *testing.T) {
	start := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	end := time.Date(2025, 6, 11, 0, 1, 0, 0, time.UTC)

	r, err := NewRange(start, end)
	if err != nil {
		t.Fatalf("new range: %v", err)
	}
	if r.Days() != 2 {
		t.Fatalf("expected 2 calendar days, got %d", r.Days())
	}
}
