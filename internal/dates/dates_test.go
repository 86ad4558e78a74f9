package dates

import (
	"errors"
	"testing"
	"time"
)

func TestParseValid(t *testing.T) {
	t.Parallel()

	d, err := Parse("2024-06-01")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.June || d.Day() != 1 {
		t.Errorf("Expected 2024-06-01, got %v", d)
	}
	if d.Hour() != 0 || d.Location() != time.UTC {
		t.Errorf("Expected UTC midnight, got %v", d)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	t.Parallel()

	bad := []string{
		"",
		"2024/06/01",
		"01-06-2024",
		"2024-6-1",
		"2024-13-01",
		"2024-02-30",
		"2024-06-01 extra",
		"not a date",
	}

	for _, in := range bad {
		if _, err := Parse(in); err == nil {
			t.Errorf("Expected error for %q, got none", in)
		} else if !errors.Is(err, ErrFormat) {
			t.Errorf("Expected ErrFormat for %q, got %v", in, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"1999-12-31", "2024-01-01", "2024-02-29"} {
		d, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", in, err)
		}
		if got := Format(d); got != in {
			t.Errorf("Round trip of %q produced %q", in, got)
		}
		back, err := Parse(Format(d))
		if err != nil {
			t.Fatalf("Re-parse of %q failed: %v", Format(d), err)
		}
		if !back.Equal(d) {
			t.Errorf("Parse(Format(%v)) = %v", d, back)
		}
	}
}

func TestDayOf(t *testing.T) {
	t.Parallel()

	nearMidnight := time.Date(2024, time.June, 1, 23, 59, 59, 0, time.UTC)
	if got := DayOf(nearMidnight); Format(got) != "2024-06-01" {
		t.Errorf("Expected 2024-06-01, got %s", Format(got))
	}

	// A non-UTC instant is converted to UTC before truncation.
	east := time.FixedZone("UTC+3", 3*3600)
	early := time.Date(2024, time.June, 2, 1, 30, 0, 0, east) // 2024-06-01 22:30 UTC
	if got := DayOf(early); Format(got) != "2024-06-01" {
		t.Errorf("Expected 2024-06-01, got %s", Format(got))
	}

	if got := DayOf(nearMidnight); got.Hour() != 0 || got.Location() != time.UTC {
		t.Errorf("Expected UTC midnight, got %v", got)
	}
}

func TestTodayIsMidnightUTC(t *testing.T) {
	t.Parallel()

	d := Today()
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
		t.Errorf("Expected midnight, got %v", d)
	}
	if _, err := Parse(Format(d)); err != nil {
		t.Errorf("Today does not round trip: %v", err)
	}
}
