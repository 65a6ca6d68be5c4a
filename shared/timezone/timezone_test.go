package timezone_test

import (
	"hotelbook/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestTrailingMonths(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, timezone.GetLocation())

	months := timezone.TrailingMonths(now, 6)
	if len(months) != 6 {
		t.Fatalf("expected 6 months, got %d", len(months))
	}

	expected := []string{"Oct 2024", "Nov 2024", "Dec 2024", "Jan 2025", "Feb 2025", "Mar 2025"}
	for i, month := range months {
		if got := month.Format("Jan 2006"); got != expected[i] {
			t.Errorf("month %d: expected %s, got %s", i, expected[i], got)
		}

		if month.Day() != 1 {
			t.Errorf("month %d: expected first day of month, got %d", i, month.Day())
		}
	}

	if timezone.TrailingMonths(now, 0) != nil {
		t.Error("expected nil for a non-positive count")
	}
}

func TestTrailingMonths_EndOfMonth(t *testing.T) {
	now := time.Date(2025, time.May, 31, 23, 0, 0, 0, timezone.GetLocation())

	months := timezone.TrailingMonths(now, 3)

	if got := months[0].Format("2006-01-02"); got != "2025-03-01" {
		t.Errorf("expected 2025-03-01, got %s", got)
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{
			name:     "three nights",
			checkIn:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
			expected: 3,
		},
		{
			name:     "time of day ignored",
			checkIn:  time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "same day",
			checkIn:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "reversed",
			checkIn:  time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			expected: -3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timezone.Nights(tt.checkIn, tt.checkOut); got != tt.expected {
				t.Errorf("expected %d nights, got %d", tt.expected, got)
			}
		})
	}
}
