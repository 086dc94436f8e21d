package timeutil

import (
	"testing"
	"time"
)

var tokyo = time.FixedZone("JST", 9*60*60)

func TestDayUsesLocation(t *testing.T) {
	// 20:30 UTC on the 1st is already the 2nd in Tokyo.
	at := time.Date(2025, 3, 1, 20, 30, 0, 0, time.UTC)

	got := Day(at, tokyo)
	want := time.Date(2025, 3, 2, 0, 0, 0, 0, tokyo)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if FormatDay(got) != "2025-03-02" {
		t.Fatalf("unexpected key %s", FormatDay(got))
	}
}

func TestDayIsIdempotent(t *testing.T) {
	d := Day(time.Date(2025, 3, 1, 23, 59, 59, 0, tokyo), tokyo)
	if !Day(d, tokyo).Equal(d) {
		t.Fatalf("truncating a day key changed it")
	}
}

func TestMonth(t *testing.T) {
	got := Month(time.Date(2025, 3, 17, 13, 0, 0, 0, tokyo), tokyo)
	want := time.Date(2025, 3, 1, 0, 0, 0, 0, tokyo)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if FormatMonth(got) != "March 2025" {
		t.Fatalf("unexpected label %s", FormatMonth(got))
	}
}

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	for _, tc := range []struct {
		from time.Time
		n    int
		want time.Time
	}{
		{time.Date(2025, 6, 30, 12, 0, 0, 0, tokyo), -4, time.Date(2025, 2, 28, 12, 0, 0, 0, tokyo)},
		{time.Date(2024, 6, 30, 12, 0, 0, 0, tokyo), -4, time.Date(2024, 2, 29, 12, 0, 0, 0, tokyo)},
		{time.Date(2025, 7, 31, 8, 0, 0, 0, tokyo), -1, time.Date(2025, 6, 30, 8, 0, 0, 0, tokyo)},
		{time.Date(2025, 7, 15, 12, 0, 0, 0, tokyo), -4, time.Date(2025, 3, 15, 12, 0, 0, 0, tokyo)},
		{time.Date(2025, 2, 28, 0, 0, 0, 0, tokyo), -14, time.Date(2023, 12, 28, 0, 0, 0, 0, tokyo)},
		{time.Date(2025, 1, 31, 0, 0, 0, 0, tokyo), 1, time.Date(2025, 2, 28, 0, 0, 0, 0, tokyo)},
	} {
		if got := AddMonths(tc.from, tc.n); !got.Equal(tc.want) {
			t.Errorf("AddMonths(%v, %d): expected %v, got %v", tc.from, tc.n, tc.want, got)
		}
	}
}

func TestParseDayKey(t *testing.T) {
	got, err := ParseDayKey("2025-03-01", tokyo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, tokyo)) {
		t.Fatalf("unexpected day %v", got)
	}

	// Full timestamps are truncated in the target location.
	got, err = ParseDayKey("2025-03-01T16:00:00Z", tokyo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2025, 3, 2, 0, 0, 0, 0, tokyo)) {
		t.Fatalf("unexpected day %v", got)
	}

	if _, err := ParseDayKey("March 1st", tokyo); err == nil {
		t.Fatalf("expected error for bad key")
	}
}

func TestParseOn(t *testing.T) {
	now := time.Date(2025, 1, 3, 10, 0, 0, 0, tokyo)

	cases := map[string]time.Time{
		"":          time.Date(2025, 1, 3, 0, 0, 0, 0, tokyo),
		"today":     time.Date(2025, 1, 3, 0, 0, 0, 0, tokyo),
		"yesterday": time.Date(2025, 1, 2, 0, 0, 0, 0, tokyo),
		"2024-7-4":  time.Date(2024, 7, 4, 0, 0, 0, 0, tokyo),
		"1/2":       time.Date(2025, 1, 2, 0, 0, 0, 0, tokyo),
		"12/30":     time.Date(2024, 12, 30, 0, 0, 0, 0, tokyo),
	}
	for in, want := range cases {
		got, err := ParseOn(in, now, tokyo)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}

	if _, err := ParseOn("someday", now, tokyo); err == nil {
		t.Fatalf("expected error for bad date")
	}
}
