package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowComposite(t *testing.T) {
	dur, label, err := ParseWindow("1w2d6h30m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (7*24+2*24+6)*time.Hour + 30*time.Minute
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1w2d6h30m" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowDefaultCleanInterval(t *testing.T) {
	dur, label, err := ParseWindow(DefaultCleanInterval)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 24*time.Hour || label != "1d" {
		t.Fatalf("expected 24h/1d, got %v/%s", dur, label)
	}
}

func TestParseWindowGoDuration(t *testing.T) {
	dur, label, err := ParseWindow("36h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 36*time.Hour {
		t.Fatalf("expected 36h, got %v", dur)
	}
	if label != "1d12h" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"", "noop", "3y", "0d"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
