package item

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestBaseName(t *testing.T) {
	cases := map[string]string{
		"Shirt":            "Shirt",
		"Shirt blue":       "Shirt",
		"  Pillow Cover  ": "Pillow",
		"Bath\tTowel":      "Bath",
		"":                 "",
		"   ":              "   ",
	}
	for in, want := range cases {
		if got := BaseName(in); got != want {
			t.Fatalf("BaseName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSequence(t *testing.T) {
	it := New(1, "Shirt", time.Now())
	if it.Sequence() != 1 {
		t.Fatalf("expected implicit 1, got %d", it.Sequence())
	}
	n := 3
	it.SequenceNumber = &n
	if it.Sequence() != 3 || it.String() != "Shirt #3" {
		t.Fatalf("unexpected %d %q", it.Sequence(), it.String())
	}
}

func TestCloneDetachesSequence(t *testing.T) {
	n := 2
	orig := Item{ID: 1, Description: "Shirt", SequenceNumber: &n}
	cp := orig.Clone()
	*cp.SequenceNumber = 5
	if *orig.SequenceNumber != 2 {
		t.Fatalf("clone shares sequence number storage")
	}
	if CloneAll(nil) != nil {
		t.Fatalf("expected nil clone of nil list")
	}
}

func TestItemJSON(t *testing.T) {
	added := time.Date(2025, 3, 1, 9, 30, 0, 0, time.FixedZone("EST", -5*60*60))
	b, err := json.Marshal(New(7, "Pajama", added))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, want := range []string{`"id":7`, `"description":"Pajama"`, `"dateAdded":"2025-03-01T14:30:00Z"`, `"sequenceNumber":null`, `"isReceived":false`} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %s in %s", want, s)
		}
	}

	var back Item
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.DateAdded.Equal(added) {
		t.Fatalf("dateAdded changed: %v vs %v", back.DateAdded, added)
	}
	if back.SequenceNumber != nil {
		t.Fatalf("expected nil sequence number")
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Fatalf("expected parse error")
	}
	if err := json.Unmarshal([]byte(`""`), &ts); err != nil || !ts.IsZero() {
		t.Fatalf("expected zero time for empty string, got %v %v", ts, err)
	}
}
