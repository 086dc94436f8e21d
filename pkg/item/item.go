// Package item holds the submitted-item model shared by the store, the
// printers and the terminal UI.
package item

import (
	"fmt"
	"strings"
	"time"
)

// Item is a single piece logged for submission, e.g. "Shirt blue".
type Item struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	DateAdded   Timestamp `json:"dateAdded"`
	// SequenceNumber ranks the item among same base name siblings in its
	// list. Nil for the first occurrence.
	SequenceNumber *int `json:"sequenceNumber"`
	IsReceived     bool `json:"isReceived"`
}

// New returns an item added at the given time.
func New(id int, description string, added time.Time) Item {
	return Item{
		ID:          id,
		Description: description,
		DateAdded:   Timestamp{Time: added},
	}
}

// BaseName is the first whitespace delimited token of the description. A
// description with no tokens is its own base name.
func (i Item) BaseName() string {
	return BaseName(i.Description)
}

// BaseName returns the grouping key of a description.
func BaseName(description string) string {
	if f := strings.Fields(description); len(f) > 0 {
		return f[0]
	}
	return description
}

// Sequence returns the sequence number, treating an absent one as 1.
func (i Item) Sequence() int {
	if i.SequenceNumber == nil {
		return 1
	}
	return *i.SequenceNumber
}

func (i Item) String() string {
	if i.SequenceNumber != nil {
		return fmt.Sprintf("%s #%d", i.Description, *i.SequenceNumber)
	}
	return i.Description
}

// Clone copies the item, including its sequence number pointer target.
func (i Item) Clone() Item {
	if i.SequenceNumber != nil {
		n := *i.SequenceNumber
		i.SequenceNumber = &n
	}
	return i
}

// CloneAll deep copies a list; nil stays nil.
func CloneAll(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for idx, it := range items {
		out[idx] = it.Clone()
	}
	return out
}
