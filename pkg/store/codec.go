package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"tableflip.dev/subtrack/pkg/item"
	"tableflip.dev/subtrack/pkg/timeutil"
)

// EncodeHistory renders h as the persisted document: an object keyed by
// ISO-8601 day with one array of items per day.
func EncodeHistory(h item.History) ([]byte, error) {
	doc := make(map[string][]item.Item, len(h))
	for day, items := range h {
		if len(items) == 0 {
			continue
		}
		doc[timeutil.FormatDay(day)] = items
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("store: json marshal: %w", err)
	}
	return b, nil
}

// DecodeHistory parses a persisted document into day keys in loc. Keys that
// do not parse are skipped; keys that land on the same day are merged in key
// order. Empty days are dropped.
func DecodeHistory(b []byte, loc *time.Location) (item.History, error) {
	h := item.History{}
	if len(b) == 0 {
		return h, nil
	}
	var doc map[string][]item.Item
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("store: json unmarshal: %w", err)
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		items := doc[k]
		if len(items) == 0 {
			continue
		}
		day, err := timeutil.ParseDayKey(k, loc)
		if err != nil {
			continue
		}
		h[day] = append(h[day], items...)
	}
	return h, nil
}
