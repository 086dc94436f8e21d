package submission

import (
	"sort"
	"time"

	"tableflip.dev/subtrack/pkg/timeutil"
)

// ItemStat is the share of one base name across all history.
type ItemStat struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// MonthCount is the number of items submitted in a calendar month.
type MonthCount struct {
	Month time.Time `json:"month"`
	Count int       `json:"count"`
}

// Statistics groups all history items by base name, most frequent first.
// Equal counts are ordered by name.
func (s *Store) Statistics() []ItemStat {
	counts := make(map[string]int)
	total := 0
	for _, items := range s.history {
		for _, it := range items {
			counts[it.BaseName()]++
			total++
		}
	}

	stats := make([]ItemStat, 0, len(counts))
	for name, n := range counts {
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(n) / float64(total)
		}
		stats = append(stats, ItemStat{Name: name, Count: n, Percentage: pct})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}

// MonthlyStats counts history items per calendar month, newest first.
func (s *Store) MonthlyStats() []MonthCount {
	counts := make(map[time.Time]int)
	for day, items := range s.history {
		counts[timeutil.Month(day, s.loc)] += len(items)
	}
	out := make([]MonthCount, 0, len(counts))
	for m, n := range counts {
		out = append(out, MonthCount{Month: m, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.After(out[j].Month) })
	return out
}
