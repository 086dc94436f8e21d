package item

import (
	"sort"
	"time"
)

// History maps a day key (local midnight) to the items submitted that day,
// in submission order.
type History map[time.Time][]Item

// Days returns the day keys, oldest first.
func (h History) Days() []time.Time {
	days := make([]time.Time, 0, len(h))
	for d := range h {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// Count is the number of items across all days.
func (h History) Count() int {
	n := 0
	for _, items := range h {
		n += len(items)
	}
	return n
}

// Clone deep copies the history.
func (h History) Clone() History {
	out := make(History, len(h))
	for d, items := range h {
		out[d] = CloneAll(items)
	}
	return out
}
