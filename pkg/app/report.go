package app

import (
	"time"

	"tableflip.dev/subtrack/pkg/item"
	"tableflip.dev/subtrack/pkg/submission"
)

// DaySection is one day of history.
type DaySection struct {
	Day   time.Time   `json:"day"`
	Items []item.Item `json:"items"`
}

// Report bundles the statistics views.
type Report struct {
	Total   int                     `json:"total"`
	Items   []submission.ItemStat   `json:"items"`
	Monthly []submission.MonthCount `json:"monthly"`
}

// History returns the days within window of now, newest first. A window
// of zero or less returns every day.
func (s *Service) History(window time.Duration) ([]DaySection, error) {
	if s.Store == nil {
		return nil, ErrNoStore
	}
	var since time.Time
	if window > 0 {
		since = s.Store.Today().Add(-window)
	}
	days := s.Store.Days()
	sections := make([]DaySection, 0, len(days))
	for i := len(days) - 1; i >= 0; i-- {
		day := days[i]
		if !since.IsZero() && day.Before(since) {
			break
		}
		sections = append(sections, DaySection{Day: day, Items: s.Store.ItemsForDate(day)})
	}
	return sections, nil
}

// Report computes per item and per month statistics over the history.
func (s *Service) Report() (Report, error) {
	if s.Store == nil {
		return Report{}, ErrNoStore
	}
	r := Report{
		Items:   s.Store.Statistics(),
		Monthly: s.Store.MonthlyStats(),
	}
	for _, st := range r.Items {
		r.Total += st.Count
	}
	return r, nil
}
