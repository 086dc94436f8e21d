package submission

import (
	"time"

	"tableflip.dev/subtrack/pkg/item"
	"tableflip.dev/subtrack/pkg/timeutil"
)

// AddItem appends a new pending item. The description is taken as is;
// rejecting empty input is the caller's job.
func (s *Store) AddItem(description string) item.Item {
	it := item.New(s.nextID, description, s.now())
	s.nextID++
	s.current = append(s.current, it)
	resequence(s.current)
	return s.current[len(s.current)-1].Clone()
}

// RemoveCurrentItem drops the first pending item with the given id and
// compacts ids. It reports whether an item was removed.
func (s *Store) RemoveCurrentItem(id int) bool {
	idx := indexOf(s.current, id)
	if idx < 0 {
		return false
	}
	s.current = append(s.current[:idx], s.current[idx+1:]...)
	resequence(s.current)
	s.renumber()
	s.save()
	return true
}

// MarkAsSubmitted moves the pending list, in order, onto today's history
// and remembers it for UndoLastSubmission. With nothing pending it only
// empties the undo buffer.
func (s *Store) MarkAsSubmitted() {
	now := s.now()
	s.undo = item.CloneAll(s.current)
	s.undoAt = now
	if len(s.current) == 0 {
		s.undo = nil
		return
	}

	day := s.day(now)
	list := make([]item.Item, 0, len(s.history[day])+len(s.current))
	list = append(list, s.history[day]...)
	list = append(list, s.current...)
	resequence(list)
	s.history[day] = list
	s.current = nil
	s.save()
}

// UndoLastSubmission takes the last submitted batch back out of its day and
// appends it to the pending list. Only one submission can be undone. It
// reports whether anything was restored.
func (s *Store) UndoLastSubmission() bool {
	if !s.CanUndo() {
		return false
	}
	day := s.day(s.undoAt)
	buf := s.undo
	s.clearUndo()

	present := make(map[int]bool, len(buf))
	var kept []item.Item
	for _, it := range s.history[day] {
		if indexOf(buf, it.ID) >= 0 {
			present[it.ID] = true
		} else {
			kept = append(kept, it)
		}
	}
	if len(present) == 0 {
		return false
	}
	s.setDay(day, kept)

	// The buffer goes back as it was submitted; changes made to the history
	// copies in between (the received flag) stay behind.
	var restored []item.Item
	for _, it := range buf {
		if present[it.ID] {
			restored = append(restored, it)
		}
	}

	s.current = append(s.current, restored...)
	resequence(s.current)
	s.renumber()
	s.save()
	return true
}

// RemoveHistoryItem deletes an item from the day containing date and
// compacts ids. A day left empty is removed. It reports whether an item was
// removed.
func (s *Store) RemoveHistoryItem(id int, date time.Time) bool {
	day := s.day(date)
	list := s.history[day]
	idx := indexOf(list, id)
	if idx < 0 {
		return false
	}
	rest := make([]item.Item, 0, len(list)-1)
	rest = append(rest, list[:idx]...)
	rest = append(rest, list[idx+1:]...)
	s.setDay(day, rest)
	s.renumber()
	s.save()
	return true
}

// ToggleItemReceived flips the received flag of a history item. Ids and
// sequence numbers are untouched.
func (s *Store) ToggleItemReceived(id int, date time.Time) bool {
	list := s.history[s.day(date)]
	idx := indexOf(list, id)
	if idx < 0 {
		return false
	}
	list[idx].IsReceived = !list[idx].IsReceived
	s.save()
	return true
}

// ClearHistory wipes all history and restarts ids at 1. Pending items keep
// their ids, so they can collide with new ones until the next removal
// compacts ids again.
func (s *Store) ClearHistory() {
	s.history = item.History{}
	s.nextID = 1
	s.clearUndo()
	s.save()
}

// CleanOldHistory drops days that are not after the retention cutoff
// (now minus the retention months). It returns the number of days removed.
func (s *Store) CleanOldHistory() int {
	cutoff := timeutil.AddMonths(s.now(), -s.retention)
	removed := 0
	for day := range s.history {
		if !day.After(cutoff) {
			delete(s.history, day)
			removed++
		}
	}
	if removed > 0 {
		s.save()
	}
	return removed
}

// setDay stores a day list, deleting the key when the list is empty.
func (s *Store) setDay(day time.Time, list []item.Item) {
	if len(list) == 0 {
		delete(s.history, day)
		return
	}
	resequence(list)
	s.history[day] = list
}

func indexOf(list []item.Item, id int) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
