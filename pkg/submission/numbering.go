package submission

import (
	"sort"

	"tableflip.dev/subtrack/pkg/item"
)

// resequence recomputes sequence numbers over one list from scratch: the
// k-th item sharing a base name gets k, the first gets none.
func resequence(list []item.Item) {
	seen := make(map[string]int)
	for i := range list {
		name := list[i].BaseName()
		seen[name]++
		if n := seen[name]; n > 1 {
			list[i].SequenceNumber = &n
		} else {
			list[i].SequenceNumber = nil
		}
	}
}

// renumber compacts ids across history and the pending list to 1..N,
// keeping their relative order, and resets the id counter to N+1. Items in
// the undo buffer follow their history copies; buffered items no longer in
// their day are dropped from the buffer.
func (s *Store) renumber() {
	type ref struct {
		it      *item.Item
		undoDay bool
	}

	var undoDay int64
	hasUndo := s.CanUndo()
	if hasUndo {
		undoDay = s.day(s.undoAt).Unix()
	}

	var refs []ref
	for _, day := range s.history.Days() {
		list := s.history[day]
		inUndo := hasUndo && day.Unix() == undoDay
		for i := range list {
			refs = append(refs, ref{it: &list[i], undoDay: inUndo})
		}
	}
	for i := range s.current {
		refs = append(refs, ref{it: &s.current[i]})
	}
	sort.SliceStable(refs, func(i, j int) bool { return refs[i].it.ID < refs[j].it.ID })

	remap := make(map[int]int)
	for n, r := range refs {
		if r.undoDay {
			remap[r.it.ID] = n + 1
		}
		r.it.ID = n + 1
	}
	s.nextID = len(refs) + 1

	if !hasUndo {
		return
	}
	buf := s.undo[:0]
	for _, it := range s.undo {
		if id, ok := remap[it.ID]; ok {
			it.ID = id
			buf = append(buf, it)
		}
	}
	s.undo = buf
	if len(s.undo) == 0 {
		s.clearUndo()
	}
}
