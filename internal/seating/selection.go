package seating

import "sort"

// Selection is the in-progress set of seats a single user has picked.
// It is scoped to one seat-map session: created empty, mutated only through
// Toggle, and discarded (or cleared) when the session ends. Booked seats can
// never enter the set.
type Selection struct {
	booked BookedSet
	chosen map[string]struct{}
}

// NewSelection creates an empty selection guarded by the given booked set.
func NewSelection(booked BookedSet) *Selection {
	if booked == nil {
		booked = BookedSet{}
	}
	return &Selection{
		booked: booked,
		chosen: make(map[string]struct{}),
	}
}

// Toggle flips membership of a seat id. Toggling a booked seat is a silent
// no-op, not an error; the method reports whether the selection changed.
func (s *Selection) Toggle(seatID string) bool {
	if s.booked.Contains(seatID) {
		return false
	}
	if _, ok := s.chosen[seatID]; ok {
		delete(s.chosen, seatID)
	} else {
		s.chosen[seatID] = struct{}{}
	}
	return true
}

// Contains reports whether the seat id is currently selected.
func (s *Selection) Contains(seatID string) bool {
	_, ok := s.chosen[seatID]
	return ok
}

// Count returns the number of selected seats.
func (s *Selection) Count() int {
	return len(s.chosen)
}

// IDs returns a sorted snapshot of the selected seat ids. Sorting keeps the
// handoff to booking deterministic.
func (s *Selection) IDs() []string {
	ids := make([]string, 0, len(s.chosen))
	for id := range s.chosen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clear empties the selection. Booked markers are unaffected.
func (s *Selection) Clear() {
	s.chosen = make(map[string]struct{})
}
