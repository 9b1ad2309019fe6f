package seating

// SectionKey identifies a priced seating section within an event layout.
type SectionKey string

const (
	SectionVIP     SectionKey = "vip"
	SectionRegular SectionKey = "regular"
	SectionTable   SectionKey = "table"
)

// Seat is a single position in a section layout. Booked is fixed for the
// lifetime of the layout snapshot; whether the seat is currently picked
// lives in Selection, not here.
type Seat struct {
	ID       string `json:"id"`
	Row      string `json:"row"`      // row letter, or table number for table sections
	Position string `json:"position"` // seat number, or position letter for table sections
	Price    int64  `json:"price"`
	Booked   bool   `json:"booked"`
}

// Section groups seats under one name and one unit price. Seat ids across
// sections never collide because each section owns its prefix.
type Section struct {
	Key       SectionKey `json:"key"`
	Name      string     `json:"name"`
	Prefix    string     `json:"prefix"`
	UnitPrice int64      `json:"unit_price"`
	Seats     []Seat     `json:"seats"`
}

// SeatView is a seat decorated with its current selection state, used when
// rendering the active section.
type SeatView struct {
	Seat
	Selected bool `json:"selected"`
}

// BookedSet is the read-only set of seat ids that are already taken.
// It is filled once, from persisted seat records, and never mutated.
type BookedSet map[string]struct{}

// NewBookedSet builds a BookedSet from a list of seat ids.
func NewBookedSet(ids ...string) BookedSet {
	set := make(BookedSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether the seat id is already booked.
func (b BookedSet) Contains(id string) bool {
	_, ok := b[id]
	return ok
}
