package seating

// Plan is one seat-map session: the section layouts, the union of booked
// seat ids, the user's in-progress selection and the section currently shown.
// Switching sections is a pure view filter; it never touches seat data or
// the selection. A Plan belongs to a single user interaction and carries no
// locking.
type Plan struct {
	sections  map[SectionKey]Section
	order     []SectionKey
	current   SectionKey
	selection *Selection
	prices    PriceList
}

// NewPlan builds a plan from section definitions. The booked set is derived
// from the seats themselves so that callers cannot hand the selection a
// different availability snapshot than the one being rendered. The first
// section becomes the active tab.
func NewPlan(sections []Section) *Plan {
	byKey := make(map[SectionKey]Section, len(sections))
	order := make([]SectionKey, 0, len(sections))
	booked := BookedSet{}
	for _, section := range sections {
		byKey[section.Key] = section
		order = append(order, section.Key)
		for _, seat := range section.Seats {
			if seat.Booked {
				booked[seat.ID] = struct{}{}
			}
		}
	}

	plan := &Plan{
		sections:  byKey,
		order:     order,
		selection: NewSelection(booked),
		prices:    PricesOf(sections),
	}
	if len(order) > 0 {
		plan.current = order[0]
	}
	return plan
}

// SetCurrentSection switches which section is rendered. Unknown keys are
// ignored so a stale tab key cannot blank the view.
func (p *Plan) SetCurrentSection(key SectionKey) {
	if _, ok := p.sections[key]; ok {
		p.current = key
	}
}

// CurrentSection returns the key of the active section.
func (p *Plan) CurrentSection() SectionKey {
	return p.current
}

// Sections returns the section definitions in their declared order.
func (p *Plan) Sections() []Section {
	sections := make([]Section, 0, len(p.order))
	for _, key := range p.order {
		sections = append(sections, p.sections[key])
	}
	return sections
}

// CurrentSeats returns the active section's seats with their selection
// state folded in, ready for rendering.
func (p *Plan) CurrentSeats() []SeatView {
	section, ok := p.sections[p.current]
	if !ok {
		return nil
	}
	views := make([]SeatView, 0, len(section.Seats))
	for _, seat := range section.Seats {
		views = append(views, SeatView{
			Seat:     seat,
			Selected: p.selection.Contains(seat.ID),
		})
	}
	return views
}

// Toggle flips a seat in or out of the selection, refusing booked seats.
func (p *Plan) Toggle(seatID string) bool {
	return p.selection.Toggle(seatID)
}

// Selection exposes the underlying selection set.
func (p *Plan) Selection() *Selection {
	return p.selection
}

// Total prices the current selection.
func (p *Plan) Total() int64 {
	return p.prices.Total(p.selection.IDs())
}

// Confirm returns the final sorted seat ids and resets the selection,
// mirroring the close-on-submit behavior of the seat-map dialog. The caller
// hands the ids to the booking flow; nothing is persisted here.
func (p *Plan) Confirm() []string {
	ids := p.selection.IDs()
	p.selection.Clear()
	return ids
}
