package tickets

// Line is one ticket type inside a quantity selector: how many the buyer
// wants, what each costs and how many are left to sell. Remaining is fixed
// for the lifetime of the selector (a fresh snapshot is taken on every page
// load); Quantity is the only mutable field.
type Line struct {
	TicketTypeID string `json:"ticket_type_id"`
	Name         string `json:"name"`
	UnitPrice    int64  `json:"unit_price"`
	Remaining    int    `json:"remaining"`
	Quantity     int    `json:"quantity"`
}

// QuantitySelector tracks per-ticket-type quantities for one checkout
// session, holding every quantity inside [0, remaining]. It is independent
// of the seat selector and, like it, purely in-memory: nothing survives
// the booking submission.
type QuantitySelector struct {
	lines map[string]*Line
	order []string
}

// NewQuantitySelector builds a selector from inventory snapshots. Incoming
// quantities are ignored; every line starts at zero. Negative remaining
// values (oversold inventory upstream) are treated as zero.
func NewQuantitySelector(lines []Line) *QuantitySelector {
	sel := &QuantitySelector{
		lines: make(map[string]*Line, len(lines)),
		order: make([]string, 0, len(lines)),
	}
	for _, line := range lines {
		line := line
		line.Quantity = 0
		if line.Remaining < 0 {
			line.Remaining = 0
		}
		if _, ok := sel.lines[line.TicketTypeID]; ok {
			continue
		}
		sel.lines[line.TicketTypeID] = &line
		sel.order = append(sel.order, line.TicketTypeID)
	}
	return sel
}

// Add applies a delta to a line's quantity, clamping the result into
// [0, remaining]. Out-of-range requests are clamped silently, not rejected.
// Unknown ticket type ids leave the selector untouched and report zero.
func (q *QuantitySelector) Add(ticketTypeID string, delta int) int {
	line, ok := q.lines[ticketTypeID]
	if !ok {
		return 0
	}
	next := line.Quantity + delta
	if next < 0 {
		next = 0
	}
	if next > line.Remaining {
		next = line.Remaining
	}
	line.Quantity = next
	return next
}

// Quantity returns the current quantity for a ticket type, zero if unknown.
func (q *QuantitySelector) Quantity(ticketTypeID string) int {
	if line, ok := q.lines[ticketTypeID]; ok {
		return line.Quantity
	}
	return 0
}

// LineTotal returns quantity x unit price for one line.
func (q *QuantitySelector) LineTotal(ticketTypeID string) int64 {
	if line, ok := q.lines[ticketTypeID]; ok {
		return int64(line.Quantity) * line.UnitPrice
	}
	return 0
}

// GrandTotal sums every line with a positive quantity.
func (q *QuantitySelector) GrandTotal() int64 {
	var total int64
	for _, id := range q.order {
		total += q.LineTotal(id)
	}
	return total
}

// Lines returns the lines with quantity > 0 in their declared order,
// ready to hand to the booking call.
func (q *QuantitySelector) Lines() []Line {
	chosen := make([]Line, 0, len(q.order))
	for _, id := range q.order {
		if line := q.lines[id]; line.Quantity > 0 {
			chosen = append(chosen, *line)
		}
	}
	return chosen
}

// Reset zeroes every quantity, keeping the inventory snapshot.
func (q *QuantitySelector) Reset() {
	for _, line := range q.lines {
		line.Quantity = 0
	}
}
