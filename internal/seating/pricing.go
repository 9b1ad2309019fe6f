package seating

import "strings"

// PriceList maps a section to its per-seat price in whole naira. All money
// in the seating core is int64; there is no floating point anywhere in the
// selection-to-total path.
type PriceList map[SectionKey]int64

// SectionFor derives the owning section from a seat id's prefix. Anything
// that is neither a VIP nor a Regular id belongs to the table section.
func SectionFor(seatID string) SectionKey {
	switch {
	case strings.HasPrefix(seatID, "VIP"):
		return SectionVIP
	case strings.HasPrefix(seatID, "REG"):
		return SectionRegular
	default:
		return SectionTable
	}
}

// SeatPrice returns the unit price for the section owning the seat id.
func (p PriceList) SeatPrice(seatID string) int64 {
	return p[SectionFor(seatID)]
}

// Total sums the section unit price of every seat id. The empty selection
// totals zero, and totals are additive across disjoint id sets.
func (p PriceList) Total(seatIDs []string) int64 {
	var total int64
	for _, id := range seatIDs {
		total += p.SeatPrice(id)
	}
	return total
}

// PricesOf builds a PriceList from section definitions.
func PricesOf(sections []Section) PriceList {
	prices := make(PriceList, len(sections))
	for _, section := range sections {
		prices[section.Key] = section.UnitPrice
	}
	return prices
}
