package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleBookedSeatIsNoOp(t *testing.T) {
	sel := NewSelection(NewBookedSet("VIP-A-3", "VIP-A-4"))

	changed := sel.Toggle("VIP-A-3")
	assert.False(t, changed)
	assert.Equal(t, 0, sel.Count())

	// repeat toggles never leak a booked seat in
	sel.Toggle("VIP-A-3")
	sel.Toggle("VIP-A-4")
	assert.Empty(t, sel.IDs())
}

func TestTogglePairReturnsToEmpty(t *testing.T) {
	sel := NewSelection(NewBookedSet("VIP-A-3", "VIP-A-4"))

	assert.True(t, sel.Toggle("VIP-A-5"))
	assert.True(t, sel.Contains("VIP-A-5"))
	assert.True(t, sel.Toggle("VIP-A-5"))
	assert.False(t, sel.Contains("VIP-A-5"))
	assert.Equal(t, 0, sel.Count())
}

// Presence after a toggle sequence must match the parity of each seat's
// toggle count: even means absent, odd means present.
func TestToggleParity(t *testing.T) {
	sel := NewSelection(nil)
	sequence := []string{
		"REG-A-1", "REG-A-2", "REG-A-1", "REG-B-5",
		"REG-A-2", "REG-A-2", "REG-B-5", "REG-B-5",
	}
	counts := make(map[string]int)
	for _, id := range sequence {
		sel.Toggle(id)
		counts[id]++
	}

	for id, n := range counts {
		assert.Equal(t, n%2 == 1, sel.Contains(id), "seat %s toggled %d times", id, n)
	}
}

func TestIDsAreSorted(t *testing.T) {
	sel := NewSelection(nil)
	sel.Toggle("TBL-2-B")
	sel.Toggle("TBL-1-A")
	sel.Toggle("REG-C-2")

	assert.Equal(t, []string{"REG-C-2", "TBL-1-A", "TBL-2-B"}, sel.IDs())
}

func TestClear(t *testing.T) {
	sel := NewSelection(nil)
	sel.Toggle("VIP-B-1")
	sel.Toggle("VIP-B-2")
	sel.Clear()

	assert.Equal(t, 0, sel.Count())
	// still usable after clearing
	assert.True(t, sel.Toggle("VIP-B-1"))
	assert.True(t, sel.Contains("VIP-B-1"))
}
