package tickets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSelector() *QuantitySelector {
	return NewQuantitySelector([]Line{
		{TicketTypeID: "early-bird", Name: "Early Bird", UnitPrice: 5000, Remaining: 20},
		{TicketTypeID: "regular", Name: "Regular", UnitPrice: 10000, Remaining: 50},
		{TicketTypeID: "vip", Name: "VIP", UnitPrice: 25000, Remaining: 5},
	})
}

func TestAddClampsAtRemainingInventory(t *testing.T) {
	// quantity_total=100, quantity_sold=95 leaves room for exactly 5
	sel := NewQuantitySelector([]Line{
		{TicketTypeID: "vip", UnitPrice: 25000, Remaining: 5},
	})

	for i := 0; i < 10; i++ {
		sel.Add("vip", 1)
	}
	assert.Equal(t, 5, sel.Quantity("vip"))
}

func TestAddClampsAtZero(t *testing.T) {
	sel := newTestSelector()
	sel.Add("regular", 3)
	sel.Add("regular", -10)
	assert.Equal(t, 0, sel.Quantity("regular"))
}

func TestQuantityStaysInBoundsUnderMixedDeltas(t *testing.T) {
	sel := newTestSelector()
	deltas := []int{5, -2, 30, -1, -100, 7, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2}
	for _, d := range deltas {
		got := sel.Add("early-bird", d)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 20)
	}
}

func TestUnknownTicketTypeIsIgnored(t *testing.T) {
	sel := newTestSelector()
	assert.Equal(t, 0, sel.Add("ghost", 3))
	assert.Equal(t, 0, sel.Quantity("ghost"))
	assert.Equal(t, int64(0), sel.LineTotal("ghost"))
}

func TestGrandTotalCountsOnlyPositiveLines(t *testing.T) {
	sel := newTestSelector()
	sel.Add("early-bird", 2) // 10000
	sel.Add("vip", 1)        // 25000
	sel.Add("regular", 4)
	sel.Add("regular", -4) // back to zero

	assert.Equal(t, int64(35000), sel.GrandTotal())

	lines := sel.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, "early-bird", lines[0].TicketTypeID)
	assert.Equal(t, "vip", lines[1].TicketTypeID)
}

func TestNegativeRemainingTreatedAsSoldOut(t *testing.T) {
	sel := NewQuantitySelector([]Line{
		{TicketTypeID: "oversold", UnitPrice: 1000, Remaining: -3},
	})
	assert.Equal(t, 0, sel.Add("oversold", 1))
}

func TestReset(t *testing.T) {
	sel := newTestSelector()
	sel.Add("vip", 2)
	sel.Reset()
	assert.Equal(t, 0, sel.Quantity("vip"))
	assert.Equal(t, int64(0), sel.GrandTotal())
	// inventory bound survives the reset
	for i := 0; i < 10; i++ {
		sel.Add("vip", 1)
	}
	assert.Equal(t, 5, sel.Quantity("vip"))
}

func TestTicketTypeRemainingNeverNegative(t *testing.T) {
	tt := TicketType{QuantityTotal: 100, QuantitySold: 120}
	assert.Equal(t, 0, tt.Remaining())

	tt = TicketType{QuantityTotal: 100, QuantitySold: 95}
	assert.Equal(t, 5, tt.Remaining())
}
