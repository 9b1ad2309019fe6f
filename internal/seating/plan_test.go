package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func demoPlan() *Plan {
	booked := NewBookedSet("VIP-A-3", "VIP-A-4", "REG-C-7", "REG-C-8", "TBL-1-A", "TBL-1-B", "TBL-3-C")
	return NewPlan(DefaultLayout(booked))
}

func TestPlanDefaultsToFirstSection(t *testing.T) {
	plan := demoPlan()
	assert.Equal(t, SectionVIP, plan.CurrentSection())
	assert.Len(t, plan.CurrentSeats(), 50)
}

func TestSectionSwitchPreservesState(t *testing.T) {
	plan := demoPlan()
	plan.Toggle("VIP-A-5")
	plan.Toggle("VIP-B-1")

	plan.SetCurrentSection(SectionTable)
	assert.Equal(t, SectionTable, plan.CurrentSection())
	plan.SetCurrentSection(SectionVIP)

	// switching away and back changes neither selection nor booked markers
	assert.True(t, plan.Selection().Contains("VIP-A-5"))
	assert.True(t, plan.Selection().Contains("VIP-B-1"))
	for _, seat := range plan.CurrentSeats() {
		switch seat.ID {
		case "VIP-A-3", "VIP-A-4":
			assert.True(t, seat.Booked)
			assert.False(t, seat.Selected)
		case "VIP-A-5", "VIP-B-1":
			assert.True(t, seat.Selected)
		}
	}
}

func TestSetCurrentSectionIgnoresUnknownKey(t *testing.T) {
	plan := demoPlan()
	plan.SetCurrentSection(SectionKey("balcony"))
	assert.Equal(t, SectionVIP, plan.CurrentSection())
}

func TestPlanRejectsBookedToggle(t *testing.T) {
	plan := demoPlan()
	assert.False(t, plan.Toggle("VIP-A-3"))
	assert.Equal(t, 0, plan.Selection().Count())
}

func TestPlanTotalAcrossSections(t *testing.T) {
	plan := demoPlan()
	plan.Toggle("VIP-B-1") // 25000
	plan.Toggle("REG-C-2") // 15000
	assert.Equal(t, int64(40000), plan.Total())

	plan.Toggle("TBL-2-A") // 40000
	plan.Toggle("TBL-2-B") // 40000
	assert.Equal(t, int64(120000), plan.Total())
}

func TestConfirmReturnsIDsAndResets(t *testing.T) {
	plan := demoPlan()
	plan.Toggle("TBL-2-B")
	plan.Toggle("TBL-2-A")

	ids := plan.Confirm()
	assert.Equal(t, []string{"TBL-2-A", "TBL-2-B"}, ids)
	assert.Equal(t, 0, plan.Selection().Count())
	assert.Equal(t, int64(0), plan.Total())
}
