package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRowSeatsShape(t *testing.T) {
	booked := NewBookedSet("VIP-A-3", "VIP-A-4")
	seats := GenerateRowSeats("VIP", 5, 10, 25000, booked)

	assert.Len(t, seats, 50)
	assert.Equal(t, "VIP-A-1", seats[0].ID)
	assert.Equal(t, "VIP-E-10", seats[len(seats)-1].ID)

	bookedCount := 0
	for _, seat := range seats {
		if seat.Booked {
			bookedCount++
		}
		assert.Equal(t, int64(25000), seat.Price)
	}
	assert.Equal(t, 2, bookedCount)
}

func TestGenerateTableSeatsShape(t *testing.T) {
	booked := NewBookedSet("TBL-1-A", "TBL-1-B", "TBL-3-C")
	seats := GenerateTableSeats("TBL", 4, 8, 40000, booked)

	assert.Len(t, seats, 32)
	assert.Equal(t, "TBL-1-A", seats[0].ID)
	assert.Equal(t, "TBL-4-H", seats[len(seats)-1].ID)

	for _, seat := range seats {
		switch seat.ID {
		case "TBL-1-A", "TBL-1-B", "TBL-3-C":
			assert.True(t, seat.Booked, "seat %s should be booked", seat.ID)
		default:
			assert.False(t, seat.Booked, "seat %s should be free", seat.ID)
		}
	}
}

func TestSeatIDsUniqueWithinSection(t *testing.T) {
	for _, section := range DefaultLayout(nil) {
		seen := make(map[string]bool, len(section.Seats))
		for _, seat := range section.Seats {
			assert.False(t, seen[seat.ID], "duplicate seat id %s in section %s", seat.ID, section.Key)
			seen[seat.ID] = true
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	booked := NewBookedSet("REG-C-7", "REG-C-8")
	first := GenerateRowSeats("REG", 10, 20, 15000, booked)
	second := GenerateRowSeats("REG", 10, 20, 15000, booked)
	assert.Equal(t, first, second)
}

func TestDefaultLayoutSections(t *testing.T) {
	sections := DefaultLayout(nil)
	assert.Len(t, sections, 3)
	assert.Equal(t, SectionVIP, sections[0].Key)
	assert.Len(t, sections[0].Seats, 50)
	assert.Len(t, sections[1].Seats, 200)
	assert.Len(t, sections[2].Seats, 32)
}
