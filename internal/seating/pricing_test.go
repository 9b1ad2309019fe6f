package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testPrices = PriceList{
	SectionVIP:     25000,
	SectionRegular: 15000,
	SectionTable:   40000,
}

func TestSectionFor(t *testing.T) {
	assert.Equal(t, SectionVIP, SectionFor("VIP-B-1"))
	assert.Equal(t, SectionRegular, SectionFor("REG-C-2"))
	assert.Equal(t, SectionTable, SectionFor("TBL-2-A"))
}

func TestTotalEmptySelectionIsZero(t *testing.T) {
	assert.Equal(t, int64(0), testPrices.Total(nil))
	assert.Equal(t, int64(0), testPrices.Total([]string{}))
}

func TestTotalTableSeats(t *testing.T) {
	// two table seats at 40000 each
	total := testPrices.Total([]string{"TBL-2-A", "TBL-2-B"})
	assert.Equal(t, int64(80000), total)
}

func TestTotalMixedSections(t *testing.T) {
	total := testPrices.Total([]string{"VIP-B-1", "REG-C-2"})
	assert.Equal(t, int64(40000), total)
}

func TestTotalIsAdditiveOverDisjointSelections(t *testing.T) {
	a := []string{"VIP-A-5", "VIP-A-6"}
	b := []string{"REG-D-1", "TBL-4-H"}
	union := append(append([]string{}, a...), b...)

	assert.Equal(t, testPrices.Total(a)+testPrices.Total(b), testPrices.Total(union))
}
