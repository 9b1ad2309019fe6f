package seating

import "fmt"

// GenerateRowSeats produces the seats for a row-based section. Rows are
// lettered from 'A', seats numbered from 1, and ids follow the
// "{prefix}-{rowLetter}-{number}" convention used across the system.
// The function is pure: identical inputs always yield the same sequence.
func GenerateRowSeats(prefix string, rows, seatsPerRow int, price int64, booked BookedSet) []Seat {
	seats := make([]Seat, 0, rows*seatsPerRow)
	for row := 0; row < rows; row++ {
		rowLetter := string(rune('A' + row))
		for num := 1; num <= seatsPerRow; num++ {
			id := fmt.Sprintf("%s-%s-%d", prefix, rowLetter, num)
			seats = append(seats, Seat{
				ID:       id,
				Row:      rowLetter,
				Position: fmt.Sprintf("%d", num),
				Price:    price,
				Booked:   booked.Contains(id),
			})
		}
	}
	return seats
}

// GenerateTableSeats produces the seats for a table-based section. Tables
// are numbered from 1 and positions lettered from 'A' within each table,
// giving ids of the form "{prefix}-{table}-{positionLetter}".
func GenerateTableSeats(prefix string, tables, seatsPerTable int, price int64, booked BookedSet) []Seat {
	seats := make([]Seat, 0, tables*seatsPerTable)
	for table := 1; table <= tables; table++ {
		for pos := 0; pos < seatsPerTable; pos++ {
			posLetter := string(rune('A' + pos))
			id := fmt.Sprintf("%s-%d-%s", prefix, table, posLetter)
			seats = append(seats, Seat{
				ID:       id,
				Row:      fmt.Sprintf("%d", table),
				Position: posLetter,
				Price:    price,
				Booked:   booked.Contains(id),
			})
		}
	}
	return seats
}

// DefaultLayout returns the stock three-section layout used for events
// without a custom seat map: VIP 5x10, Regular 10x20 and 4 tables of 8.
// Prices are whole naira.
func DefaultLayout(booked BookedSet) []Section {
	return []Section{
		{
			Key:       SectionVIP,
			Name:      "VIP Section",
			Prefix:    "VIP",
			UnitPrice: 25000,
			Seats:     GenerateRowSeats("VIP", 5, 10, 25000, booked),
		},
		{
			Key:       SectionRegular,
			Name:      "Regular Section",
			Prefix:    "REG",
			UnitPrice: 15000,
			Seats:     GenerateRowSeats("REG", 10, 20, 15000, booked),
		},
		{
			Key:       SectionTable,
			Name:      "Table Section",
			Prefix:    "TBL",
			UnitPrice: 40000,
			Seats:     GenerateTableSeats("TBL", 4, 8, 40000, booked),
		},
	}
}
