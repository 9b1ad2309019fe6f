package analytics

// EventStats is the organizer-facing rollup for a single event:
// ticket sales, seat occupancy, vote tallies and the money each
// stream brought in. Amounts are whole naira.
type EventStats struct {
	EventID string `json:"event_id"`
	Title   string `json:"title"`

	TicketsSold   int   `json:"tickets_sold"`
	TicketsTotal  int   `json:"tickets_total"`
	TicketRevenue int64 `json:"ticket_revenue"`

	SeatsBooked int   `json:"seats_booked"`
	SeatsTotal  int   `json:"seats_total"`
	SeatRevenue int64 `json:"seat_revenue"`

	VotesCast   int64 `json:"votes_cast"`
	VoteRevenue int64 `json:"vote_revenue"`

	ConfirmedBookings int `json:"confirmed_bookings"`
	CancelledBookings int `json:"cancelled_bookings"`

	GrossRevenue int64 `json:"gross_revenue"`
}

// PlatformOverview is the admin dashboard rollup across the whole
// platform.
type PlatformOverview struct {
	TotalUsers        int   `json:"total_users"`
	TotalEvents       int   `json:"total_events"`
	PublishedEvents   int   `json:"published_events"`
	TotalBookings     int   `json:"total_bookings"`
	ConfirmedBookings int   `json:"confirmed_bookings"`
	CancelledBookings int   `json:"cancelled_bookings"`
	GrossRevenue      int64 `json:"gross_revenue"`
	TotalVotes        int64 `json:"total_votes"`
	TotalDeposits     int64 `json:"total_deposits"`
}

// DailyBookingStat is one day's confirmed bookings and revenue.
type DailyBookingStat struct {
	Date     string `json:"date"`
	Bookings int    `json:"bookings"`
	Revenue  int64  `json:"revenue"`
}
