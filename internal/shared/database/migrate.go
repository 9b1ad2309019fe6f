package database

import (
	"eventbuka/internal/bookings"
	"eventbuka/internal/events"
	"eventbuka/internal/partners"
	"eventbuka/internal/seats"
	"eventbuka/internal/sponsors"
	"eventbuka/internal/tickets"
	"eventbuka/internal/users"
	"eventbuka/internal/venues"
	"eventbuka/internal/voting"
	"eventbuka/internal/wallet"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&users.OrganizerApplication{},
		&venues.Venue{},
		&events.EventCategory{},
		&events.Event{},
		&tickets.TicketType{},
		&seats.Seat{},
		&bookings.Booking{},
		&bookings.BookingSeat{},
		&voting.NominationCategory{},
		&voting.Nominee{},
		&voting.Vote{},
		&wallet.Transaction{},
		&sponsors.Sponsor{},
		&sponsors.SponsorshipRequest{},
		&partners.Partner{},
		&partners.ServiceRequest{},
	)
}
