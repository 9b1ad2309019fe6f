package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds constraints AutoMigrate cannot express.
func MigrateConstraints(db *gorm.DB) error {
	// A seat can be attached to at most one booking per event.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_booked_seat_per_event
		ON booking_seats (event_id, seat_label);
	`).Error
	if err != nil {
		return err
	}

	// One vote per user per nomination category.
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_vote_per_category
		ON votes (user_id, category_id);
	`).Error
	if err != nil {
		return err
	}

	// Speeds up the booking-history listing.
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_user_created
		ON bookings (user_id, created_at DESC);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
