package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository aggregates stats straight from the operational tables.
// Every query is read-only.
type Repository interface {
	GetEventStats(ctx context.Context, eventID uuid.UUID) (*EventStats, error)
	GetPlatformOverview(ctx context.Context) (*PlatformOverview, error)
	GetDailyBookingStats(ctx context.Context, days int) ([]DailyBookingStat, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetEventStats(ctx context.Context, eventID uuid.UUID) (*EventStats, error) {
	stats := &EventStats{EventID: eventID.String()}

	var tickets struct {
		Sold    int
		Total   int
		Revenue int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(quantity_sold), 0) AS sold,
		       COALESCE(SUM(quantity_total), 0) AS total,
		       COALESCE(SUM(quantity_sold * price), 0) AS revenue
		FROM ticket_types WHERE event_id = ?`, eventID).Scan(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ticket sales: %w", err)
	}
	stats.TicketsSold = tickets.Sold
	stats.TicketsTotal = tickets.Total
	stats.TicketRevenue = tickets.Revenue

	var seatAgg struct {
		Booked  int
		Total   int
		Revenue int64
	}
	err = r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FILTER (WHERE is_booked) AS booked,
		       COUNT(*) AS total,
		       COALESCE(SUM(price) FILTER (WHERE is_booked), 0) AS revenue
		FROM seats WHERE event_id = ?`, eventID).Scan(&seatAgg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate seat occupancy: %w", err)
	}
	stats.SeatsBooked = seatAgg.Booked
	stats.SeatsTotal = seatAgg.Total
	stats.SeatRevenue = seatAgg.Revenue

	var votes struct {
		Cast    int64
		Revenue int64
	}
	err = r.db.WithContext(ctx).Raw(`
		SELECT COUNT(v.id) AS cast,
		       COALESCE(SUM(v.amount_paid), 0) AS revenue
		FROM votes v
		JOIN nomination_categories nc ON nc.id = v.category_id
		WHERE nc.event_id = ?`, eventID).Scan(&votes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate votes: %w", err)
	}
	stats.VotesCast = votes.Cast
	stats.VoteRevenue = votes.Revenue

	var bookingCounts struct {
		Confirmed int
		Cancelled int
	}
	err = r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FILTER (WHERE status = 'CONFIRMED') AS confirmed,
		       COUNT(*) FILTER (WHERE status = 'CANCELLED') AS cancelled
		FROM bookings WHERE event_id = ?`, eventID).Scan(&bookingCounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	stats.ConfirmedBookings = bookingCounts.Confirmed
	stats.CancelledBookings = bookingCounts.Cancelled

	stats.GrossRevenue = stats.TicketRevenue + stats.SeatRevenue + stats.VoteRevenue
	return stats, nil
}

func (r *repository) GetPlatformOverview(ctx context.Context) (*PlatformOverview, error) {
	overview := &PlatformOverview{}

	err := r.db.WithContext(ctx).Raw(`
		SELECT (SELECT COUNT(*) FROM users) AS total_users,
		       (SELECT COUNT(*) FROM events) AS total_events,
		       (SELECT COUNT(*) FROM events WHERE status = 'PUBLISHED') AS published_events,
		       (SELECT COUNT(*) FROM bookings) AS total_bookings,
		       (SELECT COUNT(*) FROM bookings WHERE status = 'CONFIRMED') AS confirmed_bookings,
		       (SELECT COUNT(*) FROM bookings WHERE status = 'CANCELLED') AS cancelled_bookings,
		       (SELECT COALESCE(SUM(total_amount), 0) FROM bookings WHERE status = 'CONFIRMED') AS gross_revenue,
		       (SELECT COUNT(*) FROM votes) AS total_votes,
		       (SELECT COALESCE(SUM(amount), 0) FROM wallet_transactions WHERE type = 'DEPOSIT') AS total_deposits`).
		Scan(overview).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build platform overview: %w", err)
	}

	return overview, nil
}

func (r *repository) GetDailyBookingStats(ctx context.Context, days int) ([]DailyBookingStat, error) {
	var stats []DailyBookingStat

	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(created_at::date, 'YYYY-MM-DD') AS date,
		       COUNT(*) AS bookings,
		       COALESCE(SUM(total_amount), 0) AS revenue
		FROM bookings
		WHERE status = 'CONFIRMED'
		  AND created_at >= NOW() - make_interval(days => ?)
		GROUP BY created_at::date
		ORDER BY created_at::date`, days).Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build daily booking stats: %w", err)
	}

	return stats, nil
}
