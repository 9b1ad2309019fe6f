package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTLs for the EventBuka application.
// Pattern: eventbuka:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static data (rarely changes)
const (
	TTL_STATIC_LONG  = 24 * time.Hour // directory data (sponsors, partners)
	TTL_STATIC_SHORT = 6 * time.Hour  // user profiles
)

// Semi-static data (changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // event details
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour    // event listings, venue directory
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // upcoming/featured events
)

// Dynamic data (changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // booking history
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // seat maps
	TTL_DYNAMIC_QUICK  = 2 * time.Minute  // ticket inventory
)

// Real-time sensitive data
const (
	TTL_REALTIME_MEDIUM = 1 * time.Minute  // vote tallies
	TTL_REALTIME_SHORT  = 30 * time.Second // live seat availability
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "eventbuka"
)

// ================== EVENTS MODULE ==================

const (
	CACHE_KEY_EVENTS_LIST     = CACHE_PREFIX + ":events:list"     // + :page:X:limit:Y:status:Z
	CACHE_KEY_EVENTS_UPCOMING = CACHE_PREFIX + ":events:upcoming" // + :limit:X
	CACHE_KEY_EVENT_DETAIL    = CACHE_PREFIX + ":events:detail:uuid:" // + event-id
	CACHE_KEY_EVENT_CATEGORIES = CACHE_PREFIX + ":events:categories:all"
)

const (
	TTL_EVENT_LIST       = TTL_SEMI_STATIC_SHORT
	TTL_EVENT_UPCOMING   = TTL_SEMI_STATIC_QUICK
	TTL_EVENT_DETAIL     = TTL_SEMI_STATIC_MEDIUM
	TTL_EVENT_CATEGORIES = TTL_STATIC_LONG
)

// ================== SEATS MODULE ==================

const (
	CACHE_KEY_SEATMAP         = CACHE_PREFIX + ":seats:map:event:"       // + event-id
	CACHE_KEY_BOOKED_SEAT_IDS = CACHE_PREFIX + ":seats:booked:event:"    // + event-id
)

const (
	TTL_SEATMAP         = TTL_DYNAMIC_SHORT
	TTL_BOOKED_SEAT_IDS = TTL_REALTIME_SHORT
)

// ================== TICKETS MODULE ==================

const (
	CACHE_KEY_EVENT_TICKETS = CACHE_PREFIX + ":tickets:event:" // + event-id
)

const (
	TTL_EVENT_TICKETS = TTL_DYNAMIC_QUICK
)

// ================== VOTING MODULE ==================

const (
	CACHE_KEY_VOTE_CATEGORIES = CACHE_PREFIX + ":voting:categories:event:" // + event-id
	CACHE_KEY_NOMINEES        = CACHE_PREFIX + ":voting:nominees:category:" // + category-id
)

const (
	TTL_VOTE_CATEGORIES = TTL_SEMI_STATIC_SHORT
	TTL_NOMINEES        = TTL_REALTIME_MEDIUM
)

// ================== DIRECTORY MODULES ==================

const (
	CACHE_KEY_VENUES_LIST   = CACHE_PREFIX + ":venues:list"   // + :city:X
	CACHE_KEY_SPONSORS_LIST = CACHE_PREFIX + ":sponsors:list:verified"
	CACHE_KEY_PARTNERS_LIST = CACHE_PREFIX + ":partners:list" // + :service:X
)

const (
	TTL_VENUES_LIST   = TTL_SEMI_STATIC_SHORT
	TTL_SPONSORS_LIST = TTL_STATIC_LONG
	TTL_PARTNERS_LIST = TTL_STATIC_LONG
)

// ================== BOOKINGS MODULE ==================

const (
	CACHE_KEY_USER_BOOKINGS  = CACHE_PREFIX + ":bookings:user:uuid:"   // + user-id:page:X
	CACHE_KEY_BOOKING_DETAIL = CACHE_PREFIX + ":bookings:detail:uuid:" // + booking-id
)

const (
	TTL_USER_BOOKINGS  = TTL_DYNAMIC_MEDIUM
	TTL_BOOKING_DETAIL = TTL_DYNAMIC_MEDIUM
)

// ================== ANALYTICS MODULE ==================

const (
	CACHE_KEY_EVENT_STATS       = CACHE_PREFIX + ":analytics:event:" // + event-id
	CACHE_KEY_PLATFORM_OVERVIEW = CACHE_PREFIX + ":analytics:overview"
)

const (
	TTL_EVENT_STATS       = TTL_DYNAMIC_SHORT
	TTL_PLATFORM_OVERVIEW = TTL_DYNAMIC_MEDIUM
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_EVENTS_ALL   = CACHE_PREFIX + ":events:*"
	PATTERN_INVALIDATE_SEATS_ALL    = CACHE_PREFIX + ":seats:*"
	PATTERN_INVALIDATE_TICKETS_ALL  = CACHE_PREFIX + ":tickets:*"
	PATTERN_INVALIDATE_VOTING_ALL   = CACHE_PREFIX + ":voting:*"
	PATTERN_INVALIDATE_VENUES_ALL   = CACHE_PREFIX + ":venues:*"
	PATTERN_INVALIDATE_BOOKINGS_ALL = CACHE_PREFIX + ":bookings:*"
)

// ================== HELPER FUNCTIONS ==================

func BuildEventListKey(page, limit int, status string) string {
	if status != "" {
		return fmt.Sprintf("%s:page:%d:limit:%d:status:%s", CACHE_KEY_EVENTS_LIST, page, limit, status)
	}
	return fmt.Sprintf("%s:page:%d:limit:%d", CACHE_KEY_EVENTS_LIST, page, limit)
}

func BuildEventDetailKey(eventID string) string {
	return CACHE_KEY_EVENT_DETAIL + eventID
}

func BuildEventStatsKey(eventID string) string {
	return CACHE_KEY_EVENT_STATS + eventID
}

func BuildSeatmapKey(eventID string) string {
	return CACHE_KEY_SEATMAP + eventID
}

func BuildEventTicketsKey(eventID string) string {
	return CACHE_KEY_EVENT_TICKETS + eventID
}

func BuildVoteCategoriesKey(eventID string) string {
	return CACHE_KEY_VOTE_CATEGORIES + eventID
}

func BuildNomineesKey(categoryID string) string {
	return CACHE_KEY_NOMINEES + categoryID
}

func BuildUserBookingsKey(userID string, page int) string {
	return fmt.Sprintf("%s%s:page:%d", CACHE_KEY_USER_BOOKINGS, userID, page)
}

func BuildVenuesListKey(city string) string {
	if city == "" {
		return CACHE_KEY_VENUES_LIST
	}
	return CACHE_KEY_VENUES_LIST + ":city:" + city
}

func BuildPartnersListKey(service string) string {
	if service == "" {
		return CACHE_KEY_PARTNERS_LIST
	}
	return CACHE_KEY_PARTNERS_LIST + ":service:" + service
}
