package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"eventbuka/internal/events"
	"eventbuka/internal/partners"
	"eventbuka/internal/seating"
	"eventbuka/internal/seats"
	"eventbuka/internal/shared/config"
	"eventbuka/internal/shared/database"
	"eventbuka/internal/sponsors"
	"eventbuka/internal/tickets"
	"eventbuka/internal/users"
	"eventbuka/internal/venues"
	"eventbuka/internal/voting"
	"eventbuka/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting EventBuka Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg, logger.New())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Order matters due to foreign key constraints
	// Delete in reverse dependency order
	tables := []string{
		"service_requests",
		"partners",
		"sponsorship_requests",
		"sponsors",
		"wallet_transactions",
		"votes",
		"nominees",
		"nomination_categories",
		"booking_seats",
		"bookings",
		"seats",
		"ticket_types",
		"events",
		"event_categories",
		"venues",
		"organizer_applications",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Disable foreign key constraints temporarily
	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	// Re-enable foreign key constraints
	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	// Users first (no dependencies)
	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	categoryIDs, err := s.SeedCategories()
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	venueIDs, err := s.SeedVenues()
	if err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}

	eventIDs, err := s.SeedEvents(userIDs["organizer"], categoryIDs, venueIDs)
	if err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	if err := s.SeedTicketTypes(eventIDs["summit"]); err != nil {
		return fmt.Errorf("failed to seed ticket types: %w", err)
	}

	if err := s.SeedSeats(eventIDs["awards"]); err != nil {
		return fmt.Errorf("failed to seed seats: %w", err)
	}

	if err := s.SeedVoting(eventIDs["awards"]); err != nil {
		return fmt.Errorf("failed to seed voting: %w", err)
	}

	if err := s.SeedMarketplace(userIDs); err != nil {
		return fmt.Errorf("failed to seed sponsors and partners: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedUsers creates one account per role, all with password "qwerty".
// Attendee wallets are pre-funded so bookings and paid votes work
// straight away.
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key      string
		fullName string
		email    string
		phone    string
		role     users.Role
		verified bool
		balance  int64
	}{
		{"admin", "Adaeze Okonkwo", "admin@eventbuka.com", "+2348030000001", users.RoleAdmin, true, 0},
		{"organizer", "Tunde Bakare", "tunde@lagosevents.ng", "+2348030000002", users.RoleOrganizer, true, 0},
		{"user1", "Chiamaka Eze", "chiamaka.eze@gmail.com", "+2348030000003", users.RoleUser, true, 200000},
		{"user2", "Emeka Obi", "emeka.obi@yahoo.com", "+2348030000004", users.RoleUser, false, 50000},
		{"sponsor", "Funke Adeyemi", "funke@zenithgroup.ng", "+2348030000005", users.RoleSponsor, true, 0},
		{"partner", "Ibrahim Musa", "ibrahim@soundwave.ng", "+2348030000006", users.RolePartner, true, 0},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:            uuid.New(),
			FullName:      userData.fullName,
			Email:         userData.email,
			Password:      string(hashedPassword),
			Phone:         userData.phone,
			Role:          userData.role,
			IsVerified:    userData.verified,
			WalletBalance: userData.balance,
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedCategories creates the event category directory.
func (s *Seeder) SeedCategories() (map[string]uuid.UUID, error) {
	fmt.Println("  🏷️ Seeding event categories...")

	categoryIDs := make(map[string]uuid.UUID)

	names := []string{"Technology", "Music", "Business", "Awards", "Food & Drink", "Arts & Culture"}
	for _, name := range names {
		category := events.EventCategory{
			ID:   uuid.New(),
			Name: name,
			Slug: generateSlug(name),
		}

		if err := s.db.PostgreSQL.Create(&category).Error; err != nil {
			return nil, fmt.Errorf("failed to create category %s: %w", name, err)
		}

		categoryIDs[category.Slug] = category.ID
		fmt.Printf("    ✅ Created category: %s\n", category.Name)
	}

	return categoryIDs, nil
}

// SeedVenues creates the venue directory.
func (s *Seeder) SeedVenues() (map[string]uuid.UUID, error) {
	fmt.Println("  🏟️ Seeding venues...")

	venueIDs := make(map[string]uuid.UUID)

	venuesData := []struct {
		key          string
		name         string
		address      string
		city         string
		state        string
		capacity     int
		pricePerHour int64
		pricePerDay  int64
		amenities    []string
	}{
		{
			key:          "eko",
			name:         "Eko Convention Centre",
			address:      "Plot 1415 Adetokunbo Ademola Street, Victoria Island",
			city:         "Lagos",
			state:        "Lagos",
			capacity:     5000,
			pricePerHour: 500000,
			pricePerDay:  3500000,
			amenities:    []string{"parking", "wifi", "stage", "sound_system", "air_conditioning"},
		},
		{
			key:          "transcorp",
			name:         "Transcorp Hilton Congress Hall",
			address:      "1 Aguiyi Ironsi Street, Maitama",
			city:         "Abuja",
			state:        "FCT",
			capacity:     1200,
			pricePerHour: 300000,
			pricePerDay:  2000000,
			amenities:    []string{"parking", "wifi", "catering", "projector"},
		},
		{
			key:          "landmark",
			name:         "Landmark Event Centre",
			address:      "Water Corporation Road, Oniru",
			city:         "Lagos",
			state:        "Lagos",
			capacity:     3000,
			pricePerHour: 400000,
			pricePerDay:  2800000,
			amenities:    []string{"parking", "wifi", "stage", "beach_access"},
		},
	}

	for _, venueData := range venuesData {
		venue := venues.Venue{
			ID:           uuid.New(),
			Name:         venueData.name,
			Address:      venueData.address,
			City:         venueData.city,
			State:        venueData.state,
			Country:      "Nigeria",
			Capacity:     venueData.capacity,
			PricePerHour: venueData.pricePerHour,
			PricePerDay:  venueData.pricePerDay,
			Amenities:    venueData.amenities,
			ContactEmail: fmt.Sprintf("bookings@%s.ng", generateSlug(venueData.name)),
			IsAvailable:  true,
		}

		if err := s.db.PostgreSQL.Create(&venue).Error; err != nil {
			return nil, fmt.Errorf("failed to create venue %s: %w", venue.Name, err)
		}

		venueIDs[venueData.key] = venue.ID
		fmt.Printf("    ✅ Created venue: %s (%s)\n", venue.Name, venue.City)
	}

	return venueIDs, nil
}

// SeedEvents creates sample events: a ticketed conference, a seated
// award show and one draft so the organizer dashboard is not empty.
func (s *Seeder) SeedEvents(organizerID uuid.UUID, categoryIDs, venueIDs map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	fmt.Println("  🎪 Seeding events...")

	eventIDs := make(map[string]uuid.UUID)

	techCategory := categoryIDs["technology"]
	awardsCategory := categoryIDs["awards"]
	musicCategory := categoryIDs["music"]
	ekoVenue := venueIDs["eko"]
	landmarkVenue := venueIDs["landmark"]

	eventsData := []struct {
		key          string
		title        string
		description  string
		categoryID   *uuid.UUID
		venueID      *uuid.UUID
		venueName    string
		city         string
		daysFromNow  int
		status       events.Status
		isAwardEvent bool
		hasSeating   bool
		tags         []string
	}{
		{
			key:         "summit",
			title:       "Lagos Tech Summit 2026",
			description: "West Africa's largest gathering of founders, engineers and investors.",
			categoryID:  &techCategory,
			venueID:     &ekoVenue,
			venueName:   "Eko Convention Centre",
			city:        "Lagos",
			daysFromNow: 30,
			status:      events.StatusPublished,
			tags:        []string{"tech", "startups", "networking"},
		},
		{
			key:          "awards",
			title:        "Naija Music Awards 2026",
			description:  "Celebrating the best of Nigerian music across every genre.",
			categoryID:   &awardsCategory,
			venueID:      &landmarkVenue,
			venueName:    "Landmark Event Centre",
			city:         "Lagos",
			daysFromNow:  45,
			status:       events.StatusPublished,
			isAwardEvent: true,
			hasSeating:   true,
			tags:         []string{"awards", "music", "red_carpet"},
		},
		{
			key:         "draft",
			title:       "Afrobeats Rooftop Sessions",
			description: "Intimate live sessions with rising Afrobeats acts.",
			categoryID:  &musicCategory,
			venueName:   "Rooftop at Sky Lounge",
			city:        "Abuja",
			daysFromNow: 60,
			status:      events.StatusDraft,
			tags:        []string{"music", "live"},
		},
	}

	for _, eventData := range eventsData {
		start := time.Now().AddDate(0, 0, eventData.daysFromNow)
		event := events.Event{
			ID:           uuid.New(),
			Title:        eventData.title,
			Description:  eventData.description,
			CategoryID:   eventData.categoryID,
			OrganizerID:  organizerID,
			VenueID:      eventData.venueID,
			VenueName:    eventData.venueName,
			City:         eventData.city,
			State:        "Lagos",
			Country:      "Nigeria",
			StartTime:    start,
			EndTime:      start.Add(6 * time.Hour),
			Status:       eventData.status,
			IsAwardEvent: eventData.isAwardEvent,
			HasSeating:   eventData.hasSeating,
			Tags:         eventData.tags,
		}

		if err := s.db.PostgreSQL.Create(&event).Error; err != nil {
			return nil, fmt.Errorf("failed to create event %s: %w", event.Title, err)
		}

		eventIDs[eventData.key] = event.ID
		fmt.Printf("    ✅ Created event: %s (%s)\n", event.Title, event.Status)
	}

	return eventIDs, nil
}

// SeedTicketTypes creates the ticket tiers for the conference.
func (s *Seeder) SeedTicketTypes(eventID uuid.UUID) error {
	fmt.Println("  🎫 Seeding ticket types...")

	ticketData := []struct {
		name     string
		price    int64
		quantity int
		sold     int
		isVIP    bool
		benefits []string
	}{
		{"Regular", 15000, 100, 95, false, []string{"general_admission"}},
		{"VIP", 50000, 30, 4, true, []string{"front_row", "lounge_access", "swag_bag"}},
		{"Student", 5000, 50, 10, false, []string{"general_admission"}},
	}

	for _, data := range ticketData {
		ticketType := tickets.TicketType{
			ID:            uuid.New(),
			EventID:       eventID,
			Name:          data.name,
			Price:         data.price,
			QuantityTotal: data.quantity,
			QuantitySold:  data.sold,
			IsVIP:         data.isVIP,
			Benefits:      data.benefits,
		}

		if err := s.db.PostgreSQL.Create(&ticketType).Error; err != nil {
			return fmt.Errorf("failed to create ticket type %s: %w", data.name, err)
		}
		fmt.Printf("    ✅ Created ticket type: %s (₦%d, %d/%d sold)\n",
			data.name, data.price, data.sold, data.quantity)
	}

	return nil
}

// SeedSeats generates the stock three-section layout for the award show
// and marks a handful of seats booked so seat maps render a realistic
// mix of available and taken.
func (s *Seeder) SeedSeats(eventID uuid.UUID) error {
	fmt.Println("  💺 Seeding seats...")

	booked := seating.NewBookedSet("VIP-A-3", "VIP-A-4", "REG-C-7", "REG-C-8", "TBL-1-A")

	total := 0
	for _, section := range seating.DefaultLayout(booked) {
		for _, layoutSeat := range section.Seats {
			seat := seats.Seat{
				ID:       uuid.New(),
				EventID:  eventID,
				Section:  section.Key,
				Label:    layoutSeat.ID,
				Row:      layoutSeat.Row,
				Position: layoutSeat.Position,
				Price:    layoutSeat.Price,
				IsBooked: layoutSeat.Booked,
			}

			if err := s.db.PostgreSQL.Create(&seat).Error; err != nil {
				return fmt.Errorf("failed to create seat %s: %w", seat.Label, err)
			}
			total++
		}
	}

	fmt.Printf("    ✅ Created %d seats (%d pre-booked)\n", total, len(booked))
	return nil
}

// SeedVoting creates nomination categories and approved nominees for
// the award show, with the voting window already open.
func (s *Seeder) SeedVoting(eventID uuid.UUID) error {
	fmt.Println("  🗳️ Seeding voting...")

	categoriesData := []struct {
		name      string
		isPaid    bool
		votePrice int64
		nominees  []string
	}{
		{"Artist of the Year", true, 100, []string{"Burna Ray", "Tiwa Blaze", "Kizz Melody"}},
		{"Best New Act", false, 0, []string{"Ayra Moon", "Ruger Jay"}},
	}

	for _, categoryData := range categoriesData {
		category := voting.NominationCategory{
			ID:             uuid.New(),
			EventID:        eventID,
			Name:           categoryData.name,
			IsPaid:         categoryData.isPaid,
			VotePrice:      categoryData.votePrice,
			VotingStartsAt: time.Now().AddDate(0, 0, -1),
			VotingEndsAt:   time.Now().AddDate(0, 0, 40),
		}

		if err := s.db.PostgreSQL.Create(&category).Error; err != nil {
			return fmt.Errorf("failed to create category %s: %w", categoryData.name, err)
		}
		fmt.Printf("    ✅ Created voting category: %s (paid=%v)\n", category.Name, category.IsPaid)

		for _, name := range categoryData.nominees {
			nominee := voting.Nominee{
				ID:         uuid.New(),
				CategoryID: category.ID,
				Name:       name,
				IsApproved: true,
			}

			if err := s.db.PostgreSQL.Create(&nominee).Error; err != nil {
				return fmt.Errorf("failed to create nominee %s: %w", name, err)
			}
		}
	}

	return nil
}

// SeedMarketplace creates a verified sponsor and partner profile so the
// public directories have entries.
func (s *Seeder) SeedMarketplace(userIDs map[string]uuid.UUID) error {
	fmt.Println("  🤝 Seeding sponsors and partners...")

	sponsor := sponsors.Sponsor{
		ID:           uuid.New(),
		UserID:       userIDs["sponsor"],
		CompanyName:  "Zenith Group",
		Description:  "Corporate sponsorships for tech and entertainment events across Nigeria.",
		Industry:     "Financial Services",
		ContactEmail: "sponsorships@zenithgroup.ng",
		IsVerified:   true,
	}
	if err := s.db.PostgreSQL.Create(&sponsor).Error; err != nil {
		return fmt.Errorf("failed to create sponsor profile: %w", err)
	}
	fmt.Printf("    ✅ Created sponsor: %s\n", sponsor.CompanyName)

	partner := partners.Partner{
		ID:           uuid.New(),
		UserID:       userIDs["partner"],
		BusinessName: "SoundWave Productions",
		Description:  "Stage, lighting and live sound for concerts and award shows.",
		ServiceType:  "sound",
		City:         "Lagos",
		ContactEmail: "hello@soundwave.ng",
		ContactPhone: "+2348030000006",
		IsVerified:   true,
	}
	if err := s.db.PostgreSQL.Create(&partner).Error; err != nil {
		return fmt.Errorf("failed to create partner profile: %w", err)
	}
	fmt.Printf("    ✅ Created partner: %s\n", partner.BusinessName)

	return nil
}

// generateSlug creates a URL-friendly slug from a string
func generateSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}
	return b.String()
}
