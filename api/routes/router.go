package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"eventbuka/internal/analytics"
	"eventbuka/internal/auth"
	"eventbuka/internal/bookings"
	"eventbuka/internal/events"
	"eventbuka/internal/notifications"
	"eventbuka/internal/partners"
	"eventbuka/internal/seats"
	"eventbuka/internal/shared/config"
	"eventbuka/internal/shared/database"
	"eventbuka/internal/sponsors"
	"eventbuka/internal/tickets"
	"eventbuka/internal/users"
	"eventbuka/internal/venues"
	"eventbuka/internal/voting"
	"eventbuka/internal/wallet"
	"eventbuka/pkg/cache"
	"eventbuka/pkg/logger"
)

// Router builds every domain's repository/service/controller chain
// and registers the routes. All dependencies flow in through the
// constructor.
type Router struct {
	config       *config.Config
	db           *database.DB
	cacheService cache.Service
	log          *logger.Logger

	notificationSvc *notifications.Service
}

func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, log *logger.Logger) (*Router, error) {
	r := &Router{
		config:       cfg,
		db:           db,
		cacheService: cacheService,
		log:          log,
	}

	// The notification pipeline needs the user directory to resolve
	// recipients, so build it here alongside everything else.
	userRepo := users.NewRepository(db.GetPostgreSQL())
	userService := users.NewService(userRepo)

	notificationSvc, err := notifications.NewService(cfg.Kafka, cfg.Email, userService, log)
	if err != nil {
		return nil, err
	}
	r.notificationSvc = notificationSvc

	return r, nil
}

// Notifications exposes the pipeline so main can start and stop the
// email workers with the server lifecycle.
func (r *Router) Notifications() *notifications.Service {
	return r.notificationSvc
}

// SetupRoutes wires all application routes onto the engine.
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	gormDB := r.db.GetPostgreSQL()

	// Users and auth.
	userRepo := users.NewRepository(gormDB)
	userService := users.NewService(userRepo)
	userController := users.NewController(userService)

	authRepo := auth.NewRepository(gormDB)
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	// Events and catalog.
	eventRepo := events.NewRepository(gormDB)
	eventService := events.NewService(eventRepo, r.cacheService, r.log)
	eventController := events.NewController(eventService)

	ticketRepo := tickets.NewRepository(gormDB)
	ticketService := tickets.NewService(ticketRepo)
	ticketController := tickets.NewController(ticketService)

	seatRepo := seats.NewRepository(gormDB)
	seatService := seats.NewService(seatRepo, r.cacheService, r.log)
	seatController := seats.NewController(seatService)

	// Money and purchases.
	walletRepo := wallet.NewRepository(gormDB)
	walletService := wallet.NewService(walletRepo, gormDB, r.log)
	walletController := wallet.NewController(walletService)

	bookingRepo := bookings.NewRepository(gormDB)
	bookingService := bookings.NewService(
		bookingRepo,
		bookings.GormTxRunner(gormDB),
		ticketRepo,
		seatService,
		eventService,
		walletService,
		r.notificationSvc,
		r.cacheService,
		r.log,
	)
	bookingController := bookings.NewController(bookingService)

	votingRepo := voting.NewRepository(gormDB)
	votingService := voting.NewService(
		votingRepo,
		voting.GormTxRunner(gormDB),
		eventService,
		walletService,
		r.notificationSvc,
		r.cacheService,
		r.log,
	)
	votingController := voting.NewController(votingService)

	// Directories.
	venueRepo := venues.NewRepository(gormDB)
	venueService := venues.NewService(venueRepo, r.cacheService, r.log)
	venueController := venues.NewController(venueService)

	sponsorRepo := sponsors.NewRepository(gormDB)
	sponsorService := sponsors.NewService(sponsorRepo, r.cacheService, r.log)
	sponsorController := sponsors.NewController(sponsorService)

	partnerRepo := partners.NewRepository(gormDB)
	partnerService := partners.NewService(partnerRepo, r.cacheService, r.log)
	partnerController := partners.NewController(partnerService)

	// Stats rollups for organizers and admins.
	analyticsRepo := analytics.NewRepository(gormDB)
	analyticsService := analytics.NewService(analyticsRepo, eventService, r.cacheService, r.log)
	analyticsController := analytics.NewController(analyticsService)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		authRouter.SetupRoutes(api)
		users.SetupUserRoutes(api, userController)
		events.SetupEventRoutes(api, eventController, r.config)
		tickets.SetupTicketRoutes(api, ticketController)
		seats.SetupSeatRoutes(api, seatController, r.config)
		wallet.SetupWalletRoutes(api, walletController, r.config)
		bookings.SetupBookingRoutes(api, bookingController, r.config)
		voting.SetupVotingRoutes(api, votingController, r.config)
		venues.SetupVenueRoutes(api, venueController, r.config)
		sponsors.SetupSponsorRoutes(api, sponsorController, r.config)
		partners.SetupPartnerRoutes(api, partnerController, r.config)
		analytics.SetupAnalyticsRoutes(api, analyticsController, r.config)
	}
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "eventbuka-backend",
			})
			return
		}

		cacheStatus := "healthy"
		if err := r.cacheService.Ping(c.Request.Context()); err != nil {
			cacheStatus = "degraded"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"cache":     cacheStatus,
			"timestamp": time.Now(),
			"service":   "eventbuka-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}
