package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trimslot/barber-booking-backend/internal/api"
	"github.com/trimslot/barber-booking-backend/internal/auth"
	"github.com/trimslot/barber-booking-backend/internal/booking"
	"github.com/trimslot/barber-booking-backend/internal/membership"
	"github.com/trimslot/barber-booking-backend/internal/offering"
	"github.com/trimslot/barber-booking-backend/internal/pricing"
	"github.com/trimslot/barber-booking-backend/internal/provider"
	"github.com/trimslot/barber-booking-backend/internal/schedule"
	"github.com/trimslot/barber-booking-backend/internal/user"
	"github.com/trimslot/barber-booking-backend/internal/venue"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int

	SlotStepMinutes        int
	DefaultDurationMinutes int
	Currency               string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Provider Module
	providerRepo := provider.NewPgxRepository(cfg.DBPool)
	providerService := provider.NewService(providerRepo)

	// Venue Module
	venueRepo := venue.NewPgxRepository(cfg.DBPool)
	venueService := venue.NewService(venueRepo)

	// Membership Module (context resolution)
	membershipRepo := membership.NewPgxRepository(cfg.DBPool)
	membershipService := membership.NewService(membershipRepo, providerService)

	// Offering Module (catalog + capability filtering)
	offeringRepo := offering.NewPgxRepository(cfg.DBPool)
	offeringService := offering.NewService(offeringRepo)

	// Schedule Module (availability)
	scheduleRepo := schedule.NewPgxRepository(cfg.DBPool)
	scheduleService := schedule.NewService(scheduleRepo, cfg.SlotStepMinutes, cfg.DefaultDurationMinutes)

	// Pricing Module
	pricingRepo := pricing.NewPgxRepository(cfg.DBPool)
	pricingService := pricing.NewService(pricingRepo, offeringService, cfg.Currency)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(
		bookingRepo,
		membershipService,
		pricingService,
		scheduleService,
		providerService,
		userService,
	)

	router := api.NewRouter(api.Config{
		IsProduction:      cfg.IsProduction,
		ProdOrigins:       cfg.ProdOrigins,
		UserService:       userService,
		ProviderService:   providerService,
		VenueService:      venueService,
		MembershipService: membershipService,
		OfferingService:   offeringService,
		ScheduleService:   scheduleService,
		PricingService:    pricingService,
		BookingService:    bookingService,
		JWTManager:        jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
