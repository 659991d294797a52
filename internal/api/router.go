package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/trimslot/barber-booking-backend/internal/auth"
	"github.com/trimslot/barber-booking-backend/internal/booking"
	bookingHttp "github.com/trimslot/barber-booking-backend/internal/booking/http"
	"github.com/trimslot/barber-booking-backend/internal/membership"
	membershipHttp "github.com/trimslot/barber-booking-backend/internal/membership/http"
	"github.com/trimslot/barber-booking-backend/internal/offering"
	offeringHttp "github.com/trimslot/barber-booking-backend/internal/offering/http"
	"github.com/trimslot/barber-booking-backend/internal/pricing"
	pricingHttp "github.com/trimslot/barber-booking-backend/internal/pricing/http"
	"github.com/trimslot/barber-booking-backend/internal/provider"
	providerHttp "github.com/trimslot/barber-booking-backend/internal/provider/http"
	"github.com/trimslot/barber-booking-backend/internal/schedule"
	scheduleHttp "github.com/trimslot/barber-booking-backend/internal/schedule/http"
	"github.com/trimslot/barber-booking-backend/internal/user"
	userHttp "github.com/trimslot/barber-booking-backend/internal/user/http"
	"github.com/trimslot/barber-booking-backend/internal/venue"
	venueHttp "github.com/trimslot/barber-booking-backend/internal/venue/http"
	wizardHttp "github.com/trimslot/barber-booking-backend/internal/wizard/http"
)

// Config holds everything the router needs to assemble the API surface.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService       user.Service
	ProviderService   provider.Service
	VenueService      venue.Service
	MembershipService membership.Service
	OfferingService   offering.Service
	ScheduleService   schedule.Service
	PricingService    pricing.Service
	BookingService    booking.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine. It assembles middleware
// (CORS, Logger, Auth) and registers routes for every module under /v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // web client
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	sysAdminMiddleware := RequireSystemAdmin(cfg.UserService)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	providerHandler := providerHttp.NewHandler(cfg.ProviderService)
	venueHandler := venueHttp.NewHandler(cfg.VenueService)
	membershipHandler := membershipHttp.NewHandler(cfg.MembershipService)
	offeringHandler := offeringHttp.NewHandler(cfg.OfferingService, cfg.MembershipService)
	scheduleHandler := scheduleHttp.NewHandler(cfg.ScheduleService, cfg.MembershipService, cfg.UserService)
	pricingHandler := pricingHttp.NewHandler(cfg.PricingService, cfg.MembershipService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService)
	wizardHandler := wizardHttp.NewHandler()

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		providerHttp.RegisterRoutes(v1, providerHandler, authMiddleware, sysAdminMiddleware)
		venueHttp.RegisterRoutes(v1, venueHandler, authMiddleware, sysAdminMiddleware)
		membershipHttp.RegisterRoutes(v1, membershipHandler, authMiddleware, sysAdminMiddleware)
		offeringHttp.RegisterRoutes(v1, offeringHandler, authMiddleware, sysAdminMiddleware)
		scheduleHttp.RegisterRoutes(v1, scheduleHandler, authMiddleware)
		pricingHttp.RegisterRoutes(v1, pricingHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		wizardHttp.RegisterRoutes(v1, wizardHandler)
	}

	return r
}
