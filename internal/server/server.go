package server

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"quickstay/internal/config"
	"quickstay/internal/domain"
	"quickstay/internal/middleware"
	"quickstay/internal/modules/booking"
	"quickstay/internal/modules/hotel"
	"quickstay/internal/modules/offer"
	"quickstay/internal/modules/room"
	"quickstay/internal/modules/user"
	"quickstay/internal/notification"
	jwtsvc "quickstay/internal/pkg/jwt"
	"quickstay/internal/repository"
)

// New wires repositories, services and handlers onto a gin engine.
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	offerRepo := repository.NewOfferRepository(db)

	var mailer notification.Sender
	if cfg.SMTP.Host != "" {
		mailer = notification.NewSMTPSender(cfg.SMTP)
	} else {
		log.Println("SMTP not configured, booking confirmations go to the log")
		mailer = notification.LogSender{}
	}

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	bookingService := booking.NewService(bookingRepo, roomRepo, hotelRepo, mailer, cfg.PaymentWebhookSecret, cfg.Currency)
	roomService := room.NewService(roomRepo, hotelRepo)
	hotelService := hotel.NewService(hotelRepo, userRepo)
	offerService := offer.NewService(offerRepo, hotelRepo, roomRepo)
	userService := user.NewService(userRepo)

	bookingHandler := booking.NewHandler(bookingService)
	roomHandler := room.NewHandler(roomService)
	hotelHandler := hotel.NewHandler(hotelService)
	offerHandler := offer.NewHandler(offerService)
	userHandler := user.NewHandler(userService, cfg.IdentityWebhookSecret)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	public := api.Group("")
	roomHandler.RegisterPublicRoutes(public)
	offerHandler.RegisterPublicRoutes(public)
	bookingHandler.RegisterPublicRoutes(public)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService, userRepo))
	bookingHandler.RegisterProtectedRoutes(protected)
	roomHandler.RegisterProtectedRoutes(protected)
	hotelHandler.RegisterProtectedRoutes(protected)
	userHandler.RegisterProtectedRoutes(protected)

	owner := api.Group("")
	owner.Use(middleware.JWTAuth(jwtService, userRepo), middleware.RequireRole(domain.RoleHotelOwner))
	bookingHandler.RegisterOwnerRoutes(owner)
	roomHandler.RegisterOwnerRoutes(owner)
	offerHandler.RegisterOwnerRoutes(owner)

	webhooks := api.Group("")
	bookingHandler.RegisterWebhookRoutes(webhooks)
	userHandler.RegisterWebhookRoutes(webhooks)

	return r
}
