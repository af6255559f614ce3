package api

import (
	"context"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/dharma-pro/temple-booking/docs"
	v1 "github.com/dharma-pro/temple-booking/internal/api/handler/v1"
	"github.com/dharma-pro/temple-booking/internal/api/middleware"
	"github.com/dharma-pro/temple-booking/internal/config"
	"github.com/dharma-pro/temple-booking/internal/event"
	"github.com/dharma-pro/temple-booking/internal/notification"
	"github.com/dharma-pro/temple-booking/internal/pkg/googleauth"
	"github.com/dharma-pro/temple-booking/internal/repository"
	"github.com/dharma-pro/temple-booking/internal/repository/dao"
	"github.com/dharma-pro/temple-booking/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
	Hub    *v1.AvailabilityHub

	redis *redis.Client
}

// NewServer wires the HTTP API. rdb may be nil, which disables rate limiting
// and response caching.
func NewServer(conf *config.AppConfig, db *gorm.DB, rdb *redis.Client) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		Hub:    v1.NewAvailabilityHub(conf.API.AllowedCORSDomains),
		redis:  rdb,
	}

	s.MountMiddlewares()

	notifier := s.initNotifier(db)
	s.MountHandlers(
		s.initTempleHandler(db),
		s.initSlotHandler(db),
		s.initBookingHandler(db, notifier),
		s.initParticipantHandler(db),
		s.initPaymentHandler(db),
		s.initAuthHandler(db),
		s.initUserHandler(db),
		s.initAdminHandler(db),
		s.initOAuthHandler(db),
		s.initParkingHandler(db),
	)

	return s
}

// Start runs the background parts of the API until ctx is done.
func (s *Server) Start(ctx context.Context) {
	go s.Hub.Run(ctx)
}

func (s *Server) initNotifier(db *gorm.DB) service.Notifier {
	logs := repository.NewSMSLogRepository(dao.NewSMSLogDAO(db))

	return notification.NewSMSClient(s.Config.SMS, logs)
}

func (s *Server) initTempleHandler(db *gorm.DB) *v1.TempleHandler {
	repo := repository.NewTempleRepository(dao.NewTempleDAO(db))
	svc := service.NewTempleService(repo)
	handler := v1.NewTempleHandler(svc)

	return handler
}

func (s *Server) initSlotHandler(db *gorm.DB) *v1.SlotHandler {
	repo := repository.NewSlotRepository(dao.NewSlotDAO(db))
	svc := service.NewSlotService(repo, s.Hub)
	handler := v1.NewSlotHandler(svc)

	return handler
}

func (s *Server) initBookingHandler(db *gorm.DB, notifier service.Notifier) *v1.BookingHandler {
	repo := repository.NewBookingRepository(dao.NewBookingDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	templeRepo := repository.NewTempleRepository(dao.NewTempleDAO(db))
	slotRepo := repository.NewSlotRepository(dao.NewSlotDAO(db))
	svc := service.NewBookingService(repo, userRepo, templeRepo, slotRepo, notifier, s.Hub, s.Config.Booking.EnforceCapacity)
	handler := v1.NewBookingHandler(svc)

	return handler
}

func (s *Server) initParticipantHandler(db *gorm.DB) *v1.ParticipantHandler {
	repo := repository.NewParticipantRepository(dao.NewParticipantDAO(db))
	bookingRepo := repository.NewBookingRepository(dao.NewBookingDAO(db))
	svc := service.NewParticipantService(repo, bookingRepo)
	handler := v1.NewParticipantHandler(svc)

	return handler
}

func (s *Server) initPaymentHandler(db *gorm.DB) *v1.PaymentHandler {
	repo := repository.NewPaymentRepository(dao.NewPaymentDAO(db))
	bookingRepo := repository.NewBookingRepository(dao.NewBookingDAO(db))

	var events service.EventPublisher
	if s.Config.RabbitMQ.URL != "" {
		events = event.NewPublisher(s.Config.RabbitMQ)
	}

	svc := service.NewPaymentService(repo, bookingRepo, events)
	handler := v1.NewPaymentHandler(s.Config.Payment, svc)

	return handler
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	slotRepo := repository.NewSlotRepository(dao.NewSlotDAO(db))
	svc := service.NewUserService(repo, slotRepo, s.Hub)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initAdminHandler(db *gorm.DB) *v1.AdminHandler {
	repo := repository.NewAdminRepository(dao.NewAdminDAO(db))
	svc := service.NewAdminService(repo)
	handler := v1.NewAdminHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initOAuthHandler(db *gorm.DB) *v1.OAuthHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewOAuthService(repo)
	provider := googleauth.NewProvider(s.Config.OAuth)
	handler := v1.NewOAuthHandler(s.Config.API, s.Config.OAuth, provider, svc)

	return handler
}

func (s *Server) initParkingHandler(db *gorm.DB) *v1.ParkingHandler {
	repo := repository.NewParkingRepository(dao.NewParkingDAO(db))
	svc := service.NewParkingService(repo)
	handler := v1.NewParkingHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(gin.Logger())
	s.Router.Use(middleware.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.RateLimit(s.Config.RateLimit, s.redis))
}

func (s *Server) MountHandlers(
	templeHandler *v1.TempleHandler,
	slotHandler *v1.SlotHandler,
	bookingHandler *v1.BookingHandler,
	participantHandler *v1.ParticipantHandler,
	paymentHandler *v1.PaymentHandler,
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	adminHandler *v1.AdminHandler,
	oauthHandler *v1.OAuthHandler,
	parkingHandler *v1.ParkingHandler,
) {
	authenticate := middleware.Authenticate(s.Config.API.JWTSigningKey)
	adminOnly := []gin.HandlerFunc{authenticate, middleware.RequireAdmin()}
	userOnly := []gin.HandlerFunc{authenticate, middleware.RequireUser()}
	cache := middleware.Cache(s.Config.Cache, s.redis)
	invalidate := middleware.InvalidateCache(s.Config.Cache, s.redis)

	temples := s.Router.Group("/temples")
	{
		temples.GET("/", cache, templeHandler.HandleListTemples)
		temples.GET("/:templeID", cache, templeHandler.HandleGetTemple)
		temples.POST("/", append(adminOnly, invalidate, templeHandler.HandleCreateTemple)...)
		temples.DELETE("/:templeID", append(adminOnly, invalidate, templeHandler.HandleDeleteTemple)...)
	}

	slots := s.Router.Group("/slots")
	{
		slots.GET("/", slotHandler.HandleListSlots)
		slots.GET("/:slotID", slotHandler.HandleGetSlot)
		slots.GET("/live/:templeID", s.Hub.HandleSubscribe)
		slots.POST("/", append(adminOnly, slotHandler.HandleCreateSlot)...)
		slots.PUT("/:slotID", append(adminOnly, slotHandler.HandleUpdateSlot)...)
		slots.DELETE("/:slotID", append(adminOnly, slotHandler.HandleDeleteSlot)...)
	}

	bookings := s.Router.Group("/bookings")
	{
		bookings.POST("/", bookingHandler.HandleCreateBooking)
		bookings.GET("/:bookingID", bookingHandler.HandleGetBooking)
		bookings.GET("/user/:userID", bookingHandler.HandleListUserBookings)
		bookings.DELETE("/:bookingID", bookingHandler.HandleDeleteBooking)
		bookings.GET("/", append(adminOnly, bookingHandler.HandleListBookings)...)
		bookings.POST("/kiosk/", append(adminOnly, bookingHandler.HandleCreateKioskBooking)...)
	}

	participants := s.Router.Group("/participant")
	{
		participants.POST("/add", participantHandler.HandleAddParticipant)
		participants.GET("/:participantID", participantHandler.HandleGetParticipant)
		participants.GET("/booking/:bookingID", participantHandler.HandleListParticipants)
		participants.DELETE("/:participantID", participantHandler.HandleDeleteParticipant)
	}

	payments := s.Router.Group("/payment")
	{
		payments.POST("/create", paymentHandler.HandleCreatePayment)
		payments.POST("/webhook", paymentHandler.HandleWebhook)
		payments.GET("/:paymentID", paymentHandler.HandleGetPayment)
	}

	users := s.Router.Group("/users")
	{
		users.POST("/register", authHandler.HandleRegister)
		users.POST("/login", authHandler.HandleLogin)
		users.GET("/me", append(userOnly, userHandler.HandleGetMe)...)
		users.PUT("/me", append(userOnly, userHandler.HandleUpdateMe)...)
		users.DELETE("/me", append(userOnly, userHandler.HandleDeleteMe)...)
		users.GET("/:userID", userHandler.HandleGetUser)
	}

	parking := s.Router.Group("/parking")
	{
		parking.GET("/", parkingHandler.HandleListZones)
		parking.GET("/:parkingID", parkingHandler.HandleGetZone)
		parking.GET("/temple/:templeID", parkingHandler.HandleListTempleZones)
		parking.POST("/", append(adminOnly, parkingHandler.HandleCreateZone)...)
		parking.PUT("/:parkingID", append(adminOnly, parkingHandler.HandleUpdateZone)...)
		parking.DELETE("/:parkingID", append(adminOnly, parkingHandler.HandleDeleteZone)...)
	}

	parkingSlots := s.Router.Group("/parking-slots")
	{
		parkingSlots.GET("/", parkingHandler.HandleListSlots)
		parkingSlots.GET("/:slotID", parkingHandler.HandleGetSlot)
		parkingSlots.GET("/parking/:parkingID", parkingHandler.HandleListZoneSlots)
		parkingSlots.POST("/", append(adminOnly, parkingHandler.HandleCreateSlot)...)
		parkingSlots.PUT("/:slotID", append(adminOnly, parkingHandler.HandleUpdateSlot)...)
		parkingSlots.DELETE("/:slotID", append(adminOnly, parkingHandler.HandleDeleteSlot)...)
	}

	admin := s.Router.Group("/admin/auth")
	{
		admin.POST("/register", adminHandler.HandleRegister)
		admin.POST("/login", adminHandler.HandleLogin)
		admin.GET("/me", append(adminOnly, adminHandler.HandleMe)...)
	}

	s.Router.GET("/oauth2/authorization/google", oauthHandler.HandleAuthorize)
	s.Router.GET("/login/oauth2/code/google", oauthHandler.HandleCallback)

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "DHARMA temple booking API"
	docs.SwaggerInfo.Description = "Temples, visit slots, bookings and payments."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
