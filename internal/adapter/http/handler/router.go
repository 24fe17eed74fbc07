package handler

import (
	"multipay-aggregator/internal/adapter/http/middleware"
	redisStore "multipay-aggregator/internal/adapter/storage/redis"
	"multipay-aggregator/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	BookingSvc     ports.BookingService
	PpobSvc        ports.PpobService
	TopupSvc       ports.TopupService
	TransferSvc    ports.TransferService
	Reconciler     ports.Reconciler
	ReportingSvc   ports.ReportingService
	SigSvc         ports.SignatureService
	WebhookSecret  string
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- Provider callbacks (HMAC-verified, no user auth) ---
	webhookHandler := NewWebhookHandler(deps.Reconciler, deps.SigSvc, deps.WebhookSecret, deps.Logger)
	webhooks := v1.Group("/webhooks")
	{
		webhooks.POST("/settlement", rl("settlement"), webhookHandler.Ingest)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	bookingHandler := NewBookingHandler(deps.BookingSvc)
	ppobHandler := NewPpobHandler(deps.PpobSvc)
	topupHandler := NewTopupHandler(deps.TopupSvc)
	transferHandler := NewTransferHandler(deps.TransferSvc)

	flights := v1.Group("/flights", jwtAuth)
	{
		flights.GET("/search", rl("search"), bookingHandler.SearchFlights)
		flights.GET("/:flight_id/price", rl("search"), bookingHandler.PriceFlight)
		flights.POST("/book", rl("booking"), bookingHandler.BookFlight)
	}

	trains := v1.Group("/trains", jwtAuth)
	{
		trains.GET("/search", rl("search"), bookingHandler.SearchTrains)
		trains.POST("/book", rl("booking"), bookingHandler.BookTrain)
	}

	bookings := v1.Group("/bookings", jwtAuth)
	{
		bookings.GET("", rl("listing"), bookingHandler.ListBookings)
		bookings.GET("/:code", rl("listing"), bookingHandler.GetBooking)
		bookings.POST("/:code/issue", rl("booking"), bookingHandler.IssueTicket)
		bookings.POST("/:code/cancel", rl("booking"), bookingHandler.CancelBooking)
	}

	ppob := v1.Group("/ppob", jwtAuth)
	{
		ppob.GET("/products", rl("search"), ppobHandler.ListProducts)
		ppob.GET("/inquiry", rl("search"), ppobHandler.InquireBill)
		ppob.POST("/pay", rl("settlement"), ppobHandler.PayBill)
		ppob.GET("/transactions", rl("listing"), ppobHandler.ListTransactions)
		ppob.GET("/transactions/:transaction_id", rl("listing"), ppobHandler.GetTransaction)
	}

	pulsa := v1.Group("/pulsa", jwtAuth)
	{
		pulsa.GET("/products", rl("search"), topupHandler.ListProducts)
		pulsa.POST("/topup", rl("settlement"), topupHandler.Topup)
		pulsa.GET("/transactions", rl("listing"), topupHandler.ListTransactions)
		pulsa.GET("/transactions/:transaction_id", rl("listing"), topupHandler.GetTransaction)
	}

	transfers := v1.Group("/transfers", jwtAuth)
	{
		transfers.GET("/banks", rl("search"), transferHandler.ListBanks)
		transfers.GET("/inquiry", rl("search"), transferHandler.InquireAccount)
		transfers.POST("", rl("settlement"), transferHandler.Transfer)
		transfers.GET("", rl("listing"), transferHandler.ListTransfers)
		transfers.GET("/:transaction_id", rl("listing"), transferHandler.GetTransfer)
	}

	// --- Admin (JWT-authenticated) ---
	adminHandler := NewAdminHandler(deps.ReportingSvc, deps.Reconciler)
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.GET("/stats", rl("admin"), adminHandler.SystemStats)
		admin.GET("/transactions/failed", rl("admin"), adminHandler.FailedTransactions)
		admin.GET("/webhooks", rl("admin"), adminHandler.WebhookEvents)
		admin.POST("/webhooks/:event_id/retry", rl("admin"), adminHandler.RetryWebhook)
	}

	return r
}
