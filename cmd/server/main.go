package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"legali_app_go/config"
	"legali_app_go/db"
	"legali_app_go/handlers"
	"legali_app_go/logger"
	"legali_app_go/middleware"
	"legali_app_go/models"
	"legali_app_go/services"
	"legali_app_go/services/datasource"
	"legali_app_go/services/jobs"
	"legali_app_go/services/session"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Initialize(cfg.Environment)
	defer logger.Sync()
	log := logger.L()

	// Initialize database
	if err := db.Initialize(db.Options{
		Path:        cfg.DBPath,
		TursoURL:    cfg.TursoDatabaseURL,
		TursoToken:  cfg.TursoAuthToken,
		Environment: cfg.Environment,
	}); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.Session{}); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Data source
	if cfg.UseMockData {
		handlers.DataSource = datasource.NewMock(datasource.MockOptions{
			LatencyScale: cfg.MockLatencyScale,
			SigningKey:   cfg.SessionSecret,
		})
		log.Info("Using mock data source", zap.Float64("latency_scale", cfg.MockLatencyScale))
	} else {
		handlers.DataSource = datasource.NewAPI(datasource.APIOptions{
			BaseURL: cfg.APIBaseURL,
			Timeout: cfg.APITimeout,
		})
		log.Info("Using upstream API", zap.String("base_url", cfg.APIBaseURL))
	}

	handlers.Sessions = session.NewManager()
	services.Storage = services.InitializeStorage(cfg)

	// Hourly session cleanup
	scheduler, err := jobs.StartScheduler(db.DB, handlers.Sessions)
	if err != nil {
		log.Fatal("Failed to start scheduler", zap.Error(err))
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				log.Error("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	// Make config available to handlers
	e.Use(middleware.WithConfig(cfg))

	// Uploaded profile pictures (local storage only)
	if !services.Storage.IsConfigured() {
		e.Static("/"+filepath.ToSlash(cfg.UploadDir), cfg.UploadDir)
	}

	// SEO
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.GetRobotsHandler)

	// Auth
	loginLimiter := middleware.NewRateLimiter(middleware.LoginRateLimitConfig())
	defer loginLimiter.Stop()

	auth := e.Group("/auth")
	auth.POST("/login", handlers.LoginHandler, loginLimiter.Middleware())
	auth.POST("/refresh", handlers.RefreshHandler)
	auth.POST("/logout", handlers.LogoutHandler)

	apiLimiter := middleware.NewRateLimiter(middleware.APIRateLimitConfig())
	defer apiLimiter.Stop()

	api := e.Group("/api")
	api.Use(apiLimiter.Middleware())

	// Public routes (no authentication required)
	api.GET("/lawyers", handlers.SearchLawyersHandler)
	api.GET("/lawyers/featured", handlers.FeaturedLawyersHandler)
	api.GET("/lawyers/:id", handlers.GetLawyerHandler)
	api.GET("/lawyers/:id/reviews", handlers.GetLawyerReviewsHandler)
	api.GET("/lawyers/:id/slots", handlers.GetLawyerSlotsHandler)

	api.GET("/cases", handlers.ListCasesHandler)
	api.GET("/cases/stats", handlers.CaseStatsHandler)
	api.GET("/cases/options", handlers.CaseOptionsHandler)
	api.GET("/cases/:id", handlers.GetCaseHandler)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.RequireAuth(handlers.Sessions))
	{
		protected.GET("/profile", handlers.GetProfileHandler)
		protected.PUT("/profile", handlers.UpdateProfileHandler)

		protected.GET("/booking", handlers.GetBookingStateHandler)
		protected.DELETE("/booking", handlers.CancelBookingWizardHandler)
		protected.POST("/booking/start", handlers.StartBookingHandler)
		protected.POST("/booking/datetime", handlers.BookingDateTimeHandler)
		protected.POST("/booking/details", handlers.BookingDetailsHandler)
		protected.POST("/booking/back", handlers.BookingBackHandler)
		protected.POST("/booking/submit", handlers.SubmitBookingHandler)

		protected.GET("/bookings", handlers.ListBookingsHandler)
		protected.GET("/bookings/:id", handlers.GetBookingHandler)
		protected.POST("/bookings/:id/cancel", handlers.CancelBookingHandler)

		protected.GET("/invest", handlers.GetInvestmentStateHandler)
		protected.DELETE("/invest", handlers.CancelInvestmentWizardHandler)
		protected.POST("/invest/start", handlers.StartInvestmentHandler)
		protected.POST("/invest/amount", handlers.InvestmentAmountHandler)
		protected.POST("/invest/disclosures", handlers.InvestmentDisclosuresHandler)
		protected.POST("/invest/payment", handlers.InvestmentPaymentHandler)
		protected.POST("/invest/back", handlers.InvestmentBackHandler)
		protected.GET("/invest/receipt", handlers.InvestmentReceiptHandler)

		protected.GET("/portfolio", handlers.PortfolioHandler)
		protected.GET("/portfolio/export", handlers.ExportPortfolioHandler)
	}

	// Start server
	go func() {
		log.Info("Server starting", zap.String("port", cfg.ServerPort))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Shutting down")
	<-scheduler.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
}
