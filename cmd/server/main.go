package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"carbooking/internal/config"
	"carbooking/internal/handlers"
	"carbooking/internal/middleware"
	"carbooking/internal/repositories/mongodb"
	"carbooking/internal/services"
	"carbooking/pkg/cache"
	"carbooking/pkg/database"
	"carbooking/pkg/email"
	"carbooking/pkg/logger"
	"carbooking/pkg/maps"
	"carbooking/pkg/payment"
	"carbooking/pkg/sms"
	"carbooking/pkg/storage"
	"carbooking/pkg/websocket"
	"carbooking/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the process environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:   logger.LogLevel(cfg.App.LogLevel),
		Format:  cfg.App.LogFormat,
		Output:  "stdout",
		Caller:  cfg.App.Debug,
		AppName: cfg.App.Name,
		Version: cfg.App.Version,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.WithError(err).Fatal("Server exited with error")
	}
}

func run(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) error {
	mongoDB, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer mongoDB.Close()

	if err := database.NewMigrator(mongoDB.Database, appLogger).Up(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	healthChecks := map[string]handlers.Pinger{"mongodb": mongoDB}

	var repoCache mongodb.CacheService
	var geoCache maps.Cache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			KeyPrefix:    cfg.Redis.KeyPrefix,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		defer redisCache.Close()

		repoCache = redisCache
		geoCache = redisCache
		healthChecks["redis"] = redisCache
	}

	carRepo := mongodb.NewCarRepository(mongoDB.Database, repoCache)
	domainRepo := mongodb.NewDomainRepository(mongoDB.Database, repoCache)
	bookingRepo := mongodb.NewBookingRepository(mongoDB.Database)
	themeStore := mongodb.NewThemePreferenceStore(mongoDB.Database)

	hub := websocket.NewHub(appLogger)
	go hub.Run(ctx)

	var sender email.Sender
	adminEmail := cfg.SMTP.AdminEmail
	if cfg.SMTP.Configured() {
		sender = email.NewSMTPSender(email.SMTPConfig{
			Host:      cfg.SMTP.Host,
			Port:      cfg.SMTP.Port,
			Username:  cfg.SMTP.Username,
			Password:  cfg.SMTP.Password,
			FromEmail: cfg.SMTP.FromEmail,
			FromName:  cfg.SMTP.FromName,
			TLS:       cfg.SMTP.TLS,
		})
		if adminEmail == "" {
			adminEmail = cfg.SMTP.Username
		}
	} else {
		appLogger.Warn("SMTP credentials missing, booking creation is disabled")
	}

	smsProvider, err := newSMSProvider(ctx, cfg.SMS)
	if err != nil {
		return err
	}

	notifier := services.NewNotificationService(sender, smsProvider, hub, services.NotificationConfig{
		AdminEmail: adminEmail,
		SMSFrom:    cfg.SMS.SenderID,
	}, appLogger)
	bookingService := services.NewBookingService(bookingRepo, notifier, appLogger)

	var orders payment.OrderProvider
	if cfg.Payment.PayPal.ClientID != "" && cfg.Payment.PayPal.ClientSecret != "" {
		orders = payment.NewPayPalProvider(&payment.PayPalConfig{
			ClientID:     cfg.Payment.PayPal.ClientID,
			ClientSecret: cfg.Payment.PayPal.ClientSecret,
			Mode:         cfg.Payment.PayPal.Mode,
			BaseURL:      cfg.Payment.PayPal.BaseURL,
			Timeout:      cfg.Payment.PayPal.Timeout,
		})
	} else {
		appLogger.Warn("PayPal credentials missing, checkout is disabled")
	}
	paymentService := services.NewPaymentService(orders, bookingService, cfg.Payment.Currency, appLogger)

	mapsProvider, err := newMapsProvider(cfg.Maps, geoCache)
	if err != nil {
		return err
	}

	imageStorage, err := newStorageProvider(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	if closer, ok := imageStorage.(io.Closer); ok {
		defer closer.Close()
	}
	carService := services.NewCarService(carRepo, domainRepo, imageStorage, services.ImageConfig{
		KeyPrefix: cfg.Storage.KeyPrefix,
		MaxWidth:  cfg.Storage.MaxWidth,
		MaxHeight: cfg.Storage.MaxHeight,
		Quality:   cfg.Storage.JPEGQuality,
	}, appLogger)

	h := &routes.Handlers{
		Cars:     handlers.NewCarHandler(carService, appLogger),
		Domains:  handlers.NewDomainHandler(services.NewDomainService(domainRepo, appLogger), appLogger),
		Bookings: handlers.NewBookingHandler(bookingService, appLogger),
		PayPal:   handlers.NewPayPalHandler(paymentService, appLogger),
		Themes:   handlers.NewThemeHandler(services.NewThemeService(themeStore, appLogger), appLogger),
		Routes:   handlers.NewRouteHandler(services.NewRouteService(mapsProvider, appLogger), appLogger),
		Health:   handlers.NewHealthHandler(cfg.App.Version, healthChecks),
		LiveFeed: websocket.NewHandler(hub, websocket.Config{
			ReadBufferSize:   cfg.WebSocket.ReadBufferSize,
			WriteBufferSize:  cfg.WebSocket.WriteBufferSize,
			HandshakeTimeout: cfg.WebSocket.HandshakeTimeout,
			PingInterval:     cfg.WebSocket.PingInterval,
			PongTimeout:      cfg.WebSocket.PongTimeout,
			AllowedOrigins:   cfg.WebSocket.AllowedOrigins,
		}),
	}

	router, err := newRouter(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	routes.SetupRoutes(router, h)

	if local, ok := imageStorage.(*storage.LocalStorage); ok && strings.HasPrefix(local.BaseURL(), "/") {
		router.Static(local.BaseURL(), local.BasePath())
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		appLogger.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func newRouter(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) (*gin.Engine, error) {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.Security.MaxUploadSize
	if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	gate, err := middleware.ClerkAuth(ctx, cfg.Auth, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up admin gate: %w", err)
	}

	router.Use(middleware.RecoveryMiddleware(appLogger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.TimeoutMiddleware(cfg.Security.RequestTimeout))
	router.Use(gate)

	return router, nil
}

func newSMSProvider(ctx context.Context, cfg *config.SMSConfig) (sms.SMSProvider, error) {
	switch cfg.Provider {
	case "twilio":
		return sms.NewTwilioProvider(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber), nil
	case "sns", "aws":
		provider, err := sms.NewAWSSNSProvider(ctx, cfg.AWS.Region, cfg.SenderID)
		if err != nil {
			return nil, fmt.Errorf("failed to create SNS provider: %w", err)
		}
		return provider, nil
	default:
		return nil, nil
	}
}

func newMapsProvider(cfg *config.MapsConfig, geoCache maps.Cache) (maps.Provider, error) {
	var provider maps.Provider
	switch cfg.Provider {
	case "google":
		google, err := maps.NewGoogleMapsProvider(cfg.GoogleMaps.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create Google Maps provider: %w", err)
		}
		provider = google
	default:
		provider = maps.NewTomTomProvider(cfg.TomTom.APIKey, cfg.TomTom.BaseURL, cfg.TomTom.Timeout)
	}

	if geoCache != nil {
		return maps.NewCachedProvider(provider, geoCache, cfg.CacheTTL), nil
	}
	return provider, nil
}

func newStorageProvider(ctx context.Context, cfg *config.StorageConfig) (storage.StorageProvider, error) {
	switch cfg.Provider {
	case "aws":
		s3, err := storage.NewAWSS3Storage(ctx, cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.CDNDomain)
		if err != nil {
			return nil, fmt.Errorf("failed to create S3 storage: %w", err)
		}
		return s3, nil
	case "gcp":
		gcs, err := storage.NewGCPStorage(ctx, cfg.GCP.Bucket, cfg.GCP.CredentialsFile, cfg.GCP.CDNDomain)
		if err != nil {
			return nil, fmt.Errorf("failed to create GCS storage: %w", err)
		}
		return gcs, nil
	case "", "none":
		return nil, nil
	default:
		local, err := storage.NewLocalStorage(cfg.Local.BasePath, cfg.Local.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create local storage: %w", err)
		}
		return local, nil
	}
}
