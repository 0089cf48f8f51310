package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"hotelres/docs"
	"hotelres/internal/auth"
	"hotelres/internal/cache"
	"hotelres/internal/config"
	"hotelres/internal/db"
	"hotelres/internal/gateway"
	"hotelres/internal/handler"
	"hotelres/internal/logger"
	"hotelres/internal/metrics"
	"hotelres/internal/repository"
	"hotelres/internal/router"
	"hotelres/internal/service"
)

const shutdownTimeout = 15 * time.Second

// @title Hotel Reservation API
// @version 1.0
// @description Room availability, reservation intents and Chapa payments with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	dsn := cfg.MySQLDSN
	if cfg.DBDriver == "postgres" {
		dsn = cfg.PostgresDSN
	}
	gormDB, err := db.Open(cfg.DBDriver, dsn)
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}
	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	appMetrics := metrics.New("hotelres", prometheus.DefaultRegisterer)

	store := repository.NewStore(gormDB)
	chapa := gateway.NewChapaClient(cfg.Chapa, appMetrics, log.Named("chapa"))
	audit := service.NewAuditSink(store.PaymentLogs(), log.Named("audit"))

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(store.Users(), jwtService, tokenStore)
	availabilityService := service.NewAvailabilityService(store, cacheClient, cfg.Booking.CalendarCacheTTL, appMetrics, log.Named("availability"))
	intentService := service.NewIntentService(store, cfg.Booking.Currency, cfg.Booking.Location, appMetrics, log.Named("intents"))
	paymentService := service.NewPaymentService(store, chapa, audit, service.PaymentSettings{
		CallbackURL: cfg.Chapa.CallbackURL,
		ReturnURL:   cfg.Chapa.ReturnURL,
		Currency:    cfg.Booking.Currency,
	}, appMetrics, log.Named("payments"))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(e, router.Deps{
		DB:         gormDB,
		Cache:      cacheClient,
		JWTService: jwtService,
		Logger:     log.Named("http"),
	}, router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Availability: handler.NewAvailabilityHandler(availabilityService, cfg.Booking.Location),
		Intent:       handler.NewIntentHandler(intentService, paymentService),
		Payment:      handler.NewPaymentHandler(paymentService),
		Webhook:      handler.NewWebhookHandler(paymentService, log.Named("webhook")),
	})

	addr := ":" + cfg.ServerPort
	go func() {
		log.Info("server listening", zap.String("addr", addr), zap.String("swagger", "/swagger/index.html"))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}

	audit.Close()
	if err := cacheClient.Close(); err != nil {
		log.Warn("cache close", zap.Error(err))
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
