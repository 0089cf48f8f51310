package router

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hotelres/internal/auth"
	"hotelres/internal/cache"
	"hotelres/internal/errors"
	"hotelres/internal/handler"
)

const healthTimeout = 2 * time.Second

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Auth         *handler.AuthHandler
	Availability *handler.AvailabilityHandler
	Intent       *handler.IntentHandler
	Payment      *handler.PaymentHandler
	Webhook      *handler.WebhookHandler
}

// Deps are the infrastructure the router checks and authenticates with.
type Deps struct {
	DB         *gorm.DB
	Cache      *cache.Client
	JWTService *auth.JWTService
	Logger     *zap.Logger
}

// Register wires routes and middleware.
func Register(e *echo.Echo, deps Deps, h Handlers) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())

	e.Validator = handler.NewValidator()

	e.GET("/healthz", healthz(deps))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.POST("/auth/logout", h.Auth.Logout)

	api.GET("/hotels/:hotelID/availability", h.Availability.GetAvailability)
	api.GET("/hotels/:hotelID/calendar/check-in", h.Availability.GetCheckInCalendar)
	api.GET("/hotels/:hotelID/calendar/check-out", h.Availability.GetCheckOutCalendar)

	api.POST("/payments/webhook", h.Webhook.Receive)
	api.GET("/payments/webhook", h.Webhook.Callback)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  deps.JWTService.Secret(),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return &echo.HTTPError{
				Code:     http.StatusUnauthorized,
				Message:  errors.ErrorResponse{Error: "missing or invalid token", Code: "UNAUTHORIZED"},
				Internal: err,
			}
		},
	}))

	secured.POST("/intents", h.Intent.CreateIntent)
	secured.GET("/intents/:id", h.Intent.GetIntent)
	secured.POST("/intents/:id/payments", h.Intent.InitiatePayment)

	secured.POST("/reservations/:id/payments", h.Payment.InitiateReservationPayment)

	secured.POST("/payments/verify", h.Payment.Verify)
	secured.POST("/payments/:id/refund", h.Payment.Refund)
	secured.GET("/payments/:tx_ref/status", h.Payment.Status)
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			switch {
			case v.Status >= http.StatusInternalServerError:
				logger.Error("request", append(fields, zap.Error(v.Error))...)
			case v.Error != nil:
				logger.Info("request", append(fields, zap.Error(v.Error))...)
			default:
				logger.Info("request", fields...)
			}
			return nil
		},
	})
}

// HealthResponse reports dependency status.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

func healthz(deps Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
		defer cancel()

		resp := HealthResponse{Status: "ok", Database: "ok", Cache: "ok"}
		status := http.StatusOK

		if err := pingDB(ctx, deps.DB); err != nil {
			resp.Status = "unavailable"
			resp.Database = "unavailable"
			status = http.StatusServiceUnavailable
		}
		// A cache outage degrades the API but does not take it down.
		if err := deps.Cache.Ping(ctx); err != nil {
			resp.Cache = "unavailable"
			if status == http.StatusOK {
				resp.Status = "degraded"
			}
		}

		return c.JSON(status, resp)
	}
}

func pingDB(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return gorm.ErrInvalidDB
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
