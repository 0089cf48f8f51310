package config

import (
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	DBDriver    string
	MySQLDSN    string
	PostgresDSN string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	SwaggerHost string
	LogLevel    string
	LogFormat   string
	ResetDB     bool

	Chapa   ChapaConfig
	Booking BookingConfig
}

// ChapaConfig holds payment gateway settings.
type ChapaConfig struct {
	BaseURL     string
	SecretKey   string
	Timeout     time.Duration
	CallbackURL string
	ReturnURL   string
}

// BookingConfig holds reservation and calendar settings.
type BookingConfig struct {
	Currency         string
	CalendarCacheTTL time.Duration
	// Location decides which calendar day "today" is for new bookings.
	Location *time.Location
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		DBDriver:    getEnv("DB_DRIVER", "mysql"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/hotel?charset=utf8mb4&parseTime=True&loc=UTC"),
		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=postgres password=postgres dbname=hotel port=5432 sslmode=disable TimeZone=UTC"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		ResetDB:     getEnvBool("RESET_DB", false),
		Chapa: ChapaConfig{
			BaseURL:     getEnv("CHAPA_BASE_URL", "https://api.chapa.co"),
			SecretKey:   os.Getenv("CHAPA_SECRET_KEY"),
			Timeout:     getEnvDuration("CHAPA_TIMEOUT", 30*time.Second),
			CallbackURL: getEnv("PAYMENT_CALLBACK_URL", "http://localhost:8080/api/payments/webhook"),
			ReturnURL:   getEnv("PAYMENT_RETURN_URL", "http://localhost:3000/bookings/complete"),
		},
		Booking: BookingConfig{
			Currency:         getEnv("CURRENCY", "ETB"),
			CalendarCacheTTL: getEnvDuration("CALENDAR_CACHE_TTL", 30*time.Second),
			Location:         getEnvLocation("HOTEL_TIMEZONE", time.UTC),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvLocation(key string, def *time.Location) *time.Location {
	if v := os.Getenv(key); v != "" {
		if loc, err := time.LoadLocation(v); err == nil {
			return loc
		}
	}
	return def
}
