package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"hotelres/internal/config"
	"hotelres/internal/db"
	"hotelres/internal/logger"
	"hotelres/internal/repository"
	"hotelres/internal/service"
)

const fetchTimeout = 30 * time.Second

func main() {
	source := flag.String("source", envOr("SEED_SOURCE", "seed.json"), "seed document: a file path or an http(s) URL")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting seed", zap.String("source", *source))

	dsn := cfg.MySQLDSN
	if cfg.DBDriver == "postgres" {
		dsn = cfg.PostgresDSN
	}
	gormDB, err := db.Open(cfg.DBDriver, dsn)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB, false); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	data, err := loadSeedData(ctx, *source)
	if err != nil {
		log.Fatal("failed to load seed data", zap.Error(err))
	}
	log.Info("loaded seed data", zap.Int("hotels", len(data.Hotels)), zap.Int("users", len(data.Users)))

	result, err := service.Seed(context.Background(), repository.NewStore(gormDB), data)
	if err != nil {
		log.Fatal("failed to seed", zap.Error(err))
	}

	log.Info("seed completed",
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
	)
}

// loadSeedData reads the seed document from a file or fetches it over HTTP.
func loadSeedData(ctx context.Context, source string) (service.SeedData, error) {
	var data service.SeedData

	var body []byte
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err = fetch(ctx, source)
	} else {
		body, err = os.ReadFile(source)
	}
	if err != nil {
		return data, err
	}

	if err := json.Unmarshal(body, &data); err != nil {
		return data, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return data, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seed data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed source returned status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
