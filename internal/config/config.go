package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress        string
	DatabaseURI       string
	Key               string
	LogFile           string
	ReconcileInterval time.Duration
	CustomerCacheTTL  time.Duration
}

func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "HTTP server address")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "DB connection string")
	flag.StringVar(&cfg.Key, "k", "secret", "JWT signing key")
	flag.StringVar(&cfg.LogFile, "l", "server.log", "log file path")
	flag.DurationVar(&cfg.ReconcileInterval, "i", 30*time.Second, "pending tier upgrade retry interval")
	flag.DurationVar(&cfg.CustomerCacheTTL, "t", time.Minute, "customer cache ttl")
	flag.Parse()

	if err := ReadServerEnvironment(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func ReadServerEnvironment(cfg *Config) error {
	if runAddress := os.Getenv("RUN_ADDRESS"); runAddress != "" {
		cfg.RunAddress = runAddress
	}

	if databaseURI := os.Getenv("DATABASE_URI"); databaseURI != "" {
		cfg.DatabaseURI = databaseURI
	}

	if key := os.Getenv("LOYALTY_KEY"); key != "" {
		cfg.Key = key
	}

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		cfg.LogFile = logFile
	}

	if interval := os.Getenv("RECONCILE_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return fmt.Errorf("parse RECONCILE_INTERVAL: %w", err)
		}
		cfg.ReconcileInterval = d
	}

	if ttl := os.Getenv("CUSTOMER_CACHE_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return fmt.Errorf("parse CUSTOMER_CACHE_TTL: %w", err)
		}
		cfg.CustomerCacheTTL = d
	}

	return nil
}
