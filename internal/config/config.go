package config

import (
	"fmt"
	"log"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      string `env:"PORT,default=8080"`
	DBDriver  string `env:"DB_DRIVER,default=sqlite"`
	DBDSN     string `env:"DB_DSN,default=shopapi.db"`
	LogFile   string `env:"LOG_FILE,default=./shopapi.log"`
	Seed      bool   `env:"SEED,default=true"`
	BodyLimit int    `env:"BODY_LIMIT,default=1048576"`
	// RateLimit is requests per minute per client IP; 0 disables the limiter.
	RateLimit int `env:"RATE_LIMIT,default=120"`
}

// Defaults is the configuration used when nothing is set in the environment.
func Defaults() Config {
	return Config{
		Port:      "8080",
		DBDriver:  "sqlite",
		DBDSN:     "shopapi.db",
		LogFile:   "./shopapi.log",
		Seed:      true,
		BodyLimit: 1 << 20,
		RateLimit: 120,
	}
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] no .env file loaded: %v", err)
	}
	cfg := Defaults()
	// strict: a malformed number or bool fails startup instead of reading as zero
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	log.Printf("[config] PORT=%s DB_DRIVER=%s SEED=%t LOG_FILE=%s RATE_LIMIT=%d",
		cfg.Port, cfg.DBDriver, cfg.Seed, cfg.LogFile, cfg.RateLimit)
	return cfg, nil
}
