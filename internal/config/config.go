package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the front-ends read from the environment.
// The engine itself takes its rules as arguments and never touches env.
type Config struct {
	BotToken         string
	DatabasePath     string
	StartBalance     int
	DefaultBet       int
	MinBet           int
	MaxBet           int
	BlackjackPays    float64
	DealerHitsSoft17 bool
}

// Load reads .env if present, then the environment, falling back to
// defaults. BotToken may be empty; only the Telegram front-end needs it.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		BotToken:         os.Getenv("BOT_TOKEN"),
		DatabasePath:     envString("DATABASE_PATH", "./blackjack.db"),
		StartBalance:     envInt("START_BALANCE", 1000),
		DefaultBet:       envInt("DEFAULT_BET", 100),
		MinBet:           envInt("MIN_BET", 10),
		MaxBet:           envInt("MAX_BET", 10000),
		BlackjackPays:    envFloat("BLACKJACK_PAYS", 1.5),
		DealerHitsSoft17: envBool("DEALER_HITS_SOFT17", true),
	}

	if cfg.MinBet <= 0 || cfg.MaxBet < cfg.MinBet {
		return nil, fmt.Errorf("invalid bet limits: min %d, max %d", cfg.MinBet, cfg.MaxBet)
	}
	if cfg.BlackjackPays <= 0 {
		return nil, fmt.Errorf("invalid blackjack payout: %v", cfg.BlackjackPays)
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
