package main

import (
	"github.com/sirupsen/logrus"

	"github.com/blabel3/praeses-blackjack/internal/bot"
	"github.com/blabel3/praeses-blackjack/internal/config"
	"github.com/blabel3/praeses-blackjack/internal/database"
	"github.com/blabel3/praeses-blackjack/internal/player"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	if cfg.BotToken == "" {
		logrus.Fatal("BOT_TOKEN is not set")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	logrus.Info("database connected")

	playerRepo := player.NewRepository(db.DB)

	b, err := bot.New(cfg, playerRepo)
	if err != nil {
		logrus.Fatalf("failed to create bot: %v", err)
	}

	if err := b.Run(); err != nil {
		logrus.Fatalf("bot error: %v", err)
	}
}
