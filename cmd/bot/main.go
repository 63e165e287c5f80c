package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"blazorbot/internal/config"
	"blazorbot/internal/storage"
	"blazorbot/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	games := telegram.DefaultGames()
	if gs, ok := config.LoadJSON[[]telegram.Game](cfg.GamesFilePath); ok {
		games = telegram.NormalizeGames(gs)
	}

	rec := storage.NewFileRecorder(cfg.LogDir, time.Now())

	bot, err := telegram.New(cfg.ResolveToken(), cfg.Debug, rec, games, cfg.PollTimeout)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}
	if err := bot.RemoveWebhook(); err != nil {
		log.Fatalf("failed to remove webhook: %v", err)
	}

	if err := rec.Init(); err != nil {
		log.Fatalf("failed to init log file: %v", err)
	}
	mustRecord(rec, "BlazorBot started! <-> ['Ctrl+C' to shutdown]")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Start(ctx); err != nil {
		log.Fatalf("polling stopped: %v", err)
	}
	mustRecord(rec, "Bye Bye!")
}

func mustRecord(rec *storage.FileRecorder, message string) {
	if err := rec.Record(message, nil); err != nil {
		log.Fatalf("failed to write log: %v", err)
	}
}
