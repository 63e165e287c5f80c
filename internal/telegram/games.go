package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"blazorbot/internal/storage"
)

// Game binds a game short name to the log tag and the URL the player is sent to.
type Game struct {
	ShortName string `json:"short_name"`
	Tag       string `json:"tag"`
	URL       string `json:"url"`
}

func DefaultGames() []Game {
	return []Game{
		{ShortName: "bapple", Tag: "bad_apple-", URL: "https://skillmasters.ru/"},
		{ShortName: "tictactoe", Tag: "tictactoe-", URL: "https://abelidze.github.io/XOGame/"},
	}
}

// NormalizeGames drops entries without a short name or URL and falls back to
// DefaultGames when nothing usable is left.
func NormalizeGames(games []Game) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if g.ShortName == "" || g.URL == "" {
			continue
		}
		out = append(out, g)
	}
	if len(out) == 0 {
		return DefaultGames()
	}
	return out
}

// GameHandler logs the launch and answers the callback with the game URL.
func GameHandler(rec storage.Recorder, ack Acknowledger, g Game) HandlerFunc {
	return func(cb *tgbotapi.CallbackQuery) error {
		if err := rec.Record(g.Tag, fromUser(cb.From)); err != nil {
			return err
		}
		if err := ack.Acknowledge(cb.ID, g.URL); err != nil {
			return fmt.Errorf("answer callback %s: %w", cb.ID, err)
		}
		return nil
	}
}

func fromUser(u *tgbotapi.User) *storage.User {
	if u == nil {
		return nil
	}
	return &storage.User{ID: u.ID, FirstName: u.FirstName}
}
