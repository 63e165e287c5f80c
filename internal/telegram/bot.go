package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"blazorbot/internal/storage"
)

type Bot struct {
	api         client
	recorder    storage.Recorder
	dispatcher  *Dispatcher
	pollTimeout int
}

func New(botToken string, debug bool, rec storage.Recorder, games []Game, pollTimeout int) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	api.Debug = debug
	log.Printf("Authorized on account @%s", api.Self.UserName)
	return newBot(api, rec, games, pollTimeout), nil
}

func newBot(api client, rec storage.Recorder, games []Game, pollTimeout int) *Bot {
	b := &Bot{
		api:         api,
		recorder:    rec,
		dispatcher:  NewDispatcher(),
		pollTimeout: pollTimeout,
	}
	ack := botAPIAcknowledger{api: api}
	for _, g := range games {
		b.dispatcher.RegisterGame(g.ShortName, GameHandler(rec, ack, g))
	}
	return b
}

// RemoveWebhook clears any webhook so long polling can be used. It is a
// no-op on Telegram's side when none is set.
func (b *Bot) RemoveWebhook() error {
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}
	return nil
}

// Start long-polls for updates until ctx is done or the update channel is
// closed. Updates queued before Start are skipped. It returns an error only
// when the log file can not be written.
func (b *Bot) Start(ctx context.Context) error {
	offset, err := b.skipPending()
	if err != nil {
		return fmt.Errorf("skip pending updates: %w", err)
	}

	u := tgbotapi.NewUpdate(offset)
	u.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if err := b.handleUpdate(update); err != nil {
				b.api.StopReceivingUpdates()
				return err
			}
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) error {
	if update.CallbackQuery == nil {
		return nil
	}
	_, err := b.dispatcher.Dispatch(update.CallbackQuery)
	if err == nil {
		return nil
	}
	var we *storage.WriteError
	if errors.As(err, &we) {
		return err
	}
	log.Printf("failed to handle callback query %s: %v", update.CallbackQuery.ID, err)
	return nil
}

// skipPending returns the offset just past the newest queued update.
func (b *Bot) skipPending() (int, error) {
	pending, err := b.api.GetUpdates(tgbotapi.UpdateConfig{Offset: -1, Limit: 1})
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}
	return pending[len(pending)-1].UpdateID + 1, nil
}
