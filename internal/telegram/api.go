package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// client is the part of *tgbotapi.BotAPI the bot relies on.
type client interface {
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Acknowledger answers a callback query, sending the user to url.
type Acknowledger interface {
	Acknowledge(callbackID, url string) error
}

type botAPIAcknowledger struct{ api client }

func (a botAPIAcknowledger) Acknowledge(callbackID, url string) error {
	_, err := a.api.Request(tgbotapi.CallbackConfig{CallbackQueryID: callbackID, URL: url})
	return err
}
