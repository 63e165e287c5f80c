package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

type Predicate func(cb *tgbotapi.CallbackQuery) bool

type HandlerFunc func(cb *tgbotapi.CallbackQuery) error

type route struct {
	match  Predicate
	handle HandlerFunc
}

// Dispatcher routes callback queries to the first registered handler whose
// predicate matches. Routes are checked in registration order.
type Dispatcher struct {
	routes []route
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Register(match Predicate, handle HandlerFunc) {
	d.routes = append(d.routes, route{match: match, handle: handle})
}

func (d *Dispatcher) RegisterGame(shortName string, handle HandlerFunc) {
	d.Register(GameShortName(shortName), handle)
}

// GameShortName matches callbacks coming from the game button of shortName.
func GameShortName(shortName string) Predicate {
	return func(cb *tgbotapi.CallbackQuery) bool {
		return cb.GameShortName == shortName
	}
}

// Dispatch runs the matching handler, if any. handled is false when no
// route matched; nothing is logged or sent in that case.
func (d *Dispatcher) Dispatch(cb *tgbotapi.CallbackQuery) (handled bool, err error) {
	if cb == nil {
		return false, nil
	}
	for _, r := range d.routes {
		if r.match(cb) {
			return true, r.handle(cb)
		}
	}
	return false, nil
}
