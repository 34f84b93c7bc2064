package handlers

import (
	"gopkg.in/telebot.v3"

	"uni_bot_go/callback"
)

func RegisterHandlers(bot *telebot.Bot, ctrl *Controller) {
	bot.Handle("/start", func(c telebot.Context) error {
		return send(c, ctrl.Start())
	})

	// Кнопки главного меню приходят обычным текстом
	registerTextHandler(bot, ctrl)

	// Inline-кнопки маршрутизируются telebot по Unique = префиксу токена
	onCallback := func(c telebot.Context) error {
		return handleCallback(c, ctrl)
	}
	for _, prefix := range callback.Prefixes() {
		bot.Handle(&telebot.InlineButton{Unique: prefix}, onCallback)
	}
	// Всё, что не совпало ни с одним префиксом (старые кнопки и мусор)
	bot.Handle(telebot.OnCallback, onCallback)
}
