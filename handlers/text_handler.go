package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/telebot.v3"
)

func registerTextHandler(bot *telebot.Bot, ctrl *Controller) {
	bot.Handle(telebot.OnText, func(c telebot.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		reply, err := ctrl.OnText(ctx, c.Text())
		if err != nil {
			log.Errorf("text %q from %d: %v", c.Text(), c.Sender().ID, err)
			return c.Send(msgUnavailable)
		}
		return send(c, reply)
	})
}

func handleCallback(c telebot.Context, ctrl *Controller) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reply, err := ctrl.OnCallback(ctx, c.Callback())
	if err != nil {
		log.Errorf("callback %q from %d: %v", c.Callback().Data, c.Sender().ID, err)
		return c.Respond(&telebot.CallbackResponse{
			Text:      "❌ " + msgUnavailable,
			ShowAlert: true,
		})
	}
	return respond(c, reply)
}
