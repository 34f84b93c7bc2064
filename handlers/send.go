package handlers

import (
	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/telebot.v3"

	"uni_bot_go/keyboard"
)

const msgUnavailable = "سرور موقتاً در دسترس نیست. لطفاً بعداً تلاش کنید."

// send отправляет ответ новым сообщением.
func send(c telebot.Context, r Reply) error {
	if r.Location != nil {
		return c.Send(&telebot.Location{
			Lat: float32(r.Location.Latitude),
			Lng: float32(r.Location.Longitude),
		})
	}

	opts := &telebot.SendOptions{}
	if r.Layout != nil {
		markup, err := keyboard.Markup(*r.Layout)
		if err != nil {
			return err
		}
		opts.ReplyMarkup = markup
	}
	return c.Send(r.Text, opts)
}

// respond отвечает на callback: inline-меню редактируется на месте, остальное
// уходит новым сообщением.
func respond(c telebot.Context, r Reply) error {
	resp := &telebot.CallbackResponse{}
	if r.Alert != "" {
		resp.Text = r.Alert
		resp.ShowAlert = true
	}
	if err := c.Respond(resp); err != nil {
		log.Warnf("respond to callback: %v", err)
	}

	if r.Location != nil || r.Layout == nil || r.Layout.Reply {
		// Inline-клавиатура больше не нужна
		if r.Layout != nil && r.Layout.Reply && c.Message() != nil {
			if err := c.Delete(); err != nil {
				log.Warnf("delete inline menu: %v", err)
			}
		}
		return send(c, r)
	}

	markup, err := keyboard.Markup(*r.Layout)
	if err != nil {
		return err
	}
	if c.Message() == nil {
		return c.Send(r.Text, markup)
	}
	if err := c.Edit(r.Text, markup); err != nil {
		log.Warnf("edit menu, sending new one: %v", err)
		return c.Send(r.Text, markup)
	}
	return nil
}
