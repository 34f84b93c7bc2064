package keyboard

import (
	"errors"
	"fmt"

	"gopkg.in/telebot.v3"

	"uni_bot_go/callback"
)

var ErrNoAction = errors.New("inline button has neither token nor url")

// Button is a rendered inline button: its caption and encoded callback data.
type Button struct {
	Label string
	Data  string
	URL   string
}

// Render encodes every token of an inline layout.
func Render(l Layout) ([]Button, GridPlan, error) {
	out := make([]Button, 0, len(l.Items))
	for i, it := range l.Items {
		switch {
		case it.URL != "":
			out = append(out, Button{Label: it.Label, URL: it.URL})
		case it.Token != nil:
			data, err := callback.Encode(it.Token)
			if err != nil {
				return nil, nil, fmt.Errorf("button %d %q: %w", i, it.Label, err)
			}
			out = append(out, Button{Label: it.Label, Data: data})
		default:
			return nil, nil, fmt.Errorf("button %d %q: %w", i, it.Label, ErrNoAction)
		}
	}
	return out, l.Plan, nil
}

// Markup converts a layout to telebot markup.
func Markup(l Layout) (*telebot.ReplyMarkup, error) {
	if l.Reply {
		return replyMarkup(l)
	}
	return inlineMarkup(l)
}

func inlineMarkup(l Layout) (*telebot.ReplyMarkup, error) {
	buttons := make([]telebot.InlineButton, 0, len(l.Items))
	for i, it := range l.Items {
		switch {
		case it.URL != "":
			buttons = append(buttons, telebot.InlineButton{Text: it.Label, URL: it.URL})
		case it.Token != nil:
			btn, err := callback.Button(it.Label, it.Token)
			if err != nil {
				return nil, fmt.Errorf("button %d %q: %w", i, it.Label, err)
			}
			buttons = append(buttons, btn)
		default:
			return nil, fmt.Errorf("button %d %q: %w", i, it.Label, ErrNoAction)
		}
	}

	rows, err := Arrange(l.Plan, buttons)
	if err != nil {
		return nil, err
	}
	return &telebot.ReplyMarkup{InlineKeyboard: rows}, nil
}

func replyMarkup(l Layout) (*telebot.ReplyMarkup, error) {
	buttons := make([]telebot.ReplyButton, 0, len(l.Items))
	for _, it := range l.Items {
		buttons = append(buttons, telebot.ReplyButton{Text: it.Label})
	}

	rows, err := Arrange(l.Plan, buttons)
	if err != nil {
		return nil, err
	}
	return &telebot.ReplyMarkup{
		ReplyKeyboard:  rows,
		ResizeKeyboard: true,
	}, nil
}
