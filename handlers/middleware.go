// middleware.go
package handlers

import (
	"context"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/jackc/pgx/v5/pgtype"
	"gopkg.in/telebot.v3"

	"uni_bot_go/db"
)

// UserStore records who talks to the bot.
type UserStore interface {
	UpsertUser(ctx context.Context, arg db.UpsertUserParams) (db.TgUser, error)
}

// TrackUserMiddleware сохраняет отправителя в tg_user. Ошибка БД не мешает
// обработке апдейта.
func TrackUserMiddleware(users UserStore) telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			if sender := c.Sender(); sender != nil && !sender.IsBot {
				ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				defer cancel()

				if _, err := users.UpsertUser(ctx, userParams(sender)); err != nil {
					log.Errorf("upsert user %d: %v", sender.ID, err)
				}
			}
			return next(c)
		}
	}
}

func userParams(u *telebot.User) db.UpsertUserParams {
	fullName := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if r := []rune(fullName); len(r) > 64 {
		fullName = string(r[:64])
	}
	return db.UpsertUserParams{
		ID:       u.ID,
		FullName: fullName,
		Username: pgtype.Text{String: u.Username, Valid: u.Username != ""},
	}
}

// RecoverMiddleware не даёт панике в обработчике уронить поллер.
func RecoverMiddleware() telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Errorf("PANIC [handler]: %v\n%s", r, string(debug.Stack()))
					err = nil
				}
			}()
			return next(c)
		}
	}
}
