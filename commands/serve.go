package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"gopkg.in/telebot.v3"

	"uni_bot_go/db"
	"uni_bot_go/handlers"
	"uni_bot_go/jobs"
	"uni_bot_go/texts"
	"uni_bot_go/web"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and start polling Telegram",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	startedAt := time.Now()

	if config.BotToken == "" {
		return errors.New("BOT_TOKEN is not set")
	}

	if err := runMigrations(config.DatabaseURL, config.MigrationsPath, 0); err != nil {
		log.Errorf("Migrations: %v", err)
		return err
	}

	pool, err := pgxpool.New(ctx, config.DatabaseURL)
	if err != nil {
		log.Errorf("DB connection error: %v", err)
		return err
	}
	defer pool.Close()

	queries := db.New(pool)

	store := texts.NewStore()
	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	n, err := store.Load(loadCtx, queries)
	cancel()
	if err != nil {
		// Бот всё равно поднимется: вместо подписей будут ключи
		log.Warnf("Texts not loaded: %v", err)
	} else {
		log.Infof("Texts loaded: %d", n)
	}

	pref := telebot.Settings{
		Token:  config.BotToken,
		URL:    config.BotAPIURL,
		Poller: &telebot.LongPoller{Timeout: config.PollTimeout},
		OnError: func(err error, c telebot.Context) {
			if c != nil && c.Chat() != nil {
				log.Errorf("Bot error in chat %d: %v", c.Chat().ID, err)
				return
			}
			log.Errorf("Bot error: %v", err)
		},
	}

	bot, err := telebot.NewBot(pref)
	if err != nil {
		log.Errorf("Bot init error: %v", err)
		return err
	}

	cron, err := jobs.RefreshTexts(store, queries, config.TextsRefresh)
	if err != nil {
		return err
	}
	defer cron.Stop()

	bot.Use(handlers.RecoverMiddleware())
	bot.Use(handlers.TrackUserMiddleware(queries))
	handlers.RegisterHandlers(bot, handlers.NewController(queries, store))

	if config.HTTPAddr != "" {
		app := web.NewApp(queries, pool, startedAt)
		defer app.Shutdown()
		safeGo("http", func() { web.Listen(app, config.HTTPAddr) })
	}

	log.Infof("Bot started: @%s", bot.Me.Username)
	safeGo("bot", bot.Start)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case <-stop:
	case <-ctx.Done():
	}
	log.Info("Shutting down...")
	bot.Stop()
	return nil
}

func safeGo(name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("PANIC [%s]: %v\n%s", name, r, string(debug.Stack()))
			}
		}()
		fn()
	}()
}
