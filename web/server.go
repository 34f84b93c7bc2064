package web

import (
	"context"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"uni_bot_go/db"
)

// Pinger checks the database connection. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Content is the read-only part of the store exposed over HTTP.
type Content interface {
	ListCourses(ctx context.Context) ([]db.Course, error)
	ListPlaces(ctx context.Context) ([]db.Place, error)
	CountUsers(ctx context.Context) (int64, error)
}

type healthInfo struct {
	Status     string `json:"status"`
	Database   string `json:"database"`
	Uptime     string `json:"uptime"`
	Goroutines int    `json:"goroutines"`
	Time       string `json:"time"`
}

func NewApp(content Content, pinger Pinger, startedAt time.Time) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		info := healthInfo{
			Status:     "ok",
			Database:   "ok",
			Uptime:     time.Since(startedAt).Round(time.Second).String(),
			Goroutines: runtime.NumGoroutine(),
			Time:       time.Now().Format(time.RFC3339),
		}
		if err := pinger.Ping(ctx); err != nil {
			info.Status = "degraded"
			info.Database = err.Error()
			return c.Status(fiber.StatusServiceUnavailable).JSON(info)
		}
		return c.JSON(info)
	})

	api := app.Group("/api")

	api.Get("/courses", func(c *fiber.Ctx) error {
		courses, err := content.ListCourses(c.UserContext())
		if err != nil {
			log.Errorf("api courses: %v", err)
			return fiber.ErrInternalServerError
		}
		if courses == nil {
			courses = []db.Course{}
		}
		return c.JSON(courses)
	})

	api.Get("/places", func(c *fiber.Ctx) error {
		places, err := content.ListPlaces(c.UserContext())
		if err != nil {
			log.Errorf("api places: %v", err)
			return fiber.ErrInternalServerError
		}
		if places == nil {
			places = []db.Place{}
		}
		return c.JSON(places)
	})

	api.Get("/stats", func(c *fiber.Ctx) error {
		users, err := content.CountUsers(c.UserContext())
		if err != nil {
			log.Errorf("api stats: %v", err)
			return fiber.ErrInternalServerError
		}
		return c.JSON(fiber.Map{"users": users})
	})

	return app
}

// Listen serves app until it is shut down.
func Listen(app *fiber.App, addr string) {
	log.Infof("Health endpoint: %s/health", addr)
	if err := app.Listen(addr); err != nil {
		log.Warnf("HTTP server stopped: %v", err)
	}
}
