package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"sensor-compare.klederson.com/internal/config"
	"sensor-compare.klederson.com/internal/sensor"
)

// New builds the HTTP application serving comparison views.
func New(c *sensor.Catalog, cfg *config.Settings) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
		AppName:      config.AppName,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	h := NewHandler(c, cfg)

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	api := app.Group("/api/v1")
	api.Get("/sensors", h.ListSensors)

	api.Post("/sessions", h.CreateSession)
	api.Get("/sessions/:id/view", h.GetView)
	api.Get("/sessions/:id/export.csv", h.ExportCSV)
	api.Post("/sessions/:id/sensors/:model/toggle", h.ToggleSensor)
	api.Post("/sessions/:id/logos/:logo/toggle", h.ToggleLogo)
	api.Post("/sessions/:id/sort/:column", h.ChangeSort)
	api.Put("/sessions/:id/search", h.SetSearch)
	api.Put("/sessions/:id/display", h.SetDisplay)
	api.Delete("/sessions/:id", h.DeleteSession)

	return app
}
