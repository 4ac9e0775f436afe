package routes

import (
	"github.com/gofiber/fiber/v2"

	"meetup_backend/internal/handlers"
)

// Register wires every API route. The seed route is declared before the
// ":id" routes so "seed" is never read as an event id.
func Register(app *fiber.App, store handlers.EventStore) {
	app.Get("/api/health", handlers.Health())

	events := app.Group("/api/events")

	events.Post("/seed", handlers.SeedEvents(store))

	events.Get("/", handlers.ListEvents(store))
	events.Get("/:id", handlers.GetEvent(store))
	events.Post("/", handlers.CreateEvent(store))
	events.Put("/:id", handlers.UpdateEvent(store))
	events.Delete("/:id", handlers.DeleteEvent(store))
}
