package handler

import "github.com/gofiber/fiber/v2"

// RegisterRoutes привязывает маршруты движка к приложению.
func RegisterRoutes(app *fiber.App, h *AppointmentHandler) {
	api := app.Group("/api")

	api.Post("/appointments", h.Create)
	api.Put("/appointments/:id", h.Update)
	api.Delete("/appointments/:id", h.Delete)
	api.Get("/appointments", h.List)

	api.Get("/calendar/:year/:month/counts", h.MonthCounts)
	api.Get("/calendar/:year/:month/names", h.MonthNames)

	api.Get("/suggestions", h.Suggest)

	api.Get("/events", h.Events)
}
