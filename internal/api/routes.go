package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)

	// Anything unmatched renders the 404 page.
	app.Use(handler.NotFound)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/", handler.ShowIndex)
	app.Post("/diagnose", handler.Diagnose)
	app.Get("/history", handler.ShowHistory)
	app.Get("/history/:id", handler.ShowHistoryDetail)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/symptoms", handler.ListSymptomsJSON)
	api.Post("/diagnose", handler.DiagnoseJSON)
	api.Get("/history", handler.HistoryJSON)
	api.Get("/history/:id", handler.HistoryDetailJSON)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
