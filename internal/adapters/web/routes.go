package web

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures the application routes.
func SetupRoutes(app *fiber.App, handlers *Handlers) {
	app.Get("/health", handlers.Health)

	api := app.Group("/api")

	// Direct analysis of transcript text in the request body
	api.Post("/analyze", handlers.Analyze)

	// Stored file lifecycle
	api.Post("/files/upload", handlers.UploadFile)
	api.Get("/files", handlers.ListFiles)
	api.Get("/files/:id", handlers.GetFile)
	api.Delete("/files/:id", handlers.DeleteFile)

	// Analysis of a stored file, platform selected via ?platform=
	api.Get("/files/:id/analysis", handlers.GetAnalysis)
}
