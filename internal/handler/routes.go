package handler

import (
	"medmcq/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything mounted under /api.
type Handlers struct {
	Auth       *AuthHandler
	Health     *HealthHandler
	Generation *GenerationHandler
	Record     *RecordHandler
	Export     *ExportHandler
}

// RegisterRoutes mounts the API on router. protected guards every route
// except login, logout and health.
func RegisterRoutes(router fiber.Router, h Handlers, protected fiber.Handler) {
	vm := middleware.NewValidationMiddleware()

	authGroup := router.Group("/auth")
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/logout", h.Auth.Logout)

	router.Get("/health", h.Health.Health)

	router.Post("/estimate", protected, h.Generation.Estimate)
	router.Post("/generate", protected, h.Generation.Generate)
	router.Get("/drafts/:id", protected, vm.ValidateRecordID(), h.Generation.GetDraft)
	router.Post("/parse", protected, h.Generation.Parse)

	records := router.Group("/records", protected)
	records.Get("/", h.Record.List)
	records.Post("/", h.Record.Create)
	records.Get("/:id", vm.ValidateRecordID(), h.Record.Get)
	records.Put("/:id", vm.ValidateRecordID(), h.Record.Update)
	records.Patch("/:id/rating", vm.ValidateRecordID(), h.Record.Rate)
	records.Delete("/:id", vm.ValidateRecordID(), h.Record.Delete)
	records.Get("/:id/preview", vm.ValidateRecordID(), h.Record.Preview)

	exports := router.Group("/export", protected, vm.ValidateExportParams())
	exports.Get("/excel", h.Export.Excel)
	exports.Get("/pdf", h.Export.PDF)
}
