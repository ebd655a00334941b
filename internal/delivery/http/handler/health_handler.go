package handler

import (
	"skillswap/internal/database"
	"skillswap/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	data := map[string]any{"database": "ok"}
	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			data["database"] = "unreachable"
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
