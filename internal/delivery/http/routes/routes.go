package routes

import (
	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/delivery/http/handler"
	v1 "skillswap/internal/delivery/http/routes/v1"
	"skillswap/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, redisCache *cache.Redis) *Registry {
	return &Registry{
		cfg:    cfg,
		db:     db,
		cache:  redisCache,
		health: handler.NewHealthHandler(db),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.cache)
}
