package app

import (
	"context"
	"log"
	"time"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/database/migration"
	dbpostgres "skillswap/internal/database/postgres"
	"skillswap/internal/database/seeder"
	"skillswap/internal/infrastructure/cache"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.App.SeedDemo && cfg.App.IsDevelopment() {
		if err := seeder.RunAll(ctx, db, logger, seeder.DemoSeeder{}); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	return &Container{Config: cfg, DB: db, Cache: redisCache, Logger: logger}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
