package seeder

import (
	"context"
	"fmt"
	"log"

	"skillswap/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// RunAll executes seeders in order and stops at the first failure.
func RunAll(ctx context.Context, db database.DB, logger *log.Logger, seeders ...Seeder) error {
	for _, s := range seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name(), err)
		}
		if logger != nil {
			logger.Printf("[Seeder] %s done", s.Name())
		}
	}
	return nil
}
