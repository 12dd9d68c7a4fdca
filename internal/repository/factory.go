package repository

import (
	"fmt"

	"stockpile/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// New creates a ProductRepository for the configured store driver.
//
// Supported drivers:
//
//	"file"     - single JSON file at cfg.File (default)
//	"memory"   - in-memory, ephemeral
//	"postgres" - products table via the provided pool
func New(cfg config.StoreConfig, pool *pgxpool.Pool, logger zerolog.Logger) (ProductRepository, error) {
	switch cfg.Driver {
	case "file", "":
		return NewFileProductRepository(cfg.File, logger), nil
	case "memory":
		return NewMemoryProductRepository(), nil
	case "postgres":
		if pool == nil {
			return nil, fmt.Errorf("postgres store driver requires a database pool")
		}
		return NewPostgresProductRepository(pool, logger), nil
	default:
		return nil, fmt.Errorf("unknown store driver: %q (supported: file, memory, postgres)", cfg.Driver)
	}
}
