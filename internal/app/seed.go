package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/metinatakli/cinema-kiosk/internal/catalog"
	"github.com/metinatakli/cinema-kiosk/internal/domain"
)

// defaultSeed is the built-in programme used when no database is configured.
var defaultSeed = []domain.SeedMovie{
	{Name: "Metropolis", Price: 6, Hour: 14, Minute: 0},
	{Name: "Spirited Away", Price: 7, Hour: 16, Minute: 30},
	{Name: "Heat", Price: 8, Hour: 21, Minute: 15},
	{Name: "The Matrix", Price: 9, Hour: 19, Minute: 0},
}

// seedCatalog fills store before the controller starts. A missing or empty
// seed table falls back to defaultSeed; any other source error is fatal.
func seedCatalog(ctx context.Context, source domain.MovieSource, store *catalog.Store, logger *slog.Logger) error {
	movies := defaultSeed

	if source != nil {
		loaded, err := source.GetAll(ctx)
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("seed table not found, using built-in catalog")
		case err != nil:
			return fmt.Errorf("failed to load seed movies: %w", err)
		case len(loaded) == 0:
			logger.Warn("seed table is empty, using built-in catalog")
		default:
			movies = loaded
		}
	}

	err := store.Seed(movies)
	if err != nil {
		return err
	}

	logger.Info("catalog seeded", "movies", store.Size())

	return nil
}
