package integration_test

import (
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-kiosk/internal/app"
	"github.com/metinatakli/cinema-kiosk/internal/catalog"
	"github.com/metinatakli/cinema-kiosk/internal/repository"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Movies *repository.PostgresMovieRepository
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	application := app.NewApp(cfg, logger, catalog.NewStore(nil), nil)

	err = application.SetupJournal()
	if err != nil {
		redisClient.Close()
		db.Close()
		return nil, err
	}

	return &TestApp{
		App:    application,
		DB:     db,
		Redis:  redisClient,
		Movies: repository.NewPostgresMovieRepository(db),
	}, nil
}

func (a *TestApp) Close() {
	a.App.Close()
	a.Redis.Close()
	a.DB.Close()
}
