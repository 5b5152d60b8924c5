package integration_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	pgxstd "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

const migrationsDir = "file://../../migrations"

// backingServices are the catalog database and the ticket journal a test
// kiosk runs against.
type backingServices struct {
	catalogDB *postgres.PostgresContainer
	journal   *tcredis.RedisContainer

	dsn         string
	journalAddr string
}

// startBackingServices starts both containers and migrates the catalog
// schema. On error the containers started so far are returned so the caller
// can terminate them.
func startBackingServices(ctx context.Context) (*backingServices, error) {
	s := &backingServices{}

	var err error
	s.catalogDB, err = postgres.Run(ctx, dbImageName,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return s, fmt.Errorf("failed to start catalog database: %w", err)
	}

	s.dsn, err = s.catalogDB.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return s, fmt.Errorf("failed to build catalog dsn: %w", err)
	}

	err = migrateCatalog(s.dsn)
	if err != nil {
		return s, err
	}

	s.journal, err = tcredis.Run(ctx, cacheImageName, tcredis.WithLogLevel(tcredis.LogLevelWarning))
	if err != nil {
		return s, fmt.Errorf("failed to start ticket journal: %w", err)
	}

	// go-redis wants host:port, not the redis:// URL
	s.journalAddr, err = s.journal.Endpoint(ctx, "")
	if err != nil {
		return s, fmt.Errorf("failed to resolve ticket journal address: %w", err)
	}

	return s, nil
}

func (s *backingServices) terminate() error {
	return errors.Join(
		testcontainers.TerminateContainer(s.catalogDB),
		testcontainers.TerminateContainer(s.journal),
	)
}

func migrateCatalog(dsn string) error {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse catalog dsn: %w", err)
	}

	db := pgxstd.OpenDB(*config)
	defer db.Close()

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("failed to open migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsDir, "pgx", driver)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}

	return nil
}
