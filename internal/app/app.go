package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/metinatakli/cinema-kiosk/internal/catalog"
	"github.com/metinatakli/cinema-kiosk/internal/display"
	"github.com/metinatakli/cinema-kiosk/internal/domain"
	"github.com/metinatakli/cinema-kiosk/internal/input"
	"github.com/metinatakli/cinema-kiosk/internal/journal"
	"github.com/metinatakli/cinema-kiosk/internal/kiosk"
	"github.com/metinatakli/cinema-kiosk/internal/repository"
	appvalidator "github.com/metinatakli/cinema-kiosk/internal/validator"
	"github.com/metinatakli/cinema-kiosk/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate

	catalog    *catalog.Store
	controller *kiosk.Controller
	mailbox    *kiosk.Mailbox
	latest     *display.Latest
	metrics    *kioskMetrics

	db      *pgxpool.Pool
	redis   redis.UniversalClient
	journal *journal.Journal
	closers []io.Closer
}

// NewApp wires the controller and its collaborators around an already seeded
// catalog.
func NewApp(cfg Config, logger *slog.Logger, store *catalog.Store, metrics *kioskMetrics) *Application {
	return &Application{
		config:     cfg,
		logger:     logger,
		validator:  appvalidator.NewValidator(),
		catalog:    store,
		controller: kiosk.New(store, kiosk.WithLogger(logger.With("component", "controller"))),
		mailbox:    kiosk.NewMailbox(),
		latest:     display.NewLatest(),
		metrics:    metrics,
	}
}

func Run() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, displayVersion, err := parseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		return err
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	// stdout belongs to the terminal display
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	shutdownTelemetry, logger, err := InitTelemetry(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	app := NewApp(cfg, logger, catalog.NewStore(nil), nil)

	metrics, err := newKioskMetrics(otel.Meter("github.com/metinatakli/cinema-kiosk"))
	if err != nil {
		return fmt.Errorf("failed to create metrics: %w", err)
	}
	app.metrics = metrics

	var source domain.MovieSource
	if cfg.DB.DSN != "" {
		db, err := NewDatabasePool(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		app.db = db
		source = repository.NewPostgresMovieRepository(db)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = app.SeedCatalog(ctx, source)
	cancel()
	if err != nil {
		return err
	}

	err = app.SetupJournal()
	if err != nil {
		return err
	}
	defer app.Close()

	return app.run()
}

// SeedCatalog loads the initial programme from source, or the built-in one
// when source is nil.
func (app *Application) SeedCatalog(ctx context.Context, source domain.MovieSource) error {
	return seedCatalog(ctx, source, app.catalog, app.logger)
}

// SetupJournal connects the configured ticket journal, if any.
func (app *Application) SetupJournal() error {
	var publisher domain.TicketPublisher

	switch app.config.Journal {
	case JournalRedis:
		rdb, err := NewRedisClient(app.config)
		if err != nil {
			return err
		}

		app.redis = rdb
		app.closers = append(app.closers, rdb)
		publisher = journal.NewRedisPublisher(rdb)

	case JournalAMQP:
		p, err := journal.NewAMQPPublisher(app.config.AMQP.URL)
		if err != nil {
			return err
		}

		app.closers = append(app.closers, p)
		publisher = p

	default:
		return nil
	}

	app.journal = journal.New(publisher, app.config.JournalBuffer, app.logger.With("component", "journal"))

	return nil
}

// Close releases the connections opened by SetupJournal.
func (app *Application) Close() {
	for _, c := range app.closers {
		if err := c.Close(); err != nil {
			app.logger.Error("failed to close resource", "error", err)
		}
	}
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to instrument redis client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// displays returns everything a view is sent to after each tick.
func (app *Application) displays() kiosk.Display {
	displays := []kiosk.Display{app.latest}

	if app.config.Display == DisplayTerminal {
		displays = append(displays, display.NewTerminal(os.Stdout))
	}
	if app.metrics != nil {
		displays = append(displays, app.metrics)
	}
	if app.journal != nil {
		displays = append(displays, app.journal)
	}

	return display.NewMulti(displays...)
}

// postEvent is the single entry point for every event source.
func (app *Application) postEvent(evt kiosk.ButtonEvent) bool {
	overwritten := app.mailbox.Post(evt)

	if app.metrics != nil {
		app.metrics.eventPosted(context.Background(), evt, overwritten)
	}

	return overwritten
}

type posterFunc func(kiosk.ButtonEvent) bool

func (f posterFunc) Post(evt kiosk.ButtonEvent) bool {
	return f(evt)
}

// RunKiosk runs the controller loop, and the journal when one is set up,
// until ctx is cancelled.
func (app *Application) RunKiosk(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	if app.journal != nil {
		g.Go(func() error {
			app.journal.Run(gctx)
			return nil
		})
	}

	g.Go(func() error {
		err := app.controller.Run(gctx, app.mailbox, app.displays())
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	return g.Wait()
}

func (app *Application) run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.RunKiosk(gctx)
	})

	if app.config.Input == InputKeyboard {
		source := input.NewSource(posterFunc(app.postEvent), app.config.Debounce, app.logger.With("component", "keyboard"))
		keyboard := input.NewKeyboard(os.Stdin, source)

		g.Go(func() error {
			err := keyboard.Run(gctx)
			if err != nil {
				// the admin surface keeps working without a local keyboard
				app.logger.Warn("keyboard input unavailable", "error", err)
				return nil
			}
			app.logger.Info("keyboard input closed")
			return nil
		})
	}

	g.Go(func() error {
		app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "movies", app.catalog.Size())

		err := srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		app.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
