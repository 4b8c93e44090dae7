package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/KevinDaniel18/cowork-central/internal/config"
	"github.com/KevinDaniel18/cowork-central/internal/events"
	"github.com/KevinDaniel18/cowork-central/internal/handler"
	"github.com/KevinDaniel18/cowork-central/internal/kafka"
	"github.com/KevinDaniel18/cowork-central/internal/lock"
	"github.com/KevinDaniel18/cowork-central/internal/metrics"
	"github.com/KevinDaniel18/cowork-central/internal/middleware"
	"github.com/KevinDaniel18/cowork-central/internal/obs"
	"github.com/KevinDaniel18/cowork-central/internal/redisx"
	"github.com/KevinDaniel18/cowork-central/internal/repository"
	"github.com/KevinDaniel18/cowork-central/internal/repository/memory"
	"github.com/KevinDaniel18/cowork-central/internal/router"
	"github.com/KevinDaniel18/cowork-central/internal/scheduler"
	"github.com/KevinDaniel18/cowork-central/internal/service"
	"github.com/KevinDaniel18/cowork-central/internal/service/ports"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	appName       = "cowork-central"
	migrationsDir = "migrations"
)

type App struct {
	cfg        *config.Config
	version    string
	log        logger.Logger
	db         *dbpg.DB
	rdb        *redis.Client
	producer   *kafka.Producer
	tracerStop func(context.Context) error
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config, version string) (*App, error) {
	app := &App{cfg: cfg, version: version}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initTracing(); err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	metrics.Register()

	if cfg.Storage.Driver == config.StoragePostgres {
		if err = app.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}

		if err = app.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
	}

	if cfg.NeedsRedis() {
		if err = app.initRedis(); err != nil {
			return nil, fmt.Errorf("init redis: %w", err)
		}
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initTracing() error {
	stop, err := obs.InitTracer(context.Background(), obs.TracerOptions{
		Endpoint:    a.cfg.Tracing.Endpoint,
		ServiceName: appName,
		Version:     a.version,
		Environment: a.cfg.Tracing.Environment,
		SampleRatio: a.cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return err
	}
	a.tracerStop = stop

	if a.cfg.Tracing.Endpoint != "" {
		a.log.Info("tracing enabled", logger.String("endpoint", a.cfg.Tracing.Endpoint))
	}
	return nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	rdb, err := redisx.New(context.Background(), redisx.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
		Timeout:  a.cfg.Redis.Timeout,
	})
	if err != nil {
		return err
	}

	a.rdb = rdb
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)
	return nil
}

func (a *App) initServices() error {
	var (
		bookingRepo ports.BookingRepo
		spaceRepo   ports.SpaceRepo
	)
	switch a.cfg.Storage.Driver {
	case config.StoragePostgres:
		bookingRepo = repository.NewBookingRepo(a.db, a.cfg.Postgres.LockTimeout)
		spaceRepo = repository.NewSpaceRepo(a.db)
	case config.StorageMemory:
		store := memory.NewStore()
		bookingRepo = memory.NewBookingRepo(store)
		spaceRepo = memory.NewSpaceRepo(store)
		a.log.Warn("using in-memory storage, data is lost on restart")
	default:
		return fmt.Errorf("unknown storage driver %q", a.cfg.Storage.Driver)
	}

	var locker ports.SpaceLocker
	switch a.cfg.Lock.Driver {
	case config.LockRedis:
		locker = redisx.NewLocker(a.rdb, a.cfg.Booking.LockTTL, a.cfg.Booking.LockWait, a.log)
	default:
		locker = lock.NewLocal(a.cfg.Booking.LockWait)
	}

	var cache ports.DayCache
	if a.cfg.Cache.Enabled {
		cache = redisx.NewDayCache(a.rdb, a.log)
	}

	var publisher ports.BookingPublisher
	if a.cfg.Kafka.Enabled() {
		a.producer = kafka.NewProducer(a.cfg.Kafka.Brokers, a.cfg.Kafka.Buffer, a.log)
		// живёт дольше контекста сигналов, чтобы буфер событий успел отправиться
		a.producer.Start(context.Background())
		publisher = events.NewPublisher(a.producer, appName, a.log)
	}

	spaceService := service.NewSpaceService(spaceRepo, a.log)
	availabilityService := service.NewAvailabilityService(spaceRepo, bookingRepo, cache, a.log)
	bookingService := service.NewBookingService(
		bookingRepo,
		spaceRepo,
		locker,
		cache,
		publisher,
		a.log,
		service.BookingOptions{
			InitialStatus: a.cfg.Booking.Status(),
			PendingTTL:    a.cfg.Booking.PendingTTL,
			MaxDuration:   a.cfg.Booking.MaxDuration,
		},
	)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(availabilityService, bookingService, spaceService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.Tracing(appName),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "services initialised",
		logger.String("storage", a.cfg.Storage.Driver),
		logger.String("lock", a.cfg.Lock.Driver),
		logger.String("initial_status", string(a.cfg.Booking.Status())),
		logger.Int("kafka_brokers", len(a.cfg.Kafka.Brokers)),
	)

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		_ = a.shutdown()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	var errs []error

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.producer != nil {
		a.producer.Close()
		a.producer.WaitClosed()
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "kafka producer flushed")
	}

	if err := a.tracerStop(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return errors.Join(errs...)
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
