package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/repasse/internal/config"
	"github.com/GlebRadaev/repasse/internal/handlers"
	"github.com/GlebRadaev/repasse/internal/pg"
	"github.com/GlebRadaev/repasse/internal/release"
	"github.com/GlebRadaev/repasse/internal/repo"
	"github.com/GlebRadaev/repasse/internal/service"
	"github.com/GlebRadaev/repasse/internal/telemetry"
	"github.com/GlebRadaev/repasse/pkg/lock"
	"github.com/GlebRadaev/repasse/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	releases *release.Service
	overdue  *release.Sweeper

	closers []func()
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.closers = append(a.closers, pool.Close)
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	locker, err := a.getLocker(ctx, cfg)
	if err != nil {
		zap.L().Error("redis connection failed: ", zap.Error(err))
		return fmt.Errorf("can't connect to redis: %w", err)
	}

	metrics := telemetry.New()
	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv, err = service.New(cfg, a.repo, txManager, metrics)
	if err != nil {
		return fmt.Errorf("can't build services: %w", err)
	}
	a.releases = release.New(cfg, a.repo.TransactionRepo, a.srv.TransactionService, metrics)
	a.overdue = release.NewSweeper(cfg, a.srv.PlanService, locker, metrics)
	a.closers = append(a.closers, a.releases.Close)
	a.api = handlers.New(a.srv, a.releases, a.overdue, metrics)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startWorkers(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

// getLocker guards the overdue sweep with redis when it is configured. A
// single instance deployment runs without it.
func (a *Application) getLocker(ctx context.Context, cfg *config.Config) (lock.Locker, error) {
	if cfg.Redis == "" {
		zap.L().Warn("REDIS_ADDRESS not set, overdue sweep runs without a cross-instance lock")
		return lock.Local{}, nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	a.closers = append(a.closers, func() { _ = rdb.Close() })
	return lock.NewRedis(rdb), nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startWorkers(ctx context.Context) {
	a.wg.Add(2)
	go func() {
		defer a.wg.Done()
		a.releases.Run(ctx)
	}()
	go func() {
		defer a.wg.Done()
		a.overdue.Run(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	return appErr
}
