package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/campuspay/internal/config"
	"github.com/GlebRadaev/campuspay/internal/handlers"
	"github.com/GlebRadaev/campuspay/internal/memstore"
	"github.com/GlebRadaev/campuspay/internal/payout"
	"github.com/GlebRadaev/campuspay/internal/pg"
	"github.com/GlebRadaev/campuspay/internal/repo"
	"github.com/GlebRadaev/campuspay/internal/service"
	"github.com/GlebRadaev/campuspay/pkg/auth"
	"github.com/GlebRadaev/campuspay/pkg/clients"
	"github.com/GlebRadaev/campuspay/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	payouts *payout.Service

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
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	if a.repo, err = a.buildRepositories(ctx); err != nil {
		return err
	}

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.srv = service.New(a.repo, cfg, jwtService)
	if cfg.AdminPassword == "" {
		zap.L().Warn("ADMIN_PASSWORD is empty, admin account not provisioned", zap.String("admin", cfg.AdminAddress))
	} else if err := a.srv.ProvisionAdmin(ctx, cfg.AdminPassword); err != nil {
		zap.L().Error("admin provisioning failed: ", zap.Error(err))
		return fmt.Errorf("can't provision admin: %w", err)
	}
	a.api = handlers.New(a.srv, jwtService)

	sink, err := a.buildSink(ctx)
	if err != nil {
		zap.L().Error("payout sink failed: ", zap.Error(err))
		return fmt.Errorf("can't build payout sink: %w", err)
	}
	a.payouts = payout.New(cfg, a.repo.Payouts, sink)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startPayoutDispatcher(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully",
		zap.String("store", cfg.StoreDriver),
		zap.String("payout_sink", cfg.PayoutSink),
	)
	return nil
}

func (a *Application) buildRepositories(ctx context.Context) (*repo.Repositories, error) {
	switch a.cfg.StoreDriver {
	case config.StoreMemory:
		zap.L().Warn("using in-memory store, state is lost on restart")
		return repo.NewMemory(memstore.New()), nil
	case config.StorePostgres:
		pool, err := getPgxpool(ctx, a.cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't build pgx pool: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		if err := pg.RunMigrations(pool); err != nil {
			zap.L().Error("migrations failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't run migrations: %w", err)
		}
		return repo.New(pg.New(pool), pg.NewTXManager(pool)), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", a.cfg.StoreDriver)
	}
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
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) buildSink(ctx context.Context) (payout.Sink, error) {
	var rdb redis.Cmdable
	if a.cfg.PayoutSink == config.SinkRedis {
		client := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddress})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		a.closers = append(a.closers, func() {
			if err := client.Close(); err != nil {
				zap.L().Warn("redis close failed", zap.Error(err))
			}
		})
		rdb = client
	}
	return payout.NewSink(a.cfg, rdb, clients.NewHTTPClient())
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
			zap.L().Warn("http server shutdown failed", zap.Error(err))
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

func (a *Application) startPayoutDispatcher(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.payouts.Start(ctx)
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
