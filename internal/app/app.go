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
	"go.uber.org/zap"

	"github.com/GlebRadaev/pointpay/internal/config"
	"github.com/GlebRadaev/pointpay/internal/handlers"
	"github.com/GlebRadaev/pointpay/internal/pg"
	"github.com/GlebRadaev/pointpay/internal/repo"
	"github.com/GlebRadaev/pointpay/internal/service"
	"github.com/GlebRadaev/pointpay/internal/tier"
	"github.com/GlebRadaev/pointpay/pkg/auth"
	"github.com/GlebRadaev/pointpay/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	pool *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg, "pointpay")
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	rates, err := tier.Parse(cfg.PointTiers)
	if err != nil {
		zap.L().Error("invalid point tiers", zap.String("tiers", cfg.PointTiers), zap.Error(err))
		return fmt.Errorf("can't parse point tiers: %w", err)
	}
	zap.L().Info("point tiers loaded", zap.Stringer("tiers", rates))

	pool, err := GetPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, rates, jwtService, cfg.TokenTTL)
	a.api = handlers.New(a.srv, jwtService)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// GetPgxpool opens and pings a pool for cfg.Database.
func GetPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
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

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		if a.pool != nil {
			a.pool.Close()
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

	return appErr
}
