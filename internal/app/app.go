package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/skinbet/internal/config"
	"github.com/GlebRadaev/skinbet/internal/floatcache"
	"github.com/GlebRadaev/skinbet/internal/handlers"
	"github.com/GlebRadaev/skinbet/internal/ingest"
	"github.com/GlebRadaev/skinbet/internal/notify"
	"github.com/GlebRadaev/skinbet/internal/pg"
	"github.com/GlebRadaev/skinbet/internal/redisstore"
	"github.com/GlebRadaev/skinbet/internal/repo"
	"github.com/GlebRadaev/skinbet/internal/service"
	"github.com/GlebRadaev/skinbet/pkg/auth"
	"github.com/GlebRadaev/skinbet/pkg/clients"
	"github.com/GlebRadaev/skinbet/pkg/logger"
	"github.com/GlebRadaev/skinbet/pkg/trading"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	ext  *ingest.Service

	closers []io.Closer

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

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.closers = append(a.closers, closerFunc(pool.Close))
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	rdb, err := redisstore.Connect(ctx, cfg.RedisAddress)
	if err != nil {
		zap.L().Error("redis connect failed: ", zap.Error(err))
		return fmt.Errorf("can't connect to redis: %w", err)
	}
	a.closers = append(a.closers, rdb)

	publisher := a.publisher(cfg)

	tradingClient := trading.NewClient(cfg.TradingAddress, cfg.TradingAPIKey, clients.NewHTTPClient())
	float := floatcache.New(redisstore.NewSlot(rdb), tradingClient, cfg.FloatTTL)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, txManager, tradingClient, float, publisher)
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret), healthCheck(pool, rdb))
	a.ext = ingest.New(
		trading.NewWSStreamer(cfg.StreamAddress, cfg.TradingAPIKey),
		redisstore.NewCursor(rdb),
		a.srv.Ledger,
		float,
		publisher,
	)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startIngestor(ctx)

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

func (a *Application) publisher(cfg *config.Config) notify.Publisher {
	brokers := cfg.Brokers()
	if len(brokers) == 0 {
		zap.L().Info("kafka brokers not configured, ledger notifications disabled")
		return notify.Nop{}
	}

	publisher := notify.NewKafkaPublisher(notify.NewKafkaWriter(brokers, cfg.KafkaTopic))
	a.closers = append(a.closers, publisher)
	zap.L().Info("publishing ledger notifications", zap.Strings("brokers", brokers), zap.String("topic", cfg.KafkaTopic))
	return publisher
}

func healthCheck(pool *pgxpool.Pool, rdb *redis.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		return nil
	}
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

func (a *Application) startIngestor(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.ext.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.errCh <- fmt.Errorf("event ingestor exited with error: %w", err)
		}
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

	a.close()
	return appErr
}

// close releases resources in reverse order of acquisition.
func (a *Application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			zap.L().Warn("failed to release resource", zap.Error(err))
		}
	}
	a.closers = nil
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}
