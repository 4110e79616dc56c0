package main

import (
	"context"
	"database/sql"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"senthur/internal/commons"
	"senthur/internal/config"
	"senthur/internal/infrastructure/cache"
	"senthur/internal/infrastructure/logger"
	"senthur/internal/infrastructure/mysql"
	"senthur/internal/invoice"
	"senthur/internal/order"
	"senthur/internal/order/usecase"
	"senthur/internal/product"
	productrepo "senthur/internal/product/repository"
	"senthur/internal/report"
	"senthur/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file; environment variables are used when empty")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()

	var (
		store       usecase.OrderStore
		orders      report.OrderLister
		catalogRepo product.Repository
	)

	switch cfg.Store.Driver {
	case config.StoreMySQL:
		db := connectDatabase(ctx, cfg, zapLogger)
		defer db.Close()

		mysqlStore := order.NewMySQLStore(db, cfg, zapLogger)
		store, orders = mysqlStore, mysqlStore
		catalogRepo = productrepo.NewMySQLRepository(db)
	default:
		memoryStore := order.NewMemoryStore()
		store, orders = memoryStore, memoryStore
		seeded, err := productrepo.NewSeededRepository()
		if err != nil {
			zapLogger.Fatal("loading seeded catalog", zap.Error(err))
		}
		catalogRepo = seeded
		zapLogger.Warn("using in-memory order store; orders are lost on restart")
	}

	reportCache := newReportCache(ctx, cfg, zapLogger)
	defer func() {
		if err := reportCache.Close(); err != nil {
			zapLogger.Warn("closing report cache", zap.Error(err))
		}
	}()

	renderer, err := invoice.NewRenderer()
	if err != nil {
		zapLogger.Fatal("loading invoice template", zap.Error(err))
	}

	productCtrl, catalog := product.NewModule(catalogRepo, zapLogger)
	orderCtrl := order.NewModule(store, catalog, reportCache, renderer, cfg, zapLogger)
	reportCtrl := report.NewModule(orders, reportCache, cfg.Redis.ReportCacheTTL, zapLogger)

	router := server.NewRouter(server.Handlers{
		Products: productCtrl,
		Orders:   orderCtrl,
		Reports:  reportCtrl,
	}, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}

func connectDatabase(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) *sql.DB {
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := mysql.NewConnection(pingCtx, cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	zapLogger.Info("database connected", zap.String("host", cfg.Database.Host), zap.String("name", cfg.Database.Name))

	if cfg.Database.Migrate {
		if err := mysql.Migrate(db, zapLogger); err != nil {
			zapLogger.Fatal("running migrations", zap.Error(err))
		}
	}

	return db
}

// reportCacheStore is what both the report service and the booking use case
// need from the cache, plus Close for shutdown.
type reportCacheStore interface {
	report.SummaryCache
	usecase.ReportInvalidator
	io.Closer
}

func newReportCache(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) reportCacheStore {
	if cfg.Redis.Addr == "" {
		return cache.NoopReportCache{}
	}

	redisCache := cache.NewRedisReportCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		zapLogger.Warn("redis unavailable, report cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		_ = redisCache.Close()
		return cache.NoopReportCache{}
	}

	zapLogger.Info("report cache enabled", zap.String("addr", cfg.Redis.Addr))
	return redisCache
}
