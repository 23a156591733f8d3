// @title        Gestor Político API
// @version      1.0
// @description  Cadastro de famílias, localidades e demandas do gabinete.
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gestor-politico/internal/cache"
	"gestor-politico/internal/cep"
	"gestor-politico/internal/config"
	"gestor-politico/internal/database"
	"gestor-politico/internal/geocode"
	"gestor-politico/internal/ibge"
	"gestor-politico/internal/router"
	"gestor-politico/internal/service"
	"gestor-politico/internal/validation"
	"gestor-politico/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "gestor-politico/docs"

	echoSwagger "github.com/swaggo/echo-swagger"
)

var rollback = flag.Bool("rollback", false, "revert every migration and exit")

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackFn      = database.RollbackAll
	seedFn          = service.Seed
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	notifyContext   = signal.NotifyContext
	exitFunc        = os.Exit
)

func newEcho(cfg config.Config, db database.DB, c cache.Cache, wp worker.Pool) *echo.Echo {
	lookup := cep.NewClient(cfg.CEPURL, c)
	geocoding := service.NewGeocoding(db, geocode.NewClient(cfg.GeocodingURL, "", c), wp)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))

	router.Setup(e, db, c, router.Services{
		Families:  service.NewFamilies(db, lookup, geocoding),
		Geocoding: geocoding,
		CEP:       lookup,
		Districts: ibge.NewClient(cfg.IBGEURL),
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return e
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if *rollback {
		if err := rollbackFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("rollback: %w", err)
		}
		slog.Info("migrations reverted")
		return nil
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("redis connection: %w", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	err = seedFn(seedCtx, db)
	cancelSeed()
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount, cfg.WorkerQueue)
	defer wp.Stop()

	e := newEcho(cfg, db, rdb, wp)

	ctx, stop := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, cfg.Addr()) }()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}

func main() {
	flag.Parse()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	if err := run(); err != nil {
		slog.Error("service stopped", "err", err)
		exitFunc(1)
	}
}
