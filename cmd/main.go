package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/praneeth00007/backendd/internal/handlers"
	"github.com/praneeth00007/backendd/internal/logger"
	"github.com/praneeth00007/backendd/internal/media"
	"github.com/praneeth00007/backendd/internal/repository"
	"github.com/praneeth00007/backendd/internal/server"
	"github.com/praneeth00007/backendd/internal/service"

	"github.com/spf13/viper"
)

const (
	defaultTokenTTL     = 12 * time.Hour
	defaultWatcherTick  = 1 * time.Hour
	shutdownGracePeriod = 10 * time.Second
)

// @title           Expense Tracker API
// @version         1.0
// @description     Personal finance tracking service with token auth, monthly budgets and limit alerts.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// load config.yml
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger at the configured level
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	tokens := service.NewTokenManager(viper.GetString("jwt.secret"), tokenTTL())

	hub := handlers.NewAlertHub(log)
	notifier := service.MultiNotifier{service.NewLogNotifier(log), hub}
	uploader := media.NewHTTPUploader(viper.GetString("media.upload_url"))

	services := service.NewService(repos, tokens, notifier, uploader, log)
	apiHandler := handlers.NewHandler(services, hub, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// bootstrap admin account
	if err := ensureAdmin(ctx, services); err != nil {
		log.Fatalw("failed to ensure admin account", "err", err)
	}

	// start periodic budget sweep
	go services.Watcher.Run(ctx, watcherTick())

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "expense_tracker.db")
		dbPath = "expense_tracker.db"
	}
	return repository.InitDB(dbPath)
}

func tokenTTL() time.Duration {
	if d := viper.GetDuration("jwt.ttl"); d > 0 {
		return d
	}
	return defaultTokenTTL
}

func watcherTick() time.Duration {
	if d := viper.GetDuration("watcher.interval"); d > 0 {
		return d
	}
	return defaultWatcherTick
}

// ensureAdmin creates the bootstrap ADMIN account on first start.
func ensureAdmin(ctx context.Context, services *service.Service) error {
	return services.EnsureAdmin(ctx,
		viper.GetString("admin.username"),
		viper.GetString("admin.email"),
		viper.GetString("admin.password"),
	)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
