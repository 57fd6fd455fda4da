package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"itemdesk/internal/config"
	"itemdesk/internal/handlers"
	"itemdesk/internal/logger"
	"itemdesk/internal/repository"
	"itemdesk/internal/repository/db"
	"itemdesk/internal/server"
	"itemdesk/internal/service"
	"itemdesk/internal/session"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// load configs/config.yml and the environment
	cfg, err := config.Load("configs", ".")
	if err != nil {
		logger.New(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.New(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	// open stores
	users, items, err := openStores(cfg.Database)
	if err != nil {
		log.Fatalw("failed to open database", "driver", cfg.Database.Driver, "err", err)
	}
	defer closeStores(log, users, items)

	// wire dependencies
	repos := repository.NewRepository(users, items, cfg.Database.Dialect())
	initCtx, initCancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = repos.Init(initCtx)
	initCancel()
	if err != nil {
		log.Fatalw("failed to init schema", "err", err)
	}

	sessions, err := session.NewManager(session.Options{
		Secret:     cfg.Session.Secret,
		TTL:        cfg.Session.TTL,
		CookieName: cfg.Session.CookieName,
		Secure:     cfg.Session.Secure,
	})
	if err != nil {
		log.Fatalw("invalid session settings", "err", err)
	}

	services := service.NewService(repos)
	appHandler := handlers.NewHandler(services, sessions, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, server.Addr(cfg.Server.Host, cfg.Server.Port), appHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// openStores opens the users and items databases. Equal DSNs share one pool.
func openStores(cfg config.Database) (*sql.DB, *sql.DB, error) {
	ctx := context.Background()
	dialect := cfg.Dialect()

	users, err := db.Open(ctx, dialect, cfg.UsersDSN)
	if err != nil {
		return nil, nil, err
	}
	if cfg.ItemsDSN == cfg.UsersDSN {
		return users, users, nil
	}
	items, err := db.Open(ctx, dialect, cfg.ItemsDSN)
	if err != nil {
		_ = users.Close()
		return nil, nil, err
	}
	return users, items, nil
}

func closeStores(log *logger.Logger, users, items *sql.DB) {
	if err := users.Close(); err != nil {
		log.Errorw("failed to close users store", "err", err)
	}
	if items == users {
		return
	}
	if err := items.Close(); err != nil {
		log.Errorw("failed to close items store", "err", err)
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, addr string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http_listening", "addr", addr)
		if err := srv.Run(addr, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
