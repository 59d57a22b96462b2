package entrypoint

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/openshelf/catalog/internal/config"
	"github.com/openshelf/catalog/internal/database"
	http_controllers "github.com/openshelf/catalog/internal/http"
	"github.com/openshelf/catalog/internal/logging"
)

func Serve(router *gin.Engine, cfg *config.Config, log *logrus.Logger) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Infof("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM within the configured timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infof("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server Shutdown: %v", err)
	}

	log.Info("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log := logging.New(cfg.Logging.Level)
	log.Infof("Starting Catalog v%s", version)

	db, err := database.NewDatabase(cfg.Database, log)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database: %v", err)
		}
	}()

	routerCfg := http_controllers.RouterConfig{
		Database:     db,
		Authors:      db.Authors(),
		Libraries:    db.Libraries(),
		Categories:   db.BookCategories(),
		Languages:    db.Languages(),
		Books:        db.Books(),
		LibraryBooks: db.Libraries(),
		Version:      version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg, log)
}
