package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scrawlhq/scrawl/internal/database"
	"github.com/scrawlhq/scrawl/internal/logging"
	"github.com/scrawlhq/scrawl/internal/server"
)

func main() {
	port := os.Getenv("SCRAWL_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("SCRAWL_DB_PATH")
	if dbPath == "" {
		dbPath = "scrawl.db"
	}

	jwtSecret := os.Getenv("SCRAWL_JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("SCRAWL_JWT_SECRET must be set")
	}

	logger := logging.Setup(os.Getenv("SCRAWL_LOG_LEVEL"))

	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	srv := server.New(db, jwtSecret, logger)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("scrawl listening", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
