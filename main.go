package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-site/config"
	"portfolio-site/routes"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Printf("✅ Database connection established (%s) and migrations applied.", cfg.DBDriver)

	handlers := routes.NewHandlers(cfg, db)
	if err := handlers.Files.EnsureDirs(); err != nil {
		log.Fatalf("❌ Upload directories: %v", err)
	}

	router, err := routes.SetupRouter(handlers, cfg)
	if err != nil {
		log.Fatalf("❌ Router setup failed: %v", err)
	}

	// cancelled on shutdown so open stats streams return
	baseCtx, stopStreams := context.WithCancel(context.Background())
	defer stopStreams()

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// no WriteTimeout: /admin/stream-stats stays open until the client leaves
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	stopStreams()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("✅ Server stopped gracefully")
}
