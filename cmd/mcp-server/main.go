// cmd/mcp-server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mcp-coingecko/internal/app"
	"mcp-coingecko/internal/config"
)

func main() {
	cfg := config.Load()
	a := app.New()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: a.Router,
		// ReadHeaderTimeout only: GET /sse holds the response open
		// indefinitely, a read or write timeout would sever live streams.
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("MCP split server (POST /messages + GET /sse) running on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		// open event streams outlive the grace period; cut them loose
		log.Printf("[WARN] graceful shutdown incomplete: %v", err)
		_ = srv.Close()
	}
	log.Println("server stopped")
}
