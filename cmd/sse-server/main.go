// cmd/sse-server/main.go
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

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: app.NewSSERouter(),
		// ReadHeaderTimeout only: the event burst must not race a write
		// deadline when the upstream lookup is slow.
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("SSE price server (GET /sse?token_id=...) running on :%s", cfg.Port)
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
		log.Printf("[WARN] graceful shutdown incomplete: %v", err)
		_ = srv.Close()
	}
	log.Println("server stopped")
}
