// cmd/ws-server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mcp-coingecko/internal/config"
	"mcp-coingecko/internal/server"
)

func main() {
	cfg := config.Load()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.NewMux(),
		// After the upgrade handshake the server timeouts no longer apply;
		// only the handshake itself is bounded.
		ReadHeaderTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("WebSocket MCP server listening on :%s", cfg.Port)
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
		// upgraded connections are not waited on; they die with the process
		log.Printf("[WARN] graceful shutdown incomplete: %v", err)
		_ = srv.Close()
	}
	log.Println("server stopped")
}
