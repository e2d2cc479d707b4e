package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jaminalder/perfect-tic-tac-toe/internal/config"
	"github.com/jaminalder/perfect-tic-tac-toe/internal/web"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", os.Getenv("TTT_CONFIG"), "Path to a YAML config file")
	listen     = flag.String("listen", listenFromEnv(), "Address to serve on")
)

// listenFromEnv honours PORT when it is set.
func listenFromEnv() string {
	if port, ok := os.LookupEnv("PORT"); ok && port != "" {
		return ":" + port
	}
	return ""
}

func main() {
	flag.Parse()
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	log, err := cfg.Logger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           web.NewServer(log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", zap.String("addr", cfg.Listen))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server failed", zap.Error(err))
	}
}
