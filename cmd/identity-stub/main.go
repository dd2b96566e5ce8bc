// Command identity-stub runs the in-memory development identity provider.
// It speaks the same HTTP API the cashbook client expects, so a local
// instance is enough to exercise the full online flow without a real
// backend. All state is lost on exit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moneytrackultra/go-cashbook/internal/devserver"
	"github.com/moneytrackultra/go-cashbook/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	addr := flag.String("a", ":8080", "listen address")
	flag.Parse()

	log := logger.NewLogger("identity-stub")

	srv, err := devserver.NewServer(log)
	if err != nil {
		log.Fatal().Err(err).Msg("create dev identity server")
	}

	httpServer := &http.Server{
		Addr:    *addr,
		Handler: srv.Routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", *addr).Msg("identity stub listening")
		if serveErr := httpServer.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			log.Error().Err(serveErr).Msg("http server stopped")
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("identity stub stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
