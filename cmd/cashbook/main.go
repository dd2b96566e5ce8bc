// Command cashbook is the command-line client for the cashbook identity
// core. It manages the device-local account session: registration, online
// and offline login, logout, profile edits, and session status.
//
// Usage:
//
//	cashbook [global flags] <command> [command flags]
//
// Global flags are the configuration flags (-a, -d, -c, ...); commands are
// listed in the help output.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/moneytrackultra/go-cashbook/internal/client"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cashbook: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	if err = run(ctx, app, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "cashbook: %v\n", err)
		os.Exit(1)
	}
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
