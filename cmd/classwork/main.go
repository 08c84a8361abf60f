// Command classwork walks through the ownership scenarios of the unique and
// reference handles and logs every construction and destruction.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brickingsoft/owner"
	"go.uber.org/zap"
)

func main() {
	scenario := flag.String("scenario", "all", "scenario to run: "+names())
	verbose := flag.Bool("verbose", false, "development logging")
	timeout := flag.Duration("timeout", 5*time.Second, "deadline for the concurrent scenario")
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err = owner.Startup(); err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	err = run(ctx, logger, *scenario)
	cancel()
	if shutdownErr := owner.ShutdownGracefully(); shutdownErr != nil {
		logger.Warn("shutdown failed", zap.Error(shutdownErr))
	}
	if err != nil {
		logger.Fatal("scenario failed", zap.String("scenario", *scenario), zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
