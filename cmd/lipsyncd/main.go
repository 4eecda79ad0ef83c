// lipsyncd - viseme timeline service for the desktop partner avatar
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/raspverry/desktop-partner/internal/aligner"
	"github.com/raspverry/desktop-partner/internal/config"
	"github.com/raspverry/desktop-partner/internal/lipsync"
	"github.com/raspverry/desktop-partner/internal/logging"
	"github.com/raspverry/desktop-partner/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: ~/.desktop-partner/config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(&logging.Config{
		LogDir:  cfg.Logging.LogDir,
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	rhubarb := aligner.NewRhubarb(logger.Logger, &aligner.RhubarbConfig{
		BinaryPath: cfg.Aligner.BinaryPath,
		WorkDir:    cfg.Aligner.WorkDir,
		Timeout:    cfg.Aligner.Timeout,
	})
	engine := lipsync.NewEngine(rhubarb, logger.Logger)
	srv := server.New(cfg, engine, logger.Logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	logger.Info().Int("port", cfg.Server.Port).Msg("Lipsync service started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")
	case err := <-errCh:
		logger.Error().Err(err).Msg("Server stopped unexpectedly")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Shutdown failed")
	}
}
