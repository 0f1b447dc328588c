package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/sicko7947/claimflow/engine"
	"github.com/sicko7947/claimflow/identity"
	"github.com/sicko7947/claimflow/server"
)

// serveCmd starts the HTTP dispatcher
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the claim HTTP service",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides server.address)")
	serveCmd.Flags().String("backend", "", "claim store backend: memory, dynamodb, sqlite, redis")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Log, os.Stdout)
	ctx := cmd.Context()

	claimStore, closeStore, err := openStore(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error().Err(err).Msg("Failed to close claim store")
		}
	}()

	validator, err := identity.NewValidator(cfg.Identity)
	if err != nil {
		return err
	}

	engineOpts := []engine.EngineOption{engine.WithLogger(logger)}
	serverOpts := []server.Option{
		server.WithLogger(logger),
		server.WithRateLimit(cfg.RateLimit),
	}

	if cfg.Server.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics, err := engine.NewMetrics(reg)
		if err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
		engineOpts = append(engineOpts, engine.WithMetrics(metrics))
		serverOpts = append(serverOpts, server.WithMetrics(reg))
	}

	eng := engine.NewEngine(claimStore, validator, engineOpts...)
	srv := server.New(eng, serverOpts...)

	logger.Info().
		Str("backend", string(cfg.Store.Backend)).
		Str("identity_format", string(cfg.Identity.Format)).
		Msg("Claim engine initialized successfully")

	// Start server in a goroutine
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- srv.Listen(cfg.Server.Address)
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		return fmt.Errorf("http server: %w", err)
	case <-quit:
	}

	logger.Info().Msg("Shutting down server...")

	if err := srv.Shutdown(cfg.Server.ShutdownTimeout); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server stopped")
	return nil
}
