package cli

import (
	"context"
	"cpu-scheduler-sim/api"
	"cpu-scheduler-sim/internal/cache"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *opts.config
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			logger := opts.logger

			var resultCache *cache.ResultCache
			if cfg.Cache.Enabled {
				var err error
				resultCache, err = cache.NewResultCache(cfg.Cache.NumCounters, cfg.Cache.MaxCost, logger)
				if err != nil {
					return fmt.Errorf("create result cache: %w", err)
				}
				defer resultCache.Close()
				logger.Debug("result cache initialized", zap.Int64("max_cost", cfg.Cache.MaxCost))
			}

			app := api.NewApp(api.NewSchedulerHandlerImpl(&cfg, resultCache, logger), logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				addr := fmt.Sprintf(":%d", cfg.Port)
				logger.Info("scheduler api listening",
					zap.String("addr", addr),
					zap.Int("round_robin_time_quantum", cfg.RoundRobinTimeQuantum))
				errCh <- app.Listen(addr)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return app.ShutdownWithContext(shutdownCtx)
			}
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides the config file)")
	return cmd
}
