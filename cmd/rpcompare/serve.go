package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpgo/pension-fund-comparator/internal/cache"
	"github.com/rpgo/pension-fund-comparator/internal/calculation"
	"github.com/rpgo/pension-fund-comparator/internal/config"
	"github.com/rpgo/pension-fund-comparator/internal/logger"
	"github.com/rpgo/pension-fund-comparator/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		envFile string
		port    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator form and JSON API",
		Long: `Serve the calculator form and JSON API.

Settings come from the environment, optionally seeded from a .env file:
PORT, LOG_LEVEL, LOG_FORMAT, CACHE_BACKEND, CACHE_TTL, REDIS_ADDR,
REDIS_PASSWORD, REDIS_DB, RATE_LIMIT_RPS, RATE_LIMIT_BURST, MAX_HORIZON_YEARS.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadAppConfig(envFile)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			log := logger.Init(cfg.LogLevel, cfg.LogFormat)
			adapter := logger.NewAdapter(log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			engine := calculation.NewProjectionEngine()
			engine.BreakEven = true
			engine.SetLogger(adapter)

			resultCache, closeCache, err := cache.FromConfig(ctx, cfg, adapter)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeCache(); err != nil {
					log.Warn("closing cache", "error", err)
				}
			}()
			if resultCache != nil {
				engine.SetCache(resultCache)
			}
			log.Info("projection cache configured", "backend", cfg.CacheBackend, "ttl", cfg.CacheTTL)

			srv := server.New(engine, server.Options{
				MaxHorizonYears: cfg.MaxHorizonYears,
				RateLimitRPS:    cfg.RateLimitRPS,
				RateLimitBurst:  cfg.RateLimitBurst,
				Defaults:        config.DefaultParameters(),
			})
			return server.ListenAndServe(ctx, srv.NewHTTPServer(cfg.Addr()), 10*time.Second)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}
