package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alex-panda/knuthplass/config"
	"github.com/alex-panda/knuthplass/httpapi"
	"github.com/alex-panda/knuthplass/store"
)

func newServeCmd() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP solve API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			var cache store.Cache
			if cfg.Cache.Enabled {
				cache = store.NewRedisCache(cfg.Cache.Address)
				logger.Info("cache enabled", "address", cfg.Cache.Address)
			}

			var audit *store.AuditLog
			if cfg.Audit.Enabled {
				a, err := store.NewAuditLog(context.Background(), cfg.Audit.URI, cfg.Audit.Database)
				if err != nil {
					return fmt.Errorf("connect audit log: %w", err)
				}
				audit = a
				logger.Info("audit log enabled", "uri", cfg.Audit.URI)
			}

			api := httpapi.NewAPI(cache, audit)
			api.Logger = logger

			server := httpapi.NewServer(addr, api)
			logger.Info("listening", "addr", addr)
			return server.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a knuthplass config file")
	return cmd
}
