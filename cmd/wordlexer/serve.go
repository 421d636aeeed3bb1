package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wordlexer/internal/analysis"
	"wordlexer/internal/config"
	"wordlexer/internal/logutil"
	"wordlexer/internal/server"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tokenizer over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			logger, err := logutil.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			registry := analysis.NewRegistry()
			if _, err := registry.Get(cfg.Lexer.Splitter); err != nil {
				return errors.Wrap(err, "default splitter")
			}

			logger.Info("starting wordlexer",
				zap.String("version", Version),
				zap.String("addr", cfg.Server.Addr),
				zap.String("splitter", cfg.Lexer.Splitter),
				zap.String("config", configPath))

			gin.SetMode(gin.ReleaseMode)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, registry, logger).Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	return cmd
}

