package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/optirewrite/optirewrite/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start an HTTP server exposing POST /rewrite, POST /analyze, and GET /healthz.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = fileCfg.ListenAddr
	}
	if addr == "" {
		addr = ":8080"
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is harmless

	ctx := context.Background()
	eng, client, err := buildEngine(ctx, logger)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close() //nolint:errcheck // nothing to do on close failure
	}

	srv := server.New(server.Config{
		Addr:   addr,
		Engine: eng,
		Logger: logger,
	})

	return srv.Start()
}
