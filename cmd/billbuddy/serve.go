package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/billbuddy/internal/db"
	"github.com/jonathan/billbuddy/internal/drafts"
	"github.com/jonathan/billbuddy/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  "Start an HTTP server that exposes the assistant and draft sessions as REST endpoints. Drafts are kept in PostgreSQL when DATABASE_URL is set and in memory otherwise.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts, port)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides PORT, default 8080)")
	return cmd
}

func runServe(ctx context.Context, opts *rootOptions, port int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := newRuntime(ctx, opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	if port != 0 {
		rt.cfg.Port = port
	}
	if err := rt.cfg.Validate(); err != nil {
		return err
	}

	store, err := openStore(ctx, rt.cfg.DatabaseURL, rt.logger)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := server.New(server.Config{
		Port:       rt.cfg.ListenPort(),
		CORSOrigin: rt.cfg.CORSOrigin,
	}, rt.assistant, store, rt.logger)

	return srv.Start(ctx)
}

// openStore connects to PostgreSQL when a URL is configured and falls back to memory.
func openStore(ctx context.Context, databaseURL string, logger *zap.Logger) (drafts.Store, error) {
	if databaseURL == "" {
		logger.Info("DATABASE_URL not set; draft sessions are kept in memory")
		return drafts.NewMemoryStore(), nil
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to prepare draft storage: %w", err)
	}
	return database, nil
}
