// Copyright (c) 2026 The Oratio Project. All rights reserved.

// Command ingest loads a directory of corpus TSV files into the catalog.
//
// The directory must contain authors*, works*, characters*, and at least
// one speeches* file; an instances* file is optional. With --dry-run the
// whole pipeline executes against an in-memory store, which validates the
// corpus and prints the report without touching PostgreSQL.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/oratiodb/oratio/internal/corpus"
	"github.com/oratiodb/oratio/internal/platform/config"
	"github.com/oratiodb/oratio/internal/platform/migration"
	pgstore "github.com/oratiodb/oratio/internal/platform/postgres"
)

func main() {
	var (
		dryRun      bool
		lenientTags bool
		separator   string
	)

	root := &cobra.Command{
		Use:   "ingest <dir>",
		Short: "Load a directory of corpus TSV files into the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})).With(slog.String("app", "oratio-ingest"))

			opts := corpus.Options{
				Dir:         args[0],
				Separator:   separator,
				LenientTags: lenientTags,
			}

			store, cleanup, err := buildStore(cmd.Context(), dryRun, log)
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := corpus.NewIngestor(store, log, opts).Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), report.Render())
			return nil
		},
	}

	root.Flags().BoolVar(&dryRun, "dry-run", false, "validate the corpus in memory without writing to the database")
	root.Flags().BoolVar(&lenientTags, "lenient-tags", false, "map unknown short tags to \"und\" instead of rejecting the row")
	root.Flags().StringVar(&separator, "separator", corpus.DefaultSeparator, "separator between names in multi-name role cells")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildStore picks the backing store: in-memory for dry runs, PostgreSQL
// (with migrations applied) otherwise.
func buildStore(ctx context.Context, dryRun bool, log *slog.Logger) (corpus.Store, func(), error) {
	if dryRun {
		return corpus.NewMemStore(), func() {}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	return corpus.NewPostgresStore(pool), pool.Close, nil
}
