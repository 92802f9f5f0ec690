package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/matchdrill/internal/infrastructure/config"
	"github.com/remaimber-it/matchdrill/internal/ledger"
	"github.com/remaimber-it/matchdrill/internal/service"
	"github.com/remaimber-it/matchdrill/internal/store"
)

func newRootCmd() *cobra.Command {
	v := config.New()

	root := &cobra.Command{
		Use:           "matchdrill",
		Short:         "Matching-question drills",
		Long:          "matchdrill parses matching-question bank files and reports the statistics gathered while practising them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("db", "", "Database DSN (overrides MATCHDRILL_STORE_DSN)")
	root.PersistentFlags().String("driver", "", "Store driver: sqlite or postgres (overrides MATCHDRILL_STORE_DRIVER)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")
	_ = v.BindPFlag("store_dsn", root.PersistentFlags().Lookup("db"))
	_ = v.BindPFlag("store_driver", root.PersistentFlags().Lookup("driver"))

	open := func(cmd *cobra.Command) (*app, error) {
		cfg, err := config.FromViper(v)
		if err != nil {
			return nil, err
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		return openApp(cmd.Context(), cfg, verbose)
	}

	root.AddCommand(
		newParseCmd(),
		newImportCmd(open),
		newStatsCmd(open),
		newWrongCmd(open),
	)
	return root
}

// app is what the store-backed commands work against.
type app struct {
	store  store.Store
	ledger *ledger.Ledger
	exams  *service.ExamService
}

func (a *app) Close() error {
	return a.store.Close()
}

type opener func(cmd *cobra.Command) (*app, error)

func openApp(ctx context.Context, cfg *config.Config, verbose bool) (*app, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	driver, err := store.ParseDriver(cfg.StoreDriver)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(ctx, driver, cfg.StoreDSN)
	if err != nil {
		return nil, err
	}
	l, err := ledger.Open(ctx, st, logger)
	if err != nil {
		st.Close()
		return nil, err
	}
	return &app{
		store:  st,
		ledger: l,
		exams:  service.NewExamService(st, l, nil, logger),
	}, nil
}
