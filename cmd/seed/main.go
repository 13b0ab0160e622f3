package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ingemar0720/lead-seeder/config"
	"github.com/ingemar0720/lead-seeder/database"
	"github.com/ingemar0720/lead-seeder/generator"
	seeder "github.com/ingemar0720/lead-seeder/service"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	count      int
	migrate    bool
	migrations string
	seed       int64
	connect    func(ctx context.Context, dsn string) (*sqlx.DB, error)
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "fail to init logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(logger, os.Stdout).ExecuteContext(ctx); err != nil {
		logger.Error("seeding failed", zap.Error(err))
		logger.Sync()
		stop()
		os.Exit(1)
	}
}

func newRootCmd(logger *zap.Logger, stdout io.Writer) *cobra.Command {
	opts := options{connect: seeder.Connect}
	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Insert synthetic leads into the leads table",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				opts.count = cfg.Count
			}
			return run(cmd.Context(), cfg, opts, logger, stdout)
		},
	}
	cmd.Flags().IntVar(&opts.count, "count", seeder.DefaultCount, "number of leads to insert (LEADS_COUNT)")
	cmd.Flags().BoolVar(&opts.migrate, "migrate", false, "create the leads table before seeding")
	cmd.Flags().StringVar(&opts.migrations, "migrations", "file://migrations", "migration source url")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "fake data seed, 0 for random")
	return cmd
}

func run(ctx context.Context, cfg config.Config, opts options, logger *zap.Logger, stdout io.Writer) error {
	if opts.count < 0 {
		return errors.Errorf("count shall not be negative, got %d", opts.count)
	}
	if opts.migrate {
		databaseURL, err := cfg.URL()
		if err != nil {
			return err
		}
		if err := database.Migrate(opts.migrations, databaseURL); err != nil {
			return err
		}
		logger.Info("migrations applied", zap.String("source", opts.migrations))
	}

	db, err := opts.connect(ctx, cfg.DSN())
	if err != nil {
		return err
	}
	session := seeder.NewSession(ctx, db, cfg.PingInterval, logger)
	defer func() {
		if err := session.Close(); err != nil {
			logger.Warn("fail to close session", zap.Error(err))
		}
	}()

	s := seeder.Seeder{
		DB:    session.DB,
		Gen:   generator.New(opts.seed),
		Log:   logger,
		Count: opts.count,
	}
	n, err := s.Run(ctx)
	if err != nil {
		return errors.Wrapf(err, "stopped after %d leads", n)
	}
	fmt.Fprintf(stdout, "Inserted %d leads.\n", n)

	if total, err := database.CountLeads(ctx, session.DB); err != nil {
		logger.Warn("fail to count leads", zap.Error(err))
	} else {
		logger.Info("seeding done", zap.Int("inserted", n), zap.Int64("total", total))
	}
	return nil
}
