package main

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/fixture"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/metrics"
	"github.com/osse101/GildedRose_Go/internal/report"
	"github.com/osse101/GildedRose_Go/internal/shop"
)

const greeting = "OMGHAI!"

// rootOptions holds the flags of the root command
type rootOptions struct {
	Days    int
	Fixture string
	Format  string
	Workers int
	Metrics string
}

// newRootCommand creates the driver command. Flag defaults come from cfg.
func newRootCommand(cfg *config.Config) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gildedrose",
		Short: "Age the Gilded Rose inventory one day at a time",
		Long: "Loads the shop inventory (the classic catalogue or a JSON fixture), " +
			"prints it, then applies one daily update per simulated day and prints the result.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(report.ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, report.ValidFormats)
			}
			if opts.Workers < 1 {
				return fmt.Errorf("invalid workers %d: must be at least 1", opts.Workers)
			}
			if opts.Days < 0 {
				return fmt.Errorf("invalid days %d: must not be negative", opts.Days)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.WithRunID(cmd.Context(), logger.GenerateRunID())
			return run(ctx, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Days, "days", "d", cfg.Days, "number of days to simulate")
	cmd.Flags().StringVarP(&opts.Fixture, "fixture", "f", cfg.FixturePath, "JSON item fixture (default: built-in catalogue)")
	cmd.Flags().StringVar(&opts.Format, "format", report.FormatText, "output format (text|json)")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", cfg.Workers, "goroutines used per daily update")
	cmd.Flags().StringVar(&opts.Metrics, "metrics-file", cfg.MetricsFile, "write Prometheus metrics to this file after the run")

	return cmd
}

func run(ctx context.Context, out io.Writer, opts *rootOptions) error {
	log := logger.FromContext(ctx)

	items, err := loadItems(opts.Fixture)
	if err != nil {
		return err
	}

	write, err := report.ForFormat(opts.Format)
	if err != nil {
		return err
	}

	log.Info("Starting simulation",
		"days", opts.Days,
		"items", len(items),
		"fixture", opts.Fixture,
		"workers", opts.Workers)

	if opts.Format == report.FormatText {
		if _, err := fmt.Fprintln(out, greeting); err != nil {
			return err
		}
	}

	s := shop.NewShop(items)
	for day := 0; day <= opts.Days; day++ {
		if err := write(out, day, s.Items()); err != nil {
			return fmt.Errorf("failed to write day %d: %w", day, err)
		}
		if day == opts.Days {
			break
		}
		if err := advance(ctx, s, opts.Workers); err != nil {
			return fmt.Errorf("failed to advance day %d: %w", day, err)
		}
	}

	if opts.Metrics != "" {
		if err := metrics.WriteTextfile(opts.Metrics); err != nil {
			return err
		}
		log.Debug("Metrics written", "path", opts.Metrics)
	}

	log.Info("Simulation finished", "days", opts.Days)
	return nil
}

func advance(ctx context.Context, s *shop.Shop, workers int) error {
	if workers > 1 {
		return s.UpdateQualityConcurrent(ctx, workers)
	}
	return s.UpdateQuality(ctx)
}

func loadItems(path string) ([]*domain.Item, error) {
	if path == "" {
		return fixture.Default(), nil
	}
	return fixture.NewLoader().Load(path)
}
