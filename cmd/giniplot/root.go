package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"giniplot/internal/config"
	"giniplot/internal/fetchers"
	"giniplot/internal/logger"
	"giniplot/internal/pipeline"
	"giniplot/internal/reports"
	"giniplot/internal/storage"
	"giniplot/internal/transform"

	"github.com/spf13/cobra"
)

// newRootCmd builds the giniplot command reading answers from in and writing prompts to out
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var answers presetAnswers

	cmd := &cobra.Command{
		Use:   "giniplot",
		Short: "Chart the World Bank Gini index for a country",
		Long: `giniplot fetches the Gini index (SI.POV.GINI) for one country from the
World Bank API, fills gaps between known years and renders a line chart.

Missing answers are prompted for on stdin.

Example usage:
  giniplot                                  # prompt for everything
  giniplot --country USA --start 2000 --end 2020`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			answers.hasStart = cmd.Flags().Changed("start")
			answers.hasEnd = cmd.Flags().Changed("end")
			return run(cmd.Context(), in, out, answers)
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.Flags().StringVarP(&answers.country, "country", "c", "", "ISO3 country code, e.g. USA")
	cmd.Flags().IntVarP(&answers.start, "start", "s", 0, "first year of the range")
	cmd.Flags().IntVarP(&answers.end, "end", "e", 0, "last year of the range")

	return cmd
}

func run(parent context.Context, in io.Reader, out io.Writer, answers presetAnswers) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	log := logger.Component("main")

	query, err := promptQuery(in, out, answers)
	if err != nil {
		return err
	}

	store, err := storage.NewStorageClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	version := config.GetVersion()
	fetcher := fetchers.NewWorldBankFetcher(fetchers.Options{
		BaseURL:       cfg.BaseURL,
		IndicatorCode: cfg.IndicatorCode,
		Timeout:       cfg.HTTPTimeout,
		UserAgent:     "giniplot/" + version,
	})
	publisher := reports.NewPublisher(store, reports.Options{
		Theme:       cfg.ChartTheme,
		Version:     version,
		OpenBrowser: cfg.OpenBrowser,
		Out:         out,
	})

	log.Debug("Configuration loaded", logger.Fields{
		"base_url":     cfg.BaseURL,
		"storage_mode": cfg.StorageMode,
		"version":      version,
	})

	_, err = pipeline.New(fetcher, transform.NewTransformer(), publisher).Run(ctx, query)
	return err
}
