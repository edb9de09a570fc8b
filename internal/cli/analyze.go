//-------------------------------------------------------------------------
//
// Siphon Demo Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rafael-alani/siphon-backend/internal/analytics"
	"github.com/rafael-alani/siphon-backend/internal/catalog"
	"github.com/rafael-alani/siphon-backend/internal/datagen"
	"github.com/rafael-alani/siphon-backend/internal/logging"
)

var (
	analyzeCommodity string
	analyzeTimeframe string
	savingsCompany   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print average trade prices for a commodity",
	Long: `Average the prices of completed trades for one commodity in 3-hour
buckets over a look-back window ending now.

Example:
  siphon-seed analyze --commodity Electricity --timeframe 30d`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

var savingsCmd = &cobra.Command{
	Use:   "savings",
	Short: "Print savings against the market reference",
	Long: `Compare completed trades against a synthetic market reference price
and sum the savings per commodity. Restrict to one company's trades with
--company.

Example:
  siphon-seed savings --timeframe 1y --company "GreenHydro Corp"`,
	Args: cobra.NoArgs,
	RunE: runSavings,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCommodity, "commodity", "",
		"commodity to analyze (required)")
	analyzeCmd.Flags().StringVar(&analyzeTimeframe, "timeframe", "",
		"look-back window: 24h, 7d, 30d or 1y (default: 7d)")

	savingsCmd.Flags().StringVar(&analyzeTimeframe, "timeframe", "",
		"look-back window: 24h, 7d, 30d or 1y (default: 7d)")
	savingsCmd.Flags().StringVar(&savingsCompany, "company", "",
		"only count trades this company took part in")
}

func applyAnalyzeFlags() (analytics.TimeFrame, error) {
	if analyzeTimeframe != "" {
		cfg.Analyze.Timeframe = analyzeTimeframe
	}
	if err := cfg.ValidateAnalyze(); err != nil {
		return "", err
	}
	return analytics.ParseTimeFrame(cfg.Analyze.Timeframe)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	tf, err := applyAnalyzeFlags()
	if err != nil {
		return err
	}
	if analyzeCommodity == "" {
		return fmt.Errorf("--commodity is required")
	}
	if _, err := catalog.Default().Commodity(analyzeCommodity); err != nil {
		return err
	}

	_, trades, err := loadDataset()
	if err != nil {
		return err
	}

	points := analytics.AveragePrices(trades, analyzeCommodity, tf, now())
	logging.Debug().
		Str("commodity", analyzeCommodity).
		Str("timeframe", string(tf)).
		Int("points", len(points)).
		Msg("Computed average prices")

	out := cmd.OutOrStdout()
	if len(points) == 0 {
		fmt.Fprintf(out, "No completed %s trades in the last %s\n", analyzeCommodity, tf)
		return nil
	}

	fmt.Fprintf(out, "Average %s prices, last %s:\n", analyzeCommodity, tf)
	for _, p := range points {
		fmt.Fprintf(out, "  %s  %10.2f\n", p.Timestamp.UTC().Format(time.RFC3339), p.Price)
	}
	return nil
}

func runSavings(cmd *cobra.Command, args []string) error {
	tf, err := applyAnalyzeFlags()
	if err != nil {
		return err
	}

	cat := catalog.Default()
	if savingsCompany != "" && !cat.HasCompany(savingsCompany) {
		return fmt.Errorf("unknown company: %s", savingsCompany)
	}

	_, trades, err := loadDataset()
	if err != nil {
		return err
	}

	at := now()
	faker := datagen.New(cfg.Generate.Seed)
	market := func(commodity string, tf analytics.TimeFrame) ([]analytics.PricePoint, error) {
		return analytics.MarketPrices(faker, commodity, tf, at)
	}

	result, err := analytics.CalculateSavings(trades, cat.CommodityNames(), tf, savingsCompany, at, market)
	if err != nil {
		return fmt.Errorf("failed to calculate savings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Savings over the last %s (%d trades):\n", tf, result.TradesConsidered)
	for _, name := range cat.CommodityNames() {
		fmt.Fprintf(out, "  %-12s %12s %s\n", name,
			result.SavingsByCommodity[name].StringFixed(2), result.Currency)
	}
	fmt.Fprintf(out, "  %-12s %12s %s\n", "Total", result.TotalSavings.StringFixed(2), result.Currency)
	return nil
}
