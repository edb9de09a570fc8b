//-------------------------------------------------------------------------
//
// Siphon Demo Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for siphon-seed.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafael-alani/siphon-backend/internal/catalog"
	"github.com/rafael-alani/siphon-backend/internal/config"
	"github.com/rafael-alani/siphon-backend/internal/logging"
	"github.com/rafael-alani/siphon-backend/internal/output"
	"github.com/rafael-alani/siphon-backend/internal/schedule"
	"github.com/rafael-alani/siphon-backend/pkg/version"
)

var (
	// Global flags
	cfgFile       string
	logLevel      string
	outputDir     string
	companiesFile string
	tradesFile    string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "siphon-seed",
		Short: "Demo dataset generator for the Siphon commodity exchange",
		Long: `siphon-seed generates the demo dataset for the Siphon commodity
exchange: a fixed roster of companies with surplus and deficit positions,
and a year of synthetic historical trades in electricity, hydrogen, heat
and gas.

Run without a subcommand to generate the dataset with default settings.
The two documents can then be verified, analyzed, or imported into
PostgreSQL.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE:          runGenerate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./siphon-seed.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "",
		"directory holding the dataset documents (default: .)")
	rootCmd.PersistentFlags().StringVar(&companiesFile, "companies-file", "",
		"file name of the company roster (default: demo_companies.json)")
	rootCmd.PersistentFlags().StringVar(&tradesFile, "trades-file", "",
		"file name of the trade list (default: demo_trades.json)")

	addGenerateFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(savingsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(commoditiesCmd)
	rootCmd.AddCommand(variantsCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if outputDir != "" {
		cfg.Generate.OutputDir = outputDir
	}
	if companiesFile != "" {
		cfg.Generate.CompaniesFile = companiesFile
	}
	if tradesFile != "" {
		cfg.Generate.TradesFile = tradesFile
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

// datasetPaths resolves the JSON documents named by the config.
func datasetPaths() (output.Paths, error) {
	w, err := output.Get("json")
	if err != nil {
		return output.Paths{}, err
	}
	return output.ResolvePaths(w, cfg.Generate.OutputDir,
		cfg.Generate.CompaniesFile, cfg.Generate.TradesFile), nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Info())
	},
}

var commoditiesCmd = &cobra.Command{
	Use:   "commodities",
	Short: "List tradable commodities",
	Long: `List the commodities trades are drawn from, with the parameters of
their price models.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available commodities:")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %-12s %8s  %-6s %10s %9s %7s\n",
			"NAME", "BASE", "UNIT", "VOLATILITY", "SEASONAL", "TREND")
		for _, c := range catalog.Default().Commodities() {
			fmt.Fprintf(out, "  %-12s %8.2f  %-6s %10.2f %9.2f %7.4f\n",
				c.Name, c.BasePrice, c.Unit, c.Volatility, c.SeasonalImpact, c.TrendFactor)
		}
	},
}

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List available generation variants",
	Long: `List the sampling schedules a dataset can be generated with. Each
variant pairs a set of time windows with a price model.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available variants:")
		fmt.Fprintln(out)
		for _, name := range schedule.List() {
			s, err := schedule.Get(name, "UTC")
			if err != nil {
				continue
			}
			fmt.Fprintf(out, "  %-8s - %s\n", name, s.Description())
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Output formats:")
		for _, name := range output.List() {
			fmt.Fprintf(out, "  %s\n", name)
		}
	},
}
