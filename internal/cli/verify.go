package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafael-alani/siphon-backend/internal/catalog"
	"github.com/rafael-alani/siphon-backend/internal/generator"
	"github.com/rafael-alani/siphon-backend/internal/logging"
	"github.com/rafael-alani/siphon-backend/internal/models"
	"github.com/rafael-alani/siphon-backend/internal/output"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Load the dataset documents back and check them",
	Long: `Read the JSON company roster and trade list, and check that every
company and trade is well formed: known commodities and companies, amounts
in range, positive prices, and distinct counterparties.

Example:
  siphon-seed verify --output-dir ./demo`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateRead(); err != nil {
		return err
	}

	companies, trades, err := loadDataset()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loaded %d companies\n", len(companies))
	fmt.Fprintf(out, "Loaded %d historical trades\n", len(trades))

	if err := generator.Validate(catalog.Default(), companies, trades); err != nil {
		return fmt.Errorf("dataset is invalid:\n%w", err)
	}

	logging.Info().Msg("Dataset is valid")
	return nil
}

// loadDataset reads both JSON documents named by the config.
func loadDataset() ([]models.Company, []models.Trade, error) {
	paths, err := datasetPaths()
	if err != nil {
		return nil, nil, err
	}

	companies, err := output.ReadCompanies(paths.Companies)
	if err != nil {
		return nil, nil, err
	}
	trades, err := output.ReadTrades(paths.Trades)
	if err != nil {
		return nil, nil, err
	}

	logging.Debug().
		Str("companies", paths.Companies).
		Str("trades", paths.Trades).
		Msg("Loaded dataset")

	return companies, trades, nil
}
