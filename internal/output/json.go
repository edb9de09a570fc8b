package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rafael-alani/siphon-backend/internal/models"
)

// JSONWriter writes pretty-printed JSON documents.
type JSONWriter struct{}

func (w *JSONWriter) Name() string {
	return "json"
}

func (w *JSONWriter) Extension() string {
	return ".json"
}

func (w *JSONWriter) WriteCompanies(path string, companies []models.Company) error {
	if companies == nil {
		companies = []models.Company{}
	}
	return writeJSON(path, companies)
}

func (w *JSONWriter) WriteTrades(path string, trades []models.Trade) error {
	if trades == nil {
		trades = []models.Trade{}
	}
	return writeJSON(path, trades)
}

func writeJSON(path string, v any) error {
	return writeAtomic(path, func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode %s: %w", path, err)
		}
		return nil
	})
}

// ReadCompanies reads a company roster written by JSONWriter.
func ReadCompanies(path string) ([]models.Company, error) {
	var companies []models.Company
	if err := readJSON(path, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// ReadTrades reads a trade list written by JSONWriter.
func ReadTrades(path string) ([]models.Trade, error) {
	var trades []models.Trade
	if err := readJSON(path, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

func readJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
