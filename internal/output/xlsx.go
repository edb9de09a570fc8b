package output

import (
	"fmt"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rafael-alani/siphon-backend/internal/models"
)

// Sheet names used by XLSXWriter.
const (
	CompaniesSheet = "Companies"
	TradesSheet    = "Trades"
)

var (
	companyHeader = []any{"Name", "Location", "Commodity", "Status", "Amount", "Unit"}
	tradeHeader   = []any{"ID", "Time", "Commodity", "Type", "Amount", "Unit",
		"Price", "Currency", "Status", "Requester", "Fulfiller"}
)

// XLSXWriter writes each document as a single-sheet workbook.
// Companies are flattened to one row per status entry.
type XLSXWriter struct{}

func (w *XLSXWriter) Name() string {
	return "xlsx"
}

func (w *XLSXWriter) Extension() string {
	return ".xlsx"
}

func (w *XLSXWriter) WriteCompanies(path string, companies []models.Company) error {
	rows := make([][]any, 0, len(companies)*2)
	for _, c := range companies {
		for _, s := range c.Statuses {
			rows = append(rows, []any{
				c.Name, c.Location, s.Commodity, string(s.Status),
				s.Amount.Value, s.Amount.MeasurementUnit,
			})
		}
	}
	return writeWorkbook(path, CompaniesSheet, companyHeader, rows)
}

func (w *XLSXWriter) WriteTrades(path string, trades []models.Trade) error {
	rows := make([][]any, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, []any{
			t.ID, t.Time.UTC().Format(time.RFC3339), t.Commodity, string(t.Type),
			t.Amount.Value, t.Amount.MeasurementUnit,
			t.Price.Value, t.Price.Currency, string(t.Status),
			t.RequesterCompany, t.FulfillerCompany,
		})
	}
	return writeWorkbook(path, TradesSheet, tradeHeader, rows)
}

func writeWorkbook(path, sheet string, header []any, rows [][]any) error {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet %s: %w", sheet, err)
	}

	if err := book.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := book.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return writeAtomic(path, func(f *os.File) error {
		if err := book.Write(f); err != nil {
			return fmt.Errorf("failed to encode %s: %w", path, err)
		}
		return nil
	})
}
