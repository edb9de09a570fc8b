package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/rafael-alani/siphon-backend/internal/datagen"
	"github.com/rafael-alani/siphon-backend/internal/logging"
	"github.com/rafael-alani/siphon-backend/internal/models"
)

// tradeColumns is the COPY column order for demo_trade.
var tradeColumns = []string{
	"id", "commodity", "trade_type", "amount", "unit", "price", "currency",
	"status", "traded_at", "requester_company", "fulfiller_company",
}

// ImportOptions controls an import.
type ImportOptions struct {
	// DropExisting drops the dataset tables before loading.
	DropExisting bool

	// Source describes where the dataset came from, for metadata.
	Source string
}

// Import loads companies and trades in a single transaction.
func Import(ctx context.Context, db DB, companies []models.Company, trades []models.Trade, opts ImportOptions) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if opts.DropExisting {
		logging.Info().Msg("Dropping existing tables")
		if err := DropSchema(ctx, tx); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
		if err := DropMetadata(ctx, tx); err != nil {
			return fmt.Errorf("failed to drop metadata: %w", err)
		}
	}

	logging.Info().Msg("Creating schema")
	if err := CreateSchema(ctx, tx); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := insertCompanies(ctx, tx, companies); err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}
	if err := copyTrades(ctx, tx, trades); err != nil {
		return fmt.Errorf("failed to load trades: %w", err)
	}
	if err := SaveMetadata(ctx, tx, opts.Source, len(companies), len(trades)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

func insertCompanies(ctx context.Context, db DB, companies []models.Company) error {
	logging.Info().Int("count", len(companies)).Msg("Loading companies")
	for _, c := range companies {
		_, err := db.Exec(ctx, `
            INSERT INTO demo_company (name, location) VALUES ($1, $2)
        `, c.Name, c.Location)
		if err != nil {
			return fmt.Errorf("company %q: %w", c.Name, err)
		}
		for i, s := range c.Statuses {
			_, err := db.Exec(ctx, `
                INSERT INTO demo_company_status (company, position, commodity, status, amount, unit)
                VALUES ($1, $2, $3, $4, $5, $6)
            `, c.Name, i, s.Commodity, string(s.Status), s.Amount.Value, s.Amount.MeasurementUnit)
			if err != nil {
				return fmt.Errorf("company %q status %d: %w", c.Name, i, err)
			}
		}
	}
	return nil
}

func copyTrades(ctx context.Context, db DB, trades []models.Trade) error {
	progress := datagen.NewProgressReporter("demo_trade", int64(len(trades)), 1000)

	rows := make([][]any, 0, len(trades))
	for _, t := range trades {
		id, err := uuid.Parse(t.ID)
		if err != nil {
			return fmt.Errorf("trade id %q: %w", t.ID, err)
		}
		rows = append(rows, []any{
			pgtype.UUID{Bytes: id, Valid: true}, t.Commodity, string(t.Type), t.Amount.Value, t.Amount.MeasurementUnit,
			t.Price.Value, t.Price.Currency, string(t.Status), t.Time,
			t.RequesterCompany, t.FulfillerCompany,
		})
	}

	n, err := db.CopyFrom(ctx, pgx.Identifier{"demo_trade"}, tradeColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return err
	}
	progress.Update(n)
	progress.Done()
	return nil
}
