//-------------------------------------------------------------------------
//
// Siphon Demo Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package generator builds the demo dataset: the company roster plus a
// year of synthetic trades sampled by a schedule.
package generator

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rafael-alani/siphon-backend/internal/catalog"
	"github.com/rafael-alani/siphon-backend/internal/datagen"
	"github.com/rafael-alani/siphon-backend/internal/logging"
	"github.com/rafael-alani/siphon-backend/internal/models"
	"github.com/rafael-alani/siphon-backend/internal/pricing"
	"github.com/rafael-alani/siphon-backend/internal/schedule"
)

// progressInterval is how often trade generation logs progress.
const progressInterval = 500

// Dataset is the output of one generation run.
type Dataset struct {
	Companies []models.Company
	Trades    []models.Trade
}

// Generator produces trades for a catalog following a schedule.
type Generator struct {
	faker    *datagen.Faker
	catalog  *catalog.Catalog
	schedule schedule.Schedule
}

// New creates a generator. All random draws come from f.
func New(f *datagen.Faker, cat *catalog.Catalog, sched schedule.Schedule) *Generator {
	return &Generator{
		faker:    f,
		catalog:  cat,
		schedule: sched,
	}
}

// Generate builds the dataset with the schedule anchored at now.
func (g *Generator) Generate(now time.Time) (*Dataset, error) {
	windows := g.schedule.Windows(now)
	start, end := schedule.Span(windows)
	model := g.schedule.PriceModel(g.faker, start, end)

	logging.Info().
		Str("variant", g.schedule.Name()).
		Str("price_model", model.Name()).
		Time("start", start).
		Time("end", end).
		Int("instants", schedule.TotalInstants(windows)).
		Msg("Generating historical trades")

	progress := datagen.NewProgressReporter("trades", 0, progressInterval)
	var trades []models.Trade

	for _, w := range windows {
		logging.Debug().
			Str("window", w.Label).
			Str("step", w.Step.String()).
			Int("instants", w.Count()).
			Msg("Sampling window")

		for _, at := range w.Instants() {
			n := g.schedule.TradesPerInstant(g.faker)
			for i := 0; i < n; i++ {
				trade, err := g.trade(model, at)
				if err != nil {
					return nil, err
				}
				trades = append(trades, trade)
			}
			progress.Update(int64(n))
		}
	}
	progress.Done()

	return &Dataset{
		Companies: g.catalog.Companies(),
		Trades:    trades,
	}, nil
}

func (g *Generator) trade(model pricing.Model, at time.Time) (models.Trade, error) {
	commodity := datagen.Choose(g.faker, g.catalog.CommodityNames())
	cfg, err := g.catalog.Commodity(commodity)
	if err != nil {
		return models.Trade{}, err
	}

	requester, fulfiller := g.counterparties()

	id, err := uuid.NewRandomFromReader(g.faker)
	if err != nil {
		return models.Trade{}, fmt.Errorf("failed to generate trade id: %w", err)
	}

	tradeType := models.Sell
	if g.faker.Bool() {
		tradeType = models.Buy
	}

	return models.Trade{
		ID:        id.String(),
		Commodity: commodity,
		Type:      tradeType,
		Amount:    pricing.Amount(g.faker, cfg),
		Price: models.Price{
			Value:    model.Price(cfg, at),
			Currency: models.Currency,
		},
		Status:           models.Completed,
		Time:             at.UTC(),
		RequesterCompany: requester,
		FulfillerCompany: fulfiller,
	}, nil
}

// counterparties draws a requester and redraws the fulfiller until it differs.
func (g *Generator) counterparties() (string, string) {
	companies := g.catalog.Companies()
	r := g.faker.Index(len(companies))
	f := g.faker.Index(len(companies))
	for f == r {
		f = g.faker.Index(len(companies))
	}
	return companies[r].Name, companies[f].Name
}
