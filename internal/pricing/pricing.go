//-------------------------------------------------------------------------
//
// Siphon Demo Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package pricing implements the synthetic price and amount models.
package pricing

import (
	"math"
	"time"

	"github.com/rafael-alani/siphon-backend/internal/datagen"
	"github.com/rafael-alani/siphon-backend/internal/models"
)

// Amount bounds, lower inclusive and upper exclusive.
const (
	MinAmount = 50
	MaxAmount = 150
)

// Spike parameters of the trend model.
const (
	SpikeProbability = 0.05
	MaxSpike         = 0.5
)

// Model computes the price of a commodity at an instant.
type Model interface {
	// Name returns the model name.
	Name() string

	// Price returns the price in EUR per unit. No floor or ceiling is applied.
	Price(cfg models.CommodityConfig, t time.Time) float64
}

// Seasonal prices a commodity as base price plus a monthly sine swing
// and uniform noise bounded by the commodity's volatility.
type Seasonal struct {
	faker *datagen.Faker
}

// NewSeasonal creates a seasonal model drawing noise from f.
func NewSeasonal(f *datagen.Faker) *Seasonal {
	return &Seasonal{faker: f}
}

func (m *Seasonal) Name() string {
	return "seasonal"
}

func (m *Seasonal) Price(cfg models.CommodityConfig, t time.Time) float64 {
	// January is 1, so the swing peaks in March and bottoms in September.
	month := float64(t.Month())
	seasonalFactor := math.Sin(month*math.Pi/6) * cfg.SeasonalImpact
	randomFactor := m.faker.Float64(-cfg.Volatility, cfg.Volatility)
	return cfg.BasePrice * (1 + seasonalFactor + randomFactor)
}

// Trend prices a commodity on a linear growth path across a span, with
// occasional upward spikes.
type Trend struct {
	faker *datagen.Faker
	start time.Time
	end   time.Time
}

// NewTrend creates a trend model whose progress runs from start to end.
func NewTrend(f *datagen.Faker, start, end time.Time) *Trend {
	return &Trend{faker: f, start: start, end: end}
}

func (m *Trend) Name() string {
	return "trend"
}

// Progress returns the elapsed fraction of the span at t.
func (m *Trend) Progress(t time.Time) float64 {
	span := m.end.Sub(m.start)
	if span <= 0 {
		return 0
	}
	return float64(t.Sub(m.start)) / float64(span)
}

func (m *Trend) Price(cfg models.CommodityConfig, t time.Time) float64 {
	trend := m.Progress(t) * 100 * cfg.TrendFactor
	price := cfg.BasePrice * (1 + trend)

	if m.faker.Chance(SpikeProbability) {
		price *= 1 + m.faker.Float64(0, MaxSpike)
	}
	return price
}

// Amount draws a whole quantity in [MinAmount, MaxAmount) in the
// commodity's unit.
func Amount(f *datagen.Faker, cfg models.CommodityConfig) models.Amount {
	return models.Amount{
		Value:           float64(f.Int(MinAmount, MaxAmount-1)),
		MeasurementUnit: cfg.Unit,
	}
}
