//-------------------------------------------------------------------------
//
// Siphon Demo Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package schedule

import (
	"time"

	"github.com/rafael-alani/siphon-backend/internal/datagen"
	"github.com/rafael-alani/siphon-backend/internal/pricing"
)

// UniformName is the registry name of the uniform schedule.
const UniformName = "uniform"

// UniformStep is the spacing of the uniform schedule.
const UniformStep = 4 * time.Hour

// Uniform samples the past year at a fixed 4-hour step.
// Each instant carries 1 to 3 trades
// Prices follow the seasonal model
type Uniform struct {
	tz *time.Location
}

// NewUniform creates a new Uniform schedule.
func NewUniform(tz *time.Location) Schedule {
	return &Uniform{tz: tz}
}

func (s *Uniform) Name() string {
	return UniformName
}

func (s *Uniform) Description() string {
	return "Full year every 4 hours, 1-3 trades per step, seasonal prices"
}

func (s *Uniform) Windows(now time.Time) []Window {
	now = now.In(s.tz)
	return []Window{
		{Label: "year", Start: now.AddDate(-1, 0, 0), End: now, Step: UniformStep},
	}
}

func (s *Uniform) TradesPerInstant(f *datagen.Faker) int {
	return f.Int(1, 3)
}

func (s *Uniform) PriceModel(f *datagen.Faker, start, end time.Time) pricing.Model {
	return pricing.NewSeasonal(f)
}
