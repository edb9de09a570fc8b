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

// TieredName is the registry name of the tiered schedule.
const TieredName = "tiered"

const day = 24 * time.Hour

// Tiered samples recent history densely and older history sparsely.
// Last 24h: every 30 minutes
// Previous 7 days: every 2 hours
// Rest of the last 30 days: every 6 hours
// Rest of the year: daily
// One trade per instant; prices follow the trend model
type Tiered struct {
	tz *time.Location
}

// NewTiered creates a new Tiered schedule.
func NewTiered(tz *time.Location) Schedule {
	return &Tiered{tz: tz}
}

func (s *Tiered) Name() string {
	return TieredName
}

func (s *Tiered) Description() string {
	return "Dense recent history (30m/2h/6h/24h tiers), trending prices with spikes"
}

// Windows ends each older window one step before the next newer one starts,
// so no instant is sampled twice.
func (s *Tiered) Windows(now time.Time) []Window {
	now = now.In(s.tz)

	dayStart := now.Add(-day)
	weekStart := dayStart.Add(-7 * day)
	monthStart := now.Add(-30 * day)
	yearStart := now.AddDate(-1, 0, 0)

	return []Window{
		{Label: "year", Start: yearStart, End: monthStart.Add(-day), Step: day},
		{Label: "month", Start: monthStart, End: weekStart.Add(-6 * time.Hour), Step: 6 * time.Hour},
		{Label: "week", Start: weekStart, End: dayStart.Add(-2 * time.Hour), Step: 2 * time.Hour},
		{Label: "day", Start: dayStart, End: now, Step: 30 * time.Minute},
	}
}

func (s *Tiered) TradesPerInstant(f *datagen.Faker) int {
	return 1
}

func (s *Tiered) PriceModel(f *datagen.Faker, start, end time.Time) pricing.Model {
	return pricing.NewTrend(f, start, end)
}
