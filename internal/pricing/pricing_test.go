//-------------------------------------------------------------------------
//
// Siphon Demo Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package pricing

import (
	"math"
	"testing"
	"time"

	"github.com/rafael-alani/siphon-backend/internal/catalog"
	"github.com/rafael-alani/siphon-backend/internal/datagen"
	"github.com/rafael-alani/siphon-backend/internal/models"
)

func yearOfDays(end time.Time) []time.Time {
	start := end.AddDate(-1, 0, 0)
	var days []time.Time
	for t := start; !t.After(end); t = t.Add(24 * time.Hour) {
		days = append(days, t)
	}
	return days
}

func TestSeasonalPriceBounds(t *testing.T) {
	f := datagen.NewFakerWithSeed(42)
	m := NewSeasonal(f)
	end := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	for _, cfg := range catalog.DefaultCommodities() {
		lo := cfg.BasePrice * (1 - cfg.SeasonalImpact - cfg.Volatility)
		hi := cfg.BasePrice * (1 + cfg.SeasonalImpact + cfg.Volatility)
		for _, day := range yearOfDays(end) {
			p := m.Price(cfg, day)
			if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
				t.Fatalf("%s: price %f at %s is not finite and positive", cfg.Name, p, day)
			}
			if p < lo-1e-9 || p > hi+1e-9 {
				t.Fatalf("%s: price %f at %s outside [%f, %f]", cfg.Name, p, day, lo, hi)
			}
		}
	}
}

func TestSeasonalNoVolatilityIsDeterministic(t *testing.T) {
	cfg := models.CommodityConfig{Name: "Test", BasePrice: 100, SeasonalImpact: 0.5}
	m := NewSeasonal(datagen.NewFaker())

	tests := []struct {
		month time.Month
		want  float64
	}{
		{time.March, 150},     // sin(pi/2) = 1
		{time.September, 50},  // sin(3pi/2) = -1
		{time.June, 100},      // sin(pi) = 0
		{time.December, 100},  // sin(2pi) = 0
		{time.January, 125.0}, // sin(pi/6) = 0.5
	}
	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			got := m.Price(cfg, time.Date(2025, tt.month, 10, 0, 0, 0, 0, time.UTC))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Price in %s = %f, want %f", tt.month, got, tt.want)
			}
		})
	}
}

func TestTrendProgress(t *testing.T) {
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(-1, 0, 0)
	m := NewTrend(datagen.NewFaker(), start, end)

	if p := m.Progress(start); p != 0 {
		t.Errorf("Progress(start) = %f, want 0", p)
	}
	if p := m.Progress(end); p != 1 {
		t.Errorf("Progress(end) = %f, want 1", p)
	}
	mid := start.Add(end.Sub(start) / 2)
	if p := m.Progress(mid); math.Abs(p-0.5) > 1e-9 {
		t.Errorf("Progress(mid) = %f, want 0.5", p)
	}

	empty := NewTrend(datagen.NewFaker(), end, end)
	if p := empty.Progress(end); p != 0 {
		t.Errorf("Progress on empty span = %f, want 0", p)
	}
}

func TestTrendPriceBounds(t *testing.T) {
	end := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	start := end.AddDate(-1, 0, 0)
	m := NewTrend(datagen.NewFakerWithSeed(9), start, end)

	spikes := 0
	total := 0
	for _, cfg := range catalog.DefaultCommodities() {
		for _, day := range yearOfDays(end) {
			base := cfg.BasePrice * (1 + m.Progress(day)*100*cfg.TrendFactor)
			p := m.Price(cfg, day)
			total++
			if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
				t.Fatalf("%s: price %f at %s is not finite and positive", cfg.Name, p, day)
			}
			if p < base-1e-9 || p > base*(1+MaxSpike)+1e-9 {
				t.Fatalf("%s: price %f at %s outside [%f, %f]", cfg.Name, p, day, base, base*(1+MaxSpike))
			}
			if p > base+1e-9 {
				spikes++
			}
		}
	}

	// 5% of ~1460 draws; allow a wide margin.
	if spikes == 0 || spikes > total/5 {
		t.Errorf("Saw %d spikes in %d prices", spikes, total)
	}
}

func TestTrendGrowsOverSpan(t *testing.T) {
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(-1, 0, 0)
	cfg := models.CommodityConfig{Name: "Test", BasePrice: 100, TrendFactor: 0.002}

	// Spikes only push upward, so the minimum of many draws is the trend line.
	m := NewTrend(datagen.NewFakerWithSeed(1), start, end)
	minAt := func(at time.Time) float64 {
		lowest := math.Inf(1)
		for i := 0; i < 200; i++ {
			lowest = math.Min(lowest, m.Price(cfg, at))
		}
		return lowest
	}

	if got := minAt(start); math.Abs(got-100) > 1e-9 {
		t.Errorf("Price at start = %f, want 100", got)
	}
	if got := minAt(end); math.Abs(got-120) > 1e-9 {
		t.Errorf("Price at end = %f, want 120", got)
	}
}

func TestAmount(t *testing.T) {
	f := datagen.NewFaker()
	for _, cfg := range catalog.DefaultCommodities() {
		for i := 0; i < 500; i++ {
			a := Amount(f, cfg)
			if a.Value < MinAmount || a.Value >= MaxAmount {
				t.Fatalf("%s: amount %f out of range", cfg.Name, a.Value)
			}
			if a.Value != math.Trunc(a.Value) {
				t.Fatalf("%s: amount %f is not whole", cfg.Name, a.Value)
			}
			if a.MeasurementUnit != cfg.Unit {
				t.Fatalf("%s: unit %q, want %q", cfg.Name, a.MeasurementUnit, cfg.Unit)
			}
		}
	}
}

func TestModelNames(t *testing.T) {
	f := datagen.NewFaker()
	now := time.Now()
	if n := NewSeasonal(f).Name(); n != "seasonal" {
		t.Errorf("Seasonal name = %q", n)
	}
	if n := NewTrend(f, now, now).Name(); n != "trend" {
		t.Errorf("Trend name = %q", n)
	}
}
