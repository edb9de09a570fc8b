//-------------------------------------------------------------------------
//
// Siphon Demo Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package schedule implements the sampling schedules that decide when
// trades happen. Each schedule is paired with the price model it was
// designed for.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/rafael-alani/siphon-backend/internal/datagen"
	"github.com/rafael-alani/siphon-backend/internal/pricing"
)

// Window is a run of evenly spaced instants from Start to End inclusive.
type Window struct {
	Label string
	Start time.Time
	End   time.Time
	Step  time.Duration
}

// Count returns floor((End-Start)/Step)+1, or 0 for an empty window.
func (w Window) Count() int {
	if w.Step <= 0 || w.End.Before(w.Start) {
		return 0
	}
	return int(w.End.Sub(w.Start)/w.Step) + 1
}

// Instants returns every sampled instant of the window in order.
func (w Window) Instants() []time.Time {
	n := w.Count()
	out := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, w.Start.Add(time.Duration(i)*w.Step))
	}
	return out
}

// Schedule defines the interface for sampling schedules.
type Schedule interface {
	// Name returns the schedule name.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// Windows returns the sampling windows ending at now, oldest first.
	Windows(now time.Time) []Window

	// TradesPerInstant draws how many trades happen at one instant.
	TradesPerInstant(f *datagen.Faker) int

	// PriceModel returns the price model for a dataset spanning start to end.
	PriceModel(f *datagen.Faker, start, end time.Time) pricing.Model
}

// Span returns the earliest start and latest end over windows.
func Span(windows []Window) (time.Time, time.Time) {
	var start, end time.Time
	for i, w := range windows {
		if i == 0 || w.Start.Before(start) {
			start = w.Start
		}
		if i == 0 || w.End.After(end) {
			end = w.End
		}
	}
	return start, end
}

// TotalInstants returns the number of instants across windows.
func TotalInstants(windows []Window) int {
	total := 0
	for _, w := range windows {
		total += w.Count()
	}
	return total
}

var registry = make(map[string]func(tz *time.Location) Schedule)

// Register adds a schedule constructor to the registry.
func Register(name string, constructor func(tz *time.Location) Schedule) {
	registry[name] = constructor
}

// Get retrieves a schedule by name with the specified timezone.
// The timezone decides which calendar month an instant falls in.
func Get(name, timezone string) (Schedule, error) {
	constructor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown variant: %s", name)
	}

	var loc *time.Location
	var err error

	if timezone == "" || timezone == "Local" {
		loc = time.Local
	} else {
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone: %w", err)
		}
	}

	return constructor(loc), nil
}

// List returns all registered schedule names, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(UniformName, NewUniform)
	Register(TieredName, NewTiered)
}
