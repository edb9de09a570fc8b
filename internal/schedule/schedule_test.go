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
	"testing"
	"time"

	"github.com/rafael-alani/siphon-backend/internal/datagen"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		schedule  string
		timezone  string
		wantError bool
	}{
		{"uniform", "uniform", "Local", false},
		{"tiered", "tiered", "UTC", false},
		{"tiered in Europe", "tiered", "Europe/Amsterdam", false},
		{"invalid schedule", "invalid", "Local", true},
		{"empty schedule", "", "Local", true},
		{"invalid timezone", "tiered", "Mars/Olympus", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Get(tt.schedule, tt.timezone)
			if tt.wantError {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Name() != tt.schedule {
				t.Errorf("Name() = %q, want %q", s.Name(), tt.schedule)
			}
			if s.Description() == "" {
				t.Error("Description should not be empty")
			}
		})
	}
}

func TestList(t *testing.T) {
	names := List()
	if len(names) != 2 || names[0] != "tiered" || names[1] != "uniform" {
		t.Errorf("List() = %v, want [tiered uniform]", names)
	}
}

func TestWindowCount(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		w    Window
		want int
	}{
		{"single instant", Window{Start: base, End: base, Step: time.Hour}, 1},
		{"exact multiple", Window{Start: base, End: base.Add(4 * time.Hour), Step: time.Hour}, 5},
		{"partial step", Window{Start: base, End: base.Add(90 * time.Minute), Step: time.Hour}, 2},
		{"reversed", Window{Start: base, End: base.Add(-time.Hour), Step: time.Hour}, 0},
		{"zero step", Window{Start: base, End: base.Add(time.Hour)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.Count(); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
			if got := len(tt.w.Instants()); got != tt.want {
				t.Errorf("len(Instants()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTieredWindows(t *testing.T) {
	s, err := Get("tiered", "UTC")
	if err != nil {
		t.Fatalf("Failed to get schedule: %v", err)
	}

	now := time.Date(2025, 10, 18, 12, 0, 0, 0, time.UTC)
	windows := s.Windows(now)
	if len(windows) != 4 {
		t.Fatalf("Expected 4 windows, got %d", len(windows))
	}

	want := []struct {
		label string
		step  time.Duration
		count int
	}{
		{"year", 24 * time.Hour, 335},
		{"month", 6 * time.Hour, 88},
		{"week", 2 * time.Hour, 84},
		{"day", 30 * time.Minute, 49},
	}
	for i, w := range want {
		if windows[i].Label != w.label {
			t.Errorf("window %d label = %q, want %q", i, windows[i].Label, w.label)
		}
		if windows[i].Step != w.step {
			t.Errorf("%s step = %s, want %s", w.label, windows[i].Step, w.step)
		}
		if got := windows[i].Count(); got != w.count {
			t.Errorf("%s count = %d, want %d", w.label, got, w.count)
		}
	}

	if got := TotalInstants(windows); got != 335+88+84+49 {
		t.Errorf("TotalInstants = %d, want %d", got, 335+88+84+49)
	}

	// Windows are contiguous and disjoint: each ends one step before the
	// next one starts.
	for i := 0; i < len(windows)-1; i++ {
		gap := windows[i+1].Start.Sub(windows[i].End)
		if gap != windows[i].Step {
			t.Errorf("gap between %s and %s = %s, want %s",
				windows[i].Label, windows[i+1].Label, gap, windows[i].Step)
		}
	}

	start, end := Span(windows)
	if !start.Equal(now.AddDate(-1, 0, 0)) {
		t.Errorf("Span start = %s", start)
	}
	if !end.Equal(now) {
		t.Errorf("Span end = %s", end)
	}
}

func TestTieredInstantsAreUnique(t *testing.T) {
	s, _ := Get("tiered", "UTC")
	seen := make(map[int64]bool)
	for _, w := range s.Windows(time.Now()) {
		for _, at := range w.Instants() {
			if seen[at.UnixNano()] {
				t.Fatalf("instant %s sampled twice", at)
			}
			seen[at.UnixNano()] = true
		}
	}
}

func TestUniformWindows(t *testing.T) {
	s, err := Get("uniform", "UTC")
	if err != nil {
		t.Fatalf("Failed to get schedule: %v", err)
	}

	now := time.Date(2025, 10, 18, 12, 0, 0, 0, time.UTC)
	windows := s.Windows(now)
	if len(windows) != 1 {
		t.Fatalf("Expected 1 window, got %d", len(windows))
	}
	// 365 days at 4 hours, both ends included.
	if got := windows[0].Count(); got != 365*6+1 {
		t.Errorf("Count = %d, want %d", got, 365*6+1)
	}
}

func TestTradesPerInstant(t *testing.T) {
	f := datagen.NewFaker()
	uniform, _ := Get("uniform", "UTC")
	tiered, _ := Get("tiered", "UTC")

	seen := make(map[int]bool)
	for i := 0; i < 300; i++ {
		n := uniform.TradesPerInstant(f)
		if n < 1 || n > 3 {
			t.Fatalf("uniform TradesPerInstant = %d", n)
		}
		seen[n] = true
		if got := tiered.TradesPerInstant(f); got != 1 {
			t.Fatalf("tiered TradesPerInstant = %d", got)
		}
	}
	if len(seen) != 3 {
		t.Errorf("uniform TradesPerInstant covered %v", seen)
	}
}

func TestPriceModelPairing(t *testing.T) {
	f := datagen.NewFaker()
	now := time.Now()
	uniform, _ := Get("uniform", "UTC")
	tiered, _ := Get("tiered", "UTC")

	if n := uniform.PriceModel(f, now, now).Name(); n != "seasonal" {
		t.Errorf("uniform price model = %q, want seasonal", n)
	}
	if n := tiered.PriceModel(f, now, now).Name(); n != "trend" {
		t.Errorf("tiered price model = %q, want trend", n)
	}
}

func TestWindowsUseTimezone(t *testing.T) {
	s, _ := Get("tiered", "Asia/Tokyo")
	now := time.Date(2025, 1, 31, 20, 0, 0, 0, time.UTC)
	w := s.Windows(now)
	last := w[len(w)-1]
	if last.End.Location().String() != "Asia/Tokyo" {
		t.Errorf("window location = %s, want Asia/Tokyo", last.End.Location())
	}
	if !last.End.Equal(now) {
		t.Errorf("window end %s does not equal now %s", last.End, now)
	}
}
