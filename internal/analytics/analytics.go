//-------------------------------------------------------------------------
//
// Siphon Demo Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package analytics derives price series and savings from a trade list.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafael-alani/siphon-backend/internal/catalog"
	"github.com/rafael-alani/siphon-backend/internal/datagen"
	"github.com/rafael-alani/siphon-backend/internal/models"
)

// BucketSize is the width of one price point.
const BucketSize = 3 * time.Hour

// marketBase is the reference price the synthetic market series swings around.
const marketBase = 100

// marketMultipliers scale the synthetic market series per commodity.
var marketMultipliers = map[string]float64{
	catalog.Electricity: 1.25,
	catalog.Gas:         1.15,
	catalog.Heat:        1.10,
	catalog.Hydrogen:    1.35,
}

// TimeFrame is a look-back window ending now.
type TimeFrame string

const (
	Day   TimeFrame = "24h"
	Week  TimeFrame = "7d"
	Month TimeFrame = "30d"
	Year  TimeFrame = "1y"
)

// TimeFrames lists the supported frames, shortest first.
var TimeFrames = []TimeFrame{Day, Week, Month, Year}

// ParseTimeFrame validates a frame name.
func ParseTimeFrame(s string) (TimeFrame, error) {
	for _, tf := range TimeFrames {
		if string(tf) == s {
			return tf, nil
		}
	}
	return "", fmt.Errorf("unknown timeframe: %s (want 24h, 7d, 30d or 1y)", s)
}

// Duration returns the length of the frame. A year is 365 days.
func (tf TimeFrame) Duration() time.Duration {
	switch tf {
	case Day:
		return 24 * time.Hour
	case Week:
		return 7 * 24 * time.Hour
	case Month:
		return 30 * 24 * time.Hour
	case Year:
		return 365 * 24 * time.Hour
	default:
		return 0
	}
}

// PricePoint is a price at an instant.
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

// AveragePrices returns the mean trade price of a commodity per 3-hour
// bucket over the frame. Buckets start at the earliest matching trade;
// empty buckets are skipped.
func AveragePrices(trades []models.Trade, commodity string, tf TimeFrame, now time.Time) []PricePoint {
	cutoff := now.Add(-tf.Duration())

	var relevant []models.Trade
	for _, t := range trades {
		if t.Commodity == commodity && !t.Time.IsZero() && !t.Time.Before(cutoff) {
			relevant = append(relevant, t)
		}
	}
	if len(relevant) == 0 {
		return nil
	}
	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].Time.Before(relevant[j].Time)
	})

	var points []PricePoint
	i := 0
	for bucket := relevant[0].Time; !bucket.After(now) && i < len(relevant); bucket = bucket.Add(BucketSize) {
		next := bucket.Add(BucketSize)
		sum := decimal.Zero
		n := 0
		for ; i < len(relevant) && relevant[i].Time.Before(next); i++ {
			sum = sum.Add(decimal.NewFromFloat(relevant[i].Price.Value))
			n++
		}
		if n > 0 {
			avg := sum.Div(decimal.NewFromInt(int64(n))).Round(2)
			points = append(points, PricePoint{Timestamp: bucket, Price: avg.InexactFloat64()})
		}
	}
	return points
}

// MarketPrices returns a synthetic reference series for a commodity every
// 3 hours from the start of the frame to now.
func MarketPrices(f *datagen.Faker, commodity string, tf TimeFrame, now time.Time) ([]PricePoint, error) {
	multiplier, ok := marketMultipliers[commodity]
	if !ok {
		return nil, fmt.Errorf("no market reference for commodity: %s", commodity)
	}

	cutoff := now.Add(-tf.Duration())
	var points []PricePoint
	for at := cutoff; !at.After(now); at = at.Add(BucketSize) {
		hours := at.Sub(cutoff).Hours()
		// 12-hour cycle on top of up to 10% noise
		volatility := (1 + 0.1*f.Unit()) * (1 + 0.05*math.Sin(hours*math.Pi/12))
		points = append(points, PricePoint{
			Timestamp: at,
			Price:     marketBase * volatility * multiplier,
		})
	}
	return points, nil
}

// nearestPrice returns the price of the point closest to at, or 0 when
// there are no points.
func nearestPrice(points []PricePoint, at time.Time) float64 {
	best := -1
	var bestGap time.Duration
	for i, p := range points {
		gap := p.Timestamp.Sub(at)
		if gap < 0 {
			gap = -gap
		}
		if best < 0 || gap < bestGap {
			best, bestGap = i, gap
		}
	}
	if best < 0 {
		return 0
	}
	return points[best].Price
}
