//-------------------------------------------------------------------------
//
// Siphon Demo Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package models defines the records that make up the demo dataset.
// JSON keys match the demo files consumed by the trading backend.
package models

import "time"

// ResourceStatus is a company's declared supply state for a commodity.
type ResourceStatus string

const (
	Surplus ResourceStatus = "surplus"
	Deficit ResourceStatus = "deficit"
)

// TradeType is the side of a trade.
type TradeType string

const (
	Buy  TradeType = "buy"
	Sell TradeType = "sell"
)

// TradeStatus is the lifecycle state of a trade.
type TradeStatus string

const (
	Completed TradeStatus = "Completed"
	Pending   TradeStatus = "Pending"
)

// Currency is the only currency prices are quoted in.
const Currency = "EUR"

// Amount is a quantity of a commodity.
type Amount struct {
	Value           float64 `json:"value"`
	MeasurementUnit string  `json:"measurement_unit"`
}

// Price is a monetary value.
type Price struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// StatusEntry is one line of a company's supply sheet.
type StatusEntry struct {
	Commodity string         `json:"commodity"`
	Status    ResourceStatus `json:"status"`
	Amount    Amount         `json:"amount"`
}

// Company is a market participant.
type Company struct {
	Name     string        `json:"name"`
	Location string        `json:"location"`
	Statuses []StatusEntry `json:"statuses"`
}

// Trade is a completed exchange between two companies.
type Trade struct {
	ID               string      `json:"id"`
	Commodity        string      `json:"commodity"`
	Type             TradeType   `json:"type"`
	Amount           Amount      `json:"amount"`
	Price            Price       `json:"price"`
	Status           TradeStatus `json:"status"`
	Time             time.Time   `json:"time"`
	RequesterCompany string      `json:"requester_company"`
	FulfillerCompany string      `json:"fulfiller_company"`
}

// CommodityConfig holds the pricing parameters of a commodity.
type CommodityConfig struct {
	// Name is the commodity name used in trades and statuses.
	Name string

	// BasePrice is the reference price in EUR per unit.
	BasePrice float64

	// Unit is the measurement unit amounts are expressed in.
	Unit string

	// Volatility is the maximum relative random deviation (fraction).
	Volatility float64

	// SeasonalImpact is the amplitude of the seasonal swing (fraction).
	SeasonalImpact float64

	// TrendFactor scales the annual linear growth of the trend model.
	TrendFactor float64
}
