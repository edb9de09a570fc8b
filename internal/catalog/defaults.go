//-------------------------------------------------------------------------
//
// Siphon Demo Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package catalog

import "github.com/rafael-alani/siphon-backend/internal/models"

// Commodity names.
const (
	Electricity = "Electricity"
	Hydrogen    = "Hydrogen"
	Heat        = "Heat"
	Gas         = "Gas"
)

func status(commodity string, s models.ResourceStatus, value float64, unit string) models.StatusEntry {
	return models.StatusEntry{
		Commodity: commodity,
		Status:    s,
		Amount:    models.Amount{Value: value, MeasurementUnit: unit},
	}
}

// DefaultCompanies returns the demo company roster.
func DefaultCompanies() []models.Company {
	return []models.Company{
		{
			Name:     "EcoGrid Solutions",
			Location: "Amsterdam",
			Statuses: []models.StatusEntry{
				status(Electricity, models.Surplus, 500, "MWh"),
				status(Heat, models.Deficit, 200, "GJ"),
			},
		},
		{
			Name:     "GreenHydro Corp",
			Location: "Berlin",
			Statuses: []models.StatusEntry{
				status(Hydrogen, models.Surplus, 300, "kg"),
				status(Electricity, models.Deficit, 400, "MWh"),
			},
		},
		{
			Name:     "SolarTech Industries",
			Location: "Barcelona",
			Statuses: []models.StatusEntry{
				status(Electricity, models.Surplus, 800, "MWh"),
				status(Gas, models.Deficit, 150, "MMBtu"),
			},
		},
		{
			Name:     "WindPower Dynamics",
			Location: "Copenhagen",
			Statuses: []models.StatusEntry{
				status(Electricity, models.Surplus, 600, "MWh"),
				status(Heat, models.Surplus, 250, "GJ"),
			},
		},
		{
			Name:     "ThermalEnergy Plus",
			Location: "Vienna",
			Statuses: []models.StatusEntry{
				status(Heat, models.Surplus, 450, "GJ"),
				status(Gas, models.Surplus, 200, "MMBtu"),
			},
		},
		{
			Name:     "HydrogenTech Solutions",
			Location: "Stockholm",
			Statuses: []models.StatusEntry{
				status(Hydrogen, models.Surplus, 500, "kg"),
				status(Electricity, models.Deficit, 300, "MWh"),
			},
		},
	}
}

// DefaultCommodities returns the commodity pricing table.
func DefaultCommodities() []models.CommodityConfig {
	return []models.CommodityConfig{
		{Name: Electricity, BasePrice: 80, Unit: "MWh", Volatility: 0.15, SeasonalImpact: 0.20, TrendFactor: 0.0020},
		{Name: Hydrogen, BasePrice: 10, Unit: "kg", Volatility: 0.25, SeasonalImpact: 0.10, TrendFactor: 0.0030},
		{Name: Heat, BasePrice: 30, Unit: "GJ", Volatility: 0.10, SeasonalImpact: 0.30, TrendFactor: 0.0010},
		{Name: Gas, BasePrice: 20, Unit: "MMBtu", Volatility: 0.20, SeasonalImpact: 0.25, TrendFactor: 0.0015},
	}
}
