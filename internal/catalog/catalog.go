//-------------------------------------------------------------------------
//
// Siphon Demo Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package catalog holds the fixed company roster and commodity table.
package catalog

import (
	"fmt"

	"github.com/rafael-alani/siphon-backend/internal/models"
)

// Catalog is the static reference data a dataset is generated from.
type Catalog struct {
	companies   []models.Company
	commodities []models.CommodityConfig
	byName      map[string]models.CommodityConfig
}

// New builds a catalog from the given companies and commodities.
// Commodity order is preserved; it drives the uniform commodity draw.
func New(companies []models.Company, commodities []models.CommodityConfig) (*Catalog, error) {
	if len(companies) < 2 {
		return nil, fmt.Errorf("at least two companies are required, got %d", len(companies))
	}
	if len(commodities) == 0 {
		return nil, fmt.Errorf("at least one commodity is required")
	}

	seen := make(map[string]bool, len(companies))
	for _, c := range companies {
		if seen[c.Name] {
			return nil, fmt.Errorf("duplicate company name: %s", c.Name)
		}
		seen[c.Name] = true
	}

	byName := make(map[string]models.CommodityConfig, len(commodities))
	for _, cc := range commodities {
		if _, ok := byName[cc.Name]; ok {
			return nil, fmt.Errorf("duplicate commodity: %s", cc.Name)
		}
		byName[cc.Name] = cc
	}

	return &Catalog{
		companies:   companies,
		commodities: commodities,
		byName:      byName,
	}, nil
}

// Default returns the demo roster.
func Default() *Catalog {
	c, err := New(DefaultCompanies(), DefaultCommodities())
	if err != nil {
		panic(err)
	}
	return c
}

// Companies returns the company roster.
func (c *Catalog) Companies() []models.Company {
	return c.companies
}

// Commodities returns the commodity table in declaration order.
func (c *Catalog) Commodities() []models.CommodityConfig {
	return c.commodities
}

// CommodityNames returns the commodity names in declaration order.
func (c *Catalog) CommodityNames() []string {
	names := make([]string, 0, len(c.commodities))
	for _, cc := range c.commodities {
		names = append(names, cc.Name)
	}
	return names
}

// Commodity looks up a commodity by name.
func (c *Catalog) Commodity(name string) (models.CommodityConfig, error) {
	cc, ok := c.byName[name]
	if !ok {
		return models.CommodityConfig{}, fmt.Errorf("unknown commodity: %s", name)
	}
	return cc, nil
}

// HasCompany reports whether name is in the roster.
func (c *Catalog) HasCompany(name string) bool {
	for _, co := range c.companies {
		if co.Name == name {
			return true
		}
	}
	return false
}
