package generator

import (
	"errors"
	"fmt"
	"math"

	"github.com/rafael-alani/siphon-backend/internal/catalog"
	"github.com/rafael-alani/siphon-backend/internal/models"
	"github.com/rafael-alani/siphon-backend/internal/pricing"
)

// maxReported caps the number of violations returned by Validate.
const maxReported = 50

// Validate checks a dataset against the catalog and returns every
// violation found, joined, or nil.
func Validate(cat *catalog.Catalog, companies []models.Company, trades []models.Trade) error {
	var errs []error
	report := func(format string, args ...any) {
		if len(errs) < maxReported {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	names := make(map[string]bool, len(companies))
	for _, c := range companies {
		if names[c.Name] {
			report("duplicate company %q", c.Name)
		}
		names[c.Name] = true
		for _, s := range c.Statuses {
			if s.Status != models.Surplus && s.Status != models.Deficit {
				report("company %q: invalid status %q for %s", c.Name, s.Status, s.Commodity)
			}
			if _, err := cat.Commodity(s.Commodity); err != nil {
				report("company %q: %v", c.Name, err)
			}
		}
	}

	ids := make(map[string]bool, len(trades))
	for _, t := range trades {
		if t.ID == "" {
			report("trade with empty id")
		} else if ids[t.ID] {
			report("duplicate trade id %s", t.ID)
		}
		ids[t.ID] = true

		cfg, err := cat.Commodity(t.Commodity)
		if err != nil {
			report("trade %s: %v", t.ID, err)
		} else if t.Amount.MeasurementUnit != cfg.Unit {
			report("trade %s: unit %q, want %q", t.ID, t.Amount.MeasurementUnit, cfg.Unit)
		}

		if t.Amount.Value < pricing.MinAmount || t.Amount.Value >= pricing.MaxAmount {
			report("trade %s: amount %v outside [%d, %d)", t.ID, t.Amount.Value,
				pricing.MinAmount, pricing.MaxAmount)
		}
		if t.Type != models.Buy && t.Type != models.Sell {
			report("trade %s: invalid type %q", t.ID, t.Type)
		}
		if t.Status != models.Completed {
			report("trade %s: status %q, want %q", t.ID, t.Status, models.Completed)
		}
		if t.Price.Currency != models.Currency {
			report("trade %s: currency %q, want %q", t.ID, t.Price.Currency, models.Currency)
		}
		if math.IsNaN(t.Price.Value) || math.IsInf(t.Price.Value, 0) || t.Price.Value <= 0 {
			report("trade %s: price %v is not finite and positive", t.ID, t.Price.Value)
		}
		if t.RequesterCompany == t.FulfillerCompany {
			report("trade %s: requester and fulfiller are both %q", t.ID, t.RequesterCompany)
		}
		if !names[t.RequesterCompany] {
			report("trade %s: unknown requester %q", t.ID, t.RequesterCompany)
		}
		if !names[t.FulfillerCompany] {
			report("trade %s: unknown fulfiller %q", t.ID, t.FulfillerCompany)
		}
		if t.Time.IsZero() {
			report("trade %s: missing time", t.ID)
		}
	}

	return errors.Join(errs...)
}
