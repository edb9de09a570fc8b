package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafael-alani/siphon-backend/internal/models"
)

// MarketSource returns the reference series for a commodity over a frame.
type MarketSource func(commodity string, tf TimeFrame) ([]PricePoint, error)

// SavingsResult summarizes savings against the market reference.
type SavingsResult struct {
	TotalSavings       decimal.Decimal            `json:"total_savings"`
	SavingsByCommodity map[string]decimal.Decimal `json:"savings_by_commodity"`
	Currency           string                     `json:"currency"`
	TimeFrame          TimeFrame                  `json:"timeframe"`
	TradesConsidered   int                        `json:"trades_considered"`
}

// CalculateSavings sums (market - price) × amount over completed trades in
// the frame. When company is not empty only trades it requested or
// fulfilled count.
func CalculateSavings(trades []models.Trade, commodities []string, tf TimeFrame,
	company string, now time.Time, market MarketSource) (*SavingsResult, error) {
	cutoff := now.Add(-tf.Duration())

	var relevant []models.Trade
	for _, t := range trades {
		if t.Status != models.Completed || t.Time.IsZero() || t.Time.Before(cutoff) {
			continue
		}
		if company != "" && t.RequesterCompany != company && t.FulfillerCompany != company {
			continue
		}
		relevant = append(relevant, t)
	}

	result := &SavingsResult{
		TotalSavings:       decimal.Zero,
		SavingsByCommodity: make(map[string]decimal.Decimal, len(commodities)),
		Currency:           models.Currency,
		TimeFrame:          tf,
		TradesConsidered:   len(relevant),
	}
	if len(relevant) > 0 {
		result.Currency = relevant[0].Price.Currency
	}

	for _, commodity := range commodities {
		result.SavingsByCommodity[commodity] = decimal.Zero

		var matching []models.Trade
		for _, t := range relevant {
			if t.Commodity == commodity {
				matching = append(matching, t)
			}
		}
		if len(matching) == 0 {
			continue
		}

		points, err := market(commodity, tf)
		if err != nil {
			return nil, err
		}

		sum := decimal.Zero
		for _, t := range matching {
			marketPrice := decimal.NewFromFloat(nearestPrice(points, t.Time))
			diff := marketPrice.Sub(decimal.NewFromFloat(t.Price.Value))
			sum = sum.Add(diff.Mul(decimal.NewFromFloat(t.Amount.Value)))
		}
		sum = sum.Round(2)
		result.SavingsByCommodity[commodity] = sum
		result.TotalSavings = result.TotalSavings.Add(sum)
	}

	return result, nil
}
