// Package services holds analyses that sit on top of the raw transaction set.
package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Anton-Biryukov-Mig/course-work-1/internal/core"
)

var cashbackRate = decimal.NewFromFloat(0.01)

// AnalyzeCashbackCategories sums amounts per category for transactions in the
// exact target month and scales each total by 1%. Transactions outside the
// target month are excluded entirely; a transaction inside it with a missing
// date or category is a fatal input error.
func AnalyzeCashbackCategories(txns []core.Transaction, year int, month time.Month) (map[string]float64, error) {
	totals := map[string]decimal.Decimal{}
	for i, t := range txns {
		if t.Date.IsZero() {
			return nil, fmt.Errorf("transaction %d: %w", i, core.ErrMissingDate)
		}
		if t.Date.Year() != year || t.Date.Month() != month {
			continue
		}
		if t.Category == "" {
			return nil, fmt.Errorf("transaction %d: %w", i, core.ErrMissingCategory)
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	cashback := make(map[string]float64, len(totals))
	for category, total := range totals {
		cashback[category] = total.Mul(cashbackRate).InexactFloat64()
	}
	return cashback, nil
}

// RenderCashback serializes the analysis as a single JSON object mapping
// category to cashback amount.
func RenderCashback(cashback map[string]float64) (string, error) {
	data, err := json.Marshal(cashback)
	if err != nil {
		return "", fmt.Errorf("marshal cashback analysis: %w", err)
	}
	return string(data), nil
}
