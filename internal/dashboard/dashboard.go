// Package dashboard assembles the summary record shown on the home view:
// greeting, per-card totals, top transactions, currency rates, stock prices.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Anton-Biryukov-Mig/course-work-1/internal/core"
)

// TopLimit is how many of the largest transactions the summary carries.
const TopLimit = 5

// cashbackRate is the flat 1% rebate applied to summed spend.
var cashbackRate = decimal.NewFromFloat(0.01)

type (
	CardSummary struct {
		LastDigits string  `json:"last_digits"`
		TotalSpent float64 `json:"total_spent"`
		Cashback   float64 `json:"cashback"`
	}

	CurrencyRate struct {
		Currency string  `json:"currency"`
		Rate     float64 `json:"rate"`
	}

	StockPrice struct {
		Stock string  `json:"stock"`
		Price float64 `json:"price"`
	}

	// Summary is the assembled dashboard record. Top transactions are emitted
	// with every field value stringified.
	Summary struct {
		Greeting        string              `json:"greeting"`
		Cards           []CardSummary       `json:"cards"`
		TopTransactions []map[string]string `json:"top_transactions"`
		CurrencyRates   []CurrencyRate      `json:"currency_rates"`
		StockPrices     []StockPrice        `json:"stock_prices"`
	}

	// RateFetcher returns the current rate for one currency code.
	RateFetcher interface {
		Rate(ctx context.Context, code string) (float64, error)
	}

	// PriceFetcher returns the current price for one stock ticker.
	PriceFetcher interface {
		Price(ctx context.Context, symbol string) (float64, error)
	}

	// Assembler composes a Summary from transaction data, user settings and
	// the two external quote services.
	Assembler struct {
		Rates  RateFetcher
		Quotes PriceFetcher
	}
)

// Greeting is a step function of the hour of day.
func Greeting(t time.Time) string {
	switch hour := t.Hour(); {
	case hour < 6:
		return "Good night"
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// CardSummaries computes total spend and 1% cashback per card.
// An empty card list yields an empty result.
func CardSummaries(cards []core.Card) []CardSummary {
	out := make([]CardSummary, 0, len(cards))
	for _, c := range cards {
		total := decimal.Zero
		for _, t := range c.Transactions {
			total = total.Add(t.Amount)
		}
		out = append(out, CardSummary{
			LastDigits: c.LastDigits(),
			TotalSpent: total.InexactFloat64(),
			Cashback:   total.Mul(cashbackRate).InexactFloat64(),
		})
	}
	return out
}

// TopTransactions selects the n transactions with the largest amounts,
// breaking ties by original order, and stringifies every field.
func TopTransactions(txns []core.Transaction, n int) []map[string]string {
	sorted := make([]core.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	out := make([]map[string]string, 0, n)
	for _, t := range sorted[:n] {
		out = append(out, map[string]string{
			"date":        t.Date.Format("2006-01-02 15:04:05"),
			"card":        t.Card,
			"category":    t.Category,
			"description": t.Description,
			"amount":      t.Amount.String(),
		})
	}
	return out
}

// CurrencyRates fetches the current rate for each requested code, one entry
// per code in input order. A failed fetch fails the whole batch.
func (a *Assembler) CurrencyRates(ctx context.Context, codes []string) ([]CurrencyRate, error) {
	out := make([]CurrencyRate, 0, len(codes))
	for _, code := range codes {
		rate, err := a.Rates.Rate(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("currency %s: %w", code, err)
		}
		out = append(out, CurrencyRate{Currency: code, Rate: rate})
	}
	return out, nil
}

// StockPrices fetches the current price for each ticker, one entry per ticker
// in input order. Transport failures fail the batch; a missing price field is
// already mapped to 0.0 by the client.
func (a *Assembler) StockPrices(ctx context.Context, symbols []string) ([]StockPrice, error) {
	out := make([]StockPrice, 0, len(symbols))
	for _, symbol := range symbols {
		price, err := a.Quotes.Price(ctx, symbol)
		if err != nil {
			return nil, fmt.Errorf("stock %s: %w", symbol, err)
		}
		out = append(out, StockPrice{Stock: symbol, Price: price})
	}
	return out, nil
}

// Assemble builds the dashboard summary for the given reference time.
func (a *Assembler) Assemble(ctx context.Context, at time.Time, txns []core.Transaction, cards []core.Card, settings core.UserSettings) (Summary, error) {
	rates, err := a.CurrencyRates(ctx, settings.Currencies)
	if err != nil {
		return Summary{}, fmt.Errorf("currency rates: %w", err)
	}
	prices, err := a.StockPrices(ctx, settings.Stocks)
	if err != nil {
		return Summary{}, fmt.Errorf("stock prices: %w", err)
	}

	s := Summary{
		Greeting:        Greeting(at),
		Cards:           CardSummaries(cards),
		TopTransactions: TopTransactions(txns, TopLimit),
		CurrencyRates:   rates,
		StockPrices:     prices,
	}

	slog.InfoContext(ctx, "Dashboard assembled",
		"cards", len(s.Cards),
		"top_transactions", len(s.TopTransactions),
		"currencies", len(s.CurrencyRates),
		"stocks", len(s.StockPrices))
	return s, nil
}
