package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type (
	// Transaction is a single row of the operations table. The set is
	// immutable once loaded; aggregations receive it as a plain slice.
	Transaction struct {
		Date        time.Time
		Card        string
		Category    string
		Description string
		Amount      decimal.Decimal
	}

	// Card groups the transactions charged to one card number.
	Card struct {
		Number       string
		Transactions []Transaction
	}

	// UserSettings is the user configuration loaded once per run.
	UserSettings struct {
		Currencies []string `json:"user_currencies"`
		Stocks     []string `json:"user_stocks"`
	}
)

var (
	ErrMissingDate     = errors.New("missing operation date")
	ErrMissingCategory = errors.New("missing category")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrMissingColumn   = errors.New("missing required column")
)

func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrMissingCategory
	}
	return nil
}

// LastDigits returns the last four digits of the card number, or the whole
// number when it is shorter than four characters.
func (c Card) LastDigits() string {
	if len(c.Number) <= 4 {
		return c.Number
	}
	return c.Number[len(c.Number)-4:]
}

// GroupByCard splits transactions by card number, preserving the order in
// which each card first appears. Rows without a card number are skipped.
func GroupByCard(txns []Transaction) []Card {
	index := map[string]int{}
	var cards []Card
	for _, t := range txns {
		number := strings.TrimSpace(t.Card)
		if number == "" {
			continue
		}
		i, ok := index[number]
		if !ok {
			i = len(cards)
			index[number] = i
			cards = append(cards, Card{Number: number})
		}
		cards[i].Transactions = append(cards[i].Transactions, t)
	}
	return cards
}

func (s UserSettings) Validate() error {
	for _, c := range s.Currencies {
		if strings.TrimSpace(c) == "" {
			return errors.New("empty currency code in settings")
		}
	}
	for _, t := range s.Stocks {
		if strings.TrimSpace(t) == "" {
			return errors.New("empty stock ticker in settings")
		}
	}
	return nil
}
