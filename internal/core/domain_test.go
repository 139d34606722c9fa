package core

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func tx(date time.Time, card, category string, amount string) Transaction {
	return Transaction{
		Date:     date,
		Card:     card,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
	}
}

func TestTransactionValidate(t *testing.T) {
	date := time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC)

	if err := tx(date, "*7197", "Food", "100").Validate(); err != nil {
		t.Errorf("valid transaction rejected: %v", err)
	}
	if err := tx(time.Time{}, "*7197", "Food", "100").Validate(); !errors.Is(err, ErrMissingDate) {
		t.Errorf("expected ErrMissingDate, got %v", err)
	}
	if err := tx(date, "*7197", "  ", "100").Validate(); !errors.Is(err, ErrMissingCategory) {
		t.Errorf("expected ErrMissingCategory, got %v", err)
	}
}

func TestCardLastDigits(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"1234567890127197", "7197"},
		{"*7197", "7197"},
		{"91", "91"},
	}
	for _, tt := range tests {
		if got := (Card{Number: tt.number}).LastDigits(); got != tt.want {
			t.Errorf("LastDigits(%q) = %q, want %q", tt.number, got, tt.want)
		}
	}
}

func TestGroupByCard(t *testing.T) {
	date := time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC)
	txns := []Transaction{
		tx(date, "*7197", "Food", "100"),
		tx(date, "*5091", "Transport", "50"),
		tx(date, "", "Food", "10"),
		tx(date, "*7197", "Food", "25"),
	}

	cards := GroupByCard(txns)
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Number != "*7197" || cards[1].Number != "*5091" {
		t.Errorf("cards not in first-appearance order: %v, %v", cards[0].Number, cards[1].Number)
	}
	if len(cards[0].Transactions) != 2 {
		t.Errorf("expected 2 transactions on first card, got %d", len(cards[0].Transactions))
	}
	if len(cards[1].Transactions) != 1 {
		t.Errorf("expected 1 transaction on second card, got %d", len(cards[1].Transactions))
	}
}

func TestGroupByCardEmpty(t *testing.T) {
	if cards := GroupByCard(nil); len(cards) != 0 {
		t.Errorf("expected no cards, got %d", len(cards))
	}
}
