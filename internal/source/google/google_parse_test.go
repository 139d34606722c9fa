package google

import (
	"errors"
	"testing"

	"github.com/Anton-Biryukov-Mig/course-work-1/internal/core"
)

func TestParseOperations(t *testing.T) {
	values := [][]interface{}{
		{"Date", "Card", "Category", "Description", "Amount"},
		{"01.01.2022 12:35:05", "*7197", "Food", "Supermarket", "160.89"},
		{"", "", "", "", ""},
		{"02.01.2022 18:06:23", "*7197", "Transport", "Taxi", "64,00"},
	}

	txns, err := parseOperations(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions (blank row skipped), got %d", len(txns))
	}
	if txns[0].Category != "Food" || txns[0].Amount.String() != "160.89" {
		t.Errorf("unexpected first transaction: %+v", txns[0])
	}
	if txns[1].Amount.String() != "64" {
		t.Errorf("decimal comma not handled: %s", txns[1].Amount)
	}
}

func TestParseOperationsHeaderCaseInsensitive(t *testing.T) {
	values := [][]interface{}{
		{"date", "card", "category", "description", "amount"},
		{"01.01.2022 12:35:05", "*7197", "Food", "Supermarket", "1"},
	}
	txns, err := parseOperations(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 1 {
		t.Errorf("expected 1 transaction, got %d", len(txns))
	}
}

func TestParseOperationsMissingHeader(t *testing.T) {
	values := [][]interface{}{
		{"Date", "Card", "Description", "Amount"},
		{"01.01.2022 12:35:05", "*7197", "Supermarket", "1"},
	}
	_, err := parseOperations(values)
	if !errors.Is(err, core.ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}
}

func TestParseOperationsEmpty(t *testing.T) {
	txns, err := parseOperations(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 0 {
		t.Errorf("expected no transactions, got %d", len(txns))
	}
}

func TestParseOperationsBadAmount(t *testing.T) {
	values := [][]interface{}{
		{"Date", "Card", "Category", "Description", "Amount"},
		{"01.01.2022 12:35:05", "*7197", "Food", "Supermarket", "many"},
	}
	if _, err := parseOperations(values); err == nil {
		t.Error("expected error for non-numeric amount")
	}
}
