// Package file reads the operations table and user settings from local files.
package file

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Anton-Biryukov-Mig/course-work-1/internal/core"
)

// OperationDateLayout matches the export format of the operations table.
const OperationDateLayout = "02.01.2006 15:04:05"

const (
	operationsFile = "operations.csv"
	settingsFile   = "user_settings.json"
)

// requiredColumns of the operations CSV header.
var requiredColumns = []string{"date", "card", "category", "description", "amount"}

// Store reads operations.csv and user_settings.json from one directory.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// ListTransactions parses the operations table. A missing required column, an
// unparseable date or a non-numeric amount is a fatal input error.
func (s *Store) ListTransactions(_ context.Context) ([]core.Transaction, error) {
	path := filepath.Join(s.dir, operationsFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open operations table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read operations table: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", core.ErrMissingColumn, name)
		}
	}

	txns := make([]core.Transaction, 0, len(rows)-1)
	for n, row := range rows[1:] {
		get := func(name string) string {
			i := cols[name]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		date, err := time.Parse(OperationDateLayout, get("date"))
		if err != nil {
			return nil, fmt.Errorf("row %d: parse date %q: %w", n+2, get("date"), core.ErrMissingDate)
		}
		amount, err := core.ParseAmount(get("amount"))
		if err != nil {
			return nil, fmt.Errorf("row %d: amount %q: %w", n+2, get("amount"), err)
		}

		t := core.Transaction{
			Date:        date,
			Card:        get("card"),
			Category:    get("category"),
			Description: get("description"),
			Amount:      amount,
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

// ReadSettings loads the user settings file.
func (s *Store) ReadSettings(_ context.Context) (core.UserSettings, error) {
	path := filepath.Join(s.dir, settingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return core.UserSettings{}, fmt.Errorf("read user settings: %w", err)
	}

	var settings core.UserSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return core.UserSettings{}, fmt.Errorf("parse user settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return core.UserSettings{}, fmt.Errorf("validate user settings: %w", err)
	}
	return settings, nil
}
