package google

import (
	"fmt"
	"strings"
	"time"

	"github.com/Anton-Biryukov-Mig/course-work-1/internal/core"
)

// operationDateLayout matches the sheet's date column format.
const operationDateLayout = "02.01.2006 15:04:05"

// parseOperations converts a values matrix (as returned by the Sheets API)
// into the transaction set. It expects a header row with Date, Card,
// Category, Description and Amount columns in any order.
func parseOperations(values [][]interface{}) ([]core.Transaction, error) {
	if len(values) == 0 {
		return nil, nil
	}

	headers := toStrings(values[0])
	colDate := indexOf(headers, "Date")
	colCard := indexOf(headers, "Card")
	colCategory := indexOf(headers, "Category")
	colDescription := indexOf(headers, "Description")
	colAmount := indexOf(headers, "Amount")
	if colDate == -1 || colCategory == -1 || colAmount == -1 {
		missing := make([]string, 0, 3)
		if colDate == -1 {
			missing = append(missing, "Date")
		}
		if colCategory == -1 {
			missing = append(missing, "Category")
		}
		if colAmount == -1 {
			missing = append(missing, "Amount")
		}
		return nil, fmt.Errorf("%w: %s; got headers=%v", core.ErrMissingColumn, strings.Join(missing, ","), headers)
	}

	txns := make([]core.Transaction, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		row := toStrings(values[i])
		if isEmptyRow(row) {
			continue
		}

		date, err := time.Parse(operationDateLayout, safeGet(row, colDate))
		if err != nil {
			return nil, fmt.Errorf("sheet row %d: parse date %q: %w", i+1, safeGet(row, colDate), core.ErrMissingDate)
		}
		amount, err := core.ParseAmount(safeGet(row, colAmount))
		if err != nil {
			return nil, fmt.Errorf("sheet row %d: amount %q: %w", i+1, safeGet(row, colAmount), err)
		}

		t := core.Transaction{
			Date:        date,
			Card:        safeGet(row, colCard),
			Category:    safeGet(row, colCategory),
			Description: safeGet(row, colDescription),
			Amount:      amount,
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("sheet row %d: %w", i+1, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = strings.TrimSpace(fmt.Sprintf("%v", v))
	}
	return out
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}

func safeGet(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
