// Package report computes spending summaries over a trailing 90-day window.
package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Anton-Biryukov-Mig/course-work-1/internal/core"
)

// WindowDays is the length of the trailing window, inclusive of both ends.
const WindowDays = 90

const (
	workdaysLabel = "workdays"
	weekendsLabel = "weekends"
)

type (
	// Row is one grouping bucket with its rounded aggregate.
	Row struct {
		Label  string
		Amount int64
	}

	// Report is the output of one aggregation. KeyField and ValueField name
	// the two columns when the report is serialized by the sink.
	Report struct {
		KeyField   string
		ValueField string
		Rows       []Row
	}
)

// weekdayLabels in canonical Monday-first order.
var weekdayLabels = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// weekdayIndex maps time.Weekday (Sunday=0) to the Monday-first position.
func weekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func inWindow(t core.Transaction, ref time.Time) bool {
	from := ref.AddDate(0, 0, -WindowDays)
	return !t.Date.Before(from) && !t.Date.After(ref)
}

func validate(txns []core.Transaction) error {
	for i, t := range txns {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	return nil
}

// SpendingByCategory sums the amounts of transactions matching category
// within the trailing window ending at ref. An empty result is not an error:
// the report simply has no rows.
func SpendingByCategory(txns []core.Transaction, category string, ref time.Time) (Report, error) {
	r := Report{KeyField: "category", ValueField: "amount"}
	if err := validate(txns); err != nil {
		return r, err
	}
	sum := decimal.Zero
	matched := false
	for _, t := range txns {
		if !inWindow(t, ref) || t.Category != category {
			continue
		}
		sum = sum.Add(t.Amount)
		matched = true
	}
	if matched {
		r.Rows = append(r.Rows, Row{Label: category, Amount: core.RoundWhole(sum)})
	}
	return r, nil
}

// SpendingByWeekday computes the mean amount per weekday within the trailing
// window. Only weekdays present in the filtered set are returned, ordered
// Monday through Sunday; absent weekdays are omitted, not zero-padded.
func SpendingByWeekday(txns []core.Transaction, ref time.Time) (Report, error) {
	r := Report{KeyField: "weekday", ValueField: "amount"}
	if err := validate(txns); err != nil {
		return r, err
	}
	var (
		sums   [7]decimal.Decimal
		counts [7]int64
	)
	for _, t := range txns {
		if !inWindow(t, ref) {
			continue
		}
		i := weekdayIndex(t.Date.Weekday())
		sums[i] = sums[i].Add(t.Amount)
		counts[i]++
	}
	for i := range weekdayLabels {
		if counts[i] == 0 {
			continue
		}
		mean := sums[i].Div(decimal.NewFromInt(counts[i]))
		r.Rows = append(r.Rows, Row{Label: weekdayLabels[i], Amount: core.RoundWhole(mean)})
	}
	return r, nil
}

// SpendingByWorkday computes the mean amount for workdays (Mon-Fri) and
// weekends (Sat-Sun) within the trailing window. The workdays row, when
// present, precedes the weekends row.
func SpendingByWorkday(txns []core.Transaction, ref time.Time) (Report, error) {
	r := Report{KeyField: "day_type", ValueField: "amount"}
	if err := validate(txns); err != nil {
		return r, err
	}
	sums := map[string]decimal.Decimal{}
	counts := map[string]int64{}
	for _, t := range txns {
		if !inWindow(t, ref) {
			continue
		}
		label := workdaysLabel
		if wd := t.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			label = weekendsLabel
		}
		sums[label] = sums[label].Add(t.Amount)
		counts[label]++
	}
	for _, label := range []string{workdaysLabel, weekendsLabel} {
		if counts[label] == 0 {
			continue
		}
		mean := sums[label].Div(decimal.NewFromInt(counts[label]))
		r.Rows = append(r.Rows, Row{Label: label, Amount: core.RoundWhole(mean)})
	}
	return r, nil
}
