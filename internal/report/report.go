// Package report implements the transaction aggregation engine behind
// the dashboard: date-range filtering, income/expense/balance summary,
// per-category expense breakdowns, and a fixed-window daily series.
//
// Every function is a pure function over an in-memory transaction
// slice: no I/O, no shared state, inputs are never mutated, and results
// hold no references into the input. Calls are idempotent and safe to
// run concurrently. Amounts are aggregated with shopspring/decimal so
// financial totals never drift the way IEEE summation can.
package report

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
)

// dayKeyLayout is the bucket key and label format for daily series.
const dayKeyLayout = "2006-01-02"

// Summary holds the three reconciled totals for a transaction set.
// Balance always equals Income minus Expenses; it is derived, never
// stored independently.
type Summary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// CategoryGroup is one expense category's total and share of the
// filtered expense total. Percent is rounded to one decimal place.
type CategoryGroup struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Percent  float64         `json:"percent"`
}

// DailyBucket is one day's accumulated income and expenses, labeled by
// calendar date.
type DailyBucket struct {
	Date     string          `json:"date"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// classify resolves a transaction's kind through the single
// normalization function, so legacy vocabulary rows aggregate the same
// as canonical ones. An unrecognized kind is surfaced rather than
// dropped or defaulted: misclassification corrupts totals.
func classify(t models.Transaction) (models.TransactionKind, error) {
	kind, ok := models.ParseKind(string(t.Kind))
	if !ok {
		return "", apperrors.WithMessage(apperrors.ErrUnclassifiedKind,
			fmt.Sprintf("unrecognized transaction kind %q", t.Kind))
	}
	return kind, nil
}

// FilterByRange retains the transactions whose OccurredOn falls within
// the range, inclusive on both ends. Input order is preserved; an empty
// result is valid, not an error.
func FilterByRange(transactions []models.Transaction, r DateRange) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if r.Contains(t.OccurredOn) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Summarize reduces a transaction set to income, expenses, and balance.
// Classification follows the kind field only; amounts are taken as
// magnitudes to tolerate either a positive-only or any-sign encoding
// upstream. Empty input yields all zeros.
func Summarize(transactions []models.Transaction) (Summary, error) {
	income, expenses := decimal.Zero, decimal.Zero
	for _, t := range transactions {
		kind, err := classify(t)
		if err != nil {
			return Summary{}, err
		}
		switch kind {
		case models.KindIncome:
			income = income.Add(t.Amount.Abs())
		case models.KindExpense:
			expenses = expenses.Add(t.Amount.Abs())
		}
	}
	return Summary{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}, nil
}

// DailySeries groups transactions by calendar day and returns the most
// recent windowSize buckets in chronological order. Day keys are sorted
// ascending before windowing, so the output does not depend on input
// order. Days outside the window are dropped whole, never merged.
func DailySeries(transactions []models.Transaction, windowSize int) ([]DailyBucket, error) {
	if windowSize < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "window size must be at least 1")
	}

	buckets := make(map[string]*DailyBucket)
	for _, t := range transactions {
		kind, err := classify(t)
		if err != nil {
			return nil, err
		}
		key := dateOnly(t.OccurredOn).Format(dayKeyLayout)
		b, ok := buckets[key]
		if !ok {
			b = &DailyBucket{Date: key, Income: decimal.Zero, Expenses: decimal.Zero}
			buckets[key] = b
		}
		switch kind {
		case models.KindIncome:
			b.Income = b.Income.Add(t.Amount.Abs())
		case models.KindExpense:
			b.Expenses = b.Expenses.Add(t.Amount.Abs())
		}
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)

	if len(days) > windowSize {
		days = days[len(days)-windowSize:]
	}

	series := make([]DailyBucket, 0, len(days))
	for _, day := range days {
		series = append(series, *buckets[day])
	}
	return series, nil
}

// GroupExpenses partitions expense transactions by description and
// returns per-category totals annotated with their share of the whole.
// A non-nil settled filter additionally restricts by payment status.
// Descriptions are grouped verbatim: case or whitespace variants are
// distinct categories. Groups come out in first-seen order; a zero
// total short-circuits to an empty list instead of dividing by zero.
func GroupExpenses(transactions []models.Transaction, settled *bool) ([]CategoryGroup, error) {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, t := range transactions {
		kind, err := classify(t)
		if err != nil {
			return nil, err
		}
		if kind != models.KindExpense {
			continue
		}
		if settled != nil && t.IsSettled != *settled {
			continue
		}
		if _, ok := totals[t.Description]; !ok {
			order = append(order, t.Description)
		}
		totals[t.Description] = totals[t.Description].Add(t.Amount.Abs())
	}

	total := decimal.Zero
	for _, sum := range totals {
		total = total.Add(sum)
	}
	if total.IsZero() {
		return []CategoryGroup{}, nil
	}

	hundred := decimal.NewFromInt(100)
	groups := make([]CategoryGroup, 0, len(order))
	for _, category := range order {
		sum := totals[category]
		pct, _ := sum.Div(total).Mul(hundred).Round(1).Float64()
		groups = append(groups, CategoryGroup{
			Category: category,
			Total:    sum,
			Percent:  pct,
		})
	}
	return groups, nil
}
