package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fluxo/internal/models"
	"fluxo/internal/testutil"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func tx(kind models.TransactionKind, amount, description string, occurredOn time.Time, settled bool) models.Transaction {
	return models.Transaction{
		Kind:        kind,
		Amount:      decimal.RequireFromString(amount),
		Description: description,
		OccurredOn:  occurredOn,
		IsSettled:   settled,
	}
}

func mustRange(t *testing.T, from, to time.Time) DateRange {
	t.Helper()
	r, err := NewDateRange(from, to)
	if err != nil {
		t.Fatalf("unexpected range error: %v", err)
	}
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid_range", func(t *testing.T) {
		r, err := NewDateRange(day(1), day(31))
		testutil.AssertNoError(t, err)
		if !r.From().Equal(day(1)) || !r.To().Equal(day(31)) {
			t.Errorf("unexpected bounds: %v - %v", r.From(), r.To())
		}
	})

	t.Run("single_day_range", func(t *testing.T) {
		r, err := NewDateRange(day(5), day(5))
		testutil.AssertNoError(t, err)
		if !r.Contains(day(5)) {
			t.Error("expected single-day range to contain its own day")
		}
	})

	t.Run("inverted_range_rejected", func(t *testing.T) {
		_, err := NewDateRange(day(10), day(9))
		testutil.AssertAppError(t, err, "INVALID_DATE_RANGE")
	})

	t.Run("time_of_day_stripped", func(t *testing.T) {
		// 23:59 on the start day and 00:01 on the end day still form a
		// valid range over the same calendar dates.
		from := time.Date(2024, time.March, 1, 23, 59, 0, 0, time.UTC)
		to := time.Date(2024, time.March, 1, 0, 1, 0, 0, time.UTC)
		r, err := NewDateRange(from, to)
		testutil.AssertNoError(t, err)
		if !r.Contains(day(1)) {
			t.Error("expected normalized range to contain the calendar day")
		}
	})

	t.Run("zone_offset_stripped", func(t *testing.T) {
		zone := time.FixedZone("UTC+5", 5*60*60)
		r := mustRange(t, day(5), day(5))
		// 2024-03-05 00:30 +05:00 is 2024-03-04 19:30 UTC, but the
		// calendar date is still the 5th and must compare equal.
		if !r.Contains(time.Date(2024, time.March, 5, 0, 30, 0, 0, zone)) {
			t.Error("expected boundary date in another zone to be included")
		}
	})
}

func TestFilterByRange(t *testing.T) {
	t.Run("inclusive_on_both_bounds", func(t *testing.T) {
		transactions := []models.Transaction{
			tx(models.KindIncome, "10", "before", day(4), true),
			tx(models.KindIncome, "10", "start", day(5), true),
			tx(models.KindIncome, "10", "middle", day(6), true),
			tx(models.KindIncome, "10", "end", day(7), true),
			tx(models.KindIncome, "10", "after", day(8), true),
		}

		filtered := FilterByRange(transactions, mustRange(t, day(5), day(7)))
		if len(filtered) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(filtered))
		}
		if filtered[0].Description != "start" || filtered[2].Description != "end" {
			t.Errorf("expected boundary transactions included, got %q and %q",
				filtered[0].Description, filtered[2].Description)
		}
	})

	t.Run("preserves_input_order", func(t *testing.T) {
		transactions := []models.Transaction{
			tx(models.KindIncome, "10", "third", day(7), true),
			tx(models.KindIncome, "10", "first", day(5), true),
			tx(models.KindIncome, "10", "second", day(6), true),
		}

		filtered := FilterByRange(transactions, mustRange(t, day(1), day(31)))
		if filtered[0].Description != "third" || filtered[1].Description != "first" {
			t.Error("expected relative input order to be preserved, not sorted")
		}
	})

	t.Run("zone_offset_does_not_shift_boundary", func(t *testing.T) {
		zone := time.FixedZone("UTC-8", -8*60*60)
		transactions := []models.Transaction{
			// 2024-03-05 20:00 -08:00 is 2024-03-06 04:00 UTC. The
			// recorded calendar date is the 5th, so a range ending on
			// the 5th must keep it.
			tx(models.KindIncome, "10", "late evening", time.Date(2024, time.March, 5, 20, 0, 0, 0, zone), true),
		}

		filtered := FilterByRange(transactions, mustRange(t, day(1), day(5)))
		if len(filtered) != 1 {
			t.Fatalf("expected boundary-day transaction to be included, got %d results", len(filtered))
		}
	})

	t.Run("no_matches_is_empty_not_error", func(t *testing.T) {
		transactions := []models.Transaction{
			tx(models.KindIncome, "10", "outside", day(1), true),
		}

		filtered := FilterByRange(transactions, mustRange(t, day(10), day(20)))
		if len(filtered) != 0 {
			t.Errorf("expected empty result, got %d", len(filtered))
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		filtered := FilterByRange(nil, mustRange(t, day(1), day(31)))
		if len(filtered) != 0 {
			t.Errorf("expected empty result, got %d", len(filtered))
		}
	})
}

func TestSummarize(t *testing.T) {
	t.Run("income_expenses_balance", func(t *testing.T) {
		transactions := []models.Transaction{
			tx(models.KindIncome, "1000", "Salary", day(1), true),
			tx(models.KindExpense, "-400", "Rent", day(1), true),
			tx(models.KindExpense, "-50", "Food", day(2), false),
		}

		summary, err := Summarize(transactions)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, summary.Income, "1000")
		testutil.AssertDecimalEqual(t, summary.Expenses, "450")
		testutil.AssertDecimalEqual(t, summary.Balance, "550")
	})

	t.Run("kind_overrides_amount_sign", func(t *testing.T) {
		// Upstream encodings disagree on sign conventions; the kind
		// field wins and amounts count as magnitudes.
		transactions := []models.Transaction{
			tx(models.KindIncome, "-200", "Refund", day(1), true),
			tx(models.KindExpense, "300", "Groceries", day(1), true),
		}

		summary, err := Summarize(transactions)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, summary.Income, "200")
		testutil.AssertDecimalEqual(t, summary.Expenses, "300")
		testutil.AssertDecimalEqual(t, summary.Balance, "-100")
	})

	t.Run("legacy_kind_vocabularies", func(t *testing.T) {
		transactions := []models.Transaction{
			tx("receita", "100", "", day(1), true),
			tx("entrada", "50", "", day(1), true),
			tx("despesa", "30", "a", day(1), true),
			tx("saida", "20", "b", day(1), true),
		}

		summary, err := Summarize(transactions)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, summary.Income, "150")
		testutil.AssertDecimalEqual(t, summary.Expenses, "50")
	})

	t.Run("unrecognized_kind", func(t *testing.T) {
		transactions := []models.Transaction{
			tx("transferencia", "100", "", day(1), true),
		}

		_, err := Summarize(transactions)
		testutil.AssertAppError(t, err, "UNCLASSIFIED_TRANSACTION_KIND")
	})

	t.Run("empty_input_all_zeros", func(t *testing.T) {
		summary, err := Summarize(nil)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, summary.Income, "0")
		testutil.AssertDecimalEqual(t, summary.Expenses, "0")
		testutil.AssertDecimalEqual(t, summary.Balance, "0")
	})

	t.Run("zero_amount_is_valid", func(t *testing.T) {
		transactions := []models.Transaction{
			tx(models.KindExpense, "0", "Free sample", day(1), true),
		}

		summary, err := Summarize(transactions)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, summary.Expenses, "0")
	})

	t.Run("balance_identity", func(t *testing.T) {
		transactions := []models.Transaction{
			tx(models.KindIncome, "1234.56", "", day(1), true),
			tx(models.KindExpense, "-78.90", "a", day(2), true),
			tx(models.KindIncome, "0.01", "", day(3), false),
			tx(models.KindExpense, "999.99", "b", day(4), false),
		}

		summary, err := Summarize(transactions)
		testutil.AssertNoError(t, err)
		if !summary.Balance.Equal(summary.Income.Sub(summary.Expenses)) {
			t.Errorf("balance %s != income %s - expenses %s",
				summary.Balance, summary.Income, summary.Expenses)
		}
	})

	t.Run("exact_decimal_summation", func(t *testing.T) {
		// 0.1 added ten times drifts under IEEE floats; it must not here.
		var transactions []models.Transaction
		for i := 0; i < 10; i++ {
			transactions = append(transactions, tx(models.KindIncome, "0.1", "", day(1), true))
		}

		summary, err := Summarize(transactions)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, summary.Income, "1")
	})

	t.Run("idempotent", func(t *testing.T) {
		transactions := []models.Transaction{
			tx(models.KindIncome, "100", "", day(1), true),
			tx(models.KindExpense, "40", "a", day(2), true),
		}

		first, err := Summarize(transactions)
		testutil.AssertNoError(t, err)
		second, err := Summarize(transactions)
		testutil.AssertNoError(t, err)
		if !first.Income.Equal(second.Income) || !first.Expenses.Equal(second.Expenses) || !first.Balance.Equal(second.Balance) {
			t.Error("expected identical results on repeated calls")
		}
	})
}

func TestDailySeries(t *testing.T) {
	t.Run("groups_by_calendar_day", func(t *testing.T) {
		transactions := []models.Transaction{
			tx(models.KindIncome, "100", "", day(1), true),
			tx(models.KindExpense, "-30", "a", day(1), true),
			tx(models.KindExpense, "20", "b", day(2), true),
		}

		series, err := DailySeries(transactions, 10)
		testutil.AssertNoError(t, err)
		if len(series) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(series))
		}
		if series[0].Date != "2024-03-01" || series[1].Date != "2024-03-02" {
			t.Errorf("unexpected bucket dates: %s, %s", series[0].Date, series[1].Date)
		}
		testutil.AssertDecimalEqual(t, series[0].Income, "100")
		testutil.AssertDecimalEqual(t, series[0].Expenses, "30")
		testutil.AssertDecimalEqual(t, series[1].Expenses, "20")
	})

	t.Run("chronological_regardless_of_input_order", func(t *testing.T) {
		transactions := []models.Transaction{
			tx(models.KindIncome, "10", "", day(15), true),
			tx(models.KindIncome, "10", "", day(3), true),
			tx(models.KindIncome, "10", "", day(9), true),
		}

		series, err := DailySeries(transactions, 10)
		testutil.AssertNoError(t, err)
		for i := 1; i < len(series); i++ {
			if series[i].Date <= series[i-1].Date {
				t.Errorf("buckets out of order: %s before %s", series[i-1].Date, series[i].Date)
			}
		}
	})

	t.Run("window_keeps_most_recent_days", func(t *testing.T) {
		var transactions []models.Transaction
		for d := 1; d <= 15; d++ {
			transactions = append(transactions, tx(models.KindIncome, "10", "", day(d), true))
		}

		series, err := DailySeries(transactions, 10)
		testutil.AssertNoError(t, err)
		if len(series) != 10 {
			t.Fatalf("expected 10 buckets, got %d", len(series))
		}
		if series[0].Date != "2024-03-06" || series[9].Date != "2024-03-15" {
			t.Errorf("expected days 6-15, got %s - %s", series[0].Date, series[9].Date)
		}
	})

	t.Run("window_larger_than_days", func(t *testing.T) {
		transactions := []models.Transaction{
			tx(models.KindIncome, "10", "", day(1), true),
		}

		series, err := DailySeries(transactions, 10)
		testutil.AssertNoError(t, err)
		if len(series) != 1 {
			t.Errorf("expected 1 bucket, got %d", len(series))
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		series, err := DailySeries(nil, 10)
		testutil.AssertNoError(t, err)
		if len(series) != 0 {
			t.Errorf("expected empty series, got %d buckets", len(series))
		}
	})

	t.Run("invalid_window", func(t *testing.T) {
		_, err := DailySeries(nil, 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unrecognized_kind", func(t *testing.T) {
		transactions := []models.Transaction{
			tx("investimento", "10", "", day(1), true),
		}

		_, err := DailySeries(transactions, 10)
		testutil.AssertAppError(t, err, "UNCLASSIFIED_TRANSACTION_KIND")
	})
}

func TestGroupExpenses(t *testing.T) {
	sample := []models.Transaction{
		tx(models.KindIncome, "1000", "Salary", day(1), true),
		tx(models.KindExpense, "-400", "Rent", day(1), true),
		tx(models.KindExpense, "-50", "Food", day(2), false),
	}

	t.Run("no_status_filter", func(t *testing.T) {
		groups, err := GroupExpenses(sample, nil)
		testutil.AssertNoError(t, err)
		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}
		if groups[0].Category != "Rent" || groups[1].Category != "Food" {
			t.Errorf("unexpected categories: %s, %s", groups[0].Category, groups[1].Category)
		}
		testutil.AssertDecimalEqual(t, groups[0].Total, "400")
		testutil.AssertDecimalEqual(t, groups[1].Total, "50")
		if groups[0].Percent != 88.9 || groups[1].Percent != 11.1 {
			t.Errorf("unexpected percentages: %.1f, %.1f", groups[0].Percent, groups[1].Percent)
		}
	})

	t.Run("settled_only", func(t *testing.T) {
		settled := true
		groups, err := GroupExpenses(sample, &settled)
		testutil.AssertNoError(t, err)
		if len(groups) != 1 {
			t.Fatalf("expected 1 group, got %d", len(groups))
		}
		if groups[0].Category != "Rent" {
			t.Errorf("expected Rent, got %s", groups[0].Category)
		}
		testutil.AssertDecimalEqual(t, groups[0].Total, "400")
		if groups[0].Percent != 100.0 {
			t.Errorf("expected 100%%, got %.1f", groups[0].Percent)
		}
	})

	t.Run("pending_only", func(t *testing.T) {
		settled := false
		groups, err := GroupExpenses(sample, &settled)
		testutil.AssertNoError(t, err)
		if len(groups) != 1 || groups[0].Category != "Food" {
			t.Fatalf("expected only Food, got %v", groups)
		}
	})

	t.Run("income_never_grouped", func(t *testing.T) {
		transactions := []models.Transaction{
			tx(models.KindIncome, "1000", "Salary", day(1), true),
		}

		groups, err := GroupExpenses(transactions, nil)
		testutil.AssertNoError(t, err)
		if len(groups) != 0 {
			t.Errorf("expected no groups, got %d", len(groups))
		}
	})

	t.Run("descriptions_group_verbatim", func(t *testing.T) {
		// Case and whitespace variants are intentionally distinct
		// categories; no normalization is applied to the key.
		transactions := []models.Transaction{
			tx(models.KindExpense, "10", "Rent", day(1), true),
			tx(models.KindExpense, "10", "rent", day(1), true),
			tx(models.KindExpense, "10", "Rent ", day(1), true),
		}

		groups, err := GroupExpenses(transactions, nil)
		testutil.AssertNoError(t, err)
		if len(groups) != 3 {
			t.Errorf("expected 3 distinct categories, got %d", len(groups))
		}
	})

	t.Run("first_seen_order", func(t *testing.T) {
		transactions := []models.Transaction{
			tx(models.KindExpense, "1", "B", day(1), true),
			tx(models.KindExpense, "100", "A", day(2), true),
			tx(models.KindExpense, "2", "B", day(3), true),
		}

		groups, err := GroupExpenses(transactions, nil)
		testutil.AssertNoError(t, err)
		if groups[0].Category != "B" || groups[1].Category != "A" {
			t.Errorf("expected first-seen order B, A; got %s, %s", groups[0].Category, groups[1].Category)
		}
		testutil.AssertDecimalEqual(t, groups[0].Total, "3")
	})

	t.Run("zero_total_returns_empty", func(t *testing.T) {
		transactions := []models.Transaction{
			tx(models.KindExpense, "0", "Nothing", day(1), true),
		}

		groups, err := GroupExpenses(transactions, nil)
		testutil.AssertNoError(t, err)
		if len(groups) != 0 {
			t.Errorf("expected empty groups on zero total, got %d", len(groups))
		}
	})

	t.Run("percentages_sum_to_100", func(t *testing.T) {
		var transactions []models.Transaction
		for i := 1; i <= 7; i++ {
			transactions = append(transactions,
				tx(models.KindExpense, fmt.Sprintf("%d.37", i*13), fmt.Sprintf("cat-%d", i), day(i), true))
		}

		groups, err := GroupExpenses(transactions, nil)
		testutil.AssertNoError(t, err)

		var sum float64
		for _, g := range groups {
			sum += g.Percent
		}
		if sum < 99.5 || sum > 100.5 {
			t.Errorf("expected percentages to sum to ~100, got %.2f", sum)
		}
	})

	t.Run("partition_completeness", func(t *testing.T) {
		groups, err := GroupExpenses(sample, nil)
		testutil.AssertNoError(t, err)

		groupTotal := decimal.Zero
		for _, g := range groups {
			groupTotal = groupTotal.Add(g.Total)
		}

		summary, err := Summarize(sample)
		testutil.AssertNoError(t, err)
		if !groupTotal.Equal(summary.Expenses) {
			t.Errorf("group totals %s != summarized expenses %s", groupTotal, summary.Expenses)
		}
	})

	t.Run("unrecognized_kind", func(t *testing.T) {
		transactions := []models.Transaction{
			tx("misc", "10", "x", day(1), true),
		}

		_, err := GroupExpenses(transactions, nil)
		testutil.AssertAppError(t, err, "UNCLASSIFIED_TRANSACTION_KIND")
	})
}

func TestPipelineExample(t *testing.T) {
	// The full dashboard pipeline over the documented example scenario.
	transactions := []models.Transaction{
		tx(models.KindIncome, "1000", "Paycheck", day(1), true),
		tx(models.KindExpense, "-400", "Rent", day(1), true),
		tx(models.KindExpense, "-50", "Food", day(2), false),
		tx(models.KindIncome, "999", "Out of range", day(30), true),
	}

	filtered := FilterByRange(transactions, mustRange(t, day(1), day(2)))

	summary, err := Summarize(filtered)
	testutil.AssertNoError(t, err)
	testutil.AssertDecimalEqual(t, summary.Income, "1000")
	testutil.AssertDecimalEqual(t, summary.Expenses, "450")
	testutil.AssertDecimalEqual(t, summary.Balance, "550")

	groups, err := GroupExpenses(filtered, nil)
	testutil.AssertNoError(t, err)
	if len(groups) != 2 || groups[0].Percent != 88.9 || groups[1].Percent != 11.1 {
		t.Errorf("unexpected groups: %+v", groups)
	}

	series, err := DailySeries(filtered, 10)
	testutil.AssertNoError(t, err)
	if len(series) != 2 {
		t.Fatalf("expected 2 daily buckets, got %d", len(series))
	}
	testutil.AssertDecimalEqual(t, series[0].Income, "1000")
	testutil.AssertDecimalEqual(t, series[0].Expenses, "400")
	testutil.AssertDecimalEqual(t, series[1].Expenses, "50")
}
