package rewards

import (
	"fmt"
	"math"
	"testing"
	"time"

	"customer-rewards/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeMonthlyRewards(t *testing.T) {
	referenceDate := mustParseDate("2025-08-15")

	transactions := []domain.Transaction{
		tx("t1", 1, "Alice", "2025-06-10", "120"), // 90 points
		tx("t2", 1, "Alice", "2025-06-15", "60"),  // 10 points
		tx("t3", 1, "Alice", "2025-07-01", "200"), // 250 points
		tx("t4", 1, "Alice", "2025-05-30", "120"), // too old
		tx("t5", 2, "Bob", "2025-08-05", "101"),   // 52 points
		tx("t6", 2, "Bob", "2024-12-01", "300"),   // too old
	}

	got := SummarizeMonthlyRewards(transactions, referenceDate)
	byKey := indexSummaries(got)

	require.Len(t, got, 3)
	assert.Equal(t, domain.MonthlySummary{CustomerID: 1, CustomerName: "Alice", Month: "2025-06", Points: 100}, byKey["1-2025-06"])
	assert.Equal(t, domain.MonthlySummary{CustomerID: 1, CustomerName: "Alice", Month: "2025-07", Points: 250}, byKey["1-2025-07"])
	assert.Equal(t, domain.MonthlySummary{CustomerID: 2, CustomerName: "Bob", Month: "2025-08", Points: 52}, byKey["2-2025-08"])
	assert.NotContains(t, byKey, "1-2025-05")
}

func TestSummarizeMonthlyRewards_AllTooOld(t *testing.T) {
	transactions := []domain.Transaction{
		tx("old1", 1, "Alice", "2025-01-10", "200"),
		tx("old2", 2, "Bob", "2024-12-01", "300"),
	}

	got := SummarizeMonthlyRewards(transactions, mustParseDate("2025-08-15"))

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSummarizeMonthlyRewards_Empty(t *testing.T) {
	assert.Empty(t, SummarizeMonthlyRewards(nil, mustParseDate("2025-08-15")))
	assert.Empty(t, SummarizeMonthlyRewards([]domain.Transaction{}, time.Time{}))
}

func TestSummarizeMonthlyRewards_WindowBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		included bool
	}{
		{name: "reference month first day", date: "2025-08-01", included: true},
		{name: "reference month last day", date: "2025-08-31", included: true},
		{name: "one month back", date: "2025-07-31", included: true},
		{name: "two months back first day", date: "2025-06-01", included: true},
		{name: "three months back last day", date: "2025-05-31", included: false},
		{name: "month after reference", date: "2025-09-01", included: false},
		{name: "same month previous year", date: "2024-08-15", included: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeMonthlyRewards([]domain.Transaction{tx("t1", 1, "Alice", tt.date, "75")}, mustParseDate("2025-08-15"))
			if tt.included {
				require.Len(t, got, 1)
				assert.Equal(t, int64(25), got[0].Points)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestSummarizeMonthlyRewards_AcrossYearBoundary(t *testing.T) {
	transactions := []domain.Transaction{
		tx("t1", 1, "Alice", "2024-11-20", "60"),
		tx("t2", 1, "Alice", "2024-12-24", "60"),
		tx("t3", 1, "Alice", "2025-01-02", "60"),
		tx("t4", 1, "Alice", "2024-10-31", "60"),
	}

	got := SummarizeMonthlyRewards(transactions, mustParseDate("2025-01-05"))
	byKey := indexSummaries(got)

	assert.Len(t, got, 3)
	assert.Contains(t, byKey, "1-2024-11")
	assert.Contains(t, byKey, "1-2024-12")
	assert.Contains(t, byKey, "1-2025-01")
}

func TestSummarizeMonthlyRewards_IgnoresTimeOfDay(t *testing.T) {
	referenceDate := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	late := domain.Transaction{
		ID:           "t1",
		CustomerID:   1,
		CustomerName: "Alice",
		Date:         time.Date(2025, 8, 31, 23, 59, 59, 0, time.UTC),
		Amount:       decimal.NewFromInt(60),
	}

	got := SummarizeMonthlyRewards([]domain.Transaction{late}, referenceDate)

	require.Len(t, got, 1)
	assert.Equal(t, "2025-08", got[0].Month)
}

func TestSummarizeMonthlyRewards_FirstSeenName(t *testing.T) {
	transactions := []domain.Transaction{
		tx("t1", 7, "Dana", "2025-08-01", "60"),
		tx("t2", 7, "Dana Smith", "2025-08-02", "70"),
	}

	got := SummarizeMonthlyRewards(transactions, mustParseDate("2025-08-15"))

	require.Len(t, got, 1)
	assert.Equal(t, "Dana", got[0].CustomerName)
	assert.Equal(t, int64(30), got[0].Points)
}

func TestSummarizeMonthlyRewards_SumMatchesCalculator(t *testing.T) {
	amounts := []string{"0", "45.50", "51", "99.99", "100", "101", "150.25", "320"}
	var transactions []domain.Transaction
	var want int64
	for i, a := range amounts {
		transactions = append(transactions, tx(fmt.Sprintf("t%d", i), 3, "Carol", "2025-07-10", a))
		want += CalculatePoints(decimal.RequireFromString(a))
	}

	got := SummarizeMonthlyRewards(transactions, mustParseDate("2025-08-15"))

	require.Len(t, got, 1)
	assert.Equal(t, want, got[0].Points)
}

func TestSummarizeMonthlyRewards_HugeAmountsSaturate(t *testing.T) {
	transactions := []domain.Transaction{
		tx("t1", 1, "Alice", "2025-08-10", "5000000000000000000"),
		tx("t2", 1, "Alice", "2025-08-11", "1e30"),
	}

	got := SummarizeMonthlyRewards(transactions, mustParseDate("2025-08-15"))

	require.Len(t, got, 1)
	assert.Equal(t, int64(math.MaxInt64), got[0].Points)

	totals := SummarizeCustomerTotals(append(got, got...))
	require.Len(t, totals, 1)
	assert.Equal(t, int64(math.MaxInt64), totals[0].TotalPoints)
}

func TestWindowBounds(t *testing.T) {
	tests := []struct {
		ref       string
		wantStart string
		wantEnd   string
	}{
		{ref: "2025-08-15", wantStart: "2025-06", wantEnd: "2025-08"},
		{ref: "2025-02-28", wantStart: "2024-12", wantEnd: "2025-02"},
		{ref: "2025-01-31", wantStart: "2024-11", wantEnd: "2025-01"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			start, end := WindowBounds(mustParseDate(tt.ref))
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func BenchmarkSummarizeMonthlyRewards(b *testing.B) {
	base := mustParseDate("2025-01-01")
	transactions := make([]domain.Transaction, 0, 10000)
	for i := 0; i < 10000; i++ {
		transactions = append(transactions, domain.Transaction{
			ID:           fmt.Sprintf("t%d", i),
			CustomerID:   i%50 + 1,
			CustomerName: fmt.Sprintf("Customer %d", i%50+1),
			Date:         base.AddDate(0, 0, i%240),
			Amount:       decimal.NewFromFloat(float64(i%300) + 0.49),
		})
	}
	ref := mustParseDate("2025-08-15")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SummarizeMonthlyRewards(transactions, ref)
	}
}

// Helper functions

func tx(id string, customerID int, name, date, amount string) domain.Transaction {
	return domain.Transaction{
		ID:           id,
		CustomerID:   customerID,
		CustomerName: name,
		Date:         mustParseDate(date),
		Amount:       decimal.RequireFromString(amount),
	}
}

func indexSummaries(summaries []domain.MonthlySummary) map[string]domain.MonthlySummary {
	byKey := make(map[string]domain.MonthlySummary, len(summaries))
	for _, s := range summaries {
		byKey[fmt.Sprintf("%d-%s", s.CustomerID, s.Month)] = s
	}
	return byKey
}

func mustParseDate(dateStr string) time.Time {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		panic(err)
	}
	return t
}
