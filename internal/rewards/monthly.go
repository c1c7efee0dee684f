package rewards

import (
	"fmt"
	"time"

	"customer-rewards/internal/domain"
)

// WindowMonths is the number of calendar months, ending with the reference
// month, that contribute to a summary.
const WindowMonths = 3

type summaryKey struct {
	customerID int
	month      string
}

// SummarizeMonthlyRewards groups in-window transactions by customer and
// calendar month and sums their points.
//
// A transaction is in the window when its month is the reference month or
// one of the two months before it; day of month and time of day are ignored.
// Summaries come back in first-seen order, which callers must not rely on.
func SummarizeMonthlyRewards(transactions []domain.Transaction, referenceDate time.Time) []domain.MonthlySummary {
	summaries := make([]domain.MonthlySummary, 0)
	index := make(map[summaryKey]int)

	for _, tx := range transactions {
		if !withinLastMonths(tx.Date, referenceDate, WindowMonths) {
			continue
		}

		key := summaryKey{customerID: tx.CustomerID, month: MonthKey(tx.Date)}
		points := CalculatePoints(tx.Amount)

		if i, ok := index[key]; ok {
			summaries[i].Points = addPoints(summaries[i].Points, points)
			continue
		}
		index[key] = len(summaries)
		summaries = append(summaries, domain.MonthlySummary{
			CustomerID:   tx.CustomerID,
			CustomerName: tx.CustomerName,
			Month:        key.month,
			Points:       points,
		})
	}

	return summaries
}

// InWindow reports whether date falls inside the rolling window anchored at
// referenceDate.
func InWindow(date, referenceDate time.Time) bool {
	return withinLastMonths(date, referenceDate, WindowMonths)
}

// WindowBounds returns the first and last month keys of the window anchored
// at referenceDate.
func WindowBounds(referenceDate time.Time) (start, end string) {
	first := time.Date(referenceDate.Year(), referenceDate.Month()-(WindowMonths-1), 1, 0, 0, 0, 0, time.UTC)
	return MonthKey(first), MonthKey(referenceDate)
}

// MonthKey formats the calendar month of t as YYYY-MM.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

func withinLastMonths(date, referenceDate time.Time, n int) bool {
	diff := monthIndex(referenceDate) - monthIndex(date)
	return diff >= 0 && diff < n
}

func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}
