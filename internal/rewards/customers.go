package rewards

import (
	"time"

	"customer-rewards/internal/domain"
)

// SummarizeCustomerTotals adds up monthly summaries per customer. The name
// of the first summary seen for a customer is kept.
func SummarizeCustomerTotals(summaries []domain.MonthlySummary) []domain.CustomerTotal {
	totals := make([]domain.CustomerTotal, 0)
	index := make(map[int]int)

	for _, s := range summaries {
		if i, ok := index[s.CustomerID]; ok {
			totals[i].TotalPoints = addPoints(totals[i].TotalPoints, s.Points)
			continue
		}
		index[s.CustomerID] = len(totals)
		totals = append(totals, domain.CustomerTotal{
			CustomerID:   s.CustomerID,
			CustomerName: s.CustomerName,
			TotalPoints:  s.Points,
		})
	}

	return totals
}

// ListCustomers returns the distinct customers in transactions in first-seen order.
func ListCustomers(transactions []domain.Transaction) []domain.Customer {
	customers := make([]domain.Customer, 0)
	seen := make(map[int]bool)

	for _, tx := range transactions {
		if seen[tx.CustomerID] {
			continue
		}
		seen[tx.CustomerID] = true
		customers = append(customers, domain.Customer{ID: tx.CustomerID, Name: tx.CustomerName})
	}

	return customers
}

// LatestTransactionDate returns the most recent transaction date, or false
// when there are no transactions.
func LatestTransactionDate(transactions []domain.Transaction) (time.Time, bool) {
	if len(transactions) == 0 {
		return time.Time{}, false
	}

	latest := transactions[0].Date
	for _, tx := range transactions[1:] {
		if tx.Date.After(latest) {
			latest = tx.Date
		}
	}
	return latest, true
}
