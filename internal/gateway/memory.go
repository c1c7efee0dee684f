package gateway

import (
	"context"
	"time"

	"customer-rewards/internal/domain"

	"github.com/shopspring/decimal"
)

// MemoryTransactionRepository serves a fixed set of transactions held in
// memory. Paths passed to GetTransactions are ignored.
type MemoryTransactionRepository struct {
	transactions []domain.Transaction
	latency      time.Duration
}

// NewMemoryTransactionRepository creates a repository over a copy of transactions.
// A positive latency delays every call to simulate a remote source.
func NewMemoryTransactionRepository(transactions []domain.Transaction, latency time.Duration) *MemoryTransactionRepository {
	return &MemoryTransactionRepository{
		transactions: append([]domain.Transaction(nil), transactions...),
		latency:      latency,
	}
}

// NewDemoTransactionRepository creates a repository seeded with DemoTransactions.
func NewDemoTransactionRepository(latency time.Duration) *MemoryTransactionRepository {
	return NewMemoryTransactionRepository(DemoTransactions(), latency)
}

// GetTransactions returns a copy of the stored transactions.
func (r *MemoryTransactionRepository) GetTransactions(ctx context.Context, _ []string) ([]domain.Transaction, error) {
	if r.latency > 0 {
		timer := time.NewTimer(r.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	return append([]domain.Transaction(nil), r.transactions...), nil
}

// DemoTransactions is a small sample covering three customers over the
// summer of 2025, plus one January purchase that falls outside the window.
func DemoTransactions() []domain.Transaction {
	return []domain.Transaction{
		demoTx("t1", 1, "Alice", "2025-06-10", 120),  // 90 points
		demoTx("t2", 1, "Alice", "2025-06-15", 60),   // 10 points
		demoTx("t3", 1, "Alice", "2025-07-01", 200),  // 250 points
		demoTx("t4", 1, "Alice", "2025-08-05", 75),   // 25 points
		demoTx("t5", 2, "Bob", "2025-06-20", 51),     // 1 point
		demoTx("t6", 2, "Bob", "2025-07-18", 99),     // 49 points
		demoTx("t7", 2, "Bob", "2025-08-02", 130),    // 110 points
		demoTx("t8", 3, "Carol", "2025-08-10", 40),   // 0 points
		demoTx("t9", 3, "Carol", "2025-08-11", 100),  // 50 points
		demoTx("t10", 3, "Carol", "2025-08-12", 220), // 290 points
		demoTx("t11", 1, "Alice", "2025-01-01", 500),
	}
}

func demoTx(id string, customerID int, name, date string, amount int64) domain.Transaction {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		panic(err)
	}
	return domain.Transaction{
		ID:           id,
		CustomerID:   customerID,
		CustomerName: name,
		Date:         d,
		Amount:       decimal.NewFromInt(amount),
	}
}
