package usecase

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"customer-rewards/internal/domain"
	"customer-rewards/internal/rewards"

	"github.com/google/uuid"
)

// ReferenceMode selects how the reference date is chosen when a request
// does not carry one.
type ReferenceMode string

const (
	// ReferenceLatest anchors the window at the latest loaded transaction.
	ReferenceLatest ReferenceMode = "latest"
	// ReferenceNow anchors the window at the current time.
	ReferenceNow ReferenceMode = "now"
)

// ParseReferenceMode validates a mode name.
func ParseReferenceMode(s string) (ReferenceMode, error) {
	switch mode := ReferenceMode(s); mode {
	case ReferenceLatest, ReferenceNow:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: unknown reference mode %q", domain.ErrInvalidInput, s)
	}
}

// ReportRequest describes one rewards report.
type ReportRequest struct {
	Paths         []string
	CustomerID    int       // 0 selects every customer
	ReferenceDate time.Time // zero falls back to Mode
	Mode          ReferenceMode
}

// Option configures a RewardsUseCase.
type Option func(*RewardsUseCase)

// WithClock replaces time.Now as the source of the current time.
func WithClock(clock func() time.Time) Option {
	return func(uc *RewardsUseCase) { uc.clock = clock }
}

// WithLogger sets the logger used for progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(uc *RewardsUseCase) { uc.logger = logger }
}

// RewardsUseCase loads transactions and turns them into a rewards report.
type RewardsUseCase struct {
	repo   TransactionRepository
	clock  func() time.Time
	logger *slog.Logger
}

// NewRewardsUseCase creates a new instance of the usecase.
func NewRewardsUseCase(repo TransactionRepository, opts ...Option) *RewardsUseCase {
	uc := &RewardsUseCase{
		repo:   repo,
		clock:  time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// BuildReport loads transactions, summarizes points per customer and month
// inside the rolling window, and totals them per customer.
func (uc *RewardsUseCase) BuildReport(ctx context.Context, req ReportRequest) (*domain.RewardsReport, error) {
	transactions, err := uc.loadTransactions(ctx, req.Paths, req.CustomerID)
	if err != nil {
		return nil, err
	}

	referenceDate, err := uc.resolveReferenceDate(req, transactions)
	if err != nil {
		return nil, err
	}

	monthly := rewards.SummarizeMonthlyRewards(transactions, referenceDate)
	totals := rewards.SummarizeCustomerTotals(monthly)
	sortMonthlySummaries(monthly)
	sortCustomerTotals(totals)

	inWindow := 0
	for _, tx := range transactions {
		if rewards.InWindow(tx.Date, referenceDate) {
			inWindow++
		}
	}

	start, end := rewards.WindowBounds(referenceDate)
	report := &domain.RewardsReport{
		ReportID:             uuid.NewString(),
		ReferenceDate:        referenceDate.Format(time.DateOnly),
		Window:               domain.Window{StartMonth: start, EndMonth: end},
		CustomerID:           req.CustomerID,
		TransactionsLoaded:   len(transactions),
		TransactionsInWindow: inWindow,
		MonthlySummaries:     monthly,
		CustomerTotals:       totals,
	}

	uc.logger.InfoContext(ctx, "rewards report built",
		"report_id", report.ReportID,
		"reference_date", report.ReferenceDate,
		"transactions_loaded", report.TransactionsLoaded,
		"transactions_in_window", report.TransactionsInWindow,
		"summaries", len(report.MonthlySummaries),
	)
	return report, nil
}

// ListCustomers returns the customers present in the loaded transactions, ordered by name.
func (uc *RewardsUseCase) ListCustomers(ctx context.Context, paths []string) ([]domain.Customer, error) {
	transactions, err := uc.loadTransactions(ctx, paths, 0)
	if err != nil {
		return nil, err
	}

	customers := rewards.ListCustomers(transactions)
	slices.SortStableFunc(customers, func(a, b domain.Customer) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return customers, nil
}

func (uc *RewardsUseCase) loadTransactions(ctx context.Context, paths []string, customerID int) ([]domain.Transaction, error) {
	transactions, err := uc.repo.GetTransactions(ctx, paths)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}
	uc.logger.DebugContext(ctx, "transactions loaded", "count", len(transactions), "files", len(paths))

	if customerID == 0 {
		return transactions, nil
	}
	return filterByCustomer(transactions, customerID), nil
}

func (uc *RewardsUseCase) resolveReferenceDate(req ReportRequest, transactions []domain.Transaction) (time.Time, error) {
	if !req.ReferenceDate.IsZero() {
		return req.ReferenceDate, nil
	}

	switch req.Mode {
	case ReferenceNow:
		return uc.clock(), nil
	case ReferenceLatest, "":
		if latest, ok := rewards.LatestTransactionDate(transactions); ok {
			return latest, nil
		}
		return uc.clock(), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unknown reference mode %q", domain.ErrInvalidInput, req.Mode)
	}
}

func filterByCustomer(transactions []domain.Transaction, customerID int) []domain.Transaction {
	filtered := make([]domain.Transaction, 0)
	for _, tx := range transactions {
		if tx.CustomerID == customerID {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// sortMonthlySummaries orders rows by customer name, then customer id, then month.
func sortMonthlySummaries(summaries []domain.MonthlySummary) {
	slices.SortStableFunc(summaries, func(a, b domain.MonthlySummary) int {
		return cmp.Or(
			cmp.Compare(a.CustomerName, b.CustomerName),
			cmp.Compare(a.CustomerID, b.CustomerID),
			cmp.Compare(a.Month, b.Month),
		)
	})
}

func sortCustomerTotals(totals []domain.CustomerTotal) {
	slices.SortStableFunc(totals, func(a, b domain.CustomerTotal) int {
		return cmp.Or(cmp.Compare(a.CustomerName, b.CustomerName), cmp.Compare(a.CustomerID, b.CustomerID))
	})
}
