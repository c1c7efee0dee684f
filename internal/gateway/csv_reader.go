package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"customer-rewards/internal/domain"

	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

// transactionColumns is the expected CSV header, in order.
var transactionColumns = []string{"id", "customer_id", "customer_name", "date", "amount"}

// CSVTransactionRepository implements the TransactionRepository interface for CSV files.
type CSVTransactionRepository struct {
	validator *TransactionValidator
}

// NewCSVTransactionRepository creates a new repository instance.
func NewCSVTransactionRepository() *CSVTransactionRepository {
	return &CSVTransactionRepository{validator: NewTransactionValidator()}
}

// GetTransactions reads and parses every file in paths concurrently. The
// result keeps the order of paths, then the row order within each file.
func (r *CSVTransactionRepository) GetTransactions(ctx context.Context, paths []string) ([]domain.Transaction, error) {
	perFile := make([][]domain.Transaction, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			txs, err := r.readFile(ctx, path)
			if err != nil {
				return err
			}
			perFile[i] = txs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var transactions []domain.Transaction
	for _, txs := range perFile {
		transactions = append(transactions, txs...)
	}
	return transactions, nil
}

func (r *CSVTransactionRepository) readFile(ctx context.Context, path string) ([]domain.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(transactionColumns)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	if err := checkHeader(header); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var transactions []domain.Transaction
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		line, _ := reader.FieldPos(0)
		tx, err := parseTransaction(record)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		if err := r.validator.Validate(tx); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func checkHeader(header []string) error {
	for i, col := range transactionColumns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), col) {
			return fmt.Errorf("%w: unexpected header column %d %q, want %q", domain.ErrInvalidInput, i+1, header[i], col)
		}
	}
	return nil
}

func parseTransaction(record []string) (domain.Transaction, error) {
	customerID, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: could not parse customer_id '%s'", domain.ErrInvalidInput, record[1])
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(record[3]))
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: could not parse date '%s'", domain.ErrInvalidInput, record[3])
	}

	amount, err := parseAmount(record[4])
	if err != nil {
		return domain.Transaction{}, err
	}

	return domain.Transaction{
		ID:           strings.TrimSpace(record[0]),
		CustomerID:   customerID,
		CustomerName: record[2],
		Date:         date,
		Amount:       amount,
	}, nil
}
