package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// MaxTransactionAmount is the largest purchase amount accepted at ingestion.
// It must match the lte bound on Transaction.Amount.
const MaxTransactionAmount = 1_000_000_000

// ErrInvalidInput marks transaction data rejected at the ingestion boundary.
var ErrInvalidInput = errors.New("invalid input")

// Transaction represents a single customer purchase.
type Transaction struct {
	ID           string          `json:"id" validate:"required"`
	CustomerID   int             `json:"customer_id" validate:"gt=0"`
	CustomerName string          `json:"customer_name"`
	Date         time.Time       `json:"date" validate:"required"`
	Amount       decimal.Decimal `json:"amount" validate:"gte=0,lte=1000000000"`
}

// Customer is a selectable customer derived from loaded transactions.
type Customer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
