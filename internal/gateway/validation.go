package gateway

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"customer-rewards/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// TransactionValidator checks transactions against the struct tags on
// domain.Transaction.
type TransactionValidator struct {
	validate *validator.Validate
}

// NewTransactionValidator builds a validator that reports json field names
// and compares decimal amounts numerically.
func NewTransactionValidator() *TransactionValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if amount, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := amount.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return &TransactionValidator{validate: v}
}

// Validate returns an error wrapping domain.ErrInvalidInput that lists every failed field.
func (v *TransactionValidator) Validate(tx domain.Transaction) error {
	err := v.validate.Struct(tx)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s failed '%s'", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: transaction %q: %s", domain.ErrInvalidInput, tx.ID, strings.Join(problems, ", "))
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: could not parse amount '%s'", domain.ErrInvalidInput, raw)
	}
	return amount, nil
}
