package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// VATRate is the value-added tax withheld from every withdrawal
var VATRate = decimal.RequireFromString("0.075")

// ParseMoney parses a decimal string with at most two decimal places.
// Signs are allowed; callers decide whether negative values make sense.
func ParseMoney(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if len(value) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	// decimal.NewFromString accepts exponents; money input never does
	if strings.ContainsAny(value, "eE") {
		return decimal.Zero, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if -amount.Exponent() > MaxDecimalPlaces && !amount.Equal(amount.Truncate(MaxDecimalPlaces)) {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	return amount.Truncate(MaxDecimalPlaces), nil
}

// ParsePositiveAmount parses a withdrawal amount; it must be strictly positive
func ParsePositiveAmount(value string) (decimal.Decimal, error) {
	amount, err := ParseMoney(value)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	return amount, nil
}

// ComputeVATFee returns amount * VATRate rounded to two decimal places
func ComputeVATFee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(VATRate).Round(MaxDecimalPlaces)
}

// FormatMoney renders an amount with exactly two decimal places, e.g. "10.50"
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}
