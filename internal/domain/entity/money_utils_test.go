package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"Integer", "100", "100.00", false},
		{"Two decimals", "10.50", "10.50", false},
		{"One decimal", "10.5", "10.50", false},
		{"Surrounding spaces", "  42.10 ", "42.10", false},
		{"Trailing zero beyond precision", "1.230", "1.23", false},
		{"Negative", "-5.25", "-5.25", false},
		{"Empty", "", "", true},
		{"Whitespace only", "   ", "", true},
		{"Three decimals", "100.123", "", true},
		{"Exponent", "1e3", "", true},
		{"Currency symbol", "$100.00", "", true},
		{"Letters", "abc", "", true},
		{"Thousands separator", "1,000.00", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := ParseMoney(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, FormatMoney(amount))
		})
	}
}

func TestParsePositiveAmount(t *testing.T) {
	amount, err := ParsePositiveAmount("0.01")
	require.NoError(t, err)
	assert.Equal(t, "0.01", FormatMoney(amount))

	for _, input := range []string{"0", "0.00", "-1", "nope"} {
		_, err := ParsePositiveAmount(input)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount, input)
	}
}

func TestComputeVATFee(t *testing.T) {
	testCases := []struct {
		amount   string
		expected string
	}{
		{"40.00", "3.00"},
		{"100.00", "7.50"},
		{"10.10", "0.76"},
		{"0.01", "0.00"},
		{"0.07", "0.01"},
		{"1000.00", "75.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.amount, func(t *testing.T) {
			fee := ComputeVATFee(decimal.RequireFromString(tc.amount))
			assert.Equal(t, tc.expected, FormatMoney(fee))
		})
	}
}
