package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("title", "Birthday present"))
	assert.EqualError(t, ValidateName("title", "   "), "title is required")
	assert.EqualError(t, ValidateName("recipient_name", strings.Repeat("a", 201)), "recipient_name is too long (max 200 characters)")
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("sam@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("Sam <sam@example.com>"))
	assert.Error(t, ValidateEmail(strings.Repeat("a", 250)+"@x.io"))
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone("+49 (30) 123-456"))
	assert.Error(t, ValidatePhone("call me"))
	assert.Error(t, ValidatePhone("+-"))
	assert.Error(t, ValidatePhone(strings.Repeat("1", 33)))
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		amount string
		ok     bool
	}{
		{"100", true},
		{"0.01", true},
		{"12.50", true},
		{"0", false},
		{"-5", false},
		{"1.001", false},
		{"9999999999999.99", true},
		{"10000000000000", false},
		{"12345678901234567.89", false},
		{"1e400", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := ValidateAmount("amount", decimal.RequireFromString(tt.amount))
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNormalizeCurrency(t *testing.T) {
	code, err := NormalizeCurrency(" usd ")
	require.NoError(t, err)
	assert.Equal(t, "USD", code)

	code, err = NormalizeCurrency("EUR")
	require.NoError(t, err)
	assert.Equal(t, "EUR", code)

	_, err = NormalizeCurrency("EURO")
	assert.Error(t, err)

	_, err = NormalizeCurrency("")
	assert.Error(t, err)
}
