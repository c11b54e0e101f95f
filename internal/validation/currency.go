package validation

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

// NormalizeCurrency upper-cases an ISO 4217 code and checks that it is known.
func NormalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("currency %q is not a valid ISO 4217 code", code)
	}

	return unit.String(), nil
}
