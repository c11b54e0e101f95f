package validation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// maxScale is the number of fractional digits an amount may carry.
const maxScale = 2

// MaxAmount is the exclusive upper bound for any single amount. Together with
// maxScale it keeps amounts within 15 significant digits, which every store
// round-trips exactly.
var MaxAmount = decimal.New(1, 13)

// ValidateAmount requires a strictly positive amount below MaxAmount with at
// most two decimals.
func ValidateAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%s must be a positive number", field)
	}

	if amount.GreaterThanOrEqual(MaxAmount) {
		return fmt.Errorf("%s must be less than %s", field, MaxAmount.String())
	}

	if !amount.Equal(amount.Truncate(maxScale)) {
		return fmt.Errorf("%s must have at most %d decimal places", field, maxScale)
	}

	return nil
}
