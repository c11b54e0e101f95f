package service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/templui/goalfund/internal/model"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// formatAmount renders an amount with its currency symbol, e.g. "€1,250.00".
func formatAmount(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return amount.StringFixed(2) + " " + code
	}
	value, _ := amount.Round(2).Float64()
	return printer.Sprintf("%v%.2f", currency.Symbol(unit), value)
}

func goalFundedEmailTemplate(name string, goal *model.Goal, totalPaid decimal.Decimal, goalURL, appName string) (string, string) {
	subject := fmt.Sprintf("%q is fully funded", goal.Title)
	body := fmt.Sprintf(`Hi %s,

Good news: the goal %q for %s has reached its target.

Target: %s
Raised: %s
Reference: %s

See the details: %s

Thank you for chipping in.

Best,
The %s Team`,
		name,
		goal.Title,
		goal.RecipientName,
		formatAmount(goal.TargetAmount, goal.Currency),
		formatAmount(totalPaid, goal.Currency),
		goal.ReferenceCode,
		goalURL,
		appName,
	)

	return subject, body
}
