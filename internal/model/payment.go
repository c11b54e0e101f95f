package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            string          `db:"id" json:"id"`
	GoalID        string          `db:"goal_id" json:"goal_id"`
	ContributorID *string         `db:"contributor_id" json:"contributor_id"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	Method        *string         `db:"method" json:"method"`
	Notes         *string         `db:"notes" json:"notes"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// PaymentReceipt is what recording a payment hands back: the new row and
// the goal total recomputed right after it was written.
type PaymentReceipt struct {
	Payment   *Payment        `json:"payment"`
	TotalPaid decimal.Decimal `json:"totalPaid"`

	// Completed is set only when this payment moved the goal to completed.
	Completed bool `json:"-"`
}

func SumPayments(payments []*Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}
