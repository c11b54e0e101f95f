package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	GoalStatusOpen      = "open"
	GoalStatusCompleted = "completed"
)

const DefaultCurrency = "EUR"

func init() {
	// Amounts go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Goal struct {
	ID            string          `db:"id" json:"id"`
	Title         string          `db:"title" json:"title"`
	RecipientName string          `db:"recipient_name" json:"recipient_name"`
	TargetAmount  decimal.Decimal `db:"target_amount" json:"target_amount"`
	Currency      string          `db:"currency" json:"currency"`
	ReferenceCode string          `db:"reference_code" json:"reference_code"`
	DueDate       *Date           `db:"due_date" json:"due_date"`
	Status        string          `db:"status" json:"status"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

func (g *Goal) IsCompleted() bool {
	return g.Status == GoalStatusCompleted
}

// GoalView is a goal together with everything recorded against it.
// TotalPaid is always derived from Payments, never stored.
type GoalView struct {
	*Goal
	Contributors []*Contributor  `json:"contributors"`
	Payments     []*Payment      `json:"payments"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	Remaining    decimal.Decimal `json:"remaining"`
}

// NewGoalView sums the payments and computes what is left to raise.
// Remaining goes negative when the goal is overpaid.
func NewGoalView(goal *Goal, contributors []*Contributor, payments []*Payment) *GoalView {
	if contributors == nil {
		contributors = []*Contributor{}
	}
	if payments == nil {
		payments = []*Payment{}
	}

	total := SumPayments(payments)

	return &GoalView{
		Goal:         goal,
		Contributors: contributors,
		Payments:     payments,
		TotalPaid:    total,
		Remaining:    goal.TargetAmount.Sub(total),
	}
}
