package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Contributor struct {
	ID              string              `db:"id" json:"id"`
	GoalID          string              `db:"goal_id" json:"goal_id"`
	Name            string              `db:"name" json:"name"`
	Email           *string             `db:"email" json:"email"`
	Phone           *string             `db:"phone" json:"phone"`
	CommittedAmount decimal.NullDecimal `db:"committed_amount" json:"committed_amount"`
	CreatedAt       time.Time           `db:"created_at" json:"created_at"`
}

func (c *Contributor) HasEmail() bool {
	return c.Email != nil && *c.Email != ""
}
