package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/templui/goalfund/internal/model"
)

// PaymentRepository is append-only: there is no update or delete.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	Payments(ctx context.Context, goalID string) ([]*model.Payment, error)
	TotalPaid(ctx context.Context, goalID string) (decimal.Decimal, error)
	WithTx(tx *sqlx.Tx) PaymentRepository
}

type paymentRepository struct {
	db Querier
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) WithTx(tx *sqlx.Tx) PaymentRepository {
	return &paymentRepository{db: tx}
}

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	query := `INSERT INTO payments (id, goal_id, contributor_id, amount, method, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.GoalID,
		payment.ContributorID,
		payment.Amount,
		payment.Method,
		payment.Notes,
		payment.CreatedAt,
	)

	return err
}

func (r *paymentRepository) Payments(ctx context.Context, goalID string) ([]*model.Payment, error) {
	payments := []*model.Payment{}
	query := `SELECT * FROM payments WHERE goal_id = $1 ORDER BY created_at ASC, id ASC`

	err := r.db.SelectContext(ctx, &payments, query, goalID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

// TotalPaid sums the goal's payments from the rows themselves. The sum is
// done in decimal rather than with SQL SUM so SQLite's float arithmetic
// cannot creep into the total.
func (r *paymentRepository) TotalPaid(ctx context.Context, goalID string) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	query := `SELECT amount FROM payments WHERE goal_id = $1`

	err := r.db.SelectContext(ctx, &amounts, query, goalID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total, nil
}
