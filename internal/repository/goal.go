package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/goalfund/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) error
	ByID(ctx context.Context, goalID string) (*model.Goal, error)
	ByIDForUpdate(ctx context.Context, goalID string) (*model.Goal, error)
	ByReferenceCode(ctx context.Context, code string) (*model.Goal, error)
	Exists(ctx context.Context, goalID string) (bool, error)
	MarkCompleted(ctx context.Context, goalID string) (bool, error)
	WithTx(tx *sqlx.Tx) GoalRepository
}

type goalRepository struct {
	db Querier
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) WithTx(tx *sqlx.Tx) GoalRepository {
	return &goalRepository{db: tx}
}

func (r *goalRepository) Create(ctx context.Context, goal *model.Goal) error {
	query := `INSERT INTO goals (id, title, recipient_name, target_amount, currency, reference_code, due_date, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		goal.ID,
		goal.Title,
		goal.RecipientName,
		goal.TargetAmount,
		goal.Currency,
		goal.ReferenceCode,
		goal.DueDate,
		goal.Status,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

func (r *goalRepository) ByID(ctx context.Context, goalID string) (*model.Goal, error) {
	return r.get(ctx, `SELECT * FROM goals WHERE id = $1`, goalID)
}

// ByIDForUpdate reads the goal and, where the driver supports it, holds a
// row lock on it until the surrounding transaction ends.
func (r *goalRepository) ByIDForUpdate(ctx context.Context, goalID string) (*model.Goal, error) {
	return r.get(ctx, `SELECT * FROM goals WHERE id = $1`+forUpdate(r.db), goalID)
}

func (r *goalRepository) ByReferenceCode(ctx context.Context, code string) (*model.Goal, error) {
	return r.get(ctx, `SELECT * FROM goals WHERE reference_code = $1`, code)
}

func (r *goalRepository) get(ctx context.Context, query string, args ...any) (*model.Goal, error) {
	goal := &model.Goal{}

	err := r.db.GetContext(ctx, goal, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (r *goalRepository) Exists(ctx context.Context, goalID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM goals WHERE id = $1`
	err := r.db.GetContext(ctx, &count, query, goalID)
	return count > 0, err
}

// MarkCompleted flips an open goal to completed. It reports whether this call
// made the transition; a goal that is already completed is left untouched.
func (r *goalRepository) MarkCompleted(ctx context.Context, goalID string) (bool, error) {
	query := `UPDATE goals
	          SET status = $1, updated_at = $2
	          WHERE id = $3 AND status <> $4`

	result, err := r.db.ExecContext(ctx, query,
		model.GoalStatusCompleted,
		time.Now(),
		goalID,
		model.GoalStatusCompleted,
	)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows == 1, nil
}
