package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/goalfund/internal/model"
)

var (
	ErrContributorNotFound = errors.New("contributor not found")
)

type ContributorRepository interface {
	Create(ctx context.Context, contributor *model.Contributor) error
	ByID(ctx context.Context, goalID, contributorID string) (*model.Contributor, error)
	Contributors(ctx context.Context, goalID string) ([]*model.Contributor, error)
	WithTx(tx *sqlx.Tx) ContributorRepository
}

type contributorRepository struct {
	db Querier
}

func NewContributorRepository(db *sqlx.DB) ContributorRepository {
	return &contributorRepository{db: db}
}

func (r *contributorRepository) WithTx(tx *sqlx.Tx) ContributorRepository {
	return &contributorRepository{db: tx}
}

func (r *contributorRepository) Create(ctx context.Context, contributor *model.Contributor) error {
	query := `INSERT INTO contributors (id, goal_id, name, email, phone, committed_amount, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		contributor.ID,
		contributor.GoalID,
		contributor.Name,
		contributor.Email,
		contributor.Phone,
		contributor.CommittedAmount,
		contributor.CreatedAt,
	)

	return err
}

// ByID only finds contributors that belong to the given goal.
func (r *contributorRepository) ByID(ctx context.Context, goalID, contributorID string) (*model.Contributor, error) {
	contributor := &model.Contributor{}
	query := `SELECT * FROM contributors WHERE id = $1 AND goal_id = $2`

	err := r.db.GetContext(ctx, contributor, query, contributorID, goalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrContributorNotFound
	}
	if err != nil {
		return nil, err
	}

	return contributor, nil
}

func (r *contributorRepository) Contributors(ctx context.Context, goalID string) ([]*model.Contributor, error) {
	contributors := []*model.Contributor{}
	query := `SELECT * FROM contributors WHERE goal_id = $1 ORDER BY created_at ASC, id ASC`

	err := r.db.SelectContext(ctx, &contributors, query, goalID)
	if err != nil {
		return nil, err
	}

	return contributors, nil
}
