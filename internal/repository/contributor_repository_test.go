package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/goalfund/internal/model"
)

func TestContributorRepository(t *testing.T) {
	database := setupTestDB(t)
	goals := NewGoalRepository(database)
	repo := NewContributorRepository(database)
	ctx := context.Background()

	goal := seedGoal(t, goals, "100")
	other := seedGoal(t, goals, "100")

	pledged := &model.Contributor{
		ID:              uuid.NewString(),
		GoalID:          goal.ID,
		Name:            "Sam",
		Email:           strPtr("sam@example.com"),
		CommittedAmount: decimal.NewNullDecimal(decimal.RequireFromString("25.5")),
		CreatedAt:       time.Now(),
	}
	require.NoError(t, repo.Create(ctx, pledged))

	bare := &model.Contributor{
		ID:        uuid.NewString(),
		GoalID:    goal.ID,
		Name:      "Robin",
		CreatedAt: time.Now().Add(time.Second),
	}
	require.NoError(t, repo.Create(ctx, bare))

	t.Run("lists contributors of the goal", func(t *testing.T) {
		list, err := repo.Contributors(ctx, goal.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Sam", list[0].Name)
		assert.True(t, list[0].CommittedAmount.Valid)
		assert.Equal(t, "25.5", list[0].CommittedAmount.Decimal.String())
		assert.True(t, list[0].HasEmail())
		assert.False(t, list[1].CommittedAmount.Valid)
		assert.False(t, list[1].HasEmail())

		empty, err := repo.Contributors(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("by id is scoped to the goal", func(t *testing.T) {
		got, err := repo.ByID(ctx, goal.ID, pledged.ID)
		require.NoError(t, err)
		assert.Equal(t, pledged.Name, got.Name)

		_, err = repo.ByID(ctx, other.ID, pledged.ID)
		assert.ErrorIs(t, err, ErrContributorNotFound)
	})
}
