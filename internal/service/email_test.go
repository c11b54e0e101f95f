package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/goalfund/internal/model"
)

func fundedGoal() *model.Goal {
	return &model.Goal{
		ID:            "goal-1",
		Title:         "Office plant",
		RecipientName: "Facilities",
		TargetAmount:  decimal.NewFromInt(80),
		Currency:      "EUR",
		ReferenceCode: "AB12CD34",
		Status:        model.GoalStatusCompleted,
	}
}

func TestEmailService_GoalFunded(t *testing.T) {
	contributors := []*model.Contributor{
		{ID: "c1", Name: "Sam", Email: strPtr("sam@example.com")},
		{ID: "c2", Name: "Robin"},
	}

	t.Run("dev mode only logs", func(t *testing.T) {
		svc := NewEmailService("", "noreply@example.com", "http://localhost:4000", "Goalfund", true)
		err := svc.GoalFunded(context.Background(), fundedGoal(), decimal.NewFromInt(80), contributors)
		assert.NoError(t, err)
	})

	t.Run("unconfigured client reports every failed recipient", func(t *testing.T) {
		svc := NewEmailService("", "noreply@example.com", "http://localhost:4000", "Goalfund", false)
		err := svc.GoalFunded(context.Background(), fundedGoal(), decimal.NewFromInt(80), contributors)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "notify c1")
		assert.NotContains(t, err.Error(), "notify c2")
	})

	t.Run("nobody to notify", func(t *testing.T) {
		svc := NewEmailService("", "noreply@example.com", "http://localhost:4000", "Goalfund", false)
		err := svc.GoalFunded(context.Background(), fundedGoal(), decimal.NewFromInt(80), contributors[1:])
		assert.NoError(t, err)
	})
}

func TestGoalFundedEmailTemplate(t *testing.T) {
	subject, body := goalFundedEmailTemplate("Sam", fundedGoal(), decimal.RequireFromString("85.5"), "http://localhost:4000/api/goals/ref/AB12CD34", "Goalfund")

	assert.Equal(t, `"Office plant" is fully funded`, subject)
	assert.Contains(t, body, "Hi Sam,")
	assert.Contains(t, body, "Facilities")
	assert.Contains(t, body, "AB12CD34")
	assert.Contains(t, body, "85.50")
	assert.Contains(t, body, "The Goalfund Team")
}
