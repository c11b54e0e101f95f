package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/templui/goalfund/internal/db"
	"github.com/templui/goalfund/internal/model"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn := filepath.Join(t.TempDir(), "ledger.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	database, err := db.Init(db.DriverSQLite, conn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })

	require.NoError(t, db.RunMigrations(database.DB, db.DriverSQLite))
	return database
}

func seedGoal(t *testing.T, repo GoalRepository, target string) *model.Goal {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	goal := &model.Goal{
		ID:            uuid.NewString(),
		Title:         "Team gift",
		RecipientName: "Alex",
		TargetAmount:  decimal.RequireFromString(target),
		Currency:      model.DefaultCurrency,
		ReferenceCode: uuid.NewString()[:8],
		Status:        model.GoalStatusOpen,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, repo.Create(context.Background(), goal))
	return goal
}

func strPtr(s string) *string {
	return &s
}
