package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/templui/goalfund/internal/db"
	"github.com/templui/goalfund/internal/model"
	"github.com/templui/goalfund/internal/repository"
)

type fundedCall struct {
	goal         model.Goal
	totalPaid    decimal.Decimal
	contributors []*model.Contributor
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []fundedCall
	err   error

	// beforeSend runs first on every call, e.g. to cancel the caller's context
	beforeSend func()
	ctxErrs    []error
}

func (n *fakeNotifier) GoalFunded(ctx context.Context, goal *model.Goal, totalPaid decimal.Decimal, contributors []*model.Contributor) error {
	if n.beforeSend != nil {
		n.beforeSend()
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, fundedCall{goal: *goal, totalPaid: totalPaid, contributors: contributors})
	n.ctxErrs = append(n.ctxErrs, ctx.Err())
	return n.err
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

type countingRecorder struct {
	mu        sync.Mutex
	created   int
	added     int
	payments  int
	completed int
}

func (r *countingRecorder) GoalCreated(string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created++
}

func (r *countingRecorder) ContributorAdded() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.added++
}

func (r *countingRecorder) PaymentRecorded(string, decimal.Decimal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments++
}

func (r *countingRecorder) GoalCompleted(string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed++
}

type testLedger struct {
	db       *sqlx.DB
	svc      *GoalService
	notifier *fakeNotifier
	recorder *countingRecorder
}

func setupLedger(t *testing.T) *testLedger {
	t.Helper()

	conn := filepath.Join(t.TempDir(), "ledger.db") +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)&_txlock=immediate"
	database, err := db.Init(db.DriverSQLite, conn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })
	require.NoError(t, db.RunMigrations(database.DB, db.DriverSQLite))

	notifier := &fakeNotifier{}
	recorder := &countingRecorder{}
	svc := NewGoalService(
		database,
		repository.NewGoalRepository(database),
		repository.NewContributorRepository(database),
		repository.NewPaymentRepository(database),
		notifier,
		recorder,
		"EUR",
	)

	return &testLedger{db: database, svc: svc, notifier: notifier, recorder: recorder}
}

func (l *testLedger) createGoal(t *testing.T, target string) *model.Goal {
	t.Helper()

	goal, err := l.svc.Create(context.Background(), CreateGoalInput{
		Title:         "Farewell gift",
		RecipientName: "Jo",
		TargetAmount:  decimal.RequireFromString(target),
	})
	require.NoError(t, err)
	return goal
}

func (l *testLedger) pay(t *testing.T, goalID, amount string) *model.PaymentReceipt {
	t.Helper()

	receipt, err := l.svc.RecordPayment(context.Background(), goalID, RecordPaymentInput{
		Amount: decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
	return receipt
}

func (l *testLedger) countPayments(t *testing.T, goalID string) int {
	t.Helper()

	var n int
	require.NoError(t, l.db.Get(&n, `SELECT COUNT(*) FROM payments WHERE goal_id = $1`, goalID))
	return n
}

func strPtr(s string) *string {
	return &s
}
