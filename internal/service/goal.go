package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/templui/goalfund/internal/db"
	"github.com/templui/goalfund/internal/metrics"
	"github.com/templui/goalfund/internal/model"
	"github.com/templui/goalfund/internal/repository"
	"github.com/templui/goalfund/internal/validation"
)

// GoalNotifier is told when a payment completes a goal.
type GoalNotifier interface {
	GoalFunded(ctx context.Context, goal *model.Goal, totalPaid decimal.Decimal, contributors []*model.Contributor) error
}

type CreateGoalInput struct {
	Title         string
	RecipientName string
	TargetAmount  decimal.Decimal
	Currency      string
	DueDate       *time.Time
}

type AddContributorInput struct {
	Name            string
	Email           *string
	Phone           *string
	CommittedAmount decimal.NullDecimal
}

type RecordPaymentInput struct {
	ContributorID *string
	Amount        decimal.Decimal
	Method        *string
	Notes         *string
}

// GoalService is the goal ledger: goals, contributors, payments and the
// open -> completed transition.
type GoalService struct {
	db              *sqlx.DB
	repo            repository.GoalRepository
	contributorRepo repository.ContributorRepository
	paymentRepo     repository.PaymentRepository
	notifier        GoalNotifier
	metrics         metrics.Recorder
	defaultCurrency string
}

func NewGoalService(
	database *sqlx.DB,
	repo repository.GoalRepository,
	contributorRepo repository.ContributorRepository,
	paymentRepo repository.PaymentRepository,
	notifier GoalNotifier,
	recorder metrics.Recorder,
	defaultCurrency string,
) *GoalService {
	if defaultCurrency == "" {
		defaultCurrency = model.DefaultCurrency
	}
	if recorder == nil {
		recorder = metrics.Nop()
	}

	return &GoalService{
		db:              database,
		repo:            repo,
		contributorRepo: contributorRepo,
		paymentRepo:     paymentRepo,
		notifier:        notifier,
		metrics:         recorder,
		defaultCurrency: defaultCurrency,
	}
}

func (s *GoalService) Create(ctx context.Context, in CreateGoalInput) (*model.Goal, error) {
	err := validation.ValidateName("title", in.Title)
	if err != nil {
		return nil, invalid("title", err)
	}
	err = validation.ValidateName("recipient_name", in.RecipientName)
	if err != nil {
		return nil, invalid("recipient_name", err)
	}
	err = validation.ValidateAmount("target_amount", in.TargetAmount)
	if err != nil {
		return nil, invalid("target_amount", err)
	}

	currency := in.Currency
	if strings.TrimSpace(currency) == "" {
		currency = s.defaultCurrency
	}
	currency, err = validation.NormalizeCurrency(currency)
	if err != nil {
		return nil, invalid("currency", err)
	}

	var dueDate *model.Date
	if in.DueDate != nil {
		d := model.NewDate(*in.DueDate)
		dueDate = &d
	}

	now := time.Now().UTC()
	goal := &model.Goal{
		ID:            uuid.New().String(),
		Title:         strings.TrimSpace(in.Title),
		RecipientName: strings.TrimSpace(in.RecipientName),
		TargetAmount:  in.TargetAmount,
		Currency:      currency,
		ReferenceCode: NewReferenceCode(),
		DueDate:       dueDate,
		Status:        model.GoalStatusOpen,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.repo.Create(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.metrics.GoalCreated(goal.Currency)
	slog.Info("goal created", "goal_id", goal.ID, "reference_code", goal.ReferenceCode)

	return s.repo.ByID(ctx, goal.ID)
}

func (s *GoalService) Goal(ctx context.Context, goalID string) (*model.GoalView, error) {
	goal, err := s.repo.ByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	return s.view(ctx, goal)
}

func (s *GoalService) GoalByReferenceCode(ctx context.Context, code string) (*model.GoalView, error) {
	goal, err := s.repo.ByReferenceCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}

	return s.view(ctx, goal)
}

func (s *GoalService) view(ctx context.Context, goal *model.Goal) (*model.GoalView, error) {
	contributors, err := s.contributorRepo.Contributors(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contributors: %w", err)
	}

	payments, err := s.paymentRepo.Payments(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	return model.NewGoalView(goal, contributors, payments), nil
}

func (s *GoalService) AddContributor(ctx context.Context, goalID string, in AddContributorInput) (*model.Contributor, error) {
	err := validation.ValidateName("name", in.Name)
	if err != nil {
		return nil, invalid("name", err)
	}

	email := optional(in.Email)
	if email != nil {
		err = validation.ValidateEmail(*email)
		if err != nil {
			return nil, invalid("email", err)
		}
	}

	phone := optional(in.Phone)
	if phone != nil {
		err = validation.ValidatePhone(*phone)
		if err != nil {
			return nil, invalid("phone", err)
		}
	}

	if in.CommittedAmount.Valid {
		err = validation.ValidateAmount("committed_amount", in.CommittedAmount.Decimal)
		if err != nil {
			return nil, invalid("committed_amount", err)
		}
	}

	exists, err := s.repo.Exists(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to check goal: %w", err)
	}
	if !exists {
		return nil, repository.ErrGoalNotFound
	}

	contributor := &model.Contributor{
		ID:              uuid.New().String(),
		GoalID:          goalID,
		Name:            strings.TrimSpace(in.Name),
		Email:           email,
		Phone:           phone,
		CommittedAmount: in.CommittedAmount,
		CreatedAt:       time.Now().UTC(),
	}

	err = s.contributorRepo.Create(ctx, contributor)
	if err != nil {
		return nil, fmt.Errorf("failed to create contributor: %w", err)
	}

	s.metrics.ContributorAdded()

	return s.contributorRepo.ByID(ctx, goalID, contributor.ID)
}

// RecordPayment appends a payment and completes the goal once the fresh
// total reaches the target. Everything happens in one transaction.
func (s *GoalService) RecordPayment(ctx context.Context, goalID string, in RecordPaymentInput) (*model.PaymentReceipt, error) {
	err := validation.ValidateAmount("amount", in.Amount)
	if err != nil {
		return nil, invalid("amount", err)
	}

	contributorID := optional(in.ContributorID)

	var (
		goal    *model.Goal
		receipt *model.PaymentReceipt
	)

	err = db.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		goals := s.repo.WithTx(tx)
		payments := s.paymentRepo.WithTx(tx)

		var err error
		goal, err = goals.ByIDForUpdate(ctx, goalID)
		if err != nil {
			return err
		}

		if contributorID != nil {
			_, err = s.contributorRepo.WithTx(tx).ByID(ctx, goalID, *contributorID)
			if err != nil {
				return err
			}
		}

		payment := &model.Payment{
			ID:            uuid.New().String(),
			GoalID:        goalID,
			ContributorID: contributorID,
			Amount:        in.Amount,
			Method:        optional(in.Method),
			Notes:         optional(in.Notes),
			CreatedAt:     time.Now().UTC(),
		}
		err = payments.Create(ctx, payment)
		if err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}

		totalPaid, err := payments.TotalPaid(ctx, goalID)
		if err != nil {
			return fmt.Errorf("failed to compute total paid: %w", err)
		}

		completed := false
		if totalPaid.GreaterThanOrEqual(goal.TargetAmount) && !goal.IsCompleted() {
			completed, err = goals.MarkCompleted(ctx, goalID)
			if err != nil {
				return fmt.Errorf("failed to complete goal: %w", err)
			}
			if completed {
				goal.Status = model.GoalStatusCompleted
			}
		}

		receipt = &model.PaymentReceipt{
			Payment:   payment,
			TotalPaid: totalPaid,
			Completed: completed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.PaymentRecorded(goal.Currency, receipt.Payment.Amount)
	slog.Info("payment recorded",
		"goal_id", goalID,
		"payment_id", receipt.Payment.ID,
		"total_paid", receipt.TotalPaid.String(),
	)

	if receipt.Completed {
		s.metrics.GoalCompleted(goal.Currency)
		slog.Info("goal completed", "goal_id", goalID, "total_paid", receipt.TotalPaid.String())
		s.notifyFunded(ctx, goal, receipt.TotalPaid)
	}

	return receipt, nil
}

// notifyFunded runs after commit; a failed notification never undoes a payment.
// The payment is already durable, so a client hanging up must not cancel it.
func (s *GoalService) notifyFunded(ctx context.Context, goal *model.Goal, totalPaid decimal.Decimal) {
	if s.notifier == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)

	contributors, err := s.contributorRepo.Contributors(ctx, goal.ID)
	if err != nil {
		slog.Warn("failed to load contributors for notification", "error", err, "goal_id", goal.ID)
		return
	}

	err = s.notifier.GoalFunded(ctx, goal, totalPaid, contributors)
	if err != nil {
		slog.Warn("goal funded notification failed", "error", err, "goal_id", goal.ID)
	}
}

// NewReferenceCode returns an 8 character uppercase code taken from a random UUID.
func NewReferenceCode() string {
	return strings.ToUpper(uuid.New().String()[:8])
}

// optional maps blank strings to nil so they are stored as NULL.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
