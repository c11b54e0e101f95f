package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
	"github.com/shopspring/decimal"
	"github.com/templui/goalfund/internal/model"
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	isDev     bool
	appURL    string
	appName   string
}

func NewEmailService(apiKey, fromEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		isDev:     isDev,
		appURL:    appURL,
		appName:   appName,
	}
}

// GoalFunded tells every contributor with an email address that the goal
// reached its target. All recipients are attempted; the errors are joined.
func (s *EmailService) GoalFunded(ctx context.Context, goal *model.Goal, totalPaid decimal.Decimal, contributors []*model.Contributor) error {
	goalURL := fmt.Sprintf("%s/api/goals/ref/%s", s.appURL, goal.ReferenceCode)

	var errs []error
	for _, c := range contributors {
		if !c.HasEmail() {
			continue
		}

		subject, body := goalFundedEmailTemplate(c.Name, goal, totalPaid, goalURL, s.appName)
		err := s.send(ctx, "goal_funded", *c.Email, subject, body)
		if err != nil {
			errs = append(errs, fmt.Errorf("notify %s: %w", c.ID, err))
		}
	}

	return errors.Join(errs...)
}

func (s *EmailService) send(ctx context.Context, kind, to, subject, body string) error {
	if s.isDev {
		slog.Info("email sent (dev mode)", "type", kind, "to", to, "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "type", kind, "to", to)
	}
	return err
}
