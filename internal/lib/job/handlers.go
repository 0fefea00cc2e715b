package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/tutoring-api/internal/config"
	"github.com/deppfellow/tutoring-api/internal/lib/email"
)

// Mailer sends the emails behind the email:* tasks.
type Mailer interface {
	SendWelcomeEmail(to, firstName string) error
	SendAccountRemovedEmail(to, firstName string) error
}

// InitHandlers builds the Resend-backed mailer used by the task handlers.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.mailer = email.NewClient(cfg, logger)
}

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	return j.sendEmail("welcome", p.To, func() error {
		return j.mailer.SendWelcomeEmail(p.To, p.FirstName)
	})
}

func (j *JobService) handleAccountRemovedEmailTask(ctx context.Context, t *asynq.Task) error {
	var p AccountRemovedEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal account removed email payload: %w", err)
	}

	return j.sendEmail("account_removed", p.To, func() error {
		return j.mailer.SendAccountRemovedEmail(p.To, p.FirstName)
	})
}

// sendEmail logs around send. A returned error makes Asynq retry the task.
func (j *JobService) sendEmail(kind, to string, send func() error) error {
	if j.mailer == nil {
		return fmt.Errorf("job handlers not initialized")
	}

	j.logger.Info().
		Str("type", kind).
		Str("to", to).
		Msg("Processing email task")

	if err := send(); err != nil {
		j.logger.Error().
			Str("type", kind).
			Str("to", to).
			Err(err).
			Msg("Failed to send email")
		return err
	}

	j.logger.Info().
		Str("type", kind).
		Str("to", to).
		Msg("Successfully sent email")

	return nil
}
