package worker

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aayakar/webinar-backend/internal/emails"
	"github.com/aayakar/webinar-backend/internal/mailer"
	"github.com/aayakar/webinar-backend/internal/models"
	"github.com/aayakar/webinar-backend/internal/registrants"
	"github.com/aayakar/webinar-backend/pkg/queue"
)

// EmailProcessor consumes email jobs from the queue and delivers them through
// the mailer, recording the outcome in the email logs.
type EmailProcessor struct {
	regRepo   *registrants.Repository
	emailLogs *emails.Repository
	mail      mailer.Mailer
	queue     *queue.Queue
	logger    *zap.Logger
}

// NewEmailProcessor creates an email job processor.
func NewEmailProcessor(regRepo *registrants.Repository, emailLogs *emails.Repository, mail mailer.Mailer, q *queue.Queue, logger *zap.Logger) *EmailProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailProcessor{regRepo: regRepo, emailLogs: emailLogs, mail: mail, queue: q, logger: logger}
}

// Process executes one email job.
func (p *EmailProcessor) Process(ctx context.Context, job *queue.Job) error {
	payload, err := job.DecodePayload()
	if err != nil {
		return err
	}

	var emailType, subject string
	switch job.Type {
	case queue.JobTypeConfirmation:
		emailType, subject = models.EmailTypeRegistrationConfirmation, mailer.SubjectConfirmation
	case queue.JobTypeReminder:
		emailType, subject = models.EmailTypeReminder, mailer.SubjectReminder
	default:
		return fmt.Errorf("unknown job type: %s", job.Type)
	}

	logEntry, err := p.emailLogs.Create(ctx, payload.RegistrantID, emailType, payload.RecipientEmail, subject)
	if err != nil {
		return fmt.Errorf("create email log: %w", err)
	}

	var sendErr error
	switch job.Type {
	case queue.JobTypeConfirmation:
		sendErr = p.mail.SendConfirmation(ctx, payload.RecipientName, payload.RecipientEmail)
	case queue.JobTypeReminder:
		sendErr = p.mail.SendReminder(ctx, payload.RecipientName, payload.RecipientEmail)
	}
	if sendErr != nil {
		_ = p.emailLogs.MarkFailed(ctx, logEntry.ID, sendErr.Error())
		return fmt.Errorf("send %s: %w", emailType, sendErr)
	}

	_ = p.emailLogs.MarkSent(ctx, logEntry.ID)
	switch job.Type {
	case queue.JobTypeConfirmation:
		_ = p.regRepo.MarkEmailSent(ctx, payload.RegistrantID)
	case queue.JobTypeReminder:
		_ = p.regRepo.MarkReminderSent(ctx, payload.RegistrantID)
	}
	return nil
}

// Run consumes jobs until ctx is cancelled. Failed jobs are retried by the
// queue and moved to the DLQ after MaxRetries attempts.
func (p *EmailProcessor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.logger.Error("dequeue failed", zap.Error(err))
			continue
		}
		if job == nil {
			continue
		}

		if err := p.Process(ctx, job); err != nil {
			p.logger.Error("email job failed", zap.Error(err), zap.String("job_id", job.ID))
			_ = p.queue.Retry(ctx, job)
			continue
		}
		p.logger.Info("email job done", zap.String("job_id", job.ID), zap.String("type", string(job.Type)))
	}
}
