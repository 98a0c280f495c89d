package mailer

import "context"

// Mailer sends transactional webinar emails. Implementations own subject and
// body content; callers only supply the recipient.
type Mailer interface {
	SendConfirmation(ctx context.Context, name, email string) error
	SendReminder(ctx context.Context, name, email string) error
}

// Subject lines, shared with email log records.
const (
	SubjectConfirmation = "Webinar Registration Successful \U0001F38A"
	SubjectReminder     = "Your Webinar Starts Soon"
)
