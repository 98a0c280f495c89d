package emails

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aayakar/webinar-backend/internal/models"
)

// Repository handles email_logs persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an email logs repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a pending email log entry.
func (r *Repository) Create(ctx context.Context, registrantID uuid.UUID, emailType, recipient, subject string) (*models.EmailLog, error) {
	const q = `INSERT INTO email_logs (registrant_id, email_type, recipient_email, subject)
		VALUES ($1, $2, $3, $4)
		RETURNING id, registrant_id, email_type, recipient_email, COALESCE(subject, ''), status, sent_at, COALESCE(error_message, ''), created_at`
	var el models.EmailLog
	err := r.pool.QueryRow(ctx, q, registrantID, emailType, recipient, subject).
		Scan(&el.ID, &el.RegistrantID, &el.EmailType, &el.RecipientEmail, &el.Subject,
			&el.Status, &el.SentAt, &el.ErrorMessage, &el.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &el, nil
}

// MarkSent flips a log entry to sent.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE email_logs SET status = 'sent', sent_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(ctx, q, id)
	return err
}

// MarkFailed flips a log entry to failed with the delivery error.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	const q = `UPDATE email_logs SET status = 'failed', error_message = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, q, id, errMsg)
	return err
}

// List returns email logs, newest first.
func (r *Repository) List(ctx context.Context) ([]models.EmailLog, error) {
	const q = `SELECT id, registrant_id, email_type, recipient_email, COALESCE(subject, ''), status, sent_at, COALESCE(error_message, ''), created_at
		FROM email_logs ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.EmailLog
	for rows.Next() {
		var el models.EmailLog
		if err := rows.Scan(&el.ID, &el.RegistrantID, &el.EmailType, &el.RecipientEmail, &el.Subject,
			&el.Status, &el.SentAt, &el.ErrorMessage, &el.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, el)
	}
	return list, rows.Err()
}
