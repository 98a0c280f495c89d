package registrants

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aayakar/webinar-backend/internal/models"
)

const registrantColumns = `id, name, email, registration_date, status,
	email_sent, email_sent_at, reminder_sent, reminder_sent_at, created_at, updated_at`

// Repository handles registrant persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a registrants repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func scanRegistrant(row pgx.Row) (*models.Registrant, error) {
	var reg models.Registrant
	err := row.Scan(&reg.ID, &reg.Name, &reg.Email, &reg.RegistrationDate, &reg.Status,
		&reg.EmailSent, &reg.EmailSentAt, &reg.ReminderSent, &reg.ReminderSentAt,
		&reg.CreatedAt, &reg.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// Create inserts a registrant with default status and server-assigned
// registration date. Duplicate emails surface as a unique violation.
func (r *Repository) Create(ctx context.Context, name, email string) (*models.Registrant, error) {
	q := `INSERT INTO registrants (name, email) VALUES ($1, $2) RETURNING ` + registrantColumns
	var reg models.Registrant
	err := r.pool.QueryRow(ctx, q, name, email).
		Scan(&reg.ID, &reg.Name, &reg.Email, &reg.RegistrationDate, &reg.Status,
			&reg.EmailSent, &reg.EmailSentAt, &reg.ReminderSent, &reg.ReminderSentAt,
			&reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// GetByID returns a registrant by ID, or nil if absent.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Registrant, error) {
	q := `SELECT ` + registrantColumns + ` FROM registrants WHERE id = $1`
	return scanRegistrant(r.pool.QueryRow(ctx, q, id))
}

// GetByEmail returns a registrant by normalized email, or nil if absent.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*models.Registrant, error) {
	q := `SELECT ` + registrantColumns + ` FROM registrants WHERE email = $1`
	return scanRegistrant(r.pool.QueryRow(ctx, q, email))
}

// List returns one page of registrants matching the filters plus the total
// match count.
func (r *Repository) List(ctx context.Context, p ListParams) ([]models.Registrant, int, error) {
	where, args := p.WhereClause()

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM registrants`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := fmt.Sprintf(`SELECT %s FROM registrants%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		registrantColumns, where, p.OrderClause(), len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, q, append(args, p.Limit, p.Skip())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]models.Registrant, 0, p.Limit)
	for rows.Next() {
		var reg models.Registrant
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.Email, &reg.RegistrationDate, &reg.Status,
			&reg.EmailSent, &reg.EmailSentAt, &reg.ReminderSent, &reg.ReminderSentAt,
			&reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, 0, err
		}
		list = append(list, reg)
	}
	return list, total, rows.Err()
}

// UpdateStatus sets the registrant's status, returning the updated row or nil
// if absent.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status) (*models.Registrant, error) {
	q := `UPDATE registrants SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + registrantColumns
	return scanRegistrant(r.pool.QueryRow(ctx, q, id, status))
}

// Delete removes a registrant, returning the deleted row or nil if absent.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (*models.Registrant, error) {
	q := `DELETE FROM registrants WHERE id = $1 RETURNING ` + registrantColumns
	return scanRegistrant(r.pool.QueryRow(ctx, q, id))
}

// DeleteMany removes all registrants whose ids are in the list and returns the
// deleted count. Unknown ids are simply not counted.
func (r *Repository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM registrants WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// MarkEmailSent records that the confirmation email was delivered.
func (r *Repository) MarkEmailSent(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE registrants SET email_sent = TRUE, email_sent_at = NOW(), updated_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(ctx, q, id)
	return err
}

// MarkReminderSent records that the reminder email was delivered.
func (r *Repository) MarkReminderSent(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE registrants SET reminder_sent = TRUE, reminder_sent_at = NOW(), updated_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(ctx, q, id)
	return err
}

// ListForReminder returns registrants eligible for a reminder email:
// registered or confirmed, with no reminder sent yet.
func (r *Repository) ListForReminder(ctx context.Context) ([]models.Registrant, error) {
	q := `SELECT ` + registrantColumns + ` FROM registrants
		WHERE status IN ('registered', 'confirmed') AND reminder_sent = FALSE
		ORDER BY registration_date`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.Registrant
	for rows.Next() {
		var reg models.Registrant
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.Email, &reg.RegistrationDate, &reg.Status,
			&reg.EmailSent, &reg.EmailSentAt, &reg.ReminderSent, &reg.ReminderSentAt,
			&reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, reg)
	}
	return list, rows.Err()
}
