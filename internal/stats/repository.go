package stats

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aayakar/webinar-backend/internal/models"
)

// DailyCount is one calendar day's registration count.
type DailyCount struct {
	Date  string `json:"date"` // YYYY-MM-DD, server-local
	Count int    `json:"count"`
}

// RecentRegistration is the trimmed registrant shape for the recent list.
type RecentRegistration struct {
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	RegistrationDate time.Time     `json:"registrationDate"`
	Status           models.Status `json:"status"`
}

// Repository runs aggregation queries over registrants.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a stats repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// CountAll returns the total registrant count.
func (r *Repository) CountAll(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM registrants`).Scan(&n)
	return n, err
}

// CountSince counts registrants whose registration date is at or after t.
func (r *Repository) CountSince(ctx context.Context, t time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrants WHERE registration_date >= $1`, t).Scan(&n)
	return n, err
}

// CountBetween counts registrants registered in [from, to).
func (r *Repository) CountBetween(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrants WHERE registration_date >= $1 AND registration_date < $2`,
		from, to).Scan(&n)
	return n, err
}

// CountByStatus returns registrant counts grouped by status.
func (r *Repository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM registrants GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	byStatus := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		byStatus[status] = count
	}
	return byStatus, rows.Err()
}

// RegistrationDatesSince returns registration timestamps at or after t,
// ascending. Day bucketing happens in Go (see BucketByDay) so calendar-day
// boundaries use the same clock as the window computation instead of the
// database session's timezone.
func (r *Repository) RegistrationDatesSince(ctx context.Context, t time.Time) ([]time.Time, error) {
	const q = `SELECT registration_date FROM registrants
		WHERE registration_date >= $1
		ORDER BY registration_date`
	rows, err := r.pool.Query(ctx, q, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	dates := make([]time.Time, 0)
	for rows.Next() {
		var ts time.Time
		if err := rows.Scan(&ts); err != nil {
			return nil, err
		}
		dates = append(dates, ts)
	}
	return dates, rows.Err()
}

// Recent returns the most recently registered registrants, newest first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]RecentRegistration, error) {
	const q = `SELECT name, email, registration_date, status
		FROM registrants ORDER BY registration_date DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	recent := make([]RecentRegistration, 0, limit)
	for rows.Next() {
		var rec RecentRegistration
		if err := rows.Scan(&rec.Name, &rec.Email, &rec.RegistrationDate, &rec.Status); err != nil {
			return nil, err
		}
		recent = append(recent, rec)
	}
	return recent, rows.Err()
}
