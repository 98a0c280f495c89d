package models

import (
	"time"

	"github.com/google/uuid"
)

// Status is a registrant's lifecycle tag.
type Status string

const (
	StatusRegistered Status = "registered"
	StatusConfirmed  Status = "confirmed"
	StatusAttended   Status = "attended"
	StatusCancelled  Status = "cancelled"
)

// ValidStatus reports whether s is one of the known registrant statuses.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusRegistered, StatusConfirmed, StatusAttended, StatusCancelled:
		return true
	}
	return false
}

// Statuses lists the valid status values, for error messages.
func Statuses() []string {
	return []string{
		string(StatusRegistered),
		string(StatusConfirmed),
		string(StatusAttended),
		string(StatusCancelled),
	}
}

// Registrant is a person registered for the webinar.
type Registrant struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	RegistrationDate time.Time  `json:"registrationDate"`
	Status           Status     `json:"status"`
	EmailSent        bool       `json:"emailSent"`
	EmailSentAt      *time.Time `json:"emailSentAt,omitempty"`
	ReminderSent     bool       `json:"reminderSent"`
	ReminderSentAt   *time.Time `json:"reminderSentAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// RegistrantPublic is the registrant shape returned from the public registration endpoint.
type RegistrantPublic struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registrationDate"`
	Status           Status    `json:"status"`
}

// ToPublic converts a Registrant to its public shape.
func (r *Registrant) ToPublic() RegistrantPublic {
	return RegistrantPublic{
		ID:               r.ID,
		Name:             r.Name,
		Email:            r.Email,
		RegistrationDate: r.RegistrationDate,
		Status:           r.Status,
	}
}
