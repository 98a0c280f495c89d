package models

import (
	"time"

	"github.com/google/uuid"
)

// Email types for outbound mail.
const (
	EmailTypeRegistrationConfirmation = "registration_confirmation"
	EmailTypeReminder                 = "reminder"
)

// Email log delivery statuses.
const (
	EmailLogStatusPending = "pending"
	EmailLogStatusSent    = "sent"
	EmailLogStatusFailed  = "failed"
)

// EmailLog records outbound registration emails.
type EmailLog struct {
	ID             uuid.UUID  `json:"id"`
	RegistrantID   *uuid.UUID `json:"registrantId,omitempty"`
	EmailType      string     `json:"emailType"`
	RecipientEmail string     `json:"recipientEmail"`
	Subject        string     `json:"subject,omitempty"`
	Status         string     `json:"status"`
	SentAt         *time.Time `json:"sentAt,omitempty"`
	ErrorMessage   string     `json:"errorMessage,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}
