package queue

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestEmailJobEnvelope(t *testing.T) {
	t.Parallel()

	payload := EmailPayload{
		RegistrantID:   uuid.New(),
		RecipientEmail: "attendee@example.com",
		RecipientName:  "Attendee",
	}

	job, err := newEmailJob(JobTypeReminder, payload)
	require.NoError(t, err)
	require.NotEmpty(t, job.ID)
	require.Equal(t, JobTypeReminder, job.Type)
	require.Equal(t, 0, job.Attempt)
	require.False(t, job.CreatedAt.IsZero())

	// What goes onto the wire must come back intact on the consumer side.
	raw, err := json.Marshal(job)
	require.NoError(t, err)

	var decoded Job
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, job.ID, decoded.ID)
	require.Equal(t, job.Type, decoded.Type)
	require.Equal(t, job.Attempt, decoded.Attempt)

	got, err := decoded.DecodePayload()
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestDecodePayloadInvalid(t *testing.T) {
	t.Parallel()

	job := Job{Payload: json.RawMessage(`{"registrant_id": 42}`)}
	_, err := job.DecodePayload()
	require.Error(t, err)
}

func TestRetryQueueSelection(t *testing.T) {
	t.Parallel()

	// Retry increments Attempt before choosing a destination, so attempts
	// 1..MaxRetries-1 go back on the work queue and MaxRetries lands in the DLQ.
	require.Equal(t, QueueEmails, retryQueue(1))
	require.Equal(t, QueueEmails, retryQueue(MaxRetries-1))
	require.Equal(t, QueueDLQ, retryQueue(MaxRetries))
	require.Equal(t, QueueDLQ, retryQueue(MaxRetries+1))
}
