package registrants

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aayakar/webinar-backend/internal/emails"
	"github.com/aayakar/webinar-backend/internal/mailer"
	"github.com/aayakar/webinar-backend/internal/models"
	"github.com/aayakar/webinar-backend/pkg/database"
	"github.com/aayakar/webinar-backend/pkg/queue"
	"github.com/aayakar/webinar-backend/pkg/response"
)

// RegisterRequest is the body for POST /api/v1/users/register.
type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateStatusRequest is the body for PUT /api/v1/users/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// DeleteManyRequest is the body for DELETE /api/v1/users.
type DeleteManyRequest struct {
	UserIDs []string `json:"userIds"`
}

// ListResponse is the payload for GET /api/v1/users.
type ListResponse struct {
	Users      []models.Registrant `json:"users"`
	Pagination Pagination          `json:"pagination"`
	Filters    ListParams          `json:"filters"`
}

// DeletedUser identifies a removed registrant in delete responses.
type DeletedUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Handler handles registrant HTTP endpoints.
type Handler struct {
	repo      *Repository
	emailLogs *emails.Repository
	mail      mailer.Mailer
	queue     *queue.Queue
	logger    *zap.Logger
}

// NewHandler creates a registrants handler.
func NewHandler(repo *Repository, emailLogs *emails.Repository, mail mailer.Mailer, q *queue.Queue, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, emailLogs: emailLogs, mail: mail, queue: q, logger: logger}
}

// Register handles POST /api/v1/users/register. Creates the registrant and
// sends the confirmation email inline; a delivery failure fails the request.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		response.BadRequest(c, "Name and email are required")
		return
	}
	name, err := ValidateName(req.Name)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	email := NormalizeEmail(req.Email)
	if err := ValidateEmail(email); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	existing, err := h.repo.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("lookup registrant failed", zap.Error(err))
		response.Internal(c, "Failed to register")
		return
	}
	if existing != nil {
		response.Conflict(c, "Email already registered for this webinar")
		return
	}

	reg, err := h.repo.Create(c.Request.Context(), name, email)
	if err != nil {
		// Concurrent duplicates race past the lookup and land on the unique index.
		if database.IsUniqueViolation(err) {
			response.Conflict(c, "Email already registered for this webinar")
			return
		}
		h.logger.Error("create registrant failed", zap.Error(err))
		response.Internal(c, "Failed to register")
		return
	}

	logEntry, err := h.emailLogs.Create(c.Request.Context(), reg.ID,
		models.EmailTypeRegistrationConfirmation, reg.Email, mailer.SubjectConfirmation)
	if err != nil {
		h.logger.Error("create email log failed", zap.Error(err), zap.String("registrant_id", reg.ID.String()))
		response.Internal(c, "Failed to register")
		return
	}
	if err := h.mail.SendConfirmation(c.Request.Context(), reg.Name, reg.Email); err != nil {
		h.logger.Error("send confirmation failed", zap.Error(err), zap.String("email", reg.Email))
		_ = h.emailLogs.MarkFailed(c.Request.Context(), logEntry.ID, err.Error())
		response.Internal(c, "Failed to send confirmation email")
		return
	}
	_ = h.emailLogs.MarkSent(c.Request.Context(), logEntry.ID)
	_ = h.repo.MarkEmailSent(c.Request.Context(), reg.ID)

	response.Created(c, "Successfully registered for webinar", reg.ToPublic())
}

// List handles GET /api/v1/users with filtering, search, sort and pagination.
func (h *Handler) List(c *gin.Context) {
	params, err := ParseListParams(
		c.Query("page"), c.Query("limit"), c.Query("status"),
		c.Query("search"), c.Query("sortBy"), c.Query("sortOrder"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	users, total, err := h.repo.List(c.Request.Context(), params)
	if err != nil {
		h.logger.Error("list registrants failed", zap.Error(err))
		response.Internal(c, "Failed to list users")
		return
	}

	response.OK(c, ListResponse{
		Users:      users,
		Pagination: params.PageSummary(total),
		Filters:    params,
	})
}

// GetByID handles GET /api/v1/users/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}
	reg, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("get registrant failed", zap.Error(err))
		response.Internal(c, "Failed to load user")
		return
	}
	if reg == nil {
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, reg)
}

// UpdateStatus handles PUT /api/v1/users/:id/status.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.Status == "" {
		response.BadRequest(c, "Status is required")
		return
	}
	if !models.ValidStatus(req.Status) {
		response.BadRequest(c, fmt.Sprintf("Status must be one of: %s", strings.Join(models.Statuses(), ", ")))
		return
	}

	reg, err := h.repo.UpdateStatus(c.Request.Context(), id, models.Status(req.Status))
	if err != nil {
		h.logger.Error("update status failed", zap.Error(err))
		response.Internal(c, "Failed to update status")
		return
	}
	if reg == nil {
		response.NotFound(c, "User not found")
		return
	}
	response.OKMessage(c, "User status updated successfully", reg)
}

// Delete handles DELETE /api/v1/users/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}
	reg, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("delete registrant failed", zap.Error(err))
		response.Internal(c, "Failed to delete user")
		return
	}
	if reg == nil {
		response.NotFound(c, "User not found")
		return
	}
	response.OKMessage(c, "User deleted successfully", gin.H{
		"deletedUser": DeletedUser{ID: reg.ID, Name: reg.Name, Email: reg.Email},
	})
}

// DeleteMany handles DELETE /api/v1/users. Ids that do not parse or do not
// exist are skipped; the response reports the accurate deleted count.
func (h *Handler) DeleteMany(c *gin.Context) {
	var req DeleteManyRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.UserIDs) == 0 {
		response.BadRequest(c, "User IDs array is required")
		return
	}
	ids := make([]uuid.UUID, 0, len(req.UserIDs))
	for _, raw := range req.UserIDs {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}

	var deleted int64
	if len(ids) > 0 {
		var err error
		deleted, err = h.repo.DeleteMany(c.Request.Context(), ids)
		if err != nil {
			h.logger.Error("bulk delete failed", zap.Error(err))
			response.Internal(c, "Failed to delete users")
			return
		}
	}
	response.OKMessage(c, fmt.Sprintf("%d users deleted successfully", deleted), gin.H{
		"deletedCount": deleted,
	})
}

// ResendConfirmation handles POST /api/v1/users/:id/resend-confirmation.
// Enqueues a confirmation job for the background worker.
func (h *Handler) ResendConfirmation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}
	reg, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("get registrant failed", zap.Error(err))
		response.Internal(c, "Failed to load user")
		return
	}
	if reg == nil {
		response.NotFound(c, "User not found")
		return
	}

	err = h.queue.EnqueueEmail(c.Request.Context(), queue.JobTypeConfirmation, queue.EmailPayload{
		RegistrantID:   reg.ID,
		RecipientEmail: reg.Email,
		RecipientName:  reg.Name,
	})
	if err != nil {
		h.logger.Error("enqueue confirmation failed", zap.Error(err))
		response.Internal(c, "Failed to queue confirmation email")
		return
	}
	response.OKMessage(c, "Confirmation email queued", nil)
}

// QueueReminders handles POST /api/v1/users/reminders. Enqueues a reminder
// job for every registrant that has not received one yet.
func (h *Handler) QueueReminders(c *gin.Context) {
	pending, err := h.repo.ListForReminder(c.Request.Context())
	if err != nil {
		h.logger.Error("list reminder targets failed", zap.Error(err))
		response.Internal(c, "Failed to queue reminders")
		return
	}
	if len(pending) == 0 {
		response.OKMessage(c, "No users found to send reminders to", gin.H{"queuedCount": 0})
		return
	}

	queued := 0
	for _, reg := range pending {
		err := h.queue.EnqueueEmail(c.Request.Context(), queue.JobTypeReminder, queue.EmailPayload{
			RegistrantID:   reg.ID,
			RecipientEmail: reg.Email,
			RecipientName:  reg.Name,
		})
		if err != nil {
			h.logger.Error("enqueue reminder failed", zap.Error(err), zap.String("registrant_id", reg.ID.String()))
			continue
		}
		queued++
	}
	response.OKMessage(c, fmt.Sprintf("%d reminder emails queued", queued), gin.H{"queuedCount": queued})
}
