package admins

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aayakar/webinar-backend/internal/middleware"
	"github.com/aayakar/webinar-backend/internal/models"
	"github.com/aayakar/webinar-backend/pkg/database"
	"github.com/aayakar/webinar-backend/pkg/response"
	"github.com/aayakar/webinar-backend/pkg/utils"
)

// LoginRequest is the body for POST /api/v1/admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateRequest is the body for POST /api/v1/admin/create.
type CreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateProfileRequest is the body for PUT /api/v1/admin/profile.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ChangePasswordRequest is the body for PUT /api/v1/admin/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// LoginResponse carries the admin and its bearer token.
type LoginResponse struct {
	Admin models.AdminPublic `json:"admin"`
	Token string             `json:"token"`
}

// Handler handles admin HTTP endpoints.
type Handler struct {
	repo   *Repository
	jwt    *JWTService
	logger *zap.Logger
}

// NewHandler creates an admins handler.
func NewHandler(repo *Repository, jwt *JWTService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, jwt: jwt, logger: logger}
}

// Login handles POST /api/v1/admin/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		response.BadRequest(c, "Email and password are required")
		return
	}

	admin, err := h.repo.GetByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		h.logger.Error("lookup admin failed", zap.Error(err))
		response.Internal(c, "Failed to log in")
		return
	}
	// Same message for unknown email and wrong password.
	if admin == nil || !utils.CheckPassword(req.Password, admin.PasswordHash) {
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := h.jwt.Generate(admin.ID, admin.Email, admin.Role)
	if err != nil {
		h.logger.Error("generate token failed", zap.Error(err))
		response.Internal(c, "Failed to generate token")
		return
	}

	response.OKMessage(c, "Login successful", LoginResponse{Admin: admin.ToPublic(), Token: token})
}

// Create handles POST /api/v1/admin/create. No auth required: this is the
// initial-setup path; it is rate limited at the router.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		response.BadRequest(c, "Name, email, and password are required")
		return
	}
	role := req.Role
	if role == "" {
		role = "admin"
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("hash password failed", zap.Error(err))
		response.Internal(c, "Failed to create admin")
		return
	}

	admin, err := h.repo.Create(c.Request.Context(),
		strings.TrimSpace(req.Name), strings.ToLower(strings.TrimSpace(req.Email)), hash, role)
	if err != nil {
		if database.IsUniqueViolation(err) {
			response.Conflict(c, "Admin with this email already exists")
			return
		}
		h.logger.Error("create admin failed", zap.Error(err))
		response.Internal(c, "Failed to create admin")
		return
	}

	response.Created(c, "Admin created successfully", admin.ToPublic())
}

// GetProfile handles GET /api/v1/admin/profile.
func (h *Handler) GetProfile(c *gin.Context) {
	admin, ok := middleware.AdminFrom(c)
	if !ok {
		response.Unauthorized(c, "Access token required")
		return
	}
	response.OK(c, admin)
}

// UpdateProfile handles PUT /api/v1/admin/profile.
func (h *Handler) UpdateProfile(c *gin.Context) {
	admin, ok := middleware.AdminFrom(c)
	if !ok {
		response.Unauthorized(c, "Access token required")
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if email != "" {
		existing, err := h.repo.GetByEmail(c.Request.Context(), email)
		if err != nil {
			h.logger.Error("lookup admin failed", zap.Error(err))
			response.Internal(c, "Failed to update profile")
			return
		}
		if existing != nil && existing.ID != admin.ID {
			response.Conflict(c, "Email already in use by another admin")
			return
		}
	}

	updated, err := h.repo.UpdateProfile(c.Request.Context(), admin.ID, name, email)
	if err != nil {
		if database.IsUniqueViolation(err) {
			response.Conflict(c, "Email already in use by another admin")
			return
		}
		h.logger.Error("update profile failed", zap.Error(err))
		response.Internal(c, "Failed to update profile")
		return
	}
	if updated == nil {
		response.NotFound(c, "Admin not found")
		return
	}

	response.OKMessage(c, "Profile updated successfully", updated.ToPublic())
}

// ChangePassword handles PUT /api/v1/admin/password.
func (h *Handler) ChangePassword(c *gin.Context) {
	admin, ok := middleware.AdminFrom(c)
	if !ok {
		response.Unauthorized(c, "Access token required")
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		response.BadRequest(c, "Current password and new password are required")
		return
	}

	full, err := h.repo.GetByID(c.Request.Context(), admin.ID)
	if err != nil || full == nil {
		h.logger.Error("lookup admin failed", zap.Error(err))
		response.Internal(c, "Failed to change password")
		return
	}
	if !utils.CheckPassword(req.CurrentPassword, full.PasswordHash) {
		response.Unauthorized(c, "Current password is incorrect")
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		h.logger.Error("hash password failed", zap.Error(err))
		response.Internal(c, "Failed to change password")
		return
	}
	if err := h.repo.UpdatePassword(c.Request.Context(), admin.ID, hash); err != nil {
		h.logger.Error("update password failed", zap.Error(err))
		response.Internal(c, "Failed to change password")
		return
	}

	response.OKMessage(c, "Password changed successfully", nil)
}
