package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aayakar/webinar-backend/internal/models"
	"github.com/aayakar/webinar-backend/pkg/response"
)

const (
	// ContextAdmin is the key for the authenticated admin in gin context.
	ContextAdmin = "admin"
)

// TokenFunc validates a bearer token and returns the admin ID it is bound to.
type TokenFunc func(token string) (uuid.UUID, error)

// AdminResolver loads an admin by ID. A nil admin with nil error means absent.
type AdminResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
}

// Auth returns a middleware that validates the bearer token, resolves the
// admin it belongs to, and attaches the admin (without password hash) to the
// request context. Resolution hits the store on every request.
func Auth(validate TokenFunc, resolver AdminResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "Access token required")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Access token required")
			c.Abort()
			return
		}
		adminID, err := validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}
		admin, err := resolver.GetByID(c.Request.Context(), adminID)
		if err != nil {
			response.Internal(c, "Failed to resolve admin")
			c.Abort()
			return
		}
		if admin == nil {
			response.Unauthorized(c, "Invalid token - admin not found")
			c.Abort()
			return
		}
		c.Set(ContextAdmin, admin.ToPublic())
		c.Next()
	}
}

// AdminFrom returns the authenticated admin attached by Auth.
func AdminFrom(c *gin.Context) (models.AdminPublic, bool) {
	v, ok := c.Get(ContextAdmin)
	if !ok {
		return models.AdminPublic{}, false
	}
	admin, ok := v.(models.AdminPublic)
	return admin, ok
}
