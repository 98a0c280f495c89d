package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/aayakar/webinar-backend/internal/models"
)

type fakeResolver struct {
	admins map[uuid.UUID]*models.Admin
}

func (f *fakeResolver) GetByID(_ context.Context, id uuid.UUID) (*models.Admin, error) {
	return f.admins[id], nil
}

func newAuthRouter(t *testing.T, validate TokenFunc, resolver AdminResolver) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Auth(validate, resolver), func(c *gin.Context) {
		admin, ok := AdminFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, admin)
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	adminID := uuid.New()
	resolver := &fakeResolver{admins: map[uuid.UUID]*models.Admin{
		adminID: {ID: adminID, Name: "A", Email: "a@x.com", PasswordHash: "hash", Role: "admin"},
	}}
	validate := func(token string) (uuid.UUID, error) {
		if token == "good" {
			return adminID, nil
		}
		return uuid.Nil, errors.New("invalid token")
	}
	router := newAuthRouter(t, validate, resolver)

	t.Run("missing authorization header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid or expired token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad")
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid or expired token")
	})

	t.Run("token bound to a deleted admin", func(t *testing.T) {
		orphanID := uuid.New()
		orphanValidate := func(string) (uuid.UUID, error) { return orphanID, nil }
		orphanRouter := newAuthRouter(t, orphanValidate, resolver)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good")
		orphanRouter.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token attaches admin without hash", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good")
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "a@x.com")
		require.NotContains(t, rec.Body.String(), "hash")
	})
}
