package admins

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", 1)
	adminID := uuid.New()

	token, err := svc.Generate(adminID, "a@x.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	require.Equal(t, adminID, claims.AdminID)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, Issuer, claims.Issuer)
}

func TestJWTRejectsForeignIssuer(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", 1)

	// A token signed with the right secret but minted elsewhere must not pass.
	for _, issuer := range []string{"", "some-other-service"} {
		foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			AdminID: uuid.New(),
			Email:   "a@x.com",
			Role:    "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
		})
		signed, err := foreign.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.Validate(signed)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewJWTService("secret-one", 1).Generate(uuid.New(), "a@x.com", "admin")
	require.NoError(t, err)

	_, err = NewJWTService("secret-two", 1).Validate(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", -1)
	token, err := svc.Generate(uuid.New(), "a@x.com", "admin")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService("test-secret", 1).Validate("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
