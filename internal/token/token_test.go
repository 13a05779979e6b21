package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/teamhubhq/teamhub-api/internal/constants"
	"github.com/teamhubhq/teamhub-api/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    "user-1",
		Name:  "Ada",
		Email: "ada@example.com",
	}
}

func TestManager_IssueAndVerify(t *testing.T) {
	manager := NewManager("test-secret")

	signed, err := manager.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := manager.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.ID)
	require.Equal(t, "Ada", claims.Name)
	require.Equal(t, "ada@example.com", claims.Email)

	// Expiry is 15 days out
	require.WithinDuration(t, time.Now().Add(constants.TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestManager_VerifyWrongSecret(t *testing.T) {
	manager := NewManager("test-secret")

	signed, err := manager.Issue(testUser())
	require.NoError(t, err)

	other := NewManager("other-secret")
	_, err = other.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_VerifyGarbage(t *testing.T) {
	manager := NewManager("test-secret")

	_, err := manager.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_VerifyExpired(t *testing.T) {
	manager := NewManager("test-secret")

	expired := Claims{
		ID:    "user-1",
		Name:  "Ada",
		Email: "ada@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = manager.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}
