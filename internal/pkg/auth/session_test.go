// internal/pkg/auth/session_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/smartcart-backend/internal/config"
)

func sessionConfig(secret string) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Smart Cart Backend"},
		JWT: config.JWTConfig{
			Secret:        secret,
			SessionExpiry: time.Hour,
		},
	}
}

func TestIssueAndValidate(t *testing.T) {
	m := NewSessionManager(sessionConfig("a-test-secret-that-is-long-enough-123"))

	sessionID, token, err := m.Issue()
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
	assert.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, "session", claims.TokenType)
}

func TestValidate_RejectsGarbage(t *testing.T) {
	m := NewSessionManager(sessionConfig("a-test-secret-that-is-long-enough-123"))

	_, err := m.Validate("not-a-jwt")
	assert.Error(t, err)
}

func TestValidate_RejectsWrongSecret(t *testing.T) {
	issuer := NewSessionManager(sessionConfig("a-test-secret-that-is-long-enough-123"))
	validator := NewSessionManager(sessionConfig("a-different-secret-also-long-enough-456"))

	_, token, err := issuer.Issue()
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", ExtractTokenFromHeader("Bearer abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader("abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
	assert.Equal(t, "", ExtractTokenFromHeader("Bearer "))
}
