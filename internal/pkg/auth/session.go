// internal/pkg/auth/session.go
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/your-org/smartcart-backend/internal/config"
)

// Claims represents the JWT claims for a shopper session
type Claims struct {
	SessionID string `json:"session_id"`
	TokenType string `json:"token_type"` // always "session"
	jwt.RegisteredClaims
}

// SessionManager issues and validates anonymous shopper session tokens.
// There are no user accounts; the token only names the session that owns
// a cart, a detection loop, and a payment attempt.
type SessionManager struct {
	config *config.Config
}

// NewSessionManager creates a new session manager
func NewSessionManager(cfg *config.Config) *SessionManager {
	return &SessionManager{
		config: cfg,
	}
}

// Issue creates a fresh session and returns its identifier and token
func (m *SessionManager) Issue() (string, string, error) {
	sessionID := uuid.New().String()
	now := time.Now().UTC()

	claims := &Claims{
		SessionID: sessionID,
		TokenType: "session",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.JWT.SessionExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.config.App.Name,
			Subject:   fmt.Sprintf("session:%s", sessionID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.config.JWT.Secret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return sessionID, signed, nil
}

// Validate validates and parses a session token
func (m *SessionManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.config.JWT.Secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.TokenType != "session" {
		return nil, fmt.Errorf("invalid token type: expected session, got %s", claims.TokenType)
	}
	if claims.SessionID == "" {
		return nil, fmt.Errorf("session id missing from token")
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts JWT token from Authorization header
func ExtractTokenFromHeader(authHeader string) string {
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return ""
}
