package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopkart/storefront/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// Manager signs and verifies session tokens.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// GenerateToken issues a session token for the given user.
func (m *Manager) GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"admin": user.IsAdmin,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken validates a token string and returns its claims.
func (m *Manager) ParseToken(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TokenClaims extracts and validates the token from an Authorization header.
func (m *Manager) TokenClaims(authorization string) (jwt.MapClaims, error) {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return nil, ErrInvalidToken
	}
	return m.ParseToken(strings.TrimPrefix(authorization, "Bearer "))
}

// UserFromClaims rebuilds the user identity carried by a token.
func UserFromClaims(claims jwt.MapClaims) models.User {
	user := models.User{}
	if sub, ok := claims["sub"].(string); ok {
		user.ID = sub
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		user.Name = name
	}
	if admin, ok := claims["admin"].(bool); ok {
		user.IsAdmin = admin
	}
	return user
}
