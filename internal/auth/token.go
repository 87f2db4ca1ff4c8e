// Package auth validates learner access tokens and issues guest tokens
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes learner access tokens from guest session tokens
type TokenType string

const (
	TokenTypeAccess TokenType = "access"
	TokenTypeGuest  TokenType = "guest"
)

// TokenService handles JWT token generation and validation
type TokenService struct {
	secret            string
	accessTokenExpiry time.Duration
	guestTokenExpiry  time.Duration
}

// NewTokenService creates a new token service
func NewTokenService(secret string, accessExpiry, guestExpiry time.Duration) *TokenService {
	return &TokenService{
		secret:            secret,
		accessTokenExpiry: accessExpiry,
		guestTokenExpiry:  guestExpiry,
	}
}

// GuestTokenExpiry returns how long a guest session stays valid
func (ts *TokenService) GuestTokenExpiry() time.Duration {
	return ts.guestTokenExpiry
}

// GenerateAccessToken creates an access token for a registered learner.
// Access tokens are normally issued by the auth service sharing the same secret.
func (ts *TokenService) GenerateAccessToken(userID string) (string, error) {
	return ts.generate(userID, TokenTypeAccess, ts.accessTokenExpiry)
}

// GenerateGuestToken creates a token for a guest session
func (ts *TokenService) GenerateGuestToken(userID string) (string, error) {
	return ts.generate(userID, TokenTypeGuest, ts.guestTokenExpiry)
}

func (ts *TokenService) generate(userID string, tokenType TokenType, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(expiry).Unix(),
		"iat":     time.Now().Unix(),
		"type":    string(tokenType),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ts.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}

	return tokenString, nil
}

// ValidateToken validates a token of the expected type and returns the user ID it was issued for
func (ts *TokenService) ValidateToken(tokenString string, expected TokenType) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	tokenType, ok := claims["type"].(string)
	if !ok || TokenType(tokenType) != expected {
		return "", fmt.Errorf("token is not a %s token", expected)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id not found in token")
	}

	return userID, nil
}
