package services

import (
	"fmt"
	"time"

	"github.com/codealpha/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GuestIDPrefix marks user ids that belong to guest sessions
const GuestIDPrefix = "guest-"

// GuestTokenIssuer is the interface that wraps guest token generation
type GuestTokenIssuer interface {
	GenerateGuestToken(userID string) (string, error)
	GuestTokenExpiry() time.Duration
}

type guestService struct {
	tokens GuestTokenIssuer
	logger *zap.Logger
}

// NewGuestService creates a new guest session service
func NewGuestService(tokens GuestTokenIssuer, logger *zap.Logger) *guestService {
	return &guestService{
		tokens: tokens,
		logger: logger,
	}
}

// StartSession creates a guest identity and the token that authenticates it
func (s *guestService) StartSession() (*models.GuestSessionResponse, error) {
	userID := GuestIDPrefix + uuid.NewString()

	token, err := s.tokens.GenerateGuestToken(userID)
	if err != nil {
		s.logger.Error("failed to generate guest token", zap.Error(err))
		return nil, fmt.Errorf("failed to start guest session: %w", err)
	}

	s.logger.Info("guest session started", zap.String("user_id", userID))

	return &models.GuestSessionResponse{
		UserID:    userID,
		Token:     token,
		ExpiresIn: int64(s.tokens.GuestTokenExpiry().Seconds()),
	}, nil
}
