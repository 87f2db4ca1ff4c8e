package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/codealpha/backend/internal/models"
	"go.uber.org/zap"
)

type badgeRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewBadgeRepository creates a new MySQL backed instance of the BadgeRepository interface
func NewBadgeRepository(db *sql.DB, logger *zap.Logger) *badgeRepository {
	return &badgeRepository{
		db:     db,
		logger: logger,
	}
}

// Method GetBadges is a BadgeRepository implementation for retrieving all badges awarded to a user.
func (r *badgeRepository) GetBadges(ctx context.Context, userID string) ([]models.BadgeAward, error) {
	query := `
		SELECT user_id, code, title, description, icon, earned_at
		FROM user_badges
		WHERE user_id = ?
		ORDER BY earned_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to query badges", zap.Error(err))
		return nil, fmt.Errorf("failed to query badges: %w", err)
	}
	defer rows.Close()

	badges := make([]models.BadgeAward, 0)
	for rows.Next() {
		var b models.BadgeAward
		if err := rows.Scan(&b.UserID, &b.Code, &b.Title, &b.Description, &b.Icon, &b.EarnedAt); err != nil {
			r.logger.Error("failed to scan badge", zap.Error(err))
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		badges = append(badges, b)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return badges, nil
}

// Method InsertBadge is a BadgeRepository implementation for awarding a badge to a user.
//
// The (user_id, code) unique key turns a second award into a no-op reported as models.ErrBadgeAlreadyAwarded.
func (r *badgeRepository) InsertBadge(ctx context.Context, userID string, badge models.Badge, earnedAt time.Time) (*models.BadgeAward, error) {
	query := `
		INSERT IGNORE INTO user_badges (user_id, code, title, description, icon, earned_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, userID, badge.Code, badge.Title, badge.Description, badge.Icon, earnedAt)
	if err != nil {
		r.logger.Error("failed to insert badge", zap.Error(err))
		return nil, fmt.Errorf("failed to insert badge: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, models.ErrBadgeAlreadyAwarded
	}

	return &models.BadgeAward{
		Badge:    badge,
		UserID:   userID,
		EarnedAt: earnedAt,
	}, nil
}
