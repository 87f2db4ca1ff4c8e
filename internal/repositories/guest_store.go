package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/codealpha/backend/internal/models"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	guestProgressKeyPrefix = "guest:progress:"
	guestBadgesKeyPrefix   = "guest:badges:"
)

// guestStore keeps guest progress and badges in Redis hashes that expire with the guest session.
//
// guest:progress:{userID} maps lesson id to a JSON progress record,
// guest:badges:{userID} maps badge code to a JSON badge award.
type guestStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewGuestStore creates a Redis backed store implementing both ProgressRepository and BadgeRepository
func NewGuestStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *guestStore {
	return &guestStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func progressKey(userID string) string {
	return guestProgressKeyPrefix + userID
}

func badgesKey(userID string) string {
	return guestBadgesKeyPrefix + userID
}

// Method GetProgress is a ProgressRepository implementation for retrieving all progress records of a guest.
func (s *guestStore) GetProgress(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	values, err := s.client.HVals(ctx, progressKey(userID)).Result()
	if err != nil {
		s.logger.Error("failed to read guest progress", zap.Error(err))
		return nil, fmt.Errorf("failed to read guest progress: %w", err)
	}

	progress := make([]models.ProgressRecord, 0, len(values))
	for _, v := range values {
		var p models.ProgressRecord
		if err := json.Unmarshal([]byte(v), &p); err != nil {
			s.logger.Error("failed to decode guest progress record", zap.Error(err))
			return nil, fmt.Errorf("failed to decode guest progress record: %w", err)
		}
		progress = append(progress, p)
	}

	sort.Slice(progress, func(i, j int) bool {
		if progress[i].UpdatedAt.Equal(progress[j].UpdatedAt) {
			return progress[i].LessonID < progress[j].LessonID
		}
		return progress[i].UpdatedAt.Before(progress[j].UpdatedAt)
	})

	return progress, nil
}

// Method UpsertProgress is a ProgressRepository implementation for creating or overwriting a guest progress record.
//
// The read of the existing record and the write run under WATCH, so a concurrent write to the same guest
// aborts the transaction instead of losing the existing record id.
func (s *guestStore) UpsertProgress(ctx context.Context, record *models.ProgressRecord) (*models.ProgressRecord, error) {
	key := progressKey(record.UserID)
	var saved models.ProgressRecord

	txf := func(tx *redis.Tx) error {
		saved = *record
		saved.ID = uuid.NewString()

		existing, err := tx.HGet(ctx, key, record.LessonID).Result()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			var prev models.ProgressRecord
			if err := json.Unmarshal([]byte(existing), &prev); err != nil {
				return fmt.Errorf("failed to decode guest progress record: %w", err)
			}
			saved.ID = prev.ID
		}

		data, err := json.Marshal(saved)
		if err != nil {
			return fmt.Errorf("failed to encode guest progress record: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, record.LessonID, data)
			pipe.Expire(ctx, key, s.ttl)
			return nil
		})
		return err
	}

	if err := s.client.Watch(ctx, txf, key); err != nil {
		s.logger.Error("failed to upsert guest progress", zap.Error(err))
		return nil, fmt.Errorf("failed to upsert guest progress: %w", err)
	}

	return &saved, nil
}

// Method GetBadges is a BadgeRepository implementation for retrieving all badges awarded to a guest.
func (s *guestStore) GetBadges(ctx context.Context, userID string) ([]models.BadgeAward, error) {
	values, err := s.client.HVals(ctx, badgesKey(userID)).Result()
	if err != nil {
		s.logger.Error("failed to read guest badges", zap.Error(err))
		return nil, fmt.Errorf("failed to read guest badges: %w", err)
	}

	badges := make([]models.BadgeAward, 0, len(values))
	for _, v := range values {
		var b models.BadgeAward
		if err := json.Unmarshal([]byte(v), &b); err != nil {
			s.logger.Error("failed to decode guest badge", zap.Error(err))
			return nil, fmt.Errorf("failed to decode guest badge: %w", err)
		}
		badges = append(badges, b)
	}

	sort.Slice(badges, func(i, j int) bool {
		if badges[i].EarnedAt.Equal(badges[j].EarnedAt) {
			return badges[i].Code < badges[j].Code
		}
		return badges[i].EarnedAt.Before(badges[j].EarnedAt)
	})

	return badges, nil
}

// Method InsertBadge is a BadgeRepository implementation for awarding a badge to a guest.
func (s *guestStore) InsertBadge(ctx context.Context, userID string, badge models.Badge, earnedAt time.Time) (*models.BadgeAward, error) {
	award := models.BadgeAward{
		Badge:    badge,
		UserID:   userID,
		EarnedAt: earnedAt,
	}
	data, err := json.Marshal(award)
	if err != nil {
		return nil, fmt.Errorf("failed to encode guest badge: %w", err)
	}

	key := badgesKey(userID)
	var created *redis.BoolCmd
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		created = pipe.HSetNX(ctx, key, string(badge.Code), data)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		s.logger.Error("failed to insert guest badge", zap.Error(err))
		return nil, fmt.Errorf("failed to insert guest badge: %w", err)
	}
	if !created.Val() {
		return nil, models.ErrBadgeAlreadyAwarded
	}

	return &award, nil
}
