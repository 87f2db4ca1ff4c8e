package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/cenkalti/backoff/v4"
	"github.com/codealpha/backend/internal/models"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ProgressRepository is the interface that wraps methods for progress records data access
type ProgressRepository interface {
	// Method GetProgress retrieve all progress records of a user.
	//
	// A user without progress gets an empty result and no error.
	GetProgress(ctx context.Context, userID string) ([]models.ProgressRecord, error)
	// Method UpsertProgress creates or overwrites the progress record for the (UserID, LessonID) pair of "record".
	//
	// When a record already exists its ID is kept and only Score, IsCompleted and UpdatedAt are overwritten.
	// The stored record is returned.
	UpsertProgress(ctx context.Context, record *models.ProgressRecord) (*models.ProgressRecord, error)
}

// BadgeRepository is the interface that wraps methods for badge awards data access
type BadgeRepository interface {
	// Method GetBadges retrieve all badges awarded to a user.
	GetBadges(ctx context.Context, userID string) ([]models.BadgeAward, error)
	// Method InsertBadge awards "badge" to a user.
	//
	// If the user already holds a badge with the same code, models.ErrBadgeAlreadyAwarded is returned
	// and the existing award is left untouched.
	InsertBadge(ctx context.Context, userID string, badge models.Badge, earnedAt time.Time) (*models.BadgeAward, error)
}

// RetryConfig bounds the retries of the progress upsert
type RetryConfig struct {
	MaxRetries      uint64
	InitialInterval time.Duration
}

// DefaultRetryConfig is used when no retry configuration is provided
var DefaultRetryConfig = RetryConfig{
	MaxRetries:      3,
	InitialInterval: 100 * time.Millisecond,
}

type progressService struct {
	progressRepo ProgressRepository
	badgeRepo    BadgeRepository
	logger       *zap.Logger
	retry        RetryConfig
	now          func() time.Time
}

// NewProgressService creates a new progress and badge engine backed by the given stores
func NewProgressService(progressRepo ProgressRepository, badgeRepo BadgeRepository, logger *zap.Logger, retry RetryConfig) *progressService {
	return &progressService{
		progressRepo: progressRepo,
		badgeRepo:    badgeRepo,
		logger:       logger,
		retry:        retry,
		now:          time.Now,
	}
}

// RecordLessonCompletion saves the score of a lesson and returns the badges newly earned by it.
//
// A failure to save the progress record fails the whole call with models.ErrStoreUnavailable.
// Failures while awarding badges are logged and never returned.
func (s *progressService) RecordLessonCompletion(ctx context.Context, userID, lessonID string, score int) ([]models.BadgeAward, error) {
	if !validID(userID) {
		return nil, models.ErrInvalidUser
	}
	if !validID(lessonID) {
		return nil, models.ErrInvalidLesson
	}
	if score < 0 || score > 100 {
		return nil, models.ErrInvalidScore
	}

	record := &models.ProgressRecord{
		UserID:      userID,
		LessonID:    lessonID,
		Score:       score,
		IsCompleted: models.IsCompletedScore(score),
		UpdatedAt:   s.now().UTC(),
	}

	if err := s.upsertWithRetry(ctx, record); err != nil {
		s.logger.Error("failed to save progress",
			zap.String("user_id", userID),
			zap.String("lesson_id", lessonID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to save progress: %w: %w", models.ErrStoreUnavailable, err)
	}

	return s.awardBadges(ctx, userID, lessonID), nil
}

// validID reports whether id is non-empty and fits the id columns, which are sized in characters
func validID(id string) bool {
	return id != "" && utf8.RuneCountInString(id) <= models.MaxIDLength
}

// upsertWithRetry retries transient store failures with exponential backoff
func (s *progressService) upsertWithRetry(ctx context.Context, record *models.ProgressRecord) error {
	operation := func() error {
		_, err := s.progressRepo.UpsertProgress(ctx, record)
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.retry.InitialInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(b, s.retry.MaxRetries), ctx)

	notify := func(err error, wait time.Duration) {
		s.logger.Warn("retrying progress upsert",
			zap.String("user_id", record.UserID),
			zap.String("lesson_id", record.LessonID),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}

	return backoff.RetryNotify(operation, policy, notify)
}

// awardBadges evaluates the badge rules against the user's current progress and awards every badge not held yet.
//
// Store failures here only cost the user a badge until the next completion re-evaluates the rules,
// so they are logged and the returned list is simply shorter.
func (s *progressService) awardBadges(ctx context.Context, userID, lessonID string) []models.BadgeAward {
	newBadges := make([]models.BadgeAward, 0)

	progress, err := s.progressRepo.GetProgress(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to load progress for badge evaluation",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return newBadges
	}

	codes := EvaluateBadgeRules(progress, lessonID)
	if len(codes) == 0 {
		return newBadges
	}

	held := make(map[models.BadgeCode]bool)
	awarded, err := s.badgeRepo.GetBadges(ctx, userID)
	if err != nil {
		// the store still rejects duplicates on insert
		s.logger.Warn("failed to load badges", zap.String("user_id", userID), zap.Error(err))
	}
	for _, a := range awarded {
		held[a.Code] = true
	}

	var awardErr error
	for _, code := range codes {
		if held[code] {
			continue
		}
		badge, ok := BadgeByCode(code)
		if !ok {
			continue
		}

		award, err := s.badgeRepo.InsertBadge(ctx, userID, badge, s.now().UTC())
		if errors.Is(err, models.ErrBadgeAlreadyAwarded) {
			continue
		}
		if err != nil {
			awardErr = multierr.Append(awardErr, fmt.Errorf("failed to award %s: %w", code, err))
			continue
		}

		s.logger.Info("badge awarded", zap.String("user_id", userID), zap.String("code", string(code)))
		newBadges = append(newBadges, *award)
	}

	if awardErr != nil {
		s.logger.Warn("failed to award badges",
			zap.String("user_id", userID),
			zap.String("lesson_id", lessonID),
			zap.Error(awardErr),
		)
	}

	return newBadges
}

// ComputeCourseProgress returns the percentage of lessons of a course the user has completed
//
// "lessons" is the lesson catalog; only lessons belonging to "courseID" are counted.
func (s *progressService) ComputeCourseProgress(ctx context.Context, userID, courseID string, lessons []models.Lesson) (int, error) {
	progress, err := s.GetProgress(ctx, userID)
	if err != nil {
		return 0, err
	}
	return CourseProgress(progress, courseID, lessons), nil
}

// CourseProgress returns round(100 * completed / total) for the lessons of a course, or 0 for a course without lessons
func CourseProgress(progress []models.ProgressRecord, courseID string, lessons []models.Lesson) int {
	completed, total := countCourseLessons(progress, courseID, lessons)
	return percent(completed, total)
}

func countCourseLessons(progress []models.ProgressRecord, courseID string, lessons []models.Lesson) (int, int) {
	done := completedLessonSet(progress)
	completed, total := 0, 0
	for _, lesson := range lessons {
		if lesson.CourseID != courseID {
			continue
		}
		total++
		if done[lesson.ID] {
			completed++
		}
	}
	return completed, total
}

func completedLessonSet(progress []models.ProgressRecord) map[string]bool {
	done := make(map[string]bool, len(progress))
	for _, p := range progress {
		if p.IsCompleted {
			done[p.LessonID] = true
		}
	}
	return done
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}

// GetProgress retrieves all progress records of a user
func (s *progressService) GetProgress(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	if userID == "" {
		return nil, models.ErrInvalidUser
	}

	progress, err := s.progressRepo.GetProgress(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get progress", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get progress: %w: %w", models.ErrStoreUnavailable, err)
	}
	if progress == nil {
		progress = []models.ProgressRecord{}
	}

	return progress, nil
}

// GetLessonProgress retrieves the progress record of a single lesson, or nil if the user has none
func (s *progressService) GetLessonProgress(ctx context.Context, userID, lessonID string) (*models.ProgressRecord, error) {
	progress, err := s.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, p := range progress {
		if p.LessonID == lessonID {
			return &p, nil
		}
	}
	return nil, nil
}

// GetBadges retrieves all badges awarded to a user
func (s *progressService) GetBadges(ctx context.Context, userID string) ([]models.BadgeAward, error) {
	if userID == "" {
		return nil, models.ErrInvalidUser
	}

	badges, err := s.badgeRepo.GetBadges(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get badges", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get badges: %w: %w", models.ErrStoreUnavailable, err)
	}
	if badges == nil {
		badges = []models.BadgeAward{}
	}

	return badges, nil
}
