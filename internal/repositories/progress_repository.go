package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/codealpha/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type progressRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProgressRepository creates a new MySQL backed instance of the ProgressRepository interface
func NewProgressRepository(db *sql.DB, logger *zap.Logger) *progressRepository {
	return &progressRepository{
		db:     db,
		logger: logger,
	}
}

// Method GetProgress is a ProgressRepository implementation for retrieving all progress records of a user.
func (r *progressRepository) GetProgress(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	query := `
		SELECT id, user_id, lesson_id, score, is_completed, updated_at
		FROM progress
		WHERE user_id = ?
		ORDER BY updated_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to query progress", zap.Error(err))
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	progress := make([]models.ProgressRecord, 0)
	for rows.Next() {
		var p models.ProgressRecord
		if err := rows.Scan(&p.ID, &p.UserID, &p.LessonID, &p.Score, &p.IsCompleted, &p.UpdatedAt); err != nil {
			r.logger.Error("failed to scan progress record", zap.Error(err))
			return nil, fmt.Errorf("failed to scan progress record: %w", err)
		}
		progress = append(progress, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return progress, nil
}

// Method UpsertProgress is a ProgressRepository implementation for creating or overwriting a progress record.
//
// The (user_id, lesson_id) unique key makes the insert and the overwrite a single atomic statement;
// the id of an existing row is never changed.
func (r *progressRepository) UpsertProgress(ctx context.Context, record *models.ProgressRecord) (*models.ProgressRecord, error) {
	query := `
		INSERT INTO progress (id, user_id, lesson_id, score, is_completed, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			score = VALUES(score),
			is_completed = VALUES(is_completed),
			updated_at = VALUES(updated_at)
	`

	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(), record.UserID, record.LessonID, record.Score, record.IsCompleted, record.UpdatedAt)
	if err != nil {
		r.logger.Error("failed to upsert progress", zap.Error(err))
		return nil, fmt.Errorf("failed to upsert progress: %w", err)
	}

	return r.getByLesson(ctx, record.UserID, record.LessonID)
}

func (r *progressRepository) getByLesson(ctx context.Context, userID, lessonID string) (*models.ProgressRecord, error) {
	query := `
		SELECT id, user_id, lesson_id, score, is_completed, updated_at
		FROM progress
		WHERE user_id = ? AND lesson_id = ?
	`

	var p models.ProgressRecord
	err := r.db.QueryRowContext(ctx, query, userID, lessonID).
		Scan(&p.ID, &p.UserID, &p.LessonID, &p.Score, &p.IsCompleted, &p.UpdatedAt)
	if err != nil {
		r.logger.Error("failed to read back progress record", zap.Error(err))
		return nil, fmt.Errorf("failed to read back progress record: %w", err)
	}

	return &p, nil
}
