package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/codealpha/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	selectProgressQuery = regexp.QuoteMeta(`SELECT id, user_id, lesson_id, score, is_completed, updated_at FROM progress WHERE user_id = ? ORDER BY updated_at, id`)
	upsertProgressQuery = regexp.QuoteMeta(`INSERT INTO progress (id, user_id, lesson_id, score, is_completed, updated_at) VALUES (?, ?, ?, ?, ?, ?) ON DUPLICATE KEY UPDATE`)
	selectLessonQuery   = regexp.QuoteMeta(`SELECT id, user_id, lesson_id, score, is_completed, updated_at FROM progress WHERE user_id = ? AND lesson_id = ?`)
	progressColumns     = []string{"id", "user_id", "lesson_id", "score", "is_completed", "updated_at"}
)

// setupProgressRepository creates a progress repository with a mock database
func setupProgressRepository(t *testing.T) (*progressRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	repo := NewProgressRepository(db, logger)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewProgressRepository(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	db := &sql.DB{}

	repo := NewProgressRepository(db, logger)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
	assert.Equal(t, logger, repo.logger)
}

func TestProgressRepository_GetProgress(t *testing.T) {
	updatedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(progressColumns).
					AddRow("p1", "u1", "lesson-0-1", 70, true, updatedAt).
					AddRow("p2", "u1", "lesson-1-1", 40, false, updatedAt.Add(time.Minute))
				mock.ExpectQuery(selectProgressQuery).WithArgs("u1").WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name: "no progress",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectProgressQuery).WithArgs("u1").WillReturnRows(sqlmock.NewRows(progressColumns))
			},
			expectedCount: 0,
		},
		{
			name: "database query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectProgressQuery).WithArgs("u1").WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "scan error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(progressColumns).
					AddRow("p1", "u1", "lesson-0-1", "invalid", true, updatedAt)
				mock.ExpectQuery(selectProgressQuery).WithArgs("u1").WillReturnRows(rows)
			},
			expectedError: true,
		},
		{
			name: "rows error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(progressColumns).
					AddRow("p1", "u1", "lesson-0-1", 70, true, updatedAt).
					RowError(0, errors.New("row error"))
				mock.ExpectQuery(selectProgressQuery).WithArgs("u1").WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupProgressRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			progress, err := repo.GetProgress(context.Background(), "u1")

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, progress)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, progress)
				assert.Len(t, progress, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgressRepository_UpsertProgress(t *testing.T) {
	updatedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	record := &models.ProgressRecord{
		UserID:      "u1",
		LessonID:    "lesson-1-1",
		Score:       90,
		IsCompleted: true,
		UpdatedAt:   updatedAt,
	}

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedID    string
	}{
		{
			name: "insert or overwrite",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsertProgressQuery).
					WithArgs(sqlmock.AnyArg(), "u1", "lesson-1-1", 90, true, updatedAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(selectLessonQuery).
					WithArgs("u1", "lesson-1-1").
					WillReturnRows(sqlmock.NewRows(progressColumns).
						AddRow("existing-id", "u1", "lesson-1-1", 90, true, updatedAt))
			},
			expectedID: "existing-id",
		},
		{
			name: "exec error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsertProgressQuery).
					WithArgs(sqlmock.AnyArg(), "u1", "lesson-1-1", 90, true, updatedAt).
					WillReturnError(errors.New("deadlock"))
			},
			expectedError: true,
		},
		{
			name: "read back error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsertProgressQuery).
					WithArgs(sqlmock.AnyArg(), "u1", "lesson-1-1", 90, true, updatedAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(selectLessonQuery).
					WithArgs("u1", "lesson-1-1").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupProgressRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			saved, err := repo.UpsertProgress(context.Background(), record)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, saved)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, saved.ID)
				assert.Equal(t, 90, saved.Score)
				assert.True(t, saved.IsCompleted)
				assert.True(t, updatedAt.Equal(saved.UpdatedAt))
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
