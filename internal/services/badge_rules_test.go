package services

import (
	"testing"

	"github.com/codealpha/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateBadgeRules(t *testing.T) {
	tests := []struct {
		name     string
		progress []models.ProgressRecord
		lessonID string
		expected []models.BadgeCode
	}{
		{
			name:     "single record fires first-step",
			progress: completed("u1", "lesson-0-1"),
			lessonID: "lesson-0-1",
			expected: []models.BadgeCode{models.BadgeFirstStep},
		},
		{
			name: "single failed record still fires first-step",
			progress: []models.ProgressRecord{
				{UserID: "u1", LessonID: "lesson-0-1", Score: 10},
			},
			lessonID: "lesson-0-1",
			expected: []models.BadgeCode{models.BadgeFirstStep},
		},
		{
			name:     "two output lessons fire hello-world",
			progress: completed("u1", "lesson-0-1", "lesson-1-1", "lesson-1-3"),
			lessonID: "lesson-1-3",
			expected: []models.BadgeCode{models.BadgeHelloWorld},
		},
		{
			name:     "hello-world needs the current lesson in the unit",
			progress: completed("u1", "lesson-1-1", "lesson-1-2", "lesson-0-2"),
			lessonID: "lesson-0-2",
			expected: nil,
		},
		{
			name: "incomplete unit lessons do not count",
			progress: []models.ProgressRecord{
				{UserID: "u1", LessonID: "lesson-1-1", Score: 90, IsCompleted: true},
				{UserID: "u1", LessonID: "lesson-1-2", Score: 20, IsCompleted: false},
			},
			lessonID: "lesson-1-2",
			expected: nil,
		},
		{
			name:     "two variables lessons are not enough",
			progress: completed("u1", "lesson-2-1", "lesson-2-2"),
			lessonID: "lesson-2-2",
			expected: nil,
		},
		{
			name:     "three variables lessons fire variable-master",
			progress: completed("u1", "lesson-2-1", "lesson-2-2", "lesson-2-4"),
			lessonID: "lesson-2-4",
			expected: []models.BadgeCode{models.BadgeVariableMaster},
		},
		{
			name:     "first completion in output unit",
			progress: completed("u1", "lesson-1-1"),
			lessonID: "lesson-1-1",
			expected: []models.BadgeCode{models.BadgeFirstStep},
		},
		{
			name:     "no progress fires nothing",
			progress: nil,
			lessonID: "lesson-0-1",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EvaluateBadgeRules(tt.progress, tt.lessonID))
		})
	}
}

func TestBadgeCatalog(t *testing.T) {
	badges := BadgeCatalog()
	assert.Len(t, badges, 6)

	seen := make(map[models.BadgeCode]bool)
	for _, b := range badges {
		assert.NotEmpty(t, b.Title)
		assert.NotEmpty(t, b.Icon)
		assert.False(t, seen[b.Code], "duplicate badge %s", b.Code)
		seen[b.Code] = true
	}

	badges[0].Title = "changed"
	assert.NotEqual(t, "changed", BadgeCatalog()[0].Title)
}

func TestBadgeByCode(t *testing.T) {
	badge, ok := BadgeByCode(models.BadgeHelloWorld)
	assert.True(t, ok)
	assert.Equal(t, "Hello World", badge.Title)

	_, ok = BadgeByCode("unknown")
	assert.False(t, ok)
}
