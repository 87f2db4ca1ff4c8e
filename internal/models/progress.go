package models

import "time"

// CompletionThreshold is the minimum score at which a lesson counts as completed
const CompletionThreshold = 50

// MaxIDLength is the longest user or lesson id the stores accept
const MaxIDLength = 64

// ProgressRecord represents a user's latest result for a lesson.
// There is at most one record per (UserID, LessonID) pair.
type ProgressRecord struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	LessonID    string    `json:"lessonId"`
	Score       int       `json:"score"`
	IsCompleted bool      `json:"isCompleted"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsCompletedScore reports whether a score completes a lesson
func IsCompletedScore(score int) bool {
	return score >= CompletionThreshold
}

// CompleteLessonRequest represents a request to complete a lesson.
//
// Score is optional; when it is omitted the score is derived from the lesson type.
type CompleteLessonRequest struct {
	Score             *int `json:"score,omitempty" validate:"omitempty,min=0,max=100"`
	PracticeCompleted bool `json:"practiceCompleted,omitempty"`
}

// SubmitQuizRequest represents a set of quiz answers keyed by quiz ID
type SubmitQuizRequest struct {
	Answers map[string]string `json:"answers" validate:"required,min=1,dive,keys,required,endkeys,required"`
}

// CompletionResponse is returned after a lesson completion was recorded
type CompletionResponse struct {
	Progress  *ProgressRecord `json:"progress"`
	NewBadges []BadgeAward    `json:"newBadges"`
	Quiz      *QuizResult     `json:"quiz,omitempty"`
}

// CourseProgressResponse represents the completion percentage of a course
type CourseProgressResponse struct {
	CourseID         string `json:"courseId"`
	CompletedLessons int    `json:"completedLessons"`
	TotalLessons     int    `json:"totalLessons"`
	Percent          int    `json:"percent"`
}

// NextLesson points at the first lesson the user has not completed yet
type NextLesson struct {
	CourseID    string `json:"courseId"`
	CourseTitle string `json:"courseTitle"`
	LevelNumber int    `json:"levelNumber"`
	LessonID    string `json:"lessonId"`
	LessonTitle string `json:"lessonTitle"`
}

// Dashboard aggregates a user's progress over the whole catalog
type Dashboard struct {
	CompletedLessons int                      `json:"completedLessons"`
	TotalLessons     int                      `json:"totalLessons"`
	OverallPercent   int                      `json:"overallPercent"`
	Courses          []CourseProgressResponse `json:"courses"`
	NextLesson       *NextLesson              `json:"nextLesson"`
	RecentActivity   []ProgressRecord         `json:"recentActivity"`
	Badges           []BadgeAward             `json:"badges"`
}
