package services

import (
	"context"
	"fmt"

	"github.com/codealpha/backend/internal/models"
	"go.uber.org/zap"
)

const (
	// defaultLessonScore is given for finishing a concept, code or project lesson
	defaultLessonScore = 70
	// practiceCompletedScore is given when the practice exercise produced the expected output
	practiceCompletedScore = 100
)

// LessonCatalog is the interface that wraps read access to the static course catalog
type LessonCatalog interface {
	Courses() []models.Course
	Course(id string) (*models.Course, bool)
	Lessons() []models.Lesson
	LessonsByCourse(courseID string) []models.Lesson
	Lesson(id string) (*models.Lesson, bool)
	CodesForLesson(lessonID string) []models.LessonCode
}

// CompletionRecorder is the interface that wraps the lesson completion operation of the progress engine
type CompletionRecorder interface {
	// Method RecordLessonCompletion saves the score of a lesson and returns the newly earned badges.
	RecordLessonCompletion(ctx context.Context, userID, lessonID string, score int) ([]models.BadgeAward, error)
	// Method GetLessonProgress retrieve the stored progress record of a lesson, or "nil" when there is none.
	GetLessonProgress(ctx context.Context, userID, lessonID string) (*models.ProgressRecord, error)
}

type lessonService struct {
	catalog  LessonCatalog
	recorder CompletionRecorder
	logger   *zap.Logger
}

// NewLessonService creates a new lesson service
func NewLessonService(catalog LessonCatalog, recorder CompletionRecorder, logger *zap.Logger) *lessonService {
	return &lessonService{
		catalog:  catalog,
		recorder: recorder,
		logger:   logger,
	}
}

// CompleteLesson resolves the score of a finished lesson and records it.
//
// Lessons missing from the catalog are still recorded; without an explicit score they get the default score.
func (s *lessonService) CompleteLesson(ctx context.Context, userID, lessonID string, req models.CompleteLessonRequest) (*models.CompletionResponse, error) {
	lesson, _ := s.catalog.Lesson(lessonID)

	score, err := ScoreForLesson(lesson, req)
	if err != nil {
		return nil, err
	}

	return s.record(ctx, userID, lessonID, score)
}

// record saves the score and reads back the stored record.
// A failed read back is logged and leaves Progress nil; the score is already saved at that point.
func (s *lessonService) record(ctx context.Context, userID, lessonID string, score int) (*models.CompletionResponse, error) {
	badges, err := s.recorder.RecordLessonCompletion(ctx, userID, lessonID, score)
	if err != nil {
		return nil, err
	}

	saved, err := s.recorder.GetLessonProgress(ctx, userID, lessonID)
	if err != nil {
		s.logger.Warn("failed to read saved progress",
			zap.String("user_id", userID),
			zap.String("lesson_id", lessonID),
			zap.Error(err),
		)
	}

	return &models.CompletionResponse{
		Progress:  saved,
		NewBadges: badges,
	}, nil
}

// SubmitQuiz grades the answers of a quiz lesson and records the resulting score
func (s *lessonService) SubmitQuiz(ctx context.Context, userID, lessonID string, answers map[string]string) (*models.CompletionResponse, error) {
	lesson, ok := s.catalog.Lesson(lessonID)
	if !ok {
		return nil, models.ErrLessonNotFound
	}

	quiz, err := GradeQuiz(lesson, answers)
	if err != nil {
		return nil, err
	}

	result, err := s.record(ctx, userID, lessonID, quiz.Score)
	if err != nil {
		return nil, fmt.Errorf("failed to record quiz result: %w", err)
	}
	result.Quiz = quiz

	return result, nil
}

// ScoreForLesson returns the score a finished lesson is recorded with.
//
// An explicit score always wins. Quiz lessons require one. Practice lessons score 100 when the
// exercise was completed and 70 otherwise; every other lesson scores 70.
func ScoreForLesson(lesson *models.Lesson, req models.CompleteLessonRequest) (int, error) {
	if req.Score != nil {
		if *req.Score < 0 || *req.Score > 100 {
			return 0, models.ErrInvalidScore
		}
		return *req.Score, nil
	}
	if lesson == nil {
		return defaultLessonScore, nil
	}

	switch lesson.LessonType {
	case models.LessonTypeQuiz:
		return 0, fmt.Errorf("quiz lessons require a score: %w", models.ErrInvalidScore)
	case models.LessonTypePractice:
		if req.PracticeCompleted {
			return practiceCompletedScore, nil
		}
		return defaultLessonScore, nil
	default:
		return defaultLessonScore, nil
	}
}

// GradeQuiz grades answers keyed by quiz ID against the lesson's answer key.
//
// Unanswered questions and unknown options count as wrong. The score is round(100 * correct / total).
func GradeQuiz(lesson *models.Lesson, answers map[string]string) (*models.QuizResult, error) {
	if len(lesson.Quizzes) == 0 {
		return nil, models.ErrNoQuiz
	}

	result := &models.QuizResult{
		Total:     len(lesson.Quizzes),
		Questions: make([]models.QuestionResult, 0, len(lesson.Quizzes)),
	}
	for _, quiz := range lesson.Quizzes {
		correct := false
		if chosen, ok := answers[quiz.ID]; ok {
			for _, opt := range quiz.Options {
				if opt.ID == chosen {
					correct = opt.IsCorrect
					break
				}
			}
		}
		if correct {
			result.Correct++
		}
		result.Questions = append(result.Questions, models.QuestionResult{
			QuizID:      quiz.ID,
			Correct:     correct,
			Explanation: quiz.Explanation,
		})
	}
	result.Score = percent(result.Correct, result.Total)

	return result, nil
}
