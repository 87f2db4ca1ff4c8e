package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codealpha/backend/internal/catalog"
	"github.com/codealpha/backend/internal/middleware"
	"github.com/codealpha/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockProgressService is a mock implementation of ProgressService
type mockProgressService struct {
	progress []models.ProgressRecord
	record   *models.ProgressRecord
	badges   []models.BadgeAward
	err      error
}

func (m *mockProgressService) GetProgress(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	return m.progress, m.err
}

func (m *mockProgressService) GetLessonProgress(ctx context.Context, userID, lessonID string) (*models.ProgressRecord, error) {
	return m.record, m.err
}

func (m *mockProgressService) GetBadges(ctx context.Context, userID string) ([]models.BadgeAward, error) {
	return m.badges, m.err
}

// mockLessonService is a mock implementation of LessonService
type mockLessonService struct {
	result     *models.CompletionResponse
	err        error
	userID     string
	lessonID   string
	completeRq models.CompleteLessonRequest
	answers    map[string]string
	callCount  int
}

func (m *mockLessonService) CompleteLesson(ctx context.Context, userID, lessonID string, req models.CompleteLessonRequest) (*models.CompletionResponse, error) {
	m.callCount++
	m.userID, m.lessonID, m.completeRq = userID, lessonID, req
	return m.result, m.err
}

func (m *mockLessonService) SubmitQuiz(ctx context.Context, userID, lessonID string, answers map[string]string) (*models.CompletionResponse, error) {
	m.callCount++
	m.userID, m.lessonID, m.answers = userID, lessonID, answers
	return m.result, m.err
}

// mockDashboardService is a mock implementation of DashboardService
type mockDashboardService struct {
	course    *models.CourseProgressResponse
	dashboard *models.Dashboard
	err       error
}

func (m *mockDashboardService) GetCourseProgress(ctx context.Context, userID, courseID string) (*models.CourseProgressResponse, error) {
	return m.course, m.err
}

func (m *mockDashboardService) GetDashboard(ctx context.Context, userID string) (*models.Dashboard, error) {
	return m.dashboard, m.err
}

// mockGuestService is a mock implementation of GuestSessionService
type mockGuestService struct {
	session *models.GuestSessionResponse
	err     error
}

func (m *mockGuestService) StartSession() (*models.GuestSessionResponse, error) {
	return m.session, m.err
}

// withUser authenticates every request as userID
func withUser(userID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithUserID(r.Context(), userID)))
		})
	}
}

func newProgressRouter(h *ProgressHandler, userID string) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		if userID != "" {
			r.Use(withUser(userID))
		}
		h.RegisterRoutes(r)
	})
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCatalogHandler(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	cat, err := catalog.Load()
	require.NoError(t, err)

	badges := []models.Badge{{Code: models.BadgeFirstStep, Title: "첫 발자국"}}
	handler := NewCatalogHandler(cat, badges, logger)
	router := chi.NewRouter()
	router.Route("/api/v1", handler.RegisterRoutes)

	t.Run("list courses", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/courses", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var courses []models.Course
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &courses))
		assert.Len(t, courses, 7)
		assert.Equal(t, "level-0", courses[0].ID)
	})

	t.Run("course detail", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/courses/level-1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var course models.CourseDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &course))
		assert.Equal(t, "level-1", course.ID)
		assert.Len(t, course.Lessons, 4)
		assert.NotContains(t, w.Body.String(), "isCorrect")
	})

	t.Run("unknown course", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/courses/level-99", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("quiz lesson hides answers", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/lessons/lesson-1-3", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "isCorrect")
		var lesson models.LessonDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lesson))
		assert.Len(t, lesson.Quizzes, 2)

		// the catalog itself keeps the answer key
		stored, _ := cat.Lesson("lesson-1-3")
		assert.True(t, stored.Quizzes[0].Options[1].IsCorrect)
	})

	t.Run("lesson with code examples", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/lessons/lesson-2-2", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var lesson models.LessonDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lesson))
		assert.Len(t, lesson.Codes, 3)
	})

	t.Run("unknown lesson", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/lessons/lesson-x", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("badge catalog", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/badges/catalog", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var got []models.Badge
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, badges, got)
	})
}

func TestProgressHandler_CompleteLesson(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	saved := &models.CompletionResponse{
		Progress:  &models.ProgressRecord{ID: "p1", UserID: "u1", LessonID: "lesson-0-1", Score: 70, IsCompleted: true},
		NewBadges: []models.BadgeAward{{Badge: models.Badge{Code: models.BadgeFirstStep}}},
	}

	tests := []struct {
		name           string
		userID         string
		body           string
		lessons        *mockLessonService
		expectedStatus int
		expectedCalls  int
	}{
		{
			name:           "without body",
			userID:         "u1",
			lessons:        &mockLessonService{result: saved},
			expectedStatus: http.StatusOK,
			expectedCalls:  1,
		},
		{
			name:           "with score",
			userID:         "u1",
			body:           `{"score": 85}`,
			lessons:        &mockLessonService{result: saved},
			expectedStatus: http.StatusOK,
			expectedCalls:  1,
		},
		{
			name:           "score above range",
			userID:         "u1",
			body:           `{"score": 101}`,
			lessons:        &mockLessonService{result: saved},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative score",
			userID:         "u1",
			body:           `{"score": -5}`,
			lessons:        &mockLessonService{result: saved},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			userID:         "u1",
			body:           `{"score": "high"}`,
			lessons:        &mockLessonService{result: saved},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown field",
			userID:         "u1",
			body:           `{"points": 10}`,
			lessons:        &mockLessonService{result: saved},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "quiz lesson without score",
			userID:         "u1",
			lessons:        &mockLessonService{err: fmt.Errorf("quiz lessons require a score: %w", models.ErrInvalidScore)},
			expectedStatus: http.StatusBadRequest,
			expectedCalls:  1,
		},
		{
			name:           "store unavailable",
			userID:         "u1",
			lessons:        &mockLessonService{err: fmt.Errorf("failed to save progress: %w", models.ErrStoreUnavailable)},
			expectedStatus: http.StatusServiceUnavailable,
			expectedCalls:  1,
		},
		{
			name:           "unexpected error",
			userID:         "u1",
			lessons:        &mockLessonService{err: errors.New("boom")},
			expectedStatus: http.StatusInternalServerError,
			expectedCalls:  1,
		},
		{
			name:           "unauthenticated",
			lessons:        &mockLessonService{result: saved},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProgressHandler(&mockProgressService{}, tt.lessons, &mockDashboardService{}, logger)
			router := newProgressRouter(handler, tt.userID)

			w := doRequest(t, router, http.MethodPost, "/api/v1/lessons/lesson-0-1/complete", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedCalls, tt.lessons.callCount)
			if tt.expectedStatus == http.StatusServiceUnavailable {
				assert.Contains(t, w.Body.String(), "progress was not saved, please retry")
			}
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "u1", tt.lessons.userID)
				assert.Equal(t, "lesson-0-1", tt.lessons.lessonID)

				var resp models.CompletionResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "p1", resp.Progress.ID)
				require.Len(t, resp.NewBadges, 1)
				assert.Equal(t, models.BadgeFirstStep, resp.NewBadges[0].Code)
			}
		})
	}
}

func TestProgressHandler_CompleteLesson_PassesRequest(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	lessons := &mockLessonService{result: &models.CompletionResponse{NewBadges: []models.BadgeAward{}}}
	router := newProgressRouter(NewProgressHandler(&mockProgressService{}, lessons, &mockDashboardService{}, logger), "u1")

	w := doRequest(t, router, http.MethodPost, "/api/v1/lessons/lesson-1-4/complete", `{"score": 0, "practiceCompleted": true}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, lessons.completeRq.Score)
	assert.Equal(t, 0, *lessons.completeRq.Score)
	assert.True(t, lessons.completeRq.PracticeCompleted)
	assert.Contains(t, w.Body.String(), `"newBadges":[]`)
}

func TestProgressHandler_SubmitQuiz(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	graded := &models.CompletionResponse{
		Progress:  &models.ProgressRecord{LessonID: "lesson-1-3", Score: 50, IsCompleted: true},
		NewBadges: []models.BadgeAward{},
		Quiz:      &models.QuizResult{Score: 50, Correct: 1, Total: 2},
	}

	tests := []struct {
		name           string
		body           string
		lessons        *mockLessonService
		expectedStatus int
	}{
		{
			name:           "graded",
			body:           `{"answers": {"quiz-1-1": "opt-1-1-2", "quiz-1-2": "opt-1-2-1"}}`,
			lessons:        &mockLessonService{result: graded},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing answers",
			body:           `{}`,
			lessons:        &mockLessonService{result: graded},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty answers",
			body:           `{"answers": {}}`,
			lessons:        &mockLessonService{result: graded},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty option id",
			body:           `{"answers": {"quiz-1-1": ""}}`,
			lessons:        &mockLessonService{result: graded},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown lesson",
			body:           `{"answers": {"quiz-1-1": "opt-1-1-2"}}`,
			lessons:        &mockLessonService{err: models.ErrLessonNotFound},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "lesson without quiz",
			body:           `{"answers": {"quiz-1-1": "opt-1-1-2"}}`,
			lessons:        &mockLessonService{err: models.ErrNoQuiz},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProgressHandler(&mockProgressService{}, tt.lessons, &mockDashboardService{}, logger)
			router := newProgressRouter(handler, "u1")

			w := doRequest(t, router, http.MethodPost, "/api/v1/lessons/lesson-1-3/quiz", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "opt-1-1-2", tt.lessons.answers["quiz-1-1"])
				var resp models.CompletionResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.NotNil(t, resp.Quiz)
				assert.Equal(t, 50, resp.Quiz.Score)
			}
		})
	}
}

func TestProgressHandler_Reads(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	record := &models.ProgressRecord{ID: "p1", UserID: "u1", LessonID: "lesson-0-1", Score: 70, IsCompleted: true}

	tests := []struct {
		name           string
		path           string
		progress       *mockProgressService
		dashboard      *mockDashboardService
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "progress list",
			path:           "/api/v1/progress",
			progress:       &mockProgressService{progress: []models.ProgressRecord{*record}},
			dashboard:      &mockDashboardService{},
			expectedStatus: http.StatusOK,
			expectedBody:   `"lessonId":"lesson-0-1"`,
		},
		{
			name:           "progress store unavailable",
			path:           "/api/v1/progress",
			progress:       &mockProgressService{err: fmt.Errorf("failed to get progress: %w", models.ErrStoreUnavailable)},
			dashboard:      &mockDashboardService{},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `"error":"failed to get progress, please retry"`,
		},
		{
			name:           "lesson progress",
			path:           "/api/v1/progress/lessons/lesson-0-1",
			progress:       &mockProgressService{record: record},
			dashboard:      &mockDashboardService{},
			expectedStatus: http.StatusOK,
			expectedBody:   `"score":70`,
		},
		{
			name:           "lesson without progress",
			path:           "/api/v1/progress/lessons/lesson-0-2",
			progress:       &mockProgressService{},
			dashboard:      &mockDashboardService{},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "course progress",
			path:           "/api/v1/progress/courses/level-1",
			progress:       &mockProgressService{},
			dashboard:      &mockDashboardService{course: &models.CourseProgressResponse{CourseID: "level-1", Percent: 50}},
			expectedStatus: http.StatusOK,
			expectedBody:   `"percent":50`,
		},
		{
			name:           "unknown course",
			path:           "/api/v1/progress/courses/level-99",
			progress:       &mockProgressService{},
			dashboard:      &mockDashboardService{err: models.ErrCourseNotFound},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "badges",
			path:           "/api/v1/badges",
			progress:       &mockProgressService{badges: []models.BadgeAward{{Badge: models.Badge{Code: models.BadgeHelloWorld}}}},
			dashboard:      &mockDashboardService{},
			expectedStatus: http.StatusOK,
			expectedBody:   `"code":"hello-world"`,
		},
		{
			name:           "dashboard",
			path:           "/api/v1/dashboard",
			progress:       &mockProgressService{},
			dashboard:      &mockDashboardService{dashboard: &models.Dashboard{OverallPercent: 25}},
			expectedStatus: http.StatusOK,
			expectedBody:   `"overallPercent":25`,
		},
		{
			name:           "dashboard error",
			path:           "/api/v1/dashboard",
			progress:       &mockProgressService{},
			dashboard:      &mockDashboardService{err: errors.New("boom")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProgressHandler(tt.progress, &mockLessonService{}, tt.dashboard, logger)
			router := newProgressRouter(handler, "u1")

			w := doRequest(t, router, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestGuestHandler_StartSession(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("created", func(t *testing.T) {
		svc := &mockGuestService{session: &models.GuestSessionResponse{UserID: "guest-1", Token: "tok", ExpiresIn: 3600}}
		router := chi.NewRouter()
		router.Route("/api/v1/guest", NewGuestHandler(svc, logger).RegisterRoutes)

		w := doRequest(t, router, http.MethodPost, "/api/v1/guest/session", "")

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp models.GuestSessionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "guest-1", resp.UserID)
		assert.Equal(t, "tok", resp.Token)
	})

	t.Run("token failure", func(t *testing.T) {
		svc := &mockGuestService{err: errors.New("sign failed")}
		router := chi.NewRouter()
		router.Route("/api/v1/guest", NewGuestHandler(svc, logger).RegisterRoutes)

		w := doRequest(t, router, http.MethodPost, "/api/v1/guest/session", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
