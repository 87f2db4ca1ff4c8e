package handlers

import (
	"context"
	"net/http"

	"github.com/codealpha/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps read access to a user's progress and badges.
type ProgressService interface {
	// Method GetProgress retrieve all progress records of a user.
	//
	// A user without progress gets an empty list. Store failures are wrapped with models.ErrStoreUnavailable.
	GetProgress(ctx context.Context, userID string) ([]models.ProgressRecord, error)
	// Method GetLessonProgress retrieve the progress record of one lesson, or "nil" when the user has none.
	GetLessonProgress(ctx context.Context, userID, lessonID string) (*models.ProgressRecord, error)
	// Method GetBadges retrieve all badges awarded to a user.
	GetBadges(ctx context.Context, userID string) ([]models.BadgeAward, error)
}

// LessonService is the interface that wraps lesson completion.
type LessonService interface {
	// Method CompleteLesson records a finished lesson and returns the saved record with the newly earned badges.
	//
	// The score is taken from "req" or derived from the lesson type.
	// If the progress could not be saved, an error wrapping models.ErrStoreUnavailable is returned.
	CompleteLesson(ctx context.Context, userID, lessonID string, req models.CompleteLessonRequest) (*models.CompletionResponse, error)
	// Method SubmitQuiz grades quiz answers, records the score and returns it together with the graded result.
	SubmitQuiz(ctx context.Context, userID, lessonID string, answers map[string]string) (*models.CompletionResponse, error)
}

// DashboardService is the interface that wraps progress summaries.
type DashboardService interface {
	// Method GetCourseProgress retrieve the completion of a course; unknown courses return models.ErrCourseNotFound.
	GetCourseProgress(ctx context.Context, userID, courseID string) (*models.CourseProgressResponse, error)
	// Method GetDashboard retrieve the overview of a user's progress over the whole catalog.
	GetDashboard(ctx context.Context, userID string) (*models.Dashboard, error)
}

// ProgressHandler handles progress, completion and badge requests of an authenticated user.
// The same handler serves learners and guests; only the services behind it differ.
type ProgressHandler struct {
	BaseHandler
	progress  ProgressService
	lessons   LessonService
	dashboard DashboardService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progress ProgressService, lessons LessonService, dashboard DashboardService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler: BaseHandler{logger: logger},
		progress:    progress,
		lessons:     lessons,
		dashboard:   dashboard,
	}
}

// RegisterRoutes registers the progress routes. The router must authenticate the user.
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Get("/progress", h.GetProgress)
	r.Get("/progress/lessons/{lessonId}", h.GetLessonProgress)
	r.Get("/progress/courses/{courseId}", h.GetCourseProgress)
	r.Get("/badges", h.GetBadges)
	r.Get("/dashboard", h.GetDashboard)
	r.Post("/lessons/{lessonId}/complete", h.CompleteLesson)
	r.Post("/lessons/{lessonId}/quiz", h.SubmitQuiz)
}

// GetProgress handles GET /api/v1/progress
// @Summary Get progress
// @Description Get all progress records of the authenticated user. Guests use /api/v1/guest/progress.
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ProgressRecord
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/progress [get]
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	progress, err := h.progress.GetProgress(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, r, err, "get progress")
		return
	}

	h.respondJSON(w, http.StatusOK, progress)
}

// GetLessonProgress handles GET /api/v1/progress/lessons/{lessonId}
// @Summary Get lesson progress
// @Description Get the progress record of one lesson
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} models.ProgressRecord
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/progress/lessons/{lessonId} [get]
func (h *ProgressHandler) GetLessonProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	record, err := h.progress.GetLessonProgress(r.Context(), userID, chi.URLParam(r, "lessonId"))
	if err != nil {
		h.respondServiceError(w, r, err, "get lesson progress")
		return
	}
	if record == nil {
		h.respondError(w, http.StatusNotFound, "no progress for this lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, record)
}

// GetCourseProgress handles GET /api/v1/progress/courses/{courseId}
// @Summary Get course progress
// @Description Get the percentage of completed lessons of a course
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} models.CourseProgressResponse
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/progress/courses/{courseId} [get]
func (h *ProgressHandler) GetCourseProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	resp, err := h.dashboard.GetCourseProgress(r.Context(), userID, chi.URLParam(r, "courseId"))
	if err != nil {
		h.respondServiceError(w, r, err, "get course progress")
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// GetBadges handles GET /api/v1/badges
// @Summary Get earned badges
// @Description Get all badges earned by the authenticated user
// @Tags badges
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BadgeAward
// @Failure 503 {object} map[string]string
// @Router /api/v1/badges [get]
func (h *ProgressHandler) GetBadges(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	badges, err := h.progress.GetBadges(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, r, err, "get badges")
		return
	}

	h.respondJSON(w, http.StatusOK, badges)
}

// GetDashboard handles GET /api/v1/dashboard
// @Summary Get dashboard
// @Description Get overall progress, per-course progress, the next lesson, recent activity and badges
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Dashboard
// @Failure 503 {object} map[string]string
// @Router /api/v1/dashboard [get]
func (h *ProgressHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	dashboard, err := h.dashboard.GetDashboard(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, r, err, "get dashboard")
		return
	}

	h.respondJSON(w, http.StatusOK, dashboard)
}

// CompleteLesson handles POST /api/v1/lessons/{lessonId}/complete
// @Summary Complete a lesson
// @Description Record a finished lesson. Without a score the score is derived from the lesson type.
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Param request body models.CompleteLessonRequest false "Completion"
// @Success 200 {object} models.CompletionResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/lessons/{lessonId}/complete [post]
func (h *ProgressHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.CompleteLessonRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.lessons.CompleteLesson(r.Context(), userID, chi.URLParam(r, "lessonId"), req)
	if err != nil {
		h.respondCompletionError(w, r, err, "complete lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// SubmitQuiz handles POST /api/v1/lessons/{lessonId}/quiz
// @Summary Submit quiz answers
// @Description Grade the answers of a quiz lesson and record the score
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Param request body models.SubmitQuizRequest true "Answers keyed by quiz ID"
// @Success 200 {object} models.CompletionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/lessons/{lessonId}/quiz [post]
func (h *ProgressHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.SubmitQuizRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.lessons.SubmitQuiz(r.Context(), userID, chi.URLParam(r, "lessonId"), req.Answers)
	if err != nil {
		h.respondCompletionError(w, r, err, "submit quiz")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}
