package handlers

import (
	"net/http"

	"github.com/codealpha/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogReader is the interface that wraps read access to the course catalog.
type CatalogReader interface {
	// Method Courses retrieve all courses ordered by their order index.
	Courses() []models.Course
	// Method Course retrieve a single course; the boolean is false when "id" is unknown.
	Course(id string) (*models.Course, bool)
	// Method LessonsByCourse retrieve the lessons of a course in teaching order.
	LessonsByCourse(courseID string) []models.Lesson
	// Method Lesson retrieve a single lesson; the boolean is false when "id" is unknown.
	Lesson(id string) (*models.Lesson, bool)
	// Method CodesForLesson retrieve the side by side code examples of a lesson.
	CodesForLesson(lessonID string) []models.LessonCode
}

// CatalogHandler serves the public course catalog
type CatalogHandler struct {
	BaseHandler
	catalog CatalogReader
	badges  []models.Badge
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog CatalogReader, badges []models.Badge, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler: BaseHandler{logger: logger},
		catalog:     catalog,
		badges:      badges,
	}
}

// RegisterRoutes registers the public catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/courses", h.GetCourses)
	r.Get("/courses/{courseId}", h.GetCourse)
	r.Get("/lessons/{lessonId}", h.GetLesson)
	r.Get("/badges/catalog", h.GetBadgeCatalog)
}

// GetCourses handles GET /api/v1/courses
// @Summary List courses
// @Description Get every course of the curriculum in order
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Course
// @Router /api/v1/courses [get]
func (h *CatalogHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.catalog.Courses())
}

// GetCourse handles GET /api/v1/courses/{courseId}
// @Summary Get a course
// @Description Get a course together with its lessons. Quiz answers are not included.
// @Tags catalog
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} models.CourseDetailResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/courses/{courseId} [get]
func (h *CatalogHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseId")

	course, ok := h.catalog.Course(courseID)
	if !ok {
		h.respondError(w, http.StatusNotFound, models.ErrCourseNotFound.Error())
		return
	}

	lessons := h.catalog.LessonsByCourse(courseID)
	resp := models.CourseDetailResponse{
		Course:  *course,
		Lessons: make([]models.Lesson, 0, len(lessons)),
	}
	for _, lesson := range lessons {
		resp.Lessons = append(resp.Lessons, hideAnswers(lesson))
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// GetLesson handles GET /api/v1/lessons/{lessonId}
// @Summary Get a lesson
// @Description Get a lesson with its code examples. Quiz answers are not included.
// @Tags catalog
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} models.LessonDetailResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/lessons/{lessonId} [get]
func (h *CatalogHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	lessonID := chi.URLParam(r, "lessonId")

	lesson, ok := h.catalog.Lesson(lessonID)
	if !ok {
		h.respondError(w, http.StatusNotFound, models.ErrLessonNotFound.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, models.LessonDetailResponse{
		Lesson: hideAnswers(*lesson),
		Codes:  h.catalog.CodesForLesson(lessonID),
	})
}

// GetBadgeCatalog handles GET /api/v1/badges/catalog
// @Summary List badges
// @Description Get every badge that can be earned
// @Tags badges
// @Produce json
// @Success 200 {array} models.Badge
// @Router /api/v1/badges/catalog [get]
func (h *CatalogHandler) GetBadgeCatalog(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.badges)
}

// hideAnswers returns a copy of the lesson without the correct flags of its quiz options
func hideAnswers(lesson models.Lesson) models.Lesson {
	if len(lesson.Quizzes) == 0 {
		return lesson
	}
	quizzes := make([]models.Quiz, len(lesson.Quizzes))
	for i, quiz := range lesson.Quizzes {
		options := make([]models.QuizOption, len(quiz.Options))
		for j, opt := range quiz.Options {
			opt.IsCorrect = false
			options[j] = opt
		}
		quiz.Options = options
		quizzes[i] = quiz
	}
	lesson.Quizzes = quizzes
	return lesson
}
