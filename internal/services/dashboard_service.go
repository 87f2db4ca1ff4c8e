package services

import (
	"context"
	"sort"

	"github.com/codealpha/backend/internal/models"
)

const recentActivityCount = 3

// ProgressReader is the interface that wraps read access to a user's progress and badges
type ProgressReader interface {
	GetProgress(ctx context.Context, userID string) ([]models.ProgressRecord, error)
	GetBadges(ctx context.Context, userID string) ([]models.BadgeAward, error)
	// Method ComputeCourseProgress returns the completed percentage of the lessons of "courseID".
	ComputeCourseProgress(ctx context.Context, userID, courseID string, lessons []models.Lesson) (int, error)
}

type dashboardService struct {
	catalog LessonCatalog
	reader  ProgressReader
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(catalog LessonCatalog, reader ProgressReader) *dashboardService {
	return &dashboardService{
		catalog: catalog,
		reader:  reader,
	}
}

// GetCourseProgress computes the completion of a single course
func (s *dashboardService) GetCourseProgress(ctx context.Context, userID, courseID string) (*models.CourseProgressResponse, error) {
	if _, ok := s.catalog.Course(courseID); !ok {
		return nil, models.ErrCourseNotFound
	}

	lessons := s.catalog.Lessons()
	pct, err := s.reader.ComputeCourseProgress(ctx, userID, courseID, lessons)
	if err != nil {
		return nil, err
	}
	progress, err := s.reader.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := courseProgress(progress, courseID, lessons)
	resp.Percent = pct
	return &resp, nil
}

// GetDashboard summarises a user's progress over the whole catalog
func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*models.Dashboard, error) {
	progress, err := s.reader.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	badges, err := s.reader.GetBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	lessons := s.catalog.Lessons()
	done := completedLessonSet(progress)

	// only catalog lessons count, so the overall percent stays within 100
	completed := 0
	for _, lesson := range lessons {
		if done[lesson.ID] {
			completed++
		}
	}

	dashboard := &models.Dashboard{
		CompletedLessons: completed,
		TotalLessons:     len(lessons),
		OverallPercent:   percent(completed, len(lessons)),
		Courses:          make([]models.CourseProgressResponse, 0),
		RecentActivity:   recentActivity(progress, recentActivityCount),
		Badges:           badges,
	}

	for _, course := range s.catalog.Courses() {
		dashboard.Courses = append(dashboard.Courses, courseProgress(progress, course.ID, lessons))

		if dashboard.NextLesson != nil {
			continue
		}
		for _, lesson := range s.catalog.LessonsByCourse(course.ID) {
			if !done[lesson.ID] {
				dashboard.NextLesson = &models.NextLesson{
					CourseID:    course.ID,
					CourseTitle: course.Title,
					LevelNumber: course.LevelNumber,
					LessonID:    lesson.ID,
					LessonTitle: lesson.Title,
				}
				break
			}
		}
	}

	return dashboard, nil
}

func courseProgress(progress []models.ProgressRecord, courseID string, lessons []models.Lesson) models.CourseProgressResponse {
	completed, total := countCourseLessons(progress, courseID, lessons)
	return models.CourseProgressResponse{
		CourseID:         courseID,
		CompletedLessons: completed,
		TotalLessons:     total,
		Percent:          CourseProgress(progress, courseID, lessons),
	}
}

// recentActivity returns up to n records, most recently updated first
func recentActivity(progress []models.ProgressRecord, n int) []models.ProgressRecord {
	sorted := make([]models.ProgressRecord, len(progress))
	copy(sorted, progress)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
