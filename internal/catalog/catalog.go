// Package catalog provides the static, read-only course catalog
package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/codealpha/backend/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog holds courses, lessons and code examples.
// It is immutable after loading and safe for concurrent use.
type Catalog struct {
	courses       []models.Course
	lessons       []models.Lesson
	courseByID    map[string]int
	lessonByID    map[string]int
	codesByLesson map[string][]models.LessonCode
}

type catalogFile struct {
	Courses []models.Course     `yaml:"courses"`
	Lessons []models.Lesson     `yaml:"lessons"`
	Codes   []models.LessonCode `yaml:"codes"`
}

// Load parses the embedded catalog
func Load() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse parses a catalog document and validates its references.
//
// Course ids and lesson ids must be unique, and every lesson and code example must reference
// a known course or lesson. Lessons are ordered by course order and then by their order index.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{
		courses:       file.Courses,
		courseByID:    make(map[string]int, len(file.Courses)),
		lessonByID:    make(map[string]int, len(file.Lessons)),
		codesByLesson: make(map[string][]models.LessonCode),
	}

	sort.SliceStable(c.courses, func(i, j int) bool {
		return c.courses[i].OrderIndex < c.courses[j].OrderIndex
	})
	for i, course := range c.courses {
		if course.ID == "" {
			return nil, fmt.Errorf("course at position %d has no id", i)
		}
		if _, ok := c.courseByID[course.ID]; ok {
			return nil, fmt.Errorf("duplicate course id: %s", course.ID)
		}
		c.courseByID[course.ID] = i
	}

	c.lessons = file.Lessons
	for _, lesson := range c.lessons {
		if _, ok := c.courseByID[lesson.CourseID]; !ok {
			return nil, fmt.Errorf("lesson %s references unknown course %s", lesson.ID, lesson.CourseID)
		}
	}
	sort.SliceStable(c.lessons, func(i, j int) bool {
		ci, cj := c.courseByID[c.lessons[i].CourseID], c.courseByID[c.lessons[j].CourseID]
		if ci != cj {
			return ci < cj
		}
		return c.lessons[i].OrderIndex < c.lessons[j].OrderIndex
	})
	for i, lesson := range c.lessons {
		if lesson.ID == "" {
			return nil, fmt.Errorf("lesson at position %d has no id", i)
		}
		if _, ok := c.lessonByID[lesson.ID]; ok {
			return nil, fmt.Errorf("duplicate lesson id: %s", lesson.ID)
		}
		c.lessonByID[lesson.ID] = i
	}

	for _, code := range file.Codes {
		if _, ok := c.lessonByID[code.LessonID]; !ok {
			return nil, fmt.Errorf("code example %s references unknown lesson %s", code.ID, code.LessonID)
		}
		c.codesByLesson[code.LessonID] = append(c.codesByLesson[code.LessonID], code)
	}

	return c, nil
}

// Courses returns all courses in curriculum order
func (c *Catalog) Courses() []models.Course {
	out := make([]models.Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// Course returns a course by its ID
func (c *Catalog) Course(id string) (*models.Course, bool) {
	i, ok := c.courseByID[id]
	if !ok {
		return nil, false
	}
	course := c.courses[i]
	return &course, true
}

// Lessons returns all lessons in curriculum order
func (c *Catalog) Lessons() []models.Lesson {
	out := make([]models.Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out
}

// LessonsByCourse returns the lessons of a course ordered by their order index
func (c *Catalog) LessonsByCourse(courseID string) []models.Lesson {
	var out []models.Lesson
	for _, lesson := range c.lessons {
		if lesson.CourseID == courseID {
			out = append(out, lesson)
		}
	}
	return out
}

// Lesson returns a lesson by its ID
func (c *Catalog) Lesson(id string) (*models.Lesson, bool) {
	i, ok := c.lessonByID[id]
	if !ok {
		return nil, false
	}
	lesson := c.lessons[i]
	return &lesson, true
}

// CodesForLesson returns the code examples of a lesson
func (c *Catalog) CodesForLesson(lessonID string) []models.LessonCode {
	codes := c.codesByLesson[lessonID]
	out := make([]models.LessonCode, len(codes))
	copy(out, codes)
	return out
}
