package models

// LessonType represents the kind of content a lesson presents
type LessonType string

const (
	LessonTypeConcept  LessonType = "concept"
	LessonTypeCode     LessonType = "code"
	LessonTypeQuiz     LessonType = "quiz"
	LessonTypePractice LessonType = "practice"
	LessonTypeProject  LessonType = "project"
)

// Language represents a programming language taught side by side
type Language string

const (
	LanguageC          Language = "c"
	LanguageJava       Language = "java"
	LanguageJavaScript Language = "javascript"
)

// Course represents a level of the curriculum
type Course struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Description  string `json:"description" yaml:"description"`
	OrderIndex   int    `json:"orderIndex" yaml:"orderIndex"`
	LevelNumber  int    `json:"levelNumber" yaml:"levelNumber"`
	Icon         string `json:"icon" yaml:"icon"`
	TotalLessons int    `json:"totalLessons" yaml:"totalLessons"`
	Color        string `json:"color" yaml:"color"`
}

// Lesson represents a single lesson of a course
type Lesson struct {
	ID                  string              `json:"id" yaml:"id"`
	CourseID            string              `json:"courseId" yaml:"courseId"`
	Title               string              `json:"title" yaml:"title"`
	Content             string              `json:"content" yaml:"content"`
	OrderIndex          int                 `json:"orderIndex" yaml:"orderIndex"`
	LessonType          LessonType          `json:"lessonType" yaml:"lessonType"`
	ConceptText         string              `json:"conceptText,omitempty" yaml:"conceptText"`
	ConceptImage        string              `json:"conceptImage,omitempty" yaml:"conceptImage"`
	Quizzes             []Quiz              `json:"quizzes,omitempty" yaml:"quizzes"`
	PracticeDescription string              `json:"practiceDescription,omitempty" yaml:"practiceDescription"`
	PracticeStarterCode map[Language]string `json:"practiceStarterCode,omitempty" yaml:"practiceStarterCode"`
	ExpectedOutput      string              `json:"expectedOutput,omitempty" yaml:"expectedOutput"`
}

// LessonCode is a code example of a lesson in one language
type LessonCode struct {
	ID          string   `json:"id" yaml:"id"`
	LessonID    string   `json:"lessonId" yaml:"lessonId"`
	Language    Language `json:"language" yaml:"language"`
	CodeExample string   `json:"codeExample" yaml:"codeExample"`
	Explanation string   `json:"explanation" yaml:"explanation"`
}

// Quiz represents a multiple-choice question
type Quiz struct {
	ID           string       `json:"id" yaml:"id"`
	LessonID     string       `json:"lessonId" yaml:"lessonId"`
	QuestionText string       `json:"questionText" yaml:"questionText"`
	QuizType     string       `json:"quizType" yaml:"quizType"`
	Options      []QuizOption `json:"options,omitempty" yaml:"options"`
	Explanation  string       `json:"explanation" yaml:"explanation"`
}

// QuizOption is one answer option of a quiz
type QuizOption struct {
	ID         string `json:"id" yaml:"id"`
	QuizID     string `json:"quizId" yaml:"quizId"`
	OptionText string `json:"optionText" yaml:"optionText"`
	IsCorrect  bool   `json:"isCorrect,omitempty" yaml:"isCorrect"`
}

// QuestionResult is the graded answer of a single quiz question
type QuestionResult struct {
	QuizID      string `json:"quizId"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}

// QuizResult is the graded result of a quiz lesson
type QuizResult struct {
	Score     int              `json:"score"`
	Correct   int              `json:"correct"`
	Total     int              `json:"total"`
	Questions []QuestionResult `json:"questions"`
}

// CourseDetailResponse represents a course with its lessons
type CourseDetailResponse struct {
	Course
	Lessons []Lesson `json:"lessons"`
}

// LessonDetailResponse represents a lesson with its code examples
type LessonDetailResponse struct {
	Lesson
	Codes []LessonCode `json:"codes,omitempty"`
}

// GuestSessionResponse is returned when a guest session is started
type GuestSessionResponse struct {
	UserID    string `json:"userId"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}
