package models

import "errors"

var (
	// ErrStoreUnavailable is returned when the progress or badge store could not be reached
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrBadgeAlreadyAwarded is returned by badge stores when the user already holds the badge
	ErrBadgeAlreadyAwarded = errors.New("badge already awarded")
	ErrInvalidScore        = errors.New("score must be between 0 and 100")
	ErrInvalidUser         = errors.New("user id is required")
	ErrInvalidLesson       = errors.New("lesson id is required")
	ErrLessonNotFound      = errors.New("lesson not found")
	ErrCourseNotFound      = errors.New("course not found")
	ErrNoQuiz              = errors.New("lesson has no quiz")
)
