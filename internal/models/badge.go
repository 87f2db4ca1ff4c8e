package models

import "time"

// BadgeCode identifies an entry of the badge catalog
type BadgeCode string

const (
	BadgeFirstStep      BadgeCode = "first-step"
	BadgeHelloWorld     BadgeCode = "hello-world"
	BadgeVariableMaster BadgeCode = "variable-master"
	BadgeQuizExpert     BadgeCode = "quiz-expert"
	BadgeFirstProject   BadgeCode = "first-project"
	BadgeStreak3        BadgeCode = "streak-3"
)

// Badge is an awardable achievement from the static catalog
type Badge struct {
	Code        BadgeCode `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// BadgeAward is a badge earned by a user. It is written once and never updated.
type BadgeAward struct {
	Badge
	UserID   string    `json:"userId,omitempty"`
	EarnedAt time.Time `json:"earnedAt"`
}
