package services

import (
	"strings"

	"github.com/codealpha/backend/internal/models"
)

// Lesson id prefixes of the units that unlock badges
const (
	OutputUnitPrefix    = "lesson-1-"
	VariablesUnitPrefix = "lesson-2-"
)

var badgeCatalog = []models.Badge{
	{
		Code:        models.BadgeFirstStep,
		Title:       "첫 발자국",
		Description: "첫 레슨을 완료했어요",
		Icon:        "👣",
	},
	{
		Code:        models.BadgeHelloWorld,
		Title:       "Hello World",
		Description: "첫 출력 프로그램을 완성했어요",
		Icon:        "💬",
	},
	{
		Code:        models.BadgeVariableMaster,
		Title:       "변수 마스터",
		Description: "변수를 이해하고 사용할 수 있어요",
		Icon:        "📦",
	},
	{
		Code:        models.BadgeQuizExpert,
		Title:       "퀴즈 전문가",
		Description: "퀴즈 10개를 맞혔어요",
		Icon:        "🎯",
	},
	{
		Code:        models.BadgeFirstProject,
		Title:       "작은 개발자",
		Description: "첫 프로젝트를 완성했어요",
		Icon:        "🎮",
	},
	{
		Code:        models.BadgeStreak3,
		Title:       "꾸준함",
		Description: "3일 연속 학습했어요",
		Icon:        "🔥",
	},
}

// BadgeCatalog returns every awardable badge
func BadgeCatalog() []models.Badge {
	out := make([]models.Badge, len(badgeCatalog))
	copy(out, badgeCatalog)
	return out
}

// BadgeByCode looks up a badge in the catalog
func BadgeByCode(code models.BadgeCode) (models.Badge, bool) {
	for _, b := range badgeCatalog {
		if b.Code == code {
			return b, true
		}
	}
	return models.Badge{}, false
}

// badgeRule decides whether a badge fires for the user's progress after completing lessonID
type badgeRule struct {
	code  models.BadgeCode
	fires func(progress []models.ProgressRecord, lessonID string) bool
}

// quiz-expert, first-project and streak-3 have no rule yet.
var badgeRules = []badgeRule{
	{
		code: models.BadgeFirstStep,
		fires: func(progress []models.ProgressRecord, _ string) bool {
			return len(progress) == 1
		},
	},
	{code: models.BadgeHelloWorld, fires: unitRule(OutputUnitPrefix, 2)},
	{code: models.BadgeVariableMaster, fires: unitRule(VariablesUnitPrefix, 3)},
}

// unitRule fires when lessonID belongs to the unit and at least minCompleted lessons of it are completed
func unitRule(prefix string, minCompleted int) func([]models.ProgressRecord, string) bool {
	return func(progress []models.ProgressRecord, lessonID string) bool {
		if !strings.HasPrefix(lessonID, prefix) {
			return false
		}
		return countCompletedInUnit(progress, prefix) >= minCompleted
	}
}

func countCompletedInUnit(progress []models.ProgressRecord, prefix string) int {
	count := 0
	for _, p := range progress {
		if p.IsCompleted && strings.HasPrefix(p.LessonID, prefix) {
			count++
		}
	}
	return count
}

// EvaluateBadgeRules returns the codes of all badges whose rule fires for the given progress.
//
// "progress" must be the user's full progress after the completion of "lessonID" was saved.
// Every rule is evaluated on every call; whether the user already holds a badge is not considered here.
func EvaluateBadgeRules(progress []models.ProgressRecord, lessonID string) []models.BadgeCode {
	var codes []models.BadgeCode
	for _, rule := range badgeRules {
		if rule.fires(progress, lessonID) {
			codes = append(codes, rule.code)
		}
	}
	return codes
}
