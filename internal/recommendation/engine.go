// Package recommendation ranks lessons by how much attention they need,
// combining attempt accuracy, staleness and completion.
package recommendation

import (
	"sort"
	"time"

	"github.com/hmbarbier/brevetcoach/internal/study"
)

// Scoring policy constants. Inaccuracy is the strongest signal, staleness
// accrues per day, and never-finished lessons get a flat bonus. These are
// product tuning values; changing them changes what learners are told to
// study first.
const (
	DefaultAccuracy      = 100.0
	NeverStudiedDays     = 999.0
	inaccuracyWeight     = 2.0
	stalenessDailyWeight = 0.5
	incompleteBonus      = 50.0
)

// Recommendation is one ranked lesson with the signals behind its score.
type Recommendation struct {
	LessonID         int64   `json:"lesson_id"`
	Title            string  `json:"title"`
	SubjectName      string  `json:"subject_name"`
	SubjectColor     string  `json:"subject_color"`
	Accuracy         float64 `json:"accuracy"`
	DaysSinceStudied float64 `json:"days_since_studied"`
	Score            float64 `json:"priority_score"`
}

// Score computes the priority score from already-defaulted aggregates.
func Score(accuracy, daysSinceStudied float64, completed bool) float64 {
	score := (100-accuracy)*inaccuracyWeight + daysSinceStudied*stalenessDailyWeight
	if !completed {
		score += incompleteBonus
	}
	return score
}

// Rank scores every lesson and returns the top limit entries, highest
// score first, ties broken by ascending lesson id. Lessons missing from
// the accuracy or last-studied aggregates use the stated defaults.
// A non-positive limit yields an empty result.
func Rank(
	lessons []study.Lesson,
	accuracyByLesson map[int64]float64,
	lastStudiedByLesson map[int64]time.Time,
	asOf time.Time,
	limit int,
) []Recommendation {
	if limit <= 0 {
		return nil
	}

	recommendations := make([]Recommendation, 0, len(lessons))
	for _, lesson := range lessons {
		accuracy := DefaultAccuracy
		if a, ok := accuracyByLesson[lesson.ID]; ok {
			accuracy = a
		}
		daysSince := NeverStudiedDays
		if last, ok := lastStudiedByLesson[lesson.ID]; ok {
			daysSince = asOf.Sub(last).Hours() / 24
		}
		recommendations = append(recommendations, Recommendation{
			LessonID:         lesson.ID,
			Title:            lesson.Title,
			Accuracy:         accuracy,
			DaysSinceStudied: daysSince,
			Score:            Score(accuracy, daysSince, lesson.Completed),
		})
	}

	sort.Slice(recommendations, func(i, j int) bool {
		if recommendations[i].Score != recommendations[j].Score {
			return recommendations[i].Score > recommendations[j].Score
		}
		return recommendations[i].LessonID < recommendations[j].LessonID
	})

	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations
}
