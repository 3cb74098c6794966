package recommendation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hmbarbier/brevetcoach/internal/study"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		accuracy  float64
		daysSince float64
		completed bool
		expected  float64
	}{
		{
			name:      "never studied incomplete lesson",
			accuracy:  100,
			daysSince: 999,
			completed: false,
			expected:  549.5, // 0*2 + 999*0.5 + 50
		},
		{
			name:      "weak completed lesson",
			accuracy:  40,
			daysSince: 10,
			completed: true,
			expected:  125, // 60*2 + 10*0.5
		},
		{
			name:      "mastered and fresh",
			accuracy:  100,
			daysSince: 0,
			completed: true,
			expected:  0,
		},
		{
			name:      "staleness alone accrues half a point per day",
			accuracy:  100,
			daysSince: 60,
			completed: true,
			expected:  30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Score(tt.accuracy, tt.daysSince, tt.completed), 0.0001)
		})
	}
}

func TestRank(t *testing.T) {
	asOf := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	lessons := []study.Lesson{
		{ID: 1, Title: "Fractions", Completed: false},
		{ID: 2, Title: "Equations", Completed: true},
		{ID: 3, Title: "Geometry", Completed: true},
	}
	accuracy := map[int64]float64{
		2: 40,
		3: 90,
	}
	lastStudied := map[int64]time.Time{
		2: asOf.AddDate(0, 0, -10),
		3: asOf.AddDate(0, 0, -2),
	}

	got := Rank(lessons, accuracy, lastStudied, asOf, 10)
	a := assert.New(t)
	a.Len(got, 3)

	// Lesson 1: never attempted, never studied, incomplete -> 549.5.
	a.Equal(int64(1), got[0].LessonID)
	a.InDelta(549.5, got[0].Score, 0.0001)

	// Lesson 2: (100-40)*2 + 10*0.5 = 125.
	a.Equal(int64(2), got[1].LessonID)
	a.InDelta(125, got[1].Score, 0.0001)

	// Lesson 3: (100-90)*2 + 2*0.5 = 21.
	a.Equal(int64(3), got[2].LessonID)
	a.InDelta(21, got[2].Score, 0.0001)
}

func TestRank_Limit(t *testing.T) {
	asOf := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	lessons := []study.Lesson{
		{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4},
	}

	assert.Len(t, Rank(lessons, nil, nil, asOf, 2), 2)
	assert.Empty(t, Rank(lessons, nil, nil, asOf, 0))
	assert.Empty(t, Rank(lessons, nil, nil, asOf, -5))
}

func TestRank_TiesBrokenByLessonID(t *testing.T) {
	asOf := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	// Identical signals, so identical scores.
	lessons := []study.Lesson{
		{ID: 9}, {ID: 2}, {ID: 5},
	}

	got := Rank(lessons, nil, nil, asOf, 10)
	assert.Equal(t, int64(2), got[0].LessonID)
	assert.Equal(t, int64(5), got[1].LessonID)
	assert.Equal(t, int64(9), got[2].LessonID)
}

func TestRank_Deterministic(t *testing.T) {
	asOf := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	lessons := []study.Lesson{
		{ID: 4, Completed: true}, {ID: 1}, {ID: 3, Completed: true}, {ID: 2},
	}
	accuracy := map[int64]float64{1: 70, 3: 55}
	lastStudied := map[int64]time.Time{2: asOf.AddDate(0, 0, -30)}

	first := Rank(lessons, accuracy, lastStudied, asOf, 10)
	second := Rank(lessons, accuracy, lastStudied, asOf, 10)
	assert.Equal(t, first, second)
}
