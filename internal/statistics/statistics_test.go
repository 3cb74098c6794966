package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmbarbier/brevetcoach/internal/study"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDailyStudyMinutes(t *testing.T) {
	sessions := []study.StudySession{
		{StartTime: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), DurationMinutes: 25},
		{StartTime: time.Date(2025, 3, 3, 18, 0, 0, 0, time.UTC), DurationMinutes: 30},
		{StartTime: time.Date(2025, 3, 5, 20, 30, 0, 0, time.UTC), DurationMinutes: 45},
	}

	got := DailyStudyMinutes(sessions, day(2025, 3, 3), day(2025, 3, 6))
	require.Len(t, got, 4)

	assert.Equal(t, DailyMinutes{Date: day(2025, 3, 3), Minutes: 55}, got[0])
	assert.Equal(t, DailyMinutes{Date: day(2025, 3, 4), Minutes: 0}, got[1])
	assert.Equal(t, DailyMinutes{Date: day(2025, 3, 5), Minutes: 45}, got[2])
	assert.Equal(t, DailyMinutes{Date: day(2025, 3, 6), Minutes: 0}, got[3])
}

func TestDailyStudyMinutes_SingleDayWindow(t *testing.T) {
	got := DailyStudyMinutes(nil, day(2025, 3, 3), day(2025, 3, 3))
	require.Len(t, got, 1)
	assert.Equal(t, DailyMinutes{Date: day(2025, 3, 3)}, got[0])
}

func TestDailyStudyMinutes_IgnoresTimeOfDay(t *testing.T) {
	// A window given with non-midnight bounds still buckets by calendar day.
	sessions := []study.StudySession{
		{StartTime: time.Date(2025, 3, 3, 23, 59, 0, 0, time.UTC), DurationMinutes: 10},
	}
	got := DailyStudyMinutes(sessions,
		time.Date(2025, 3, 3, 15, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC))
	require.Len(t, got, 2)
	assert.Equal(t, 10, got[0].Minutes)
	assert.Equal(t, 0, got[1].Minutes)
}

func TestDailyAttemptAccuracy(t *testing.T) {
	attempts := []study.Attempt{
		{CreatedAt: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), Correct: true},
		{CreatedAt: time.Date(2025, 3, 3, 9, 5, 0, 0, time.UTC), Correct: true},
		{CreatedAt: time.Date(2025, 3, 3, 9, 10, 0, 0, time.UTC), Correct: false},
		{CreatedAt: time.Date(2025, 3, 5, 19, 0, 0, 0, time.UTC), Correct: false},
	}

	got := DailyAttemptAccuracy(attempts, day(2025, 3, 3), day(2025, 3, 5))
	require.Len(t, got, 3)

	assert.Equal(t, 2, got[0].Correct)
	assert.Equal(t, 1, got[0].Wrong)
	assert.InDelta(t, 66.6666, got[0].Accuracy, 0.001)

	// Day without attempts reports zero accuracy, not NaN.
	assert.Zero(t, got[1].Correct)
	assert.Zero(t, got[1].Wrong)
	assert.Zero(t, got[1].Accuracy)

	assert.Equal(t, 1, got[2].Wrong)
	assert.Zero(t, got[2].Accuracy)
}

func TestTotalMinutesOn(t *testing.T) {
	sessions := []study.StudySession{
		{StartTime: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), DurationMinutes: 25},
		{StartTime: time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC), DurationMinutes: 20},
		{StartTime: time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC), DurationMinutes: 60},
	}

	assert.Equal(t, 45, TotalMinutesOn(sessions, time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, 60, TotalMinutesOn(sessions, day(2025, 3, 9)))
	assert.Zero(t, TotalMinutesOn(sessions, day(2025, 3, 8)))
}
