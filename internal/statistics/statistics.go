// Package statistics rolls raw study events up into per-day series for
// progress reporting.
package statistics

import (
	"time"

	"github.com/hmbarbier/brevetcoach/internal/study"
)

// DailyMinutes is the total minutes studied on one calendar day.
type DailyMinutes struct {
	Date    time.Time `json:"date"`
	Minutes int       `json:"total_minutes"`
}

// DailyAccuracy is the attempt outcome breakdown for one calendar day.
// Accuracy is 0 on days without attempts.
type DailyAccuracy struct {
	Date     time.Time `json:"date"`
	Correct  int       `json:"correct"`
	Wrong    int       `json:"wrong"`
	Accuracy float64   `json:"accuracy"`
}

// DailyStudyMinutes buckets sessions by their start date and returns one
// entry per day from `from` through `to` inclusive, zero-filled for days
// without sessions.
func DailyStudyMinutes(sessions []study.StudySession, from, to time.Time) []DailyMinutes {
	minutesByDay := make(map[time.Time]int)
	for _, session := range sessions {
		day := dateOf(session.StartTime)
		minutesByDay[day] += session.DurationMinutes
	}

	var series []DailyMinutes
	for day := dateOf(from); !day.After(dateOf(to)); day = day.AddDate(0, 0, 1) {
		series = append(series, DailyMinutes{Date: day, Minutes: minutesByDay[day]})
	}
	return series
}

// DailyAttemptAccuracy buckets attempts by creation date and returns one
// entry per day from `from` through `to` inclusive.
func DailyAttemptAccuracy(attempts []study.Attempt, from, to time.Time) []DailyAccuracy {
	type counts struct {
		correct int
		wrong   int
	}
	countsByDay := make(map[time.Time]counts)
	for _, attempt := range attempts {
		day := dateOf(attempt.CreatedAt)
		c := countsByDay[day]
		if attempt.Correct {
			c.correct++
		} else {
			c.wrong++
		}
		countsByDay[day] = c
	}

	var series []DailyAccuracy
	for day := dateOf(from); !day.After(dateOf(to)); day = day.AddDate(0, 0, 1) {
		c := countsByDay[day]
		entry := DailyAccuracy{Date: day, Correct: c.correct, Wrong: c.wrong}
		if total := c.correct + c.wrong; total > 0 {
			entry.Accuracy = float64(c.correct) * 100 / float64(total)
		}
		series = append(series, entry)
	}
	return series
}

// TotalMinutesOn sums the minutes of sessions starting on the given day.
func TotalMinutesOn(sessions []study.StudySession, day time.Time) int {
	target := dateOf(day)
	total := 0
	for _, session := range sessions {
		if dateOf(session.StartTime).Equal(target) {
			total += session.DurationMinutes
		}
	}
	return total
}

func dateOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
