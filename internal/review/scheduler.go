// Package review maintains per-lesson spaced repetition state and answers
// which lessons are due for review.
package review

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrLessonNotFound is returned when an outcome is recorded for a lesson
// unknown to the lesson store. Recording it anyway would create scheduling
// state no lesson can ever consume.
var ErrLessonNotFound = errors.New("lesson not found")

// State is the scheduling record for one lesson. There is at most one
// State per lesson; it is created on the first recorded outcome and
// mutated in place afterwards.
type State struct {
	LessonID       int64
	NextReviewDate time.Time
	IntervalDays   int
	EaseFactor     float64
	LastResult     bool
}

// QueueEntry is a due State joined with lesson and subject detail for
// presentation.
type QueueEntry struct {
	LessonID       int64
	Title          string
	Summary        string
	SubjectName    string
	SubjectColor   string
	NextReviewDate time.Time
	IntervalDays   int
}

//go:generate mockgen -source=scheduler.go -destination=../mocks/review/mock_scheduler.go -package=mock_review

// LessonFinder checks lesson existence before scheduling state is created.
type LessonFinder interface {
	Exists(ctx context.Context, lessonID int64) (bool, error)
}

// StateRepository persists review states.
type StateRepository interface {
	FindByLesson(ctx context.Context, lessonID int64) (*State, error)
	// Apply runs fn against the current state for lessonID inside a single
	// transaction and persists the result. fn receives nil when no state
	// exists yet.
	Apply(ctx context.Context, lessonID int64, fn func(prev *State) State) (*State, error)
	FindDue(ctx context.Context, asOf time.Time) ([]State, error)
	FindDueWithLessons(ctx context.Context, asOf time.Time) ([]QueueEntry, error)
}

// Scheduler owns the spaced repetition state transitions.
type Scheduler struct {
	lessons LessonFinder
	states  StateRepository
}

func NewScheduler(lessons LessonFinder, states StateRepository) *Scheduler {
	return &Scheduler{lessons: lessons, states: states}
}

// RecordOutcome applies one review outcome for a lesson as of the given
// time and returns the resulting state. The first outcome for a lesson
// creates its state with the default interval and ease; later outcomes
// follow the SM-2 style update in sm2.go. The read-modify-write runs in
// one transaction per lesson, so concurrent outcomes for the same lesson
// cannot lose updates.
func (s *Scheduler) RecordOutcome(ctx context.Context, lessonID int64, success bool, asOf time.Time) (*State, error) {
	ok, err := s.lessons.Exists(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("lessons.Exists(%d) > %w", lessonID, err)
	}
	if !ok {
		return nil, fmt.Errorf("lesson %d: %w", lessonID, ErrLessonNotFound)
	}

	today := DateOf(asOf)
	state, err := s.states.Apply(ctx, lessonID, func(prev *State) State {
		if prev == nil {
			return State{
				LessonID:       lessonID,
				NextReviewDate: today.AddDate(0, 0, InitialIntervalDays),
				IntervalDays:   InitialIntervalDays,
				EaseFactor:     DefaultEaseFactor,
				LastResult:     success,
			}
		}

		// Persisted ease outside the valid range means data corruption;
		// clamp before using it so the update rule's bounds still hold.
		prevEase := clampEase(prev.EaseFactor)
		interval := NextIntervalDays(prev.IntervalDays, prevEase, success)
		return State{
			LessonID:       lessonID,
			NextReviewDate: today.AddDate(0, 0, interval),
			IntervalDays:   interval,
			EaseFactor:     NextEaseFactor(prevEase, success),
			LastResult:     success,
		}
	})
	if err != nil {
		return nil, fmt.Errorf("states.Apply(%d) > %w", lessonID, err)
	}
	return state, nil
}

// DueLessons returns every state due on or before asOf, earliest first,
// ties broken by lesson id.
func (s *Scheduler) DueLessons(ctx context.Context, asOf time.Time) ([]State, error) {
	states, err := s.states.FindDue(ctx, DateOf(asOf))
	if err != nil {
		return nil, fmt.Errorf("states.FindDue() > %w", err)
	}
	return states, nil
}

// ForReview returns the due list joined with lesson and subject detail.
func (s *Scheduler) ForReview(ctx context.Context, asOf time.Time) ([]QueueEntry, error) {
	entries, err := s.states.FindDueWithLessons(ctx, DateOf(asOf))
	if err != nil {
		return nil, fmt.Errorf("states.FindDueWithLessons() > %w", err)
	}
	return entries, nil
}

// DateOf truncates a time to its UTC calendar date. Scheduling operates
// on whole days only.
func DateOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
