package study

import (
	"context"
	"fmt"
	"time"

	"github.com/hmbarbier/brevetcoach/internal/review"
)

// FocusSuccessThreshold is the focus rating at which a lesson-bound study
// session counts as a successful review.
const FocusSuccessThreshold = 3

//go:generate mockgen -source=service.go -destination=../mocks/study/mock_service.go -package=mock_study

// OutcomeRecorder is the slice of the review scheduler the tracker needs.
type OutcomeRecorder interface {
	RecordOutcome(ctx context.Context, lessonID int64, success bool, asOf time.Time) (*review.State, error)
}

// Tracker turns study events into persisted facts: it appends attempt and
// session rows and forwards review outcomes to the scheduler.
type Tracker struct {
	lessons  LessonRepository
	attempts AttemptRepository
	sessions StudySessionRepository
	outcomes OutcomeRecorder
}

func NewTracker(
	lessons LessonRepository,
	attempts AttemptRepository,
	sessions StudySessionRepository,
	outcomes OutcomeRecorder,
) *Tracker {
	return &Tracker{lessons: lessons, attempts: attempts, sessions: sessions, outcomes: outcomes}
}

// RecordAttempt appends one exercise attempt.
func (t *Tracker) RecordAttempt(ctx context.Context, attempt *Attempt) error {
	if err := t.attempts.Create(ctx, attempt); err != nil {
		return fmt.Errorf("attempts.Create() > %w", err)
	}
	return nil
}

// RecordSession appends one study session. A session tied to a lesson also
// records a review outcome: success when the focus rating reaches
// FocusSuccessThreshold, failure below it.
func (t *Tracker) RecordSession(ctx context.Context, session *StudySession, asOf time.Time) error {
	if err := t.sessions.Create(ctx, session); err != nil {
		return fmt.Errorf("sessions.Create() > %w", err)
	}
	if session.LessonID == 0 {
		return nil
	}
	success := session.FocusRating >= FocusSuccessThreshold
	if _, err := t.outcomes.RecordOutcome(ctx, session.LessonID, success, asOf); err != nil {
		return fmt.Errorf("outcomes.RecordOutcome(%d) > %w", session.LessonID, err)
	}
	return nil
}

// CompleteLesson marks a lesson as studied and records a successful review
// outcome so the lesson enters the review queue.
func (t *Tracker) CompleteLesson(ctx context.Context, lessonID int64, asOf time.Time) error {
	if err := t.lessons.MarkCompleted(ctx, lessonID); err != nil {
		return fmt.Errorf("lessons.MarkCompleted(%d) > %w", lessonID, err)
	}
	if _, err := t.outcomes.RecordOutcome(ctx, lessonID, true, asOf); err != nil {
		return fmt.Errorf("outcomes.RecordOutcome(%d) > %w", lessonID, err)
	}
	return nil
}
