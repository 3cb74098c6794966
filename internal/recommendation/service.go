package recommendation

import (
	"context"
	"fmt"
	"time"

	"github.com/hmbarbier/brevetcoach/internal/study"
)

// Service gathers the aggregates Rank needs from the study repositories
// and decorates the result with subject detail. It never mutates state.
type Service struct {
	lessons  study.LessonRepository
	subjects study.SubjectRepository
	attempts study.AttemptRepository
	sessions study.StudySessionRepository
}

func NewService(
	lessons study.LessonRepository,
	subjects study.SubjectRepository,
	attempts study.AttemptRepository,
	sessions study.StudySessionRepository,
) *Service {
	return &Service{lessons: lessons, subjects: subjects, attempts: attempts, sessions: sessions}
}

// Recommend returns the limit weakest lessons as of the given time.
func (s *Service) Recommend(ctx context.Context, asOf time.Time, limit int) ([]Recommendation, error) {
	if limit <= 0 {
		return nil, nil
	}

	lessons, err := s.lessons.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("lessons.FindAll() > %w", err)
	}
	accuracy, err := s.attempts.AccuracyByLesson(ctx)
	if err != nil {
		return nil, fmt.Errorf("attempts.AccuracyByLesson() > %w", err)
	}
	lastStudied, err := s.sessions.LastStudiedByLesson(ctx)
	if err != nil {
		return nil, fmt.Errorf("sessions.LastStudiedByLesson() > %w", err)
	}
	subjects, err := s.subjects.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("subjects.FindAll() > %w", err)
	}

	subjectByID := make(map[int64]study.Subject, len(subjects))
	for _, subject := range subjects {
		subjectByID[subject.ID] = subject
	}
	subjectByLesson := make(map[int64]study.Subject, len(lessons))
	for _, lesson := range lessons {
		subjectByLesson[lesson.ID] = subjectByID[lesson.SubjectID]
	}

	recommendations := Rank(lessons, accuracy, lastStudied, asOf, limit)
	for i := range recommendations {
		subject := subjectByLesson[recommendations[i].LessonID]
		recommendations[i].SubjectName = subject.Name
		recommendations[i].SubjectColor = subject.Color
	}
	return recommendations, nil
}
