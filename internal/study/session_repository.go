package study

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=session_repository.go -destination=../mocks/study/mock_session_repository.go -package=mock_study

// StudySessionRepository defines operations on the append-only session log.
type StudySessionRepository interface {
	Create(ctx context.Context, session *StudySession) error
	FindSince(ctx context.Context, since time.Time) ([]StudySession, error)
	// LastStudiedByLesson returns the most recent session start time per
	// lesson, for lessons with at least one session.
	LastStudiedByLesson(ctx context.Context) (map[int64]time.Time, error)
}

type sessionRow struct {
	ID              int64         `db:"id"`
	SubjectID       int64         `db:"subject_id"`
	LessonID        sql.NullInt64 `db:"lesson_id"`
	StartTime       int64         `db:"start_time"`
	EndTime         int64         `db:"end_time"`
	DurationMinutes int           `db:"duration_minutes"`
	FocusRating     int           `db:"focus_rating"`
	Notes           string        `db:"notes"`
}

func (row sessionRow) toModel() StudySession {
	return StudySession{
		ID:              row.ID,
		SubjectID:       row.SubjectID,
		LessonID:        row.LessonID.Int64,
		StartTime:       time.Unix(row.StartTime, 0).UTC(),
		EndTime:         time.Unix(row.EndTime, 0).UTC(),
		DurationMinutes: row.DurationMinutes,
		FocusRating:     row.FocusRating,
		Notes:           row.Notes,
	}
}

// DBStudySessionRepository implements StudySessionRepository over SQL.
type DBStudySessionRepository struct {
	db *sqlx.DB
}

func NewDBStudySessionRepository(db *sqlx.DB) *DBStudySessionRepository {
	return &DBStudySessionRepository{db: db}
}

// Create appends one study session.
func (r *DBStudySessionRepository) Create(ctx context.Context, session *StudySession) error {
	lessonID := sql.NullInt64{Int64: session.LessonID, Valid: session.LessonID != 0}
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO study_sessions (subject_id, lesson_id, start_time, end_time, duration_minutes, focus_rating, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		session.SubjectID, lessonID, session.StartTime.Unix(), session.EndTime.Unix(),
		session.DurationMinutes, session.FocusRating, session.Notes)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert study_session) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	session.ID = id
	return nil
}

// FindSince returns all sessions starting at or after the given time,
// ordered by start time.
func (r *DBStudySessionRepository) FindSince(ctx context.Context, since time.Time) ([]StudySession, error) {
	var rows []sessionRow
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM study_sessions WHERE start_time >= ? ORDER BY start_time", since.Unix()); err != nil {
		return nil, fmt.Errorf("db.SelectContext(study_sessions since) > %w", err)
	}
	sessions := make([]StudySession, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, row.toModel())
	}
	return sessions, nil
}

// LastStudiedByLesson aggregates the latest session start per lesson.
func (r *DBStudySessionRepository) LastStudiedByLesson(ctx context.Context) (map[int64]time.Time, error) {
	var rows []struct {
		LessonID  int64 `db:"lesson_id"`
		StartTime int64 `db:"start_time"`
	}
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT lesson_id, MAX(start_time) AS start_time
		FROM study_sessions
		WHERE lesson_id IS NOT NULL
		GROUP BY lesson_id`); err != nil {
		return nil, fmt.Errorf("db.SelectContext(last studied by lesson) > %w", err)
	}
	lastStudied := make(map[int64]time.Time, len(rows))
	for _, row := range rows {
		lastStudied[row.LessonID] = time.Unix(row.StartTime, 0).UTC()
	}
	return lastStudied, nil
}
