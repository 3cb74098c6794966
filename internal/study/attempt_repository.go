package study

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=attempt_repository.go -destination=../mocks/study/mock_attempt_repository.go -package=mock_study

// AttemptRepository defines operations on the append-only attempt log.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *Attempt) error
	FindSince(ctx context.Context, since time.Time) ([]Attempt, error)
	// AccuracyByLesson returns the all-time percentage of correct attempts
	// per lesson, for lessons with at least one attempt.
	AccuracyByLesson(ctx context.Context) (map[int64]float64, error)
}

type attemptRow struct {
	ID               int64 `db:"id"`
	ExerciseID       int64 `db:"exercise_id"`
	ChosenIndex      int   `db:"chosen_index"`
	IsCorrect        int   `db:"is_correct"`
	TimeSpentSeconds int   `db:"time_spent_seconds"`
	CreatedAt        int64 `db:"created_at"`
}

func (row attemptRow) toModel() Attempt {
	return Attempt{
		ID:               row.ID,
		ExerciseID:       row.ExerciseID,
		ChosenIndex:      row.ChosenIndex,
		Correct:          row.IsCorrect != 0,
		TimeSpentSeconds: row.TimeSpentSeconds,
		CreatedAt:        time.Unix(row.CreatedAt, 0).UTC(),
	}
}

// DBAttemptRepository implements AttemptRepository over SQL.
// Timestamps are stored as unix seconds so both drivers behave identically.
type DBAttemptRepository struct {
	db *sqlx.DB
}

func NewDBAttemptRepository(db *sqlx.DB) *DBAttemptRepository {
	return &DBAttemptRepository{db: db}
}

// Create appends one attempt.
func (r *DBAttemptRepository) Create(ctx context.Context, attempt *Attempt) error {
	correct := 0
	if attempt.Correct {
		correct = 1
	}
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO attempts (exercise_id, chosen_index, is_correct, time_spent_seconds, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		attempt.ExerciseID, attempt.ChosenIndex, correct, attempt.TimeSpentSeconds, attempt.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert attempt) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	attempt.ID = id
	return nil
}

// FindSince returns all attempts created at or after the given time,
// ordered by creation time.
func (r *DBAttemptRepository) FindSince(ctx context.Context, since time.Time) ([]Attempt, error) {
	var rows []attemptRow
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM attempts WHERE created_at >= ? ORDER BY created_at", since.Unix()); err != nil {
		return nil, fmt.Errorf("db.SelectContext(attempts since) > %w", err)
	}
	attempts := make([]Attempt, 0, len(rows))
	for _, row := range rows {
		attempts = append(attempts, row.toModel())
	}
	return attempts, nil
}

// AccuracyByLesson aggregates attempt correctness per lesson.
func (r *DBAttemptRepository) AccuracyByLesson(ctx context.Context) (map[int64]float64, error) {
	var rows []struct {
		LessonID int64   `db:"lesson_id"`
		Accuracy float64 `db:"accuracy"`
	}
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT e.lesson_id AS lesson_id,
			SUM(CASE WHEN a.is_correct = 1 THEN 1 ELSE 0 END) * 100.0 / COUNT(*) AS accuracy
		FROM attempts a
		JOIN exercises e ON a.exercise_id = e.id
		GROUP BY e.lesson_id`); err != nil {
		return nil, fmt.Errorf("db.SelectContext(accuracy by lesson) > %w", err)
	}
	accuracy := make(map[int64]float64, len(rows))
	for _, row := range rows {
		accuracy[row.LessonID] = row.Accuracy
	}
	return accuracy, nil
}
