package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// dateLayout is how next_review_date is stored. ISO dates compare
// correctly as strings, which FindDue relies on.
const dateLayout = "2006-01-02"

type stateRow struct {
	ID             int64   `db:"id"`
	LessonID       int64   `db:"lesson_id"`
	NextReviewDate string  `db:"next_review_date"`
	IntervalDays   int     `db:"interval_days"`
	EaseFactor     float64 `db:"ease_factor"`
	LastResult     int     `db:"last_result"`
}

func (row stateRow) toModel() (State, error) {
	next, err := time.ParseInLocation(dateLayout, row.NextReviewDate, time.UTC)
	if err != nil {
		return State{}, fmt.Errorf("parse next_review_date %q > %w", row.NextReviewDate, err)
	}
	return State{
		LessonID:       row.LessonID,
		NextReviewDate: next,
		IntervalDays:   row.IntervalDays,
		EaseFactor:     row.EaseFactor,
		LastResult:     row.LastResult != 0,
	}, nil
}

// DBStateRepository implements StateRepository over SQL.
type DBStateRepository struct {
	db *sqlx.DB
}

func NewDBStateRepository(db *sqlx.DB) *DBStateRepository {
	return &DBStateRepository{db: db}
}

// FindByLesson returns the state for a lesson, or nil if none exists.
func (r *DBStateRepository) FindByLesson(ctx context.Context, lessonID int64) (*State, error) {
	var row stateRow
	err := r.db.GetContext(ctx, &row,
		"SELECT * FROM review_states WHERE lesson_id = ?", lessonID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(review_state) > %w", err)
	}
	state, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Apply reads the current state for a lesson, computes the next state via
// fn and persists it, all inside one transaction. The unique key on
// lesson_id guards concurrent first-time inserts.
func (r *DBStateRepository) Apply(ctx context.Context, lessonID int64, fn func(prev *State) State) (*State, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var prev *State
	var row stateRow
	err = tx.GetContext(ctx, &row,
		"SELECT * FROM review_states WHERE lesson_id = ?", lessonID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		prev = nil
	case err != nil:
		return nil, fmt.Errorf("tx.GetContext(review_state) > %w", err)
	default:
		state, convErr := row.toModel()
		if convErr != nil {
			return nil, convErr
		}
		prev = &state
	}

	next := fn(prev)
	lastResult := 0
	if next.LastResult {
		lastResult = 1
	}
	nextDate := next.NextReviewDate.Format(dateLayout)

	if prev == nil {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO review_states (lesson_id, next_review_date, interval_days, ease_factor, last_result)
			VALUES (?, ?, ?, ?, ?)`,
			lessonID, nextDate, next.IntervalDays, next.EaseFactor, lastResult); err != nil {
			return nil, fmt.Errorf("tx.ExecContext(insert review_state) > %w", err)
		}
	} else {
		if _, err := tx.ExecContext(ctx,
			`UPDATE review_states SET next_review_date = ?, interval_days = ?, ease_factor = ?, last_result = ?
			WHERE lesson_id = ?`,
			nextDate, next.IntervalDays, next.EaseFactor, lastResult, lessonID); err != nil {
			return nil, fmt.Errorf("tx.ExecContext(update review_state) > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("tx.Commit() > %w", err)
	}
	return &next, nil
}

// FindDue returns all states due on or before asOf, ordered by due date
// then lesson id.
func (r *DBStateRepository) FindDue(ctx context.Context, asOf time.Time) ([]State, error) {
	var rows []stateRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM review_states
		WHERE next_review_date <= ?
		ORDER BY next_review_date, lesson_id`,
		asOf.Format(dateLayout)); err != nil {
		return nil, fmt.Errorf("db.SelectContext(due review_states) > %w", err)
	}
	states := make([]State, 0, len(rows))
	for _, row := range rows {
		state, err := row.toModel()
		if err != nil {
			return nil, err
		}
		states = append(states, state)
	}
	return states, nil
}

type queueRow struct {
	LessonID       int64  `db:"lesson_id"`
	Title          string `db:"title"`
	Summary        string `db:"summary"`
	SubjectName    string `db:"subject_name"`
	SubjectColor   string `db:"subject_color"`
	NextReviewDate string `db:"next_review_date"`
	IntervalDays   int    `db:"interval_days"`
}

// FindDueWithLessons returns due states joined with lesson and subject
// detail, in the same order as FindDue.
func (r *DBStateRepository) FindDueWithLessons(ctx context.Context, asOf time.Time) ([]QueueEntry, error) {
	var rows []queueRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT
			l.id AS lesson_id,
			l.title AS title,
			l.summary AS summary,
			s.name AS subject_name,
			s.color AS subject_color,
			r.next_review_date AS next_review_date,
			r.interval_days AS interval_days
		FROM review_states r
		JOIN lessons l ON r.lesson_id = l.id
		JOIN subjects s ON l.subject_id = s.id
		WHERE r.next_review_date <= ?
		ORDER BY r.next_review_date, l.id`,
		asOf.Format(dateLayout)); err != nil {
		return nil, fmt.Errorf("db.SelectContext(review queue) > %w", err)
	}

	entries := make([]QueueEntry, 0, len(rows))
	for _, row := range rows {
		next, err := time.ParseInLocation(dateLayout, row.NextReviewDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse next_review_date %q > %w", row.NextReviewDate, err)
		}
		entries = append(entries, QueueEntry{
			LessonID:       row.LessonID,
			Title:          row.Title,
			Summary:        row.Summary,
			SubjectName:    row.SubjectName,
			SubjectColor:   row.SubjectColor,
			NextReviewDate: next,
			IntervalDays:   row.IntervalDays,
		})
	}
	return entries, nil
}
