package study

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=lesson_repository.go -destination=../mocks/study/mock_lesson_repository.go -package=mock_study

// LessonRepository defines read and completion operations on lessons.
// Lesson content itself is owned by the authoring flow.
type LessonRepository interface {
	FindAll(ctx context.Context) ([]Lesson, error)
	FindBySubject(ctx context.Context, subjectID int64) ([]Lesson, error)
	FindByID(ctx context.Context, lessonID int64) (*LessonWithSubject, error)
	Exists(ctx context.Context, lessonID int64) (bool, error)
	MarkCompleted(ctx context.Context, lessonID int64) error
}

// DBLessonRepository implements LessonRepository over SQL.
type DBLessonRepository struct {
	db *sqlx.DB
}

func NewDBLessonRepository(db *sqlx.DB) *DBLessonRepository {
	return &DBLessonRepository{db: db}
}

// FindAll returns all lessons ordered by id.
func (r *DBLessonRepository) FindAll(ctx context.Context) ([]Lesson, error) {
	var lessons []Lesson
	if err := r.db.SelectContext(ctx, &lessons, "SELECT * FROM lessons ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(lessons) > %w", err)
	}
	return lessons, nil
}

// FindBySubject returns the lessons of one subject ordered by id.
func (r *DBLessonRepository) FindBySubject(ctx context.Context, subjectID int64) ([]Lesson, error) {
	var lessons []Lesson
	if err := r.db.SelectContext(ctx, &lessons,
		"SELECT * FROM lessons WHERE subject_id = ? ORDER BY id", subjectID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(lessons by subject) > %w", err)
	}
	return lessons, nil
}

// FindByID returns a lesson joined with its subject, or nil if not found.
func (r *DBLessonRepository) FindByID(ctx context.Context, lessonID int64) (*LessonWithSubject, error) {
	var lesson LessonWithSubject
	err := r.db.GetContext(ctx, &lesson,
		`SELECT l.*, s.name AS subject_name, s.color AS subject_color
		FROM lessons l
		JOIN subjects s ON l.subject_id = s.id
		WHERE l.id = ?`,
		lessonID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(lesson) > %w", err)
	}
	return &lesson, nil
}

// Exists reports whether a lesson with the given id exists.
func (r *DBLessonRepository) Exists(ctx context.Context, lessonID int64) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM lessons WHERE id = ?", lessonID); err != nil {
		return false, fmt.Errorf("db.GetContext(lesson count) > %w", err)
	}
	return count > 0, nil
}

// MarkCompleted sets the lesson's completed flag.
func (r *DBLessonRepository) MarkCompleted(ctx context.Context, lessonID int64) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE lessons SET is_completed = 1 WHERE id = ?", lessonID); err != nil {
		return fmt.Errorf("db.ExecContext(mark lesson completed) > %w", err)
	}
	return nil
}
