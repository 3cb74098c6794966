package study

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=subject_repository.go -destination=../mocks/study/mock_subject_repository.go -package=mock_study

// SubjectRepository defines read operations on subjects.
type SubjectRepository interface {
	FindAll(ctx context.Context) ([]Subject, error)
	Progress(ctx context.Context) ([]SubjectProgress, error)
}

// DBSubjectRepository implements SubjectRepository over SQL.
type DBSubjectRepository struct {
	db *sqlx.DB
}

func NewDBSubjectRepository(db *sqlx.DB) *DBSubjectRepository {
	return &DBSubjectRepository{db: db}
}

// FindAll returns all subjects ordered by id.
func (r *DBSubjectRepository) FindAll(ctx context.Context) ([]Subject, error) {
	var subjects []Subject
	if err := r.db.SelectContext(ctx, &subjects, "SELECT * FROM subjects ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(subjects) > %w", err)
	}
	return subjects, nil
}

// Progress returns per-subject lesson completion counts.
func (r *DBSubjectRepository) Progress(ctx context.Context) ([]SubjectProgress, error) {
	var progress []SubjectProgress
	if err := r.db.SelectContext(ctx, &progress,
		`SELECT
			s.id AS subject_id,
			s.name AS subject_name,
			s.color AS subject_color,
			COUNT(l.id) AS total_lessons,
			COALESCE(SUM(CASE WHEN l.is_completed = 1 THEN 1 ELSE 0 END), 0) AS completed_lessons,
			CASE
				WHEN COUNT(l.id) = 0 THEN 0
				ELSE ROUND(SUM(CASE WHEN l.is_completed = 1 THEN 1 ELSE 0 END) * 100.0 / COUNT(l.id))
			END AS progress_percent
		FROM subjects s
		LEFT JOIN lessons l ON s.id = l.subject_id
		GROUP BY s.id, s.name, s.color
		ORDER BY s.id`); err != nil {
		return nil, fmt.Errorf("db.SelectContext(subject progress) > %w", err)
	}
	return progress, nil
}
