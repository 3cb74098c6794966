// Package study provides the lesson, attempt and study session domain
// models along with their repositories and aggregate queries.
package study

import "time"

// Subject groups lessons under a named, colored category.
type Subject struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Color string `db:"color"`
}

// Lesson is a unit of study content. Completed is set once the learner
// marks the lesson as studied.
type Lesson struct {
	ID               int64  `db:"id"`
	SubjectID        int64  `db:"subject_id"`
	Title            string `db:"title"`
	Summary          string `db:"summary"`
	ImportancePoints string `db:"importance_points"`
	CommonMistakes   string `db:"common_mistakes"`
	Completed        bool   `db:"is_completed"`
}

// LessonWithSubject joins a lesson with its subject for presentation.
type LessonWithSubject struct {
	Lesson
	SubjectName  string `db:"subject_name"`
	SubjectColor string `db:"subject_color"`
}

// Exercise is a multiple-choice question attached to a lesson.
type Exercise struct {
	ID           int64  `db:"id"`
	LessonID     int64  `db:"lesson_id"`
	Difficulty   int    `db:"difficulty"`
	Question     string `db:"question"`
	OptionsJSON  string `db:"options_json"`
	CorrectIndex int    `db:"correct_index"`
	Explanation  string `db:"explanation"`
}

// Attempt records one answer to an exercise. Attempts are append-only.
type Attempt struct {
	ID               int64
	ExerciseID       int64
	ChosenIndex      int
	Correct          bool
	TimeSpentSeconds int
	CreatedAt        time.Time
}

// StudySession records one completed focus session. LessonID is zero when
// the session was not tied to a specific lesson. Sessions are append-only.
type StudySession struct {
	ID              int64
	SubjectID       int64
	LessonID        int64
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	FocusRating     int
	Notes           string
}

// SubjectProgress summarizes lesson completion per subject.
type SubjectProgress struct {
	SubjectID        int64  `db:"subject_id"`
	SubjectName      string `db:"subject_name"`
	SubjectColor     string `db:"subject_color"`
	TotalLessons     int    `db:"total_lessons"`
	CompletedLessons int    `db:"completed_lessons"`
	ProgressPercent  int    `db:"progress_percent"`
}
