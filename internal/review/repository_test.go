package review

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmbarbier/brevetcoach/internal/config"
	"github.com/hmbarbier/brevetcoach/internal/database"
)

func stateColumns() []string {
	return []string{"id", "lesson_id", "next_review_date", "interval_days", "ease_factor", "last_result"}
}

func TestDBStateRepository_FindByLesson(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *State
		wantErr   bool
	}{
		{
			name: "returns state",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(stateColumns()).
					AddRow(1, 10, "2025-03-11", 3, 2.5, 1)
				mock.ExpectQuery("SELECT \\* FROM review_states WHERE lesson_id = \\?").
					WithArgs(int64(10)).
					WillReturnRows(rows)
			},
			want: &State{
				LessonID:       10,
				NextReviewDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
				IntervalDays:   3,
				EaseFactor:     2.5,
				LastResult:     true,
			},
		},
		{
			name: "no state returns nil",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM review_states WHERE lesson_id = \\?").
					WithArgs(int64(10)).
					WillReturnRows(sqlmock.NewRows(stateColumns()))
			},
			want: nil,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM review_states WHERE lesson_id = \\?").
					WithArgs(int64(10)).
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
		{
			name: "malformed date is an error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(stateColumns()).
					AddRow(1, 10, "not-a-date", 3, 2.5, 1)
				mock.ExpectQuery("SELECT \\* FROM review_states WHERE lesson_id = \\?").
					WithArgs(int64(10)).
					WillReturnRows(rows)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBStateRepository(sqlx.NewDb(db, "sqlite"))
			tt.setupMock(mock)

			got, err := repo.FindByLesson(context.Background(), 10)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBStateRepository_Apply(t *testing.T) {
	next := State{
		LessonID:       10,
		NextReviewDate: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		IntervalDays:   3,
		EaseFactor:     2.5,
		LastResult:     true,
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantPrev  *State
		wantErr   bool
	}{
		{
			name: "inserts when no state exists",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM review_states WHERE lesson_id = \\?").
					WithArgs(int64(10)).
					WillReturnRows(sqlmock.NewRows(stateColumns()))
				mock.ExpectExec("INSERT INTO review_states").
					WithArgs(int64(10), "2025-03-14", 3, 2.5, 1).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			wantPrev: nil,
		},
		{
			name: "updates existing state",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM review_states WHERE lesson_id = \\?").
					WithArgs(int64(10)).
					WillReturnRows(sqlmock.NewRows(stateColumns()).
						AddRow(1, 10, "2025-03-11", 1, 2.4, 0))
				mock.ExpectExec("UPDATE review_states SET").
					WithArgs("2025-03-14", 3, 2.5, 1, int64(10)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantPrev: &State{
				LessonID:       10,
				NextReviewDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
				IntervalDays:   1,
				EaseFactor:     2.4,
				LastResult:     false,
			},
		},
		{
			name: "write error rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM review_states WHERE lesson_id = \\?").
					WithArgs(int64(10)).
					WillReturnRows(sqlmock.NewRows(stateColumns()))
				mock.ExpectExec("INSERT INTO review_states").
					WillReturnError(fmt.Errorf("disk full"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBStateRepository(sqlx.NewDb(db, "sqlite"))
			tt.setupMock(mock)

			var gotPrev *State
			got, err := repo.Apply(context.Background(), 10, func(prev *State) State {
				gotPrev = prev
				return next
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrev, gotPrev)
			assert.Equal(t, next, *got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBStateRepository_FindDue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDBStateRepository(sqlx.NewDb(db, "sqlite"))

	rows := sqlmock.NewRows(stateColumns()).
		AddRow(1, 3, "2025-03-08", 1, 2.1, 0).
		AddRow(2, 1, "2025-03-10", 3, 2.5, 1)
	mock.ExpectQuery("SELECT \\* FROM review_states\\s+WHERE next_review_date <= \\?\\s+ORDER BY next_review_date, lesson_id").
		WithArgs("2025-03-10").
		WillReturnRows(rows)

	got, err := repo.FindDue(context.Background(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].LessonID)
	assert.Equal(t, int64(1), got[1].LessonID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Against a fixed state set, moving asOf forward one day can only add
// lessons to the due list, never drop any.
func TestDBStateRepository_FindDue_LaterDateKeepsEarlierLessons(t *testing.T) {
	db, err := database.Open(config.DatabaseConfig{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, database.Migrate(ctx, db, database.DriverSQLite))

	_, err = db.ExecContext(ctx, "INSERT INTO subjects (name, color) VALUES ('Math', '#ff0000')")
	require.NoError(t, err)
	dueDates := map[int64]string{1: "2025-03-09", 2: "2025-03-10", 3: "2025-03-11"}
	for lessonID := int64(1); lessonID <= 3; lessonID++ {
		_, err = db.ExecContext(ctx,
			"INSERT INTO lessons (subject_id, title) VALUES (1, ?)", fmt.Sprintf("Lesson %d", lessonID))
		require.NoError(t, err)
		_, err = db.ExecContext(ctx,
			`INSERT INTO review_states (lesson_id, next_review_date, interval_days, ease_factor, last_result)
			VALUES (?, ?, 1, 2.5, 1)`,
			lessonID, dueDates[lessonID])
		require.NoError(t, err)
	}

	repo := NewDBStateRepository(db)
	wantSizes := []int{0, 1, 2, 3, 3}
	var previous map[int64]bool
	for i, day := 0, 8; day <= 12; i, day = i+1, day+1 {
		asOf := time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
		got, err := repo.FindDue(ctx, asOf)
		require.NoError(t, err)
		assert.Len(t, got, wantSizes[i], "due list size on 2025-03-%02d", day)

		ids := make(map[int64]bool, len(got))
		for _, state := range got {
			ids[state.LessonID] = true
		}
		for id := range previous {
			assert.True(t, ids[id], "lesson %d due on 2025-03-%02d but not the day after", id, day-1)
		}
		previous = ids
	}
}

func TestDBStateRepository_FindDueWithLessons(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDBStateRepository(sqlx.NewDb(db, "sqlite"))

	rows := sqlmock.NewRows([]string{
		"lesson_id", "title", "summary", "subject_name", "subject_color", "next_review_date", "interval_days",
	}).
		AddRow(5, "Fractions", "Adding fractions", "Math", "#ff0000", "2025-03-09", 2).
		AddRow(8, "Photosynthesis", "Light reactions", "Biology", "#00ff00", "2025-03-10", 1)
	mock.ExpectQuery("FROM review_states r\\s+JOIN lessons l ON r.lesson_id = l.id\\s+JOIN subjects s ON l.subject_id = s.id").
		WithArgs("2025-03-10").
		WillReturnRows(rows)

	got, err := repo.FindDueWithLessons(context.Background(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Fractions", got[0].Title)
	assert.Equal(t, "Math", got[0].SubjectName)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), got[0].NextReviewDate)
	assert.Equal(t, int64(8), got[1].LessonID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
