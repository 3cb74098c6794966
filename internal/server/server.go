// Package server exposes the scheduling and recommendation core over a
// JSON HTTP API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hmbarbier/brevetcoach/internal/recommendation"
	"github.com/hmbarbier/brevetcoach/internal/review"
	"github.com/hmbarbier/brevetcoach/internal/study"
)

//go:generate mockgen -source=server.go -destination=../mocks/server/mock_server.go -package=mock_server

// ReviewService is the scheduler surface the API consumes.
type ReviewService interface {
	RecordOutcome(ctx context.Context, lessonID int64, success bool, asOf time.Time) (*review.State, error)
	DueLessons(ctx context.Context, asOf time.Time) ([]review.State, error)
	ForReview(ctx context.Context, asOf time.Time) ([]review.QueueEntry, error)
}

// StudyTracker is the event ingestion surface the API consumes.
type StudyTracker interface {
	RecordAttempt(ctx context.Context, attempt *study.Attempt) error
	RecordSession(ctx context.Context, session *study.StudySession, asOf time.Time) error
	CompleteLesson(ctx context.Context, lessonID int64, asOf time.Time) error
}

// Recommender ranks the weakest lessons.
type Recommender interface {
	Recommend(ctx context.Context, asOf time.Time, limit int) ([]recommendation.Recommendation, error)
}

// Options tunes API defaults.
type Options struct {
	AllowedOrigins []string
	RecommendLimit int
	StatsWindow    int
}

// APIHandler holds the dependencies behind the HTTP routes.
type APIHandler struct {
	reviews     ReviewService
	tracker     StudyTracker
	recommender Recommender
	subjects    study.SubjectRepository
	attempts    study.AttemptRepository
	sessions    study.StudySessionRepository

	recommendLimit int
	statsWindow    int

	// now is swapped out in tests for deterministic dates.
	now func() time.Time
}

func NewAPIHandler(
	reviews ReviewService,
	tracker StudyTracker,
	recommender Recommender,
	subjects study.SubjectRepository,
	attempts study.AttemptRepository,
	sessions study.StudySessionRepository,
	opts Options,
) *APIHandler {
	limit := opts.RecommendLimit
	if limit <= 0 {
		limit = 3
	}
	window := opts.StatsWindow
	if window <= 0 {
		window = 7
	}
	return &APIHandler{
		reviews:        reviews,
		tracker:        tracker,
		recommender:    recommender,
		subjects:       subjects,
		attempts:       attempts,
		sessions:       sessions,
		recommendLimit: limit,
		statsWindow:    window,
		now:            time.Now,
	}
}

// New builds the echo instance with all routes registered.
func New(handler *APIHandler, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	if len(opts.AllowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: opts.AllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		}))
	}

	handler.Register(e)
	return e
}

// Register attaches all API routes.
func (h *APIHandler) Register(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", h.health)
	api.GET("/reviews/due", h.reviewsDue)
	api.POST("/reviews/outcome", h.recordOutcome)
	api.POST("/attempts", h.recordAttempt)
	api.POST("/sessions", h.recordSession)
	api.POST("/lessons/:id/complete", h.completeLesson)
	api.GET("/recommendations", h.recommendations)
	api.GET("/stats/subjects", h.subjectProgress)
	api.GET("/stats/daily", h.dailyMinutes)
	api.GET("/stats/accuracy", h.dailyAccuracy)
	api.GET("/stats/today", h.todayMinutes)
}
