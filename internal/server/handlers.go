package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hmbarbier/brevetcoach/internal/recommendation"
	"github.com/hmbarbier/brevetcoach/internal/review"
	"github.com/hmbarbier/brevetcoach/internal/statistics"
	"github.com/hmbarbier/brevetcoach/internal/study"
)

const dateLayout = "2006-01-02"

type stateResponse struct {
	LessonID       int64   `json:"lesson_id"`
	NextReviewDate string  `json:"next_review_date"`
	IntervalDays   int     `json:"interval_days"`
	EaseFactor     float64 `json:"ease_factor"`
	LastResult     bool    `json:"last_result"`
}

func toStateResponse(state *review.State) stateResponse {
	return stateResponse{
		LessonID:       state.LessonID,
		NextReviewDate: state.NextReviewDate.Format(dateLayout),
		IntervalDays:   state.IntervalDays,
		EaseFactor:     state.EaseFactor,
		LastResult:     state.LastResult,
	}
}

type queueEntryResponse struct {
	LessonID       int64  `json:"lesson_id"`
	Title          string `json:"title"`
	Summary        string `json:"summary"`
	SubjectName    string `json:"subject_name"`
	SubjectColor   string `json:"subject_color"`
	NextReviewDate string `json:"next_review_date"`
	IntervalDays   int    `json:"interval_days"`
}

func (h *APIHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *APIHandler) reviewsDue(c echo.Context) error {
	entries, err := h.reviews.ForReview(c.Request().Context(), h.now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	response := make([]queueEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, queueEntryResponse{
			LessonID:       entry.LessonID,
			Title:          entry.Title,
			Summary:        entry.Summary,
			SubjectName:    entry.SubjectName,
			SubjectColor:   entry.SubjectColor,
			NextReviewDate: entry.NextReviewDate.Format(dateLayout),
			IntervalDays:   entry.IntervalDays,
		})
	}
	return c.JSON(http.StatusOK, response)
}

type outcomeRequest struct {
	LessonID int64 `json:"lesson_id"`
	Success  bool  `json:"success"`
}

func (h *APIHandler) recordOutcome(c echo.Context) error {
	var req outcomeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	state, err := h.reviews.RecordOutcome(c.Request().Context(), req.LessonID, req.Success, h.now())
	if errors.Is(err, review.ErrLessonNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toStateResponse(state))
}

type attemptRequest struct {
	ExerciseID       int64 `json:"exercise_id"`
	ChosenIndex      int   `json:"chosen_index"`
	Correct          bool  `json:"is_correct"`
	TimeSpentSeconds int   `json:"time_spent_seconds"`
}

func (h *APIHandler) recordAttempt(c echo.Context) error {
	var req attemptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	attempt := &study.Attempt{
		ExerciseID:       req.ExerciseID,
		ChosenIndex:      req.ChosenIndex,
		Correct:          req.Correct,
		TimeSpentSeconds: req.TimeSpentSeconds,
		CreatedAt:        h.now(),
	}
	if err := h.tracker.RecordAttempt(c.Request().Context(), attempt); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": attempt.ID})
}

type sessionRequest struct {
	SubjectID       int64  `json:"subject_id"`
	LessonID        int64  `json:"lesson_id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	FocusRating     int    `json:"focus_rating"`
	Notes           string `json:"notes"`
}

func (h *APIHandler) recordSession(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "start_time must be RFC3339")
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "end_time must be RFC3339")
	}
	session := &study.StudySession{
		SubjectID:       req.SubjectID,
		LessonID:        req.LessonID,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: req.DurationMinutes,
		FocusRating:     req.FocusRating,
		Notes:           req.Notes,
	}
	if err := h.tracker.RecordSession(c.Request().Context(), session, h.now()); err != nil {
		if errors.Is(err, review.ErrLessonNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": session.ID})
}

func (h *APIHandler) completeLesson(c echo.Context) error {
	lessonID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid lesson id")
	}
	if err := h.tracker.CompleteLesson(c.Request().Context(), lessonID, h.now()); err != nil {
		if errors.Is(err, review.ErrLessonNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *APIHandler) recommendations(c echo.Context) error {
	limit := h.recommendLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = parsed
	}
	recommendations, err := h.recommender.Recommend(c.Request().Context(), h.now(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if recommendations == nil {
		recommendations = []recommendation.Recommendation{}
	}
	return c.JSON(http.StatusOK, recommendations)
}

func (h *APIHandler) subjectProgress(c echo.Context) error {
	progress, err := h.subjects.Progress(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, progress)
}

func (h *APIHandler) statsWindowDays(c echo.Context) (int, error) {
	days := h.statsWindow
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return 0, echo.NewHTTPError(http.StatusBadRequest, "days must be a positive integer")
		}
		days = parsed
	}
	return days, nil
}

func (h *APIHandler) dailyMinutes(c echo.Context) error {
	days, err := h.statsWindowDays(c)
	if err != nil {
		return err
	}
	now := h.now()
	from := now.AddDate(0, 0, -(days - 1))
	sessions, err := h.sessions.FindSince(c.Request().Context(), review.DateOf(from))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, statistics.DailyStudyMinutes(sessions, from, now))
}

func (h *APIHandler) dailyAccuracy(c echo.Context) error {
	days, err := h.statsWindowDays(c)
	if err != nil {
		return err
	}
	now := h.now()
	from := now.AddDate(0, 0, -(days - 1))
	attempts, err := h.attempts.FindSince(c.Request().Context(), review.DateOf(from))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, statistics.DailyAttemptAccuracy(attempts, from, now))
}

func (h *APIHandler) todayMinutes(c echo.Context) error {
	now := h.now()
	sessions, err := h.sessions.FindSince(c.Request().Context(), review.DateOf(now))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int{
		"total_minutes": statistics.TotalMinutesOn(sessions, now),
	})
}
