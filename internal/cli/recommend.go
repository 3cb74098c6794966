package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/hmbarbier/brevetcoach/internal/recommendation"
)

type recommender interface {
	Recommend(ctx context.Context, asOf time.Time, limit int) ([]recommendation.Recommendation, error)
}

// RunRecommend prints the weakest lessons, highest priority first.
func RunRecommend(ctx context.Context, w io.Writer, svc recommender, limit int, asOf time.Time) error {
	recommendations, err := svc.Recommend(ctx, asOf, limit)
	if err != nil {
		return fmt.Errorf("svc.Recommend() > %w", err)
	}

	if len(recommendations) == 0 {
		fmt.Fprintln(w, "No lessons to recommend.")
		return nil
	}

	bold := color.New(color.Bold)
	for i, rec := range recommendations {
		bold.Fprintf(w, "%d. #%d %s (%s)\n", i+1, rec.LessonID, rec.Title, rec.SubjectName)
		days := "never studied"
		if rec.DaysSinceStudied < recommendation.NeverStudiedDays {
			days = fmt.Sprintf("last studied %.0f days ago", rec.DaysSinceStudied)
		}
		fmt.Fprintf(w, "   score %.1f, accuracy %.0f%%, %s\n", rec.Score, rec.Accuracy, days)
	}
	return nil
}
