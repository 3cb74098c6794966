package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/hmbarbier/brevetcoach/internal/review"
	"github.com/hmbarbier/brevetcoach/internal/statistics"
	"github.com/hmbarbier/brevetcoach/internal/study"
)

// RunStats prints subject progress and daily study/accuracy series for
// the last `days` days.
func RunStats(
	ctx context.Context,
	w io.Writer,
	subjects study.SubjectRepository,
	sessions study.StudySessionRepository,
	attempts study.AttemptRepository,
	days int,
	asOf time.Time,
) error {
	progress, err := subjects.Progress(ctx)
	if err != nil {
		return fmt.Errorf("subjects.Progress() > %w", err)
	}

	bold := color.New(color.Bold)
	bold.Fprintln(w, "Subject progress")
	for _, subject := range progress {
		fmt.Fprintf(w, "  %-20s %d/%d lessons (%d%%)\n",
			subject.SubjectName, subject.CompletedLessons, subject.TotalLessons, subject.ProgressPercent)
	}

	from := asOf.AddDate(0, 0, -(days - 1))
	sessionRows, err := sessions.FindSince(ctx, review.DateOf(from))
	if err != nil {
		return fmt.Errorf("sessions.FindSince() > %w", err)
	}
	attemptRows, err := attempts.FindSince(ctx, review.DateOf(from))
	if err != nil {
		return fmt.Errorf("attempts.FindSince() > %w", err)
	}

	bold.Fprintf(w, "Last %d days\n", days)
	minutes := statistics.DailyStudyMinutes(sessionRows, from, asOf)
	accuracy := statistics.DailyAttemptAccuracy(attemptRows, from, asOf)
	for i := range minutes {
		fmt.Fprintf(w, "  %s  %3d min", minutes[i].Date.Format(dateLayout), minutes[i].Minutes)
		if accuracy[i].Correct+accuracy[i].Wrong > 0 {
			fmt.Fprintf(w, "  %3.0f%% accuracy (%d/%d)",
				accuracy[i].Accuracy, accuracy[i].Correct, accuracy[i].Correct+accuracy[i].Wrong)
		}
		fmt.Fprintln(w)
	}
	return nil
}
