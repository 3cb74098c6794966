// Package cli implements the terminal commands on top of the scheduling
// and recommendation services.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/hmbarbier/brevetcoach/internal/review"
)

const dateLayout = "2006-01-02"

type reviewLister interface {
	ForReview(ctx context.Context, asOf time.Time) ([]review.QueueEntry, error)
}

type outcomeRecorder interface {
	RecordOutcome(ctx context.Context, lessonID int64, success bool, asOf time.Time) (*review.State, error)
}

// RunDueList prints the lessons due for review as of the given time,
// earliest first. Overdue lessons are highlighted.
func RunDueList(ctx context.Context, w io.Writer, reviews reviewLister, asOf time.Time) error {
	entries, err := reviews.ForReview(ctx, asOf)
	if err != nil {
		return fmt.Errorf("reviews.ForReview() > %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No lessons due for review.")
		return nil
	}

	today := review.DateOf(asOf)
	red := color.New(color.FgRed)
	for _, entry := range entries {
		line := fmt.Sprintf("%s  #%d %s (%s)",
			entry.NextReviewDate.Format(dateLayout), entry.LessonID, entry.Title, entry.SubjectName)
		if entry.NextReviewDate.Before(today) {
			red.Fprintln(w, line+"  [overdue]")
		} else {
			fmt.Fprintln(w, line)
		}
	}
	return nil
}

// RunRecordOutcome records one review outcome and prints the updated
// scheduling state.
func RunRecordOutcome(ctx context.Context, w io.Writer, reviews outcomeRecorder, lessonID int64, success bool, asOf time.Time) error {
	state, err := reviews.RecordOutcome(ctx, lessonID, success, asOf)
	if err != nil {
		return fmt.Errorf("reviews.RecordOutcome(%d) > %w", lessonID, err)
	}

	if state.LastResult {
		color.New(color.FgGreen).Fprintf(w, "Recorded success for lesson #%d\n", state.LessonID)
	} else {
		color.New(color.FgRed).Fprintf(w, "Recorded failure for lesson #%d\n", state.LessonID)
	}
	fmt.Fprintf(w, "Next review: %s (interval %d days, ease %.2f)\n",
		state.NextReviewDate.Format(dateLayout), state.IntervalDays, state.EaseFactor)
	return nil
}
