package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hmbarbier/brevetcoach/internal/cli"
	"github.com/hmbarbier/brevetcoach/internal/database"
)

func newDueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List lessons due for review today",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			return cli.RunDueList(cmd.Context(), os.Stdout, a.scheduler, time.Now())
		},
	}
}

func newRecordCommand() *cobra.Command {
	var lessonID int64
	var failed bool

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a review outcome for a lesson",
		RunE: func(cmd *cobra.Command, args []string) error {
			if lessonID <= 0 {
				return fmt.Errorf("--lesson must be a positive lesson id")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			return cli.RunRecordOutcome(cmd.Context(), os.Stdout, a.scheduler, lessonID, !failed, time.Now())
		},
	}
	cmd.Flags().Int64Var(&lessonID, "lesson", 0, "Lesson id")
	cmd.Flags().BoolVar(&failed, "failed", false, "Record the review as a failure")
	return cmd
}

func newRecommendCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Show the weakest lessons to study next",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if limit == 0 {
				limit = a.cfg.Recommendation.Limit
			}
			return cli.RunRecommend(cmd.Context(), os.Stdout, a.recommender, limit, time.Now())
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Number of lessons to recommend")
	return cmd
}

func newStatsCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show subject progress and recent study statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if days == 0 {
				days = a.cfg.Recommendation.StatsWindowDays
			}
			return cli.RunStats(cmd.Context(), os.Stdout, a.subjects, a.sessions, a.attempts, days, time.Now())
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "Number of days to include")
	return cmd
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if err := database.Migrate(cmd.Context(), a.db, a.cfg.Database.Driver); err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			fmt.Fprintln(os.Stdout, "Migrations applied.")
			return nil
		},
	}
}

func newResetCommand() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all study data and re-apply migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("reset deletes all data; re-run with --yes to confirm")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if err := database.Reset(cmd.Context(), a.db, a.cfg.Database.Driver); err != nil {
				return fmt.Errorf("database.Reset() > %w", err)
			}
			fmt.Fprintln(os.Stdout, "All data deleted.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm deletion of all data")
	return cmd
}
