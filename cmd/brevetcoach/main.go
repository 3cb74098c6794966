package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/hmbarbier/brevetcoach/internal/config"
	"github.com/hmbarbier/brevetcoach/internal/database"
	"github.com/hmbarbier/brevetcoach/internal/recommendation"
	"github.com/hmbarbier/brevetcoach/internal/review"
	"github.com/hmbarbier/brevetcoach/internal/study"
)

var configFile string

func main() {
	var debugMode bool
	rootCommand := cobra.Command{
		Use:           "brevetcoach",
		Short:         "Study planner with spaced repetition scheduling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newDueCommand(),
		newRecordCommand(),
		newRecommendCommand(),
		newStatsCommand(),
		newMigrateCommand(),
		newResetCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load() > %w", err)
	}
	return cfg, nil
}

// app wires the repositories and services behind every subcommand.
type app struct {
	cfg         *config.Config
	db          *sqlx.DB
	subjects    *study.DBSubjectRepository
	lessons     *study.DBLessonRepository
	attempts    *study.DBAttemptRepository
	sessions    *study.DBStudySessionRepository
	scheduler   *review.Scheduler
	tracker     *study.Tracker
	recommender *recommendation.Service
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}

	subjects := study.NewDBSubjectRepository(db)
	lessons := study.NewDBLessonRepository(db)
	attempts := study.NewDBAttemptRepository(db)
	sessions := study.NewDBStudySessionRepository(db)
	states := review.NewDBStateRepository(db)
	scheduler := review.NewScheduler(lessons, states)

	return &app{
		cfg:         cfg,
		db:          db,
		subjects:    subjects,
		lessons:     lessons,
		attempts:    attempts,
		sessions:    sessions,
		scheduler:   scheduler,
		tracker:     study.NewTracker(lessons, attempts, sessions, scheduler),
		recommender: recommendation.NewService(lessons, subjects, attempts, sessions),
	}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		slog.Default().Warn("failed to close database", "error", err)
	}
}
