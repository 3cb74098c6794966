package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/hmbarbier/brevetcoach/internal/bootstrap"
	"github.com/hmbarbier/brevetcoach/internal/config"
	"github.com/hmbarbier/brevetcoach/internal/database"
	"github.com/hmbarbier/brevetcoach/internal/recommendation"
	"github.com/hmbarbier/brevetcoach/internal/review"
	"github.com/hmbarbier/brevetcoach/internal/server"
	"github.com/hmbarbier/brevetcoach/internal/study"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "brevetcoach-server",
		Short:         "Study planner HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("config.Load() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app.AddShutdownHook(func(ctx context.Context) error {
		return db.Close()
	})

	if err := database.Migrate(ctx, db, cfg.Database.Driver); err != nil {
		return fmt.Errorf("database.Migrate() > %w", err)
	}

	subjects := study.NewDBSubjectRepository(db)
	lessons := study.NewDBLessonRepository(db)
	attempts := study.NewDBAttemptRepository(db)
	sessions := study.NewDBStudySessionRepository(db)
	states := review.NewDBStateRepository(db)
	scheduler := review.NewScheduler(lessons, states)
	tracker := study.NewTracker(lessons, attempts, sessions, scheduler)
	recommender := recommendation.NewService(lessons, subjects, attempts, sessions)

	opts := server.Options{
		AllowedOrigins: cfg.Server.CORS.AllowedOrigins,
		RecommendLimit: cfg.Recommendation.Limit,
		StatsWindow:    cfg.Recommendation.StatsWindowDays,
	}
	handler := server.NewAPIHandler(scheduler, tracker, recommender, subjects, attempts, sessions, opts)
	e := server.New(handler, opts)
	app.AddShutdownHook(e.Shutdown)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	return app.Run(ctx, func(ctx context.Context) error {
		log.Printf("Starting server on %s", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}
