// Command cleanup removes daily progress rows older than the configured
// retention period. It is intended to be invoked by an external cron job,
// not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/pmp-study-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pmp-study-backend/internal/adapter/postgres/progress"
	"github.com/heartmarshall/pmp-study-backend/internal/app"
	"github.com/heartmarshall/pmp-study-backend/internal/config"
	"github.com/heartmarshall/pmp-study-backend/internal/service/study"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	today := study.CalendarDay(time.Now(), study.ParseTimezone(cfg.Study.Timezone))
	threshold := today.AddDate(0, 0, -cfg.SRS.ProgressRetentionDays)

	deleted, err := progress.New(pool).DeleteBefore(ctx, threshold)
	if err != nil {
		logger.Error("progress cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("progress cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
