package study

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pmp-study-backend/internal/domain"
	"github.com/heartmarshall/pmp-study-backend/internal/service/study/sm2"
)

// recordProgress bumps the user's daily review counter.
//
// It never returns an error and never panics into the caller: by the time it
// runs the review is already committed, so any failure is logged and dropped.
func (s *Service) recordProgress(ctx context.Context, userID uuid.UUID, q sm2.Quality, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "daily progress update panicked",
				slog.String("user_id", userID.String()),
				slog.Any("panic", r),
			)
		}
	}()

	prev, err := s.progress.GetLatest(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "daily progress load failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	next := advanceProgress(prev, userID, q, now, s.location())

	if err := s.progress.Upsert(ctx, next); err != nil {
		s.log.WarnContext(ctx, "daily progress update failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// advanceProgress returns the counter row for today after one more review.
// A row from an earlier day is not carried over; only the streak survives
// when that day was yesterday.
func advanceProgress(prev *domain.DailyProgress, userID uuid.UUID, q sm2.Quality, now time.Time, tz *time.Location) domain.DailyProgress {
	today := CalendarDay(now, tz)

	again := 0
	if q == sm2.QualityAgain {
		again = 1
	}

	if prev != nil && prev.Day.Equal(today) {
		next := *prev
		next.CardsReviewed++
		next.AgainCount += again
		next.UpdatedAt = now
		return next
	}

	streak := 1
	if prev != nil && prev.Day.Equal(today.AddDate(0, 0, -1)) {
		streak = prev.StreakDays + 1
	}

	return domain.DailyProgress{
		UserID:        userID,
		Day:           today,
		CardsReviewed: 1,
		AgainCount:    again,
		StreakDays:    streak,
		UpdatedAt:     now,
	}
}
