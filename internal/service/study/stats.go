package study

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pmp-study-backend/internal/domain"
	"github.com/heartmarshall/pmp-study-backend/internal/service/study/sm2"
	"github.com/heartmarshall/pmp-study-backend/pkg/ctxutil"
)

// GetStats returns aggregated study statistics for the user.
// Results are served from the cache when present and cached on a miss.
func (s *Service) GetStats(ctx context.Context) (*domain.StudyStats, error) {
	ctx, span := tracer.Start(ctx, "study.GetStats")
	defer span.End()

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	key := statsKey(userID)
	if cached, ok := s.cachedStats(ctx, key); ok {
		return cached, nil
	}

	now := s.clock()
	today := CalendarDay(now, s.location())

	var (
		stats     domain.StudyStats
		histogram map[int]int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.reviews.CountDue(gctx, userID, now)
		if err != nil {
			return fmt.Errorf("count due cards: %w", err)
		}
		stats.DueCount = n
		return nil
	})

	g.Go(func() error {
		n, err := s.flashcards.CountNew(gctx, userID, nil)
		if err != nil {
			return fmt.Errorf("count new cards: %w", err)
		}
		stats.NewCount = n
		return nil
	})

	g.Go(func() error {
		h, err := s.reviews.IntervalHistogram(gctx, userID)
		if err != nil {
			return fmt.Errorf("interval histogram: %w", err)
		}
		histogram = h
		return nil
	})

	g.Go(func() error {
		p, err := s.progress.GetLatest(gctx, userID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get daily progress: %w", err)
		}
		switch {
		case p.Day.Equal(today):
			stats.ReviewedToday = p.CardsReviewed
			stats.AgainToday = p.AgainCount
			stats.StreakDays = p.StreakDays
		case p.Day.Equal(today.AddDate(0, 0, -1)):
			// Streak is still alive until today ends without a review.
			stats.StreakDays = p.StreakDays
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.Mastery = masteryCounts(histogram)

	s.storeStats(ctx, key, stats)

	return &stats, nil
}

// masteryCounts folds an interval histogram into mastery buckets.
func masteryCounts(histogram map[int]int) domain.MasteryCounts {
	var m domain.MasteryCounts
	for interval, n := range histogram {
		switch sm2.ClassifyMastery(interval) {
		case domain.MasteryLearning:
			m.Learning += n
		case domain.MasteryReviewing:
			m.Reviewing += n
		case domain.MasteryMastered:
			m.Mastered += n
		}
	}
	return m
}

func statsKey(userID uuid.UUID) string {
	return "study:stats:" + userID.String()
}

// cachedStats reads stats from the cache. Cache errors are treated as a miss.
func (s *Service) cachedStats(ctx context.Context, key string) (*domain.StudyStats, bool) {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "stats cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var stats domain.StudyStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		s.log.WarnContext(ctx, "stats cache entry corrupt", slog.String("key", key), slog.String("error", err.Error()))
		return nil, false
	}
	return &stats, true
}

func (s *Service) storeStats(ctx context.Context, key string, stats domain.StudyStats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		s.log.WarnContext(ctx, "stats marshal failed", slog.String("error", err.Error()))
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.srsConfig.StatsCacheTTL); err != nil {
		s.log.WarnContext(ctx, "stats cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (s *Service) invalidateStats(ctx context.Context, userID uuid.UUID) {
	key := statsKey(userID)
	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.WarnContext(ctx, "stats cache invalidation failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
