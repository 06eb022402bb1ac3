package study

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/heartmarshall/pmp-study-backend/internal/domain"
	"github.com/heartmarshall/pmp-study-backend/pkg/ctxutil"
)

const (
	defaultBatchSize = 20
	maxBatchSize     = 100
)

// SelectDueCards returns the next study batch: due cards first (most overdue
// first), then cards the user has never reviewed, oldest first, filling the
// remaining slots.
func (s *Service) SelectDueCards(ctx context.Context, input SelectDueCardsInput) ([]domain.StudyCard, error) {
	ctx, span := tracer.Start(ctx, "study.SelectDueCards")
	defer span.End()

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := s.batchSize(input.Limit)
	span.SetAttributes(attribute.Int("limit", limit))

	now := s.clock()

	due, err := s.reviews.GetDue(ctx, userID, now, input.Domain, limit)
	if err != nil {
		return nil, fmt.Errorf("get due cards: %w", err)
	}

	queue := make([]domain.StudyCard, 0, limit)
	queue = append(queue, due...)

	if remaining := limit - len(queue); remaining > 0 {
		fresh, err := s.flashcards.GetNew(ctx, userID, input.Domain, remaining)
		if err != nil {
			return nil, fmt.Errorf("get new cards: %w", err)
		}
		for _, fc := range fresh {
			queue = append(queue, domain.StudyCard{Flashcard: fc})
		}
	}

	s.log.DebugContext(ctx, "study batch selected",
		slog.String("user_id", userID.String()),
		slog.Int("limit", limit),
		slog.Int("due", len(due)),
		slog.Int("total", len(queue)),
	)

	return queue, nil
}

// batchSize resolves the requested limit against configuration.
func (s *Service) batchSize(requested int) int {
	def := s.srsConfig.DefaultBatchSize
	if def <= 0 {
		def = defaultBatchSize
	}
	upper := s.srsConfig.MaxBatchSize
	if upper <= 0 {
		upper = maxBatchSize
	}

	limit := requested
	if limit == 0 {
		limit = def
	}
	return min(limit, upper)
}
