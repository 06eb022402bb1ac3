package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/heartmarshall/pmp-study-backend/internal/domain"
	"github.com/heartmarshall/pmp-study-backend/internal/service/study/sm2"
	"github.com/heartmarshall/pmp-study-backend/pkg/ctxutil"
)

// ReviewFlashcard records one graded review and reschedules the card.
//
// The review state is loaded (or defaulted for a first review), run through
// the SM-2 transition and upserted by (user, flashcard). Daily progress is
// updated only after the upsert has committed and cannot fail the call.
func (s *Service) ReviewFlashcard(ctx context.Context, input ReviewFlashcardInput) (*domain.ReviewResult, error) {
	ctx, span := tracer.Start(ctx, "study.ReviewFlashcard")
	defer span.End()

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	quality, err := sm2.QualityOf(input.Rating)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("flashcard_id", input.FlashcardID.String()),
		attribute.String("rating", input.Rating.String()),
	)

	now := s.clock()
	var saved *domain.ReviewState

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.flashcards.GetByID(txCtx, input.FlashcardID); err != nil {
			return fmt.Errorf("get flashcard: %w", err)
		}

		prev, err := s.loadState(txCtx, userID, input.FlashcardID)
		if err != nil {
			return err
		}

		next, due := sm2.Review(quality, prev, now)

		saved, err = s.reviews.Upsert(txCtx, domain.ReviewState{
			UserID:       userID,
			FlashcardID:  input.FlashcardID,
			EaseFactor:   next.EaseFactor,
			Interval:     next.Interval,
			Lapses:       next.Lapses,
			ReviewCount:  next.ReviewCount,
			NextReviewAt: due,
			ReviewedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("upsert review state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordProgress(ctx, userID, quality, now)
	s.invalidateStats(ctx, userID)

	s.log.InfoContext(ctx, "flashcard reviewed",
		slog.String("user_id", userID.String()),
		slog.String("flashcard_id", input.FlashcardID.String()),
		slog.String("rating", input.Rating.String()),
		slog.Int("interval", saved.Interval),
		slog.Float64("ease_factor", saved.EaseFactor),
		slog.Int("lapses", saved.Lapses),
	)

	return &domain.ReviewResult{
		FlashcardID:  saved.FlashcardID,
		EaseFactor:   saved.EaseFactor,
		Interval:     saved.Interval,
		Lapses:       saved.Lapses,
		ReviewCount:  saved.ReviewCount,
		NextReviewAt: saved.NextReviewAt,
		Mastery:      sm2.ClassifyMastery(saved.Interval),
	}, nil
}

// loadState returns the stored scheduling state or sm2.InitialState when the
// user has never reviewed the card. Nothing is written here.
func (s *Service) loadState(ctx context.Context, userID, flashcardID uuid.UUID) (sm2.State, error) {
	st, err := s.reviews.Get(ctx, userID, flashcardID)
	if errors.Is(err, domain.ErrNotFound) {
		return sm2.InitialState, nil
	}
	if err != nil {
		return sm2.State{}, fmt.Errorf("get review state: %w", err)
	}

	return sm2.State{
		EaseFactor:  st.EaseFactor,
		Interval:    st.Interval,
		Lapses:      st.Lapses,
		ReviewCount: st.ReviewCount,
	}, nil
}

// ClassifyMastery returns the mastery bucket of a review interval.
func (s *Service) ClassifyMastery(interval int) (domain.MasteryLevel, error) {
	if interval < 1 || interval > sm2.MaxIntervalDays {
		return "", domain.NewValidationError("interval", fmt.Sprintf("must be between 1 and %d", sm2.MaxIntervalDays))
	}
	return sm2.ClassifyMastery(interval), nil
}
