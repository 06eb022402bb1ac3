package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/pmp-study-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedFlashcard inserts a flashcard in the given domain with a unique question.
func SeedFlashcard(t *testing.T, pool *pgxpool.Pool, d domain.PMPDomain) domain.Flashcard {
	t.Helper()

	suffix := uniqueSuffix()
	fc := domain.Flashcard{
		ID:        uuid.New(),
		Domain:    d,
		Question:  "Question " + suffix,
		Answer:    "Answer " + suffix,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO flashcards (id, domain, question, answer, explanation, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		fc.ID, string(fc.Domain), fc.Question, fc.Answer, fc.Explanation, fc.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFlashcard: %v", err)
	}

	return fc
}

// SeedReviewState inserts a review row for (userID, flashcardID) with the
// given interval, reviewed at reviewedAt.
func SeedReviewState(t *testing.T, pool *pgxpool.Pool, userID, flashcardID uuid.UUID, interval int, reviewedAt time.Time) domain.ReviewState {
	t.Helper()

	st := domain.ReviewState{
		UserID:       userID,
		FlashcardID:  flashcardID,
		EaseFactor:   2.5,
		Interval:     interval,
		ReviewCount:  1,
		ReviewedAt:   reviewedAt.UTC().Truncate(time.Microsecond),
		NextReviewAt: reviewedAt.UTC().Truncate(time.Microsecond).AddDate(0, 0, interval),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO flashcard_reviews
		   (user_id, flashcard_id, ease_factor, interval_days, lapses, review_count, next_review_at, reviewed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		st.UserID, st.FlashcardID, st.EaseFactor, st.Interval, st.Lapses, st.ReviewCount, st.NextReviewAt, st.ReviewedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReviewState: %v", err)
	}

	return st
}
