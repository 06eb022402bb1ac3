package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/pmp-study-backend/internal/domain"
)

// FlashcardBulkRepo inserts flashcards, skipping ones whose question already exists.
type FlashcardBulkRepo interface {
	BulkCreate(ctx context.Context, cards []domain.Flashcard) (int, error)
}

// Result summarises a seeding run.
type Result struct {
	Total    int
	Inserted int
	Skipped  int
	Duration time.Duration
}

// Seeder loads a deck into the flashcard table in batches.
type Seeder struct {
	log  *slog.Logger
	repo FlashcardBulkRepo
	cfg  Config
}

// New creates a Seeder.
func New(log *slog.Logger, repo FlashcardBulkRepo, cfg Config) *Seeder {
	return &Seeder{log: log.With("component", "seeder"), repo: repo, cfg: cfg}
}

// Run inserts every card of deck. In dry-run mode nothing is written.
func (s *Seeder) Run(ctx context.Context, deck *Deck) (Result, error) {
	start := time.Now()
	cards := deck.Flashcards()
	res := Result{Total: len(cards)}

	if s.cfg.DryRun {
		s.log.InfoContext(ctx, "dry run: deck parsed",
			slog.String("deck", deck.Name),
			slog.Int("cards", len(cards)),
		)
		res.Skipped = len(cards)
		res.Duration = time.Since(start)
		return res, nil
	}

	for lo := 0; lo < len(cards); lo += s.cfg.BatchSize {
		hi := min(lo+s.cfg.BatchSize, len(cards))

		n, err := s.repo.BulkCreate(ctx, cards[lo:hi])
		if err != nil {
			return res, fmt.Errorf("insert batch %d-%d: %w", lo, hi, err)
		}
		res.Inserted += n
		s.log.DebugContext(ctx, "batch inserted", slog.Int("from", lo), slog.Int("to", hi), slog.Int("inserted", n))
	}

	res.Skipped = res.Total - res.Inserted
	res.Duration = time.Since(start)

	s.log.InfoContext(ctx, "deck seeded",
		slog.String("deck", deck.Name),
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}
