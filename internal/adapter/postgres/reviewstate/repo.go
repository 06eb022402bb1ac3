// Package reviewstate implements per-user flashcard scheduling state
// persistence using PostgreSQL.
package reviewstate

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/pmp-study-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pmp-study-backend/internal/domain"
)

const (
	tableReviews    = "flashcard_reviews"
	tableFlashcards = "flashcards"
)

var stateColumns = []string{
	"r.user_id", "r.flashcard_id", "r.ease_factor", "r.interval_days",
	"r.lapses", "r.review_count", "r.next_review_at", "r.reviewed_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const upsertSuffix = `ON CONFLICT (user_id, flashcard_id) DO UPDATE SET
    ease_factor    = EXCLUDED.ease_factor,
    interval_days  = EXCLUDED.interval_days,
    lapses         = EXCLUDED.lapses,
    review_count   = EXCLUDED.review_count,
    next_review_at = EXCLUDED.next_review_at,
    reviewed_at    = EXCLUDED.reviewed_at
RETURNING user_id, flashcard_id, ease_factor, interval_days, lapses, review_count, next_review_at, reviewed_at`

// Repo provides review state persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review state repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type stateRow struct {
	UserID       uuid.UUID `db:"user_id"`
	FlashcardID  uuid.UUID `db:"flashcard_id"`
	EaseFactor   float64   `db:"ease_factor"`
	IntervalDays int       `db:"interval_days"`
	Lapses       int       `db:"lapses"`
	ReviewCount  int       `db:"review_count"`
	NextReviewAt time.Time `db:"next_review_at"`
	ReviewedAt   time.Time `db:"reviewed_at"`
}

type dueRow struct {
	stateRow
	Domain      string    `db:"domain"`
	Question    string    `db:"question"`
	Answer      string    `db:"answer"`
	Explanation *string   `db:"explanation"`
	CreatedAt   time.Time `db:"created_at"`
}

type bucketRow struct {
	IntervalDays int `db:"interval_days"`
	Count        int `db:"count"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the review state of one card for one user.
// Returns domain.ErrNotFound when the user has never reviewed the card.
func (r *Repo) Get(ctx context.Context, userID, flashcardID uuid.UUID) (*domain.ReviewState, error) {
	query, args, err := psql.Select(stateColumns...).
		From(tableReviews + " r").
		Where(squirrel.Eq{"r.user_id": userID, "r.flashcard_id": flashcardID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get review state query: %w", err)
	}

	var row stateRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "review_state", flashcardID)
	}

	st := toDomainState(row)
	return &st, nil
}

// GetDue returns cards whose next review time is at or before now, most
// overdue first. A nil filter selects cards from every domain.
func (r *Repo) GetDue(ctx context.Context, userID uuid.UUID, now time.Time, filter *domain.PMPDomain, limit int) ([]domain.StudyCard, error) {
	if limit <= 0 {
		return []domain.StudyCard{}, nil
	}

	cols := append(append([]string{}, stateColumns...),
		"f.domain", "f.question", "f.answer", "f.explanation", "f.created_at")

	b := psql.Select(cols...).
		From(tableReviews + " r").
		Join(tableFlashcards + " f ON f.id = r.flashcard_id").
		Where(squirrel.Eq{"r.user_id": userID}).
		Where(squirrel.LtOrEq{"r.next_review_at": now})
	if filter != nil {
		b = b.Where(squirrel.Eq{"f.domain": filter.String()})
	}

	query, args, err := b.
		OrderBy("r.next_review_at ASC", "r.flashcard_id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due cards query: %w", err)
	}

	var rows []dueRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get due cards: %w", err)
	}

	cards := make([]domain.StudyCard, 0, len(rows))
	for _, row := range rows {
		st := toDomainState(row.stateRow)
		cards = append(cards, domain.StudyCard{
			Flashcard: domain.Flashcard{
				ID:          row.FlashcardID,
				Domain:      domain.PMPDomain(row.Domain),
				Question:    row.Question,
				Answer:      row.Answer,
				Explanation: row.Explanation,
				CreatedAt:   row.CreatedAt,
			},
			Review: &st,
		})
	}
	return cards, nil
}

// CountDue returns the number of the user's cards due at now.
func (r *Repo) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	query, args, err := psql.Select("count(*)").
		From(tableReviews).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.LtOrEq{"next_review_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count due query: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count due cards: %w", err)
	}
	return count, nil
}

// IntervalHistogram returns the number of the user's reviewed cards per
// interval length in days.
func (r *Repo) IntervalHistogram(ctx context.Context, userID uuid.UUID) (map[int]int, error) {
	query, args, err := psql.Select("interval_days", "count(*) AS count").
		From(tableReviews).
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("interval_days").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build interval histogram query: %w", err)
	}

	var rows []bucketRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("interval histogram: %w", err)
	}

	hist := make(map[int]int, len(rows))
	for _, row := range rows {
		hist[row.IntervalDays] = row.Count
	}
	return hist, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts or replaces the review state keyed by (user, flashcard)
// and returns the stored row. A missing flashcard maps to domain.ErrNotFound,
// out-of-range values to domain.ErrValidation.
func (r *Repo) Upsert(ctx context.Context, st domain.ReviewState) (*domain.ReviewState, error) {
	query, args, err := psql.Insert(tableReviews).
		Columns("user_id", "flashcard_id", "ease_factor", "interval_days",
			"lapses", "review_count", "next_review_at", "reviewed_at").
		Values(st.UserID, st.FlashcardID, st.EaseFactor, st.Interval,
			st.Lapses, st.ReviewCount, st.NextReviewAt, st.ReviewedAt).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert review state query: %w", err)
	}

	var row stateRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "review_state", st.FlashcardID)
	}

	saved := toDomainState(row)
	return &saved, nil
}

func toDomainState(row stateRow) domain.ReviewState {
	return domain.ReviewState{
		UserID:       row.UserID,
		FlashcardID:  row.FlashcardID,
		EaseFactor:   row.EaseFactor,
		Interval:     row.IntervalDays,
		Lapses:       row.Lapses,
		ReviewCount:  row.ReviewCount,
		NextReviewAt: row.NextReviewAt,
		ReviewedAt:   row.ReviewedAt,
	}
}
