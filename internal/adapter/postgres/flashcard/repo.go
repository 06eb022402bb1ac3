// Package flashcard implements the shared flashcard deck repository using PostgreSQL.
// Queries are built with squirrel and scanned with pgxscan.
package flashcard

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
	tableFlashcards = "flashcards"
	tableReviews    = "flashcard_reviews"

	// bulkChunkSize bounds the number of rows per multi-row INSERT
	// (6 params per row, PostgreSQL allows 65535 per statement).
	bulkChunkSize = 500
)

var columns = []string{"f.id", "f.domain", "f.question", "f.answer", "f.explanation", "f.created_at"}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new flashcard repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type flashcardRow struct {
	ID          uuid.UUID `db:"id"`
	Domain      string    `db:"domain"`
	Question    string    `db:"question"`
	Answer      string    `db:"answer"`
	Explanation *string   `db:"explanation"`
	CreatedAt   time.Time `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a flashcard by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
	query, args, err := psql.Select(columns...).
		From(tableFlashcards + " f").
		Where(squirrel.Eq{"f.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get flashcard query: %w", err)
	}

	var row flashcardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard", id)
	}

	fc := toDomain(row)
	return &fc, nil
}

// GetNew returns flashcards the user has never reviewed, oldest first.
// A nil filter selects cards from every domain.
func (r *Repo) GetNew(ctx context.Context, userID uuid.UUID, filter *domain.PMPDomain, limit int) ([]domain.Flashcard, error) {
	if limit <= 0 {
		return []domain.Flashcard{}, nil
	}

	query, args, err := newCardsQuery(psql.Select(columns...), userID, filter).
		OrderBy("f.created_at ASC", "f.id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build new cards query: %w", err)
	}

	var rows []flashcardRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get new cards: %w", err)
	}

	cards := make([]domain.Flashcard, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, toDomain(row))
	}
	return cards, nil
}

// CountNew returns the number of flashcards the user has never reviewed.
func (r *Repo) CountNew(ctx context.Context, userID uuid.UUID, filter *domain.PMPDomain) (int, error) {
	query, args, err := newCardsQuery(psql.Select("count(*)"), userID, filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count new query: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count new cards: %w", err)
	}
	return count, nil
}

// Count returns the size of the deck.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("count(*)").From(tableFlashcards).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count flashcards: %w", err)
	}
	return count, nil
}

// newCardsQuery restricts a select to cards without a review row for userID.
func newCardsQuery(b squirrel.SelectBuilder, userID uuid.UUID, filter *domain.PMPDomain) squirrel.SelectBuilder {
	b = b.From(tableFlashcards+" f").
		LeftJoin(tableReviews+" r ON r.flashcard_id = f.id AND r.user_id = ?", userID).
		Where("r.flashcard_id IS NULL")
	if filter != nil {
		b = b.Where(squirrel.Eq{"f.domain": filter.String()})
	}
	return b
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new flashcard. A zero ID is replaced with a random one.
// A duplicate question results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, fc domain.Flashcard) (*domain.Flashcard, error) {
	fc = withDefaults(fc)

	query, args, err := psql.Insert(tableFlashcards).
		Columns("id", "domain", "question", "answer", "explanation", "created_at").
		Values(fc.ID, fc.Domain.String(), fc.Question, fc.Answer, fc.Explanation, fc.CreatedAt).
		Suffix("RETURNING id, domain, question, answer, explanation, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert flashcard query: %w", err)
	}

	var row flashcardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard", fc.ID)
	}

	created := toDomain(row)
	return &created, nil
}

// BulkCreate inserts flashcards in chunks, skipping questions already in the
// deck. It returns the number of inserted rows.
func (r *Repo) BulkCreate(ctx context.Context, cards []domain.Flashcard) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	inserted := 0

	for start := 0; start < len(cards); start += bulkChunkSize {
		end := min(start+bulkChunkSize, len(cards))

		b := psql.Insert(tableFlashcards).
			Columns("id", "domain", "question", "answer", "explanation", "created_at")
		for _, fc := range cards[start:end] {
			fc = withDefaults(fc)
			b = b.Values(fc.ID, fc.Domain.String(), fc.Question, fc.Answer, fc.Explanation, fc.CreatedAt)
		}

		query, args, err := b.Suffix("ON CONFLICT (question) DO NOTHING").ToSql()
		if err != nil {
			return inserted, fmt.Errorf("build bulk insert query: %w", err)
		}

		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return inserted, postgres.MapError(err, "flashcards", fmt.Sprintf("[%d:%d]", start, end))
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func withDefaults(fc domain.Flashcard) domain.Flashcard {
	if fc.ID == uuid.Nil {
		fc.ID = uuid.New()
	}
	if fc.CreatedAt.IsZero() {
		fc.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	return fc
}

func toDomain(row flashcardRow) domain.Flashcard {
	return domain.Flashcard{
		ID:          row.ID,
		Domain:      domain.PMPDomain(row.Domain),
		Question:    row.Question,
		Answer:      row.Answer,
		Explanation: row.Explanation,
		CreatedAt:   row.CreatedAt,
	}
}
