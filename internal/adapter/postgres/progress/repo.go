// Package progress implements daily review counter persistence using PostgreSQL.
package progress

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

const tableProgress = "daily_progress"

var columns = []string{"user_id", "day", "cards_reviewed", "again_count", "streak_days", "updated_at"}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const upsertSuffix = `ON CONFLICT (user_id, day) DO UPDATE SET
    cards_reviewed = EXCLUDED.cards_reviewed,
    again_count    = EXCLUDED.again_count,
    streak_days    = EXCLUDED.streak_days,
    updated_at     = EXCLUDED.updated_at`

// Repo provides daily progress persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new daily progress repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type progressRow struct {
	UserID        uuid.UUID `db:"user_id"`
	Day           time.Time `db:"day"`
	CardsReviewed int       `db:"cards_reviewed"`
	AgainCount    int       `db:"again_count"`
	StreakDays    int       `db:"streak_days"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// GetLatest returns the user's most recent progress row.
// Returns domain.ErrNotFound if the user has never reviewed a card.
func (r *Repo) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.DailyProgress, error) {
	query, args, err := psql.Select(columns...).
		From(tableProgress).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("day DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get progress query: %w", err)
	}

	var row progressRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "daily_progress", userID)
	}

	return &domain.DailyProgress{
		UserID:        row.UserID,
		Day:           row.Day,
		CardsReviewed: row.CardsReviewed,
		AgainCount:    row.AgainCount,
		StreakDays:    row.StreakDays,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

// Upsert writes the counter row for (user, day).
func (r *Repo) Upsert(ctx context.Context, p domain.DailyProgress) error {
	query, args, err := psql.Insert(tableProgress).
		Columns(columns...).
		Values(p.UserID, p.Day, p.CardsReviewed, p.AgainCount, p.StreakDays, p.UpdatedAt).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert progress query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "daily_progress", p.Day.Format(time.DateOnly))
	}
	return nil
}

// DeleteBefore removes every row older than day and returns the count.
func (r *Repo) DeleteBefore(ctx context.Context, day time.Time) (int64, error) {
	query, args, err := psql.Delete(tableProgress).
		Where(squirrel.Lt{"day": day}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete progress query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete progress before %s: %w", day.Format(time.DateOnly), err)
	}
	return tag.RowsAffected(), nil
}
