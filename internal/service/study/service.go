package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/heartmarshall/pmp-study-backend/internal/domain"
)

var tracer = otel.Tracer("github.com/heartmarshall/pmp-study-backend/internal/service/study")

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type flashcardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error)
	GetNew(ctx context.Context, userID uuid.UUID, filter *domain.PMPDomain, limit int) ([]domain.Flashcard, error)
	CountNew(ctx context.Context, userID uuid.UUID, filter *domain.PMPDomain) (int, error)
}

type reviewStateRepo interface {
	Get(ctx context.Context, userID, flashcardID uuid.UUID) (*domain.ReviewState, error)
	Upsert(ctx context.Context, state domain.ReviewState) (*domain.ReviewState, error)
	GetDue(ctx context.Context, userID uuid.UUID, now time.Time, filter *domain.PMPDomain, limit int) ([]domain.StudyCard, error)
	CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	IntervalHistogram(ctx context.Context, userID uuid.UUID) (map[int]int, error)
}

type progressRepo interface {
	GetLatest(ctx context.Context, userID uuid.UUID) (*domain.DailyProgress, error)
	Upsert(ctx context.Context, progress domain.DailyProgress) error
}

type statsCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements flashcard review scheduling and study statistics.
type Service struct {
	flashcards flashcardRepo
	reviews    reviewStateRepo
	progress   progressRepo
	cache      statsCache
	tx         txManager
	log        *slog.Logger
	srsConfig  domain.SRSConfig
	tz         *time.Location
	now        func() time.Time
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	flashcards flashcardRepo,
	reviews reviewStateRepo,
	progress progressRepo,
	cache statsCache,
	tx txManager,
	srsConfig domain.SRSConfig,
) *Service {
	return &Service{
		flashcards: flashcards,
		reviews:    reviews,
		progress:   progress,
		cache:      cache,
		tx:         tx,
		log:        log.With("service", "study"),
		srsConfig:  srsConfig,
		tz:         ParseTimezone(srsConfig.Timezone),
		now:        time.Now,
	}
}

func (s *Service) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

func (s *Service) location() *time.Location {
	if s.tz == nil {
		return time.UTC
	}
	return s.tz
}
