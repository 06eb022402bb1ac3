package domain

import (
	"time"

	"github.com/google/uuid"
)

// SRSConfig holds study-service parameters (pure domain type).
type SRSConfig struct {
	DefaultBatchSize int
	MaxBatchSize     int
	StatsCacheTTL    time.Duration
	// Timezone names the IANA zone that defines the calendar day for progress tracking.
	Timezone string
}

// Flashcard is a single question/answer card from the shared deck.
type Flashcard struct {
	ID          uuid.UUID
	Domain      PMPDomain
	Question    string
	Answer      string
	Explanation *string
	CreatedAt   time.Time
}

// ReviewState is the per-user scheduling record for one flashcard.
// NextReviewAt is always ReviewedAt plus Interval days.
type ReviewState struct {
	UserID       uuid.UUID
	FlashcardID  uuid.UUID
	EaseFactor   float64
	Interval     int
	Lapses       int
	ReviewCount  int
	NextReviewAt time.Time
	ReviewedAt   time.Time
}

// ReviewResult is returned to the caller after a review has been recorded.
type ReviewResult struct {
	FlashcardID  uuid.UUID
	EaseFactor   float64
	Interval     int
	Lapses       int
	ReviewCount  int
	NextReviewAt time.Time
	Mastery      MasteryLevel
}

// StudyCard is an entry of the study queue. Review is nil for cards the user has never seen.
type StudyCard struct {
	Flashcard Flashcard
	Review    *ReviewState
}

// IsNew reports whether the card has no review record yet.
func (c StudyCard) IsNew() bool { return c.Review == nil }

// DailyProgress is the per-user, per-day review counter.
type DailyProgress struct {
	UserID        uuid.UUID
	Day           time.Time
	CardsReviewed int
	AgainCount    int
	StreakDays    int
	UpdatedAt     time.Time
}

// MasteryCounts holds the number of reviewed cards per mastery bucket.
type MasteryCounts struct {
	Learning  int
	Reviewing int
	Mastered  int
}

// Total returns the number of cards with a review record.
func (m MasteryCounts) Total() int { return m.Learning + m.Reviewing + m.Mastered }

// StudyStats holds aggregated study statistics for the user.
type StudyStats struct {
	DueCount      int
	NewCount      int
	ReviewedToday int
	AgainToday    int
	StreakDays    int
	Mastery       MasteryCounts
}
