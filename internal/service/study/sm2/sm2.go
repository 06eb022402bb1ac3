// Package sm2 implements the SM-2 variant used to schedule flashcard reviews.
// Everything here is pure: no I/O, no clock reads, no shared state.
package sm2

import (
	"fmt"
	"math"
	"time"

	"github.com/heartmarshall/pmp-study-backend/internal/domain"
)

const (
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 3.0
	DefaultEaseFactor = 2.5
	MaxIntervalDays   = 365

	// LearningThreshold is the interval (days) below which a card is still being learned.
	LearningThreshold = 7
	// MasteredThreshold is the interval (days) from which a card counts as mastered.
	MasteredThreshold = 30
)

// Quality is the integer encoding of a review grade: 0 (again) .. 3 (easy).
type Quality int

const (
	QualityAgain Quality = 0
	QualityHard  Quality = 1
	QualityGood  Quality = 2
	QualityEasy  Quality = 3
)

// State is the scheduling state carried between reviews.
type State struct {
	EaseFactor  float64
	Interval    int
	Lapses      int
	ReviewCount int
}

// InitialState is the state of a card the user has never reviewed.
var InitialState = State{
	EaseFactor:  DefaultEaseFactor,
	Interval:    1,
	Lapses:      0,
	ReviewCount: 0,
}

// Result is the output of a single transition.
type Result struct {
	EaseFactor float64
	Interval   int
	Lapses     int
}

// QualityOf maps a review grade to its quality score.
// Unknown grades return an error wrapping domain.ErrInvalidRating.
func QualityOf(grade domain.ReviewGrade) (Quality, error) {
	switch grade {
	case domain.ReviewGradeAgain:
		return QualityAgain, nil
	case domain.ReviewGradeHard:
		return QualityHard, nil
	case domain.ReviewGradeGood:
		return QualityGood, nil
	case domain.ReviewGradeEasy:
		return QualityEasy, nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidRating, string(grade))
	}
}

// Transition computes the next ease factor, interval and lapse count.
// easeFactor and interval are expected to already be within bounds.
// The final clamp is applied after every branch.
func Transition(q Quality, easeFactor float64, interval, lapses int) Result {
	ef, iv, lp := easeFactor, interval, lapses

	switch q {
	case QualityAgain:
		iv = 1
		lp++
		ef = math.Max(MinEaseFactor, ef-0.2)
	case QualityHard:
		iv = max(1, round(float64(interval)*1.2))
		ef = math.Max(MinEaseFactor, ef-0.15)
	case QualityGood:
		switch {
		case interval == 1:
			iv = 3
		case interval < LearningThreshold:
			iv = 7
		default:
			iv = round(float64(interval) * easeFactor)
		}
	case QualityEasy:
		switch {
		case interval == 1:
			iv = 4
		case interval < LearningThreshold:
			iv = 10
		default:
			iv = round(float64(interval) * easeFactor * 1.3)
		}
		ef += 0.15
	}

	return Result{
		EaseFactor: clamp(ef, MinEaseFactor, MaxEaseFactor),
		Interval:   min(iv, MaxIntervalDays),
		Lapses:     lp,
	}
}

// Review applies one graded review at now and returns the new state together
// with the due time of the next review.
func Review(q Quality, prev State, now time.Time) (State, time.Time) {
	r := Transition(q, prev.EaseFactor, prev.Interval, prev.Lapses)
	next := State{
		EaseFactor:  r.EaseFactor,
		Interval:    r.Interval,
		Lapses:      r.Lapses,
		ReviewCount: prev.ReviewCount + 1,
	}
	return next, NextReviewAt(now, r.Interval)
}

// NextReviewAt returns reviewedAt shifted by intervalDays calendar days.
func NextReviewAt(reviewedAt time.Time, intervalDays int) time.Time {
	return reviewedAt.AddDate(0, 0, intervalDays)
}

// ClassifyMastery buckets an interval for reporting. It has no effect on scheduling.
func ClassifyMastery(interval int) domain.MasteryLevel {
	switch {
	case interval < LearningThreshold:
		return domain.MasteryLearning
	case interval < MasteredThreshold:
		return domain.MasteryReviewing
	default:
		return domain.MasteryMastered
	}
}

// round rounds half away from zero.
func round(x float64) int {
	return int(math.Round(x))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
