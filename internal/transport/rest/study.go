package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pmp-study-backend/internal/domain"
	"github.com/heartmarshall/pmp-study-backend/internal/service/study"
)

// studyService defines the minimal interface needed by StudyHandler.
type studyService interface {
	ReviewFlashcard(ctx context.Context, input study.ReviewFlashcardInput) (*domain.ReviewResult, error)
	SelectDueCards(ctx context.Context, input study.SelectDueCardsInput) ([]domain.StudyCard, error)
	GetStats(ctx context.Context) (*domain.StudyStats, error)
	ClassifyMastery(interval int) (domain.MasteryLevel, error)
}

// StudyHandler serves the flashcard study endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

// Register mounts the study routes on mux.
func (h *StudyHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/flashcards/{id}/review", h.Review)
	mux.HandleFunc("GET /api/v1/flashcards/due", h.Due)
	mux.HandleFunc("GET /api/v1/stats", h.Stats)
	mux.HandleFunc("GET /api/v1/mastery", h.Mastery)
}

type reviewRequest struct {
	Rating string `json:"rating"`
}

type reviewResponse struct {
	FlashcardID  string    `json:"flashcardId"`
	EaseFactor   float64   `json:"easeFactor"`
	Interval     int       `json:"interval"`
	Lapses       int       `json:"lapses"`
	ReviewCount  int       `json:"reviewCount"`
	NextReviewAt time.Time `json:"nextReviewAt"`
	Mastery      string    `json:"mastery"`
}

type flashcardResponse struct {
	ID          string    `json:"id"`
	Domain      string    `json:"domain"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Explanation *string   `json:"explanation,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type reviewStateResponse struct {
	EaseFactor   float64   `json:"easeFactor"`
	Interval     int       `json:"interval"`
	Lapses       int       `json:"lapses"`
	ReviewCount  int       `json:"reviewCount"`
	NextReviewAt time.Time `json:"nextReviewAt"`
	ReviewedAt   time.Time `json:"reviewedAt"`
}

type studyCardResponse struct {
	Flashcard flashcardResponse    `json:"flashcard"`
	Review    *reviewStateResponse `json:"review"`
	IsNew     bool                 `json:"isNew"`
}

type dueResponse struct {
	Cards []studyCardResponse `json:"cards"`
}

type statsResponse struct {
	DueCount      int             `json:"dueCount"`
	NewCount      int             `json:"newCount"`
	ReviewedToday int             `json:"reviewedToday"`
	AgainToday    int             `json:"againToday"`
	StreakDays    int             `json:"streakDays"`
	Mastery       masteryResponse `json:"mastery"`
}

type masteryResponse struct {
	Learning  int `json:"learning"`
	Reviewing int `json:"reviewing"`
	Mastered  int `json:"mastered"`
}

type classifyResponse struct {
	Interval int    `json:"interval"`
	Level    string `json:"level"`
}

// Review handles POST /api/v1/flashcards/{id}/review.
func (h *StudyHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid flashcard id")
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return
	}

	result, err := h.svc.ReviewFlashcard(r.Context(), study.ReviewFlashcardInput{
		FlashcardID: id,
		Rating:      domain.ReviewGrade(req.Rating),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reviewResponse{
		FlashcardID:  result.FlashcardID.String(),
		EaseFactor:   result.EaseFactor,
		Interval:     result.Interval,
		Lapses:       result.Lapses,
		ReviewCount:  result.ReviewCount,
		NextReviewAt: result.NextReviewAt,
		Mastery:      result.Mastery.String(),
	})
}

// Due handles GET /api/v1/flashcards/due.
func (h *StudyHandler) Due(w http.ResponseWriter, r *http.Request) {
	var input study.SelectDueCardsInput

	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidation, "limit must be an integer")
			return
		}
		input.Limit = limit
	}
	if raw := q.Get("domain"); raw != "" {
		d := domain.PMPDomain(raw)
		input.Domain = &d
	}

	cards, err := h.svc.SelectDueCards(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := dueResponse{Cards: make([]studyCardResponse, 0, len(cards))}
	for _, c := range cards {
		resp.Cards = append(resp.Cards, toStudyCardResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Stats handles GET /api/v1/stats.
func (h *StudyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		DueCount:      stats.DueCount,
		NewCount:      stats.NewCount,
		ReviewedToday: stats.ReviewedToday,
		AgainToday:    stats.AgainToday,
		StreakDays:    stats.StreakDays,
		Mastery: masteryResponse{
			Learning:  stats.Mastery.Learning,
			Reviewing: stats.Mastery.Reviewing,
			Mastered:  stats.Mastery.Mastered,
		},
	})
}

// Mastery handles GET /api/v1/mastery?interval=N.
func (h *StudyHandler) Mastery(w http.ResponseWriter, r *http.Request) {
	interval, err := strconv.Atoi(r.URL.Query().Get("interval"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "interval must be an integer")
		return
	}

	level, err := h.svc.ClassifyMastery(interval)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, classifyResponse{Interval: interval, Level: level.String()})
}

func toStudyCardResponse(c domain.StudyCard) studyCardResponse {
	resp := studyCardResponse{
		Flashcard: flashcardResponse{
			ID:          c.Flashcard.ID.String(),
			Domain:      c.Flashcard.Domain.String(),
			Question:    c.Flashcard.Question,
			Answer:      c.Flashcard.Answer,
			Explanation: c.Flashcard.Explanation,
			CreatedAt:   c.Flashcard.CreatedAt,
		},
		IsNew: c.IsNew(),
	}
	if c.Review != nil {
		resp.Review = &reviewStateResponse{
			EaseFactor:   c.Review.EaseFactor,
			Interval:     c.Review.Interval,
			Lapses:       c.Review.Lapses,
			ReviewCount:  c.Review.ReviewCount,
			NextReviewAt: c.Review.NextReviewAt,
			ReviewedAt:   c.Review.ReviewedAt,
		}
	}
	return resp
}
