package seeder

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/pmp-study-backend/internal/domain"
)

// Deck is the on-disk YAML format of a flashcard deck.
//
//	name: PMP core
//	cards:
//	  - domain: PEOPLE
//	    question: What does a servant leader focus on?
//	    answer: Removing impediments for the team.
//	    explanation: optional
type Deck struct {
	Name  string     `yaml:"name"  validate:"required"`
	Cards []DeckCard `yaml:"cards" validate:"required,min=1,dive"`
}

// DeckCard is one card of a deck file.
type DeckCard struct {
	Domain      string `yaml:"domain"      validate:"required,oneof=PEOPLE PROCESS BUSINESS_ENVIRONMENT"`
	Question    string `yaml:"question"    validate:"required,max=2000"`
	Answer      string `yaml:"answer"      validate:"required,max=4000"`
	Explanation string `yaml:"explanation" validate:"max=8000"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseDeck decodes and validates a deck. Unknown YAML fields are rejected
// and duplicate questions within the deck are reported.
func ParseDeck(r io.Reader) (*Deck, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Deck
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse deck: empty file")
		}
		return nil, fmt.Errorf("parse deck: %w", err)
	}

	for i := range d.Cards {
		d.Cards[i].Question = strings.TrimSpace(d.Cards[i].Question)
		d.Cards[i].Answer = strings.TrimSpace(d.Cards[i].Answer)
		d.Cards[i].Explanation = strings.TrimSpace(d.Cards[i].Explanation)
	}

	if err := validate.Struct(&d); err != nil {
		return nil, fmt.Errorf("validate deck: %w", err)
	}

	seen := make(map[string]int, len(d.Cards))
	for i, c := range d.Cards {
		if j, ok := seen[c.Question]; ok {
			return nil, fmt.Errorf("validate deck: card %d duplicates question of card %d", i, j)
		}
		seen[c.Question] = i
	}

	return &d, nil
}

// Flashcards converts the deck into domain flashcards. IDs and timestamps
// are assigned by the repository.
func (d *Deck) Flashcards() []domain.Flashcard {
	out := make([]domain.Flashcard, 0, len(d.Cards))
	for _, c := range d.Cards {
		fc := domain.Flashcard{
			Domain:   domain.PMPDomain(c.Domain),
			Question: c.Question,
			Answer:   c.Answer,
		}
		if c.Explanation != "" {
			explanation := c.Explanation
			fc.Explanation = &explanation
		}
		out = append(out, fc)
	}
	return out
}
