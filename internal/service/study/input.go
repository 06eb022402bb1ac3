package study

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/heartmarshall/pmp-study-backend/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("field"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// ReviewFlashcardInput holds the parameters for reviewing a flashcard.
// Rating is checked separately so that unknown values surface as domain.ErrInvalidRating.
type ReviewFlashcardInput struct {
	FlashcardID uuid.UUID `field:"flashcard_id" validate:"required"`
	Rating      domain.ReviewGrade
}

// Validate checks all fields and collects all errors.
func (i *ReviewFlashcardInput) Validate() error {
	return validateStruct(i)
}

// SelectDueCardsInput holds the parameters for building a study batch.
// Limit 0 means the configured default batch size.
type SelectDueCardsInput struct {
	Limit  int               `field:"limit"  validate:"gte=0,lte=100"`
	Domain *domain.PMPDomain `field:"domain" validate:"omitempty,oneof=PEOPLE PROCESS BUSINESS_ENVIRONMENT"`
}

// Validate checks all fields and collects all errors.
func (i *SelectDueCardsInput) Validate() error {
	return validateStruct(i)
}

// validateStruct runs tag validation and converts failures into a *domain.ValidationError.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate input: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return domain.NewValidationErrors(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "invalid value"
	}
}
