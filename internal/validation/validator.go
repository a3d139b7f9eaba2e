package validation

import (
	"fmt"
	"strings"

	"github.com/collections-admin-api/internal/models"
	"github.com/google/uuid"
)

// Collection form field names
const (
	FieldName   = "name"
	FieldAuthor = "author"
	FieldType   = "type"
	FieldGenre  = "genre"
)

// RequiredFieldError reports a mandatory field left empty
type RequiredFieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e RequiredFieldError) Error() string {
	return e.Message
}

// Errors holds at most one RequiredFieldError per field, in form order
type Errors []RequiredFieldError

// Valid reports whether every field passed
func (e Errors) Valid() bool {
	return len(e) == 0
}

// For returns the error recorded for field, if any
func (e Errors) For(field string) (RequiredFieldError, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe, true
		}
	}
	return RequiredFieldError{}, false
}

// Map returns the errors keyed by field name
func (e Errors) Map() map[string]string {
	m := make(map[string]string, len(e))
	for _, fe := range e {
		m[fe.Field] = fe.Message
	}
	return m
}

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ValidationError represents a value outside an allowed vocabulary
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateCollection checks the four required collection fields independently
func ValidateCollection(in models.CollectionInput) Errors {
	var errs Errors

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, RequiredFieldError{Field: FieldName, Message: "Collection name is required"})
	}

	if strings.TrimSpace(in.Author) == "" {
		errs = append(errs, RequiredFieldError{Field: FieldAuthor, Message: "Author is required"})
	}

	if in.Type == "" {
		errs = append(errs, RequiredFieldError{Field: FieldType, Message: "Content type is required"})
	}

	if len(in.Genre) == 0 {
		errs = append(errs, RequiredFieldError{Field: FieldGenre, Message: "At least one genre is required"})
	}

	return errs
}

// ValidateVocabulary rejects content types and genres the form never offers.
// Empty values are left to ValidateCollection.
func ValidateVocabulary(in models.CollectionInput) []ValidationError {
	var errors []ValidationError

	if in.Type != "" && !models.ValidContentTypes[in.Type] {
		errors = append(errors, ValidationError{
			Field:   FieldType,
			Message: "invalid content type, must be one of: comic, video",
			Value:   in.Type,
		})
	}

	seen := make(map[string]bool, len(in.Genre))
	for _, g := range in.Genre {
		if !models.IsKnownGenre(g) {
			errors = append(errors, ValidationError{
				Field:   FieldGenre,
				Message: fmt.Sprintf("unknown genre %q", g),
				Value:   g,
			})
			continue
		}
		if seen[g] {
			errors = append(errors, ValidationError{Field: FieldGenre, Message: "duplicate genre", Value: g})
		}
		seen[g] = true
	}

	return errors
}

// IsValidID checks if a string is a valid collection UUID
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
