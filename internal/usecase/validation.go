package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var nonDigits = regexp.MustCompile(`\D`)

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	for i, phone := range input.Phones {
		if !isValidPhoneNumber(phone.Number) {
			errors = append(errors, ValidationError{fmt.Sprintf("phones[%d]", i), "must be a valid phone number"})
		}
	}

	if input.Relationship != "" && input.Relationship != "Lead" && input.Relationship != "Learner" {
		errors = append(errors, ValidationError{"relationship", "must be Lead or Learner"})
	}

	return errors
}

func ValidateAnalyzeLeadInput(input AnalyzeLeadInput) []ValidationError {
	var errors []ValidationError

	if len(input.Insights) == 0 && len(input.Traits) == 0 &&
		strings.TrimSpace(input.Notes) == "" && len(input.Interactions) == 0 {
		errors = append(errors, ValidationError{"input", "at least one of insights, traits, notes or interactions is required"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	return len(cleaned) >= 7 && len(cleaned) <= 15
}
