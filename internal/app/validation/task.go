// Package validation holds the field rules applied before a task is
// created or updated. Each violated rule yields one error; rules for
// different fields never short-circuit each other.
package validation

import (
	"strings"
	"unicode/utf8"

	"taskify/internal/core/domain"
	"taskify/pkg/result"
)

const (
	titleMaxLen             = 200
	createDescriptionMaxLen = 1000
	// Update deliberately allows longer descriptions and empty titles
	// than create does; both endpoints keep their historical rules.
	updateDescriptionMaxLen = 2000
)

var (
	errTitleEmpty            = result.Error{Code: "Validation.Title", Message: "Title must not be empty"}
	errTitleTooLong          = result.Error{Code: "Validation.Title", Message: "Title must not exceed 200 characters"}
	errDescriptionTooLong    = result.Error{Code: "Validation.Description", Message: "Description must not exceed 1000 characters"}
	errUpdDescriptionTooLong = result.Error{Code: "Validation.Description", Message: "Description must not exceed 2000 characters"}
	errStatusInvalid         = result.Error{Code: "Validation.Status", Message: "Status must be one of ToDo, InProgress, Done"}
)

// ValidateCreate reports every violated create rule. The two title
// rules are mutually exclusive for any single value.
func ValidateCreate(input domain.CreateTaskInput) []result.Error {
	var errs []result.Error

	if strings.TrimSpace(input.Title) == "" {
		errs = append(errs, errTitleEmpty)
	} else if utf8.RuneCountInString(input.Title) > titleMaxLen {
		errs = append(errs, errTitleTooLong)
	}

	if input.Description != nil && utf8.RuneCountInString(*input.Description) > createDescriptionMaxLen {
		errs = append(errs, errDescriptionTooLong)
	}

	return errs
}

// ValidateUpdate applies the looser update rules: no title emptiness
// requirement and a 2000 character description cap.
func ValidateUpdate(input domain.UpdateTaskInput) []result.Error {
	var errs []result.Error

	if utf8.RuneCountInString(input.Title) > titleMaxLen {
		errs = append(errs, errTitleTooLong)
	}

	if input.Description != nil && utf8.RuneCountInString(*input.Description) > updateDescriptionMaxLen {
		errs = append(errs, errUpdDescriptionTooLong)
	}

	if _, err := domain.ParseStatus(input.Status); err != nil {
		errs = append(errs, errStatusInvalid)
	}

	return errs
}
