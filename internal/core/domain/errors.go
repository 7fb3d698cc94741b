package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidPath indicates the project path does not exist or is not a directory.
	ErrInvalidPath = errors.New("invalid project path")

	// ErrNoMatch indicates no probe recognised the project.
	ErrNoMatch = errors.New("no project type detected")

	// ErrUnknownCategory indicates a category outside the supported set.
	ErrUnknownCategory = errors.New("unknown project category")

	// ErrTemplateMissing indicates no rule template exists for a category.
	ErrTemplateMissing = errors.New("template missing for category")

	// ErrWriteFailed indicates the rule file could not be written.
	ErrWriteFailed = errors.New("rule file write failed")

	// ErrCustomRulesMissing indicates the supplied custom rules file does not exist.
	ErrCustomRulesMissing = errors.New("custom rules file not found")
)
