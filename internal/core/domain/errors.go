package domain

import "errors"

var (
	// Authentication / authorization.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrAccessDenied     = errors.New("access denied")
	ErrUnknownRole      = errors.New("unknown role")

	// Credentials.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrProfileExists      = errors.New("profile already exists")

	// Learning content.
	ErrProgramNotFound    = errors.New("program not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrContentNotFound    = errors.New("content not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrQuestionNotFound   = errors.New("question not found")

	// Patient activity.
	ErrMoodEntryNotFound  = errors.New("mood entry not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("already enrolled")
)
