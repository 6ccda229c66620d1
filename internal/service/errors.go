package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrTokenInvalid       = errors.New("token_invalid")
	ErrTokenExpired       = errors.New("token_expired")

	// ErrEnrichment wraps any batch-fetch failure inside GetHistory; the
	// operation fails whole rather than returning partially-enriched rows.
	ErrEnrichment = errors.New("history enrichment failed")
)
