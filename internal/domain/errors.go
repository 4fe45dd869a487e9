package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName         = errors.New("species name must not be empty")
	ErrSpeciesNotFound     = errors.New("species not found")
	ErrUpstreamUnavailable = errors.New("species service unavailable")
	ErrTranslationFailed   = errors.New("translation failed")
)

// TranslationErrorKind classifies why a translation call did not produce text.
type TranslationErrorKind string

const (
	TranslationRejected    TranslationErrorKind = "rejected"
	TranslationUnreachable TranslationErrorKind = "unreachable"
	TranslationBadResponse TranslationErrorKind = "bad_response"
)

// TranslationError is returned by translators. StatusCode is only set for
// TranslationRejected.
type TranslationError struct {
	Kind       TranslationErrorKind
	StatusCode int
	Err        error
}

func (e *TranslationError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrTranslationFailed, e.Kind)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *TranslationError) Unwrap() error { return e.Err }

func (e *TranslationError) Is(target error) bool {
	return target == ErrTranslationFailed
}
