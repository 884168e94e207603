// Package generr defines the error kinds reported during universe
// generation and the context attached to them.
package generr

import (
	"errors"
	"fmt"

	"universe-engine/universe"
)

// Sentinel errors for the three generation failure kinds. Wrapped errors
// keep these matchable with errors.Is.
var (
	// ErrInvalidRange indicates a Range with min greater than max was used.
	ErrInvalidRange = errors.New("invalid range")
	// ErrNoValidCandidate indicates classification hit an empty candidate set.
	ErrNoValidCandidate = errors.New("no valid candidate")
	// ErrSeedExhaustion indicates a requested fan-out exceeded the seed
	// index space.
	ErrSeedExhaustion = errors.New("seed space exhausted")
)

// Error attaches generation context to a failure: the hierarchy level being
// generated, the ID of the parent whose subtree failed, and the attribute
// domain that was being resolved. The context is enough to reproduce the
// failure from the root seed.
type Error struct {
	Level    universe.Level
	ParentID string
	Domain   string
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("generate %s", e.Level)
	if e.ParentID != "" {
		msg += fmt.Sprintf(" under %s", e.ParentID)
	}
	if e.Domain != "" {
		msg += fmt.Sprintf(" [%s]", e.Domain)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap attaches generation context to err. Returns nil if err is nil.
func Wrap(err error, level universe.Level, parentID, domain string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Level:    level,
		ParentID: parentID,
		Domain:   domain,
		Err:      err,
	}
}

// InvalidRangef creates an invalid range error with formatting.
func InvalidRangef(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidRange)
}

// NoValidCandidatef creates a no valid candidate error with formatting.
func NoValidCandidatef(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNoValidCandidate)
}

// SeedExhaustionf creates a seed exhaustion error with formatting.
func SeedExhaustionf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrSeedExhaustion)
}

// From extracts the outermost generation context from an error chain.
func From(err error) (*Error, bool) {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr, true
	}
	return nil, false
}

// Kind returns the failure kind of an error as a short string, or "" when
// the error carries none of the generation sentinels.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, ErrNoValidCandidate):
		return "no_valid_candidate"
	case errors.Is(err, ErrSeedExhaustion):
		return "seed_exhaustion"
	}
	return ""
}
