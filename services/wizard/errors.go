// Package wizard implements the multi-step booking and investment flows as
// explicit state machines. Validation never changes the current step.
package wizard

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrSubmissionInProgress is returned while a submission is in flight
	ErrSubmissionInProgress = errors.New("submission already in progress")
	// ErrSubmissionRejected wraps a submitter failure; the wizard keeps its data
	ErrSubmissionRejected = errors.New("submission rejected")
	// ErrInvalidTransition is returned for operations not allowed at the current step
	ErrInvalidTransition = errors.New("invalid transition")
)

// ValidationErrors maps a field name to a user-facing message
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// AsValidationErrors extracts field errors from err
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
