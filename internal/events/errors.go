package events

import (
	"errors"
	"sort"
	"strings"
)

// Failure taxonomy for the rules engine. The HTTP boundary maps these to
// status codes; nothing here is fatal to the process.
var (
	ErrInvalidStatus = errors.New("invalid RSVP status")
	ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
)

// ValidationError carries field-level failures, e.g.
// {"start_time": "start_time must be before end_time."}.
type ValidationError map[string]string

func (v ValidationError) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
