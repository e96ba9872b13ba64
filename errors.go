package displaynames

import (
	"errors"
	"fmt"
)

// ErrMissingField indicates a required sub-field was absent from a source record.
var ErrMissingField = errors.New("displaynames: missing required field")

// ErrNoSource indicates an extractor was built without a data source.
var ErrNoSource = errors.New("displaynames: no data source configured")

// MissingFieldError identifies the locale, container, and entry of a
// source record lacking a required sub-field, so the operator can trace
// the failure back to the dataset.
type MissingFieldError struct {
	Locale    string
	Container string
	Key       string
	Field     string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("displaynames: %s/%s: entry %q has no %q field", e.Locale, e.Container, e.Key, e.Field)
}

// Is reports ErrMissingField so callers can match with errors.Is.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
