// Package parsererror defines the error types raised while reading and summarising
// transaction records.
package parsererror

import "fmt"

// Field names reported by MissingFieldError.
const (
	FieldAmountRaw       = "amount_raw"
	FieldBookkeepingType = "bookkeeping_type"
	FieldCategory        = "category"
	FieldDescription     = "description"
	FieldRecordedAtLocal = "recorded_at_local"
)

// MissingFieldError reports a record lacking a field the pipeline needs.
// Index is the record's position in the sequence handed to the pipeline.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record %d: missing required field %s", e.Index, e.Field)
}

// MalformedTimestampError reports a recorded_at_local value that cannot be parsed.
// Index follows the same convention as MissingFieldError.
type MalformedTimestampError struct {
	Index int
	Value string
	Err   error
}

func (e *MalformedTimestampError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("record %d: malformed timestamp in %s '%s'", e.Index, FieldRecordedAtLocal, e.Value)
	}
	return fmt.Sprintf("record %d: malformed timestamp in %s '%s': %v", e.Index, FieldRecordedAtLocal, e.Value, e.Err)
}

func (e *MalformedTimestampError) Unwrap() error {
	return e.Err
}

// ParseError represents a single field that a loader could not convert
type ParseError struct {
	Loader string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Loader, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents invalid pipeline options
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidFormatError represents an input document that does not have the shape
// a loader expects.
type InvalidFormatError struct {
	Source               string
	ExpectedFormat       string
	ActualContentSnippet string // Optional: a snippet of the actual content for debugging
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in '%s': %s. Expected: %s. Content snippet: '%s'",
			e.Source, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in '%s': %s. Expected: %s",
		e.Source, e.Msg, e.ExpectedFormat)
}
