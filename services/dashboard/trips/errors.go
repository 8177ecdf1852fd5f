package trips

import (
	"fmt"
	"strings"
)

// Status reports whether ingestion produced a table or is still waiting for a file.
type Status int

const (
	// StatusWaiting means no file was supplied; callers stop and prompt for one.
	StatusWaiting Status = iota
	// StatusReady means a raw table was loaded.
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting_for_input"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// WaitingMessage is shown while no file has been uploaded.
const WaitingMessage = "Please upload the CSV file to proceed."

// Warning flags a non-error condition the caller must render distinctly.
type Warning string

// WarningEmptyResult is attached when no record matches the selection.
const WarningEmptyResult Warning = "empty_result"

// MalformedInputError is returned when an uploaded file cannot be read as a table.
type MalformedInputError struct {
	Source string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("malformed input: %v", e.Err)
	}
	return fmt.Sprintf("malformed input %q: %v", e.Source, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// MissingColumnError names the columns a component needed but the table lacks.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}

// InvalidSelectionError is returned when a filter value is outside its enumeration.
type InvalidSelectionError struct {
	Field string
	Value string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}
