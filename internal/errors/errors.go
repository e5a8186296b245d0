// Package errors provides categorised error types with actionable suggestions
// for bingocard. Errors carry enough context for the CLI to tell the user what
// went wrong and how to fix it.
package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrTiles indicates a problem with the tile list.
	ErrTiles = errors.New("tiles error")
	// ErrCard indicates that cards could not be generated.
	ErrCard = errors.New("card error")
	// ErrWorkbook indicates a failure writing the spreadsheet.
	ErrWorkbook = errors.New("workbook error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// BingoError is a categorised error with optional context for the user.
type BingoError struct {
	// Kind is one of the sentinels above; errors.Is matches against it.
	Kind       error
	Message    string
	Suggestion string
	Cause      error
	// Details holds context such as a file path or player name.
	Details map[string]string
}

func (e *BingoError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

// Unwrap exposes the cause, or the kind when there is none.
func (e *BingoError) Unwrap() error {
	if e.Cause == nil {
		return e.Kind
	}
	return e.Cause
}

func (e *BingoError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format renders the error, its details (sorted by key) and the suggestion
// as the CLI prints them.
func (e *BingoError) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: %s\n", e.Error())

	if len(e.Details) > 0 {
		sb.WriteString("\nDetails:\n")
		for _, k := range slices.Sorted(maps.Keys(e.Details)) {
			fmt.Fprintf(&sb, "  %s: %s\n", k, e.Details[k])
		}
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&sb, "\nSuggestion: %s\n", e.Suggestion)
	}
	return sb.String()
}

// WithDetails records key=value in Details and returns e.
func (e *BingoError) WithDetails(key, value string) *BingoError {
	if e.Details == nil {
		e.Details = map[string]string{}
	}
	e.Details[key] = value
	return e
}

func (e *BingoError) WithCause(cause error) *BingoError {
	e.Cause = cause
	return e
}

func New(kind error, message string) *BingoError {
	return &BingoError{Kind: kind, Message: message}
}

// Wrap attaches kind and message to err.
func Wrap(err error, kind error, message string) *BingoError {
	return &BingoError{Kind: kind, Message: message, Cause: err}
}

// FormatError renders err for the terminal. BingoErrors get their full
// Format output; anything else is printed as a plain "Error:" line.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	var be *BingoError
	if errors.As(err, &be) {
		return be.Format()
	}
	return "Error: " + err.Error() + "\n"
}
