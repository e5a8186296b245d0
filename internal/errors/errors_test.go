package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestBingoError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *BingoError
		expected string
	}{
		{
			name:     "simple message",
			err:      New(ErrTiles, "tile list is empty"),
			expected: "tile list is empty",
		},
		{
			name: "with cause",
			err: &BingoError{
				Kind:    ErrConfig,
				Message: "config error",
				Cause:   errors.New("parse error"),
			},
			expected: "config error: parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBingoError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrWorkbook, "wrapped error")

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause, should return Kind
	errNoWrap := New(ErrCard, "no cause")
	unwrapped = errors.Unwrap(errNoWrap)
	if !errors.Is(unwrapped, ErrCard) {
		t.Errorf("Unwrap() should return Kind when no cause")
	}
}

func TestBingoError_Is(t *testing.T) {
	err := New(ErrTiles, "bad tiles")

	if !errors.Is(err, ErrTiles) {
		t.Error("errors.Is should return true for matching Kind")
	}

	if errors.Is(err, ErrConfig) {
		t.Error("errors.Is should return false for non-matching Kind")
	}

	// Wrapped errors should still match
	wrapped := Wrap(err, ErrCard, "wrapped")
	if !errors.Is(wrapped, ErrCard) {
		t.Error("errors.Is should return true for wrapped error Kind")
	}
	if !errors.Is(wrapped, ErrTiles) {
		t.Error("errors.Is should reach the cause's Kind")
	}
}

func TestBingoError_Format(t *testing.T) {
	err := &BingoError{
		Kind:       ErrTiles,
		Message:    "not enough tiles",
		Suggestion: "Add more tiles",
		Details: map[string]string{
			"need": "24",
			"have": "10",
		},
	}

	formatted := err.Format()

	if !strings.Contains(formatted, "Error: not enough tiles") {
		t.Error("Format() should contain error message")
	}
	if !strings.Contains(formatted, "Suggestion: Add more tiles") {
		t.Error("Format() should contain suggestion")
	}
	if !strings.Contains(formatted, "have: 10") || !strings.Contains(formatted, "need: 24") {
		t.Error("Format() should contain details")
	}
	if strings.Index(formatted, "have: 10") > strings.Index(formatted, "need: 24") {
		t.Error("Format() should list details in key order")
	}
}

func TestBingoError_WithDetails(t *testing.T) {
	err := New(ErrConfig, "config error")
	err.WithDetails("file", "config.yaml").WithDetails("line", "42")

	if err.Details["file"] != "config.yaml" {
		t.Error("WithDetails should set key")
	}
	if err.Details["line"] != "42" {
		t.Error("WithDetails should allow chaining")
	}
}

func TestBingoError_WithCause(t *testing.T) {
	cause := errors.New("root cause")
	err := New(ErrWorkbook, "workbook error").WithCause(cause)

	if !errors.Is(err.Cause, cause) {
		t.Error("WithCause should set cause")
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(cause, ErrTiles, "read tiles")

	if !errors.Is(err, ErrTiles) {
		t.Error("Wrap should set Kind")
	}
	if err.Message != "read tiles" {
		t.Error("Wrap should set Message")
	}
	if err.Cause != cause {
		t.Error("Wrap should set Cause")
	}
}

func TestFormatError(t *testing.T) {
	if got := FormatError(nil); got != "" {
		t.Errorf("FormatError(nil) = %q, want empty", got)
	}

	plain := FormatError(errors.New("boom"))
	if plain != "Error: boom\n" {
		t.Errorf("FormatError(plain) = %q", plain)
	}

	wrapped := Wrap(NotEnoughTiles(3, 24), ErrCard, "generate")
	out := FormatError(wrapped)
	if !strings.Contains(out, "Error: generate") {
		t.Errorf("FormatError should use the outermost BingoError, got %q", out)
	}
}
