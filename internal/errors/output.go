package errors

import "fmt"

// InvalidPlayerName creates an error for a player name that cannot be used.
func InvalidPlayerName(name, reason string) *BingoError {
	return &BingoError{
		Kind:    ErrCard,
		Message: fmt.Sprintf("invalid player name %q: %s", name, reason),
		Details: map[string]string{
			"player": name,
		},
		Suggestion: `Player names become worksheet names. They must be 1-31 characters
and may not contain any of : \ / ? * [ ]`,
	}
}

// DuplicatePlayer creates an error when the same player is listed twice.
func DuplicatePlayer(name string) *BingoError {
	return &BingoError{
		Kind:    ErrCard,
		Message: fmt.Sprintf("player listed more than once: %s", name),
		Details: map[string]string{
			"player": name,
		},
		Suggestion: "Worksheet names are case-insensitive; give each player a distinct name.",
	}
}

// InvalidSheetName creates an error when a worksheet cannot be created.
func InvalidSheetName(name string, cause error) *BingoError {
	return &BingoError{
		Kind:    ErrWorkbook,
		Message: fmt.Sprintf("cannot create worksheet %q", name),
		Cause:   cause,
		Details: map[string]string{
			"sheet": name,
		},
	}
}

// OutputLocked creates an error when another process is writing the output.
func OutputLocked(path string) *BingoError {
	return &BingoError{
		Kind:    ErrWorkbook,
		Message: fmt.Sprintf("output file is locked by another run: %s", path),
		Details: map[string]string{
			"path": path,
			"lock": path + ".lock",
		},
		Suggestion: `Wait for the other bingocard run to finish. If none is running,
remove the stale lock file and try again.`,
	}
}

// WorkbookSaveFailed creates an error when the spreadsheet cannot be written.
func WorkbookSaveFailed(path string, cause error) *BingoError {
	return &BingoError{
		Kind:    ErrWorkbook,
		Message: fmt.Sprintf("failed to save workbook: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Close the file if it is open in a spreadsheet program and check the directory is writable.",
	}
}
