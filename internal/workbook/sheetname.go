package workbook

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxSheetNameLength is the longest worksheet name a spreadsheet accepts.
const MaxSheetNameLength = 31

const invalidSheetChars = `:\/?*[]`

var (
	// ErrSheetNameEmpty is returned for blank names.
	ErrSheetNameEmpty = errors.New("sheet name is empty")
	// ErrSheetNameLength is returned for names over MaxSheetNameLength characters.
	ErrSheetNameLength = fmt.Errorf("sheet name exceeds %d characters", MaxSheetNameLength)
	// ErrSheetNameChars is returned for names containing a reserved character.
	ErrSheetNameChars = errors.New(`sheet name contains one of : \ / ? * [ ]`)
	// ErrSheetNameQuote is returned for names starting or ending with an apostrophe.
	ErrSheetNameQuote = errors.New("sheet name starts or ends with an apostrophe")
)

// ValidateSheetName reports whether name can be used as a worksheet name.
func ValidateSheetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrSheetNameEmpty
	}
	if utf8.RuneCountInString(name) > MaxSheetNameLength {
		return ErrSheetNameLength
	}
	if strings.ContainsAny(name, invalidSheetChars) {
		return ErrSheetNameChars
	}
	if strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'") {
		return ErrSheetNameQuote
	}
	return nil
}
