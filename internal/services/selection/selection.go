package selection

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrEmptySelection is returned when the selected range is empty or only whitespace
var ErrEmptySelection = errors.New("selection is empty")

// Selection is a captured, trimmed range of a document's text.
// Offsets are code point offsets, End exclusive.
type Selection struct {
	Text        string `json:"text"`
	StartOffset int    `json:"start_offset"`
	EndOffset   int    `json:"end_offset"`
}

// RangeError reports offsets that do not fit the document
type RangeError struct {
	Start, End, Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("selection [%d, %d) is outside the document (length %d)", e.Start, e.End, e.Length)
}

// Capture reads the range [start, end) of text. Surrounding whitespace is
// trimmed and the offsets narrowed to match, so the captured text is always
// exactly runes(text)[StartOffset:EndOffset].
func Capture(text string, start, end int) (*Selection, error) {
	return CaptureRunes([]rune(text), start, end)
}

// CaptureRunes is Capture for callers that already hold the decoded text
func CaptureRunes(runes []rune, start, end int) (*Selection, error) {
	if start < 0 || end > len(runes) || start > end {
		return nil, &RangeError{Start: start, End: end, Length: len(runes)}
	}

	for start < end && unicode.IsSpace(runes[start]) {
		start++
	}
	for end > start && unicode.IsSpace(runes[end-1]) {
		end--
	}
	if start == end {
		return nil, ErrEmptySelection
	}

	return &Selection{
		Text:        string(runes[start:end]),
		StartOffset: start,
		EndOffset:   end,
	}, nil
}
