package render

import (
	"sort"
	"unicode"
)

// Mode selects how highlights are located in the text
type Mode string

const (
	// ModeOffsets renders each highlight exactly where it was captured.
	ModeOffsets Mode = "offsets"
	// ModeContent re-finds highlights by their text, case-insensitively.
	// Every occurrence of a highlighted string is marked, and two highlights
	// with the same text cannot be told apart. Only useful when the text may
	// have changed since the highlights were captured.
	ModeContent Mode = "content"
)

// ParseMode resolves a mode name, defaulting to ModeOffsets
func ParseMode(name string) (Mode, bool) {
	switch Mode(name) {
	case "", ModeOffsets:
		return ModeOffsets, true
	case ModeContent:
		return ModeContent, true
	default:
		return "", false
	}
}

// Render locates spans according to mode and segments the text
func Render(text string, spans []Span, mode Mode) []Segment {
	if mode == ModeContent {
		spans = ContentSpans(text, spans)
	}
	return Segments(text, spans)
}

// ContentSpans expands each span to every case-insensitive occurrence of its
// text. Spans are processed by descending start offset and the result keeps
// that order, so highlights that start earlier end up on top.
func ContentSpans(text string, spans []Span) []Span {
	runes := []rune(text)

	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start > sorted[j].Start })

	var out []Span
	for _, s := range sorted {
		needle := []rune(s.Text)
		m := len(needle)
		if m == 0 {
			continue
		}
		for i := 0; i+m <= len(runes); {
			if foldEqual(runes[i:i+m], needle) {
				match := s
				match.Start = i
				match.End = i + m
				match.Text = string(runes[i : i+m])
				out = append(out, match)
				i += m
				continue
			}
			i++
		}
	}
	return out
}

func foldEqual(a, b []rune) bool {
	for i := range a {
		if !foldRune(a[i], b[i]) {
			return false
		}
	}
	return true
}

func foldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}
