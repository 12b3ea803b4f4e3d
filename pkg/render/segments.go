// Package render turns a text and a set of highlight spans into display
// segments. It knows nothing about HTTP, storage or markup languages; the
// formatters in this package are thin views over []Segment.
package render

import (
	"slices"
	"sort"
)

// NoNote is the tooltip for a highlight without a note
const NoNote = "No note"

// Span is a highlight positioned in a text by code point offsets [Start, End).
type Span struct {
	ID    uint   `json:"id" yaml:"id"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Text  string `json:"text" yaml:"text"`
	Color string `json:"color" yaml:"color"`
	Note  string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Tooltip returns the note, or NoNote when the span has none
func (s Span) Tooltip() string {
	if s.Note == "" {
		return NoNote
	}
	return s.Note
}

// Layer is one highlight covering a segment
type Layer struct {
	HighlightID uint   `json:"highlight_id"`
	Color       string `json:"color"`
	Tooltip     string `json:"tooltip"`
}

// Segment is a contiguous run of display text, plain or highlighted.
// For highlighted runs the top layer (the last one in Layers) supplies
// HighlightID, Color and Tooltip.
type Segment struct {
	Text        string  `json:"text"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
	Highlighted bool    `json:"highlighted"`
	HighlightID uint    `json:"highlight_id,omitempty"`
	Color       string  `json:"color,omitempty"`
	Tooltip     string  `json:"tooltip,omitempty"`
	Layers      []Layer `json:"layers,omitempty"`
}

// Segments slices text into ordered, non-overlapping segments covering all of
// it. Spans are layered in slice order, so later spans sit on top of earlier
// ones where they overlap. Spans that are empty or fall outside the text are
// ignored.
func Segments(text string, spans []Span) []Segment {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil
	}

	type ranked struct {
		order int
		span  Span
	}

	valid := make([]ranked, 0, len(spans))
	bounds := []int{0, n}
	for i, s := range spans {
		if s.Start < 0 || s.End > n || s.Start >= s.End {
			continue
		}
		valid = append(valid, ranked{order: i, span: s})
		bounds = append(bounds, s.Start, s.End)
	}

	sort.Ints(bounds)
	bounds = slices.Compact(bounds)

	opening := make(map[int][]ranked)
	for _, r := range valid {
		opening[r.span.Start] = append(opening[r.span.Start], r)
	}

	segments := make([]Segment, 0, len(bounds)-1)
	var active []ranked
	for k := 0; k < len(bounds)-1; k++ {
		from, to := bounds[k], bounds[k+1]

		active = slices.DeleteFunc(active, func(r ranked) bool { return r.span.End <= from })
		if opened := opening[from]; len(opened) > 0 {
			active = append(active, opened...)
			sort.SliceStable(active, func(i, j int) bool { return active[i].order < active[j].order })
		}

		seg := Segment{Text: string(runes[from:to]), Start: from, End: to}
		if len(active) > 0 {
			seg.Highlighted = true
			seg.Layers = make([]Layer, len(active))
			for i, r := range active {
				seg.Layers[i] = Layer{HighlightID: r.span.ID, Color: r.span.Color, Tooltip: r.span.Tooltip()}
			}
			top := seg.Layers[len(seg.Layers)-1]
			seg.HighlightID = top.HighlightID
			seg.Color = top.Color
			seg.Tooltip = top.Tooltip
		}
		segments = append(segments, seg)
	}

	return segments
}

// Plain concatenates segment text back into the source text
func Plain(segments []Segment) string {
	size := 0
	for _, s := range segments {
		size += len(s.Text)
	}
	buf := make([]byte, 0, size)
	for _, s := range segments {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}
