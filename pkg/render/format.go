package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HTML renders segments as escaped text with <mark> elements for highlights
func HTML(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		text := html.EscapeString(seg.Text)
		if !seg.Highlighted {
			b.WriteString(text)
			continue
		}
		fmt.Fprintf(&b, `<mark class="highlight-%s" data-highlight-id="%d" title="%s">%s</mark>`,
			html.EscapeString(seg.Color), seg.HighlightID, html.EscapeString(seg.Tooltip), text)
	}
	return b.String()
}

// palette mirrors the reading surface highlighter colors
var palette = map[string]lipgloss.Color{
	"yellow": lipgloss.Color("#fef08a"),
	"green":  lipgloss.Color("#bbf7d0"),
	"blue":   lipgloss.Color("#bfdbfe"),
	"pink":   lipgloss.Color("#fbcfe8"),
}

// ANSI renders segments for a terminal using the default lipgloss renderer
func ANSI(segments []Segment) string {
	return ANSIWith(lipgloss.DefaultRenderer(), segments)
}

// ANSIWith renders segments for a terminal using r
func ANSIWith(r *lipgloss.Renderer, segments []Segment) string {
	styles := make(map[string]lipgloss.Style, len(palette))
	for name, bg := range palette {
		styles[name] = r.NewStyle().Background(bg).Foreground(lipgloss.Color("#111827"))
	}
	fallback := r.NewStyle().Reverse(true)

	var b strings.Builder
	for _, seg := range segments {
		if !seg.Highlighted {
			b.WriteString(seg.Text)
			continue
		}
		style, ok := styles[seg.Color]
		if !ok {
			style = fallback
		}
		// lipgloss pads multi-line blocks, so style each line on its own
		lines := strings.Split(seg.Text, "\n")
		for i, line := range lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(style.Render(line))
			}
		}
	}
	return b.String()
}
