package types

import (
	"strings"
	"unicode/utf8"

	"github.com/killallgit/readwise-api/internal/models"
	"github.com/killallgit/readwise-api/internal/services/documents"
)

// previewRunes is the length of the text preview in document listings
const previewRunes = 120

// ToDocumentSummary drops the full text from a document, keeping a preview
func ToDocumentSummary(doc *models.Document) DocumentSummary {
	return DocumentSummary{
		ID:             doc.ID,
		UUID:           doc.UUID,
		Title:          doc.Title,
		Source:         doc.Source,
		CharCount:      doc.CharCount,
		Preview:        Preview(doc.Text, previewRunes),
		LastActivityAt: doc.LastActivityAt,
		CreatedAt:      doc.CreatedAt,
	}
}

// ToDocumentSummaries transforms a slice of documents
func ToDocumentSummaries(docs []models.Document) []DocumentSummary {
	summaries := make([]DocumentSummary, 0, len(docs))
	for i := range docs {
		summaries = append(summaries, ToDocumentSummary(&docs[i]))
	}
	return summaries
}

// ToSampleSummaries describes the built-in samples in listing order
func ToSampleSummaries(samples []documents.Sample) []SampleSummary {
	summaries := make([]SampleSummary, 0, len(samples))
	for i, s := range samples {
		summaries = append(summaries, SampleSummary{
			Index:     i,
			Title:     s.Title,
			CharCount: utf8.RuneCountInString(s.Text),
			Preview:   Preview(s.Text, previewRunes),
		})
	}
	return summaries
}

// CountHighlights counts highlights and those carrying a note
func CountHighlights(highlights []models.Highlight) HighlightCounts {
	counts := HighlightCounts{Total: len(highlights)}
	for _, h := range highlights {
		if h.Note != "" {
			counts.Noted++
		}
	}
	return counts
}

// Preview collapses whitespace and truncates text to at most n runes
func Preview(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return strings.TrimSpace(string(runes[:n])) + "…"
}
