package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/killallgit/readwise-api/internal/models"
	"github.com/killallgit/readwise-api/pkg/render"
)

// renderCmd renders a text with highlights without a server or database
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a text with highlights",
	Long: `Render a text with a list of highlights read from a YAML file.

Each highlight has a code point range, the text it covers, a color
(yellow, green, blue or pink) and an optional note:

  - start: 17
    end: 20
    text: cat
    color: green
    note: the second cat

Example:
  readwise-api render --file chapter.txt --highlights notes.yaml
  readwise-api render --text "The cat sat." --highlights notes.yaml --format html`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().String("text", "", "text to render")
	renderCmd.Flags().String("file", "", "read the text from a file")
	renderCmd.Flags().String("highlights", "", "YAML file with highlights")
	renderCmd.Flags().String("format", "ansi", "output format (ansi, html, json)")
	renderCmd.Flags().String("mode", string(render.ModeOffsets), "highlight placement (offsets, content)")
}

func runRender(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	file, _ := cmd.Flags().GetString("file")
	highlightsPath, _ := cmd.Flags().GetString("highlights")
	format, _ := cmd.Flags().GetString("format")
	modeName, _ := cmd.Flags().GetString("mode")

	mode, ok := render.ParseMode(modeName)
	if !ok {
		return fmt.Errorf("invalid mode %q: must be offsets or content", modeName)
	}

	if file != "" {
		if text != "" {
			return fmt.Errorf("--text and --file are mutually exclusive")
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read text: %w", err)
		}
		text = string(data)
	}
	if text == "" {
		return fmt.Errorf("no text to render: use --text or --file")
	}

	var spans []render.Span
	if highlightsPath != "" {
		var err error
		if spans, err = loadSpans(highlightsPath, text); err != nil {
			return err
		}
	}

	segments := render.Render(text, spans, mode)
	return writeSegments(cmd.OutOrStdout(), format, segments)
}

// loadSpans reads highlights from a YAML list, numbering them in file order.
// Each span must lie inside text and, when it carries text, match it there.
func loadSpans(path, text string) ([]render.Span, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read highlights: %w", err)
	}

	var spans []render.Span
	if err := yaml.Unmarshal(data, &spans); err != nil {
		return nil, fmt.Errorf("invalid highlights file %s: %w", path, err)
	}

	runes := []rune(text)
	for i := range spans {
		if spans[i].ID == 0 {
			spans[i].ID = uint(i + 1)
		}
		color, err := models.ParseColor(spans[i].Color)
		if err != nil {
			return nil, fmt.Errorf("highlight %d: %w", i+1, err)
		}
		spans[i].Color = string(color)
		if spans[i].Start < 0 || spans[i].End <= spans[i].Start || spans[i].End > len(runes) {
			return nil, fmt.Errorf("highlight %d: invalid range [%d, %d) for text of length %d",
				i+1, spans[i].Start, spans[i].End, len(runes))
		}
		actual := string(runes[spans[i].Start:spans[i].End])
		if spans[i].Text == "" {
			spans[i].Text = actual
		} else if spans[i].Text != actual {
			return nil, fmt.Errorf("highlight %d: text %q does not match %q at [%d, %d)",
				i+1, spans[i].Text, actual, spans[i].Start, spans[i].End)
		}
	}
	return spans, nil
}

func writeSegments(out io.Writer, format string, segments []render.Segment) error {
	switch format {
	case "ansi":
		fmt.Fprintln(out, render.ANSI(segments))
	case "html":
		fmt.Fprintln(out, render.HTML(segments))
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(segments)
	default:
		return fmt.Errorf("invalid format %q: must be ansi, html or json", format)
	}
	return nil
}
