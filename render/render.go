// Package render formats analysis results for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/PopFlamingo/TelegramStats/stats"
)

// Marker is the glyph repeated to draw histogram bars.
const Marker = "•"

// Styles holds the lipgloss styles applied to report output.
type Styles struct {
	Word  lipgloss.Style
	Count lipgloss.Style
	Hour  lipgloss.Style
	Bar   lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Word:  lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		Count: lipgloss.NewStyle().Bold(true),
		Hour:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Bar:   lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
	}
}

// PlainStyles returns an unstyled set for --no-color output.
func PlainStyles() Styles {
	return Styles{
		Word:  lipgloss.NewStyle(),
		Count: lipgloss.NewStyle(),
		Hour:  lipgloss.NewStyle(),
		Bar:   lipgloss.NewStyle(),
	}
}

// Renderer writes reports with an immutable style configuration built once
// per run.
type Renderer struct {
	out    io.Writer
	styles Styles
}

// New creates a Renderer writing to out.
func New(out io.Writer, colored bool) *Renderer {
	styles := PlainStyles()
	if colored {
		styles = DefaultStyles()
	}
	return &Renderer{out: out, styles: styles}
}

// WordCounts prints one `"word" ⨉ count` line per entry, in list order.
func (r *Renderer) WordCounts(pairs []stats.WordCount) error {
	for _, pair := range pairs {
		word := r.styles.Word.Render(strconv.Quote(pair.Word))
		count := r.styles.Count.Render(strconv.Itoa(pair.Count))
		if _, err := fmt.Fprintf(r.out, "%s ⨉ %s\n", word, count); err != nil {
			return err
		}
	}
	return nil
}

// WordCountsJSON prints the report as a JSON array of {word, count} objects.
func (r *Renderer) WordCountsJSON(pairs []stats.WordCount) error {
	if pairs == nil {
		pairs = []stats.WordCount{}
	}
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(pairs)
}

// Histogram prints 24 lines, hours ascending, each a two-digit hour label
// followed by that hour's percentage as repeated marker glyphs.
func (r *Renderer) Histogram(activity *stats.HourlyActivity) error {
	for hour := 0; hour < 24; hour++ {
		label := r.styles.Hour.Render(fmt.Sprintf("%02d:00", hour))
		bar := r.styles.Bar.Render(strings.Repeat(Marker, activity.Percentages[hour]))
		if _, err := fmt.Fprintf(r.out, "%s - %s\n", label, bar); err != nil {
			return err
		}
	}
	return nil
}
