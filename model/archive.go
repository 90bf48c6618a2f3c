// Package model defines the typed representation of a Telegram chat export.
package model

import (
	"errors"
	"fmt"
	"time"
)

// Export timestamps carry no zone designator and are taken as UTC.
const dateLayout = "2006-01-02T15:04:05"

var ErrUnparseableDate = errors.New("message date is not a parseable instant")

// Archive is the parsed representation of one exported conversation. It is
// built once from the decoded input and never mutated afterwards; filtering
// and analysis produce separate structures.
type Archive struct {
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	ID       int64     `json:"id"`
	Messages []Message `json:"messages"`
}

// Message is one chat entry within an Archive.
type Message struct {
	ID     int64  `json:"id"`
	Type   string `json:"type"`
	Date   string `json:"date"`
	From   string `json:"from"`
	FromID string `json:"from_id"`
	Text   Text   `json:"text"`
}

// Time parses the message date as a UTC instant.
func (m Message) Time() (time.Time, error) {
	ts, err := time.ParseInLocation(dateLayout, m.Date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, m.Date)
	}
	return ts, nil
}

// TextContent returns the flattened plain-text rendering of the message's
// text field. A message without text yields the empty string.
func (m Message) TextContent() string {
	return m.Text.Plain
}
