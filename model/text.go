package model

import (
	"encoding/json"
	"strings"
)

// Text is a message's optional text field. Exports emit it either as a bare
// string or as an array mixing plain strings with rich-text entity objects
// ({"type": ..., "text": ...}). Decoding flattens both shapes into Plain so
// the analyzers only ever see a single string.
type Text struct {
	Plain string
}

// UnmarshalJSON flattens the string-or-array union. Element shapes it does
// not recognize contribute nothing rather than failing, matching the tolerant
// treatment of unknown fields elsewhere in the schema.
func (t *Text) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		t.Plain = plain
		return nil
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		t.Plain = ""
		return nil
	}

	var sb strings.Builder
	for _, part := range parts {
		var s string
		if err := json.Unmarshal(part, &s); err == nil {
			sb.WriteString(s)
			continue
		}

		var entity struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(part, &entity); err == nil {
			sb.WriteString(entity.Text)
		}
	}
	t.Plain = sb.String()
	return nil
}

// MarshalJSON re-emits the flattened form.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Plain)
}
