// Package export decodes Telegram chat export documents.
package export

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PopFlamingo/TelegramStats/model"
)

// ParseError reports a malformed export document. Offset is the byte
// position of the problem when the decoder knows it, zero otherwise.
type ParseError struct {
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("parse export at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("parse export: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes a chat export document into an Archive. Unknown fields are
// silently ignored so newer export schema revisions still parse; missing
// optional fields keep their zero values. Malformed JSON or a type mismatch
// on a known field fails with a *ParseError and no partial result.
func Parse(data []byte) (*model.Archive, error) {
	var archive model.Archive
	if err := json.Unmarshal(data, &archive); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, &ParseError{Offset: syntaxErr.Offset, Err: err}
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ParseError{Offset: typeErr.Offset, Err: err}
		}
		return nil, &ParseError{Err: err}
	}
	return &archive, nil
}
