// Package codec converts typed entities to and from flat row
// representations with a fixed column order. Numbers are formatted
// canonically and booleans as the literal tokens "True"/"False".
package codec

import (
	"fmt"
	"strconv"

	"github.com/pixelforge/gamevault/internal/store"
)

// Codec encodes and decodes one entity kind.
type Codec[T any] interface {
	// Fields returns the ordered column names, identity first.
	Fields() []string
	// Encode produces the row representation of an entity.
	Encode(entity T) store.Row
	// Decode is the inverse of Encode. It returns a *MalformedRecordError
	// when a required field is missing or fails to parse.
	Decode(row store.Row) (T, error)
}

// MalformedRecordError reports a stored row that fails to decode.
type MalformedRecordError struct {
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record: field %s %s", e.Field, e.Reason)
}

// Boolean tokens as written to the resource.
const (
	tokenTrue  = "True"
	tokenFalse = "False"
)

func formatInt(v int) string {
	return strconv.Itoa(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return tokenTrue
	}
	return tokenFalse
}

func parseInt(row store.Row, field string) (int, error) {
	raw, ok := row[field]
	if !ok {
		return 0, &MalformedRecordError{Field: field, Reason: "is missing"}
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &MalformedRecordError{Field: field, Reason: fmt.Sprintf("is not an integer: %q", raw)}
	}
	return v, nil
}

func parseFloat(row store.Row, field string) (float64, error) {
	raw, ok := row[field]
	if !ok {
		return 0, &MalformedRecordError{Field: field, Reason: "is missing"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &MalformedRecordError{Field: field, Reason: fmt.Sprintf("is not a number: %q", raw)}
	}
	return v, nil
}

// parseBool accepts only the literal tokens "True" and "False".
// Anything else is a hard failure for the row.
func parseBool(row store.Row, field string) (bool, error) {
	raw, ok := row[field]
	if !ok {
		return false, &MalformedRecordError{Field: field, Reason: "is missing"}
	}
	switch raw {
	case tokenTrue:
		return true, nil
	case tokenFalse:
		return false, nil
	default:
		return false, &MalformedRecordError{Field: field, Reason: fmt.Sprintf("is not a boolean token: %q", raw)}
	}
}

// stringOr returns the field value, or def when the field is absent or
// empty. Used for lenient reads of optional text fields.
func stringOr(row store.Row, field, def string) string {
	if v, ok := row[field]; ok && v != "" {
		return v
	}
	return def
}
