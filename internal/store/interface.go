// Package store defines the row-store contract backing one entity
// collection. A resource is an ordered sequence of rows; the flatfile
// implementation is canonical, with redis and memory as swappable
// backends.
package store

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the backing resource could not be read or
// written. Implementations wrap it so callers can match with errors.Is.
var ErrUnavailable = errors.New("storage unavailable")

// Row is one record as field name -> string-encoded value.
type Row map[string]string

// Store provides whole-resource operations over one named collection.
type Store interface {
	// ReadAll returns all rows in resource order. A resource that does
	// not exist yet yields an empty result, never an error.
	ReadAll(ctx context.Context) ([]Row, error)

	// Rewrite atomically replaces the entire resource content with the
	// given rows, in the given order.
	Rewrite(ctx context.Context, rows []Row) error

	// Append adds one row to the end of the resource, creating it if
	// needed.
	Append(ctx context.Context, row Row) error
}
