// Package flatfile implements the row store over a CSV file with a
// header row. Rewrites go through a temporary file and an atomic rename
// so readers never observe a truncated resource.
package flatfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pixelforge/gamevault/internal/store"
)

// Table is a CSV-backed row store for one resource.
type Table struct {
	path   string
	fields []string
}

// New creates a table at path with the given ordered field schema.
func New(path string, fields []string) *Table {
	return &Table{
		path:   path,
		fields: fields,
	}
}

// Ensure Table implements the interface
var _ store.Store = (*Table)(nil)

func (t *Table) ReadAll(ctx context.Context) ([]store.Row, error) {
	f, err := os.Open(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, unavailable("open", t.path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, unavailable("read", t.path, err)
	}

	var rows []store.Row
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, unavailable("read", t.path, err)
		}

		row := make(store.Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (t *Table) Rewrite(ctx context.Context, rows []store.Row) error {
	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return unavailable("mkdir", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(t.path)+".*")
	if err != nil {
		return unavailable("create", t.path, err)
	}
	tmpPath := tmp.Name()

	if err := t.write(tmp, rows); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return unavailable("write", t.path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return unavailable("write", t.path, err)
	}

	if err := os.Rename(tmpPath, t.path); err != nil {
		_ = os.Remove(tmpPath)
		return unavailable("replace", t.path, err)
	}
	return nil
}

func (t *Table) Append(ctx context.Context, row store.Row) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return unavailable("mkdir", filepath.Dir(t.path), err)
	}

	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return unavailable("open", t.path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)

	// Write the header first when the resource is new or empty.
	info, err := f.Stat()
	if err != nil {
		return unavailable("stat", t.path, err)
	}
	if info.Size() == 0 {
		if err := w.Write(t.fields); err != nil {
			return unavailable("write", t.path, err)
		}
	}

	if err := w.Write(t.record(row)); err != nil {
		return unavailable("write", t.path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return unavailable("write", t.path, err)
	}
	return nil
}

// write emits the header plus all rows to w in schema order.
func (t *Table) write(f *os.File, rows []store.Row) error {
	w := csv.NewWriter(f)
	if err := w.Write(t.fields); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(t.record(row)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// record flattens a row into schema column order.
func (t *Table) record(row store.Row) []string {
	record := make([]string, len(t.fields))
	for i, name := range t.fields {
		record[i] = row[name]
	}
	return record
}

func unavailable(op, path string, err error) error {
	return fmt.Errorf("%s %s: %v: %w", op, path, err, store.ErrUnavailable)
}
