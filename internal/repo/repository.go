// Package repo provides the record repository shared by all entity
// kinds: CRUD plus soft delete and restore over a pair of row stores
// (active collection and append-only deleted archive).
package repo

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pixelforge/gamevault/internal/codec"
	"github.com/pixelforge/gamevault/internal/store"
)

// Record is the capability set an entity kind must provide. T is the
// entity type itself, P its patch type.
type Record[T, P any] interface {
	GetID() int
	WithID(id int) T
	Apply(patch P) T
	Validate() error
}

// Repository owns the identity assignment and the active/deleted split
// for one entity kind. Every mutation runs as a critical section per
// repository: read, modify in memory, rewrite.
type Repository[T Record[T, P], P any] struct {
	mu       sync.Mutex
	kind     string
	active   store.Store
	deleted  store.Store
	codec    codec.Codec[T]
	notFound error
	logger   *slog.Logger
}

// New creates a repository for one entity kind. notFound is the
// sentinel returned when an identity is absent from the relevant
// collection.
func New[T Record[T, P], P any](
	kind string,
	active store.Store,
	deleted store.Store,
	c codec.Codec[T],
	notFound error,
	logger *slog.Logger,
) *Repository[T, P] {
	return &Repository[T, P]{
		kind:     kind,
		active:   active,
		deleted:  deleted,
		codec:    c,
		notFound: notFound,
		logger:   logger,
	}
}

// ListActive returns all active records in resource order. Rows that
// fail to decode are skipped with a logged warning, never a failure for
// the whole read.
func (r *Repository[T, P]) ListActive(ctx context.Context) ([]T, error) {
	rows, err := r.active.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return r.decodeAll(rows, "active"), nil
}

// ListDeleted returns all soft-deleted records, same lenient-skip
// policy as ListActive.
func (r *Repository[T, P]) ListDeleted(ctx context.Context) ([]T, error) {
	rows, err := r.deleted.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return r.decodeAll(rows, "deleted"), nil
}

// GetActive returns the active record with the given identity.
func (r *Repository[T, P]) GetActive(ctx context.Context, id int) (T, error) {
	var zero T

	records, err := r.ListActive(ctx)
	if err != nil {
		return zero, err
	}
	for _, rec := range records {
		if rec.GetID() == id {
			return rec, nil
		}
	}
	return zero, r.notFound
}

// Create validates the draft, assigns the next identity (one greater
// than the maximum active identity, 1 on an empty collection) and
// appends the record to the active resource.
func (r *Repository[T, P]) Create(ctx context.Context, draft T) (T, error) {
	var zero T

	if err := draft.Validate(); err != nil {
		return zero, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.ListActive(ctx)
	if err != nil {
		return zero, err
	}

	maxID := 0
	for _, rec := range records {
		if rec.GetID() > maxID {
			maxID = rec.GetID()
		}
	}

	created := draft.WithID(maxID + 1)
	if err := r.active.Append(ctx, r.codec.Encode(created)); err != nil {
		return zero, err
	}
	return created, nil
}

// Update merges the patch over the stored record, re-validates and
// rewrites the active collection. The identity cannot be changed: the
// patch type carries no identity field.
func (r *Repository[T, P]) Update(ctx context.Context, id int, patch P) (T, error) {
	var zero T

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.ListActive(ctx)
	if err != nil {
		return zero, err
	}

	found := false
	var updated T
	for i, rec := range records {
		if rec.GetID() != id {
			continue
		}
		updated = rec.Apply(patch)
		if err := updated.Validate(); err != nil {
			return zero, err
		}
		records[i] = updated
		found = true
		break
	}
	if !found {
		return zero, r.notFound
	}

	if err := r.active.Rewrite(ctx, r.encodeAll(records)); err != nil {
		return zero, err
	}
	return updated, nil
}

// Delete removes the record from the active collection and appends its
// full snapshot to the deleted archive. The returned record is the
// removed snapshot.
func (r *Repository[T, P]) Delete(ctx context.Context, id int) (T, error) {
	var zero T

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.ListActive(ctx)
	if err != nil {
		return zero, err
	}

	var removed T
	found := false
	remaining := make([]T, 0, len(records))
	for _, rec := range records {
		if rec.GetID() == id {
			removed = rec
			found = true
			continue
		}
		remaining = append(remaining, rec)
	}
	if !found {
		return zero, r.notFound
	}

	if err := r.active.Rewrite(ctx, r.encodeAll(remaining)); err != nil {
		return zero, err
	}
	if err := r.deleted.Append(ctx, r.codec.Encode(removed)); err != nil {
		return zero, err
	}
	return removed, nil
}

// DeleteAll moves every active record to the deleted archive and
// truncates the active collection. It returns the pre-deletion active
// set. Records can only be brought back individually via Restore.
func (r *Repository[T, P]) DeleteAll(ctx context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if err := r.deleted.Append(ctx, r.codec.Encode(rec)); err != nil {
			return nil, err
		}
	}
	if err := r.active.Rewrite(ctx, nil); err != nil {
		return nil, err
	}
	return records, nil
}

// Restore moves a soft-deleted record back to the active collection,
// identity and all attributes unchanged.
func (r *Repository[T, P]) Restore(ctx context.Context, id int) (T, error) {
	var zero T

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.ListDeleted(ctx)
	if err != nil {
		return zero, err
	}

	// A re-deleted record appears once per deletion event; restoring
	// removes every snapshot and brings back the most recent one.
	var restored T
	found := false
	remaining := make([]T, 0, len(records))
	for _, rec := range records {
		if rec.GetID() == id {
			restored = rec
			found = true
			continue
		}
		remaining = append(remaining, rec)
	}
	if !found {
		return zero, r.notFound
	}

	if err := r.deleted.Rewrite(ctx, r.encodeAll(remaining)); err != nil {
		return zero, err
	}
	if err := r.active.Append(ctx, r.codec.Encode(restored)); err != nil {
		return zero, err
	}
	return restored, nil
}

func (r *Repository[T, P]) decodeAll(rows []store.Row, collection string) []T {
	records := make([]T, 0, len(rows))
	for i, row := range rows {
		rec, err := r.codec.Decode(row)
		if err != nil {
			r.logger.Warn("skipping malformed record",
				slog.String("kind", r.kind),
				slog.String("collection", collection),
				slog.Int("row", i),
				slog.String("error", err.Error()),
			)
			continue
		}
		records = append(records, rec)
	}
	return records
}

func (r *Repository[T, P]) encodeAll(records []T) []store.Row {
	rows := make([]store.Row, len(records))
	for i, rec := range records {
		rows[i] = r.codec.Encode(rec)
	}
	return rows
}
