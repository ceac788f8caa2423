package program

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/playbookpro/playbook/internal/store"
)

// Document is satisfied by the program document pointer types.
type Document[T any] interface {
	Clone() T
	Normalize()
}

// Editor is the two-slot state machine behind one open program: the latest
// known canonical remote copy, and an optional local edit buffer. Incoming
// snapshots only ever replace the remote slot; the working document is the
// local buffer when one exists, otherwise the remote copy. A remote change
// that lands while local edits are pending raises RemoteChanged instead of
// clobbering them — resolving it is an explicit Reload or a forced Save.
//
// All methods are synchronous; only Save blocks on the store. The caller is
// responsible for feeding snapshots in delivery order.
type Editor[T Document[T]] struct {
	st   store.Store
	path string

	remote    T
	remoteSeq int64
	primed    bool

	local T
	dirty bool

	remoteChanged bool
	savedJSON     []byte
}

// NewEditor builds an editor for the program document at path. The first
// snapshot must be applied via ApplyRemote (or use Open, which performs the
// initial fetch).
func NewEditor[T Document[T]](st store.Store, path string) *Editor[T] {
	return &Editor[T]{st: st, path: path}
}

// Open fetches the current document and primes the remote slot, defaulting
// to the discipline skeleton when nothing is stored yet.
func Open[T Document[T]](ctx context.Context, st store.Store, path string, skeleton func() T) (*Editor[T], error) {
	e := NewEditor[T](st, path)
	snap, err := st.Get(ctx, path)
	if err != nil && err != store.ErrNotFound {
		return nil, fmt.Errorf("failed to load program: %w", err)
	}
	if err := e.ApplyRemoteWith(snap, skeleton); err != nil {
		return nil, err
	}
	return e, nil
}

// ApplyRemoteWith feeds one store snapshot into the remote slot. Absent
// documents materialize as the skeleton. Stale or duplicate snapshots
// (seq not beyond the last applied) are ignored.
func (e *Editor[T]) ApplyRemoteWith(snap store.Snapshot, skeleton func() T) error {
	if e.primed && snap.Seq <= e.remoteSeq {
		return nil
	}

	var doc T
	if snap.Exists() {
		if err := json.Unmarshal(snap.Data, &doc); err != nil {
			return fmt.Errorf("failed to decode program document: %w", err)
		}
		doc.Normalize()
	} else {
		doc = skeleton()
	}

	// The echo of our own save is not a conflict.
	echo := snap.Exists() && e.savedJSON != nil && bytes.Equal(normalizeJSON(snap.Data), e.savedJSON)

	if e.primed && e.dirty && !echo {
		e.remoteChanged = true
	}
	e.remote = doc
	e.remoteSeq = snap.Seq
	e.primed = true
	return nil
}

// Working returns the document the view should render: the local edit buffer
// if edits are pending, otherwise the remote copy.
func (e *Editor[T]) Working() T {
	if e.dirty {
		return e.local
	}
	return e.remote.Clone()
}

// SetLocal records the result of a local edit operation. Pure and
// synchronous; the store is not touched.
func (e *Editor[T]) SetLocal(doc T) {
	e.local = doc
	e.dirty = true
}

func (e *Editor[T]) Dirty() bool { return e.dirty }

// RemoteChanged reports that the canonical copy moved while local edits were
// pending. The caller must surface a reload-or-overwrite decision; neither
// side is discarded silently.
func (e *Editor[T]) RemoteChanged() bool { return e.remoteChanged }

// RemoteSeq is the store seq of the last applied remote snapshot.
func (e *Editor[T]) RemoteSeq() int64 { return e.remoteSeq }

// Reload drops the local edit buffer in favor of the canonical remote copy.
func (e *Editor[T]) Reload() T {
	var zero T
	e.local = zero
	e.dirty = false
	e.remoteChanged = false
	return e.remote.Clone()
}

// Save replaces the whole remote document with the working copy in a single
// write. On failure the local buffer is preserved unmodified so the user can
// retry; on success the buffer transitions into the remote slot.
func (e *Editor[T]) Save(ctx context.Context) error {
	doc := e.Working()
	data, err := json.Marshal(doc)
	if err != nil {
		return &store.WriteError{Path: e.path, Err: err}
	}
	if err := e.st.Set(ctx, e.path, json.RawMessage(data)); err != nil {
		return err
	}
	e.remote = doc
	e.savedJSON = normalizeJSON(data)
	var zero T
	e.local = zero
	e.dirty = false
	e.remoteChanged = false
	return nil
}

// normalizeJSON makes document bytes comparable regardless of formatting.
func normalizeJSON(data []byte) []byte {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return data
	}
	return buf.Bytes()
}
