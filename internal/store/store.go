// Package store is the persistent document store behind programs, rosters
// and logs. Documents are addressed by hierarchical slash paths
// (players/{id}, players/{id}/programs/{discipline}, players/{id}/logs/{logId})
// and are written only as whole-document replacements; multi-record commits
// go through an atomic batch. Subscribers receive full snapshots, first the
// current state immediately and then one per observed change.
package store

import (
	"context"
	"encoding/json"
	"strings"
)

// Snapshot is a complete point-in-time value of one document. Data is nil
// when the document does not exist. Seq increases monotonically with every
// store write, so a later state always carries a larger Seq.
type Snapshot struct {
	Path string
	Data json.RawMessage
	Seq  int64
}

// Exists reports whether the document was present when the snapshot was taken.
func (s Snapshot) Exists() bool { return s.Data != nil }

// ID returns the last path segment, which for collection members is the
// store-assigned document id.
func (s Snapshot) ID() string {
	if i := strings.LastIndexByte(s.Path, '/'); i >= 0 {
		return s.Path[i+1:]
	}
	return s.Path
}

// CollectionSnapshot is a complete point-in-time value of one collection,
// with member documents in insertion order.
type CollectionSnapshot struct {
	Path string
	Docs []Snapshot
	Seq  int64
}

// WriteOp discriminates the entries of a batch.
type WriteOp int

const (
	OpSet WriteOp = iota // whole-document replace, creates if absent
	OpAdd                // append to a collection under a fresh id
	OpDelete
)

// Write is one entry of an atomic batch. Path is the document path for
// OpSet/OpDelete and the collection path for OpAdd.
type Write struct {
	Op   WriteOp
	Path string
	Doc  any
}

// Store is the document store consumed by the program editor, the log
// recorder and the analytics commands. Implementations must apply a batch
// all-or-nothing and must deliver subscription snapshots serialized, in seq
// order, per subscription.
type Store interface {
	Get(ctx context.Context, path string) (Snapshot, error)
	GetAll(ctx context.Context, collection string) ([]Snapshot, error)
	Set(ctx context.Context, path string, doc any) error
	Add(ctx context.Context, collection string, doc any) (string, error)
	Delete(ctx context.Context, path string) error
	// DeleteTree removes the document at prefix and every document below it.
	DeleteTree(ctx context.Context, prefix string) error
	BatchWrite(ctx context.Context, writes []Write) error
	Subscribe(ctx context.Context, path string) (*DocSub, error)
	SubscribeCollection(ctx context.Context, collection string) (*CollectionSub, error)
	Close() error
}

// parentPath returns the collection path of a document path.
func parentPath(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return ""
}

func marshalDoc(doc any) ([]byte, error) {
	if raw, ok := doc.(json.RawMessage); ok {
		return raw, nil
	}
	return json.Marshal(doc)
}
