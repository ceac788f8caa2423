package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type memDoc struct {
	data     []byte
	firstSeq int64
	seq      int64
}

// Memory is an in-process Store used by tests and by components that are
// constructed against the interface. It honours the same contract as the SQL
// store: atomic batches, seq-ordered snapshots, insertion-ordered collections.
type Memory struct {
	mu   sync.Mutex
	seq  int64
	docs map[string]memDoc
	hub  *hub

	// failIn > 0 makes the failIn-th upcoming write op fail, to test that a
	// broken batch leaves no partial records behind.
	failIn int
}

func NewMemory() *Memory {
	return &Memory{
		docs: make(map[string]memDoc),
		hub:  newHub(),
	}
}

// FailWrites makes the n-th write operation from now on fail with a
// WriteError. A batch counts each of its entries as one operation, so
// FailWrites(2) breaks a three-entry batch mid-flight.
func (m *Memory) FailWrites(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failIn = n
}

// nextOpErr implements the failure injection. Called with m.mu held.
func (m *Memory) nextOpErr(path string) error {
	if m.failIn == 0 {
		return nil
	}
	m.failIn--
	if m.failIn == 0 {
		return &WriteError{Path: path, Err: errors.New("injected write failure")}
	}
	return nil
}

func (m *Memory) Get(ctx context.Context, path string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[path]
	if !ok {
		return Snapshot{Path: path, Seq: m.seq}, ErrNotFound
	}
	return Snapshot{Path: path, Data: append([]byte(nil), doc.data...), Seq: doc.seq}, nil
}

func (m *Memory) GetAll(ctx context.Context, collection string) ([]Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.collectionLocked(collection), nil
}

func (m *Memory) collectionLocked(collection string) []Snapshot {
	var out []Snapshot
	prefix := collection + "/"
	for path, doc := range m.docs {
		if strings.HasPrefix(path, prefix) && !strings.Contains(path[len(prefix):], "/") {
			out = append(out, Snapshot{Path: path, Data: append([]byte(nil), doc.data...), Seq: doc.firstSeq})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

func (m *Memory) Set(ctx context.Context, path string, doc any) error {
	return m.BatchWrite(ctx, []Write{{Op: OpSet, Path: path, Doc: doc}})
}

func (m *Memory) Add(ctx context.Context, collection string, doc any) (string, error) {
	id := uuid.New().String()
	path := collection + "/" + id
	if err := m.BatchWrite(ctx, []Write{{Op: OpSet, Path: path, Doc: doc}}); err != nil {
		return "", err
	}
	return id, nil
}

func (m *Memory) Delete(ctx context.Context, path string) error {
	return m.BatchWrite(ctx, []Write{{Op: OpDelete, Path: path}})
}

func (m *Memory) DeleteTree(ctx context.Context, prefix string) error {
	m.mu.Lock()
	writes := []Write{{Op: OpDelete, Path: prefix}}
	for path := range m.docs {
		if strings.HasPrefix(path, prefix+"/") {
			writes = append(writes, Write{Op: OpDelete, Path: path})
		}
	}
	m.mu.Unlock()
	return m.BatchWrite(ctx, writes)
}

func (m *Memory) BatchWrite(ctx context.Context, writes []Write) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Stage everything first so a failing entry leaves the store untouched.
	type staged struct {
		path string
		data []byte // nil means delete
	}
	var pending []staged
	for _, w := range writes {
		path := w.Path
		if w.Op == OpAdd {
			path = w.Path + "/" + uuid.New().String()
		}
		if err := m.nextOpErr(path); err != nil {
			return err
		}
		switch w.Op {
		case OpSet, OpAdd:
			data, err := marshalDoc(w.Doc)
			if err != nil {
				return &WriteError{Path: path, Err: err}
			}
			pending = append(pending, staged{path: path, data: data})
		case OpDelete:
			pending = append(pending, staged{path: path})
		}
	}

	m.seq++
	seq := m.seq

	touched := make(map[string]struct{})
	for _, p := range pending {
		if p.data == nil {
			delete(m.docs, p.path)
		} else {
			doc, existed := m.docs[p.path]
			if !existed {
				doc.firstSeq = seq
			}
			doc.data = p.data
			doc.seq = seq
			m.docs[p.path] = doc
		}
		touched[p.path] = struct{}{}
	}

	// Fan out while still holding the store lock so snapshots reach the hub
	// in seq order.
	parents := make(map[string]struct{})
	for path := range touched {
		snap := Snapshot{Path: path, Seq: seq}
		if doc, ok := m.docs[path]; ok {
			snap.Data = append([]byte(nil), doc.data...)
		}
		m.hub.publishDoc(snap)
		parents[parentPath(path)] = struct{}{}
	}
	for parent := range parents {
		m.hub.publishCollection(CollectionSnapshot{
			Path: parent,
			Docs: m.collectionLocked(parent),
			Seq:  seq,
		})
	}
	return nil
}

func (m *Memory) Subscribe(ctx context.Context, path string) (*DocSub, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	first := Snapshot{Path: path, Seq: m.seq}
	if doc, ok := m.docs[path]; ok {
		first.Data = append([]byte(nil), doc.data...)
		first.Seq = doc.seq
	}
	return m.hub.addDocSub(path, first), nil
}

func (m *Memory) SubscribeCollection(ctx context.Context, collection string) (*CollectionSub, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	first := CollectionSnapshot{Path: collection, Docs: m.collectionLocked(collection), Seq: m.seq}
	return m.hub.addColSub(collection, first), nil
}

func (m *Memory) Close() error { return nil }
