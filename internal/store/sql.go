package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// SQL is the libsql/Turso-backed Store. Documents live in a single table
// keyed by path; a monotonic counter in store_meta orders every write.
// Remote writes from other clients are picked up by polling that counter and
// refreshing the watched paths.
type SQL struct {
	db        *sql.DB
	hub       *hub
	pollEvery time.Duration
	done      chan struct{}

	mu      sync.Mutex
	lastSeq int64
	docPub  map[string]docPubState
	colPub  map[string]colPubState
}

type docPubState struct {
	seq    int64
	exists bool
}

type colPubState struct {
	count  int
	maxSeq int64
}

// OpenSQL connects to the database and bootstraps the schema.
// pollEvery controls how often remote changes are checked; zero disables
// polling (local writes still notify subscribers in-process).
func OpenSQL(connString string, pollEvery time.Duration) (*SQL, error) {
	db, err := sql.Open("libsql", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", connString, err)
	}

	if err := initializeDB(db); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	s := &SQL{
		db:        db,
		hub:       newHub(),
		pollEvery: pollEvery,
		done:      make(chan struct{}),
		docPub:    make(map[string]docPubState),
		colPub:    make(map[string]colPubState),
	}
	if pollEvery > 0 {
		go s.pollLoop()
	}
	return s, nil
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS documents (
            path TEXT PRIMARY KEY,
            parent TEXT NOT NULL,
            doc TEXT NOT NULL,
            first_seq INTEGER NOT NULL,
            seq INTEGER NOT NULL
        );

        CREATE INDEX IF NOT EXISTS idx_documents_parent
            ON documents(parent, first_seq);

        CREATE TABLE IF NOT EXISTS store_meta (
            id INTEGER PRIMARY KEY CHECK (id = 1),
            seq INTEGER NOT NULL
        );

        INSERT OR IGNORE INTO store_meta (id, seq) VALUES (1, 0);
    `)
	return err
}

func (s *SQL) Close() error {
	close(s.done)
	return s.db.Close()
}

// nextSeq advances the global write counter inside the given transaction.
func nextSeq(ctx context.Context, tx *sql.Tx) (int64, error) {
	if _, err := tx.ExecContext(ctx, `UPDATE store_meta SET seq = seq + 1 WHERE id = 1`); err != nil {
		return 0, err
	}
	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT seq FROM store_meta WHERE id = 1`).Scan(&seq); err != nil {
		return 0, err
	}
	return seq, nil
}

func (s *SQL) Get(ctx context.Context, path string) (Snapshot, error) {
	var doc string
	var seq int64
	err := s.db.QueryRowContext(ctx,
		`SELECT doc, seq FROM documents WHERE path = ?`, path,
	).Scan(&doc, &seq)
	if err == sql.ErrNoRows {
		return Snapshot{Path: path}, ErrNotFound
	}
	if err != nil {
		return Snapshot{}, &ReadError{Path: path, Err: err}
	}
	return Snapshot{Path: path, Data: []byte(doc), Seq: seq}, nil
}

func (s *SQL) GetAll(ctx context.Context, collection string) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, doc, seq FROM documents WHERE parent = ? ORDER BY first_seq ASC`,
		collection,
	)
	if err != nil {
		return nil, &ReadError{Path: collection, Err: err}
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var snap Snapshot
		var doc string
		if err := rows.Scan(&snap.Path, &doc, &snap.Seq); err != nil {
			return nil, &ReadError{Path: collection, Err: err}
		}
		snap.Data = []byte(doc)
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, &ReadError{Path: collection, Err: err}
	}
	return out, nil
}

func (s *SQL) Set(ctx context.Context, path string, doc any) error {
	return s.BatchWrite(ctx, []Write{{Op: OpSet, Path: path, Doc: doc}})
}

func (s *SQL) Add(ctx context.Context, collection string, doc any) (string, error) {
	id := uuid.New().String()
	path := collection + "/" + id
	if err := s.BatchWrite(ctx, []Write{{Op: OpSet, Path: path, Doc: doc}}); err != nil {
		return "", err
	}
	return id, nil
}

func (s *SQL) Delete(ctx context.Context, path string) error {
	return s.BatchWrite(ctx, []Write{{Op: OpDelete, Path: path}})
}

func (s *SQL) DeleteTree(ctx context.Context, prefix string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &WriteError{Path: prefix, Err: err}
	}
	defer tx.Rollback()

	if _, err := nextSeq(ctx, tx); err != nil {
		return &WriteError{Path: prefix, Err: err}
	}
	_, err = tx.ExecContext(ctx,
		`DELETE FROM documents WHERE path = ? OR path LIKE ? || '/%'`,
		prefix, prefix,
	)
	if err != nil {
		return &WriteError{Path: prefix, Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &WriteError{Path: prefix, Err: err}
	}
	s.refreshWatched(ctx)
	return nil
}

// BatchWrite applies every entry in one transaction: either the whole set of
// records lands or none of it does.
func (s *SQL) BatchWrite(ctx context.Context, writes []Write) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &WriteError{Path: batchPath(writes), Err: err}
	}
	defer tx.Rollback()

	seq, err := nextSeq(ctx, tx)
	if err != nil {
		return &WriteError{Path: batchPath(writes), Err: err}
	}

	touched := make(map[string]struct{})
	for _, w := range writes {
		path := w.Path
		if w.Op == OpAdd {
			path = w.Path + "/" + uuid.New().String()
		}
		switch w.Op {
		case OpSet, OpAdd:
			data, err := marshalDoc(w.Doc)
			if err != nil {
				return &WriteError{Path: path, Err: err}
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO documents (path, parent, doc, first_seq, seq)
                 VALUES (?, ?, ?, ?, ?)
                 ON CONFLICT(path) DO UPDATE SET doc = excluded.doc, seq = excluded.seq`,
				path, parentPath(path), string(data), seq, seq,
			)
			if err != nil {
				return &WriteError{Path: path, Err: err}
			}
		case OpDelete:
			if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE path = ?`, path); err != nil {
				return &WriteError{Path: path, Err: err}
			}
		}
		touched[path] = struct{}{}
	}

	if err := tx.Commit(); err != nil {
		return &WriteError{Path: batchPath(writes), Err: err}
	}

	// Push acknowledged state to local subscribers without waiting for the
	// next poll tick.
	parents := make(map[string]struct{})
	for path := range touched {
		snap, err := s.Get(ctx, path)
		if err != nil && err != ErrNotFound {
			continue
		}
		s.maybePublishDoc(snap)
		parents[parentPath(path)] = struct{}{}
	}
	for parent := range parents {
		s.refreshCollection(ctx, parent)
	}
	s.setLastSeq(seq)
	return nil
}

func batchPath(writes []Write) string {
	if len(writes) > 0 {
		return writes[0].Path
	}
	return ""
}

func (s *SQL) Subscribe(ctx context.Context, path string) (*DocSub, error) {
	first, err := s.Get(ctx, path)
	if err != nil && err != ErrNotFound {
		return nil, err
	}
	s.mu.Lock()
	s.docPub[path] = docPubState{seq: first.Seq, exists: first.Exists()}
	s.mu.Unlock()
	return s.hub.addDocSub(path, first), nil
}

func (s *SQL) SubscribeCollection(ctx context.Context, collection string) (*CollectionSub, error) {
	docs, err := s.GetAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	first := CollectionSnapshot{Path: collection, Docs: docs, Seq: maxDocSeq(docs)}
	s.mu.Lock()
	s.colPub[collection] = colPubState{count: len(docs), maxSeq: first.Seq}
	s.mu.Unlock()
	return s.hub.addColSub(collection, first), nil
}

func maxDocSeq(docs []Snapshot) int64 {
	var max int64
	for _, d := range docs {
		if d.Seq > max {
			max = d.Seq
		}
	}
	return max
}

func (s *SQL) setLastSeq(seq int64) {
	s.mu.Lock()
	if seq > s.lastSeq {
		s.lastSeq = seq
	}
	s.mu.Unlock()
}

// maybePublishDoc fans a snapshot out unless it matches what the path's
// subscribers already saw.
func (s *SQL) maybePublishDoc(snap Snapshot) {
	s.mu.Lock()
	st, seen := s.docPub[snap.Path]
	changed := !seen || st.exists != snap.Exists() || (snap.Exists() && st.seq != snap.Seq)
	if changed {
		s.docPub[snap.Path] = docPubState{seq: snap.Seq, exists: snap.Exists()}
	}
	s.mu.Unlock()
	if changed {
		s.hub.publishDoc(snap)
	}
}

func (s *SQL) refreshCollection(ctx context.Context, collection string) {
	docs, err := s.GetAll(ctx, collection)
	if err != nil {
		return
	}
	snap := CollectionSnapshot{Path: collection, Docs: docs, Seq: maxDocSeq(docs)}

	s.mu.Lock()
	st, seen := s.colPub[collection]
	changed := !seen || st.count != len(docs) || st.maxSeq != snap.Seq
	if changed {
		s.colPub[collection] = colPubState{count: len(docs), maxSeq: snap.Seq}
	}
	s.mu.Unlock()
	if changed {
		s.hub.publishCollection(snap)
	}
}

func (s *SQL) pollLoop() {
	ticker := time.NewTicker(s.pollEvery)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.refreshWatched(context.Background())
		}
	}
}

// refreshWatched republishes every subscribed path whose state changed since
// the last observed global seq.
func (s *SQL) refreshWatched(ctx context.Context) {
	var seq int64
	if err := s.db.QueryRowContext(ctx, `SELECT seq FROM store_meta WHERE id = 1`).Scan(&seq); err != nil {
		return
	}
	s.mu.Lock()
	stale := seq > s.lastSeq
	s.mu.Unlock()
	if !stale {
		return
	}

	docs, collections := s.hub.watchedPaths()
	for _, path := range docs {
		snap, err := s.Get(ctx, path)
		if err != nil && err != ErrNotFound {
			continue
		}
		s.maybePublishDoc(snap)
	}
	for _, collection := range collections {
		s.refreshCollection(ctx, collection)
	}
	s.setLastSeq(seq)
}
