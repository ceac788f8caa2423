package store

import "sync"

// DocSub is a live subscription to one document. C delivers full snapshots,
// coalesced to the latest state: if the subscriber lags, intermediate
// snapshots are dropped in favor of the newest one. The channel is closed by
// Close and never by the store.
type DocSub struct {
	ch    chan Snapshot
	close func()
	once  sync.Once
}

func (s *DocSub) C() <-chan Snapshot { return s.ch }

func (s *DocSub) Close() { s.once.Do(s.close) }

// CollectionSub is the collection-query counterpart of DocSub.
type CollectionSub struct {
	ch    chan CollectionSnapshot
	close func()
	once  sync.Once
}

func (s *CollectionSub) C() <-chan CollectionSnapshot { return s.ch }

func (s *CollectionSub) Close() { s.once.Do(s.close) }

// hub fans out snapshots to subscribers. Publishing and teardown run under
// one mutex, so a subscription never observes a send after its channel is
// closed, and snapshots for one path are delivered in publish order.
type hub struct {
	mu      sync.Mutex
	nextID  int
	docSubs map[string]map[int]*DocSub
	colSubs map[string]map[int]*CollectionSub
}

func newHub() *hub {
	return &hub{
		docSubs: make(map[string]map[int]*DocSub),
		colSubs: make(map[string]map[int]*CollectionSub),
	}
}

func (h *hub) addDocSub(path string, first Snapshot) *DocSub {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	sub := &DocSub{ch: make(chan Snapshot, 1)}
	sub.close = func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.docSubs[path], id)
		close(sub.ch)
	}

	if h.docSubs[path] == nil {
		h.docSubs[path] = make(map[int]*DocSub)
	}
	h.docSubs[path][id] = sub
	sub.ch <- first
	return sub
}

func (h *hub) addColSub(path string, first CollectionSnapshot) *CollectionSub {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	sub := &CollectionSub{ch: make(chan CollectionSnapshot, 1)}
	sub.close = func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.colSubs[path], id)
		close(sub.ch)
	}

	if h.colSubs[path] == nil {
		h.colSubs[path] = make(map[int]*CollectionSub)
	}
	h.colSubs[path][id] = sub
	sub.ch <- first
	return sub
}

func (h *hub) publishDoc(snap Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.docSubs[snap.Path] {
		select {
		case <-sub.ch: // drop the stale snapshot
		default:
		}
		sub.ch <- snap
	}
}

func (h *hub) publishCollection(snap CollectionSnapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.colSubs[snap.Path] {
		select {
		case <-sub.ch:
		default:
		}
		sub.ch <- snap
	}
}

// watchedPaths reports the doc and collection paths with live subscribers.
func (h *hub) watchedPaths() (docs, collections []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for p, subs := range h.docSubs {
		if len(subs) > 0 {
			docs = append(docs, p)
		}
	}
	for p, subs := range h.colSubs {
		if len(subs) > 0 {
			collections = append(collections, p)
		}
	}
	return docs, collections
}
