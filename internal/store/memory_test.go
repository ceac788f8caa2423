package store

import (
	"context"
	"encoding/json"
	"testing"
)

type testDoc struct {
	Name string `json:"name"`
}

func TestSetGetRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Set(ctx, "players/p1", testDoc{Name: "Ana"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	snap, err := m.Get(ctx, "players/p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var got testDoc
	if err := json.Unmarshal(snap.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "Ana" {
		t.Errorf("got name %q, want Ana", got.Name)
	}
}

func TestGetMissingDocument(t *testing.T) {
	m := NewMemory()
	_, err := m.Get(context.Background(), "players/nope")
	if err != ErrNotFound {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestCollectionKeepsInsertionOrder(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, n := range names {
		if _, err := m.Add(ctx, "players/p1/logs", testDoc{Name: n}); err != nil {
			t.Fatalf("add %s: %v", n, err)
		}
	}

	snaps, err := m.GetAll(ctx, "players/p1/logs")
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(snaps) != len(names) {
		t.Fatalf("got %d docs, want %d", len(snaps), len(names))
	}
	for i, snap := range snaps {
		var got testDoc
		if err := json.Unmarshal(snap.Data, &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Name != names[i] {
			t.Errorf("doc %d: got %q, want %q", i, got.Name, names[i])
		}
	}
}

func TestBatchWriteIsAtomic(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	writes := []Write{
		{Op: OpAdd, Path: "players/p1/logs", Doc: testDoc{Name: "a"}},
		{Op: OpAdd, Path: "players/p1/logs", Doc: testDoc{Name: "b"}},
		{Op: OpAdd, Path: "players/p1/logs", Doc: testDoc{Name: "c"}},
	}

	m.FailWrites(2)
	if err := m.BatchWrite(ctx, writes); err == nil {
		t.Fatal("batch write should have failed")
	}

	snaps, err := m.GetAll(ctx, "players/p1/logs")
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(snaps) != 0 {
		t.Fatalf("got %d docs after failed batch, want 0", len(snaps))
	}

	// A retry with the injection cleared lands the whole set.
	if err := m.BatchWrite(ctx, writes); err != nil {
		t.Fatalf("retry: %v", err)
	}
	snaps, _ = m.GetAll(ctx, "players/p1/logs")
	if len(snaps) != 3 {
		t.Fatalf("got %d docs after retry, want 3", len(snaps))
	}
}

func TestSubscribeEmitsCurrentThenUpdates(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	sub, err := m.Subscribe(ctx, "players/p1/programs/throwing")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer sub.Close()

	first := <-sub.C()
	if first.Exists() {
		t.Fatal("first snapshot should report an absent document")
	}

	if err := m.Set(ctx, "players/p1/programs/throwing", testDoc{Name: "v1"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	second := <-sub.C()
	if !second.Exists() {
		t.Fatal("second snapshot should carry the document")
	}
	if second.Seq <= first.Seq {
		t.Errorf("seq did not advance: %d -> %d", first.Seq, second.Seq)
	}
}

func TestSubscriptionCoalescesToLatest(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	sub, err := m.Subscribe(ctx, "players/p1/programs/lifting")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer sub.Close()
	<-sub.C() // initial

	// Two writes without the subscriber draining: only the latest survives.
	if err := m.Set(ctx, "players/p1/programs/lifting", testDoc{Name: "v1"}); err != nil {
		t.Fatalf("set v1: %v", err)
	}
	if err := m.Set(ctx, "players/p1/programs/lifting", testDoc{Name: "v2"}); err != nil {
		t.Fatalf("set v2: %v", err)
	}

	snap := <-sub.C()
	var got testDoc
	if err := json.Unmarshal(snap.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "v2" {
		t.Errorf("got %q, want the latest write v2", got.Name)
	}
}

func TestSubscribeCollection(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	sub, err := m.SubscribeCollection(ctx, "players/p1/logs")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer sub.Close()

	first := <-sub.C()
	if len(first.Docs) != 0 {
		t.Fatalf("got %d docs in first snapshot, want 0", len(first.Docs))
	}

	if _, err := m.Add(ctx, "players/p1/logs", testDoc{Name: "entry"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	second := <-sub.C()
	if len(second.Docs) != 1 {
		t.Fatalf("got %d docs, want 1", len(second.Docs))
	}
}

func TestDeleteTreeCascades(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Set(ctx, "players/p1", testDoc{Name: "Ana"}); err != nil {
		t.Fatalf("set player: %v", err)
	}
	if err := m.Set(ctx, "players/p1/programs/throwing", testDoc{Name: "prog"}); err != nil {
		t.Fatalf("set program: %v", err)
	}
	if _, err := m.Add(ctx, "players/p1/logs", testDoc{Name: "log"}); err != nil {
		t.Fatalf("add log: %v", err)
	}

	if err := m.DeleteTree(ctx, "players/p1"); err != nil {
		t.Fatalf("delete tree: %v", err)
	}

	for _, path := range []string{"players/p1", "players/p1/programs/throwing"} {
		if _, err := m.Get(ctx, path); err != ErrNotFound {
			t.Errorf("%s still present after cascading delete", path)
		}
	}
	logs, _ := m.GetAll(ctx, "players/p1/logs")
	if len(logs) != 0 {
		t.Errorf("got %d logs after cascading delete, want 0", len(logs))
	}
}
