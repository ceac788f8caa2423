package program

import (
	"context"
	"reflect"
	"testing"

	"github.com/playbookpro/playbook/internal/store"
)

func TestSubscribeDefaultThrowingSkeleton(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	stream, err := SubscribeThrowing(ctx, st, "p1")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer stream.Close()

	p := <-stream.C()
	if len(p.Days) != 1 {
		t.Fatalf("got %d days, want 1", len(p.Days))
	}
	if len(p.Days[0].Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(p.Days[0].Sections))
	}
	if p.Days[0].Sections[0].Title != "Warm-up" {
		t.Errorf("got section title %q, want Warm-up", p.Days[0].Sections[0].Title)
	}
	if len(p.Days[0].Sections[0].Drills) != 1 {
		t.Errorf("got %d drills, want 1", len(p.Days[0].Sections[0].Drills))
	}
}

func TestSubscribeDefaultLiftingSkeleton(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	stream, err := SubscribeLifting(ctx, st, "p1")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer stream.Close()

	p := <-stream.C()
	if len(p.Days) != 1 {
		t.Fatalf("got %d workout days, want 1", len(p.Days))
	}
	if p.Days[0].Key == "" {
		t.Error("workout day has no key")
	}
	if len(p.Days[0].Exercises) != 0 {
		t.Errorf("got %d exercises, want an empty list", len(p.Days[0].Exercises))
	}
}

func TestSaveRoundTrip(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	ed, err := OpenThrowing(ctx, st, "p1")
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	doc, err := SetDayFocus(ed.Working(), 0, "Long toss")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	ed.SetLocal(doc)
	if err := ed.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	fresh, err := OpenThrowing(ctx, st, "p1")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if !reflect.DeepEqual(fresh.Working(), doc) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", fresh.Working(), doc)
	}
}

func TestRemoteSnapshotNeverClobbersLocalEdits(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	coach, err := OpenThrowing(ctx, st, "p1")
	if err != nil {
		t.Fatalf("open coach: %v", err)
	}
	other, err := OpenThrowing(ctx, st, "p1")
	if err != nil {
		t.Fatalf("open other: %v", err)
	}

	// The coach starts editing but does not save.
	local, err := SetDayFocus(coach.Working(), 0, "Velocity work")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	coach.SetLocal(local)

	// Another session saves a different change.
	remote, err := SetDayFocus(other.Working(), 0, "Recovery")
	if err != nil {
		t.Fatalf("edit other: %v", err)
	}
	other.SetLocal(remote)
	if err := other.Save(ctx); err != nil {
		t.Fatalf("save other: %v", err)
	}

	snap, err := st.Get(ctx, store.ProgramPath("p1", "throwing"))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if err := coach.ApplyRemoteWith(snap, DefaultThrowing); err != nil {
		t.Fatalf("apply remote: %v", err)
	}

	if !coach.RemoteChanged() {
		t.Error("remote change while dirty should be flagged")
	}
	if got := coach.Working().Days[0].Focus; got != "Velocity work" {
		t.Errorf("local edits were clobbered: focus = %q", got)
	}

	// Explicit reload resolves the conflict in favor of the remote copy.
	reloaded := coach.Reload()
	if reloaded.Days[0].Focus != "Recovery" {
		t.Errorf("reload should yield the remote copy, got %q", reloaded.Days[0].Focus)
	}
	if coach.Dirty() || coach.RemoteChanged() {
		t.Error("reload should clear the dirty and conflict state")
	}
}

func TestOwnSaveEchoIsNotAConflict(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	ed, err := OpenThrowing(ctx, st, "p1")
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	doc, err := SetDayFocus(ed.Working(), 0, "Mechanics")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	ed.SetLocal(doc)
	if err := ed.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	// New edits begin before the save echo arrives.
	doc2, err := SetDayFocus(ed.Working(), 0, "Mechanics and mobility")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	ed.SetLocal(doc2)

	echo, err := st.Get(ctx, store.ProgramPath("p1", "throwing"))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if err := ed.ApplyRemoteWith(echo, DefaultThrowing); err != nil {
		t.Fatalf("apply echo: %v", err)
	}

	if ed.RemoteChanged() {
		t.Error("the echo of our own save must not be flagged as a conflict")
	}
	if got := ed.Working().Days[0].Focus; got != "Mechanics and mobility" {
		t.Errorf("pending edits lost to the echo: focus = %q", got)
	}
}

func TestFailedSaveKeepsLocalEdits(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	ed, err := OpenThrowing(ctx, st, "p1")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	doc, err := SetDayFocus(ed.Working(), 0, "Pulldowns")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	ed.SetLocal(doc)

	st.FailWrites(1)
	if err := ed.Save(ctx); err == nil {
		t.Fatal("save should have failed")
	}
	if !ed.Dirty() {
		t.Error("failed save must preserve the local edit buffer")
	}
	if got := ed.Working().Days[0].Focus; got != "Pulldowns" {
		t.Errorf("local edits lost on failed save: focus = %q", got)
	}

	if err := ed.Save(ctx); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if ed.Dirty() {
		t.Error("successful save should clear the edit buffer")
	}
}
