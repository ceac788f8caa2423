package program

import (
	"context"
	"encoding/json"

	"github.com/playbookpro/playbook/internal/models"
	"github.com/playbookpro/playbook/internal/store"
)

// Stream is a live, restartable sequence of full program documents for one
// (player, discipline). The first document arrives immediately: either the
// stored program or the discipline skeleton when none exists yet. The stream
// never ends on its own; the subscriber closes it.
type Stream[T Document[T]] struct {
	ch    chan T
	inner *store.DocSub
}

func (s *Stream[T]) C() <-chan T { return s.ch }

func (s *Stream[T]) Close() { s.inner.Close() }

func newStream[T Document[T]](sub *store.DocSub, skeleton func() T) *Stream[T] {
	s := &Stream[T]{ch: make(chan T), inner: sub}
	go func() {
		defer close(s.ch)
		for snap := range sub.C() {
			var doc T
			if snap.Exists() {
				if err := json.Unmarshal(snap.Data, &doc); err != nil {
					continue
				}
				doc.Normalize()
			} else {
				doc = skeleton()
			}
			s.ch <- doc
		}
	}()
	return s
}

// SubscribeThrowing opens the snapshot stream for a player's throwing
// program.
func SubscribeThrowing(ctx context.Context, st store.Store, playerID string) (*Stream[*models.ThrowingProgram], error) {
	sub, err := st.Subscribe(ctx, store.ProgramPath(playerID, string(models.DisciplineThrowing)))
	if err != nil {
		return nil, err
	}
	return newStream(sub, DefaultThrowing), nil
}

// SubscribeLifting opens the snapshot stream for a player's lifting program.
func SubscribeLifting(ctx context.Context, st store.Store, playerID string) (*Stream[*models.LiftingProgram], error) {
	sub, err := st.Subscribe(ctx, store.ProgramPath(playerID, string(models.DisciplineLifting)))
	if err != nil {
		return nil, err
	}
	return newStream(sub, DefaultLifting), nil
}

// OpenThrowing primes an editor on the throwing program document.
func OpenThrowing(ctx context.Context, st store.Store, playerID string) (*Editor[*models.ThrowingProgram], error) {
	return Open(ctx, st, store.ProgramPath(playerID, string(models.DisciplineThrowing)), DefaultThrowing)
}

// OpenLifting primes an editor on the lifting program document.
func OpenLifting(ctx context.Context, st store.Store, playerID string) (*Editor[*models.LiftingProgram], error) {
	return Open(ctx, st, store.ProgramPath(playerID, string(models.DisciplineLifting)), DefaultLifting)
}
