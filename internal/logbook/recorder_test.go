package logbook

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/playbookpro/playbook/internal/analytics"
	"github.com/playbookpro/playbook/internal/models"
	"github.com/playbookpro/playbook/internal/store"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 10, 15, 30, 0, 0, time.Local)
}

func liftingFixture() *models.LiftingProgram {
	return &models.LiftingProgram{Days: []models.WorkoutDay{
		{
			Key:  "day-a",
			Name: "Lower Body",
			Exercises: []models.Exercise{
				{Name: "Back Squat", Sets: "5", Reps: "5"},
				{Name: "Romanian Deadlift", Sets: "3", Reps: "8"},
				{Name: "Split Squat", Sets: "3", Reps: "10"},
			},
		},
	}}
}

func throwingFixture() *models.ThrowingProgram {
	return &models.ThrowingProgram{Days: []models.Day{
		{Day: 1, Focus: "Long toss", Sections: []models.Section{}},
	}}
}

func records(t *testing.T, st *store.Memory, playerID string) []models.LogRecord {
	t.Helper()
	snaps, err := st.GetAll(context.Background(), store.LogsCollection(playerID))
	if err != nil {
		t.Fatalf("get logs: %v", err)
	}
	raw := make([][]byte, len(snaps))
	for i, s := range snaps {
		raw[i] = s.Data
	}
	return analytics.DecodeRecords(raw)
}

func TestCommitThrowWithoutStagedFeel(t *testing.T) {
	st := store.NewMemory()
	rec := NewRecorder(st, "p1").WithClock(fixedClock)

	_, err := rec.CommitThrow(context.Background(), 0, throwingFixture())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want a ValidationError", err)
	}
	if got := records(t, st, "p1"); len(got) != 0 {
		t.Fatalf("got %d records after failed validation, want 0", len(got))
	}
}

func TestCommitThrowStampsDateAndFocus(t *testing.T) {
	st := store.NewMemory()
	rec := NewRecorder(st, "p1").WithClock(fixedClock)

	rec.StageThrow(0, 7)
	entry, err := rec.CommitThrow(context.Background(), 0, throwingFixture())
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if entry.Date != "2025-06-10" {
		t.Errorf("got date %q, want 2025-06-10", entry.Date)
	}
	if entry.Focus != "Long toss" || entry.Day != 1 || entry.Feel != 7 {
		t.Errorf("unexpected record: %+v", entry)
	}

	got := records(t, st, "p1")
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}

	// Committing again without re-staging is rejected.
	if _, err := rec.CommitThrow(context.Background(), 0, throwingFixture()); err == nil {
		t.Error("second commit without staging should fail")
	}
}

func TestCommitWellnessRejectsOutOfRangeScores(t *testing.T) {
	st := store.NewMemory()
	rec := NewRecorder(st, "p1").WithClock(fixedClock)

	rec.StageWellness(WellnessInput{
		OverallFeel: 11, ArmFeel: 5, ShoulderFeel: 5, BackFeel: 5, LegsFeel: 5,
		SleepHours: 8,
	})
	_, err := rec.CommitWellness(context.Background())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want a ValidationError", err)
	}
	if got := records(t, st, "p1"); len(got) != 0 {
		t.Fatalf("got %d records, want 0", len(got))
	}
}

func TestCommitWellnessWritesOneRecord(t *testing.T) {
	st := store.NewMemory()
	rec := NewRecorder(st, "p1").WithClock(fixedClock)

	rec.StageWellness(WellnessInput{
		OverallFeel: 8, ArmFeel: 7, ShoulderFeel: 9, BackFeel: 6, LegsFeel: 5,
		SleepHours: 7.5, HitCalories: true, Notes: "felt loose",
	})
	entry, err := rec.CommitWellness(context.Background())
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if entry.Date != "2025-06-10" || entry.SleepHours != 7.5 || !entry.HitCalories {
		t.Errorf("unexpected record: %+v", entry)
	}

	got := records(t, st, "p1")
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	w, ok := got[0].(models.WellnessRecord)
	if !ok {
		t.Fatalf("got record type %T, want WellnessRecord", got[0])
	}
	if w.Notes != "felt loose" {
		t.Errorf("got notes %q", w.Notes)
	}
}

func TestStagingIsIdempotent(t *testing.T) {
	st := store.NewMemory()
	rec := NewRecorder(st, "p1")

	rec.StageLift("day-a", 0, SetEntry{Weight: 100, Reps: 5})
	rec.StageLift("day-a", 0, SetEntry{Weight: 102.5, Reps: 3})

	staged := rec.StagedLift("day-a")
	if len(staged) != 1 {
		t.Fatalf("got %d staged entries, want 1", len(staged))
	}
	if staged[0].Weight != 102.5 || staged[0].Reps != 3 {
		t.Errorf("re-staging did not overwrite: %+v", staged[0])
	}
}

func TestCommitLiftIsAtomic(t *testing.T) {
	st := store.NewMemory()
	rec := NewRecorder(st, "p1").WithClock(fixedClock)

	rec.StageLift("day-a", 0, SetEntry{Weight: 140, Reps: 5})
	rec.StageLift("day-a", 1, SetEntry{Weight: 90, Reps: 8})
	rec.StageLift("day-a", 2, SetEntry{Weight: 40, Reps: 10})

	st.FailWrites(2)
	_, err := rec.CommitLift(context.Background(), "day-a", liftingFixture())
	if err == nil {
		t.Fatal("commit should have failed")
	}
	if got := records(t, st, "p1"); len(got) != 0 {
		t.Fatalf("got %d records after failed batch, want 0", len(got))
	}
	if staged := rec.StagedLift("day-a"); len(staged) != 3 {
		t.Fatalf("staged buffer lost on failed commit: %d entries", len(staged))
	}

	// The retry lands the full set and clears the buffer.
	out, err := rec.CommitLift(context.Background(), "day-a", liftingFixture())
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d records, want 3", len(out))
	}
	if got := records(t, st, "p1"); len(got) != 3 {
		t.Fatalf("got %d stored records, want 3", len(got))
	}
	if staged := rec.StagedLift("day-a"); len(staged) != 0 {
		t.Errorf("staged buffer not cleared after commit: %d entries", len(staged))
	}
}

func TestCommitLiftStagedSubset(t *testing.T) {
	st := store.NewMemory()
	rec := NewRecorder(st, "p1").WithClock(fixedClock)

	// Only one of the day's three exercises is staged: partial logging of
	// the day is fine, the staged set itself is still all-or-nothing.
	rec.StageLift("day-a", 1, SetEntry{Weight: 90, Reps: 8})
	out, err := rec.CommitLift(context.Background(), "day-a", liftingFixture())
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d records, want 1", len(out))
	}
	if out[0].Exercise != "Romanian Deadlift" || out[0].DayName != "Lower Body" {
		t.Errorf("names not resolved from the program snapshot: %+v", out[0])
	}
}

func TestCommitLiftEmptyBuffer(t *testing.T) {
	st := store.NewMemory()
	rec := NewRecorder(st, "p1")

	_, err := rec.CommitLift(context.Background(), "day-a", liftingFixture())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want a ValidationError", err)
	}
}
