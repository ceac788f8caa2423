package utils

import (
	"testing"

	"github.com/playbookpro/playbook/internal/models"
)

func TestDraftRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if DraftExists() {
		t.Fatal("fresh home should have no draft")
	}

	draft := &ProgramDraft{
		PlayerID:   "p1",
		Discipline: string(models.DisciplineThrowing),
		BaseSeq:    7,
		Throwing: &models.ThrowingProgram{
			Days: []models.Day{
				{
					Day:   1,
					Focus: "Velocity",
					Sections: []models.Section{
						{
							Title: "Warm-up",
							Drills: []models.Drill{
								{Name: "Wrist flips", Sets: "3", Reps: "10"},
							},
						},
					},
				},
			},
		},
	}
	if err := SaveDraft(draft); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if !DraftExists() {
		t.Fatal("draft should exist after save")
	}

	got, err := LoadDraft()
	if err != nil {
		t.Fatalf("LoadDraft: %v", err)
	}
	if got.PlayerID != "p1" || got.Discipline != "throwing" || got.BaseSeq != 7 {
		t.Fatalf("unexpected draft header: %+v", got)
	}
	if got.Lifting != nil {
		t.Fatal("throwing draft should not carry a lifting document")
	}
	if len(got.Throwing.Days) != 1 || got.Throwing.Days[0].Focus != "Velocity" {
		t.Fatalf("unexpected program: %+v", got.Throwing)
	}
	if got.Throwing.Days[0].Sections[0].Drills[0].Name != "Wrist flips" {
		t.Fatalf("unexpected drill: %+v", got.Throwing.Days[0].Sections[0].Drills)
	}

	if err := ClearDraft(); err != nil {
		t.Fatalf("ClearDraft: %v", err)
	}
	if DraftExists() {
		t.Fatal("draft should be gone after clear")
	}
}

func TestStagedLiftsRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	staged, err := LoadStagedLifts()
	if err != nil {
		t.Fatalf("LoadStagedLifts with no file: %v", err)
	}
	if len(staged.Days) != 0 {
		t.Fatalf("expected empty staging, got %+v", staged.Days)
	}

	staged.PlayerID = "p1"
	staged.Stage("day-a", 0, 135, 5)
	staged.Stage("day-a", 1, 95, 8)
	staged.Stage("day-a", 0, 140, 5) // restage replaces
	staged.Stage("day-b", 0, 60, 12)

	if err := SaveStagedLifts(staged); err != nil {
		t.Fatalf("SaveStagedLifts: %v", err)
	}

	got, err := LoadStagedLifts()
	if err != nil {
		t.Fatalf("LoadStagedLifts: %v", err)
	}
	entries := got.Day("day-a")
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries for day-a, got %d", len(entries))
	}
	if entries[0].Exercise != 0 || entries[0].Weight != 140 || entries[0].Reps != 5 {
		t.Fatalf("restage did not replace: %+v", entries[0])
	}

	got.DropDay("day-a")
	if got.Day("day-a") != nil {
		t.Fatal("day-a should be gone after DropDay")
	}
	if len(got.Day("day-b")) != 1 {
		t.Fatal("DropDay removed the wrong day")
	}

	if err := ClearStagedLifts(); err != nil {
		t.Fatalf("ClearStagedLifts: %v", err)
	}
	if err := ClearStagedLifts(); err != nil {
		t.Fatalf("ClearStagedLifts should tolerate a missing file: %v", err)
	}
}
