// Package logbook turns ephemeral per-day and per-exercise input into
// durable, immutable log records. Input is staged into local buffers with
// no store interaction; an explicit commit validates, stamps today's date
// and writes the records. A lifting commit is all-or-nothing: either every
// staged exercise lands as a record or none does.
package logbook

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/playbookpro/playbook/internal/models"
	"github.com/playbookpro/playbook/internal/store"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// WellnessInput is the staged form of a daily check-in.
type WellnessInput struct {
	OverallFeel  int
	ArmFeel      int
	ShoulderFeel int
	BackFeel     int
	LegsFeel     int
	SleepHours   float64
	HitCalories  bool
	HitProtein   bool
	Notes        string
}

// SetEntry is one staged exercise result of a lifting session.
type SetEntry struct {
	Weight float64
	Reps   int
}

// Recorder owns the staged buffers for one player. Staging is pure local
// mutation and re-staging the same key overwrites the prior value; only the
// Commit methods touch the store.
type Recorder struct {
	st       store.Store
	playerID string
	now      func() time.Time

	wellness *WellnessInput
	throws   map[int]int
	lifts    map[string]map[int]SetEntry
}

func NewRecorder(st store.Store, playerID string) *Recorder {
	return &Recorder{
		st:       st,
		playerID: playerID,
		now:      time.Now,
		throws:   make(map[int]int),
		lifts:    make(map[string]map[int]SetEntry),
	}
}

// WithClock overrides the commit timestamp source. Dates are stamped in the
// clock's local timezone.
func (r *Recorder) WithClock(now func() time.Time) *Recorder {
	r.now = now
	return r
}

func (r *Recorder) today() string {
	return r.now().Format(models.DateLayout)
}

// StageWellness buffers a check-in, replacing any prior staged one.
func (r *Recorder) StageWellness(in WellnessInput) {
	copied := in
	r.wellness = &copied
}

// StageThrow buffers the feel score for one throwing day.
func (r *Recorder) StageThrow(day int, feel int) {
	r.throws[day] = feel
}

// StageLift buffers the result of one exercise of one workout day. The last
// staged value per (dayKey, exercise) wins.
func (r *Recorder) StageLift(dayKey string, exercise int, entry SetEntry) {
	if r.lifts[dayKey] == nil {
		r.lifts[dayKey] = make(map[int]SetEntry)
	}
	r.lifts[dayKey][exercise] = entry
}

// StagedLift returns the staged buffer for a workout day.
func (r *Recorder) StagedLift(dayKey string) map[int]SetEntry {
	out := make(map[int]SetEntry, len(r.lifts[dayKey]))
	for k, v := range r.lifts[dayKey] {
		out[k] = v
	}
	return out
}

// CommitWellness validates the staged check-in and writes exactly one
// record. The staged buffer is cleared only after the write is acknowledged.
func (r *Recorder) CommitWellness(ctx context.Context) (models.WellnessRecord, error) {
	if r.wellness == nil {
		return models.WellnessRecord{}, &ValidationError{Reason: "no wellness check-in staged"}
	}
	rec := models.WellnessRecord{
		Type:         models.RecordWellness,
		Date:         r.today(),
		OverallFeel:  r.wellness.OverallFeel,
		ArmFeel:      r.wellness.ArmFeel,
		ShoulderFeel: r.wellness.ShoulderFeel,
		BackFeel:     r.wellness.BackFeel,
		LegsFeel:     r.wellness.LegsFeel,
		SleepHours:   r.wellness.SleepHours,
		HitCalories:  r.wellness.HitCalories,
		HitProtein:   r.wellness.HitProtein,
		Notes:        r.wellness.Notes,
	}
	if err := validate.Struct(rec); err != nil {
		return models.WellnessRecord{}, &ValidationError{Reason: "wellness scores must be 1-10", Err: err}
	}

	if _, err := r.st.Add(ctx, store.LogsCollection(r.playerID), rec); err != nil {
		return models.WellnessRecord{}, err
	}
	r.wellness = nil
	return rec, nil
}

// CommitThrow validates the staged feel for the given day index and writes
// exactly one record, with the day number and focus taken from the current
// program snapshot.
func (r *Recorder) CommitThrow(ctx context.Context, day int, prog *models.ThrowingProgram) (models.ThrowRecord, error) {
	feel, staged := r.throws[day]
	if !staged {
		return models.ThrowRecord{}, &ValidationError{Reason: fmt.Sprintf("no feel staged for day %d", day)}
	}
	if day < 0 || day >= len(prog.Days) {
		return models.ThrowRecord{}, &ValidationError{Reason: fmt.Sprintf("day index %d not in program", day)}
	}

	rec := models.ThrowRecord{
		Type:  models.RecordThrow,
		Date:  r.today(),
		Day:   prog.Days[day].Day,
		Focus: prog.Days[day].Focus,
		Feel:  feel,
	}
	if err := validate.Struct(rec); err != nil {
		return models.ThrowRecord{}, &ValidationError{Reason: "feel must be 1-10", Err: err}
	}

	if _, err := r.st.Add(ctx, store.LogsCollection(r.playerID), rec); err != nil {
		return models.ThrowRecord{}, err
	}
	delete(r.throws, day)
	return rec, nil
}

// CommitLift builds one record per staged exercise of the workout day,
// resolving names from the program snapshot, and writes the whole set in one
// atomic batch. Exercises of the day that were never staged are omitted; a
// failure leaves zero records and the staged buffer intact.
func (r *Recorder) CommitLift(ctx context.Context, dayKey string, prog *models.LiftingProgram) ([]models.LiftRecord, error) {
	staged := r.lifts[dayKey]
	if len(staged) == 0 {
		return nil, &ValidationError{Reason: fmt.Sprintf("no exercises staged for day %q", dayKey)}
	}
	day, ok := prog.WorkoutByKey(dayKey)
	if !ok {
		return nil, &ValidationError{Reason: fmt.Sprintf("no workout day with key %q", dayKey)}
	}

	indices := make([]int, 0, len(staged))
	for idx := range staged {
		if idx < 0 || idx >= len(day.Exercises) {
			return nil, &ValidationError{Reason: fmt.Sprintf("exercise index %d not in workout %q", idx, day.Name)}
		}
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	date := r.today()
	records := make([]models.LiftRecord, 0, len(indices))
	writes := make([]store.Write, 0, len(indices))
	for _, idx := range indices {
		entry := staged[idx]
		rec := models.LiftRecord{
			Type:     models.RecordLift,
			Date:     date,
			DayName:  day.Name,
			Exercise: day.Exercises[idx].Name,
			Weight:   entry.Weight,
			Reps:     entry.Reps,
		}
		records = append(records, rec)
		writes = append(writes, store.Write{Op: store.OpAdd, Path: store.LogsCollection(r.playerID), Doc: rec})
	}

	if err := r.st.BatchWrite(ctx, writes); err != nil {
		return nil, err
	}
	delete(r.lifts, dayKey)
	return records, nil
}
