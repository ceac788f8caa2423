package program

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/playbookpro/playbook/internal/models"
)

// Scalar exercise fields addressable by SetExerciseField.
type ExerciseField string

const (
	ExerciseName  ExerciseField = "name"
	ExerciseSets  ExerciseField = "sets"
	ExerciseReps  ExerciseField = "reps"
	ExerciseVideo ExerciseField = "video"
)

// Lifting edits address workout days by their synthetic key, never by
// position, so a staged rename or deletion elsewhere cannot redirect an edit.

func AddWorkout(p *models.LiftingProgram) *models.LiftingProgram {
	out := p.Clone()
	out.Days = append(out.Days, models.WorkoutDay{
		Key:       uuid.New().String(),
		Name:      fmt.Sprintf("Day %d", len(out.Days)+1),
		Exercises: []models.Exercise{},
	})
	return out
}

func RemoveWorkout(p *models.LiftingProgram, key string) (*models.LiftingProgram, error) {
	idx, err := workoutIndex(p, key)
	if err != nil {
		return nil, err
	}
	out := p.Clone()
	out.Days = append(out.Days[:idx], out.Days[idx+1:]...)
	return out, nil
}

func SetWorkoutName(p *models.LiftingProgram, key, name string) (*models.LiftingProgram, error) {
	idx, err := workoutIndex(p, key)
	if err != nil {
		return nil, err
	}
	out := p.Clone()
	out.Days[idx].Name = name
	return out, nil
}

func AddExercise(p *models.LiftingProgram, key string) (*models.LiftingProgram, error) {
	idx, err := workoutIndex(p, key)
	if err != nil {
		return nil, err
	}
	out := p.Clone()
	out.Days[idx].Exercises = append(out.Days[idx].Exercises, models.Exercise{
		Name: "New Exercise",
		Sets: "3",
		Reps: "10",
	})
	return out, nil
}

func RemoveExercise(p *models.LiftingProgram, key string, exercise int) (*models.LiftingProgram, error) {
	idx, err := workoutIndex(p, key)
	if err != nil {
		return nil, err
	}
	if exercise < 0 || exercise >= len(p.Days[idx].Exercises) {
		return nil, fmt.Errorf("exercise index %d out of range", exercise)
	}
	out := p.Clone()
	exs := out.Days[idx].Exercises
	out.Days[idx].Exercises = append(exs[:exercise], exs[exercise+1:]...)
	return out, nil
}

func SetExerciseField(p *models.LiftingProgram, key string, exercise int, field ExerciseField, value string) (*models.LiftingProgram, error) {
	idx, err := workoutIndex(p, key)
	if err != nil {
		return nil, err
	}
	if exercise < 0 || exercise >= len(p.Days[idx].Exercises) {
		return nil, fmt.Errorf("exercise index %d out of range", exercise)
	}
	out := p.Clone()
	ex := &out.Days[idx].Exercises[exercise]
	switch field {
	case ExerciseName:
		ex.Name = value
	case ExerciseSets:
		ex.Sets = value
	case ExerciseReps:
		ex.Reps = value
	case ExerciseVideo:
		ex.VideoURL = value
	default:
		return nil, fmt.Errorf("unknown exercise field %q", field)
	}
	return out, nil
}

func workoutIndex(p *models.LiftingProgram, key string) (int, error) {
	for i, d := range p.Days {
		if d.Key == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no workout day with key %q", key)
}
