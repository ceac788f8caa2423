// Package program maintains the nested program documents (throwing and
// lifting) for each player: default skeletons for players with no stored
// program yet, pure local edit operations, and the editor state machine that
// reconciles in-progress edits against the canonical remote copy.
package program

import (
	"github.com/google/uuid"

	"github.com/playbookpro/playbook/internal/models"
)

// DefaultThrowing is the skeleton a subscriber sees before a throwing
// program was ever saved: one day with a warm-up section and a starter drill.
func DefaultThrowing() *models.ThrowingProgram {
	return &models.ThrowingProgram{
		Days: []models.Day{
			{
				Day:   1,
				Focus: "",
				Sections: []models.Section{
					{
						Title: "Warm-up",
						Drills: []models.Drill{
							{Name: "New Drill", Sets: "3", Reps: "10"},
						},
					},
				},
			},
		},
	}
}

// DefaultLifting is the lifting counterpart: one workout day with no
// exercises yet. The day key is assigned here and stays stable for the life
// of the day.
func DefaultLifting() *models.LiftingProgram {
	return &models.LiftingProgram{
		Days: []models.WorkoutDay{
			{Key: uuid.New().String(), Name: "Day 1", Exercises: []models.Exercise{}},
		},
	}
}
