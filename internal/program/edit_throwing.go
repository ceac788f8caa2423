package program

import (
	"fmt"

	"github.com/playbookpro/playbook/internal/models"
)

// Scalar drill fields addressable by SetDrillField.
type DrillField string

const (
	DrillName DrillField = "name"
	DrillSets DrillField = "sets"
	DrillReps DrillField = "reps"
	DrillURL  DrillField = "url"
)

// The throwing edit operations are pure: each returns an updated deep copy
// and never touches the store or the input document. Indices are positional
// against the document passed in; removal re-targets later positions in the
// same call, so a caller chaining edits always addresses current positions.

func AddDay(p *models.ThrowingProgram) *models.ThrowingProgram {
	out := p.Clone()
	out.Days = append(out.Days, models.Day{
		Day:      len(out.Days) + 1,
		Sections: []models.Section{},
	})
	return out
}

func RemoveDay(p *models.ThrowingProgram, day int) (*models.ThrowingProgram, error) {
	if day < 0 || day >= len(p.Days) {
		return nil, fmt.Errorf("day index %d out of range", day)
	}
	out := p.Clone()
	out.Days = append(out.Days[:day], out.Days[day+1:]...)
	return out, nil
}

func SetDayFocus(p *models.ThrowingProgram, day int, focus string) (*models.ThrowingProgram, error) {
	if day < 0 || day >= len(p.Days) {
		return nil, fmt.Errorf("day index %d out of range", day)
	}
	out := p.Clone()
	out.Days[day].Focus = focus
	return out, nil
}

func AddSection(p *models.ThrowingProgram, day int) (*models.ThrowingProgram, error) {
	if day < 0 || day >= len(p.Days) {
		return nil, fmt.Errorf("day index %d out of range", day)
	}
	out := p.Clone()
	out.Days[day].Sections = append(out.Days[day].Sections, models.Section{
		Drills: []models.Drill{},
	})
	return out, nil
}

func RemoveSection(p *models.ThrowingProgram, day, section int) (*models.ThrowingProgram, error) {
	if err := checkSection(p, day, section); err != nil {
		return nil, err
	}
	out := p.Clone()
	secs := out.Days[day].Sections
	out.Days[day].Sections = append(secs[:section], secs[section+1:]...)
	return out, nil
}

func SetSectionTitle(p *models.ThrowingProgram, day, section int, title string) (*models.ThrowingProgram, error) {
	if err := checkSection(p, day, section); err != nil {
		return nil, err
	}
	out := p.Clone()
	out.Days[day].Sections[section].Title = title
	return out, nil
}

func AddDrill(p *models.ThrowingProgram, day, section int) (*models.ThrowingProgram, error) {
	if err := checkSection(p, day, section); err != nil {
		return nil, err
	}
	out := p.Clone()
	sec := &out.Days[day].Sections[section]
	sec.Drills = append(sec.Drills, models.Drill{Name: "New Drill", Sets: "3", Reps: "10"})
	return out, nil
}

func RemoveDrill(p *models.ThrowingProgram, day, section, drill int) (*models.ThrowingProgram, error) {
	if err := checkDrill(p, day, section, drill); err != nil {
		return nil, err
	}
	out := p.Clone()
	drills := out.Days[day].Sections[section].Drills
	out.Days[day].Sections[section].Drills = append(drills[:drill], drills[drill+1:]...)
	return out, nil
}

func SetDrillField(p *models.ThrowingProgram, day, section, drill int, field DrillField, value string) (*models.ThrowingProgram, error) {
	if err := checkDrill(p, day, section, drill); err != nil {
		return nil, err
	}
	out := p.Clone()
	d := &out.Days[day].Sections[section].Drills[drill]
	switch field {
	case DrillName:
		d.Name = value
	case DrillSets:
		d.Sets = value
	case DrillReps:
		d.Reps = value
	case DrillURL:
		d.URL = value
	default:
		return nil, fmt.Errorf("unknown drill field %q", field)
	}
	return out, nil
}

func checkSection(p *models.ThrowingProgram, day, section int) error {
	if day < 0 || day >= len(p.Days) {
		return fmt.Errorf("day index %d out of range", day)
	}
	if section < 0 || section >= len(p.Days[day].Sections) {
		return fmt.Errorf("section index %d out of range for day %d", section, day)
	}
	return nil
}

func checkDrill(p *models.ThrowingProgram, day, section, drill int) error {
	if err := checkSection(p, day, section); err != nil {
		return err
	}
	if drill < 0 || drill >= len(p.Days[day].Sections[section].Drills) {
		return fmt.Errorf("drill index %d out of range", drill)
	}
	return nil
}
