package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// StagedLifts is the persisted form of a player's staged lifting input, so
// exercises can be staged across several invocations before one commit.
type StagedLifts struct {
	PlayerID string      `toml:"player_id"`
	Days     []StagedDay `toml:"day"`
}

type StagedDay struct {
	Key     string        `toml:"key"`
	Entries []StagedEntry `toml:"entry"`
}

type StagedEntry struct {
	Exercise int     `toml:"exercise"`
	Weight   float64 `toml:"weight"`
	Reps     int     `toml:"reps"`
}

// Stage records one exercise entry, replacing any prior entry for the same
// (day, exercise).
func (s *StagedLifts) Stage(dayKey string, exercise int, weight float64, reps int) {
	for i := range s.Days {
		if s.Days[i].Key != dayKey {
			continue
		}
		for j := range s.Days[i].Entries {
			if s.Days[i].Entries[j].Exercise == exercise {
				s.Days[i].Entries[j].Weight = weight
				s.Days[i].Entries[j].Reps = reps
				return
			}
		}
		s.Days[i].Entries = append(s.Days[i].Entries, StagedEntry{Exercise: exercise, Weight: weight, Reps: reps})
		return
	}
	s.Days = append(s.Days, StagedDay{
		Key:     dayKey,
		Entries: []StagedEntry{{Exercise: exercise, Weight: weight, Reps: reps}},
	})
}

// Day returns the staged entries for one workout day.
func (s *StagedLifts) Day(dayKey string) []StagedEntry {
	for _, d := range s.Days {
		if d.Key == dayKey {
			return d.Entries
		}
	}
	return nil
}

// DropDay removes the staged entries for one workout day after a commit.
func (s *StagedLifts) DropDay(dayKey string) {
	for i := range s.Days {
		if s.Days[i].Key == dayKey {
			s.Days = append(s.Days[:i], s.Days[i+1:]...)
			return
		}
	}
}

func getStagedPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "playbook")
	os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "staged_lifts.toml"), nil
}

func SaveStagedLifts(staged *StagedLifts) error {
	path, err := getStagedPath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(staged)
}

func LoadStagedLifts() (*StagedLifts, error) {
	path, err := getStagedPath()
	if err != nil {
		return nil, err
	}

	var staged StagedLifts
	if _, err := toml.DecodeFile(path, &staged); err != nil {
		if os.IsNotExist(err) {
			return &StagedLifts{}, nil
		}
		return nil, err
	}

	return &staged, nil
}

func ClearStagedLifts() error {
	path, err := getStagedPath()
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
