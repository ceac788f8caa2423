package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/playbookpro/playbook/internal/models"
)

// ProgramDraft is the cross-invocation edit buffer: the working copy of one
// program document plus the store seq it was based on. Exactly one of
// Throwing/Lifting is set, matching Discipline.
type ProgramDraft struct {
	PlayerID   string                  `toml:"player_id"`
	Discipline string                  `toml:"discipline"`
	BaseSeq    int64                   `toml:"base_seq"`
	Throwing   *models.ThrowingProgram `toml:"throwing,omitempty"`
	Lifting    *models.LiftingProgram  `toml:"lifting,omitempty"`
}

func getDraftPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "playbook")
	os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "program_draft.toml"), nil
}

func SaveDraft(draft *ProgramDraft) error {
	path, err := getDraftPath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(draft)
}

func LoadDraft() (*ProgramDraft, error) {
	path, err := getDraftPath()
	if err != nil {
		return nil, err
	}

	var draft ProgramDraft
	_, err = toml.DecodeFile(path, &draft)
	if err != nil {
		return nil, err
	}

	return &draft, nil
}

func ClearDraft() error {
	path, err := getDraftPath()
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func DraftExists() bool {
	path, err := getDraftPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return !os.IsNotExist(err)
}
