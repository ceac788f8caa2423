package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/config"
	"github.com/playbookpro/playbook/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "playbook",
	Short: "Coach/player training companion: program editing, session logs, dashboards",
}

func Execute() error {
	return rootCmd.Execute()
}

// openStore connects to the configured document store.
func openStore() (store.Store, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DB.ConnectionString == "" {
		return nil, fmt.Errorf("no database configured: set database.connection_string in config.toml or PLAYBOOK_DATABASE_URL")
	}

	st, err := store.OpenSQL(cfg.DB.ConnectionString, cfg.PollInterval())
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, nil
}

func printBoxedHeader(title string) {
	line := strings.Repeat("=", len(title)+8)
	header := color.New(color.FgCyan, color.Bold)
	fmt.Println(line)
	header.Printf("    %s\n", title)
	fmt.Println(line)
}
