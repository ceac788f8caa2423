package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/analytics"
	"github.com/playbookpro/playbook/internal/config"
	"github.com/playbookpro/playbook/internal/insights"
)

var insightPlayerID string

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Ask the text-generation service for a narrative summary of recent logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		records, err := fetchRecords(ctx, st, insightPlayerID)
		if err != nil {
			return err
		}

		rep := analytics.DeriveReports(records)
		var b strings.Builder
		b.WriteString("Summarize this athlete's recent training in two sentences.\n")
		for _, w := range rep.WellnessSeries {
			fmt.Fprintf(&b, "%s: overall %d/10, arm %d/10, slept %.1fh\n",
				w.Date, w.OverallFeel, w.ArmFeel, w.SleepHours)
		}
		for _, pt := range rep.CombinedSleepArmSeries {
			fmt.Fprintf(&b, "%s: threw with arm feel %d/10 on %.1fh sleep\n",
				pt.Date, pt.ArmFeel, pt.Sleep)
		}

		client := insights.NewClient(cfg.Insights.Endpoint, cfg.Insights.APIKey)
		text, err := client.Generate(ctx, b.String())
		if err != nil {
			// Best effort: the narrative degrades, the data does not.
			text = insights.Placeholder
		}

		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightCmd)

	insightCmd.Flags().StringVarP(&insightPlayerID, "player", "p", "", "Player id (required)")
	insightCmd.MarkFlagRequired("player")
}
