package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/analytics"
)

var reportPlayerID string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a player's wellness trend and the sleep vs arm-feel correlation",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := fetchRecords(context.Background(), st, reportPlayerID)
		if err != nil {
			return err
		}
		rep := analytics.DeriveReports(records)

		green := color.New(color.FgGreen, color.Bold).SprintFunc()

		printBoxedHeader("REPORTS")

		fmt.Printf("\n%s\n", green("Wellness check-ins"))
		if len(rep.WellnessSeries) == 0 {
			fmt.Println("  no check-ins logged yet")
		} else {
			for _, w := range rep.WellnessSeries {
				fmt.Printf("  %s  overall %d/10  arm %d/10  sleep %.1fh\n",
					w.Date, w.OverallFeel, w.ArmFeel, w.SleepHours)
			}
		}

		fmt.Printf("\n%s\n", green("Sleep vs arm feel (days with both a check-in and a throw)"))
		if len(rep.CombinedSleepArmSeries) == 0 {
			fmt.Println("  no overlapping days yet")
		} else {
			for _, pt := range rep.CombinedSleepArmSeries {
				fmt.Printf("  %s  sleep %.1fh  arm %d/10\n", pt.Date, pt.Sleep, pt.ArmFeel)
			}
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportPlayerID, "player", "p", "", "Player id (required)")
	reportCmd.MarkFlagRequired("player")
}
