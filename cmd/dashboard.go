package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/analytics"
	"github.com/playbookpro/playbook/internal/models"
	"github.com/playbookpro/playbook/internal/store"
)

var dashboardPlayerID string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show a player's squat and throwing-feel trends",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := fetchRecords(context.Background(), st, dashboardPlayerID)
		if err != nil {
			return err
		}
		printDashboard(analytics.DeriveDashboard(records))
		return nil
	},
}

func fetchRecords(ctx context.Context, st store.Store, playerID string) ([]models.LogRecord, error) {
	snaps, err := st.GetAll(ctx, store.LogsCollection(playerID))
	if err != nil {
		return nil, fmt.Errorf("failed to load logs: %w", err)
	}
	raw := make([][]byte, len(snaps))
	for i, s := range snaps {
		raw[i] = s.Data
	}
	return analytics.DecodeRecords(raw), nil
}

func printDashboard(d models.Dashboard) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()

	printBoxedHeader("DASHBOARD")

	fmt.Printf("\n%s\n", green("Squat weight"))
	if len(d.SquatSeries) == 0 {
		fmt.Println("  no squat sessions logged yet")
	} else {
		weights := make([]float64, len(d.SquatSeries))
		for i, pt := range d.SquatSeries {
			weights[i] = pt.Weight
			fmt.Printf("  %s  %.1f\n", pt.Date, pt.Weight)
		}
		fmt.Printf("  [%s]\n", analytics.Sparkline(weights))
	}

	fmt.Printf("\n%s\n", green("Throwing feel"))
	if len(d.ThrowFeelSeries) == 0 {
		fmt.Println("  no throwing sessions logged yet")
	} else {
		feels := make([]float64, len(d.ThrowFeelSeries))
		for i, pt := range d.ThrowFeelSeries {
			feels[i] = float64(pt.Feel)
			fmt.Printf("  %s  %d/10\n", pt.Date, pt.Feel)
		}
		fmt.Printf("  [%s]\n", analytics.Sparkline(feels))
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().StringVarP(&dashboardPlayerID, "player", "p", "", "Player id (required)")
	dashboardCmd.MarkFlagRequired("player")
}
