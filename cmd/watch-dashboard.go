package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/analytics"
	"github.com/playbookpro/playbook/internal/store"
)

var watchDashPlayerID string

var watchDashboardCmd = &cobra.Command{
	Use:   "watch-dashboard",
	Short: "Follow a player's dashboard live, re-deriving it on every new log (Ctrl-C to stop)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		sub, err := st.SubscribeCollection(ctx, store.LogsCollection(watchDashPlayerID))
		if err != nil {
			return err
		}
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return nil
			case snap, ok := <-sub.C():
				if !ok {
					return nil
				}
				raw := make([][]byte, len(snap.Docs))
				for i, doc := range snap.Docs {
					raw[i] = doc.Data
				}
				printDashboard(analytics.DeriveDashboard(analytics.DecodeRecords(raw)))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchDashboardCmd)

	watchDashboardCmd.Flags().StringVarP(&watchDashPlayerID, "player", "p", "", "Player id (required)")
	watchDashboardCmd.MarkFlagRequired("player")
}
