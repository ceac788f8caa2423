package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/playbookpro/playbook/internal/models"
	"github.com/playbookpro/playbook/internal/program"
)

var (
	watchPlayerID   string
	watchDiscipline string
)

var watchProgramCmd = &cobra.Command{
	Use:   "watch-program",
	Short: "Follow a program document live, reprinting it on every change (Ctrl-C to stop)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		switch models.Discipline(watchDiscipline) {
		case models.DisciplineThrowing:
			stream, err := program.SubscribeThrowing(ctx, st, watchPlayerID)
			if err != nil {
				return err
			}
			defer stream.Close()
			for {
				select {
				case <-ctx.Done():
					return nil
				case p, ok := <-stream.C():
					if !ok {
						return nil
					}
					printThrowing(p)
				}
			}
		case models.DisciplineLifting:
			stream, err := program.SubscribeLifting(ctx, st, watchPlayerID)
			if err != nil {
				return err
			}
			defer stream.Close()
			for {
				select {
				case <-ctx.Done():
					return nil
				case p, ok := <-stream.C():
					if !ok {
						return nil
					}
					printLifting(p)
				}
			}
		default:
			return fmt.Errorf("unknown discipline %q (want throwing or lifting)", watchDiscipline)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchProgramCmd)

	watchProgramCmd.Flags().StringVarP(&watchPlayerID, "player", "p", "", "Player id (required)")
	watchProgramCmd.Flags().StringVarP(&watchDiscipline, "discipline", "d", "throwing", "Program discipline: throwing or lifting")
	watchProgramCmd.MarkFlagRequired("player")
}
