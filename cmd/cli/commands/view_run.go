package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/roomies/pkg/core/services"
)

// ViewRunCmd creates the viewRun command
func ViewRunCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewRun [run_id]",
		Short: "View the rooms of a saved run (defaults to latest run)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var runID string
			if len(args) > 0 {
				runID = args[0]
			}
			app.Logger.Debug("viewRun command", zap.String("run_id", runID))

			database, err := app.Database()
			if err != nil {
				return err
			}

			view, err := services.ViewSolveRun(app.Ctx, database, app.Logger, runID)
			if err != nil {
				return err
			}

			run := view.Run
			fmt.Printf("\nRun ID:          %s\n", run.ID)
			fmt.Printf("Created:         %s\n", run.CreatedAt.Local().Format("2006-01-02 15:04"))
			fmt.Printf("Source:          %s\n", run.Source)
			fmt.Printf("Max room size:   %d\n", run.MaxRoomSize)
			fmt.Printf("Iterations:      %d\n", run.Iterations)
			fmt.Printf("Total rooms:     %d\n", run.TotalRooms)
			fmt.Printf("Choice score:    %d\n", run.ChoiceScore)
			fmt.Printf("Imbalance:       %d\n", run.Imbalance)
			fmt.Printf("Without choices: %d\n", run.WithoutChoices)
			fmt.Printf("Fingerprint:     %s\n", run.Fingerprint)

			printRooms(cmd.OutOrStdout(), view.RoomsByCategory)
			fmt.Println()

			return nil
		},
	}
}
