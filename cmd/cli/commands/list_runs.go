package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jakechorley/roomies/pkg/core/services"
	"github.com/jakechorley/roomies/pkg/db"
)

// ListRunsCmd creates the listRuns command
func ListRunsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRuns",
		Short: "List saved solve runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := app.Database()
			if err != nil {
				return err
			}

			runs, err := services.ListSolveRuns(app.Ctx, database, app.Logger)
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Println("\nNo runs saved yet.")
				return nil
			}

			fmt.Printf("\nFound %d runs:\n\n", len(runs))
			printTable(cmd.OutOrStdout(), []string{"Run ID", "Created", "Source", "Rooms", "Choice score", "Without choices", "Fingerprint"}, runRows(runs))
			fmt.Println()

			return nil
		},
	}
}

func runRows(runs []db.SolveRun) [][]string {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.ID,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Source,
			strconv.Itoa(r.TotalRooms),
			strconv.Itoa(r.ChoiceScore),
			strconv.Itoa(r.WithoutChoices),
			r.Fingerprint,
		})
	}
	return rows
}
