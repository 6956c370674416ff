package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/roomies/pkg/core/services"
)

const listColumnWidth = 40

// ListPeopleCmd creates the listPeople command
func ListPeopleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listPeople [people_file]",
		Short: "List people with their choices and avoids",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			tab, _ := cmd.Flags().GetString("sheet")

			source, err := app.PeopleSource(path, tab)
			if err != nil {
				return err
			}

			people, err := services.ListPeople(app.Ctx, source, app.Logger)
			if err != nil {
				return err
			}
			app.Logger.Info("People fetched successfully", zap.Int("count", len(people)))

			fmt.Printf("\nFound %d people in %s:\n\n", len(people), source.Describe())

			rows := make([][]string, 0, len(people))
			for _, p := range people {
				rows = append(rows, []string{
					p.Name,
					p.Category,
					truncate(strings.Join(p.Choices, ", "), listColumnWidth),
					truncate(strings.Join(p.Avoids, ", "), listColumnWidth),
				})
			}
			printTable(cmd.OutOrStdout(), []string{"Name", "Category", "Choices", "Avoids"}, rows)
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("sheet", "", "People sheet tab to read (overrides config)")

	return cmd
}
