package commands

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jakechorley/roomies/pkg/core/services"
)

// AnalyzeConstraintsCmd creates the analyzeConstraints command
func AnalyzeConstraintsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyzeConstraints [people_file]",
		Short: "Report choices and avoids that cannot be satisfied",
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

			result, err := services.AnalyzeConstraints(app.Ctx, source, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n%d people in %d categories\n\n", result.People, len(result.ByCategory))

			categories := make([]string, 0, len(result.ByCategory))
			for category := range result.ByCategory {
				categories = append(categories, category)
			}
			slices.Sort(categories)

			rows := make([][]string, 0, len(categories))
			for _, category := range categories {
				rows = append(rows, []string{category, strconv.Itoa(result.ByCategory[category])})
			}
			printTable(cmd.OutOrStdout(), []string{"Category", "People"}, rows)

			if len(result.Warnings) == 0 {
				fmt.Printf("\n✓ No constraint problems found\n\n")
				return nil
			}

			fmt.Printf("\n⚠️  %d warnings:\n", len(result.Warnings))
			for _, w := range result.Warnings {
				fmt.Printf("  [%s] %s\n", w.Kind, w.Description)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("sheet", "", "People sheet tab to read (overrides config)")

	return cmd
}
