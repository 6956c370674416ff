package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/roomies/pkg/core/services"
	"github.com/jakechorley/roomies/pkg/core/solver"
	"github.com/jakechorley/roomies/pkg/db"
	"github.com/jakechorley/roomies/pkg/events"
	"github.com/jakechorley/roomies/pkg/report"
)

// SolveRoomsCmd creates the solveRooms command
func SolveRoomsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solveRooms [people_file]",
		Short: "Assign people to rooms (reads the people sheet when no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}

			tab, _ := cmd.Flags().GetString("sheet")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			reportPath, _ := cmd.Flags().GetString("report")
			eventName, _ := cmd.Flags().GetString("event")
			publish, _ := cmd.Flags().GetBool("publish")
			email, _ := cmd.Flags().GetBool("email")

			solveCfg := app.Cfg.SolveConfig()
			if cmd.Flags().Changed("room-size") {
				solveCfg.MaxRoomSize, _ = cmd.Flags().GetInt("room-size")
			}
			if cmd.Flags().Changed("iterations") {
				solveCfg.Search.Iterations, _ = cmd.Flags().GetInt("iterations")
			}
			if cmd.Flags().Changed("workers") {
				solveCfg.Search.Workers, _ = cmd.Flags().GetInt("workers")
			}
			solveCfg.Search.Metrics = app.Metrics()

			app.Logger.Debug("solveRooms command",
				zap.String("file", path),
				zap.Int("max_room_size", solveCfg.MaxRoomSize),
				zap.Int("iterations", solveCfg.Search.Iterations),
				zap.Bool("dry_run", dryRun))

			source, err := app.PeopleSource(path, tab)
			if err != nil {
				return err
			}

			var store db.RunStore
			if !dryRun {
				if app.HasDatabase() {
					database, err := app.Database()
					if err != nil {
						return err
					}
					store = database
				} else {
					fmt.Println("No database configured, this run will not be saved.")
					dryRun = true
				}
			}

			runID := uuid.New().String()
			observers := solver.MultiObserver{newProgressPrinter(os.Stdout)}
			if app.Cfg.Events.NatsURL != "" {
				publisher, err := events.Connect(app.Cfg.Events.NatsURL, app.Cfg.Events.SubjectPrefix, runID, app.Logger)
				if err != nil {
					app.Logger.Warn("Progress events disabled", zap.Error(err))
				} else {
					defer publisher.Close()
					observers = append(observers, publisher)
				}
			}

			result, err := services.SolveRooms(app.Ctx, source, store, app.Logger, services.SolveRoomsOptions{
				Config:   solveCfg,
				DryRun:   dryRun,
				RunID:    runID,
				Observer: observers,
			})
			fmt.Println()
			if err != nil {
				return err
			}

			if len(result.Warnings) > 0 {
				fmt.Printf("\n⚠️  %d constraint warnings:\n", len(result.Warnings))
				for _, w := range result.Warnings {
					fmt.Printf("  - %s\n", w.Description)
				}
			}

			if !result.Found {
				printNoSolution(os.Stdout, solveCfg)
				return nil
			}

			printSolveResult(os.Stdout, result)

			opts := report.Options{EventName: eventName, GeneratedAt: time.Now()}

			if reportPath != "" {
				if err := report.WriteHTMLFile(reportPath, result.Result, opts); err != nil {
					return err
				}
				fmt.Printf("\n✓ Report written to %s\n", reportPath)
			}

			if publish {
				client, err := app.SheetsClient()
				if err != nil {
					return err
				}
				title := eventName
				if title == "" {
					title = "Room assignments"
				}
				err = services.PublishAssignments(app.Ctx, client, app.Logger, result.Result, services.PublishOptions{
					SpreadsheetID: app.Cfg.Output.AssignmentsSheetID,
					Tab:           app.Cfg.Output.AssignmentsTab,
					Title:         fmt.Sprintf("%s (%s)", title, opts.GeneratedAt.Format("2006-01-02 15:04")),
				})
				if err != nil {
					return err
				}
				fmt.Printf("✓ Published to the %q tab\n", app.Cfg.Output.AssignmentsTab)
			}

			if email {
				client, err := app.GmailClient()
				if err != nil {
					return err
				}
				err = services.EmailReport(app.Ctx, client, app.Logger, result.Result, services.EmailOptions{
					From:        app.Cfg.Email.GmailSender,
					To:          app.Cfg.Email.Recipients,
					EventName:   eventName,
					GeneratedAt: opts.GeneratedAt,
				})
				if err != nil {
					return err
				}
				fmt.Printf("✓ Report emailed to %d recipients\n", len(app.Cfg.Email.Recipients))
			}

			fmt.Println()
			return nil
		},
	}

	cmd.Flags().Int("room-size", 0, "Maximum people per room (overrides config)")
	cmd.Flags().Int("iterations", 0, "Number of candidate assignments to try (overrides config)")
	cmd.Flags().Int("workers", 0, "Parallel workers, 0 for one per CPU (overrides config)")
	cmd.Flags().String("sheet", "", "People sheet tab to read (overrides config)")
	cmd.Flags().Bool("dry-run", false, "Run without saving to database")
	cmd.Flags().String("report", "", "Write an HTML report to this path")
	cmd.Flags().String("event", "", "Event name used in report titles")
	cmd.Flags().Bool("publish", false, "Publish assignments to the assignments sheet")
	cmd.Flags().Bool("email", false, "Email the report to the configured recipients")

	return cmd
}

// progressPrinter draws search progress on a single terminal line
type progressPrinter struct {
	w    io.Writer
	last int
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{w: w, last: -1}
}

func (p *progressPrinter) OnProgress(percent int) {
	if percent == p.last {
		return
	}
	p.last = percent
	fmt.Fprintf(p.w, "\rSearching... %3d%%", percent)
}

func (p *progressPrinter) OnImproved(solver.Improvement) {}

func printSolveResult(w io.Writer, result *services.SolveRoomsResult) {
	r := result.Result

	fmt.Fprintf(w, "\n✓ Found room assignments!\n\n")
	if result.Run != nil {
		saved := "not saved"
		if result.Saved {
			saved = "saved"
		}
		fmt.Fprintf(w, "Run ID:          %s (%s)\n", result.Run.ID, saved)
	}
	fmt.Fprintf(w, "Total rooms:     %d\n", r.TotalRooms)
	fmt.Fprintf(w, "Choice score:    %d\n", r.ChoiceScore)
	fmt.Fprintf(w, "Imbalance:       %d\n", r.Imbalance)
	fmt.Fprintf(w, "Without choices: %d\n", r.WithoutChoices)
	fmt.Fprintf(w, "Fingerprint:     %s\n", r.Fingerprint)

	printRooms(w, r.RoomsByCategory)

	if len(result.Validation) > 0 {
		fmt.Fprintf(w, "\nNeeds attention:\n")
		for _, v := range result.Validation {
			fmt.Fprintf(w, "  - %s\n", v.Description)
		}
	}
}

func printNoSolution(w io.Writer, cfg solver.SolveConfig) {
	fmt.Fprintf(w, "\n✗ No assignment placed everyone after %d iterations.\n\n", cfg.Search.Iterations)
	fmt.Fprintln(w, "Try one of:")
	fmt.Fprintln(w, "  - more iterations (--iterations)")
	fmt.Fprintln(w, "  - bigger rooms (--room-size)")
	fmt.Fprintln(w, "  - fewer avoids in the people list (see analyzeConstraints)")
	fmt.Fprintln(w)
}
