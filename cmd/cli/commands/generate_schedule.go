package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chapeltools/rota-admin/pkg/core/services"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateSchedule",
		Short: "Generate a round-robin service schedule and commit it after review",
		Long: `Generate a service schedule by rotating through the selected members in
round-robin order. Dates come either from an explicit list (--dates) or from a
weekday rule (--weekday with --start/--end). The generated preview is shown for
review; nothing is saved until you confirm.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			org, _ := cmd.Flags().GetString("org")
			serviceType, _ := cmd.Flags().GetString("service-type")
			members, _ := cmd.Flags().GetStringSlice("members")
			dates, _ := cmd.Flags().GetStringSlice("dates")
			weekday, _ := cmd.Flags().GetInt("weekday")
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			yes, _ := cmd.Flags().GetBool("yes")

			orgID, err := app.resolveOrg(org)
			if err != nil {
				return err
			}

			params := services.ScheduleParams{
				OrgID:         orgID,
				ServiceType:   serviceType,
				Roster:        members,
				BlackoutRules: app.Cfg.BlackoutRules,
			}

			if len(dates) > 0 {
				if cmd.Flags().Changed("weekday") {
					return fmt.Errorf("--dates and --weekday are mutually exclusive")
				}
				params.Mode = services.ModeExplicit
				params.ExplicitDates = dates
			} else {
				if !cmd.Flags().Changed("weekday") {
					return fmt.Errorf("either --dates or --weekday is required")
				}
				params.Mode = services.ModeWeekday
				params.Weekday = weekday
				params.StartDate, params.EndDate = defaultWindow(start, end, app.Cfg.DefaultWindowWeeks)
			}

			app.Logger.Debug("generateSchedule command",
				zap.String("org_id", orgID),
				zap.String("mode", params.Mode),
				zap.Int("roster_size", len(params.Roster)))

			preview, err := services.BuildSchedulePreview(app.Ctx, app.Database, app.Logger, params)
			if err != nil {
				var vErr *services.ValidationError
				if errors.As(err, &vErr) {
					fmt.Printf("❌ %s\n", vErr.Message)
					return err
				}
				return fmt.Errorf("failed to build preview: %w", err)
			}

			printPreview(preview)

			if len(preview.Assignments) == 0 {
				fmt.Println("Nothing to schedule: the date set or member selection is empty.")
				return nil
			}

			if dryRun {
				fmt.Println("Dry run: no assignments were saved.")
				return nil
			}

			if !yes && !confirm(fmt.Sprintf("Commit %d assignments?", len(preview.Assignments))) {
				fmt.Println("Aborted: no assignments were saved.")
				return nil
			}

			if err := services.CommitSchedule(app.Ctx, app.Database, app.Logger, preview); err != nil {
				fmt.Printf("❌ Commit failed: %v\n", err)
				fmt.Println("The preview above was not saved. Adjust inputs and try again.")
				return err
			}

			fmt.Printf("\n✅ Committed %d assignments for %s.\n", len(preview.Assignments), preview.ServiceType.Name)
			return nil
		},
	}

	cmd.Flags().String("org", "", "Organization id (defaults to defaultOrgID from config)")
	cmd.Flags().String("service-type", "", "Service type id or name (required)")
	cmd.Flags().StringSlice("members", nil, "Member ids in rotation order (required)")
	cmd.Flags().StringSlice("dates", nil, "Explicit dates (YYYY-MM-DD), any order")
	cmd.Flags().Int("weekday", 0, "Weekday rule: 0=Sunday..6=Saturday")
	cmd.Flags().String("start", "", "Weekday rule range start (defaults to today)")
	cmd.Flags().String("end", "", "Weekday rule range end (defaults to the configured window)")
	cmd.Flags().Bool("dry-run", false, "Show the preview without committing")
	cmd.Flags().Bool("yes", false, "Commit without the confirmation prompt")
	cmd.MarkFlagRequired("service-type")
	cmd.MarkFlagRequired("members")

	return cmd
}

// defaultWindow fills missing range bounds: start defaults to today, end to
// the configured number of weeks after start
func defaultWindow(start, end string, windowWeeks int) (string, string) {
	if start == "" {
		start = time.Now().UTC().Format("2006-01-02")
	}
	if end == "" {
		if startDate, err := time.Parse("2006-01-02", start); err == nil {
			end = startDate.AddDate(0, 0, 7*windowWeeks-1).Format("2006-01-02")
		}
	}
	return start, end
}

// printPreview renders the generated mapping as a review table
func printPreview(preview *services.SchedulePreview) {
	fmt.Printf("\n📋 Schedule Preview — %s\n\n", preview.ServiceType.Name)

	if len(preview.Assignments) == 0 {
		return
	}

	fmt.Printf("%-15s  %-36s  %-30s\n", "Date", "Member ID", "Member")
	fmt.Println("---------------  ------------------------------------  ------------------------------")
	for _, a := range preview.Assignments {
		fmt.Printf("%-15s  %-36s  %-30s\n", a.Date, a.MemberID, a.MemberName)
	}
	fmt.Println()
}

// confirm asks a yes/no question on stdin, defaulting to no
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
