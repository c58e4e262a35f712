package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chapeltools/rota-admin/pkg/core/services"
)

// ViewScheduleCmd creates the viewSchedule command
func ViewScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewSchedule",
		Short: "View committed service assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			org, _ := cmd.Flags().GetString("org")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")

			orgID, err := app.resolveOrg(org)
			if err != nil {
				return err
			}

			app.Logger.Debug("viewSchedule command",
				zap.String("org_id", orgID), zap.String("from", from), zap.String("to", to))

			view, err := services.ViewSchedule(app.Ctx, app.Database, app.Logger, orgID, from, to)
			if err != nil {
				return fmt.Errorf("failed to view schedule: %w", err)
			}

			fmt.Printf("\nFound %d assignments:\n\n", len(view.Assignments))
			if len(view.Assignments) == 0 {
				return nil
			}

			fmt.Printf("%-15s  %-20s  %-30s  %-10s\n", "Date", "Service", "Member", "Status")
			fmt.Println("---------------  --------------------  ------------------------------  ----------")
			for _, a := range view.Assignments {
				member := view.MemberNames[a.MemberID]
				if member == "" {
					member = a.MemberID
				}
				service := view.ServiceTypeNames[a.ServiceTypeID]
				if service == "" {
					service = a.ServiceTypeID
				}
				fmt.Printf("%-15s  %-20s  %-30s  %-10s\n", a.ServiceDate, service, member, a.Status)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("org", "", "Organization id (defaults to defaultOrgID from config)")
	cmd.Flags().String("from", "", "Range start (YYYY-MM-DD, inclusive)")
	cmd.Flags().String("to", "", "Range end (YYYY-MM-DD, inclusive)")

	return cmd
}
