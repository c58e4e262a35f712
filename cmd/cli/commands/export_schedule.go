package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chapeltools/rota-admin/pkg/core/services"
	"github.com/chapeltools/rota-admin/pkg/export"
)

// ExportScheduleCmd creates the exportSchedule command
func ExportScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exportSchedule",
		Short: "Export committed service assignments to an xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			org, _ := cmd.Flags().GetString("org")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			out, _ := cmd.Flags().GetString("out")

			orgID, err := app.resolveOrg(org)
			if err != nil {
				return err
			}

			app.Logger.Debug("exportSchedule command",
				zap.String("org_id", orgID), zap.String("out", out))

			view, err := services.ViewSchedule(app.Ctx, app.Database, app.Logger, orgID, from, to)
			if err != nil {
				return fmt.Errorf("failed to load schedule: %w", err)
			}

			if err := export.WriteScheduleFile(out, view.Assignments, view.MemberNames, view.ServiceTypeNames); err != nil {
				return fmt.Errorf("failed to export schedule: %w", err)
			}

			fmt.Printf("\n✅ Exported %d assignments to %s\n", len(view.Assignments), out)
			return nil
		},
	}

	cmd.Flags().String("org", "", "Organization id (defaults to defaultOrgID from config)")
	cmd.Flags().String("from", "", "Range start (YYYY-MM-DD, inclusive)")
	cmd.Flags().String("to", "", "Range end (YYYY-MM-DD, inclusive)")
	cmd.Flags().String("out", "schedule.xlsx", "Output file path")

	return cmd
}
