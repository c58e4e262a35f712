package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chapeltools/rota-admin/pkg/core/services"
)

// LeaveBalanceCmd creates the leaveBalance command
func LeaveBalanceCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaveBalance",
		Short: "Show a member's leave balance for a leave type",
		RunE: func(cmd *cobra.Command, args []string) error {
			org, _ := cmd.Flags().GetString("org")
			member, _ := cmd.Flags().GetString("member")
			leaveType, _ := cmd.Flags().GetString("type")
			entitled, _ := cmd.Flags().GetInt("entitled")
			asOf, _ := cmd.Flags().GetString("as-of")

			orgID, err := app.resolveOrg(org)
			if err != nil {
				return err
			}
			if asOf == "" {
				asOf = time.Now().UTC().Format("2006-01-02")
			}

			app.Logger.Debug("leaveBalance command",
				zap.String("org_id", orgID), zap.String("member_id", member), zap.String("leave_type", leaveType))

			result, err := services.LeaveBalance(app.Ctx, app.Database, app.Logger, orgID, member, leaveType, entitled, asOf)
			if err != nil {
				return fmt.Errorf("failed to compute leave balance: %w", err)
			}

			b := result.Balance
			fmt.Printf("\n🌴 Leave Balance — %s (%s)\n\n", result.MemberName, b.LeaveType)
			fmt.Printf("Entitled:  %d days\n", b.EntitledDays)
			fmt.Printf("Used:      %d days (as of %s)\n", b.UsedDays, asOf)
			fmt.Printf("Pending:   %d days\n", b.PendingDays)
			fmt.Printf("Remaining: %d days\n", b.RemainingDays)
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("org", "", "Organization id (defaults to defaultOrgID from config)")
	cmd.Flags().String("member", "", "Member id (required)")
	cmd.Flags().String("type", "annual", "Leave type")
	cmd.Flags().Int("entitled", 0, "Entitled days for the period (required)")
	cmd.Flags().String("as-of", "", "Balance date (defaults to today)")
	cmd.MarkFlagRequired("member")
	cmd.MarkFlagRequired("entitled")

	return cmd
}
