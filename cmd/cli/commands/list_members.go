package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListMembersCmd creates the listMembers command
func ListMembersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listMembers",
		Short: "List the organization's active members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			org, _ := cmd.Flags().GetString("org")
			orgID, err := app.resolveOrg(org)
			if err != nil {
				return err
			}

			members, err := app.Database.GetActiveMembers(app.Ctx, orgID)
			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}

			fmt.Printf("\nFound %d active members:\n\n", len(members))
			for _, m := range members {
				fmt.Printf("- %s (%s)\n", m.Name, m.ID)
			}

			return nil
		},
	}

	cmd.Flags().String("org", "", "Organization id (defaults to defaultOrgID from config)")

	return cmd
}
