package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListServiceTypesCmd creates the listServiceTypes command
func ListServiceTypesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listServiceTypes",
		Short: "List the organization's service types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			org, _ := cmd.Flags().GetString("org")
			orgID, err := app.resolveOrg(org)
			if err != nil {
				return err
			}

			serviceTypes, err := app.Database.GetServiceTypes(app.Ctx, orgID)
			if err != nil {
				return fmt.Errorf("failed to list service types: %w", err)
			}

			fmt.Printf("\nFound %d service types:\n\n", len(serviceTypes))
			for _, st := range serviceTypes {
				fmt.Printf("- %s (%s)\n", st.Name, st.ID)
			}

			return nil
		},
	}

	cmd.Flags().String("org", "", "Organization id (defaults to defaultOrgID from config)")

	return cmd
}
