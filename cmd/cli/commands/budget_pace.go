package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chapeltools/rota-admin/pkg/core/services"
)

// BudgetPaceCmd creates the budgetPace command
func BudgetPaceCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgetPace",
		Short: "Compare spend in a budget category against its linear pace",
		RunE: func(cmd *cobra.Command, args []string) error {
			org, _ := cmd.Flags().GetString("org")
			category, _ := cmd.Flags().GetString("category")
			asOf, _ := cmd.Flags().GetString("as-of")

			orgID, err := app.resolveOrg(org)
			if err != nil {
				return err
			}
			if asOf == "" {
				asOf = time.Now().UTC().Format("2006-01-02")
			}

			app.Logger.Debug("budgetPace command",
				zap.String("org_id", orgID), zap.String("category", category), zap.String("as_of", asOf))

			pace, err := services.BudgetPace(app.Ctx, app.Database, app.Logger, orgID, category, asOf)
			if err != nil {
				return fmt.Errorf("failed to compute budget pace: %w", err)
			}

			fmt.Printf("\n💰 Budget Pace — %s (as of %s)\n\n", pace.Category, asOf)
			fmt.Printf("Budget:   %s\n", formatCents(pace.BudgetCents))
			fmt.Printf("Spent:    %s\n", formatCents(pace.SpentCents))
			fmt.Printf("Expected: %s\n", formatCents(pace.ExpectedCents))
			if pace.VarianceCents > 0 {
				fmt.Printf("Variance: %s over pace\n", formatCents(pace.VarianceCents))
			} else {
				fmt.Printf("Variance: %s under pace\n", formatCents(-pace.VarianceCents))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("org", "", "Organization id (defaults to defaultOrgID from config)")
	cmd.Flags().String("category", "", "Budget category (required)")
	cmd.Flags().String("as-of", "", "Comparison date (defaults to today)")
	cmd.MarkFlagRequired("category")

	return cmd
}

// formatCents renders a cent amount as a decimal currency string
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
