package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/chapeltools/rota-admin/pkg/core/budget"
	"github.com/chapeltools/rota-admin/pkg/db"
)

// BudgetStore defines the database operations needed for pace comparisons
type BudgetStore interface {
	GetBudgets(ctx context.Context, orgID string) ([]db.Budget, error)
	GetTransactions(ctx context.Context, orgID string) ([]db.Transaction, error)
}

// BudgetPace finds the org's budget for a category and compares actual
// spend against its linear pace as of the given date.
func BudgetPace(ctx context.Context, store BudgetStore, logger *zap.Logger, orgID, category, asOf string) (*budget.Pace, error) {
	if orgID == "" {
		return nil, validationErr("org", "organization id is required")
	}
	if category == "" {
		return nil, validationErr("category", "budget category is required")
	}

	logger.Debug("Computing budget pace",
		zap.String("org_id", orgID),
		zap.String("category", category),
		zap.String("as_of", asOf))

	budgets, err := store.GetBudgets(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budgets: %w", err)
	}

	var match *db.Budget
	for i := range budgets {
		if strings.EqualFold(budgets[i].Category, category) {
			match = &budgets[i]
			break
		}
	}
	if match == nil {
		return nil, validationErr("category", "no budget found for category %q", category)
	}

	txs, err := store.GetTransactions(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	pace, err := budget.ComparePace(*match, txs, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to compare budget pace: %w", err)
	}
	return pace, nil
}
