package postgres

import (
	"context"
	"fmt"

	"github.com/chapeltools/rota-admin/pkg/db"
)

// GetBudgets retrieves all budget records for an org
func (d *DB) GetBudgets(ctx context.Context, orgID string) ([]db.Budget, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, org_id, category,
		       to_char(period_start, 'YYYY-MM-DD'), to_char(period_end, 'YYYY-MM-DD'), amount_cents
		FROM budget
		WHERE org_id = $1
		ORDER BY category
	`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	var budgets []db.Budget
	for rows.Next() {
		var b db.Budget
		if err := rows.Scan(&b.ID, &b.OrgID, &b.Category, &b.PeriodStart, &b.PeriodEnd, &b.AmountCents); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}

	return budgets, nil
}

// GetTransactions retrieves all transaction records for an org
func (d *DB) GetTransactions(ctx context.Context, orgID string) ([]db.Transaction, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, org_id, category, to_char(tx_date, 'YYYY-MM-DD'), amount_cents, memo
		FROM finance_transaction
		WHERE org_id = $1
		ORDER BY tx_date
	`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []db.Transaction
	for rows.Next() {
		var t db.Transaction
		if err := rows.Scan(&t.ID, &t.OrgID, &t.Category, &t.TxDate, &t.AmountCents, &t.Memo); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txs, nil
}
