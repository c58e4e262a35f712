package sqlite

import (
	"context"
	"fmt"

	"github.com/chapeltools/rota-admin/pkg/db"
)

// GetServiceTypes retrieves all service types for an org, name-sorted
func (d *DB) GetServiceTypes(ctx context.Context, orgID string) ([]db.ServiceType, error) {
	rows, err := d.conn.QueryContext(ctx, `
		SELECT id, org_id, name FROM service_type WHERE org_id = ? ORDER BY name
	`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to query service types: %w", err)
	}
	defer rows.Close()

	var serviceTypes []db.ServiceType
	for rows.Next() {
		var st db.ServiceType
		if err := rows.Scan(&st.ID, &st.OrgID, &st.Name); err != nil {
			return nil, fmt.Errorf("failed to scan service type: %w", err)
		}
		serviceTypes = append(serviceTypes, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service types: %w", err)
	}
	return serviceTypes, nil
}

// GetActiveMembers retrieves the org's active members, name-sorted
func (d *DB) GetActiveMembers(ctx context.Context, orgID string) ([]db.Member, error) {
	rows, err := d.conn.QueryContext(ctx, `
		SELECT id, org_id, name, status FROM member
		WHERE org_id = ? AND status = 'active' ORDER BY name
	`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	var members []db.Member
	for rows.Next() {
		var m db.Member
		if err := rows.Scan(&m.ID, &m.OrgID, &m.Name, &m.Status); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}
	return members, nil
}

// GetServiceAssignments retrieves all assignment records for an org
func (d *DB) GetServiceAssignments(ctx context.Context, orgID string) ([]db.ServiceAssignment, error) {
	rows, err := d.conn.QueryContext(ctx, `
		SELECT id, org_id, service_type_id, member_id, service_date, status
		FROM service_assignment WHERE org_id = ? ORDER BY service_date
	`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.ServiceAssignment
	for rows.Next() {
		var a db.ServiceAssignment
		if err := rows.Scan(&a.ID, &a.OrgID, &a.ServiceTypeID, &a.MemberID, &a.ServiceDate, &a.Status); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}
	return assignments, nil
}

// InsertServiceAssignments inserts a batch of assignment records in one
// transaction. Either every row lands or none does.
func (d *DB) InsertServiceAssignments(ctx context.Context, assignments []db.ServiceAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, a := range assignments {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO service_assignment (id, org_id, service_type_id, member_id, service_date, status)
			VALUES (?, ?, ?, ?, ?, ?)
		`, a.ID, a.OrgID, a.ServiceTypeID, a.MemberID, a.ServiceDate, a.Status)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetLeaveRequests retrieves all leave request records for an org
func (d *DB) GetLeaveRequests(ctx context.Context, orgID string) ([]db.LeaveRequest, error) {
	rows, err := d.conn.QueryContext(ctx, `
		SELECT id, org_id, member_id, leave_type, start_date, end_date, status
		FROM leave_request WHERE org_id = ? ORDER BY start_date
	`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []db.LeaveRequest
	for rows.Next() {
		var r db.LeaveRequest
		if err := rows.Scan(&r.ID, &r.OrgID, &r.MemberID, &r.LeaveType, &r.StartDate, &r.EndDate, &r.Status); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave requests: %w", err)
	}
	return requests, nil
}

// GetBudgets retrieves all budget records for an org
func (d *DB) GetBudgets(ctx context.Context, orgID string) ([]db.Budget, error) {
	rows, err := d.conn.QueryContext(ctx, `
		SELECT id, org_id, category, period_start, period_end, amount_cents
		FROM budget WHERE org_id = ? ORDER BY category
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
	rows, err := d.conn.QueryContext(ctx, `
		SELECT id, org_id, category, tx_date, amount_cents, memo
		FROM finance_transaction WHERE org_id = ? ORDER BY tx_date
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
