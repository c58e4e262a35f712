package postgres

import (
	"context"
	"fmt"

	"github.com/chapeltools/rota-admin/pkg/db"
)

// GetLeaveRequests retrieves all leave request records for an org
func (d *DB) GetLeaveRequests(ctx context.Context, orgID string) ([]db.LeaveRequest, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, org_id, member_id, leave_type,
		       to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), status
		FROM leave_request
		WHERE org_id = $1
		ORDER BY start_date
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
