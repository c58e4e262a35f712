package postgres

import (
	"context"
	"fmt"

	"github.com/chapeltools/rota-admin/pkg/db"
)

// GetServiceAssignments retrieves all assignment records for an org
func (d *DB) GetServiceAssignments(ctx context.Context, orgID string) ([]db.ServiceAssignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, org_id, service_type_id, member_id, to_char(service_date, 'YYYY-MM-DD'), status
		FROM service_assignment
		WHERE org_id = $1
		ORDER BY service_date
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

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO service_assignment (id, org_id, service_type_id, member_id, service_date, status)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, a.ID, a.OrgID, a.ServiceTypeID, a.MemberID, a.ServiceDate, a.Status)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
