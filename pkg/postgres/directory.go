package postgres

import (
	"context"
	"fmt"

	"github.com/chapeltools/rota-admin/pkg/db"
)

var _ db.Database = (*DB)(nil)

// GetServiceTypes retrieves all service types for an org, name-sorted
func (d *DB) GetServiceTypes(ctx context.Context, orgID string) ([]db.ServiceType, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, org_id, name
		FROM service_type
		WHERE org_id = $1
		ORDER BY name
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
	rows, err := d.pool.Query(ctx, `
		SELECT id, org_id, name, status
		FROM member
		WHERE org_id = $1 AND status = 'active'
		ORDER BY name
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
