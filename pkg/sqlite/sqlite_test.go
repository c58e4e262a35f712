package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chapeltools/rota-admin/pkg/db"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "rota_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func seedDirectory(t *testing.T, d *DB) {
	t.Helper()
	ctx := context.Background()
	stmts := []struct {
		query string
		args  []any
	}{
		{`INSERT INTO org (id, name) VALUES (?, ?)`, []any{"org-1", "Oak Chapel"}},
		{`INSERT INTO member (id, org_id, name, status) VALUES (?, ?, ?, ?)`, []any{"m-1", "org-1", "Bea", "active"}},
		{`INSERT INTO member (id, org_id, name, status) VALUES (?, ?, ?, ?)`, []any{"m-2", "org-1", "Alan", "active"}},
		{`INSERT INTO member (id, org_id, name, status) VALUES (?, ?, ?, ?)`, []any{"m-3", "org-1", "Cal", "inactive"}},
		{`INSERT INTO service_type (id, org_id, name) VALUES (?, ?, ?)`, []any{"st-1", "org-1", "Greeting"}},
	}
	for _, s := range stmts {
		_, err := d.conn.ExecContext(ctx, s.query, s.args...)
		require.NoError(t, err)
	}
}

func TestGetActiveMembers_FiltersStatusAndSortsByName(t *testing.T) {
	d := openTestDB(t)
	seedDirectory(t, d)

	members, err := d.GetActiveMembers(context.Background(), "org-1")

	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Alan", members[0].Name)
	assert.Equal(t, "Bea", members[1].Name)
}

func TestInsertServiceAssignments_RoundTrip(t *testing.T) {
	d := openTestDB(t)
	seedDirectory(t, d)

	batch := []db.ServiceAssignment{
		{ID: "a-1", OrgID: "org-1", ServiceTypeID: "st-1", MemberID: "m-1", ServiceDate: "2025-01-12", Status: "scheduled"},
		{ID: "a-2", OrgID: "org-1", ServiceTypeID: "st-1", MemberID: "m-2", ServiceDate: "2025-01-05", Status: "scheduled"},
	}
	require.NoError(t, d.InsertServiceAssignments(context.Background(), batch))

	assignments, err := d.GetServiceAssignments(context.Background(), "org-1")

	require.NoError(t, err)
	require.Len(t, assignments, 2)
	// Ordered by service date
	assert.Equal(t, "a-2", assignments[0].ID)
	assert.Equal(t, "a-1", assignments[1].ID)
}

func TestInsertServiceAssignments_BatchIsAllOrNothing(t *testing.T) {
	d := openTestDB(t)
	seedDirectory(t, d)

	// Second row collides with the first on primary key: the whole batch
	// must roll back
	batch := []db.ServiceAssignment{
		{ID: "a-1", OrgID: "org-1", ServiceTypeID: "st-1", MemberID: "m-1", ServiceDate: "2025-01-05", Status: "scheduled"},
		{ID: "a-1", OrgID: "org-1", ServiceTypeID: "st-1", MemberID: "m-2", ServiceDate: "2025-01-12", Status: "scheduled"},
	}
	err := d.InsertServiceAssignments(context.Background(), batch)
	require.Error(t, err)

	assignments, err := d.GetServiceAssignments(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestInsertServiceAssignments_EmptyBatchIsNoOp(t *testing.T) {
	d := openTestDB(t)

	require.NoError(t, d.InsertServiceAssignments(context.Background(), nil))
}

func TestGetServiceTypes_ScopedToOrg(t *testing.T) {
	d := openTestDB(t)
	seedDirectory(t, d)

	serviceTypes, err := d.GetServiceTypes(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, serviceTypes, 1)
	assert.Equal(t, "Greeting", serviceTypes[0].Name)

	other, err := d.GetServiceTypes(context.Background(), "org-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
