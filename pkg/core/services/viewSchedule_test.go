package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chapeltools/rota-admin/pkg/db"
)

// mockViewStore implements ViewScheduleStore for testing
type mockViewStore struct {
	serviceTypes []db.ServiceType
	members      []db.Member
	assignments  []db.ServiceAssignment
	getErr       error
}

func (m *mockViewStore) GetServiceTypes(ctx context.Context, orgID string) ([]db.ServiceType, error) {
	return m.serviceTypes, nil
}

func (m *mockViewStore) GetActiveMembers(ctx context.Context, orgID string) ([]db.Member, error) {
	return m.members, nil
}

func (m *mockViewStore) GetServiceAssignments(ctx context.Context, orgID string) ([]db.ServiceAssignment, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.assignments, nil
}

func TestViewSchedule_FiltersRangeAndSortsByDate(t *testing.T) {
	store := &mockViewStore{
		serviceTypes: []db.ServiceType{{ID: "st-1", Name: "Greeting"}},
		members:      []db.Member{{ID: "m-1", Name: "Alice"}},
		assignments: []db.ServiceAssignment{
			{ID: "a-3", ServiceDate: "2025-02-10", MemberID: "m-1", ServiceTypeID: "st-1"},
			{ID: "a-1", ServiceDate: "2025-01-05", MemberID: "m-1", ServiceTypeID: "st-1"},
			{ID: "a-2", ServiceDate: "2025-01-19", MemberID: "m-1", ServiceTypeID: "st-1"},
		},
	}

	view, err := ViewSchedule(context.Background(), store, zap.NewNop(), "org-1", "2025-01-01", "2025-01-31")

	require.NoError(t, err)
	require.Len(t, view.Assignments, 2)
	assert.Equal(t, "a-1", view.Assignments[0].ID)
	assert.Equal(t, "a-2", view.Assignments[1].ID)
	assert.Equal(t, "Alice", view.MemberNames["m-1"])
	assert.Equal(t, "Greeting", view.ServiceTypeNames["st-1"])
}

func TestViewSchedule_OpenRangeReturnsEverything(t *testing.T) {
	store := &mockViewStore{
		assignments: []db.ServiceAssignment{
			{ID: "a-1", ServiceDate: "2025-01-05"},
			{ID: "a-2", ServiceDate: "2026-06-30"},
		},
	}

	view, err := ViewSchedule(context.Background(), store, zap.NewNop(), "org-1", "", "")

	require.NoError(t, err)
	assert.Len(t, view.Assignments, 2)
}

func TestViewSchedule_RejectsBadRangeBounds(t *testing.T) {
	store := &mockViewStore{}

	_, err := ViewSchedule(context.Background(), store, zap.NewNop(), "org-1", "last tuesday", "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "from", vErr.Field)

	_, err = ViewSchedule(context.Background(), store, zap.NewNop(), "org-1", "", "2025/01/01")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "to", vErr.Field)
}

func TestViewSchedule_RequiresOrg(t *testing.T) {
	_, err := ViewSchedule(context.Background(), &mockViewStore{}, zap.NewNop(), "", "", "")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "org", vErr.Field)
}
