package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chapeltools/rota-admin/pkg/db"
)

// mockLeaveStore implements LeaveStore for testing
type mockLeaveStore struct {
	members  []db.Member
	requests []db.LeaveRequest
}

func (m *mockLeaveStore) GetActiveMembers(ctx context.Context, orgID string) ([]db.Member, error) {
	return m.members, nil
}

func (m *mockLeaveStore) GetLeaveRequests(ctx context.Context, orgID string) ([]db.LeaveRequest, error) {
	return m.requests, nil
}

func TestLeaveBalance_ResolvesMemberAndComputes(t *testing.T) {
	store := &mockLeaveStore{
		members: []db.Member{{ID: "m-1", Name: "Alice", Status: "active"}},
		requests: []db.LeaveRequest{
			{ID: "r-1", MemberID: "m-1", LeaveType: "annual", StartDate: "2025-02-03", EndDate: "2025-02-05", Status: db.LeaveApproved},
		},
	}

	result, err := LeaveBalance(context.Background(), store, zap.NewNop(), "org-1", "m-1", "annual", 25, "2025-06-30")

	require.NoError(t, err)
	assert.Equal(t, "Alice", result.MemberName)
	assert.Equal(t, 3, result.Balance.UsedDays)
	assert.Equal(t, 22, result.Balance.RemainingDays)
}

func TestLeaveBalance_UnknownMemberIsValidationError(t *testing.T) {
	store := &mockLeaveStore{}

	_, err := LeaveBalance(context.Background(), store, zap.NewNop(), "org-1", "m-404", "annual", 25, "2025-06-30")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "member", vErr.Field)
}

func TestLeaveBalance_NegativeEntitlementRejected(t *testing.T) {
	_, err := LeaveBalance(context.Background(), &mockLeaveStore{}, zap.NewNop(), "org-1", "m-1", "annual", -1, "2025-06-30")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "entitledDays", vErr.Field)
}
