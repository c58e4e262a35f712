package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/chapeltools/rota-admin/pkg/core/leave"
	"github.com/chapeltools/rota-admin/pkg/db"
)

// LeaveStore defines the database operations needed for leave balances
type LeaveStore interface {
	GetActiveMembers(ctx context.Context, orgID string) ([]db.Member, error)
	GetLeaveRequests(ctx context.Context, orgID string) ([]db.LeaveRequest, error)
}

// LeaveBalanceResult pairs a computed balance with the member's display name
type LeaveBalanceResult struct {
	MemberName string
	Balance    *leave.Balance
}

// LeaveBalance fetches the org's leave requests and computes one member's
// balance for a leave type as of the given date.
func LeaveBalance(ctx context.Context, store LeaveStore, logger *zap.Logger, orgID, memberID, leaveType string, entitledDays int, asOf string) (*LeaveBalanceResult, error) {
	if orgID == "" {
		return nil, validationErr("org", "organization id is required")
	}
	if memberID == "" {
		return nil, validationErr("member", "member id is required")
	}
	if entitledDays < 0 {
		return nil, validationErr("entitledDays", "entitlement must not be negative, got %d", entitledDays)
	}

	logger.Debug("Computing leave balance",
		zap.String("org_id", orgID),
		zap.String("member_id", memberID),
		zap.String("leave_type", leaveType))

	members, err := store.GetActiveMembers(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}
	memberName := ""
	for _, m := range members {
		if m.ID == memberID {
			memberName = m.Name
			break
		}
	}
	if memberName == "" {
		return nil, validationErr("member", "unknown member %q", memberID)
	}

	requests, err := store.GetLeaveRequests(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leave requests: %w", err)
	}

	balance, err := leave.Compute(requests, memberID, leaveType, entitledDays, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to compute leave balance: %w", err)
	}

	return &LeaveBalanceResult{MemberName: memberName, Balance: balance}, nil
}
