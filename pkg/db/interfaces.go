package db

import "context"

// Database defines the interface for all database operations.
// Both the postgres.DB and sqlite.DB backends implement this interface.
type Database interface {
	GetServiceTypes(ctx context.Context, orgID string) ([]ServiceType, error)
	GetActiveMembers(ctx context.Context, orgID string) ([]Member, error)
	GetServiceAssignments(ctx context.Context, orgID string) ([]ServiceAssignment, error)
	InsertServiceAssignments(ctx context.Context, assignments []ServiceAssignment) error
	GetLeaveRequests(ctx context.Context, orgID string) ([]LeaveRequest, error)
	GetBudgets(ctx context.Context, orgID string) ([]Budget, error)
	GetTransactions(ctx context.Context, orgID string) ([]Transaction, error)
}
