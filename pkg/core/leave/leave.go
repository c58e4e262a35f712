// Package leave computes leave balances from already-fetched request rows.
package leave

import (
	"fmt"
	"time"

	"github.com/chapeltools/rota-admin/pkg/db"
)

const dateLayout = "2006-01-02"

// Balance summarizes a member's position against their entitlement for
// one leave type, as of a given date.
type Balance struct {
	MemberID      string
	LeaveType     string
	EntitledDays  int
	UsedDays      int
	PendingDays   int
	RemainingDays int
}

// Compute sums the day spans of the member's requests of the given type.
// Approved requests whose span starts on or before asOf count as used;
// pending requests are reported separately and do not reduce the
// remaining balance. Day spans are inclusive of both endpoints.
func Compute(requests []db.LeaveRequest, memberID, leaveType string, entitledDays int, asOf string) (*Balance, error) {
	asOfDate, err := time.Parse(dateLayout, asOf)
	if err != nil {
		return nil, fmt.Errorf("invalid as-of date %q: %w", asOf, err)
	}

	balance := &Balance{
		MemberID:     memberID,
		LeaveType:    leaveType,
		EntitledDays: entitledDays,
	}

	for _, req := range requests {
		if req.MemberID != memberID || req.LeaveType != leaveType {
			continue
		}

		days, err := spanDays(req.StartDate, req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("request %s has invalid dates: %w", req.ID, err)
		}

		switch req.Status {
		case db.LeaveApproved:
			start, _ := time.Parse(dateLayout, req.StartDate)
			if !start.After(asOfDate) {
				balance.UsedDays += days
			}
		case db.LeavePending:
			balance.PendingDays += days
		}
	}

	balance.RemainingDays = entitledDays - balance.UsedDays
	return balance, nil
}

// spanDays counts calendar days from start to end inclusive
func spanDays(start, end string) (int, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if endDate.Before(startDate) {
		return 0, fmt.Errorf("end date %s before start date %s", end, start)
	}
	return int(endDate.Sub(startDate).Hours()/24) + 1, nil
}
