package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/chapeltools/rota-admin/pkg/db"
)

// ScheduleView holds assignments together with the lookup tables the
// caller needs to render names instead of ids.
type ScheduleView struct {
	Assignments      []db.ServiceAssignment
	MemberNames      map[string]string
	ServiceTypeNames map[string]string
}

// ViewScheduleStore defines the database operations needed to view a schedule
type ViewScheduleStore interface {
	GetServiceTypes(ctx context.Context, orgID string) ([]db.ServiceType, error)
	GetActiveMembers(ctx context.Context, orgID string) ([]db.Member, error)
	GetServiceAssignments(ctx context.Context, orgID string) ([]db.ServiceAssignment, error)
}

// ViewSchedule fetches the org's assignments, optionally filtered to the
// inclusive [from, to] date range, sorted by service date. Empty from/to
// leave that side of the range open.
func ViewSchedule(ctx context.Context, store ViewScheduleStore, logger *zap.Logger, orgID, from, to string) (*ScheduleView, error) {
	if orgID == "" {
		return nil, validationErr("org", "organization id is required")
	}
	if err := checkRange(from, to); err != nil {
		return nil, err
	}

	logger.Debug("Viewing schedule",
		zap.String("org_id", orgID),
		zap.String("from", from),
		zap.String("to", to))

	assignments, err := store.GetServiceAssignments(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	filtered := make([]db.ServiceAssignment, 0, len(assignments))
	for _, a := range assignments {
		if from != "" && a.ServiceDate < from {
			continue
		}
		if to != "" && a.ServiceDate > to {
			continue
		}
		filtered = append(filtered, a)
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].ServiceDate < filtered[j].ServiceDate
	})

	members, err := store.GetActiveMembers(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}
	serviceTypes, err := store.GetServiceTypes(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service types: %w", err)
	}

	view := &ScheduleView{
		Assignments:      filtered,
		MemberNames:      make(map[string]string, len(members)),
		ServiceTypeNames: make(map[string]string, len(serviceTypes)),
	}
	for _, m := range members {
		view.MemberNames[m.ID] = m.Name
	}
	for _, st := range serviceTypes {
		view.ServiceTypeNames[st.ID] = st.Name
	}

	logger.Debug("Schedule view built", zap.Int("assignment_count", len(filtered)))
	return view, nil
}

// checkRange validates the optional date range bounds
func checkRange(from, to string) error {
	if from != "" {
		if _, err := time.Parse("2006-01-02", from); err != nil {
			return validationErr("from", "invalid date %q", from)
		}
	}
	if to != "" {
		if _, err := time.Parse("2006-01-02", to); err != nil {
			return validationErr("to", "invalid date %q", to)
		}
	}
	return nil
}
