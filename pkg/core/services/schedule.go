package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chapeltools/rota-admin/pkg/core/dateset"
	"github.com/chapeltools/rota-admin/pkg/core/rotation"
	"github.com/chapeltools/rota-admin/pkg/db"
)

// Date selection modes
const (
	ModeExplicit = "explicit"
	ModeWeekday  = "weekday"
)

// ScheduleParams is the full configuration for one batch generation run.
// It is rebuilt from scratch on every invocation; the preview is derived
// from it, never stored.
type ScheduleParams struct {
	OrgID       string
	ServiceType string // id or name, resolved against the directory
	Roster      []string

	Mode          string
	ExplicitDates []string // explicit mode: toggled dates, any order
	Weekday       int      // weekday mode: 0=Sunday..6=Saturday
	StartDate     string
	EndDate       string

	BlackoutRules []string
}

// SchedulePreview is the generated mapping shown for human review before
// commit. Assignments may be empty: "nothing to preview" is a valid state.
type SchedulePreview struct {
	OrgID       string
	ServiceType db.ServiceType
	DateSet     []string
	Assignments []rotation.Assignment
}

// ScheduleStore defines the database operations the scheduling workflow needs
type ScheduleStore interface {
	GetServiceTypes(ctx context.Context, orgID string) ([]db.ServiceType, error)
	GetActiveMembers(ctx context.Context, orgID string) ([]db.Member, error)
	InsertServiceAssignments(ctx context.Context, assignments []db.ServiceAssignment) error
}

// BuildSchedulePreview resolves the service type, builds the date set for
// the requested mode, and runs the rotation engine over the roster.
//
// A missing or unknown service type is a *ValidationError. An empty roster
// or empty date set is not: it produces an empty preview, and the commit
// gate rejects it there.
func BuildSchedulePreview(ctx context.Context, store ScheduleStore, logger *zap.Logger, params ScheduleParams) (*SchedulePreview, error) {
	if params.OrgID == "" {
		return nil, validationErr("org", "organization id is required")
	}
	if params.ServiceType == "" {
		return nil, validationErr("serviceType", "service type is required")
	}

	logger.Debug("Building schedule preview",
		zap.String("org_id", params.OrgID),
		zap.String("service_type", params.ServiceType),
		zap.String("mode", params.Mode),
		zap.Int("roster_size", len(params.Roster)))

	serviceTypes, err := store.GetServiceTypes(ctx, params.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service types: %w", err)
	}
	serviceType, ok := resolveServiceType(serviceTypes, params.ServiceType)
	if !ok {
		return nil, validationErr("serviceType", "unknown service type %q", params.ServiceType)
	}

	members, err := store.GetActiveMembers(ctx, params.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	dates, err := buildDateSet(params)
	if err != nil {
		return nil, err
	}
	dates = dateset.ApplyBlackouts(dates, params.BlackoutRules, logger)

	assignments := rotation.Compute(dates, params.Roster, names)

	logger.Debug("Schedule preview built",
		zap.String("service_type_id", serviceType.ID),
		zap.Int("date_count", len(dates)),
		zap.Int("assignment_count", len(assignments)))

	return &SchedulePreview{
		OrgID:       params.OrgID,
		ServiceType: serviceType,
		DateSet:     dates,
		Assignments: assignments,
	}, nil
}

// CommitSchedule converts a previewed mapping into assignment records and
// submits them as a single batch insert. All-or-nothing semantics come
// from the store's transaction, not from coordination here; a store error
// is wrapped and surfaced verbatim so the caller can stay on the preview.
func CommitSchedule(ctx context.Context, store ScheduleStore, logger *zap.Logger, preview *SchedulePreview) error {
	if preview == nil || len(preview.Assignments) == 0 {
		return validationErr("preview", "nothing to commit: date set or roster is empty")
	}
	if preview.OrgID == "" {
		return validationErr("org", "organization id is required")
	}
	if preview.ServiceType.ID == "" {
		return validationErr("serviceType", "service type is required")
	}

	records := make([]db.ServiceAssignment, len(preview.Assignments))
	for i, a := range preview.Assignments {
		records[i] = db.ServiceAssignment{
			ID:            uuid.New().String(),
			OrgID:         preview.OrgID,
			ServiceTypeID: preview.ServiceType.ID,
			MemberID:      a.MemberID,
			ServiceDate:   a.Date,
			Status:        db.StatusScheduled,
		}
	}

	logger.Info("Committing schedule batch",
		zap.String("org_id", preview.OrgID),
		zap.String("service_type_id", preview.ServiceType.ID),
		zap.Int("count", len(records)))

	if err := store.InsertServiceAssignments(ctx, records); err != nil {
		return fmt.Errorf("failed to commit assignments: %w", err)
	}

	logger.Info("Schedule batch committed", zap.Int("count", len(records)))
	return nil
}

// buildDateSet dispatches on the selection mode
func buildDateSet(params ScheduleParams) ([]string, error) {
	switch params.Mode {
	case ModeExplicit:
		dates, err := dateset.FromExplicit(params.ExplicitDates)
		if err != nil {
			return nil, validationErr("dates", "%v", err)
		}
		return dates, nil
	case ModeWeekday:
		dates, err := dateset.FromWeekdayRule(params.StartDate, params.EndDate, params.Weekday)
		if err != nil {
			return nil, validationErr("dates", "%v", err)
		}
		return dates, nil
	default:
		return nil, validationErr("mode", "unknown date selection mode %q", params.Mode)
	}
}

// resolveServiceType matches by id first, then case-insensitively by name
func resolveServiceType(serviceTypes []db.ServiceType, idOrName string) (db.ServiceType, bool) {
	for _, st := range serviceTypes {
		if st.ID == idOrName {
			return st, true
		}
	}
	for _, st := range serviceTypes {
		if strings.EqualFold(st.Name, idOrName) {
			return st, true
		}
	}
	return db.ServiceType{}, false
}
