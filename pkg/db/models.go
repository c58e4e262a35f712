package db

// Org represents an organization (tenant) record
type Org struct {
	ID   string
	Name string
}

// Member represents a schedulable person within an org
type Member struct {
	ID     string
	OrgID  string
	Name   string
	Status string
}

// ServiceType represents a category of duty being scheduled (e.g. "sermon", "greeting")
type ServiceType struct {
	ID    string
	OrgID string
	Name  string
}

// ServiceAssignment represents one persisted scheduling record.
// Rows are independent: no uniqueness or overlap constraint is enforced
// across repeated batch runs.
type ServiceAssignment struct {
	ID            string
	OrgID         string
	ServiceTypeID string
	MemberID      string
	ServiceDate   string
	Status        string
}

// StatusScheduled is the default status for newly committed assignments
const StatusScheduled = "scheduled"

// LeaveRequest represents a leave request record
type LeaveRequest struct {
	ID        string
	OrgID     string
	MemberID  string
	LeaveType string
	StartDate string
	EndDate   string
	Status    string
}

// Leave request statuses
const (
	LeaveApproved = "approved"
	LeavePending  = "pending"
	LeaveRejected = "rejected"
)

// Budget represents a budget line for a category over a period
type Budget struct {
	ID          string
	OrgID       string
	Category    string
	PeriodStart string
	PeriodEnd   string
	AmountCents int64
}

// Transaction represents a financial transaction record
type Transaction struct {
	ID          string
	OrgID       string
	Category    string
	TxDate      string
	AmountCents int64
	Memo        string
}
