package models

type UserRole string
type JobStatus string
type ApplicationStatus string

const (
	UserRoleFreelancer UserRole = "FREELANCER"
	UserRoleClient     UserRole = "CLIENT"
	UserRoleAdmin      UserRole = "ADMIN"

	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"

	ApplicationStatusPending     ApplicationStatus = "PENDING"
	ApplicationStatusShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationStatusAccepted    ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn   ApplicationStatus = "WITHDRAWN"
)

// AllApplicationStatuses lists statuses in lifecycle order.
var AllApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusShortlisted,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
	ApplicationStatusWithdrawn,
}

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleFreelancer, UserRoleClient, UserRoleAdmin:
		return true
	}
	return false
}

func (s JobStatus) IsValid() bool {
	return s == JobStatusOpen || s == JobStatusClosed
}

func (s ApplicationStatus) IsValid() bool {
	for _, st := range AllApplicationStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition may leave s.
func (s ApplicationStatus) IsTerminal() bool {
	switch s {
	case ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// IsDecision reports whether s is an outcome a client may decide on.
func (s ApplicationStatus) IsDecision() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}
