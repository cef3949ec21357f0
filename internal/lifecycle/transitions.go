// Package lifecycle holds the application state machine and decides who may
// move an application between states. It has no storage dependencies.
package lifecycle

import (
	"freelance_backend/internal/models"
	"freelance_backend/pkg/apperrors"
)

// Action is a caller-triggered transition.
type Action string

const (
	ActionShortlist Action = "shortlist"
	ActionAccept    Action = "accept"
	ActionReject    Action = "reject"
	ActionWithdraw  Action = "withdraw"
)

type party int

const (
	owningClient party = iota
	owningFreelancer
)

type rule struct {
	to       models.ApplicationStatus
	party    party
	feedback bool
}

var rules = map[Action]rule{
	ActionShortlist: {to: models.ApplicationStatusShortlisted, party: owningClient},
	ActionAccept:    {to: models.ApplicationStatusAccepted, party: owningClient, feedback: true},
	ActionReject:    {to: models.ApplicationStatusRejected, party: owningClient, feedback: true},
	ActionWithdraw:  {to: models.ApplicationStatusWithdrawn, party: owningFreelancer},
}

// ValidTransitions lists every legal from -> to pair. Terminal states have no entry.
var ValidTransitions = map[models.ApplicationStatus][]models.ApplicationStatus{
	models.ApplicationStatusPending: {
		models.ApplicationStatusShortlisted,
		models.ApplicationStatusAccepted,
		models.ApplicationStatusRejected,
		models.ApplicationStatusWithdrawn,
	},
	models.ApplicationStatusShortlisted: {
		models.ApplicationStatusAccepted,
		models.ApplicationStatusRejected,
		models.ApplicationStatusWithdrawn,
	},
}

// CanTransition reports whether from -> to is in the transition table.
func CanTransition(from, to models.ApplicationStatus) bool {
	for _, s := range ValidTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ActionForOutcome maps a decision outcome to its action.
func ActionForOutcome(outcome models.ApplicationStatus) (Action, bool) {
	switch outcome {
	case models.ApplicationStatusAccepted:
		return ActionAccept, true
	case models.ApplicationStatusRejected:
		return ActionReject, true
	}
	return "", false
}

// Target returns the status an action moves to. Unknown actions return "".
func Target(action Action) models.ApplicationStatus {
	return rules[action].to
}

// RequiresFeedback reports whether the action must carry non-empty feedback.
func RequiresFeedback(action Action) bool {
	return rules[action].feedback
}

// Check validates that action may be applied to an application in current.
func Check(action Action, current models.ApplicationStatus) error {
	r, ok := rules[action]
	if !ok || !CanTransition(current, r.to) {
		return apperrors.ErrInvalidTransition.WithDetails(map[string]string{
			"from":   string(current),
			"to":     string(r.to),
			"action": string(action),
		})
	}
	return nil
}

// Actor is the authenticated caller attempting a transition.
type Actor struct {
	ID   string
	Role models.UserRole
}

// Parties are the owners an application is bound to.
type Parties struct {
	ClientID     string
	FreelancerID string
}

// Authorize decides whether actor may perform action on an application owned by parties.
// override is true when an admin acts on an application that is not theirs.
func Authorize(action Action, actor Actor, parties Parties) (override bool, err error) {
	r, ok := rules[action]
	if !ok {
		return false, apperrors.ErrInvalidTransition
	}

	owner := parties.ClientID
	ownerRole := models.UserRoleClient
	if r.party == owningFreelancer {
		owner = parties.FreelancerID
		ownerRole = models.UserRoleFreelancer
	}

	if actor.Role == models.UserRoleAdmin {
		return actor.ID != owner, nil
	}
	if actor.Role != ownerRole || actor.ID == "" || actor.ID != owner {
		return false, apperrors.ErrForbidden
	}
	return false, nil
}

// CanView reports whether actor may read an application owned by parties.
func CanView(actor Actor, parties Parties) bool {
	switch actor.Role {
	case models.UserRoleAdmin:
		return true
	case models.UserRoleClient:
		return actor.ID == parties.ClientID
	case models.UserRoleFreelancer:
		return actor.ID == parties.FreelancerID
	}
	return false
}
