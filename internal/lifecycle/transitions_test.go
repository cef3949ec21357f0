package lifecycle

import (
	"testing"

	"freelance_backend/internal/models"
	"freelance_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	valid := []struct {
		from, to models.ApplicationStatus
	}{
		{models.ApplicationStatusPending, models.ApplicationStatusShortlisted},
		{models.ApplicationStatusPending, models.ApplicationStatusAccepted},
		{models.ApplicationStatusPending, models.ApplicationStatusRejected},
		{models.ApplicationStatusPending, models.ApplicationStatusWithdrawn},
		{models.ApplicationStatusShortlisted, models.ApplicationStatusAccepted},
		{models.ApplicationStatusShortlisted, models.ApplicationStatusRejected},
		{models.ApplicationStatusShortlisted, models.ApplicationStatusWithdrawn},
	}
	for _, tc := range valid {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	allowed := make(map[[2]models.ApplicationStatus]bool)
	for _, tc := range valid {
		allowed[[2]models.ApplicationStatus{tc.from, tc.to}] = true
	}

	// Every pair outside the table is rejected, including self transitions.
	for _, from := range models.AllApplicationStatuses {
		for _, to := range models.AllApplicationStatuses {
			if allowed[[2]models.ApplicationStatus{from, to}] {
				continue
			}
			assert.False(t, CanTransition(from, to), "%s -> %s should be rejected", from, to)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, s := range models.AllApplicationStatuses {
		if s.IsTerminal() {
			assert.Empty(t, ValidTransitions[s], s)
		}
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		action  Action
		current models.ApplicationStatus
		wantErr bool
	}{
		{"shortlist pending", ActionShortlist, models.ApplicationStatusPending, false},
		{"shortlist twice", ActionShortlist, models.ApplicationStatusShortlisted, true},
		{"accept shortlisted", ActionAccept, models.ApplicationStatusShortlisted, false},
		{"accept rejected", ActionAccept, models.ApplicationStatusRejected, true},
		{"reject accepted", ActionReject, models.ApplicationStatusAccepted, true},
		{"withdraw shortlisted", ActionWithdraw, models.ApplicationStatusShortlisted, false},
		{"withdraw withdrawn", ActionWithdraw, models.ApplicationStatusWithdrawn, true},
		{"unknown action", Action("reopen"), models.ApplicationStatusWithdrawn, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.action, tt.current)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequiresFeedback(t *testing.T) {
	assert.True(t, RequiresFeedback(ActionAccept))
	assert.True(t, RequiresFeedback(ActionReject))
	assert.False(t, RequiresFeedback(ActionShortlist))
	assert.False(t, RequiresFeedback(ActionWithdraw))
}

func TestActionForOutcome(t *testing.T) {
	a, ok := ActionForOutcome(models.ApplicationStatusAccepted)
	assert.True(t, ok)
	assert.Equal(t, ActionAccept, a)

	a, ok = ActionForOutcome(models.ApplicationStatusRejected)
	assert.True(t, ok)
	assert.Equal(t, ActionReject, a)

	_, ok = ActionForOutcome(models.ApplicationStatusWithdrawn)
	assert.False(t, ok)
}

func TestAuthorize(t *testing.T) {
	parties := Parties{ClientID: "client-1", FreelancerID: "freelancer-1"}

	tests := []struct {
		name         string
		action       Action
		actor        Actor
		wantErr      error
		wantOverride bool
	}{
		{"owner client shortlists", ActionShortlist, Actor{"client-1", models.UserRoleClient}, nil, false},
		{"other client shortlists", ActionShortlist, Actor{"client-2", models.UserRoleClient}, apperrors.ErrForbidden, false},
		{"freelancer cannot decide own application", ActionAccept, Actor{"freelancer-1", models.UserRoleFreelancer}, apperrors.ErrForbidden, false},
		{"admin decides", ActionReject, Actor{"admin-1", models.UserRoleAdmin}, nil, true},
		{"owner freelancer withdraws", ActionWithdraw, Actor{"freelancer-1", models.UserRoleFreelancer}, nil, false},
		{"other freelancer withdraws", ActionWithdraw, Actor{"freelancer-2", models.UserRoleFreelancer}, apperrors.ErrForbidden, false},
		{"owning client cannot withdraw", ActionWithdraw, Actor{"client-1", models.UserRoleClient}, apperrors.ErrForbidden, false},
		{"admin withdraws", ActionWithdraw, Actor{"admin-1", models.UserRoleAdmin}, nil, true},
		{"same id wrong role", ActionShortlist, Actor{"client-1", models.UserRoleFreelancer}, apperrors.ErrForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			override, err := Authorize(tt.action, tt.actor, parties)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOverride, override)
		})
	}
}

func TestCanView(t *testing.T) {
	parties := Parties{ClientID: "client-1", FreelancerID: "freelancer-1"}

	assert.True(t, CanView(Actor{"client-1", models.UserRoleClient}, parties))
	assert.True(t, CanView(Actor{"freelancer-1", models.UserRoleFreelancer}, parties))
	assert.True(t, CanView(Actor{"anyone", models.UserRoleAdmin}, parties))
	assert.False(t, CanView(Actor{"client-2", models.UserRoleClient}, parties))
	assert.False(t, CanView(Actor{"freelancer-2", models.UserRoleFreelancer}, parties))
}
