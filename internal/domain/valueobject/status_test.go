package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []CollaborationStatus{
	CollaborationStatusSubmitted,
	CollaborationStatusNegotiation,
	CollaborationStatusAccepted,
	CollaborationStatusCompleted,
	CollaborationStatusRejected,
	CollaborationStatusCanceled,
}

var allRoles = []ActorRole{ActorRoleOrganization, ActorRoleSponsor}

var allActions = map[Action]bool{
	ActionEdit:      true,
	ActionAccept:    true,
	ActionReject:    true,
	ActionNegotiate: true,
	ActionComplete:  true,
	ActionCancel:    true,
}

func TestAvailableActions_TotalOverAllPairs(t *testing.T) {
	for _, status := range allStatuses {
		for _, role := range allRoles {
			actions := AvailableActions(status, role)
			for _, a := range actions {
				assert.True(t, allActions[a], "nieznana akcja %q dla pary (%s, %s)", a, status, role)
			}
		}
	}
}

func TestAvailableActions_UnknownPairsReturnEmpty(t *testing.T) {
	assert.Empty(t, AvailableActions(CollaborationStatus("draft"), ActorRoleSponsor))
	assert.Empty(t, AvailableActions(CollaborationStatusSubmitted, ActorRole("freelancer")))
}

func TestAvailableActions_TerminalStatusesHaveNoActions(t *testing.T) {
	for _, status := range []CollaborationStatus{CollaborationStatusCompleted, CollaborationStatusRejected, CollaborationStatusCanceled} {
		require.True(t, status.IsTerminal())
		for _, role := range allRoles {
			assert.Empty(t, AvailableActions(status, role), "status %s powinien być końcowy", status)
		}
	}
}

func TestAvailableActions_SubmittedOnlyOrganizationCanAccept(t *testing.T) {
	assert.True(t, CanPerform(CollaborationStatusSubmitted, ActorRoleOrganization, ActionAccept))
	assert.False(t, CanPerform(CollaborationStatusSubmitted, ActorRoleSponsor, ActionAccept))
}

func TestAvailableActions_NegotiationBothSidesCanAccept(t *testing.T) {
	for _, role := range allRoles {
		assert.True(t, CanPerform(CollaborationStatusNegotiation, role, ActionAccept))
		assert.True(t, CanPerform(CollaborationStatusNegotiation, role, ActionReject))
		assert.False(t, CanPerform(CollaborationStatusNegotiation, role, ActionNegotiate), "ponowne negotiate z negotiation to przejście w miejscu")
	}
}

func TestAvailableActions_AcceptedCompleteOnlyForOrganization(t *testing.T) {
	assert.True(t, CanPerform(CollaborationStatusAccepted, ActorRoleOrganization, ActionComplete))
	assert.False(t, CanPerform(CollaborationStatusAccepted, ActorRoleSponsor, ActionComplete))
	assert.True(t, CanPerform(CollaborationStatusAccepted, ActorRoleSponsor, ActionCancel))
	assert.False(t, CanPerform(CollaborationStatusAccepted, ActorRoleOrganization, ActionEdit))
}

func TestAvailableActions_ReturnsCopy(t *testing.T) {
	first := AvailableActions(CollaborationStatusSubmitted, ActorRoleOrganization)
	require.NotEmpty(t, first)
	first[0] = Action("zmutowana")

	second := AvailableActions(CollaborationStatusSubmitted, ActorRoleOrganization)
	assert.NotEqual(t, first[0], second[0])
}

func TestActionForStatus(t *testing.T) {
	cases := []struct {
		target CollaborationStatus
		want   Action
	}{
		{CollaborationStatusNegotiation, ActionNegotiate},
		{CollaborationStatusAccepted, ActionAccept},
		{CollaborationStatusRejected, ActionReject},
		{CollaborationStatusCompleted, ActionComplete},
		{CollaborationStatusCanceled, ActionCancel},
	}

	for _, tc := range cases {
		got, err := ActionForStatus(tc.target)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := ActionForStatus(CollaborationStatusSubmitted)
	assert.Error(t, err, "submitted nadawany jest tylko przy tworzeniu")
}

func TestActionTargetStatus_EditDoesNotChangeStatus(t *testing.T) {
	_, ok := ActionEdit.TargetStatus()
	assert.False(t, ok)

	target, ok := ActionAccept.TargetStatus()
	require.True(t, ok)
	assert.Equal(t, CollaborationStatusAccepted, target)
}

func TestNewCollaborationStatus(t *testing.T) {
	status, err := NewCollaborationStatus("negotiation")
	require.NoError(t, err)
	assert.Equal(t, CollaborationStatusNegotiation, status)

	_, err = NewCollaborationStatus("pending")
	assert.Error(t, err)
}

func TestNewActorRole(t *testing.T) {
	role, err := NewActorRole("sponsor")
	require.NoError(t, err)
	assert.Equal(t, ActorRoleSponsor, role)

	_, err = NewActorRole("admin")
	assert.Error(t, err)
}
