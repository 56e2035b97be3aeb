package collaboration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/valueobject"
	"github.com/sponsoring-app/sponsoring-backend/internal/pkg/apperror"
)

func newTestCollaboration(t *testing.T, status valueobject.CollaborationStatus) *entity.Collaboration {
	t.Helper()
	collab, err := entity.NewCollaboration(uuid.New(), uuid.New(), uuid.New(), "propozycja", 100)
	require.NoError(t, err)
	collab.Status = status
	return collab
}

func TestChangeStatus_SponsorAcceptsFromNegotiation(t *testing.T) {
	collabRepo := new(mockCollaborationRepo)
	collab := newTestCollaboration(t, valueobject.CollaborationStatusNegotiation)

	collabRepo.On("FindByID", mock.Anything, collab.ID).Return(collab, nil)
	collabRepo.On("Update", mock.Anything, collab).Return(nil)

	uc := NewChangeStatusUseCase(collabRepo)
	updated, err := uc.Execute(context.Background(), collab.ID, collab.SponsorID, "accepted")

	require.NoError(t, err)
	assert.Equal(t, valueobject.CollaborationStatusAccepted, updated.Status)
	collabRepo.AssertExpectations(t)
}

func TestChangeStatus_OrganizationCompletesAccepted(t *testing.T) {
	collabRepo := new(mockCollaborationRepo)
	collab := newTestCollaboration(t, valueobject.CollaborationStatusAccepted)

	collabRepo.On("FindByID", mock.Anything, collab.ID).Return(collab, nil)
	collabRepo.On("Update", mock.Anything, collab).Return(nil)

	uc := NewChangeStatusUseCase(collabRepo)
	updated, err := uc.Execute(context.Background(), collab.ID, collab.OrganizationID, "completed")

	require.NoError(t, err)
	assert.Equal(t, valueobject.CollaborationStatusCompleted, updated.Status)
}

func TestChangeStatus_SponsorCannotCompleteAccepted(t *testing.T) {
	collabRepo := new(mockCollaborationRepo)
	collab := newTestCollaboration(t, valueobject.CollaborationStatusAccepted)

	collabRepo.On("FindByID", mock.Anything, collab.ID).Return(collab, nil)

	uc := NewChangeStatusUseCase(collabRepo)
	_, err := uc.Execute(context.Background(), collab.ID, collab.SponsorID, "completed")

	assert.True(t, apperror.IsInvalidTransition(err))
	assert.Equal(t, valueobject.CollaborationStatusAccepted, collab.Status)
	collabRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeStatus_TerminalStatusRejectsEveryMove(t *testing.T) {
	terminal := []valueobject.CollaborationStatus{
		valueobject.CollaborationStatusCompleted,
		valueobject.CollaborationStatusRejected,
		valueobject.CollaborationStatusCanceled,
	}
	targets := []string{"negotiation", "accepted", "rejected", "completed", "canceled"}

	for _, status := range terminal {
		for _, target := range targets {
			collabRepo := new(mockCollaborationRepo)
			collab := newTestCollaboration(t, status)
			collabRepo.On("FindByID", mock.Anything, collab.ID).Return(collab, nil)

			uc := NewChangeStatusUseCase(collabRepo)
			_, err := uc.Execute(context.Background(), collab.ID, collab.OrganizationID, target)

			assert.True(t, apperror.IsInvalidTransition(err), "status %s, cel %s", status, target)
			assert.Equal(t, status, collab.Status, "status nie może się zmienić po odrzuconym ruchu")
		}
	}
}

func TestChangeStatus_RepeatingCurrentStatusIsIllegal(t *testing.T) {
	collabRepo := new(mockCollaborationRepo)
	collab := newTestCollaboration(t, valueobject.CollaborationStatusNegotiation)

	collabRepo.On("FindByID", mock.Anything, collab.ID).Return(collab, nil)

	uc := NewChangeStatusUseCase(collabRepo)
	_, err := uc.Execute(context.Background(), collab.ID, collab.SponsorID, "negotiation")

	assert.True(t, apperror.IsInvalidTransition(err))
}

func TestChangeStatus_NonPartyForbidden(t *testing.T) {
	collabRepo := new(mockCollaborationRepo)
	collab := newTestCollaboration(t, valueobject.CollaborationStatusSubmitted)

	collabRepo.On("FindByID", mock.Anything, collab.ID).Return(collab, nil)

	uc := NewChangeStatusUseCase(collabRepo)
	_, err := uc.Execute(context.Background(), collab.ID, uuid.New(), "rejected")

	assert.True(t, apperror.IsForbidden(err))
}

func TestChangeStatus_UnknownStatusRejected(t *testing.T) {
	collabRepo := new(mockCollaborationRepo)

	uc := NewChangeStatusUseCase(collabRepo)
	_, err := uc.Execute(context.Background(), uuid.New(), uuid.New(), "pending")

	assert.True(t, apperror.IsValidation(err))
	collabRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestChangeStatus_NotFound(t *testing.T) {
	collabRepo := new(mockCollaborationRepo)
	id := uuid.New()
	collabRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

	uc := NewChangeStatusUseCase(collabRepo)
	_, err := uc.Execute(context.Background(), id, uuid.New(), "accepted")

	assert.True(t, apperror.IsNotFound(err))
}
