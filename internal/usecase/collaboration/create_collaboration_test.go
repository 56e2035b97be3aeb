package collaboration

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/valueobject"
	"github.com/sponsoring-app/sponsoring-backend/internal/pkg/apperror"
)

func newTestEvent(t *testing.T, organizationID uuid.UUID) *entity.Event {
	t.Helper()
	event, err := entity.NewEvent(organizationID, "Bieg charytatywny", "Coroczny bieg na rzecz hospicjum", "Warszawa", nil)
	require.NoError(t, err)
	return event
}

func newTestOption(t *testing.T, eventID uuid.UUID, title string, price float64) *entity.SponsorshipOption {
	t.Helper()
	option, err := entity.NewSponsorshipOption(eventID, title, "", price, nil, nil, false)
	require.NoError(t, err)
	return option
}

func TestCreateCollaboration_Success(t *testing.T) {
	collabRepo := new(mockCollaborationRepo)
	eventRepo := new(mockEventRepo)
	optionRepo := new(mockOptionRepo)

	organizationID := uuid.New()
	sponsorID := uuid.New()
	event := newTestEvent(t, organizationID)
	optionA := newTestOption(t, event.ID, "Pakiet brązowy", 100)
	optionB := newTestOption(t, event.ID, "Pakiet srebrny", 250)

	eventRepo.On("FindByID", mock.Anything, event.ID).Return(event, nil)
	optionRepo.On("FindByIDs", mock.Anything, []uuid.UUID{optionA.ID, optionB.ID}).
		Return([]*entity.SponsorshipOption{optionA, optionB}, nil)
	collabRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Collaboration")).Return(nil)
	collabRepo.On("LinkOption", mock.Anything, mock.AnythingOfType("uuid.UUID"), optionA.ID).Return(nil)
	collabRepo.On("LinkOption", mock.Anything, mock.AnythingOfType("uuid.UUID"), optionB.ID).Return(nil)

	uc := NewCreateCollaborationUseCase(collabRepo, eventRepo, optionRepo)
	collab, err := uc.Execute(context.Background(), CreateCollaborationInput{
		EventID:           event.ID,
		SponsorID:         sponsorID,
		Message:           "Chętnie wesprzemy wydarzenie",
		SelectedOptionIDs: []uuid.UUID{optionA.ID, optionB.ID},
	})

	require.NoError(t, err)
	assert.Equal(t, valueobject.CollaborationStatusSubmitted, collab.Status)
	assert.Equal(t, organizationID, collab.OrganizationID)
	assert.Equal(t, sponsorID, collab.SponsorID)
	assert.Equal(t, 350.0, collab.TotalAmount)
	assert.Len(t, collab.Options, 2)
	collabRepo.AssertExpectations(t)
}

func TestCreateCollaboration_CustomOptionFailureDoesNotAbort(t *testing.T) {
	collabRepo := new(mockCollaborationRepo)
	eventRepo := new(mockEventRepo)
	optionRepo := new(mockOptionRepo)

	organizationID := uuid.New()
	sponsorID := uuid.New()
	event := newTestEvent(t, organizationID)
	selected := newTestOption(t, event.ID, "Pakiet złoty", 500)

	eventRepo.On("FindByID", mock.Anything, event.ID).Return(event, nil)
	optionRepo.On("FindByIDs", mock.Anything, []uuid.UUID{selected.ID}).
		Return([]*entity.SponsorshipOption{selected}, nil)
	collabRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Collaboration")).Return(nil)
	// Zapis opcji niestandardowej pada, ale współpraca i tak powstaje.
	optionRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.SponsorshipOption")).
		Return(errors.New("insert failed"))
	collabRepo.On("LinkOption", mock.Anything, mock.AnythingOfType("uuid.UUID"), selected.ID).Return(nil)

	uc := NewCreateCollaborationUseCase(collabRepo, eventRepo, optionRepo)
	collab, err := uc.Execute(context.Background(), CreateCollaborationInput{
		EventID:           event.ID,
		SponsorID:         sponsorID,
		SelectedOptionIDs: []uuid.UUID{selected.ID},
		CustomOptions: []CustomOptionInput{
			{Title: "Stoisko własne", Price: 300},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, valueobject.CollaborationStatusSubmitted, collab.Status)
	// Kwota obejmuje też opcję niestandardową, mimo że jej zapis się nie powiódł.
	assert.Equal(t, 800.0, collab.TotalAmount)
	assert.Len(t, collab.Options, 1)
}

func TestCreateCollaboration_LinkFailureDoesNotAbort(t *testing.T) {
	collabRepo := new(mockCollaborationRepo)
	eventRepo := new(mockEventRepo)
	optionRepo := new(mockOptionRepo)

	organizationID := uuid.New()
	event := newTestEvent(t, organizationID)
	selected := newTestOption(t, event.ID, "Pakiet srebrny", 250)

	eventRepo.On("FindByID", mock.Anything, event.ID).Return(event, nil)
	optionRepo.On("FindByIDs", mock.Anything, []uuid.UUID{selected.ID}).
		Return([]*entity.SponsorshipOption{selected}, nil)
	collabRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Collaboration")).Return(nil)
	collabRepo.On("LinkOption", mock.Anything, mock.AnythingOfType("uuid.UUID"), selected.ID).
		Return(errors.New("link failed"))

	uc := NewCreateCollaborationUseCase(collabRepo, eventRepo, optionRepo)
	collab, err := uc.Execute(context.Background(), CreateCollaborationInput{
		EventID:           event.ID,
		SponsorID:         uuid.New(),
		SelectedOptionIDs: []uuid.UUID{selected.ID},
	})

	require.NoError(t, err)
	assert.Empty(t, collab.Options)
}

func TestCreateCollaboration_PrimaryInsertFailureAborts(t *testing.T) {
	collabRepo := new(mockCollaborationRepo)
	eventRepo := new(mockEventRepo)
	optionRepo := new(mockOptionRepo)

	event := newTestEvent(t, uuid.New())
	selected := newTestOption(t, event.ID, "Pakiet brązowy", 100)

	eventRepo.On("FindByID", mock.Anything, event.ID).Return(event, nil)
	optionRepo.On("FindByIDs", mock.Anything, []uuid.UUID{selected.ID}).
		Return([]*entity.SponsorshipOption{selected}, nil)
	collabRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Collaboration")).
		Return(errors.New("insert failed"))

	uc := NewCreateCollaborationUseCase(collabRepo, eventRepo, optionRepo)
	_, err := uc.Execute(context.Background(), CreateCollaborationInput{
		EventID:           event.ID,
		SponsorID:         uuid.New(),
		SelectedOptionIDs: []uuid.UUID{selected.ID},
	})

	require.Error(t, err)
	collabRepo.AssertNotCalled(t, "LinkOption", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateCollaboration_RequiresAtLeastOneOption(t *testing.T) {
	collabRepo := new(mockCollaborationRepo)
	eventRepo := new(mockEventRepo)
	optionRepo := new(mockOptionRepo)

	event := newTestEvent(t, uuid.New())
	eventRepo.On("FindByID", mock.Anything, event.ID).Return(event, nil)

	uc := NewCreateCollaborationUseCase(collabRepo, eventRepo, optionRepo)
	_, err := uc.Execute(context.Background(), CreateCollaborationInput{
		EventID:   event.ID,
		SponsorID: uuid.New(),
	})

	assert.True(t, apperror.IsValidation(err))
}

func TestCreateCollaboration_CannotSponsorOwnEvent(t *testing.T) {
	collabRepo := new(mockCollaborationRepo)
	eventRepo := new(mockEventRepo)
	optionRepo := new(mockOptionRepo)

	organizationID := uuid.New()
	event := newTestEvent(t, organizationID)
	eventRepo.On("FindByID", mock.Anything, event.ID).Return(event, nil)

	uc := NewCreateCollaborationUseCase(collabRepo, eventRepo, optionRepo)
	_, err := uc.Execute(context.Background(), CreateCollaborationInput{
		EventID:           event.ID,
		SponsorID:         organizationID,
		SelectedOptionIDs: []uuid.UUID{uuid.New()},
	})

	require.Error(t, err)
}

func TestCreateCollaboration_OptionFromAnotherEventRejected(t *testing.T) {
	collabRepo := new(mockCollaborationRepo)
	eventRepo := new(mockEventRepo)
	optionRepo := new(mockOptionRepo)

	event := newTestEvent(t, uuid.New())
	foreign := newTestOption(t, uuid.New(), "Cudzy pakiet", 100)

	eventRepo.On("FindByID", mock.Anything, event.ID).Return(event, nil)
	optionRepo.On("FindByIDs", mock.Anything, []uuid.UUID{foreign.ID}).
		Return([]*entity.SponsorshipOption{foreign}, nil)

	uc := NewCreateCollaborationUseCase(collabRepo, eventRepo, optionRepo)
	_, err := uc.Execute(context.Background(), CreateCollaborationInput{
		EventID:           event.ID,
		SponsorID:         uuid.New(),
		SelectedOptionIDs: []uuid.UUID{foreign.ID},
	})

	assert.True(t, apperror.IsValidation(err))
}

func TestCreateCollaboration_MissingOptionRejected(t *testing.T) {
	collabRepo := new(mockCollaborationRepo)
	eventRepo := new(mockEventRepo)
	optionRepo := new(mockOptionRepo)

	event := newTestEvent(t, uuid.New())
	wanted := []uuid.UUID{uuid.New(), uuid.New()}

	eventRepo.On("FindByID", mock.Anything, event.ID).Return(event, nil)
	optionRepo.On("FindByIDs", mock.Anything, wanted).
		Return([]*entity.SponsorshipOption{newTestOption(t, event.ID, "Jedyny", 50)}, nil)

	uc := NewCreateCollaborationUseCase(collabRepo, eventRepo, optionRepo)
	_, err := uc.Execute(context.Background(), CreateCollaborationInput{
		EventID:           event.ID,
		SponsorID:         uuid.New(),
		SelectedOptionIDs: wanted,
	})

	assert.True(t, apperror.IsNotFound(err))
}
