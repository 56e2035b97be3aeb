package collaboration

import (
	"context"

	"github.com/google/uuid"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/repository"
	"github.com/sponsoring-app/sponsoring-backend/internal/logger"
	"github.com/sponsoring-app/sponsoring-backend/internal/pkg/apperror"
)

// CustomOptionInput opisuje opcję sponsoringu tworzoną ad hoc przy składaniu propozycji.
type CustomOptionInput struct {
	Title       string
	Description string
	Price       float64
	PriceTo     *float64
	Benefits    []string
}

type CreateCollaborationInput struct {
	EventID           uuid.UUID
	SponsorID         uuid.UUID
	Message           string
	SelectedOptionIDs []uuid.UUID
	CustomOptions     []CustomOptionInput
}

type CreateCollaborationUseCase struct {
	collabRepo repository.CollaborationRepository
	eventRepo  repository.EventRepository
	optionRepo repository.SponsorshipOptionRepository
}

func NewCreateCollaborationUseCase(
	collabRepo repository.CollaborationRepository,
	eventRepo repository.EventRepository,
	optionRepo repository.SponsorshipOptionRepository,
) *CreateCollaborationUseCase {
	return &CreateCollaborationUseCase{collabRepo: collabRepo, eventRepo: eventRepo, optionRepo: optionRepo}
}

// Execute tworzy współpracę w statusie submitted. Rekord współpracy jest
// kryterium sukcesu operacji: błędy przy zapisie opcji niestandardowych albo
// wierszy wiążących są logowane i pomijane, nie przerywają tworzenia.
func (uc *CreateCollaborationUseCase) Execute(ctx context.Context, input CreateCollaborationInput) (*entity.Collaboration, error) {
	event, err := uc.eventRepo.FindByID(ctx, input.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.ErrEventNotFound
	}

	if event.OrganizationID == input.SponsorID {
		return nil, apperror.New(apperror.ErrCodeBadRequest, "nie można sponsorować własnego wydarzenia")
	}

	if len(input.SelectedOptionIDs) == 0 && len(input.CustomOptions) == 0 {
		return nil, apperror.New(apperror.ErrCodeValidation, "propozycja musi zawierać co najmniej jedną opcję sponsoringu")
	}

	selected, err := uc.optionRepo.FindByIDs(ctx, input.SelectedOptionIDs)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać wybranych opcji")
	}
	if len(selected) != len(input.SelectedOptionIDs) {
		return nil, apperror.ErrOptionNotFound
	}
	for _, option := range selected {
		if option.EventID != input.EventID {
			return nil, apperror.New(apperror.ErrCodeValidation, "opcja sponsoringu nie należy do tego wydarzenia")
		}
	}

	// Kwota liczona raz, przy tworzeniu. Późniejsze edycje opcji jej nie zmieniają.
	var totalAmount float64
	for _, option := range selected {
		totalAmount += option.Price.Price
	}
	for _, custom := range input.CustomOptions {
		totalAmount += custom.Price
	}

	collab, err := entity.NewCollaboration(input.SponsorID, event.OrganizationID, input.EventID, input.Message, totalAmount)
	if err != nil {
		return nil, err
	}

	if err := uc.collabRepo.Create(ctx, collab); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się utworzyć współpracy")
	}

	linkIDs := make([]uuid.UUID, 0, len(selected)+len(input.CustomOptions))
	for _, option := range selected {
		linkIDs = append(linkIDs, option.ID)
	}

	for _, custom := range input.CustomOptions {
		option, err := entity.NewSponsorshipOption(input.EventID, custom.Title, custom.Description, custom.Price, custom.PriceTo, custom.Benefits, true)
		if err != nil {
			uc.logWarn(collab.ID, "pominięto niepoprawną opcję niestandardową", err)
			continue
		}
		if err := uc.optionRepo.Create(ctx, option); err != nil {
			uc.logWarn(collab.ID, "nie udało się zapisać opcji niestandardowej", err)
			continue
		}
		linkIDs = append(linkIDs, option.ID)
	}

	for _, optionID := range linkIDs {
		if err := uc.collabRepo.LinkOption(ctx, collab.ID, optionID); err != nil {
			uc.logWarn(collab.ID, "nie udało się powiązać opcji ze współpracą", err)
			continue
		}
		collab.Options = append(collab.Options, entity.CollaborationOption{
			CollaborationID:     collab.ID,
			SponsorshipOptionID: optionID,
		})
	}

	return collab, nil
}

func (uc *CreateCollaborationUseCase) logWarn(collaborationID uuid.UUID, msg string, err error) {
	if logger.Log == nil {
		return
	}
	logger.Log.WithField("collaboration_id", collaborationID).WithError(err).Warn(msg)
}
