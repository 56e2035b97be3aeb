package collaboration

import (
	"context"

	"github.com/google/uuid"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/repository"
	"github.com/sponsoring-app/sponsoring-backend/internal/pkg/apperror"
)

type UpdateTermsUseCase struct {
	collabRepo repository.CollaborationRepository
}

func NewUpdateTermsUseCase(collabRepo repository.CollaborationRepository) *UpdateTermsUseCase {
	return &UpdateTermsUseCase{collabRepo: collabRepo}
}

// Execute zmienia warunki propozycji (akcja edit). Status pozostaje bez zmian,
// aktualizuje się tylko treść i updated_at.
func (uc *UpdateTermsUseCase) Execute(ctx context.Context, collaborationID, actorID uuid.UUID, message string) (*entity.Collaboration, error) {
	collab, err := uc.collabRepo.FindByID(ctx, collaborationID)
	if err != nil {
		return nil, err
	}
	if collab == nil {
		return nil, apperror.ErrCollaborationNotFound
	}

	role, ok := collab.RoleOf(actorID)
	if !ok {
		return nil, apperror.ErrForbidden
	}

	if err := collab.UpdateTerms(role, message); err != nil {
		return nil, err
	}

	if err := uc.collabRepo.Update(ctx, collab); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się zapisać warunków współpracy")
	}

	return collab, nil
}
