package collaboration

import (
	"context"

	"github.com/google/uuid"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/repository"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/valueobject"
	"github.com/sponsoring-app/sponsoring-backend/internal/pkg/apperror"
)

type ChangeStatusUseCase struct {
	collabRepo repository.CollaborationRepository
}

func NewChangeStatusUseCase(collabRepo repository.CollaborationRepository) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{collabRepo: collabRepo}
}

// Execute zmienia status współpracy. Legalność przejścia jest sprawdzana po
// stronie serwera na świeżo wczytanym rekordzie - ukrycie przycisku w UI nie
// jest żadną gwarancją przy równoległych żądaniach.
func (uc *ChangeStatusUseCase) Execute(ctx context.Context, collaborationID, actorID uuid.UUID, requestedStatus string) (*entity.Collaboration, error) {
	target, err := valueobject.NewCollaborationStatus(requestedStatus)
	if err != nil {
		return nil, err
	}

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

	action, err := valueobject.ActionForStatus(target)
	if err != nil {
		return nil, err
	}

	if err := collab.ApplyAction(action, role); err != nil {
		return nil, err
	}

	if err := uc.collabRepo.Update(ctx, collab); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się zapisać zmiany statusu")
	}

	return collab, nil
}
